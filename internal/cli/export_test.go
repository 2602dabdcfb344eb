package cli

// RunWithFS runs the CLI against fsys instead of the real filesystem.
var RunWithFS = run
