package cli

import (
	"fmt"
	"io"
)

// IO handles command output with warning visibility.
type IO struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	verbose  bool
	warnings []string
	started  bool
}

// NewIO creates a new IO instance.
func NewIO(in io.Reader, out, errOut io.Writer) *IO {
	return &IO{in: in, out: out, errOut: errOut}
}

// Warn records a warning about the configuration file.
//
// Parameters:
//   - issue: what looks wrong
//   - action: what the user could do about it
//
// Warnings are printed to stderr at both the START and END of output,
// so they stay visible when stdout is piped through head/tail.
// They do not change the exit code: cycling still succeeded.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, action))
}

// Verbosef writes a diagnostic line to stderr when --verbose is set.
func (o *IO) Verbosef(format string, a ...any) {
	if !o.verbose {
		return
	}

	_, _ = fmt.Fprintf(o.errOut, format+"\n", a...)
}

// Println writes to stdout. On first call, any collected warnings
// are printed to stderr first.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout. On first call, any collected
// warnings are printed to stderr first.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish prints warnings to stderr a final time.
func (o *IO) Finish() {
	// If no output happened but we have warnings, print them at "start" position
	if o.flushWarningsStart() {
		return
	}

	// Always print at end
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}

// flushWarningsStart prints pending warnings once. Reports whether it printed.
func (o *IO) flushWarningsStart() bool {
	if o.started || len(o.warnings) == 0 {
		return false
	}

	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}

	o.started = true

	return true
}
