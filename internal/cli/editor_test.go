package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/cscycle/internal/cli"
)

// createMockEditor creates a mock editor script that writes its args to a file
// and then runs the given shell snippet against the edited file ("$1").
// Returns the path to the mock editor and the path to the invoked args file.
func createMockEditor(t *testing.T, snippet string) (string, string) {
	t.Helper()

	mockDir := t.TempDir()
	mockEditor := filepath.Join(mockDir, "mock-editor")
	invokedFile := filepath.Join(mockDir, "invoked.txt")

	script := `#!/bin/sh
echo "$@" > "` + invokedFile + `"
` + snippet + `
exit 0
`

	writeErr := os.WriteFile(mockEditor, []byte(script), 0o700)
	if writeErr != nil {
		t.Fatalf("failed to create mock editor: %v", writeErr)
	}

	return mockEditor, invokedFile
}

func readInvoked(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("editor was not invoked: %v", err)
	}

	return strings.TrimSpace(string(content))
}

func TestEditCommand(t *testing.T) {
	t.Parallel()

	t.Run("EDITOR env opens resolved config", func(t *testing.T) {
		t.Parallel()

		c := cli.NewCLI(t)
		c.WriteConfig(themedConfig)

		mockEditor, invokedFile := createMockEditor(t, "")
		c.Env["EDITOR"] = mockEditor

		c.MustRun("edit")

		if got, want := readInvoked(t, invokedFile), c.ConfigPath(); got != want {
			t.Errorf("editor args=%q, want=%q", got, want)
		}
	})

	t.Run("config editor used first over EDITOR env", func(t *testing.T) {
		t.Parallel()

		c := cli.NewCLI(t)
		c.WriteConfig(themedConfig)

		configEditor, configInvoked := createMockEditor(t, "")
		envEditor, envInvoked := createMockEditor(t, "")
		c.Env["EDITOR"] = envEditor
		c.WriteFile(filepath.Join(c.Dir, ".config", "cscycle", "config.json"), `{"editor": "`+configEditor+`"}`)

		c.MustRun("edit")

		readInvoked(t, configInvoked)

		if _, err := os.Stat(envInvoked); !os.IsNotExist(err) {
			t.Errorf("$EDITOR should not have been invoked")
		}
	})

	t.Run("warns when edit removes the reference", func(t *testing.T) {
		t.Parallel()

		c := cli.NewCLI(t)
		c.WriteConfig(themedConfig)

		mockEditor, _ := createMockEditor(t, `printf 'schemes:\n  a: &a {}\n' > "$1"`)
		c.Env["EDITOR"] = mockEditor

		_, stderr, code := c.Run("edit")
		if code != 0 {
			t.Fatalf("exit code=%d, want 0\nstderr: %s", code, stderr)
		}

		cli.AssertContains(t, stderr, "warning: could not find set color scheme")
	})

	t.Run("missing config returns error", func(t *testing.T) {
		t.Parallel()

		c := cli.NewCLI(t)
		mockEditor, _ := createMockEditor(t, "")
		c.Env["EDITOR"] = mockEditor

		stderr := c.MustFail("edit")
		cli.AssertContains(t, stderr, "could not find config file")
	})
}
