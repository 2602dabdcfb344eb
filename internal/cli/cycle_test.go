package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/cscycle/internal/cli"
)

const themedConfig = `env:
  TERM: xterm-256color

schemes:
  dracula: &dracula
    primary:
      background: '#282a36'
  gruvbox: &gruvbox
    primary:
      background: '#282828'
  nord: &nord
    primary:
      background: '#2e3440'

# colors: *nord
colors: *dracula
`

func Test_Next_Rewrites_Reference_Line_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(themedConfig)

	stdout := c.MustRun("next")
	require.Equal(t, "dracula -> gruvbox", stdout)

	want := strings.Replace(themedConfig, "colors: *dracula", "colors: *gruvbox", 1)
	if diff := cmp.Diff(want, c.ReadConfig()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func Test_Next_Is_Default_Command_When_None_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(themedConfig)

	c.MustRun()
	c.MustRun()

	cli.AssertContains(t, c.ReadConfig(), "\ncolors: *nord\n")
	require.Equal(t, "nord", c.MustRun("current"))
}

func Test_Next_Wraps_After_Last_Anchor(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(strings.Replace(themedConfig, "colors: *dracula", "colors: *nord", 1))

	require.Equal(t, "nord -> dracula", c.MustRun("next"))
}

func Test_Prev_Wraps_Before_First_Anchor(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(themedConfig)

	require.Equal(t, "dracula -> nord", c.MustRun("prev"))
	require.Equal(t, "nord", c.MustRun("current"))
}

func Test_Next_Dry_Run_Leaves_File_Untouched(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(themedConfig)

	stdout := c.MustRun("next", "--dry-run")
	cli.AssertContains(t, stdout, "dracula -> gruvbox")
	cli.AssertContains(t, stdout, "line 16: colors: *gruvbox")
	cli.AssertContains(t, stdout, "not modified")

	require.Equal(t, themedConfig, c.ReadConfig())
}

func Test_Next_Normalizes_Trailing_Newline(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig("a: &one 1\nb: &two 2\ncolors: *one")

	c.MustRun("next")
	require.Equal(t, "a: &one 1\nb: &two 2\ncolors: *two\n", c.ReadConfig())
}

func Test_Next_Fails_Without_Writing(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		config     string
		wantStderr string
	}{
		{
			name:       "MalformedDocument",
			config:     "schemes: [\ncolors: *a\n",
			wantStderr: "yaml:",
		},
		{
			name:       "NoReference",
			config:     "schemes:\n  a: &a {}\n  b: &b {}\n",
			wantStderr: "could not find set color scheme",
		},
		{
			name:       "AnchorNotDeclared",
			config:     "schemes:\n  a: &a {}\ncolors: *a\n#colors: *ghost\n",
			wantStderr: "#colors: *ghost",
		},
		{
			name:       "EmptyCatalog",
			config:     "font:\n  size: 10\n# colors: *ghost\n",
			wantStderr: "anchor not found",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.WriteConfig(testCase.config)

			stderr := c.MustFail("next")
			cli.AssertContains(t, stderr, "error:")
			cli.AssertContains(t, stderr, testCase.wantStderr)

			require.Equal(t, testCase.config, c.ReadConfig())
		})
	}
}

func Test_Next_Fails_When_Config_Not_Found(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("next")
	cli.AssertContains(t, stderr, "could not find config file")
	cli.AssertContains(t, stderr, filepath.Join(c.Dir, ".alacritty.yml"))
}

func Test_Next_Uses_XDG_Config_First(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	xdg := filepath.Join(c.Dir, "xdg")
	c.Env["XDG_CONFIG_HOME"] = xdg

	c.WriteConfig(themedConfig)
	c.WriteFile(filepath.Join(xdg, "alacritty.yml"), "a: &x 1\nb: &y 2\ncolors: *x\n")

	require.Equal(t, "x -> y", c.MustRun("next"))
	require.Equal(t, themedConfig, c.ReadConfig(), "lower priority candidate must not change")
}

func Test_Next_Rewrites_Symlink_Target(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	dotfile := filepath.Join(c.Dir, "dotfiles", "alacritty.yml")
	c.WriteFile(dotfile, themedConfig)

	require.NoError(t, os.MkdirAll(filepath.Dir(c.ConfigPath()), 0o750))
	require.NoError(t, os.Symlink(dotfile, c.ConfigPath()))

	c.MustRun("next")

	info, err := os.Lstat(c.ConfigPath())
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "symlink must survive the rewrite")

	content, err := os.ReadFile(dotfile)
	require.NoError(t, err)
	cli.AssertContains(t, string(content), "\ncolors: *gruvbox\n")
}

func Test_Next_Uses_File_Flag_And_Custom_Key(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	target := filepath.Join(c.Dir, "term.yaml")
	c.WriteFile(target, "themes:\n  light: &light {}\n  dark: &dark {}\ntheme: *light\n")
	c.WriteFile(filepath.Join(c.Dir, "cs.json"), `{"key": "theme"}`)

	require.Equal(t, "light -> dark", c.MustRun("-c", "cs.json", "-f", "term.yaml", "next"))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "themes:\n  light: &light {}\n  dark: &dark {}\ntheme: *dark\n", string(content))
}

func Test_Next_Warns_On_Duplicate_Anchors(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig("a: &x 1\nb: &y 2\nc: &x 3\ncolors: *x\n")

	stdout, stderr, code := c.Run("next")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	require.Equal(t, "x -> y\n", stdout)
	cli.AssertContains(t, stderr, "warning: anchor declared more than once: x")
}

func Test_Next_Verbose_Reports_Path_And_Extra_References(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(themedConfig)

	_, stderr, code := c.Run("-v", "next")
	require.Equal(t, 0, code)
	cli.AssertContains(t, stderr, "config: "+c.ConfigPath())
	cli.AssertContains(t, stderr, "2 lines reference a scheme, using line 16")
}

func Test_Next_Rejects_Arguments(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(themedConfig)

	stderr := c.MustFail("next", "gruvbox")
	cli.AssertContains(t, stderr, "unexpected argument: gruvbox")
}
