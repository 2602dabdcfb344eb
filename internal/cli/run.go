// Package cli implements the command-line interface for cscycle.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/cscycle/internal/config"
	"github.com/calvinalkan/cscycle/internal/fs"

	flag "github.com/spf13/pflag"
)

// defaultCommand runs when no command is given, so binding cscycle to a
// hotkey cycles forward.
const defaultCommand = "next"

// Run is the main entry point. Returns exit code.
//
// A signal on sigCh cancels the command; a rewrite that has not started yet
// is skipped. sigCh may be nil.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	return run(fs.NewReal(), in, out, errOut, args, env, sigCh)
}

func run(fsys fs.FS, in io.Reader, out, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	if in == nil {
		in = strings.NewReader("")
	}

	globals := flag.NewFlagSet("cscycle", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{}) // discard pflag output

	workDir := globals.StringP("cwd", "C", "", "Resolve relative paths from `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified cscycle config `file`")
	file := globals.StringP("file", "f", "", "Rewrite `path` instead of searching for the terminal config")
	verbose := globals.BoolP("verbose", "v", false, "Print the resolved config path and diagnostics")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out, globals)

			return 0
		}

		fprintln(errOut, "error:", err)
		printUsage(errOut, globals)

		return 1
	}

	if *workDir == "" {
		*workDir, err = os.Getwd()
		if err != nil {
			fprintln(errOut, "error: cannot get working directory:", err)

			return 1
		}
	}

	cfg, err := config.Load(fsys, config.LoadInput{
		ConfigPath:   *configPath,
		FileOverride: *file,
		WorkDir:      *workDir,
		Env:          env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	rest := globals.Args()

	cmdName := defaultCommand
	if len(rest) > 0 {
		cmdName, rest = rest[0], rest[1:]
	}

	if cmdName == "help" {
		printUsage(out, globals)

		return 0
	}

	cmd := findCommand(commands(newTarget(fsys, cfg, env)), cmdName)
	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, cmdName))
		printUsage(errOut, globals)

		return 1
	}

	o := NewIO(in, out, errOut)
	o.verbose = *verbose

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return cmd.Run(ctx, o, rest)
}

func commands(t *target) []*Command {
	return []*Command{
		NextCmd(t),
		PrevCmd(t),
		SetCmd(t),
		CurrentCmd(t),
		ListCmd(t),
		PickCmd(t),
		EditCmd(t),
		PrintConfigCmd(t),
	}
}

func findCommand(cmds []*Command, name string) *Command {
	for _, cmd := range cmds {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet) {
	fprintln(w, `cscycle - cycle the color scheme of your terminal config

Usage: cscycle [options] [command] [args]

Without a command, cscycle switches to the next scheme.

Options:`)
	fprintln(w, strings.TrimRight(globals.FlagUsages(), "\n"))
	fprintln(w, "  -h, --help                 Show this help")
	fprintln(w, "")
	fprintln(w, "Commands:")

	for _, cmd := range commands(nil) {
		fprintln(w, cmd.HelpLine())
	}
}
