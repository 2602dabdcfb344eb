package cli

import (
	"context"

	"github.com/calvinalkan/cscycle/internal/scheme"

	flag "github.com/spf13/pflag"
)

// NextCmd returns the next command.
func NextCmd(t *target) *Command {
	return cycleCmd(t, "next", scheme.Forward,
		"Switch to the next color scheme",
		"Point the color scheme reference at the anchor declared after the current one.\n"+
			"Wraps to the first anchor after the last.")
}

// PrevCmd returns the prev command.
func PrevCmd(t *target) *Command {
	return cycleCmd(t, "prev", scheme.Backward,
		"Switch to the previous color scheme",
		"Point the color scheme reference at the anchor declared before the current one.\n"+
			"Wraps to the last anchor before the first.")
}

func cycleCmd(t *target, name string, dir scheme.Direction, short, long string) *Command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolP("dry-run", "n", false, "Show the change without writing it")

	return &Command{
		Flags: fs,
		Usage: name + " [flags]",
		Short: short,
		Long:  long,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return errUnexpectedArgs(args)
			}

			dryRun, _ := fs.GetBool("dry-run")

			return execCycle(ctx, io, t, dir, dryRun)
		},
	}
}

func execCycle(ctx context.Context, io *IO, t *target, dir scheme.Direction, dryRun bool) error {
	path, change, err := t.rewrite(ctx, io, dryRun, func(doc scheme.Document) (scheme.Change, error) {
		return t.cycler.Cycle(doc, dir)
	})
	if err != nil {
		return err
	}

	printChange(io, path, change, dryRun)

	return nil
}

func printChange(io *IO, path string, change scheme.Change, dryRun bool) {
	io.Println(change.From, "->", change.To)

	if dryRun {
		io.Printf("line %d: %s\n", change.Active.Line+1, change.Lines[change.Active.Line])
		io.Println("(dry run, " + path + " not modified)")
	}
}
