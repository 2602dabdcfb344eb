package cli

import (
	"context"

	"github.com/calvinalkan/cscycle/internal/scheme"

	flag "github.com/spf13/pflag"
)

// SetCmd returns the set command.
func SetCmd(t *target) *Command {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.BoolP("dry-run", "n", false, "Show the change without writing it")

	return &Command{
		Flags: fs,
		Usage: "set <anchor> [flags]",
		Short: "Switch to a named color scheme",
		Long:  "Point the color scheme reference at <anchor>, which must be declared in the file.",
		Exec: func(ctx context.Context, io *IO, args []string) error {
			if len(args) == 0 {
				return errAnchorRequired
			}

			if len(args) > 1 {
				return errUnexpectedArgs(args[1:])
			}

			dryRun, _ := fs.GetBool("dry-run")

			return execSet(ctx, io, t, args[0], dryRun)
		},
	}
}

func execSet(ctx context.Context, io *IO, t *target, anchor string, dryRun bool) error {
	path, change, err := t.rewrite(ctx, io, dryRun, func(doc scheme.Document) (scheme.Change, error) {
		return t.cycler.Select(doc, anchor)
	})
	if err != nil {
		return err
	}

	printChange(io, path, change, dryRun)

	return nil
}
