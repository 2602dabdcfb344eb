package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// CurrentCmd returns the current command.
func CurrentCmd(t *target) *Command {
	return &Command{
		Flags: flag.NewFlagSet("current", flag.ContinueOnError),
		Usage: "current",
		Short: "Print the active color scheme",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return errUnexpectedArgs(args)
			}

			_, state, err := t.inspect(io)
			if err != nil {
				return err
			}

			io.Println(state.Active.Anchor)

			return nil
		},
	}
}
