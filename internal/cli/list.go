package cli

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/calvinalkan/cscycle/internal/scheme"

	flag "github.com/spf13/pflag"
)

// activeColor highlights the selected scheme on color terminals.
const activeColor = lipgloss.Color("#50fa7b")

// ListCmd returns the list command.
func ListCmd(t *target) *Command {
	return &Command{
		Flags: flag.NewFlagSet("list", flag.ContinueOnError),
		Usage: "list",
		Short: "List color schemes in cycle order",
		Long: "List every anchor declared in the config, in the order next visits them.\n" +
			"The active scheme is marked with '*'.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return errUnexpectedArgs(args)
			}

			return execList(io, t)
		},
	}
}

func execList(io *IO, t *target) error {
	_, state, err := t.inspect(io)
	if err != nil {
		return err
	}

	if !scheme.Contains(state.Anchors, state.Active.Anchor) {
		io.Warn("active scheme `"+state.Active.Anchor+"` is not declared", "run 'cscycle set <anchor>' to pick a declared one")
	}

	// Render against our own writer so pipes and tests get plain text.
	renderer := lipgloss.NewRenderer(io.out)
	active := renderer.NewStyle().Bold(true).Foreground(activeColor)

	marked := false

	for _, name := range state.Anchors {
		if !marked && name == state.Active.Anchor {
			io.Println(active.Render("* " + name))

			marked = true

			continue
		}

		io.Println("  " + name)
	}

	return nil
}
