package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/cscycle/internal/scheme"

	flag "github.com/spf13/pflag"
)

const pickPrompt = "scheme> "

// prompter reads one answer from the user.
type prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// PickCmd returns the pick command.
func PickCmd(t *target) *Command {
	return &Command{
		Flags: flag.NewFlagSet("pick", flag.ContinueOnError),
		Usage: "pick",
		Short: "Choose a color scheme interactively",
		Long: "Show the declared schemes and switch to the one entered by name or number.\n" +
			"On a terminal, names tab-complete. An empty answer keeps the current scheme.",
		Exec: func(ctx context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return errUnexpectedArgs(args)
			}

			return execPick(ctx, io, t)
		},
	}
}

func execPick(ctx context.Context, o *IO, t *target) error {
	_, state, err := t.inspect(o)
	if err != nil {
		return err
	}

	for i, name := range state.Anchors {
		marker := " "
		if name == state.Active.Anchor {
			marker = "*"
		}

		o.Printf("%s %2d) %s\n", marker, i+1, name)
	}

	p := newPrompter(o.in, state.Anchors)
	defer func() { _ = p.Close() }()

	answer, err := p.Prompt(pickPrompt)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return errPickAborted
		}

		return fmt.Errorf("reading answer: %w", err)
	}

	choice, err := resolveChoice(state.Anchors, strings.TrimSpace(answer))
	if err != nil {
		return err
	}

	if choice == "" {
		o.Println(state.Active.Anchor, "(unchanged)")

		return nil
	}

	return execSet(ctx, o, t, choice, false)
}

// resolveChoice maps an answer to an anchor: a 1-based index into anchors or
// a name. An empty answer resolves to "".
func resolveChoice(anchors []string, answer string) (string, error) {
	if answer == "" {
		return "", nil
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(anchors) {
			return "", fmt.Errorf("%w: %d (1-%d)", errChoiceOutOfRange, n, len(anchors))
		}

		return anchors[n-1], nil
	}

	if !scheme.Contains(anchors, answer) {
		return "", &scheme.AnchorNotInCatalogError{Anchor: answer}
	}

	return answer, nil
}

// newPrompter uses liner for the process's own stdin, which gives line
// editing and completion on a terminal. Any other reader is read line by line.
func newPrompter(in io.Reader, completions []string) prompter {
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		line := liner.NewLiner()
		line.SetCtrlCAborts(true)
		line.SetCompleter(func(prefix string) []string {
			var out []string

			for _, c := range completions {
				if strings.HasPrefix(c, prefix) {
					out = append(out, c)
				}
			}

			return out
		})

		return line
	}

	return &readerPrompter{in: bufio.NewReader(in)}
}

// readerPrompter answers prompts from a plain reader. The prompt itself is not
// echoed since there is nobody to see it.
type readerPrompter struct {
	in *bufio.Reader
}

func (p *readerPrompter) Prompt(string) (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (*readerPrompter) Close() error {
	return nil
}
