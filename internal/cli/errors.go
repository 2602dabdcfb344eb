package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errAnchorRequired   = errors.New("anchor name is required")
	errUnexpectedArg    = errors.New("unexpected argument")
	errUnknownCommand   = errors.New("unknown command")
	errPickAborted      = errors.New("no scheme chosen")
	errChoiceOutOfRange = errors.New("choice out of range")
	errNoEditorFound    = errors.New("no editor found (set config.editor, $EDITOR, or install vi/nano)")
	errEditorFailed     = errors.New("editor failed")
)

func errUnexpectedArgs(args []string) error {
	return fmt.Errorf("%w: %s", errUnexpectedArg, strings.Join(args, " "))
}
