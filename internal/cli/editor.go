package cli

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	flag "github.com/spf13/pflag"
)

// EditCmd returns the edit command.
func EditCmd(t *target) *Command {
	return &Command{
		Flags: flag.NewFlagSet("edit", flag.ContinueOnError),
		Usage: "edit",
		Short: "Open the terminal config in your editor",
		Long: "Open the resolved terminal config in your preferred editor.\n" +
			"Afterwards the file is checked for a scheme reference cscycle can cycle.",
		Exec: func(ctx context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return errUnexpectedArgs(args)
			}

			return execEdit(ctx, io, t)
		},
	}
}

func execEdit(ctx context.Context, o *IO, t *target) error {
	path, err := t.locate(o)
	if err != nil {
		return err
	}

	editor, err := resolveEditor(t.cfg.Editor, t.env)
	if err != nil {
		return err
	}

	err = runEditor(ctx, o, editor, path)
	if err != nil {
		return err
	}

	// Problems left by the edit are warnings, not errors.
	_, _, err = t.inspect(o)
	if err != nil {
		o.Warn(err.Error(), "cscycle cannot cycle this file until it is fixed")
	}

	return nil
}

// resolveEditor checks for an available editor using the env map.
// Priority: config editor -> $EDITOR -> zed -> vi -> nano -> error.
func resolveEditor(configured string, env map[string]string) (string, error) {
	candidates := []string{configured, env["EDITOR"], "zed", "vi", "nano"}

	for _, editor := range candidates {
		if editor == "" {
			continue
		}

		if _, err := exec.LookPath(editor); err == nil {
			return editor, nil
		}
	}

	return "", errNoEditorFound
}

func runEditor(ctx context.Context, o *IO, editor, path string) error {
	// Build command args - zed needs -w flag to wait
	var cmd *exec.Cmd

	if filepath.Base(editor) == "zed" {
		cmd = exec.CommandContext(ctx, editor, "-w", path)
	} else {
		cmd = exec.CommandContext(ctx, editor, path)
	}

	cmd.Stdin = o.in
	cmd.Stdout = o.out
	cmd.Stderr = o.errOut

	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errEditorFailed, editor, err)
	}

	return nil
}
