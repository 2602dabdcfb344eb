package cli

import (
	"context"
	"errors"

	"github.com/calvinalkan/cscycle/internal/config"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(t *target) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective settings, which files they were loaded from, and the target search order.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, t)
		},
	}
}

func execPrintConfig(io *IO, t *target) error {
	formatted, err := config.Format(t.cfg)
	if err != nil {
		return err
	}

	io.Println(formatted)

	io.Println("")
	io.Println("# sources")

	if t.cfg.Sources.Global == "" && t.cfg.Sources.Explicit == "" {
		io.Println("(defaults only)")
	} else {
		if t.cfg.Sources.Global != "" {
			io.Println("global_config=" + t.cfg.Sources.Global)
		}

		if t.cfg.Sources.Explicit != "" {
			io.Println("explicit_config=" + t.cfg.Sources.Explicit)
		}
	}

	io.Println("")
	io.Println("# target")

	path, err := config.Locate(t.fsys, t.cfg, t.env)

	switch {
	case err == nil:
		io.Println("target=" + path)
	case errors.Is(err, config.ErrTargetNotFound):
		io.Println("target=(not found)")
	default:
		return err
	}

	if t.cfg.File == "" {
		for _, candidate := range t.cfg.Candidates(t.env) {
			io.Println("candidate=" + candidate)
		}
	}

	return nil
}
