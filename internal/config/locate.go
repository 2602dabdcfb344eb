package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/cscycle/internal/fs"
)

// Candidates returns the target paths searched, in order:
//  1. $XDG_CONFIG_HOME/<app>/<file_name>
//  2. $XDG_CONFIG_HOME/<file_name>
//  3. $HOME/.config/<app>/<file_name>
//  4. $HOME/.<file_name>
//
// Entries depending on an unset variable are omitted.
func (c Config) Candidates(env map[string]string) []string {
	var paths []string

	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		paths = append(paths,
			filepath.Join(xdg, c.App, c.FileName),
			filepath.Join(xdg, c.FileName),
		)
	}

	if home := env["HOME"]; home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", c.App, c.FileName),
			filepath.Join(home, "."+c.FileName),
		)
	}

	return paths
}

// Locate returns the target configuration file. An explicit File is returned
// as-is if it exists; otherwise the first existing candidate wins.
func Locate(fsys fs.FS, cfg Config, env map[string]string) (string, error) {
	if cfg.File != "" {
		exists, err := fsys.Exists(cfg.File)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", cfg.File, err)
		}

		if !exists {
			return "", fmt.Errorf("%w: %s", ErrTargetNotFound, cfg.File)
		}

		return cfg.File, nil
	}

	candidates := cfg.Candidates(env)

	for _, path := range candidates {
		exists, err := fsys.Exists(path)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}

		if exists {
			return path, nil
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w (neither XDG_CONFIG_HOME nor HOME is set)", ErrTargetNotFound)
	}

	return "", fmt.Errorf("%w (tried %s)", ErrTargetNotFound, strings.Join(candidates, ", "))
}
