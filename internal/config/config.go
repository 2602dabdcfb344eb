// Package config loads cscycle's own settings and locates the terminal
// configuration file it rewrites.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/cscycle/internal/fs"
	"github.com/calvinalkan/cscycle/internal/scheme"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	File     string `json:"file,omitempty"` // Explicit target path, skips discovery
	App      string `json:"app"`
	FileName string `json:"file_name"`
	Key      string `json:"key"` // Field marker of the reference line
	Editor   string `json:"editor,omitempty"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global   string // Path to global config if loaded, empty otherwise
	Explicit string // Path to -c/--config file if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		App:      "alacritty",
		FileName: "alacritty.yml",
		Key:      scheme.DefaultKey,
	}
}

// ToolName is the directory name of cscycle's own global config.
const ToolName = "cscycle"

// globalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/cscycle/config.json if set, otherwise ~/.config/cscycle/config.json.
// Returns empty string if home directory cannot be determined.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, ToolName, "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", ToolName, "config.json")
	}

	return ""
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	ConfigPath   string            // -c/--config flag value
	FileOverride string            // -f/--file flag value; empty means no override
	WorkDir      string            // base for relative paths
	Env          map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/cscycle/config.json or ~/.config/cscycle/config.json)
// 3. Explicit config file via ConfigPath (if non-empty, must exist)
// 4. CLI overrides.
//
// A relative File is resolved against WorkDir.
func Load(fsys fs.FS, input LoadInput) (Config, error) {
	cfg := DefaultConfig()

	if path := globalConfigPath(input.Env); path != "" {
		globalCfg, loaded, err := loadFile(fsys, path, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg.Sources.Global = path
			cfg = merge(cfg, globalCfg)
		}
	}

	if input.ConfigPath != "" {
		path := absPath(input.WorkDir, input.ConfigPath)

		explicitCfg, _, err := loadFile(fsys, path, true)
		if err != nil {
			return Config{}, err
		}

		cfg.Sources.Explicit = path
		cfg = merge(cfg, explicitCfg)
	}

	if input.FileOverride != "" {
		cfg.File = input.FileOverride
	}

	if cfg.File != "" {
		cfg.File = absPath(input.WorkDir, expandHome(cfg.File, input.Env))
	}

	return cfg, nil
}

// loadFile loads a config file. If mustExist is false, missing files return
// zero config and loaded=false.
func loadFile(fsys fs.FS, path string, mustExist bool) (Config, bool, error) {
	exists, err := fsys.Exists(path)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, path, err)
	}

	if !exists {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}

		return Config{}, false, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

// explicitlyEmpty lists fields that must not be set to "".
var explicitlyEmpty = []string{"app", "file_name", "key"}

func parse(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// Check which fields were explicitly set to empty
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	for _, field := range explicitlyEmpty {
		if val, exists := raw[field]; exists {
			if str, ok := val.(string); ok && strings.TrimSpace(str) == "" {
				return Config{}, fmt.Errorf("%w: %s", ErrFieldEmpty, field)
			}
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.File != "" {
		base.File = overlay.File
	}

	if overlay.App != "" {
		base.App = overlay.App
	}

	if overlay.FileName != "" {
		base.FileName = overlay.FileName
	}

	if overlay.Key != "" {
		base.Key = overlay.Key
	}

	if overlay.Editor != "" {
		base.Editor = overlay.Editor
	}

	return base
}

// Format renders cfg as the JSON a user could put in their global config.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	return string(data), nil
}

func absPath(workDir, path string) string {
	if filepath.IsAbs(path) || workDir == "" {
		return path
	}

	return filepath.Join(workDir, path)
}

// expandHome replaces a leading "~/" with $HOME.
func expandHome(path string, env map[string]string) string {
	home := env["HOME"]
	if home == "" {
		return path
	}

	if path == "~" {
		return home
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}

	return path
}
