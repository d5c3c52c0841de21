// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultLogLevel     = "warn"
	DefaultDoneGlyph    = "🗹"
	DefaultPendingGlyph = "☐"

	// appDir is the fixed per-user directory holding the task file
	// and the optional user config file.
	appDir = ".taskgo"

	tasksFileName  = "tasks.json"
	configFileName = "taskgo.toml"
)

// Config holds the full configuration for taskgo.
//
// The task file path is computed from the home directory and is
// deliberately not configurable; only presentation and logging
// knobs live in the config file.
type Config struct {
	// Logging
	LogLevel string `toml:"log_level"`

	// Output
	NoColor      bool   `toml:"no_color"`
	DoneGlyph    string `toml:"done_glyph"`
	PendingGlyph string `toml:"pending_glyph"`

	// TasksFile is the resolved task file path (computed).
	TasksFile string `toml:"-"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.taskgo/taskgo.toml or OS-specific config dir)
// 3. CLI flags
//
// The flags are registered on fs, so the caller may add its own flags
// before calling Load.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if _, err := toml.DecodeFile(userConfigFile, cfg); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Parse CLI flags (they override everything)
	debug := fs.Bool("debug", false, "Enable debug logging")
	noColor := fs.Bool("no-color", cfg.NoColor, "Disable ANSI styling")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if *noColor {
		cfg.NoColor = true
	}

	// 4. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.DoneGlyph = DefaultDoneGlyph
	cfg.PendingGlyph = DefaultPendingGlyph
}

// finalizeConfig computes the task file path and fills glyph gaps left
// by a partial config file.
func finalizeConfig(cfg *Config) error {
	if cfg.DoneGlyph == "" {
		cfg.DoneGlyph = DefaultDoneGlyph
	}
	if cfg.PendingGlyph == "" {
		cfg.PendingGlyph = DefaultPendingGlyph
	}

	if cfg.TasksFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.TasksFile = filepath.Join(home, appDir, tasksFileName)
	}

	return nil
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.taskgo/taskgo.toml first, then falls back to OS-specific
// config directories if ~/.taskgo doesn't exist.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, appDir, configFileName)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		userConfigPath := filepath.Join(cfgDir, "taskgo", configFileName)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}
