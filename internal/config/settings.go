package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Storage backends understood by the store package
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Settings holds application preferences. They are read from config.toml and then
// overridden by RUNWAY_* environment variables.
type Settings struct {
	Storage StorageSettings `toml:"storage"`
	Output  OutputSettings  `toml:"output"`
	Verbose bool            `toml:"verbose" env:"RUNWAY_VERBOSE"`
}

// StorageSettings selects where the snapshot is persisted
type StorageSettings struct {
	Backend string `toml:"backend" env:"RUNWAY_STORAGE_BACKEND"`
	// Path is the database file for sqlite and the directory for file
	Path string `toml:"path" env:"RUNWAY_STORAGE_PATH"`
}

// OutputSettings holds report preferences
type OutputSettings struct {
	Format string `toml:"format" env:"RUNWAY_OUTPUT_FORMAT"`
}

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			Backend: BackendSQLite,
			Path:    filepath.Join(DataDir(), "runway.db"),
		},
		Output: OutputSettings{Format: "console"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "runway")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the stored snapshot.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "runway")
}

// LoadSettings reads the settings file at path, returning defaults if it doesn't exist,
// then applies environment overrides.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing settings: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveSettings writes the settings to path.
func SaveSettings(path string, cfg Settings) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing settings file: %w", cerr)
		}
	}()

	return toml.NewEncoder(f).Encode(cfg)
}

// SettingsExist returns true if a settings file exists at path.
func SettingsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
