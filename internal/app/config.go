package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"userstore/internal/codec"
)

// ConfigFileName is looked up inside Home when no explicit config path is given.
const ConfigFileName = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `yaml:"-"`          // config directory, e.g. $HOME/.userstore
	Dir       string `yaml:"dir"`        // record directory; defaults to <Home>/data
	HideFiles bool   `yaml:"hide_files"` // prefix record files with "."
	Codec     string `yaml:"codec"`      // "json" or "yaml"
	Framed    bool   `yaml:"framed"`     // wrap records in a checksummed frame
	Verbose   bool   `yaml:"verbose"`    // debug logging
	Ephemeral bool   `yaml:"ephemeral"`  // keep records in memory only
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		HideFiles: true,
		Codec:     codec.NameJSON,
		Framed:    true,
	}
}

// DefaultHome returns $HOME/.userstore.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".userstore"), nil
}

// LoadConfig overlays the YAML file at path onto base. A missing file is not an
// error when optional is true.
func LoadConfig(path string, base Config, optional bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// DataDir returns the record directory, defaulting to <Home>/data.
func (c Config) DataDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(c.Home, "data")
}
