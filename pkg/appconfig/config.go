// Package appconfig loads the optional driftkit.yaml settings file and
// builds the logger the rest of the kit writes through.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kibmuikia/driftkit/pkg/apperrors"
)

// FileName is the settings file looked up by LoadOptional.
const FileName = "driftkit.yaml"

// defaultSnackbarDuration is used when the file sets no duration.
const defaultSnackbarDuration = 4 * time.Second

// Config represents the optional driftkit.yaml configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Snackbar SnackbarConfig `yaml:"snackbar"`
}

// LogConfig controls the kit's logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `yaml:"level,omitempty"`
	// Verbose includes captured stacks in reported error records.
	Verbose bool `yaml:"verbose,omitempty"`
}

// SnackbarConfig holds display defaults for the snackbar helper.
type SnackbarConfig struct {
	// DurationMS is the auto-dismiss delay in milliseconds.
	// Zero means the built-in default.
	DurationMS int `yaml:"duration_ms,omitempty"`
}

// Duration returns the configured auto-dismiss delay, falling back to
// the built-in default when unset.
func (s SnackbarConfig) Duration() time.Duration {
	if s.DurationMS > 0 {
		return time.Duration(s.DurationMS) * time.Millisecond
	}
	return defaultSnackbarDuration
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// LoadOptional reads driftkit.yaml from dir if present. A missing file
// yields the defaults; unreadable or malformed files come back as a
// ConfigError so callers can surface them through the usual taxonomy.
func LoadOptional(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Load reads the settings file at path. See LoadOptional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, configError("failed to read %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("failed to parse %s: %v", path, err)
	}

	return &cfg, nil
}

func configError(format string, args ...any) error {
	return &apperrors.ConfigError{Message: fmt.Sprintf(format, args...)}
}
