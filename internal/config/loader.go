package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thruflo/guess/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultColor    = ColorAuto
	DefaultLogLevel = "warn"
)

// DefaultConfig returns a Config with the secret hidden, colour detected
// from the terminal and warnings-only logging.
func DefaultConfig() Config {
	return Config{
		RevealSecret: false,
		Color:        DefaultColor,
		LogLevel:     DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the location of the config file under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, ".guess", "config.yaml")
}

// LoadConfig reads and parses .guess/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
func LoadConfig(basePath string) (*Config, error) {
	return LoadConfigFile(Path(basePath))
}

// LoadConfigFile reads and parses the config file at path.
// A missing file yields the defaults; fields absent from the file keep
// their defaults. Unknown keys are rejected.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if err := ValidateColor(cfg.Color); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// ValidateColor checks a colour mode coming from the file or a flag.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return ValidationError{Field: "color", Message: "must be one of auto, always, never"}
	}
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
