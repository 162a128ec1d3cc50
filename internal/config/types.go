package config

// Config represents the .guess/config.yaml file.
type Config struct {
	// RevealSecret prints the secret right after it is drawn. Debug only.
	RevealSecret bool   `yaml:"reveal_secret"`
	Color        string `yaml:"color"`
	LogLevel     string `yaml:"log_level"`
}

// Color mode values.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
