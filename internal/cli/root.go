package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/guess/internal/config"
	"github.com/thruflo/guess/internal/game"
	"github.com/thruflo/guess/internal/logging"
	"github.com/thruflo/guess/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	rootReveal     bool
	rootVerbose    bool
	rootColor      string
	rootLogLevel   string
	rootConfigPath string
)

// newSource is replaced in tests to fix the secret.
var newSource = game.DefaultSource

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess a secret number between 1 and 100",
	Long: `Guess picks a secret number between 1 and 100 and reads guesses from
standard input, one per line, until you find it. After each guess it tells
you whether the guess was too small or too big.

Example:
  guess
  printf '50\n25\n37\n' | guess`,
	Args:          cobra.NoArgs,
	RunE:          runGame,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("guess version {{.Version}}\n")

	rootCmd.Flags().BoolVar(&rootReveal, "reveal", false, "Print the secret number at start (debugging only)")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log every guess to stderr")
	rootCmd.Flags().StringVar(&rootLogLevel, "log-level", config.DefaultLogLevel, "Minimum stderr log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&rootColor, "color", config.ColorAuto, "Colour feedback: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config file (default .guess/config.yaml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("reveal") {
		cfg.RevealSecret = rootReveal
	}
	if cmd.Flags().Changed("color") {
		if err := config.ValidateColor(rootColor); err != nil {
			return err
		}
		cfg.Color = rootColor
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rootLogLevel
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr())
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.ValidationError{Field: "log_level", Message: err.Error()}
	}
	if rootVerbose {
		level = logging.LevelDebug
	}
	logger.SetLevel(level)

	out := cmd.OutOrStdout()
	session := game.NewSession(newSource(), cmd.InOrStdin(), out,
		game.WithReveal(cfg.RevealSecret),
		game.WithLogger(logger),
		game.WithStyle(tui.NewStyle(tui.ColorEnabled(cfg.Color, out))),
	)

	if _, err := session.Run(); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	return nil
}

// loadConfig reads --config if given, otherwise .guess/config.yaml in the
// working directory.
func loadConfig() (*config.Config, error) {
	if rootConfigPath != "" {
		cfg, err := config.LoadConfigFile(rootConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
