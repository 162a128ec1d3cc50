package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/guess/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .guess/config.yaml with default settings",
	Long: `Creates the .guess/ directory with a commented config.yaml holding the
default settings. The secret range is fixed and cannot be configured.

Example:
  guess init
  guess init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := rootConfigPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = config.Path(cwd)
	}

	if fileExists(path) && !initForce {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := writeConfigYAML(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func writeConfigYAML(path string) error {
	content := fmt.Sprintf(`# guess configuration

# Print the secret number right after it is drawn. Debugging only.
reveal_secret: false

# Colour feedback lines: auto (only on a terminal), always or never.
color: %s

# Minimum level logged to stderr: debug, info, warn or error.
log_level: %s
`, config.DefaultColor, config.DefaultLogLevel)
	return os.WriteFile(path, []byte(content), 0o644)
}
