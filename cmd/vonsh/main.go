// vonsh is a snake game where the snake is a queue of little people.
//
// Usage:
//
//	vonsh play               - Play in the terminal
//	vonsh play -f window     - Play in a desktop window
//	vonsh list               - List available frontends
//	vonsh serve              - Start SSH server for remote play
//	vonsh scores             - Show the hall of fame
//	vonsh config             - Show the effective settings
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.vonsh/scores.db)
//	--config <path>     - Use a specific settings file
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vonsh/internal/storage"

	// Import frontends to register them
	_ "github.com/vovakirdan/vonsh/internal/platform/gfx"
	_ "github.com/vovakirdan/vonsh/internal/platform/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vonsh",
	Short: "vonsh - lead a growing queue of people around the board",
	Long: `vonsh is a snake game. Every meal brings more people into the
queue that follows you, and walls appear as the score grows.

Available commands:
  play     - Play in the terminal or in a window
  list     - Show all available frontends
  serve    - Start SSH server for remote play
  scores   - View the hall of fame
  config   - Show the effective settings

Examples:
  vonsh play
  vonsh play --frontend window
  vonsh serve --ssh :2222
  vonsh scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vonsh/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger at the --log-level level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "vonsh",
		Level:           level,
	})
	return logger, nil
}

// logToFile points logger at ~/.vonsh/vonsh.log while a frontend owns the
// terminal. The returned func restores stderr and closes the file.
func logToFile(logger *log.Logger) (func(), error) {
	path, err := storage.ExpandHome("~/.vonsh/vonsh.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
