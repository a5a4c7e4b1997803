// greed is a terminal game: move the robot along the bottom row to collect
// falling gems (+1) and dodge falling rocks (-1).
//
// Usage:
//
//	greed play              - Play in the terminal (or a native window)
//	greed serve             - Start SSH server for remote play
//	greed scores            - Show, export or summarize past sessions
//	greed config            - Print the effective configuration
//	greed backends          - List display backends
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.greed/scores.db)
//	--log <path>     - Write game events to a log file
//	--debug          - Log spawn and collision events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/greed/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/greed/internal/platform/terminal"
	_ "github.com/vovakirdan/greed/internal/platform/tui"
	_ "github.com/vovakirdan/greed/internal/platform/window"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "greed",
	Short: "Greed - collect gems, dodge rocks",
	Long: `Greed is a small arcade game. Gems (*) and rocks (o) fall from the
top of the field; move your robot (#) along the bottom to catch gems for a
point and avoid rocks that cost one.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View, export or summarize high scores
  config   - Print the effective configuration
  backends - List display backends

Examples:
  greed play
  greed play --backend window
  greed serve --ssh :2222
  greed scores --stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.greed/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game events to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log spawn and collision events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.GreedConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger returns the game logger. Play renders to the terminal, so events
// go to the --log file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "greed",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
