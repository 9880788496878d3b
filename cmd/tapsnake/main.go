// tapsnake is a touch-driven Snake game for the terminal.
//
// Usage:
//
//	tapsnake                 - Play a local game (same as play)
//	tapsnake play            - Play a local game
//	tapsnake serve           - Start SSH server for remote play
//	tapsnake sessions        - Show the SSH session journal
//	tapsnake config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible apple placement
//	--config <path>      - Load configuration from a YAML file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file (play discards logs by default)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tapsnake",
	Short: "Tap Snake - Snake for touchscreens, played in your terminal",
	Long: `Tap Snake is a Snake game controlled by taps. Click the left half of
the screen to turn counter-clockwise and the right half to turn clockwise.
The Pause button at the top pauses and resumes the game.

Available commands:
  play      - Play a local game (default)
  serve     - Start SSH server for remote play
  sessions  - Show the SSH session journal
  config    - Print the effective configuration

Examples:
  tapsnake
  tapsnake play --seed 42
  tapsnake serve --ssh :2222
  tapsnake config --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
