// tennis is a terminal recreation of the 1972 two-paddle arcade tennis game.
//
// Usage:
//
//	tennis list              - List available modes
//	tennis play [mode]       - Play a mode (menu when omitted)
//	tennis serve             - Start SSH server for remote play
//	tennis geometry          - Print the calibrated playfield layout
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
)

var (
	// Global flags
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

// logOutput is closed after the command finishes.
var logOutput io.Closer

func main() {
	err := rootCmd.Execute()
	if logOutput != nil {
		logOutput.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tennis",
	Short: "Tennis - the 1972 paddle game in your terminal",
	Long: `Tennis recreates the original two-paddle arcade game in the terminal.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly, or pick one from a menu
  serve     - Start SSH server for remote play
  geometry  - Print the playfield layout for the current calibration

Examples:
  tennis play
  tennis play tennis-cpu --difficulty hard
  tennis serve --ssh :2222
  tennis geometry --config ./my-tennis.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play logs are discarded otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(geometryCmd)
}

// setupLogging installs the game logger. The terminal is taken over by the
// game screen, so logs only go to a file when one is given.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logOutput = f

	tennis.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tennis",
	}))
	return nil
}
