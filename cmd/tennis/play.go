package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
	"github.com/vovakirdan/tui-tennis/internal/platform/tui"
	"github.com/vovakirdan/tui-tennis/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or pick one from a menu.

Modes:
  tennis      - Two players on one keyboard
  tennis-cpu  - Left player against a CPU on the right
  attract     - Watch the ball bounce; R starts a game

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down (also the left paddle against the CPU)
  P/Space    - Pause
  R          - New game (after a win)
  Q/Ctrl+C   - Quit

Difficulty options (CPU opponent and paddle speed):
  easy, normal, hard

Examples:
  tennis play
  tennis play tennis
  tennis play tennis-cpu --difficulty easy
  tennis play tennis --config ./my-tennis.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail before the alternate screen hides the message
	if _, err := config.LoadTennis(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tennis.SetConfigPath(flagConfig)
	tennis.SetDifficultyPreset(preset)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if len(args) == 1 {
		if err := playMode(args[0], cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Menu loop: return to the menu after each match
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		cfg = result.Config

		if err := playMode(result.GameID, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func playMode(id string, cfg core.RuntimeConfig) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown mode %q (run 'tennis list' to see available modes)", id)
	}

	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
