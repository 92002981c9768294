package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/games/arcade"
	"github.com/digiresist/reboot-arcade/internal/games/shooter"
	"github.com/digiresist/reboot-arcade/internal/games/survival"
	"github.com/digiresist/reboot-arcade/internal/platform/tui"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
	"github.com/digiresist/reboot-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right  - Move crosshair / select item
  W/S, Up/Down     - Select slot
  Space/F          - Fire / place component
  Mouse click      - Aimed shot
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Gentler spawns and more lives
  normal - Defaults from config
  hard   - Faster spawns, fewer lives
  fixed  - No difficulty progression

Note: a direct 'play' starts a fresh campaign, so challenge games begin
locked behind their predecessors. Use 'reboot menu' to work through the
challenge ladder.

Examples:
  reboot play arcade
  reboot play shooter --difficulty easy
  reboot play survival --difficulty hard
  reboot play arcade --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'reboot list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameFlags(gameID)

	// A standalone play session gets its own campaign
	session := progression.NewStore()

	game, err := registry.Create(gameID, session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, session, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags routes the --config and --difficulty flags to the games
// that support them before creation.
func applyGameFlags(gameID string) {
	switch gameID {
	case "arcade":
		arcade.SetConfigPath(flagConfig)
		arcade.SetDifficultyPreset(flagDifficulty)
	case "shooter":
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
	case "survival":
		survival.SetConfigPath(flagConfig)
		survival.SetDifficultyPreset(flagDifficulty)
	}
}
