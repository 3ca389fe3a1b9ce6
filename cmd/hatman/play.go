package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crazy-hatman/internal/platform/tui"
	"github.com/vovakirdan/crazy-hatman/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Crazy Hatman",
	Long: `Start the game in this terminal.

Controls:
  Arrows/WASD   - Move
  Mouse         - Aim
  Space/Click   - Fire
  Enter         - Confirm / next level
  Esc           - Back to menu (quits from the menu)
  N / C / Q     - New game / Continue / Quit (menu)
  Ctrl+S        - Save a screenshot to ~/.hatman/screenshots
  ?             - Toggle full help
  Ctrl+C        - Exit immediately

Examples:
  hatman play
  hatman play --seed 42 --fps 30
  hatman play --player ann --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with finished runs (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closer, err := newPlayLogger(appCfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: appCfg,
		Seed:   flagSeed,
		Player: playerName(flagPlayer),
		Store:  store,
		Logger: logger,
		Width:  width,
		Height: height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// playerName picks the explicit name, then the OS user.
func playerName(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}
