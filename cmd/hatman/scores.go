package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crazy-hatman/internal/platform/tui"
	"github.com/vovakirdan/crazy-hatman/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlain  bool
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs.

In a terminal this opens an interactive scoreboard; with --plain, or
when output is piped, a text table is printed instead.

Examples:
  hatman scores
  hatman scores --plain --limit 5
  hatman scores --player ann
  hatman scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text table instead of the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearRuns()
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && flagScoresPlayer == "" && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, stats, err := loadRuns(store, flagScoresPlayer, flagScoresLimit)
	if err != nil {
		return err
	}

	writeRuns(os.Stdout, runs, stats)
	return nil
}

// loadRuns returns the best runs and their stats, for one player when player is set.
func loadRuns(store *storage.Store, player string, limit int) ([]storage.RunRecord, *storage.Stats, error) {
	if player == "" {
		runs, err := store.TopRuns(limit)
		if err != nil {
			return nil, nil, err
		}
		stats, err := store.Stats()
		return runs, stats, err
	}

	runs, err := store.PlayerRuns(player, limit)
	if err != nil {
		return nil, nil, err
	}
	stats, err := store.PlayerStats(player)
	return runs, stats, err
}

// writeRuns prints runs as a text table followed by a stats summary.
func writeRuns(w io.Writer, runs []storage.RunRecord, stats *storage.Stats) {
	fmt.Fprintln(w, "Crazy Hatman - Best Runs")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'hatman play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-14s  %-6s  %-5s  %-8s  %s\n", "Rank", "Player", "Score", "Level", "Outcome", "Date")
	fmt.Fprintf(w, "  %-4s  %-14s  %-6s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "-------", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-14s  %-6d  %-5d  %-8s  %s\n",
			i+1, r.Player, r.Score, r.Level, r.Outcome, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats != nil && stats.Runs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Runs: %d  Cleared: %d  Average: %.0f\n",
			stats.HighScore, stats.Runs, stats.Cleared, stats.AvgScore)
	}
}
