package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazy-hatman/internal/games/hatman"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long:  `Shows spawn pacing and enemy mix for every level.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		writeLevels(os.Stdout)
		return nil
	},
}

func writeLevels(w io.Writer) {
	fmt.Fprintf(w, "Levels (clear a level by defeating %d enemies):\n\n", hatman.DefeatQuota)
	fmt.Fprintf(w, "  %-5s  %-12s  %-6s  %-8s  %s\n", "Level", "Spawn every", "Scout", "Soldier", "Brute")
	fmt.Fprintf(w, "  %-5s  %-12s  %-6s  %-8s  %s\n", "-----", "-----------", "-----", "-------", "-----")

	for _, l := range hatman.Levels() {
		spawn := fmt.Sprintf("%.2fs", float64(l.SpawnInterval)/hatman.TickRate)
		fmt.Fprintf(w, "  %-5d  %-12s  %-6s  %-8s  %s\n",
			l.Number, spawn,
			percent(l.Chance(hatman.TierScout)),
			percent(l.Chance(hatman.TierSoldier)),
			percent(l.Chance(hatman.TierBrute)),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Any spawn has a %s chance to be an elite instead.\n", percent(hatman.EliteChance))
}

func percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}
