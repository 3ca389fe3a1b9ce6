// hatman is Crazy Hatman: a top-down arena shooter for the terminal.
//
// Usage:
//
//	hatman                   - Play (same as hatman play)
//	hatman play              - Play locally
//	hatman serve             - Start SSH server for remote play
//	hatman scores            - Show recorded runs
//	hatman levels            - Show the level table
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.hatman/scores.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazy-hatman/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// appCfg is loaded before every command runs.
	appCfg config.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hatman",
	Short: "Crazy Hatman - survive the hat-stealing hordes in your terminal",
	Long: `Crazy Hatman is a top-down arena shooter played in the terminal.

Move with the arrow keys or WASD, aim with the mouse and fire with
space or a click. Collect falling hats: the crown doubles your damage,
the spade turns your next shot into a ring of blades. You have one
life and ten health. Defeat ten enemies to clear a level, three levels
to beat the game.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  levels   - Show the level table

Examples:
  hatman
  hatman play --seed 42
  hatman serve --ssh :2222
  hatman scores --plain`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

func init() {
	def := config.DefaultAppConfig()
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", def.Display.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", def.Storage.DBPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", def.Log.Level, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		cfg.Display.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return err
	}

	appCfg = cfg
	return nil
}
