package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazy-hatman/internal/platform/tui"
	"github.com/vovakirdan/crazy-hatman/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Crazy Hatman SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every SSH connection gets its own independent game. Finished runs are
recorded under the SSH user name and share one run history.

Host key handling:
  - Uses --host-key (or server.host_key from the config)
  - The key is generated on first start if the file does not exist

Examples:
  hatman serve                           # Listen on :23234
  hatman serve --ssh :2222               # Listen on port 2222
  hatman serve --host-key ./my_host_key  # Use specific host key
  hatman serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appCfg
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger := newServeLogger(cfg.Log)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger, flagSeed)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("ready", "connect", "ssh localhost -p "+portOf(cfg.Server.Address), "db", cfg.Storage.DBPath)
	return server.ListenAndServe(cmd.Context())
}

// portOf returns the port of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
