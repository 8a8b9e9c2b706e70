package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghost-catcher/internal/config"
	"github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch"
	"github.com/vovakirdan/ghost-catcher/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Ghost Catcher SSH server",
	Long: `Start an SSH server where every connection plays its own session.

Sessions share the round journal when --db is set. The clipboard
copy key is disabled for remote players.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ghostcatcher/host_key

Examples:
  ghostcatcher serve                           # Listen on :23234
  ghostcatcher serve --ssh :2222               # Listen on port 2222
  ghostcatcher serve --host-key ./my_host_key  # Use specific host key
  ghostcatcher serve --db ./rounds.db          # Journal every round

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if _, err := config.LoadGhostCatch(flagConfig); err != nil {
		return err
	}
	ghostcatch.SetConfigPath(flagConfig)
	ghostcatch.SetDifficultyPreset(preset)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = ghostcatch.ID
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = newLogger("ghostcatcher-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Ghost Catcher SSH server listening on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
