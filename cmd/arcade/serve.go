package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tickarcade/internal/logging"
	"github.com/vovakirdan/tickarcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Games are single-player; connections only share the leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --store redis             # Share scores through redis

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting a client")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	if cmd.Flag("ssh").Changed {
		app.SSH.Address = flagSSHAddr
	}
	if cmd.Flag("host-key").Changed {
		app.SSH.HostKeyPath = flagHostKey
	}
	if cmd.Flag("idle-timeout").Changed {
		app.SSH.IdleTimeout = flagIdleTimeout
	}

	logger := logging.New(app.LogLevel, "arcade")

	store := openStore(ctx, app, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(app.SSH, store, runtimeConfig(), logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting arcade SSH server on %s\n", app.SSH.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
