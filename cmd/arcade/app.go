package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tickarcade/internal/config"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/logging"
	"github.com/vovakirdan/tickarcade/internal/registry"
	"github.com/vovakirdan/tickarcade/internal/storage"
)

// unknownGame reports an id that is not registered.
func unknownGame(id string) error {
	return fmt.Errorf("%w %q, run 'arcade list' to see available games", registry.ErrUnknownGame, id)
}

// loadApp reads the app config and lets explicitly set flags override it.
func loadApp(cmd *cobra.Command) (config.AppConfig, error) {
	app, err := config.LoadApp(flagAppConfig)
	if err != nil {
		return app, err
	}

	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}

	if changed("log-level") {
		app.LogLevel = flagLogLevel
	}
	if changed("store") {
		app.Store = flagStore
	}
	if changed("db") {
		app.DBPath = flagDBPath
	}
	if changed("redis-addr") {
		host, port, err := net.SplitHostPort(flagRedisAddr)
		if err != nil {
			return app, fmt.Errorf("invalid --redis-addr %q: %w", flagRedisAddr, err)
		}
		app.Redis.Host = host
		app.Redis.Port = port
	}

	return app, nil
}

// runtimeConfig builds the per-session runtime settings from the terminal
// size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the configured score store. Interactive commands keep
// playing without one, so the error is logged and a nil store returned.
func openStore(ctx context.Context, app config.AppConfig, logger *log.Logger) storage.Backend {
	store, err := storage.Open(ctx, app)
	if err != nil {
		logger.Warn("could not open score store, scores will not be saved", "store", app.Store, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		return nil
	}
	return store
}

// tuiLogger writes to ~/.arcade/arcade.log so log lines never land on the
// game screen. The returned func closes the file.
func tuiLogger(app config.AppConfig) (*log.Logger, func()) {
	path := config.ExpandHome("~/.arcade/arcade.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logging.Discard(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.Discard(), func() {}
	}
	return logging.NewWriter(f, app.LogLevel, "arcade"), func() { f.Close() }
}
