package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tickarcade/internal/platform/tui"
	"github.com/vovakirdan/tickarcade/internal/registry"
	"github.com/vovakirdan/tickarcade/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive game menu",
	Long: `Opens an interactive menu where you can select a game to play.

Controls:
  Up/Down or W/S  - Navigate
  Enter/Space     - Select game
  Tab             - View scoreboard
  Q/Esc           - Quit`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	logger, closeLog := tuiLogger(app)
	defer closeLog()

	cfg := runtimeConfig()

	backend := openStore(ctx, app, logger)
	var store session.ScoreStore
	var lister tui.ScoreLister
	if backend != nil {
		defer backend.Close()
		store = backend
		lister = backend
	}

	for ctx.Err() == nil {
		result, err := tui.RunMenu(ctx, store, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			if lister == nil {
				continue
			}
			goBack, err := tui.RunScoreboard(ctx, lister, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		if result.GameID == "" {
			return nil
		}

		opts, quit, err := tui.RunOptions(ctx, result.GameID, registry.Options{}, cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if opts == nil {
			continue
		}

		game, err := registry.Create(result.GameID, *opts)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		sess := session.New(ctx, game, store, cfg, logger)
		backToMenu, err := tui.Run(ctx, sess, cfg, logger)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
	return nil
}
