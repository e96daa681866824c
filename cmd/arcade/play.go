package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tickarcade/internal/platform/tui"
	"github.com/vovakirdan/tickarcade/internal/registry"
	"github.com/vovakirdan/tickarcade/internal/session"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter         - Start round
  Space         - Flap (flappy), pause (snake), place mark (tictactoe)
  Arrows/WASD   - Move, Up also flaps (flappy)
  1-9           - Place mark by numpad layout (tictactoe)
  P             - Pause
  R             - Restart (after game over)
  Esc           - Pause (snake), otherwise leave the round
  Q/Ctrl+C      - Quit

Difficulty options (flappy, snake):
  easy   - Slow start, progresses to max
  normal - Default tuning
  hard   - Fast start
  fixed  - No progression, stays at config's initial level

Mode options (tictactoe):
  cpu     - You (X) against the computer (O)
  hotseat - Two players on one keyboard

Without --difficulty or --mode an options screen is shown first.

Examples:
  arcade play flappy
  arcade play snake --difficulty hard
  arcade play tictactoe --mode hotseat
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode, e.g. cpu or hotseat for tictactoe")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	gameID := args[0]

	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}

	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	logger, closeLog := tuiLogger(app)
	defer closeLog()

	cfg := runtimeConfig()

	opts := registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Mode:       flagMode,
	}

	if flagDifficulty == "" && flagMode == "" {
		chosen, _, err := tui.RunOptions(ctx, gameID, opts, cfg)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if chosen == nil {
			return nil
		}
		opts = *chosen
	}

	game, err := registry.Create(gameID, opts)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var store session.ScoreStore
	if b := openStore(ctx, app, logger); b != nil {
		defer b.Close()
		store = b
	}

	sess := session.New(ctx, game, store, cfg, logger)
	if _, err := tui.Run(ctx, sess, cfg, logger); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
