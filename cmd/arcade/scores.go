package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tickarcade/internal/logging"
	"github.com/vovakirdan/tickarcade/internal/registry"
	"github.com/vovakirdan/tickarcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade scores flappy
  arcade scores snake --limit 20
  arcade scores tictactoe --store redis
  arcade scores snake --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history and best score of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	gameID := args[0]

	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}
	title := registry.Title(gameID)

	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewWriter(cmd.ErrOrStderr(), app.LogLevel, "scores")

	store, err := storage.Open(ctx, app)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(ctx, gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		logger.Info("scores cleared", "game", gameID, "store", app.Store)
		fmt.Fprintf(out, "Scores cleared for %s\n", title)
		return nil
	}

	scores, err := store.TopScores(ctx, gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(out)
	if best, err := store.BestScore(ctx, gameID); err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}

	if reporter, ok := store.(storage.StatsReporter); ok {
		stats, err := reporter.Stats(ctx, gameID)
		if err != nil {
			logger.Warn("stats unavailable", "game", gameID, "err", err)
			return nil
		}
		fmt.Fprintf(out, "Games: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
