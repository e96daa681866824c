// arcade is a terminal arcade for tick-based games: Flappy Bird, Snake and
// Tic-Tac-Toe.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Tick rate for fixed-cadence games (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - SQLite database path (default: ~/.arcade/scores.db)
//	--store <name>        - Score store: sqlite, redis or memory
//	--redis-addr <addr>   - Redis host:port for --store redis
//	--log-level <level>   - debug, info, warn or error
//	--app-config <path>   - App config YAML (default: ~/.arcade/arcade.yml)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tickarcade/internal/games/flappy"
	_ "github.com/vovakirdan/tickarcade/internal/games/snake"
	_ "github.com/vovakirdan/tickarcade/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagStore     string
	flagRedisAddr string
	flagLogLevel  string
	flagAppConfig string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Tick Arcade - Play Flappy Bird, Snake and Tic-Tac-Toe in your terminal",
	Long: `Tick Arcade runs small tick-based games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play flappy
  arcade play snake --difficulty hard
  arcade play tictactoe --mode hotseat
  arcade menu
  arcade serve --ssh :2222
  arcade scores snake`,
	// Commands return errors; main prints them once and exits non-zero
	// after every deferred cleanup has run.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate for fixed-cadence games (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "Score store: sqlite, redis or memory")
	rootCmd.PersistentFlags().StringVar(&flagRedisAddr, "redis-addr", "localhost:6379", "Redis address for --store redis")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagAppConfig, "app-config", "", "Path to app config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
