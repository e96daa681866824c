// Package storage persists best scores and score history for the arcade.
// Three backends share one interface: SQLite (default), Redis and memory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tickarcade/internal/config"
)

// ErrUnknownBackend is returned by Open for a store name it does not know.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Backend is a score store. It satisfies session.ScoreStore and
// session.ScoreRecorder.
type Backend interface {
	BestScore(ctx context.Context, gameID string) (int, error)
	SetBestScore(ctx context.Context, gameID string, score int) error
	SaveScore(ctx context.Context, gameID string, score int) error
	TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error)
	ClearScores(ctx context.Context, gameID string) error
	Close() error
}

// StatsReporter is implemented by backends that can aggregate history.
type StatsReporter interface {
	Stats(ctx context.Context, gameID string) (GameStats, error)
}

// ScoreEntry represents a single history record.
type ScoreEntry struct {
	ID        string
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

const defaultLimit = 10

// Open creates the backend named by cfg.Store.
func Open(ctx context.Context, cfg config.AppConfig) (Backend, error) {
	switch strings.ToLower(cfg.Store) {
	case "", "sqlite":
		return OpenSQLite(cfg.DBPath)
	case "redis":
		return OpenRedis(ctx, cfg.Redis)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, cfg.Store)
	}
}
