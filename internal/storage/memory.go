package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is a process-local store. Used for `--store memory` and tests.
type Memory struct {
	mu      sync.Mutex
	best    map[string]int
	history map[string][]ScoreEntry
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		best:    make(map[string]int),
		history: make(map[string][]ScoreEntry),
	}
}

func (m *Memory) BestScore(_ context.Context, gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best[gameID], nil
}

func (m *Memory) SetBestScore(_ context.Context, gameID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best[gameID] = score
	return nil
}

func (m *Memory) SaveScore(_ context.Context, gameID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[gameID] = append(m.history[gameID], ScoreEntry{
		ID:        uuid.NewString(),
		GameID:    gameID,
		Score:     score,
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *Memory) TopScores(_ context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	m.mu.Lock()
	entries := make([]ScoreEntry, len(m.history[gameID]))
	copy(entries, m.history[gameID])
	m.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *Memory) ClearScores(_ context.Context, gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.history, gameID)
	delete(m.best, gameID)
	return nil
}

func (m *Memory) Stats(_ context.Context, gameID string) (GameStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := GameStats{GameID: gameID}
	for _, e := range m.history[gameID] {
		stats.GamesCount++
		stats.TotalScore += int64(e.Score)
		if e.Score > stats.HighScore {
			stats.HighScore = e.Score
		}
		if e.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = e.CreatedAt
		}
	}
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	return stats, nil
}

func (m *Memory) Close() error {
	return nil
}
