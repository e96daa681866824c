package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSQLiteBestScorePersists(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := store.SetBestScore(ctx, "snake", 120); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	store.Close()

	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	best, err := reopened.BestScore(ctx, "snake")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 120 {
		t.Errorf("BestScore() = %d, expected 120 after reopen", best)
	}
}

func TestSQLiteTopScoresLimit(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.SaveScore(ctx, "test", (i+1)*100); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, "test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].ID == "" {
		t.Error("entry ID should be set")
	}
}

func TestSQLiteStats(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	stats, err := store.Stats(ctx, "flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, s := range []int{10, 30, 20} {
		store.SaveScore(ctx, "flappy", s)
	}

	stats, err = store.Stats(ctx, "flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.TotalScore != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
}
