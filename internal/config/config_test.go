package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	var flappy FlappyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("flappy"), &flappy); err != nil {
		t.Fatalf("flappy.yaml: %v", err)
	}
	if flappy != DefaultFlappyConfig() {
		t.Errorf("flappy.yaml = %+v\nbuiltin = %+v", flappy, DefaultFlappyConfig())
	}

	var snake SnakeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("snake"), &snake); err != nil {
		t.Fatalf("snake.yaml: %v", err)
	}
	if snake != DefaultSnakeConfig() {
		t.Errorf("snake.yaml = %+v\nbuiltin = %+v", snake, DefaultSnakeConfig())
	}

	var ttt TicTacToeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tictactoe"), &ttt); err != nil {
		t.Fatalf("tictactoe.yaml: %v", err)
	}
	if ttt != DefaultTicTacToeConfig() {
		t.Errorf("tictactoe.yaml = %+v\nbuiltin = %+v", ttt, DefaultTicTacToeConfig())
	}

	if GetDefaultYAML("pacman") != nil {
		t.Error("unknown game should have no embedded config")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 8\n  height: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Grid.Width != 8 || cfg.Grid.Height != 6 {
		t.Errorf("grid = %+v, expected 8x6", cfg.Grid)
	}
	if cfg.Timing.IntervalMS != 150 || cfg.Scoring.Apple != 10 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(path); err == nil {
		t.Error("malformed explicit config should fail")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tictactoe.yaml"), []byte("mode: hotseat\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTicTacToe("")
	if err != nil {
		t.Fatalf("LoadTicTacToe: %v", err)
	}
	if cfg.Mode != "hotseat" || cfg.ThinkTicks != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"", DifficultyNormal},
		{"easy", DifficultyEasy},
		{"HARD", DifficultyHard},
		{" fixed ", DifficultyFixed},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}

	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, expected ErrUnknownPreset", err)
	}
}

func TestSnakePresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		interval int
		speedUp  int
	}{
		{DifficultyEasy, 200, 50},
		{DifficultyNormal, 150, 50},
		{DifficultyHard, 100, 50},
		{DifficultyFixed, 150, 0},
	}
	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, tc.preset)
		if cfg.Timing.IntervalMS != tc.interval || cfg.Timing.SpeedUpEvery != tc.speedUp {
			t.Errorf("%s: timing = %+v", tc.preset, cfg.Timing)
		}
	}
}

func TestSnakeNormalKeepsLoadedInterval(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Timing.IntervalMS = 120
	ApplySnakePreset(&cfg, DifficultyNormal)
	if cfg.Timing.IntervalMS != 120 {
		t.Errorf("normal changed interval_ms to %d", cfg.Timing.IntervalMS)
	}
}

func TestFlappyPresets(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyFlappyPreset(&cfg, DifficultyNormal)
	if cfg.Difficulty.Enabled {
		t.Error("normal should keep progression off")
	}

	ApplyFlappyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard = %+v", cfg.Difficulty)
	}

	ApplyFlappyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed should disable progression")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty

	off := NewDifficultyManager(cfg)
	if off.IsEnabled() {
		t.Error("default flappy difficulty should be off")
	}
	if got := off.Speed(2.5, 100, 0); got != 2.5 {
		t.Errorf("disabled Speed = %v, expected base", got)
	}
	if got := off.GapSize(160, 100, 0); got != 160 {
		t.Errorf("disabled GapSize = %v, expected base", got)
	}

	cfg.Enabled = true
	on := NewDifficultyManager(cfg)
	if got := on.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v", got)
	}
	if got := on.Level(25, 0); got != 0.5 {
		t.Errorf("Level(25) = %v, expected 0.5", got)
	}
	if got := on.Level(500, 0); got != 1 {
		t.Errorf("Level clamps at 1, got %v", got)
	}
	if got := on.GapSize(160, 50, 0); got != 120 {
		t.Errorf("GapSize at max = %v, expected 120", got)
	}
	if got := on.GapSize(110, 50, 0); got != 100 {
		t.Errorf("GapSize floor = %v, expected 100", got)
	}
	if got := on.Spacing(100, 50, 0); got != 70 {
		t.Errorf("Spacing at max = %v, expected 70", got)
	}
	if got := on.Spacing(70, 50, 0); got != 60 {
		t.Errorf("Spacing floor = %v, expected 60", got)
	}
}

func TestLoadAppFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ARCADE_STORE", "redis")
	t.Setenv("ARCADE_REDIS_PORT", "6380")

	cfg, err := LoadApp("")
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":23234", cfg.SSH.Address)
	assert.Equal(t, 30*time.Minute, cfg.SSH.IdleTimeout)
}

func TestLoadAppFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yml")
	data := "log-level: debug\nstore: memory\nssh:\n  address: \":2222\"\n  idle-timeout: 5m\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadApp(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, ":2222", cfg.SSH.Address)
	assert.Equal(t, 5*time.Minute, cfg.SSH.IdleTimeout)
	assert.Equal(t, "~/.arcade/scores.db", cfg.DBPath)
}

func TestLoadAppMissingFile(t *testing.T) {
	_, err := LoadApp(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".arcade", "scores.db"), ExpandHome("~/.arcade/scores.db"))
	assert.Equal(t, "/tmp/x.db", ExpandHome("/tmp/x.db"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}
