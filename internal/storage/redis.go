package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tickarcade/internal/config"
)

// Redis keeps the best score in arcade:best:<game> and the history in the
// sorted set arcade:scores:<game>. History members are "<uuid>:<unix seconds>".
type Redis struct {
	client *redis.Client
}

// OpenRedis connects to the configured server and checks it answers.
func OpenRedis(ctx context.Context, cfg config.Redis) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: failed to connect to redis at %s: %w", cfg.Addr(), err)
	}

	return NewRedis(client), nil
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func bestKey(gameID string) string {
	return "arcade:best:" + gameID
}

func historyKey(gameID string) string {
	return "arcade:scores:" + gameID
}

func (r *Redis) BestScore(ctx context.Context, gameID string) (int, error) {
	score, err := r.client.Get(ctx, bestKey(gameID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: failed to get best score: %w", err)
	}
	return score, nil
}

func (r *Redis) SetBestScore(ctx context.Context, gameID string, score int) error {
	if err := r.client.Set(ctx, bestKey(gameID), score, 0).Err(); err != nil {
		return fmt.Errorf("storage: failed to set best score: %w", err)
	}
	return nil
}

func (r *Redis) SaveScore(ctx context.Context, gameID string, score int) error {
	member := fmt.Sprintf("%s:%d", uuid.NewString(), time.Now().Unix())
	err := r.client.ZAdd(ctx, historyKey(gameID), redis.Z{
		Score:  float64(score),
		Member: member,
	}).Err()
	if err != nil {
		return fmt.Errorf("storage: failed to save score: %w", err)
	}
	return nil
}

func (r *Redis) TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	zs, err := r.client.ZRevRangeWithScores(ctx, historyKey(gameID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: failed to query scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		id, created := splitMember(member)
		entries = append(entries, ScoreEntry{
			ID:        id,
			GameID:    gameID,
			Score:     int(z.Score),
			CreatedAt: created,
		})
	}
	return entries, nil
}

func (r *Redis) ClearScores(ctx context.Context, gameID string) error {
	if err := r.client.Del(ctx, historyKey(gameID), bestKey(gameID)).Err(); err != nil {
		return fmt.Errorf("storage: failed to clear scores: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func splitMember(member string) (string, time.Time) {
	i := strings.LastIndexByte(member, ':')
	if i < 0 {
		return member, time.Time{}
	}
	sec, err := strconv.ParseInt(member[i+1:], 10, 64)
	if err != nil {
		return member, time.Time{}
	}
	return member[:i], time.Unix(sec, 0)
}
