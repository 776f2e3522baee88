package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"quizforge/models"

	"github.com/redis/go-redis/v9"
)

// QuizCache keeps the assembled quiz detail projection in Redis. Entries
// are keyed by quiz id with the owner embedded in the value: a hit whose
// owner differs from the requester counts as a miss, so ownership is never
// observable through the cache. All failures are logged and swallowed;
// the database remains the source of truth.
type QuizCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuizCache(client *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{client: client, ttl: ttl}
}

func (c *QuizCache) Get(ctx context.Context, quizID, owner string) (*models.QuizDetail, bool) {
	raw, err := c.client.Get(ctx, c.key(quizID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("quiz cache read failed", "quizId", quizID, "error", err)
		}
		return nil, false
	}

	var detail models.QuizDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		slog.Warn("quiz cache entry corrupt", "quizId", quizID, "error", err)
		return nil, false
	}
	if detail.Owner != owner {
		return nil, false
	}
	return &detail, true
}

func (c *QuizCache) Set(ctx context.Context, detail *models.QuizDetail) {
	raw, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(detail.ID), raw, c.ttl).Err(); err != nil {
		slog.Warn("quiz cache write failed", "quizId", detail.ID, "error", err)
	}
}

func (c *QuizCache) Invalidate(ctx context.Context, quizID string) {
	if err := c.client.Del(ctx, c.key(quizID)).Err(); err != nil {
		slog.Warn("quiz cache invalidation failed", "quizId", quizID, "error", err)
	}
}

func (c *QuizCache) key(quizID string) string {
	return "quiz:" + quizID + ":detail"
}
