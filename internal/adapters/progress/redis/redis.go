package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"vodcore/internal/config"
	"vodcore/internal/core/port"
)

// Tracker stores issued part numbers per upload session as a redis set with
// TTL eviction
type Tracker struct {
	client *goredis.Client
	ttl    config.RedisConfig
}

// NewTracker returns Tracker
func NewTracker(cfg config.RedisConfig) *Tracker {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Tracker{client: client, ttl: cfg}
}

var _ port.ProgressTracker = (*Tracker)(nil)

func sessionKey(sessionID uuid.UUID) string {
	return "upload:progress:" + sessionID.String()
}

// SetPart records that a presigned url was issued for a part
func (t *Tracker) SetPart(ctx context.Context, sessionID uuid.UUID, partNumber int) error {
	key := sessionKey(sessionID)

	pipe := t.client.TxPipeline()
	pipe.SAdd(ctx, key, partNumber)
	pipe.Expire(ctx, key, t.ttl.ProgressTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record part: %w", err)
	}
	return nil
}

// Progress returns the issued part numbers in ascending order
func (t *Tracker) Progress(ctx context.Context, sessionID uuid.UUID) ([]int, error) {
	members, err := t.client.SMembers(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}

	parts := make([]int, 0, len(members))
	for _, member := range members {
		n, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		parts = append(parts, n)
	}
	sort.Ints(parts)
	return parts, nil
}

// Clear drops the progress set once the session is closed
func (t *Tracker) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := t.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear progress: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (t *Tracker) Close() error {
	return t.client.Close()
}
