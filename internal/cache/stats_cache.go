package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/rueidis"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
)

// StatsCache keeps the computed task statistics document in Redis for a short
// TTL. A nil *StatsCache is valid and disables caching.
type StatsCache struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewStatsCache(client rueidis.Client, key string, ttl time.Duration) *StatsCache {
	if client == nil {
		return nil
	}
	return &StatsCache{client: client, key: key, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context) (*dto.TaskStats, bool) {
	if c == nil {
		return nil, false
	}

	resp := c.client.Do(ctx, c.client.B().Get().Key(c.key).Build())
	if err := resp.Error(); err != nil {
		if !rueidis.IsRedisNil(err) {
			log.Printf("stats cache read failed: %v", err)
		}
		return nil, false
	}

	raw, err := resp.AsBytes()
	if err != nil {
		return nil, false
	}

	var stats dto.TaskStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		log.Printf("stats cache entry malformed: %v", err)
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *dto.TaskStats) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	cmd := c.client.B().Set().Key(c.key).Value(string(raw)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("stats cache write failed: %v", err)
	}
}
