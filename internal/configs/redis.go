package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient returns nil when addr is empty; callers treat a nil client
// as "caching disabled".
func NewRedisClient(addr string) rueidis.Client {
	if addr == "" {
		return nil
	}

	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}
