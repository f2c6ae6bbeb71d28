// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"turnero/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient backs the per-conversation dialogue sessions.
	SessionCacheClient *redis.Client
	// ReservationCacheClient backs the tenant-scoped reservation sets.
	ReservationCacheClient *redis.Client
	// DedupeCacheClient backs the inbound-message idempotency guard.
	DedupeCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the engine.
func InitRedis() {
	SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
	ReservationCacheClient = newClient(config.AppConfig.RedisReservationDB)
	DedupeCacheClient = newClient(config.AppConfig.RedisDedupeDB)
}

// GetSessionCacheClient returns the Redis client for dialogue sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetReservationCacheClient returns the Redis client for reservation sets.
func GetReservationCacheClient() *redis.Client {
	if ReservationCacheClient == nil {
		ReservationCacheClient = newClient(config.AppConfig.RedisReservationDB)
	}
	return ReservationCacheClient
}

// GetDedupeCacheClient returns the Redis client for the dedupe guard.
func GetDedupeCacheClient() *redis.Client {
	if DedupeCacheClient == nil {
		DedupeCacheClient = newClient(config.AppConfig.RedisDedupeDB)
	}
	return DedupeCacheClient
}
