package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClientFromEnv connects to Redis if REDIS_HOST is set. Returns nil when
// Redis is not configured; everything built on top treats a nil client as
// "feature disabled".
func NewClientFromEnv(ctx context.Context) *redis.Client {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		log.Println("⚠️ REDIS_HOST not set, refresh tokens disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable (%v), refresh tokens disabled", err)
		return nil
	}

	log.Println("✅ Redis connected")
	return client
}

func refreshKey(token string) string {
	return fmt.Sprintf("refresh:%s", token)
}
