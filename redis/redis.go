package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// RevokeRefreshToken blacklists a refresh token until it would have expired
func RevokeRefreshToken(token string, ttl time.Duration) error {
	return Client.Set(Ctx, "revoked:"+token, "1", ttl).Err()
}

// IsRefreshTokenRevoked checks whether a refresh token has been blacklisted
func IsRefreshTokenRevoked(token string) (bool, error) {
	result, err := Client.Exists(Ctx, "revoked:"+token).Result()
	if err != nil {
		return false, err
	}
	return result > 0, nil
}
