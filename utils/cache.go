package utils

import (
	"context"
	"log"
	"time"

	"helpnest/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
// Redis is an optimization in front of the document store; when it is
// unreachable the middleware falls back to direct lookups, so failure to
// connect is logged rather than fatal.
func InitAuthCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Redis unavailable, auth caching disabled: %v", err)
		return
	}
	AuthCacheClient = client
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when caching is disabled.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
