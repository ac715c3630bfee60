// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"wellspring/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CheckoutCacheClient holds in-flight booking checkouts.
	CheckoutCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitCheckoutCache initializes the Redis client for booking checkout sessions.
func InitCheckoutCache() {
	CheckoutCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCheckoutDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CheckoutCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Checkout): %v", err)
	}
}

// GetCheckoutCacheClient returns the checkout cache client.
func GetCheckoutCacheClient() *redis.Client {
	if CheckoutCacheClient == nil {
		InitCheckoutCache()
	}
	return CheckoutCacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

func tokenHashKey(subject string) string {
	return "auth:tokenhash:" + subject
}

// CacheTokenHash stores the subject's current token hash as a lookaside for
// auth checks. Best effort: without a cache the repository remains the
// source of truth.
func CacheTokenHash(ctx context.Context, subject, hash string, ttl time.Duration) {
	if AuthCacheClient == nil {
		return
	}
	AuthCacheClient.Set(ctx, tokenHashKey(subject), hash, ttl)
}

// CachedTokenHash returns the cached token hash for the subject, or "" on a
// miss.
func CachedTokenHash(ctx context.Context, subject string) string {
	if AuthCacheClient == nil {
		return ""
	}
	hash, err := AuthCacheClient.Get(ctx, tokenHashKey(subject)).Result()
	if err != nil {
		return ""
	}
	return hash
}
