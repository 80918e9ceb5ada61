// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"slotwise/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client, used for resolved availability.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for token revocation entries.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for token revocation.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth): %v", err)
	}
}

// GetAuthCacheClient returns the auth cache client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	InitCache()
	InitAuthCache()
}

const (
	availabilityPrefix = "availability:"
	availabilityTTL    = 5 * time.Minute
)

// availabilityKey namespaces cached resolutions per user so a mutation can
// invalidate them all with one scan.
func availabilityKey(userID, suffix string) string {
	return fmt.Sprintf("%s%s:%s", availabilityPrefix, userID, suffix)
}

// GetCachedAvailability loads a cached resolution into dest. Returns false on
// miss or any cache error; the caller falls through to the engine.
func GetCachedAvailability(ctx context.Context, userID, suffix string, dest interface{}) bool {
	data, err := GetCacheClient().Get(ctx, availabilityKey(userID, suffix)).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetCachedAvailability stores a resolution with a short TTL. Failures are
// logged and ignored; the cache is an optimization, never a source of truth.
func SetCachedAvailability(ctx context.Context, userID, suffix string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := GetCacheClient().Set(ctx, availabilityKey(userID, suffix), data, availabilityTTL).Err(); err != nil {
		GetLogger().Warn("failed to cache availability: " + err.Error())
	}
}

// InvalidateAvailability drops every cached resolution for a user. Called after
// any schedule mutation.
func InvalidateAvailability(ctx context.Context, userID string) {
	client := GetCacheClient()
	iter := client.Scan(ctx, 0, availabilityPrefix+userID+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		GetLogger().Warn("availability cache scan failed: " + err.Error())
		return
	}
	if len(keys) > 0 {
		if err := client.Del(ctx, keys...).Err(); err != nil {
			GetLogger().Warn("availability cache invalidation failed: " + err.Error())
		}
	}
}

// RevokedTokenPrefix is the prefix for revoked-token cache keys.
const RevokedTokenPrefix = "revoked:"

// RevokeToken records a token hash so the auth middleware rejects it until it
// would have expired anyway.
func RevokeToken(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, RevokedTokenPrefix+tokenHash, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token hash has been revoked.
func IsTokenRevoked(ctx context.Context, tokenHash string) bool {
	n, err := GetAuthCacheClient().Exists(ctx, RevokedTokenPrefix+tokenHash).Result()
	return err == nil && n > 0
}
