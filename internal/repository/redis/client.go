package redis

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connect-four-ai/backend/internal/config"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis connects the move cache. An unreachable server is not fatal:
// the engine then searches every position itself.
func InitRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Move cache disabled.", err)
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Println("[REDIS] Connected successfully")
	return nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// RedisCache adapts redis.Client to the engine's MoveCache.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new RedisCache instance
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set stores a key-value pair with expiration
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key. A missing key yields redis.Nil.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}
