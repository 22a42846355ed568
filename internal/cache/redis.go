package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisDialTimeout  = 3 * time.Second
	redisReadTimeout  = 2 * time.Second
	redisWriteTimeout = 2 * time.Second
	redisPingTimeout  = 2 * time.Second
)

// Redis is a Redis-backed cache. Backend errors degrade to cache
// misses so an unavailable Redis never fails a request.
type Redis struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedis connects to the Redis instance described by redisURL
// (redis://host:port/db) and verifies connectivity with a ping.
func NewRedis(ctx context.Context, redisURL, keyPrefix string) (*Redis, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	options.DialTimeout = redisDialTimeout
	options.ReadTimeout = redisReadTimeout
	options.WriteTimeout = redisWriteTimeout

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	log.Printf("Connected to Redis at %s", options.Addr)
	return &Redis{client: client, keyPrefix: keyPrefix}, nil
}

func (r *Redis) makeKey(key string) string {
	return r.keyPrefix + key
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, r.makeKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Redis get error for %s: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, r.makeKey(key), value, ttl).Err(); err != nil {
		log.Printf("Redis set error for %s: %v", key, err)
	}
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.makeKey(key)).Err(); err != nil {
		log.Printf("Redis delete error for %s: %v", key, err)
	}
}

// Clear removes every key under the cache's prefix.
func (r *Redis) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, r.keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Redis clear error for %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("Redis scan error: %v", err)
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
