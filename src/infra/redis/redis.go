package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const artifactKeyPrefix = "mockapi:artifact:"

type RedisClient struct {
	client            redis.UniversalClient
	defaultTTLSeconds time.Duration
}

// NewRedisClient aceita um nó único ou uma lista de nós do cluster separados por vírgula.
func NewRedisClient(addrs string, poolSize int, defaultTTLSeconds time.Duration) *RedisClient {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: strings.Split(addrs, ","),

		PoolSize:     poolSize,
		MinIdleConns: 2,

		MaxRedirects: 3,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 2 * time.Second,

		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})

	return &RedisClient{
		client:            client,
		defaultTTLSeconds: defaultTTLSeconds,
	}
}

func artifactKey(name string) string {
	return artifactKeyPrefix + name
}

// SetArtifact stores the artifact bytes and content type in one hash.
// A zero TTL keeps the key until the next run overwrites it.
func (rc *RedisClient) SetArtifact(ctx context.Context, name string, contentType string, content []byte) error {
	key := artifactKey(name)
	fields := map[string]interface{}{
		"data":         content,
		"content_type": contentType,
		"cached_at":    time.Now().Unix(),
	}

	pipe := rc.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	if rc.defaultTTLSeconds > 0 {
		pipe.Expire(ctx, key, rc.defaultTTLSeconds)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetArtifact returns found=false on a cache miss.
func (rc *RedisClient) GetArtifact(ctx context.Context, name string) ([]byte, string, bool, error) {
	values, err := rc.client.HMGet(ctx, artifactKey(name), "data", "content_type").Result()
	if err != nil {
		return nil, "", false, err
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, "", false, nil
	}
	contentType, _ := values[1].(string)

	return []byte(data), contentType, true, nil
}

func (rc *RedisClient) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

func (rc *RedisClient) Close() error {
	return rc.client.Close()
}
