package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent. Callers fall through to the
// store and repopulate.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Report snapshot caching. Only the default (today) report is cached; every
// sale or workshop write invalidates it.

const reportKey = "report:today"

func (c *Client) SetReportSnapshot(ctx context.Context, report interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report snapshot: %w", err)
	}
	return c.rdb.Set(ctx, reportKey, jsonData, ttl).Err()
}

func (c *Client) GetReportSnapshot(ctx context.Context, dest interface{}) error {
	val, err := c.rdb.Get(ctx, reportKey).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get report snapshot: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateReportSnapshot(ctx context.Context) error {
	return c.rdb.Del(ctx, reportKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
