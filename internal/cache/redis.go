package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fittrack/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// SummaryKey builds the cache key for one user's period summary.
func SummaryKey(kind, username string, start, end time.Time) string {
	return fmt.Sprintf("summary:%s:%s:%s:%s",
		kind, username,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// Store period summary with expiration
func (r *RedisClient) StorePeriodSummary(key string, summary *models.PeriodSummary, duration time.Duration) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	err = r.client.Set(r.ctx, key, jsonData, duration).Err()
	if err != nil {
		return fmt.Errorf("failed to store summary in Redis: %w", err)
	}

	return nil
}

// Get period summary
func (r *RedisClient) GetPeriodSummary(key string) (*models.PeriodSummary, bool, error) {
	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get summary from Redis: %w", err)
	}

	var summary models.PeriodSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, true, nil
}

// InvalidateUserSummaries drops every cached summary for a user after a write
// that changes what the summaries would contain.
func (r *RedisClient) InvalidateUserSummaries(username string) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(r.ctx, cursor, fmt.Sprintf("summary:*:%s:*", username), 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan summary keys: %w", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(r.ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete summary keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Get Redis status
func (r *RedisClient) GetStatus() (map[string]interface{}, error) {
	info, err := r.client.Info(r.ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
		"redis_info":   info,
	}, nil
}
