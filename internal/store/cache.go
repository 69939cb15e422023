package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	redisClient "github.com/go-redis/redis/v8"

	"github.com/sukalov/lyricsdivision/internal/division"
)

const buildCountsKey = "schedule_builds"

// ScheduleCache keeps the latest schedule per song in redis
type ScheduleCache struct {
	client redisClient.UniversalClient
}

// NewScheduleCache connects with the same URL layout the deployment uses for redis
func NewScheduleCache(url, password string) (*ScheduleCache, error) {
	opt, err := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", password, url))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &ScheduleCache{client: redisClient.NewClient(opt)}, nil
}

// NewScheduleCacheWithClient wraps an existing client
func NewScheduleCacheWithClient(client redisClient.UniversalClient) *ScheduleCache {
	return &ScheduleCache{client: client}
}

func scheduleKey(song string) string {
	return "schedule:" + song
}

// Set stores the schedule of song; ttl 0 keeps it forever
func (c *ScheduleCache) Set(ctx context.Context, song string, schedule *division.Schedule, ttl time.Duration) error {
	data, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, scheduleKey(song), data, ttl).Err()
}

// Get returns the cached schedule of song, or false when there is none
func (c *ScheduleCache) Get(ctx context.Context, song string) (*division.Schedule, bool, error) {
	data, err := c.client.Get(ctx, scheduleKey(song)).Bytes()
	if err != nil {
		if errors.Is(err, redisClient.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var schedule division.Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		return nil, false, err
	}
	return &schedule, true, nil
}

func (c *ScheduleCache) IncrementBuildCount(ctx context.Context, song string) error {
	if err := c.client.HIncrBy(ctx, buildCountsKey, song, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment build count for %s: %v", song, err)
	}
	return nil
}

// BuildCounts returns how many times each song was built
func (c *ScheduleCache) BuildCounts(ctx context.Context) (map[string]int, error) {
	result := make(map[string]int)
	raw, err := c.client.HGetAll(ctx, buildCountsKey).Result()
	if err != nil {
		if errors.Is(err, redisClient.Nil) {
			return result, nil
		}
		return nil, err
	}
	for song, count := range raw {
		n, err := strconv.Atoi(count)
		if err != nil {
			continue // skip invalid counts
		}
		result[song] = n
	}
	return result, nil
}

func (c *ScheduleCache) Close() error {
	return c.client.Close()
}
