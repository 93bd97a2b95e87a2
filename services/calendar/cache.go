package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dhara/models"

	"github.com/go-redis/redis/v8"
)

const viewCachePrefix = "calendar:"

// ViewCache stores aggregated views so repeated renders skip the database.
type ViewCache interface {
	Get(ctx context.Context, key string) (*models.CalendarView, bool, error)
	Set(ctx context.Context, key string, view *models.CalendarView, ttl time.Duration) error
	InvalidateProfessional(ctx context.Context, professionalID string) error
}

// ViewCacheKey identifies a view by professional, resolved range and options.
func ViewCacheKey(professionalID string, rng models.VisibleRange, opts models.CalendarOptions) string {
	return fmt.Sprintf("%s%s:%s:%s:%s:%d-%d-%d", viewCachePrefix, professionalID,
		FormatDate(rng.Start), FormatDate(rng.End), rng.Granularity,
		opts.BusinessHourStart, opts.BusinessHourEnd, opts.WeekStartsOn)
}

type redisViewCache struct {
	client *redis.Client
}

func NewRedisViewCache(client *redis.Client) ViewCache {
	return &redisViewCache{client: client}
}

func (c *redisViewCache) Get(ctx context.Context, key string) (*models.CalendarView, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached view: %w", err)
	}
	var view models.CalendarView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, fmt.Errorf("decode cached view: %w", err)
	}
	return &view, true, nil
}

func (c *redisViewCache) Set(ctx context.Context, key string, view *models.CalendarView, ttl time.Duration) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("write cached view: %w", err)
	}
	return nil
}

func (c *redisViewCache) InvalidateProfessional(ctx context.Context, professionalID string) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, viewCachePrefix+professionalID+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cached views: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cached views: %w", err)
	}
	return nil
}
