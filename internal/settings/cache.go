package settings

import (
	"context"
	"encoding/json"
	"time"

	redisClient "github.com/richxcame/motorent/pkg/redis"
)

const settingsCacheKey = "royalty:settings:v1"

// cache stores the settings row as JSON; a nil client disables it
type cache struct {
	redis redisClient.ClientInterface
	ttl   time.Duration
}

func (c *cache) get(ctx context.Context) (*StoredSettings, error) {
	data, err := c.redis.GetString(ctx, settingsCacheKey)
	if err != nil {
		return nil, err
	}

	var stored StoredSettings
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *cache) set(ctx context.Context, stored *StoredSettings) error {
	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return c.redis.SetWithExpiration(ctx, settingsCacheKey, data, c.ttl)
}

func (c *cache) invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, settingsCacheKey)
}

func (c *cache) enabled() bool {
	return c != nil && c.redis != nil && c.ttl > 0
}
