package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/acad-service/internal/config"
	"github.com/stemsi/acad-service/internal/model"
)

// BobotNilaiCache stores the grade-weight table in Redis as one JSON value.
type BobotNilaiCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBobotNilaiCache(rdb *redis.Client, ttl time.Duration) *BobotNilaiCache {
	return &BobotNilaiCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached table. ok is false on a cache miss.
func (c *BobotNilaiCache) Get(ctx context.Context) (list []model.BobotNilai, ok bool, err error) {
	raw, err := c.rdb.Get(ctx, config.CacheKey.BobotNilaiKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get bobot_nilai cache: %w", err)
	}

	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false, fmt.Errorf("decode bobot_nilai cache: %w", err)
	}
	return list, true, nil
}

func (c *BobotNilaiCache) Set(ctx context.Context, list []model.BobotNilai) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode bobot_nilai cache: %w", err)
	}
	if err := c.rdb.Set(ctx, config.CacheKey.BobotNilaiKey(), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set bobot_nilai cache: %w", err)
	}
	return nil
}
