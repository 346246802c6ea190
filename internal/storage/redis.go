package storage

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps one sorted set of dish scores per category so the top-dish
// view can be served without hitting Postgres.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

func leaderboardKey(category string) string {
	return "leaderboard:" + category
}

func (c *RedisCache) RecordScore(ctx context.Context, category string, dishID, score int) error {
	return c.Client.ZAdd(ctx, leaderboardKey(category), redis.Z{
		Score:  float64(score),
		Member: strconv.Itoa(dishID),
	}).Err()
}

func (c *RedisCache) TopDishIDs(ctx context.Context, category string, limit int) ([]int, error) {
	members, err := c.Client.ZRevRange(ctx, leaderboardKey(category), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
