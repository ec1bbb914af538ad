package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const aggregateCachePrefix = "agg:"

// GetAggregateCache returns a cached aggregate payload, or nil on a miss.
func (r *IncidentRepository) GetAggregateCache(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, aggregateCachePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get aggregate from cache: %w", err)
	}
	return val, nil
}

// SetAggregateCache stores an aggregate payload with the configured TTL.
func (r *IncidentRepository) SetAggregateCache(ctx context.Context, key string, payload []byte) error {
	if err := r.redisClient.Set(ctx, aggregateCachePrefix+key, payload, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set aggregate in cache: %w", err)
	}
	return nil
}

// FlushAggregateCache removes every cached aggregate. Called when the
// dataset is replaced.
func (r *IncidentRepository) FlushAggregateCache(ctx context.Context) error {
	iter := r.redisClient.Scan(ctx, 0, aggregateCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached aggregate %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan aggregate cache keys: %w", err)
	}
	return nil
}
