package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"

	// EventDatasetRefreshed is emitted after a dataset reload replaces the
	// incident table.
	EventDatasetRefreshed = "dataset.refreshed"
)

// Event is the payload delivered to the configured webhook endpoint.
type Event struct {
	Type        string         `json:"type"`
	Source      string         `json:"source"`
	RowsLoaded  int64          `json:"rows_loaded"`
	RowsDropped int            `json:"rows_dropped"`
	DropReasons map[string]int `json:"drop_reasons,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Publisher enqueues webhook events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher implements Publisher on a Redis list used as a queue.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the left side of the queue; the worker
// pops from the right, so delivery is FIFO.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
