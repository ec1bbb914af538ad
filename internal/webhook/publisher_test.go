package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (*RedisPublisher, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPublisher(client), client
}

func TestPublish_EnqueuesEvent(t *testing.T) {
	publisher, client := newTestPublisher(t)
	ctx := context.Background()

	event := Event{
		Type:        EventDatasetRefreshed,
		Source:      "csv:/data/incidents.csv",
		RowsLoaded:  812000,
		RowsDropped: 4500,
		DropReasons: map[string]int{"bad_datetime": 4500},
		Timestamp:   time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.Publish(ctx, event))

	payload, err := client.RPop(ctx, webhookQueueKey).Result()
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	assert.Equal(t, event.Type, got.Type)
	assert.Equal(t, event.RowsLoaded, got.RowsLoaded)
	assert.Equal(t, event.DropReasons, got.DropReasons)
}

func TestPublish_FIFOOrder(t *testing.T) {
	publisher, client := newTestPublisher(t)
	ctx := context.Background()

	require.NoError(t, publisher.Publish(ctx, Event{Source: "first"}))
	require.NoError(t, publisher.Publish(ctx, Event{Source: "second"}))

	// The worker pops from the right, so the first published event is
	// delivered first.
	payload, err := client.RPop(ctx, webhookQueueKey).Result()
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	assert.Equal(t, "first", got.Source)
}

func TestGenerateHMACSHA256(t *testing.T) {
	sig := generateHMACSHA256(`{"type":"dataset.refreshed"}`, "secret")
	assert.Len(t, sig, 64)
	assert.Equal(t, sig, generateHMACSHA256(`{"type":"dataset.refreshed"}`, "secret"))
	assert.NotEqual(t, sig, generateHMACSHA256(`{"type":"dataset.refreshed"}`, "other"))
}
