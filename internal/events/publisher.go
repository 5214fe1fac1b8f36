package events

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding
	"fmt"           // Error wrapping
	"time"          // Event timestamps

	"github.com/redis/go-redis/v9" // Redis client
)

// Publisher emits ledger events
type Publisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// RedisPublisher appends events to a Redis stream
type RedisPublisher struct {
	client *redis.Client
	stream string
}

// NewRedisPublisher returns a publisher writing to stream
func NewRedisPublisher(client *redis.Client, stream string) *RedisPublisher {
	return &RedisPublisher{client: client, stream: stream}
}

// Publish marshals the event and XADDs it to the stream
func (p *RedisPublisher) Publish(ctx context.Context, eventType string, data any) error {
	payload, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{"event": payload},
	}
	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// NopPublisher drops every event, used when Redis is not configured
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Connect opens a Redis client and pings it
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,     // Redis server address
		Password:     password, // Redis password
		DB:           db,       // Redis database number
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	// Test Redis connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
