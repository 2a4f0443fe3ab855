package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	channelPrefix = "stumped:room:"

	streamBuffer = 64
)

// Config holds configuration for the Redis event bus
type Config struct {
	RedisClient *redis.Client
	Logger      zerolog.Logger
}

// RedisBus publishes and subscribes through Redis pub/sub
type RedisBus struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedis creates a Redis-backed event bus
func NewRedis(cfg *Config) (*RedisBus, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &RedisBus{
		client: cfg.RedisClient,
		logger: cfg.Logger,
	}, nil
}

// Channel returns the pub/sub channel of a room
func Channel(roomID string) string {
	return channelPrefix + roomID
}

// Publish sends an event on the room's channel
func (b *RedisBus) Publish(ctx context.Context, event *Event) error {
	if event == nil || event.RoomID == "" {
		return errors.New("event and room ID cannot be empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, Channel(event.RoomID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscribe streams one room's events
func (b *RedisBus) Subscribe(ctx context.Context, roomID string) (*Subscription, error) {
	if roomID == "" {
		return nil, errors.New("room ID cannot be empty")
	}

	return b.stream(ctx, b.client.Subscribe(ctx, Channel(roomID)))
}

// SubscribeAll streams every room's events
func (b *RedisBus) SubscribeAll(ctx context.Context) (*Subscription, error) {
	return b.stream(ctx, b.client.PSubscribe(ctx, channelPrefix+"*"))
}

func (b *RedisBus) stream(ctx context.Context, pubsub *redis.PubSub) (*Subscription, error) {
	// Wait for the confirmation so no event published after return is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan *Event, streamBuffer)
	messages := pubsub.Channel()

	go func() {
		defer close(out)
		for msg := range messages {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warn().Err(err).Str("channel", msg.Channel).Msg("dropping malformed event")
				continue
			}
			out <- &event
		}
	}()

	return NewSubscription(out, pubsub.Close), nil
}
