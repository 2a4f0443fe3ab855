package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix       = "entry:"
	roomEntriesKeyPrefix = "room_entries:"

	scanBatch = 100
)

// ErrEntryNotFound is returned when an entry is not found
var ErrEntryNotFound = errors.New("entry not found")

// Config holds configuration for the Redis exchange repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed exchange repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func entryKey(entryID string) string {
	return fmt.Sprintf("%s%s", entryKeyPrefix, entryID)
}

// roundKey lists entry IDs of one round. The game number keeps a restarted
// game from reading the previous game's rounds.
func roundKey(roomID string, game, round int) string {
	return fmt.Sprintf("%s%s:%d:%d", roomEntriesKeyPrefix, roomID, game, round)
}

func validateEntry(entry *models.Entry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	if entry.ID == "" || entry.RoomID == "" {
		return errors.New("entry ID and room ID cannot be empty")
	}
	return nil
}

// AddEntry stores the entry and appends it to its round list
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateEntry(input.Entry); err != nil {
		return err
	}

	entry := input.Entry
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, entryKey(entry.ID), entryJSON, 0)
	pipe.RPush(ctx, roundKey(entry.RoomID, entry.Game, entry.Round), entry.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	return nil
}

// GetEntry retrieves an entry by ID from Redis
func (r *redisRepository) GetEntry(ctx context.Context, input *GetEntryInput) (*models.Entry, error) {
	if input == nil || input.EntryID == "" {
		return nil, errors.New("input and entry ID cannot be empty")
	}

	entryJSON, err := r.client.Get(ctx, entryKey(input.EntryID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	var entry models.Entry
	if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return &entry, nil
}

// UpdateEntry overwrites an existing entry; the round list is untouched
func (r *redisRepository) UpdateEntry(ctx context.Context, input *UpdateEntryInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateEntry(input.Entry); err != nil {
		return err
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	// XX keeps an update from resurrecting a deleted entry
	ok, err := r.client.SetXX(ctx, entryKey(input.Entry.ID), entryJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if !ok {
		return ErrEntryNotFound
	}

	return nil
}

// GetEntriesForRound retrieves a round's entries from Redis, oldest first
func (r *redisRepository) GetEntriesForRound(ctx context.Context, input *GetEntriesForRoundInput) (*GetEntriesForRoundOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	entryIDs, err := r.client.LRange(ctx, roundKey(input.RoomID, input.Game, input.Round), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry IDs for round: %w", err)
	}

	if len(entryIDs) == 0 {
		return &GetEntriesForRoundOutput{
			Entries: []*models.Entry{},
		}, nil
	}

	pipe := r.client.Pipeline()
	entryCommands := make([]*redis.StringCmd, len(entryIDs))
	for i, entryID := range entryIDs {
		entryCommands[i] = pipe.Get(ctx, entryKey(entryID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	entries := make([]*models.Entry, 0, len(entryIDs))
	for i, cmd := range entryCommands {
		entryJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get entry %s: %w", entryIDs[i], err)
		}

		var entry models.Entry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", entryIDs[i], err)
		}

		entries = append(entries, &entry)
	}

	return &GetEntriesForRoundOutput{
		Entries: entries,
	}, nil
}

// DeleteEntriesForRoom removes every round list of a room and the entries in them
func (r *redisRepository) DeleteEntriesForRoom(ctx context.Context, input *DeleteEntriesForRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	pattern := fmt.Sprintf("%s%s:*", roomEntriesKeyPrefix, input.RoomID)

	var roundKeys []string
	iter := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		roundKeys = append(roundKeys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan round keys: %w", err)
	}

	if len(roundKeys) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, key := range roundKeys {
		entryIDs, err := r.client.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("failed to get entry IDs for %s: %w", key, err)
		}
		for _, entryID := range entryIDs {
			pipe.Del(ctx, entryKey(entryID))
		}
		pipe.Del(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}

	return nil
}
