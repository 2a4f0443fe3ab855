package player

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
	playerKeyPrefix      = "player:"
	roomPlayersKeyPrefix = "room_players:"
	roomSessionKeyPrefix = "room_session:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

func playerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}

func roomPlayersKey(roomID string) string {
	return fmt.Sprintf("%s%s", roomPlayersKeyPrefix, roomID)
}

func roomSessionKey(roomID string) string {
	return fmt.Sprintf("%s%s", roomSessionKeyPrefix, roomID)
}

// queueSave adds the writes for one player to a pipeline
func queueSave(ctx context.Context, pipe redis.Pipeliner, player *models.Player) error {
	if player == nil {
		return errors.New("player cannot be nil")
	}
	if player.ID == "" || player.RoomID == "" {
		return errors.New("player ID and room ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe.Set(ctx, playerKey(player.ID), playerJSON, 0)

	// Rotation order is the sorted set score
	pipe.ZAdd(ctx, roomPlayersKey(player.RoomID), redis.Z{
		Score:  float64(player.Order),
		Member: player.ID,
	})

	if player.SessionToken != "" {
		pipe.HSet(ctx, roomSessionKey(player.RoomID), player.SessionToken, player.ID)
	}

	return nil
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	pipe := r.client.TxPipeline()
	if err := queueSave(ctx, pipe, input.Player); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// SavePlayers persists several players inside one MULTI/EXEC block
func (r *redisRepository) SavePlayers(ctx context.Context, input *SavePlayersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if len(input.Players) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, player := range input.Players {
		if err := queueSave(ctx, pipe, player); err != nil {
			return err
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayersInRoom retrieves all players in a room, ordered by rotation position
func (r *redisRepository) GetPlayersInRoom(ctx context.Context, input *GetPlayersInRoomInput) (*GetPlayersInRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	playerIDs, err := r.client.ZRange(ctx, roomPlayersKey(input.RoomID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for room: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetPlayersInRoomOutput{
			Players: []*models.Player{},
		}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make([]*redis.StringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		playerCommands[i] = pipe.Get(ctx, playerKey(playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Player was deleted between getting the IDs and fetching the player
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}

		players = append(players, &player)
	}

	// Equal scores fall back to lexical member order in Redis
	models.SortByOrder(players)

	return &GetPlayersInRoomOutput{
		Players: players,
	}, nil
}

// GetPlayerBySession finds the player seated under a session token
func (r *redisRepository) GetPlayerBySession(ctx context.Context, input *GetPlayerBySessionInput) (*models.Player, error) {
	if input == nil || input.RoomID == "" || input.SessionToken == "" {
		return nil, errors.New("room ID and session token cannot be empty")
	}

	playerID, err := r.client.HGet(ctx, roomSessionKey(input.RoomID), input.SessionToken).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player ID for session: %w", err)
	}

	return r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: playerID,
	})
}

// DeletePlayer removes a player and its room indexes from Redis
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	player, err := r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()

	pipe.Del(ctx, playerKey(player.ID))
	pipe.ZRem(ctx, roomPlayersKey(player.RoomID), player.ID)
	if player.SessionToken != "" {
		pipe.HDel(ctx, roomSessionKey(player.RoomID), player.SessionToken)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}
