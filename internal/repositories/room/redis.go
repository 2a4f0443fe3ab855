package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix    = "room:"
	codeKeyPrefix    = "room_code:"
	channelKeyPrefix = "room_channel:"
	activeRoomsKey   = "active_rooms"
)

var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrCodeTaken is returned when a join code is already held by another room
	ErrCodeTaken = errors.New("room code already taken")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

func roomKey(roomID string) string {
	return fmt.Sprintf("%s%s", roomKeyPrefix, roomID)
}

func codeKey(code string) string {
	return fmt.Sprintf("%s%s", codeKeyPrefix, strings.ToUpper(strings.TrimSpace(code)))
}

func channelKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelKeyPrefix, channelID)
}

// ReserveCode claims a join code with SETNX so two rooms can never share one
func (r *redisRepository) ReserveCode(ctx context.Context, input *ReserveCodeInput) error {
	if input == nil || input.Code == "" || input.RoomID == "" {
		return errors.New("code and room ID cannot be empty")
	}

	ok, err := r.client.SetNX(ctx, codeKey(input.Code), input.RoomID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve room code: %w", err)
	}
	if !ok {
		return ErrCodeTaken
	}

	return nil
}

// releaseCodeScript frees a code only while it still points at the given room
var releaseCodeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ReleaseCode frees a code reserved for a room that was never stored
func (r *redisRepository) ReleaseCode(ctx context.Context, input *ReleaseCodeInput) error {
	if input == nil || input.Code == "" || input.RoomID == "" {
		return errors.New("code and room ID cannot be empty")
	}

	if err := releaseCodeScript.Run(ctx, r.client, []string{codeKey(input.Code)}, input.RoomID).Err(); err != nil {
		return fmt.Errorf("failed to release room code: %w", err)
	}

	return nil
}

// ClaimChannel points a chat channel at a room, replacing any earlier room
func (r *redisRepository) ClaimChannel(ctx context.Context, input *ClaimChannelInput) error {
	if input == nil || input.ChannelID == "" || input.RoomID == "" {
		return errors.New("channel ID and room ID cannot be empty")
	}

	if err := r.client.Set(ctx, channelKey(input.ChannelID), input.RoomID, 0).Err(); err != nil {
		return fmt.Errorf("failed to claim channel: %w", err)
	}

	return nil
}

// SaveRoom persists a room to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	room := input.Room
	if room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	roomJSON, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, roomKey(room.ID), roomJSON, 0)

	// Rooms with a game in progress are tracked so they can be listed and swept
	if room.Status.IsWaiting() || room.Status.IsGameOver() {
		pipe.SRem(ctx, activeRoomsKey, room.ID)
	} else {
		pipe.SAdd(ctx, activeRoomsKey, room.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, roomKey(input.RoomID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// GetRoomByCode resolves a join code, ignoring case, to its room
func (r *redisRepository) GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error) {
	if input == nil || strings.TrimSpace(input.Code) == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	roomID, err := r.client.Get(ctx, codeKey(input.Code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room ID for code: %w", err)
	}

	return r.GetRoom(ctx, &GetRoomInput{
		RoomID: roomID,
	})
}

// GetRoomByChannel retrieves a room by channel ID from Redis
func (r *redisRepository) GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*models.Room, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	roomID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room ID for channel: %w", err)
	}

	return r.GetRoom(ctx, &GetRoomInput{
		RoomID: roomID,
	})
}

// DeleteRoom removes a room from Redis along with its code and channel mappings
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	room, err := r.GetRoom(ctx, &GetRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return err
	}

	// The channel may already point at a newer room
	var channelOwner string
	if room.ChannelID != "" {
		channelOwner, err = r.client.Get(ctx, channelKey(room.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get room ID for channel: %w", err)
		}
	}

	pipe := r.client.TxPipeline()

	pipe.Del(ctx, roomKey(room.ID))
	pipe.Del(ctx, codeKey(room.Code))
	if channelOwner == room.ID {
		pipe.Del(ctx, channelKey(room.ChannelID))
	}
	pipe.SRem(ctx, activeRoomsKey, room.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// GetActiveRooms retrieves all rooms with a game in progress from Redis
func (r *redisRepository) GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error) {
	roomIDs, err := r.client.SMembers(ctx, activeRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active room IDs: %w", err)
	}

	if len(roomIDs) == 0 {
		return &GetActiveRoomsOutput{
			Rooms: []*models.Room{},
		}, nil
	}

	pipe := r.client.Pipeline()
	roomCommands := make(map[string]*redis.StringCmd, len(roomIDs))

	for _, roomID := range roomIDs {
		roomCommands[roomID] = pipe.Get(ctx, roomKey(roomID))
	}

	// redis.Nil for individual keys is handled below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(roomIDs))
	for roomID, cmd := range roomCommands {
		roomJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Room was deleted between getting the IDs and fetching the room
				continue
			}
			return nil, fmt.Errorf("failed to get room %s: %w", roomID, err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room %s: %w", roomID, err)
		}

		rooms = append(rooms, &room)
	}

	return &GetActiveRoomsOutput{
		Rooms: rooms,
	}, nil
}
