package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stumped/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/stumped/internal/models"
)

// Repository defines the interface for room data persistence
type Repository interface {
	// ReserveCode claims a join code for a room; fails with ErrCodeTaken if another room holds it
	ReserveCode(ctx context.Context, input *ReserveCodeInput) error

	// ReleaseCode frees a code still held by the given room
	ReleaseCode(ctx context.Context, input *ReleaseCodeInput) error

	// ClaimChannel makes a room the one GetRoomByChannel returns for a channel
	ClaimChannel(ctx context.Context, input *ClaimChannelInput) error

	// SaveRoom persists a room
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetRoomByCode retrieves a room by its join code
	GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error)

	// GetRoomByChannel retrieves the latest room opened from a chat channel
	GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*models.Room, error)

	// DeleteRoom removes a room and releases its code
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// GetActiveRooms retrieves rooms with a game in progress
	GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error)
}
