package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stumped/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/stumped/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// SavePlayers persists several players of one room in a single transaction
	SavePlayers(ctx context.Context, input *SavePlayersInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInRoom retrieves all players in a room in rotation order
	GetPlayersInRoom(ctx context.Context, input *GetPlayersInRoomInput) (*GetPlayersInRoomOutput, error)

	// GetPlayerBySession finds the player a session token is seated as
	GetPlayerBySession(ctx context.Context, input *GetPlayerBySessionInput) (*models.Player, error)

	// DeletePlayer removes a player from its room
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error
}
