package player

import "github.com/KirkDiggler/stumped/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// SavePlayersInput contains parameters for saving several players at once
type SavePlayersInput struct {
	Players []*models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInRoomInput contains parameters for retrieving players in a room
type GetPlayersInRoomInput struct {
	RoomID string
}

// GetPlayersInRoomOutput contains the result of retrieving players in a room
type GetPlayersInRoomOutput struct {
	Players []*models.Player
}

// GetPlayerBySessionInput contains parameters for a session lookup
type GetPlayerBySessionInput struct {
	RoomID       string
	SessionToken string
}

// DeletePlayerInput contains parameters for deleting a player
type DeletePlayerInput struct {
	PlayerID string
}
