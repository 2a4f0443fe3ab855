package room

import "github.com/KirkDiggler/stumped/internal/models"

type ReserveCodeInput struct {
	Code   string
	RoomID string
}

type ReleaseCodeInput struct {
	Code   string
	RoomID string
}

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

type GetRoomByCodeInput struct {
	Code string
}

type GetRoomByChannelInput struct {
	ChannelID string
}

type DeleteRoomInput struct {
	RoomID string
}

type GetActiveRoomsInput struct {
}

type GetActiveRoomsOutput struct {
	Rooms []*models.Room
}

// ClaimChannelInput contains parameters for tying a channel to a room
type ClaimChannelInput struct {
	ChannelID string
	RoomID    string
}
