package exchange

import "github.com/KirkDiggler/stumped/internal/models"

// AddEntryInput contains parameters for logging an entry
type AddEntryInput struct {
	Entry *models.Entry
}

// GetEntryInput contains parameters for retrieving an entry
type GetEntryInput struct {
	EntryID string
}

// UpdateEntryInput contains parameters for updating an entry
type UpdateEntryInput struct {
	Entry *models.Entry
}

// GetEntriesForRoundInput identifies one round of one game in a room
type GetEntriesForRoundInput struct {
	RoomID string
	Game   int
	Round  int
}

// GetEntriesForRoundOutput contains the round's entries, oldest first
type GetEntriesForRoundOutput struct {
	Entries []*models.Entry
}

// DeleteEntriesForRoomInput contains parameters for clearing a room's log
type DeleteEntriesForRoomInput struct {
	RoomID string
}
