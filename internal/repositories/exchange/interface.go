package exchange

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stumped/internal/repositories/exchange Repository

import (
	"context"

	"github.com/KirkDiggler/stumped/internal/models"
)

// Repository defines the interface for the question and guess log
type Repository interface {
	// AddEntry appends an entry to its round's log
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// GetEntry retrieves an entry by ID
	GetEntry(ctx context.Context, input *GetEntryInput) (*models.Entry, error)

	// UpdateEntry overwrites a stored entry
	UpdateEntry(ctx context.Context, input *UpdateEntryInput) error

	// GetEntriesForRound retrieves a round's entries in submission order
	GetEntriesForRound(ctx context.Context, input *GetEntriesForRoundInput) (*GetEntriesForRoundOutput, error)

	// DeleteEntriesForRoom drops every entry logged in a room
	DeleteEntriesForRoom(ctx context.Context, input *DeleteEntriesForRoomInput) error
}
