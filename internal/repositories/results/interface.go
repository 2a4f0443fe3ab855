package results

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stumped/internal/repositories/results Repository

import (
	"context"
)

// Repository archives the final standings of finished games
type Repository interface {
	// RecordGame stores the standings of one finished game. Recording the
	// same game twice is a no-op.
	RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error)

	// ListResults returns every archived standing of a room, oldest game first
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)
}
