package archive

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/stumped/internal/services/archive Service

import (
	"context"

	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/services/game"
)

// Service stores the final standings of every game that reaches game over
type Service interface {
	// HandleEvent archives the room when the event reports game over
	HandleEvent(ctx context.Context, event *events.Event) error

	// Run consumes the event bus until ctx is done
	Run(ctx context.Context) error

	// ListResults returns a room's archived standings
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)
}

// StandingsReader ranks a room's players. The game service satisfies it.
type StandingsReader interface {
	GetStandings(ctx context.Context, input *game.GetStandingsInput) (*game.GetStandingsOutput, error)
}
