package monitor

//go:generate mockgen -package=mocks -destination=mocks/mock_monitor.go github.com/KirkDiggler/stumped/internal/services/monitor Service,Evictor

import (
	"context"

	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/services/game"
)

// Service tracks player liveness and evicts players that go quiet mid-round
type Service interface {
	// Watch starts tracking a player
	Watch(ctx context.Context, input *WatchInput) (*WatchOutput, error)

	// Touch records activity from a player and restarts its countdown
	Touch(ctx context.Context, input *TouchInput) (*TouchOutput, error)

	// Unwatch stops tracking a player, or a whole room when PlayerID is empty
	Unwatch(ctx context.Context, input *UnwatchInput) (*UnwatchOutput, error)

	// HandleEvent applies a room change to the armed timers
	HandleEvent(ctx context.Context, event *events.Event) error

	// Run consumes the event bus until ctx is done
	Run(ctx context.Context) error
}

// Evictor removes idle players. The game service satisfies it.
type Evictor interface {
	EvictPlayer(ctx context.Context, input *game.EvictPlayerInput) (*game.EvictPlayerOutput, error)
}
