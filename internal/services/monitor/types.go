package monitor

import (
	"time"

	"github.com/KirkDiggler/stumped/internal/common/clock"
	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout is how long a player may stay silent mid-round
	DefaultTimeout = 45 * time.Second

	// DefaultEvictTimeout bounds a single eviction call
	DefaultEvictTimeout = 5 * time.Second
)

// Config holds the dependencies of the monitor
type Config struct {
	Clock      clock.Clock
	Evictor    Evictor
	Subscriber events.Subscriber
	Logger     zerolog.Logger

	// Timeout is the silence allowed before eviction; zero means DefaultTimeout
	Timeout time.Duration

	// EvictTimeout bounds each eviction call; zero means DefaultEvictTimeout
	EvictTimeout time.Duration
}

// WatchInput contains parameters for watching a player
type WatchInput struct {
	RoomID   string
	PlayerID string

	// Status is the room status the caller last saw. Later events override it.
	Status models.RoomStatus
}

// WatchOutput reports whether a countdown is running for the player
type WatchOutput struct {
	Armed bool
}

// TouchInput contains parameters for a liveness signal
type TouchInput struct {
	RoomID   string
	PlayerID string
}

// TouchOutput reports whether the countdown was restarted
type TouchOutput struct {
	Armed bool
}

// UnwatchInput contains parameters for dropping a watch
type UnwatchInput struct {
	RoomID   string
	PlayerID string
}

// UnwatchOutput reports how many players stopped being watched
type UnwatchOutput struct {
	Removed int
}
