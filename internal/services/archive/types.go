package archive

import (
	"errors"

	"github.com/KirkDiggler/stumped/internal/common/clock"
	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/repositories/results"
	"github.com/rs/zerolog"
)

var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilStandings  = errors.New("standings reader cannot be nil")
	ErrNilRepository = errors.New("results repository cannot be nil")
	ErrNilSubscriber = errors.New("subscriber cannot be nil")
	ErrNilClock      = errors.New("clock cannot be nil")
	ErrNilInput      = errors.New("input cannot be nil")
)

// Config holds the dependencies of the archive
type Config struct {
	Standings  StandingsReader
	Repository results.Repository
	Subscriber events.Subscriber
	Clock      clock.Clock
	Logger     zerolog.Logger
}

// ListResultsInput contains parameters for reading a room's archive
type ListResultsInput struct {
	RoomID string
}

// ListResultsOutput contains a room's archived standings
type ListResultsOutput struct {
	Results []*results.Result
}
