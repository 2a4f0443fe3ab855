package results

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNilPool is returned when the repository is built without a pool
	ErrNilPool = errors.New("postgres pool cannot be nil")

	// ErrEmptyGame is returned when a game is recorded without standings
	ErrEmptyGame = errors.New("game has no standings")
)

// Result is one player's final line in a finished game
type Result struct {
	RoomID     string
	GameNumber int
	PlayerID   string
	PlayerName string
	Rank       int
	Score      int
	FinishedAt time.Time
}

// Config holds configuration for the Postgres repository
type Config struct {
	Pool *pgxpool.Pool
}

// RecordGameInput contains parameters for archiving a game
type RecordGameInput struct {
	RoomID     string
	GameNumber int
	FinishedAt time.Time
	Results    []*Result
}

// RecordGameOutput reports whether anything new was written
type RecordGameOutput struct {
	Recorded bool
}

// ListResultsInput contains parameters for reading a room's archive
type ListResultsInput struct {
	RoomID string
}

// ListResultsOutput contains a room's archived standings
type ListResultsOutput struct {
	Results []*Result
}
