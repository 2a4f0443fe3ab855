package locker

//go:generate mockgen -package=mocks -destination=mocks/mock_locker.go github.com/KirkDiggler/stumped/internal/common/locker Locker

import (
	"context"
	"errors"
)

// ErrLockTimeout is returned when a lock could not be taken before the wait expired
var ErrLockTimeout = errors.New("lock wait timed out")

// Locker serializes work on a key across goroutines and processes
type Locker interface {
	// Acquire blocks until the key is held or the wait runs out.
	// The returned release func must be called exactly once.
	Acquire(ctx context.Context, key string) (func(), error)
}
