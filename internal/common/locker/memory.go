package locker

import (
	"context"
	"sync"
	"time"
)

// MemoryConfig holds configuration for the in-process locker
type MemoryConfig struct {
	// Wait bounds how long Acquire blocks; zero waits until ctx is done
	Wait time.Duration
}

type memoryEntry struct {
	ch   chan struct{}
	refs int
}

// memoryLocker is a keyed mutex for single-process deployments and tests
type memoryLocker struct {
	mu    sync.Mutex
	wait  time.Duration
	locks map[string]*memoryEntry
}

// NewMemory creates an in-process locker
func NewMemory(cfg *MemoryConfig) *memoryLocker {
	l := &memoryLocker{
		locks: make(map[string]*memoryEntry),
	}
	if cfg != nil {
		l.wait = cfg.Wait
	}
	return l
}

// Acquire takes the key's lock
func (l *memoryLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &memoryEntry{ch: make(chan struct{}, 1)}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	select {
	case entry.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, entry)
		return nil, ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.ch
			l.unref(key, entry)
		})
	}, nil
}

// unref drops the map entry once nobody holds or waits on it
func (l *memoryLocker) unref(key string, entry *memoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, key)
	}
}
