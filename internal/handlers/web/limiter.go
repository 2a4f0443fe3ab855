package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdle  = 10 * time.Minute
	limiterSweep = 1024
)

type sessionLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiter hands out one token bucket per session
type limiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	sessions map[string]*sessionLimiter
}

func newLimiter(limit rate.Limit, burst int) *limiter {
	return &limiter{
		limit:    limit,
		burst:    burst,
		sessions: make(map[string]*sessionLimiter),
	}
}

func (l *limiter) allow(session string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	entry, ok := l.sessions[session]
	if !ok {
		if len(l.sessions) >= limiterSweep {
			l.sweep(now)
		}
		entry = &sessionLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.sessions[session] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// sweep drops buckets of sessions that have gone quiet. Callers hold l.mu.
func (l *limiter) sweep(now time.Time) {
	for session, entry := range l.sessions {
		if now.Sub(entry.lastSeen) > limiterIdle {
			delete(l.sessions, session)
		}
	}
}
