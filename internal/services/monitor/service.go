package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/stumped/internal/common/clock"
	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/rs/zerolog"
)

// watch is one player's countdown. gen changes on every re-arm so a timer
// that fires after being replaced can tell it is stale.
type watch struct {
	timer clock.Timer
	gen   uint64
}

type roomWatch struct {
	status  models.RoomStatus
	players map[string]*watch
}

// service implements the Service interface
type service struct {
	clock        clock.Clock
	evictor      Evictor
	subscriber   events.Subscriber
	logger       zerolog.Logger
	timeout      time.Duration
	evictTimeout time.Duration

	mu    sync.Mutex
	rooms map[string]*roomWatch
	gen   uint64
}

// New creates a new inactivity monitor
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Evictor == nil {
		return nil, ErrNilEvictor
	}

	if cfg.Subscriber == nil {
		return nil, ErrNilSubscriber
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	evictTimeout := cfg.EvictTimeout
	if evictTimeout <= 0 {
		evictTimeout = DefaultEvictTimeout
	}

	return &service{
		clock:        cfg.Clock,
		evictor:      cfg.Evictor,
		subscriber:   cfg.Subscriber,
		logger:       cfg.Logger.With().Str("component", "monitor").Logger(),
		timeout:      timeout,
		evictTimeout: evictTimeout,
		rooms:        make(map[string]*roomWatch),
	}, nil
}

// active reports whether silence is being timed in this status
func active(status models.RoomStatus) bool {
	return status.IsChoosing() || status.IsPlaying()
}

// Watch starts tracking a player. Watching an already watched player keeps
// its running countdown.
func (s *service) Watch(ctx context.Context, input *WatchInput) (*WatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validate(input.RoomID, input.PlayerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rw, ok := s.rooms[input.RoomID]
	if !ok {
		rw = &roomWatch{
			status:  input.Status,
			players: make(map[string]*watch),
		}
		s.rooms[input.RoomID] = rw
	}

	w, ok := rw.players[input.PlayerID]
	if !ok {
		w = &watch{}
		rw.players[input.PlayerID] = w
	}

	if active(rw.status) && w.timer == nil {
		s.arm(input.RoomID, input.PlayerID, w)
	}

	return &WatchOutput{Armed: w.timer != nil}, nil
}

// Touch restarts the countdown of a watched player. Unknown players are
// ignored so transports can touch on every frame without checking.
func (s *service) Touch(ctx context.Context, input *TouchInput) (*TouchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validate(input.RoomID, input.PlayerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rw, ok := s.rooms[input.RoomID]
	if !ok {
		return &TouchOutput{}, nil
	}

	w, ok := rw.players[input.PlayerID]
	if !ok || !active(rw.status) {
		return &TouchOutput{}, nil
	}

	s.disarm(w)
	s.arm(input.RoomID, input.PlayerID, w)

	return &TouchOutput{Armed: true}, nil
}

// Unwatch stops tracking a player, or every player of the room
func (s *service) Unwatch(ctx context.Context, input *UnwatchInput) (*UnwatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.RoomID == "" {
		return nil, ErrMissingRoom
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.PlayerID == "" {
		return &UnwatchOutput{Removed: s.dropRoom(input.RoomID)}, nil
	}

	rw, ok := s.rooms[input.RoomID]
	if !ok {
		return &UnwatchOutput{}, nil
	}

	w, ok := rw.players[input.PlayerID]
	if !ok {
		return &UnwatchOutput{}, nil
	}

	s.disarm(w)
	delete(rw.players, input.PlayerID)
	if len(rw.players) == 0 {
		delete(s.rooms, input.RoomID)
	}

	return &UnwatchOutput{Removed: 1}, nil
}

// HandleEvent keeps timers in step with the room. Leaving choosing or
// playing disarms every timer, entering them arms fresh ones, and players
// missing from a players event stop being watched.
func (s *service) HandleEvent(ctx context.Context, event *events.Event) error {
	if event == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rw, ok := s.rooms[event.RoomID]
	if !ok {
		return nil
	}

	if event.Deleted {
		removed := s.dropRoom(event.RoomID)
		s.logger.Debug().Str("room_id", event.RoomID).Int("removed", removed).Msg("room deleted, watches dropped")
		return nil
	}

	if event.Kind == events.PlayersChanged {
		seated := make(map[string]bool, len(event.PlayerIDs))
		for _, id := range event.PlayerIDs {
			seated[id] = true
		}
		for playerID, w := range rw.players {
			if !seated[playerID] {
				s.disarm(w)
				delete(rw.players, playerID)
			}
		}
	}

	if event.Status != "" {
		status := models.RoomStatus(event.Status)
		wasActive := active(rw.status)
		rw.status = status

		switch {
		case active(status) && !wasActive:
			for playerID, w := range rw.players {
				s.arm(event.RoomID, playerID, w)
			}
		case !active(status) && wasActive:
			for _, w := range rw.players {
				s.disarm(w)
			}
		}
	}

	if len(rw.players) == 0 {
		delete(s.rooms, event.RoomID)
	}

	return nil
}

// Run feeds every room event into HandleEvent until ctx is done
func (s *service) Run(ctx context.Context) error {
	sub, err := s.subscriber.SubscribeAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to room events: %w", err)
	}
	defer sub.Close()
	defer s.stopAll()

	s.logger.Info().Dur("timeout", s.timeout).Msg("inactivity monitor running")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := s.HandleEvent(ctx, event); err != nil {
				s.logger.Warn().Err(err).Msg("failed to handle room event")
			}
		}
	}
}

// arm starts a countdown for w. Callers hold s.mu.
func (s *service) arm(roomID, playerID string, w *watch) {
	s.gen++
	gen := s.gen
	w.gen = gen
	w.timer = s.clock.AfterFunc(s.timeout, func() {
		s.expire(roomID, playerID, gen)
	})
}

// disarm stops w's countdown. Callers hold s.mu.
func (s *service) disarm(w *watch) {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen = 0
}

// dropRoom disarms and forgets every watch in a room. Callers hold s.mu.
func (s *service) dropRoom(roomID string) int {
	rw, ok := s.rooms[roomID]
	if !ok {
		return 0
	}
	for _, w := range rw.players {
		s.disarm(w)
	}
	delete(s.rooms, roomID)
	return len(rw.players)
}

func (s *service) stopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for roomID := range s.rooms {
		s.dropRoom(roomID)
	}
}

// expire runs on the timer goroutine when a player stayed silent too long
func (s *service) expire(roomID, playerID string, gen uint64) {
	s.mu.Lock()
	rw, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return
	}
	w, ok := rw.players[playerID]
	if !ok || w.gen != gen {
		s.mu.Unlock()
		return
	}
	w.timer = nil
	w.gen = 0
	s.mu.Unlock()

	log := s.logger.With().Str("room_id", roomID).Str("player_id", playerID).Logger()

	ctx, cancel := context.WithTimeout(context.Background(), s.evictTimeout)
	defer cancel()

	_, err := s.evictor.EvictPlayer(ctx, &game.EvictPlayerInput{
		RoomID:   roomID,
		PlayerID: playerID,
	})
	switch {
	case err == nil:
		log.Info().Msg("idle player evicted")
		s.forget(roomID, playerID)
	case errors.Is(err, game.ErrNotFound):
		s.forget(roomID, playerID)
	case errors.Is(err, game.ErrRoomBusy):
		log.Debug().Msg("room busy, eviction retried after another timeout")
		s.rearm(roomID, playerID)
	case errors.Is(err, game.ErrIllegalAction):
		// Last player standing or the round already moved on
		log.Debug().Err(err).Msg("idle player kept")
	default:
		log.Error().Err(err).Msg("failed to evict idle player, retrying after another timeout")
		s.rearm(roomID, playerID)
	}
}

// rearm restarts the countdown after a failed eviction unless the player was
// touched, forgotten or the room left the round in the meantime
func (s *service) rearm(roomID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rw, ok := s.rooms[roomID]
	if !ok || !active(rw.status) {
		return
	}
	w, ok := rw.players[playerID]
	if !ok || w.timer != nil {
		return
	}
	s.arm(roomID, playerID, w)
}

func (s *service) forget(roomID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rw, ok := s.rooms[roomID]
	if !ok {
		return
	}
	if w, ok := rw.players[playerID]; ok {
		s.disarm(w)
		delete(rw.players, playerID)
	}
	if len(rw.players) == 0 {
		delete(s.rooms, roomID)
	}
}

func validate(roomID, playerID string) error {
	if roomID == "" {
		return ErrMissingRoom
	}
	if playerID == "" {
		return ErrMissingPlayer
	}
	return nil
}
