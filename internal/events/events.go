package events

//go:generate mockgen -package=mocks -destination=mocks/mock_events.go github.com/KirkDiggler/stumped/internal/events Publisher,Subscriber

import (
	"context"
	"time"
)

// Kind names what changed in a room
type Kind string

const (
	// RoomChanged fires when status, round, turn or answers move
	RoomChanged Kind = "room_changed"

	// PlayersChanged fires when players join, leave or their counters change
	PlayersChanged Kind = "players_changed"

	// EntriesChanged fires when a question, answer or guess is logged
	EntriesChanged Kind = "entries_changed"
)

// Event is the notification pushed after a successful mutation.
// It carries enough for consumers to decide whether to re-read the room.
type Event struct {
	Kind   Kind   `json:"kind"`
	RoomID string `json:"room_id"`

	// Status is the room status after the change
	Status string `json:"status,omitempty"`

	// PlayerIDs lists the players still seated, set on PlayersChanged
	PlayerIDs []string `json:"player_ids,omitempty"`

	// TurnPlayerID is the current turn holder while playing
	TurnPlayerID string `json:"turn_player_id,omitempty"`

	// Deleted is set when the last player left and the room is gone
	Deleted bool `json:"deleted,omitempty"`

	At time.Time `json:"at"`
}

// Publisher sends change events
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}

// Subscriber opens event streams
type Subscriber interface {
	// Subscribe streams the events of one room
	Subscribe(ctx context.Context, roomID string) (*Subscription, error)

	// SubscribeAll streams the events of every room
	SubscribeAll(ctx context.Context) (*Subscription, error)
}

// Subscription is an open event stream. Close must be called when done.
type Subscription struct {
	events chan *Event
	close  func() error
}

// NewSubscription wraps a channel and its closer
func NewSubscription(events chan *Event, closer func() error) *Subscription {
	return &Subscription{
		events: events,
		close:  closer,
	}
}

// Events returns the stream; it is closed after Close
func (s *Subscription) Events() <-chan *Event {
	return s.events
}

// Close ends the stream
func (s *Subscription) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
