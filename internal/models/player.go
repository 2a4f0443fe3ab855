package models

import (
	"sort"
	"time"
)

// MaxPlayersPerRoom caps how many players can sit at one room
const MaxPlayersPerRoom = 4

// Player represents a participant seated in a room
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// RoomID is the room the player belongs to
	RoomID string

	// Name is the display name of the player
	Name string

	// SessionToken identifies the client session and survives reconnects
	SessionToken string

	// IsHost marks the player holding host privileges
	IsHost bool

	// Order fixes the rotation position; assigned once on join
	Order int

	// Score accumulates across rounds until the game restarts
	Score int

	// GuessesLeft is the remaining guess ration for the current round
	GuessesLeft int

	// QuestionsLeft is the remaining question ration for the current round
	QuestionsLeft int

	// JoinedAt is when the player joined the room
	JoinedAt time.Time
}

// Clone returns a copy of the player that can be mutated independently
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// SortByOrder sorts players in rotation order
func SortByOrder(players []*Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Order < players[j].Order
	})
}
