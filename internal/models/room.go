package models

import (
	"time"
)

// RoomStatus represents the current phase of a room
type RoomStatus string

const (
	// RoomStatusWaiting indicates the room is gathering players
	RoomStatusWaiting RoomStatus = "waiting"

	// RoomStatusChoosing indicates the chooser is picking the concealed answer
	RoomStatusChoosing RoomStatus = "choosing"

	// RoomStatusPlaying indicates guessers are asking and guessing
	RoomStatusPlaying RoomStatus = "playing"

	// RoomStatusRoundEnd indicates a round finished and the host may advance
	RoomStatusRoundEnd RoomStatus = "round_end"

	// RoomStatusGameOver indicates every round has been played
	RoomStatusGameOver RoomStatus = "game_over"
)

var roomTransitions = map[RoomStatus][]RoomStatus{
	RoomStatusWaiting:  {RoomStatusChoosing},
	RoomStatusChoosing: {RoomStatusPlaying, RoomStatusRoundEnd, RoomStatusGameOver},
	RoomStatusPlaying:  {RoomStatusRoundEnd, RoomStatusGameOver},
	RoomStatusRoundEnd: {RoomStatusChoosing, RoomStatusGameOver},
	RoomStatusGameOver: {RoomStatusWaiting},
}

// CanTransitionTo reports whether moving from s to target is a legal step
func (s RoomStatus) CanTransitionTo(target RoomStatus) bool {
	for _, next := range roomTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsWaiting returns true if the room is in the lobby
func (s RoomStatus) IsWaiting() bool {
	return s == RoomStatusWaiting
}

// IsChoosing returns true if the chooser is concealing an answer
func (s RoomStatus) IsChoosing() bool {
	return s == RoomStatusChoosing
}

// IsPlaying returns true if guessers are taking turns
func (s RoomStatus) IsPlaying() bool {
	return s == RoomStatusPlaying
}

// IsRoundEnd returns true if the last round finished
func (s RoomStatus) IsRoundEnd() bool {
	return s == RoomStatusRoundEnd
}

// IsGameOver returns true if the game has finished
func (s RoomStatus) IsGameOver() bool {
	return s == RoomStatusGameOver
}

// InRound returns true while a round is being set up or played.
// Idle players are only evicted in these phases.
func (s RoomStatus) InRound() bool {
	return s == RoomStatusChoosing || s == RoomStatusPlaying
}

// String returns the string representation of the status
func (s RoomStatus) String() string {
	return string(s)
}

// RoundOutcome records how the last round ended
type RoundOutcome string

const (
	// RoundOutcomeGuessed indicates a guesser named the answer
	RoundOutcomeGuessed RoundOutcome = "guessed"

	// RoundOutcomeStumped indicates every guesser ran out of guesses
	RoundOutcomeStumped RoundOutcome = "stumped"

	// RoundOutcomeAbandoned indicates the chooser left mid-round
	RoundOutcomeAbandoned RoundOutcome = "abandoned"
)

// Room is the shared state of one game table
type Room struct {
	// ID is the unique identifier for the room
	ID string

	// Code is the short join token players type in
	Code string

	// ChannelID is the chat channel the room was opened from, if any
	ChannelID string

	// Status is the current phase of the room
	Status RoomStatus

	// HostID is the session token of the player with host privileges
	HostID string

	// MaxGuesses is how many guesses each guesser gets per round
	MaxGuesses int

	// MaxQuestions is how many questions each guesser gets per round
	MaxQuestions int

	// MaxRounds is how many times every player acts as chooser
	MaxRounds int

	// GameNumber counts games played in this room; restart starts a new one
	GameNumber int

	// CurrentRound is 1-based once the game starts
	CurrentRound int

	// CurrentChooserIndex indexes the chooser in the ordered player list
	CurrentChooserIndex int

	// CurrentTurnIndex indexes the guesser whose turn it is
	CurrentTurnIndex int

	// ConcealedAnswer is only set while choosing or playing and only ever shown to the chooser
	ConcealedAnswer string

	// RevealedAnswer is the answer of the round that just ended
	RevealedAnswer string

	// LastOutcome is how the previous round ended
	LastOutcome RoundOutcome

	// LastWinnerID is the player who guessed the previous answer, if anyone did
	LastWinnerID string

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time
}

// Clone returns a copy of the room that can be mutated independently
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
