package models

import (
	"time"
)

// Conventional answers offered to the chooser. Any other text is accepted too.
const (
	AnswerYes   = "yes"
	AnswerNo    = "no"
	AnswerMaybe = "maybe"
)

// Entry is one question or guess logged during a round
type Entry struct {
	// ID is the unique identifier for the entry
	ID string

	// RoomID is the room the entry was made in
	RoomID string

	// Game is the room's game number the entry belongs to
	Game int

	// Round is the round number the entry belongs to
	Round int

	// AuthorPlayerID is the guesser who wrote the entry
	AuthorPlayerID string

	// Text is the question or the guessed answer
	Text string

	// IsGuess distinguishes guesses from questions
	IsGuess bool

	// Answer is the chooser's reply to a question; nil until answered
	Answer *string

	// IsCorrect is set on guesses when they are submitted
	IsCorrect *bool

	// CreatedAt is when the entry was submitted
	CreatedAt time.Time

	// AnsweredAt is when the chooser replied
	AnsweredAt *time.Time
}

// IsAnswered returns true once the chooser has replied to a question
func (e *Entry) IsAnswered() bool {
	return e.Answer != nil
}

// Clone returns a deep copy of the entry
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	if e.Answer != nil {
		a := *e.Answer
		c.Answer = &a
	}
	if e.IsCorrect != nil {
		v := *e.IsCorrect
		c.IsCorrect = &v
	}
	if e.AnsweredAt != nil {
		t := *e.AnsweredAt
		c.AnsweredAt = &t
	}
	return &c
}
