package game

import (
	"errors"
	"fmt"
)

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Is reports whether target is the category e belongs to
func (e GameError) Is(target error) bool {
	t, ok := target.(GameError)
	if !ok {
		return false
	}
	return categories[e] == t
}

// Error categories. Every rejection belongs to exactly one of them.
const (
	ErrIllegalAction    GameError = "illegal action"
	ErrValidation       GameError = "validation failed"
	ErrNotFound         GameError = "not found"
	ErrCapacityExceeded GameError = "capacity exceeded"
	ErrStorage          GameError = "storage failure"
)

// Illegal actions
const (
	ErrWrongPhase           GameError = "action not allowed in the current phase"
	ErrNotHost              GameError = "only the host can do that"
	ErrNotChooser           GameError = "only the chooser can do that"
	ErrNotYourTurn          GameError = "it is not your turn"
	ErrNoQuestionsLeft      GameError = "no questions left"
	ErrNoGuessesLeft        GameError = "no guesses left"
	ErrNotEnoughPlayers     GameError = "at least two players are needed"
	ErrEntryIsGuess         GameError = "guesses cannot be answered"
	ErrEntryAlreadyAnswered GameError = "question already answered"
	ErrCannotKickSelf       GameError = "host cannot kick themselves"
	ErrLastPlayer           GameError = "the last player cannot be evicted"
	ErrRoomBusy             GameError = "room is busy, try again"
)

// Validation failures
const (
	ErrEmptyText         GameError = "text cannot be empty"
	ErrInvalidName       GameError = "name must be 1-50 characters"
	ErrInvalidRoomConfig GameError = "invalid room settings"
	ErrMissingSession    GameError = "session token is required"
	ErrNilInput          GameError = "input cannot be nil"
)

// Lookups
const (
	ErrRoomNotFound   GameError = "room not found"
	ErrPlayerNotFound GameError = "player not found"
	ErrEntryNotFound  GameError = "entry not found"
)

// Capacity
const (
	ErrRoomFull        GameError = "room is full"
	ErrNoCodeAvailable GameError = "could not allocate a room code"
)

// Construction errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRoomRepo      GameError = "room repository cannot be nil"
	ErrNilPlayerRepo    GameError = "player repository cannot be nil"
	ErrNilExchangeRepo  GameError = "exchange repository cannot be nil"
	ErrNilLocker        GameError = "locker cannot be nil"
	ErrNilPublisher     GameError = "publisher cannot be nil"
	ErrNilPicker        GameError = "picker cannot be nil"
	ErrNilCodeGenerator GameError = "code generator cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)

var categories = map[GameError]GameError{
	ErrWrongPhase:           ErrIllegalAction,
	ErrNotHost:              ErrIllegalAction,
	ErrNotChooser:           ErrIllegalAction,
	ErrNotYourTurn:          ErrIllegalAction,
	ErrNoQuestionsLeft:      ErrIllegalAction,
	ErrNoGuessesLeft:        ErrIllegalAction,
	ErrNotEnoughPlayers:     ErrIllegalAction,
	ErrEntryIsGuess:         ErrIllegalAction,
	ErrEntryAlreadyAnswered: ErrIllegalAction,
	ErrCannotKickSelf:       ErrIllegalAction,
	ErrLastPlayer:           ErrIllegalAction,
	ErrRoomBusy:             ErrIllegalAction,

	ErrEmptyText:         ErrValidation,
	ErrInvalidName:       ErrValidation,
	ErrInvalidRoomConfig: ErrValidation,
	ErrMissingSession:    ErrValidation,
	ErrNilInput:          ErrValidation,

	ErrRoomNotFound:   ErrNotFound,
	ErrPlayerNotFound: ErrNotFound,
	ErrEntryNotFound:  ErrNotFound,

	ErrRoomFull:        ErrCapacityExceeded,
	ErrNoCodeAvailable: ErrCapacityExceeded,
}

// Category returns the category of err, or "" when err is not a game error
func Category(err error) GameError {
	for _, category := range []GameError{
		ErrIllegalAction,
		ErrValidation,
		ErrNotFound,
		ErrCapacityExceeded,
		ErrStorage,
	} {
		if errors.Is(err, category) {
			return category
		}
	}
	return ""
}

// StorageError wraps a failed load or save. The core never retries it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrStorage
func (e *StorageError) Is(target error) bool {
	t, ok := target.(GameError)
	return ok && t == ErrStorage
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
