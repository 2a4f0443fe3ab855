package game

import (
	"github.com/KirkDiggler/stumped/internal/common/clock"
	"github.com/KirkDiggler/stumped/internal/common/locker"
	"github.com/KirkDiggler/stumped/internal/common/random"
	"github.com/KirkDiggler/stumped/internal/common/roomcode"
	"github.com/KirkDiggler/stumped/internal/common/uuid"
	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/models"
	exchangeRepo "github.com/KirkDiggler/stumped/internal/repositories/exchange"
	playerRepo "github.com/KirkDiggler/stumped/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/stumped/internal/repositories/room"
	"github.com/rs/zerolog"
)

// Room settings
const (
	DefaultMaxGuesses   = 3
	DefaultMaxQuestions = 30
	DefaultMaxRounds    = 1

	MinMaxGuesses   = 1
	MaxMaxGuesses   = 10
	MinMaxQuestions = 1
	MaxMaxQuestions = 50
	MinMaxRounds    = 1
	MaxMaxRounds    = 10

	MaxNameLength = 50

	// CorrectGuessPoints goes to the guesser who names the answer
	CorrectGuessPoints = 5

	// StumpBonusPoints goes to the chooser when every guesser runs dry
	StumpBonusPoints = 3

	DefaultCodeAttempts = 10
)

// RemovalReason records why a player left the room
type RemovalReason string

const (
	RemovalKicked RemovalReason = "kicked"
	RemovalLeft   RemovalReason = "left"
	RemovalIdle   RemovalReason = "idle"
)

// Config holds the dependencies of the game service
type Config struct {
	// Repository dependencies
	RoomRepo     roomRepo.Repository
	PlayerRepo   playerRepo.Repository
	ExchangeRepo exchangeRepo.Repository

	// Locker serializes mutations per room
	Locker locker.Locker

	// Publisher announces committed changes
	Publisher events.Publisher

	// Service dependencies
	Picker        random.Picker
	CodeGenerator roomcode.Generator
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	Logger zerolog.Logger

	// CodeAttempts bounds join code collisions before giving up
	CodeAttempts int
}

// CreateRoomInput contains parameters for opening a room
type CreateRoomInput struct {
	// SessionToken identifies the creating session; it becomes the host
	SessionToken string

	HostName string

	// ChannelID optionally ties the room to a chat channel
	ChannelID string

	// Zero values fall back to the defaults
	MaxGuesses   int
	MaxQuestions int
	MaxRounds    int
}

// CreateRoomOutput contains the new room and its host
type CreateRoomOutput struct {
	Room   *models.Room
	Player *models.Player
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	Code         string
	SessionToken string
	Name         string
}

// JoinRoomOutput contains the room and the seated player
type JoinRoomOutput struct {
	Room   *models.Room
	Player *models.Player

	// AlreadyJoined is set when the session was seated before
	AlreadyJoined bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	RoomID       string
	SessionToken string
}

// StartGameOutput contains the started room
type StartGameOutput struct {
	Room    *models.Room
	Chooser *models.Player
}

// ChooseAnswerInput contains parameters for concealing the answer
type ChooseAnswerInput struct {
	RoomID       string
	SessionToken string
	Answer       string
}

// ChooseAnswerOutput contains the room now in play
type ChooseAnswerOutput struct {
	Room       *models.Room
	TurnPlayer *models.Player
}

// AskQuestionInput contains parameters for asking a question
type AskQuestionInput struct {
	RoomID       string
	SessionToken string
	Text         string
}

// AskQuestionOutput contains the logged question
type AskQuestionOutput struct {
	Entry         *models.Entry
	QuestionsLeft int
}

// AnswerQuestionInput contains parameters for answering a question
type AnswerQuestionInput struct {
	RoomID       string
	SessionToken string
	EntryID      string
	Answer       string
}

// AnswerQuestionOutput contains the answered question
type AnswerQuestionOutput struct {
	Entry *models.Entry
	Room  *models.Room

	// TurnAdvanced is set when answering handed the turn on
	TurnAdvanced bool
}

// SubmitGuessInput contains parameters for guessing
type SubmitGuessInput struct {
	RoomID       string
	SessionToken string
	Text         string
}

// SubmitGuessOutput contains the evaluated guess
type SubmitGuessOutput struct {
	Entry       *models.Entry
	Correct     bool
	GuessesLeft int
	Room        *models.Room
}

// PassTurnInput contains parameters for passing
type PassTurnInput struct {
	RoomID       string
	SessionToken string
}

// PassTurnOutput contains the room after the pass
type PassTurnOutput struct {
	Room       *models.Room
	TurnPlayer *models.Player
}

// AdvanceRoundInput contains parameters for moving to the next round
type AdvanceRoundInput struct {
	RoomID       string
	SessionToken string
}

// AdvanceRoundOutput contains the room after advancing
type AdvanceRoundOutput struct {
	Room     *models.Room
	Chooser  *models.Player
	GameOver bool
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	RoomID       string
	SessionToken string
}

// EndGameOutput contains the finished room
type EndGameOutput struct {
	Room *models.Room
}

// RestartGameInput contains parameters for restarting
type RestartGameInput struct {
	RoomID       string
	SessionToken string
}

// RestartGameOutput contains the room back in the lobby
type RestartGameOutput struct {
	Room    *models.Room
	Players []*models.Player
}

// KickPlayerInput contains parameters for kicking a player
type KickPlayerInput struct {
	RoomID       string
	SessionToken string
	PlayerID     string
}

// KickPlayerOutput contains the result of a kick
type KickPlayerOutput struct {
	Removed *models.Player
	Room    *models.Room
}

// LeavePlayerInput contains parameters for leaving
type LeavePlayerInput struct {
	RoomID       string
	SessionToken string
}

// LeavePlayerOutput contains the result of leaving
type LeavePlayerOutput struct {
	Removed *models.Player

	// Room is nil when the room was deleted
	Room        *models.Room
	RoomDeleted bool
}

// EvictPlayerInput contains parameters for evicting an idle player
type EvictPlayerInput struct {
	RoomID   string
	PlayerID string
}

// EvictPlayerOutput contains the result of an eviction
type EvictPlayerOutput struct {
	Removed *models.Player
	Room    *models.Room
}

// GetRoomInput contains parameters for reading a room
type GetRoomInput struct {
	RoomID string

	// SessionToken decides whether the concealed answer is visible
	SessionToken string
}

// RoomSnapshot is a read-only view of a room for one viewer
type RoomSnapshot struct {
	Room    *models.Room
	Players []*models.Player

	// Entries of the current round, oldest first
	Entries []*models.Entry

	// Viewer is the player seated under the session, if any
	Viewer *models.Player
}

// GetRoomOutput contains the snapshot
type GetRoomOutput struct {
	Snapshot *RoomSnapshot
}

// GetRoomByCodeInput contains parameters for a code lookup
type GetRoomByCodeInput struct {
	Code string
}

// GetRoomByCodeOutput contains the room, answer blanked
type GetRoomByCodeOutput struct {
	Room *models.Room
}

// GetRoomByChannelInput contains parameters for finding a channel's room
type GetRoomByChannelInput struct {
	ChannelID string
}

// GetRoomByChannelOutput contains the room opened from the channel
type GetRoomByChannelOutput struct {
	Room *models.Room
}

// GetStandingsInput contains parameters for the standings
type GetStandingsInput struct {
	RoomID string
}

// Standing is one ranked line of the scoreboard
type Standing struct {
	Rank     int
	PlayerID string
	Name     string
	Score    int
}

// GetStandingsOutput contains players ranked by score
type GetStandingsOutput struct {
	Room      *models.Room
	Standings []Standing
}
