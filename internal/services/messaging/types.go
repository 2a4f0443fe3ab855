package messaging

import (
	"github.com/KirkDiggler/stumped/internal/common/random"
	"github.com/KirkDiggler/stumped/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetJoinMessageInput contains parameters for getting a join message
type GetJoinMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// Status is the current status of the room
	Status models.RoomStatus

	// AlreadyJoined indicates the session was already seated
	AlreadyJoined bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinMessageOutput contains the result of getting a join message
type GetJoinMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetStatusMessageInput is the input for GetStatusMessage
type GetStatusMessageInput struct {
	Status      models.RoomStatus
	PlayerCount int
}

// GetStatusMessageOutput is the output for GetStatusMessage
type GetStatusMessageOutput struct {
	Message string
}

// GetGuessResultMessageInput contains the input for GetGuessResultMessage
type GetGuessResultMessageInput struct {
	PlayerName  string
	Guess       string
	Correct     bool
	GuessesLeft int

	// IsPersonalMessage marks an ephemeral reply to the guesser
	IsPersonalMessage bool
}

// GetGuessResultMessageOutput contains the output for GetGuessResultMessage
type GetGuessResultMessageOutput struct {
	Title   string
	Message string
}

// GetRoundResultMessageInput contains the input for GetRoundResultMessage
type GetRoundResultMessageInput struct {
	Outcome     models.RoundOutcome
	Answer      string
	WinnerName  string
	ChooserName string
}

// GetRoundResultMessageOutput contains the output for GetRoundResultMessage
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Picker selects among the candidate lines
	Picker random.Picker
}
