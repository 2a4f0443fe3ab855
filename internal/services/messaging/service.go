package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/stumped/internal/common/random"
	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/services/game"
)

var (
	// ErrNilInput is returned when a request has no input
	ErrNilInput = errors.New("input cannot be nil")

	// ErrNilPicker is returned when the service is built without a picker
	ErrNilPicker = errors.New("picker cannot be nil")
)

// service implements the Service interface
type service struct {
	picker random.Picker
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil || config.Picker == nil {
		return nil, ErrNilPicker
	}

	return &service{
		picker: config.Picker,
	}, nil
}

func (s *service) pick(lines []string) string {
	return lines[s.picker.Intn(len(lines))]
}

// GetJoinMessage returns a message for when a player joins a room
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case !input.AlreadyJoined:
		messages = []string{
			fmt.Sprintf("Welcome, %s! Grab a seat, the kickoff is soon.", input.PlayerName),
			fmt.Sprintf("%s has entered the stadium!", input.PlayerName),
			fmt.Sprintf("A new challenger appears: %s. Study your league tables.", input.PlayerName),
			fmt.Sprintf("%s signed on a free transfer. Welcome to the squad!", input.PlayerName),
		}
	case input.Status.IsWaiting():
		messages = []string{
			"You're already on the team sheet. Hang tight while everyone arrives.",
			"Patience! You're already in this room.",
			"Double signing? You're already in this room!",
		}
	case input.Status.InRound():
		messages = []string{
			"Welcome back! The round is still going, jump in.",
			"Found your seat again. The match is in progress.",
			"You're back on the pitch. Keep an eye on the turn order.",
		}
	case input.Status.IsRoundEnd():
		messages = []string{
			"Welcome back! You caught us at half time.",
			"Back just in time for the replay.",
		}
	default:
		messages = []string{
			"The final whistle already blew. Ask the host for a rematch!",
			"This game is over. Fancy another one?",
		}
	}

	return &GetJoinMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetStatusMessage returns a flavour line for the room's phase
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	switch input.Status {
	case models.RoomStatusWaiting:
		messages = []string{
			fmt.Sprintf("Lobby open with %d of %d seats taken. Two players are enough to kick off.", input.PlayerCount, models.MaxPlayersPerRoom),
			fmt.Sprintf("%d in the dressing room. Waiting for the host to start.", input.PlayerCount),
		}
	case models.RoomStatusChoosing:
		messages = []string{
			"The chooser is picking a secret team. No peeking!",
			"Somewhere, a chooser is thinking of the most obscure club they know.",
			"Secret team being selected. Warm up those questions.",
		}
	case models.RoomStatusPlaying:
		messages = []string{
			"Ask away! Yes or no questions work best.",
			"The secret team is locked in. Who will crack it?",
			"Questions are cheap, guesses are not. Spend wisely.",
		}
	case models.RoomStatusRoundEnd:
		messages = []string{
			"Round over! The host can start the next one.",
			"That's the whistle. Check the scoreboard.",
		}
	case models.RoomStatusGameOver:
		messages = []string{
			"Full time! Final standings are in.",
			"Game over. The host can set up a rematch.",
		}
	default:
		return &GetStatusMessageOutput{
			Message: "Stumped is in progress. Guess the secret team!",
		}, nil
	}

	return &GetStatusMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetGuessResultMessage returns the message shown after a guess
func (s *service) GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Correct {
		titles := []string{
			"GOAL!",
			"Back of the net!",
			"Nailed it!",
		}

		var messages []string
		if input.IsPersonalMessage {
			messages = []string{
				fmt.Sprintf("%q is right! That's %d points for you.", input.Guess, game.CorrectGuessPoints),
				"You cracked it! Enjoy the points.",
			}
		} else {
			messages = []string{
				fmt.Sprintf("%s guessed %q and scores %d points!", input.PlayerName, input.Guess, game.CorrectGuessPoints),
				fmt.Sprintf("%s cracked the secret team: %q!", input.PlayerName, input.Guess),
			}
		}

		return &GetGuessResultMessageOutput{
			Title:   s.pick(titles),
			Message: s.pick(messages),
		}, nil
	}

	titles := []string{
		"Wide!",
		"Off the post!",
		"Not this time",
	}

	var message string
	switch {
	case input.IsPersonalMessage && input.GuessesLeft == 0:
		message = fmt.Sprintf("%q is not it, and that was your last guess.", input.Guess)
	case input.IsPersonalMessage:
		message = fmt.Sprintf("%q is not it. %d guesses left.", input.Guess, input.GuessesLeft)
	case input.GuessesLeft == 0:
		message = fmt.Sprintf("%s missed with %q and is out of guesses.", input.PlayerName, input.Guess)
	default:
		message = s.pick([]string{
			fmt.Sprintf("%s tried %q. Nope!", input.PlayerName, input.Guess),
			fmt.Sprintf("%q from %s sails over the bar.", input.Guess, input.PlayerName),
		})
	}

	return &GetGuessResultMessageOutput{
		Title:   s.pick(titles),
		Message: message,
	}, nil
}

// GetRoundResultMessage announces how a round ended
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	switch input.Outcome {
	case models.RoundOutcomeGuessed:
		return &GetRoundResultMessageOutput{
			Title: "Round won!",
			Message: s.pick([]string{
				fmt.Sprintf("%s found it. The answer was %s.", input.WinnerName, input.Answer),
				fmt.Sprintf("%s saw right through it: %s!", input.WinnerName, input.Answer),
			}),
		}, nil
	case models.RoundOutcomeStumped:
		return &GetRoundResultMessageOutput{
			Title: "Stumped!",
			Message: s.pick([]string{
				fmt.Sprintf("Nobody got it! %s takes %d points. The answer was %s.", input.ChooserName, game.StumpBonusPoints, input.Answer),
				fmt.Sprintf("%s stumped the whole room with %s!", input.ChooserName, input.Answer),
			}),
		}, nil
	case models.RoundOutcomeAbandoned:
		message := "The chooser left, so this round is called off."
		if input.Answer != "" {
			message = fmt.Sprintf("The chooser left, so this round is called off. The answer was %s.", input.Answer)
		}
		return &GetRoundResultMessageOutput{
			Title:   "Round abandoned",
			Message: message,
		}, nil
	default:
		return &GetRoundResultMessageOutput{
			Title:   "Round over",
			Message: "The round has ended.",
		}, nil
	}
}

// GetErrorMessage turns a game service error into something a player can read
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneSarcastic
	}

	title := "Can't do that"
	var messages []string

	switch {
	case errors.Is(input.Err, game.ErrNotYourTurn):
		messages = []string{
			"Easy there, it's not your turn.",
			"Wait for the ball to come to you. Not your turn!",
		}
	case errors.Is(input.Err, game.ErrNotChooser):
		messages = []string{
			"Only the chooser can do that.",
			"Nice try, but you're not the one holding the secret.",
		}
	case errors.Is(input.Err, game.ErrNotHost):
		messages = []string{
			"Only the host can do that.",
			"You'll need the captain's armband for that one.",
		}
	case errors.Is(input.Err, game.ErrNoGuessesLeft):
		messages = []string{
			"You're out of guesses for this round.",
			"No guesses left. Cheer on the others!",
		}
	case errors.Is(input.Err, game.ErrNoQuestionsLeft):
		messages = []string{
			"You've used all your questions. You can still guess!",
			"Out of questions. Time to trust your gut and guess.",
		}
	case errors.Is(input.Err, game.ErrNotEnoughPlayers):
		messages = []string{
			"You need at least two players to kick off.",
			"It takes two to play. Invite a friend!",
		}
	case errors.Is(input.Err, game.ErrRoomFull):
		title = "Room full"
		messages = []string{
			fmt.Sprintf("This room already has %d players.", models.MaxPlayersPerRoom),
			"The squad is full. Start your own room!",
		}
	case errors.Is(input.Err, game.ErrRoomBusy):
		title = "Try again"
		messages = []string{
			"Too many things happening at once. Try again.",
		}
	case errors.Is(input.Err, game.ErrWrongPhase):
		messages = []string{
			"That doesn't work at this point of the game.",
			"Wrong moment for that move.",
		}
	case errors.Is(input.Err, game.ErrIllegalAction):
		messages = []string{
			"That move isn't allowed right now.",
		}
	case errors.Is(input.Err, game.ErrValidation):
		title = "Check your input"
		messages = []string{
			"Something about that input didn't look right.",
		}
	case errors.Is(input.Err, game.ErrNotFound):
		title = "Not found"
		messages = []string{
			"Couldn't find that. Maybe the room closed?",
			"That room or player doesn't exist anymore.",
		}
	default:
		title = "Something went wrong"
		tone = ToneNeutral
		messages = []string{
			"Something went wrong on our side. Try again in a moment.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
