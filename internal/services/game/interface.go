package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/stumped/internal/services/game Service

import "context"

// Service defines the interface for room and round operations
type Service interface {
	// CreateRoom opens a room with a fresh join code and seats the host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom seats a player in a waiting room found by its join code
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// StartGame picks a random chooser and opens the first round
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// ChooseAnswer conceals the round's answer and hands the turn to the first guesser
	ChooseAnswer(ctx context.Context, input *ChooseAnswerInput) (*ChooseAnswerOutput, error)

	// AskQuestion logs a question from the turn holder
	AskQuestion(ctx context.Context, input *AskQuestionInput) (*AskQuestionOutput, error)

	// AnswerQuestion records the chooser's reply to a pending question
	AnswerQuestion(ctx context.Context, input *AnswerQuestionInput) (*AnswerQuestionOutput, error)

	// SubmitGuess evaluates the turn holder's guess
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// PassTurn gives up the rest of the turn
	PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error)

	// AdvanceRound moves from round end to the next round or to game over
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// EndGame stops the game early
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// RestartGame sends a finished room back to the lobby with scores cleared
	RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error)

	// KickPlayer lets the host remove another player
	KickPlayer(ctx context.Context, input *KickPlayerInput) (*KickPlayerOutput, error)

	// LeavePlayer removes the calling player
	LeavePlayer(ctx context.Context, input *LeavePlayerInput) (*LeavePlayerOutput, error)

	// EvictPlayer removes a player that went idle
	EvictPlayer(ctx context.Context, input *EvictPlayerInput) (*EvictPlayerOutput, error)

	// GetRoom returns the room as seen by one session
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// GetRoomByCode resolves a join code
	GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*GetRoomByCodeOutput, error)

	// GetRoomByChannel finds the latest room opened from a chat channel
	GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*GetRoomByChannelOutput, error)

	// GetStandings returns players ranked by score
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)
}
