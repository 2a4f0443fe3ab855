package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	randomMocks "github.com/KirkDiggler/stumped/internal/common/random/mocks"
	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockPicker *randomMocks.MockPicker
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPicker = randomMocks.NewMockPicker(s.mockCtrl)
	s.ctx = context.Background()

	// Always take the first line so the copy is predictable
	s.mockPicker.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()

	svc, err := NewService(&ServiceConfig{Picker: s.mockPicker})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MessagingServiceTestSuite) TestNewService_RequiresPicker() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilPicker)

	_, err = NewService(&ServiceConfig{})
	s.ErrorIs(err, ErrNilPicker)
}

func (s *MessagingServiceTestSuite) TestGetJoinMessage() {
	out, err := s.service.GetJoinMessage(s.ctx, &GetJoinMessageInput{
		PlayerName: "Ana",
		Status:     models.RoomStatusWaiting,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Ana")
	s.Equal(ToneFunny, out.Tone)

	out, err = s.service.GetJoinMessage(s.ctx, &GetJoinMessageInput{
		PlayerName:    "Ana",
		Status:        models.RoomStatusPlaying,
		AlreadyJoined: true,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "round is still going")
	s.Equal(ToneNeutral, out.Tone)

	out, err = s.service.GetJoinMessage(s.ctx, &GetJoinMessageInput{
		Status:        models.RoomStatusGameOver,
		AlreadyJoined: true,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "rematch")

	_, err = s.service.GetJoinMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *MessagingServiceTestSuite) TestGetStatusMessage() {
	out, err := s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{
		Status:      models.RoomStatusWaiting,
		PlayerCount: 3,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, fmt.Sprintf("3 of %d", models.MaxPlayersPerRoom))

	out, err = s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{
		Status: models.RoomStatus("unknown"),
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Guess the secret team")
}

func (s *MessagingServiceTestSuite) TestGetGuessResultMessage() {
	out, err := s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{
		PlayerName: "Bia",
		Guess:      "Gremio",
		Correct:    true,
	})
	s.Require().NoError(err)
	s.Equal("GOAL!", out.Title)
	s.Contains(out.Message, "Bia")
	s.Contains(out.Message, fmt.Sprintf("%d points", game.CorrectGuessPoints))

	out, err = s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{
		PlayerName:        "Bia",
		Guess:             "Santos",
		GuessesLeft:       0,
		IsPersonalMessage: true,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "last guess")

	out, err = s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{
		PlayerName:  "Bia",
		Guess:       "Santos",
		GuessesLeft: 2,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Nope")
}

func (s *MessagingServiceTestSuite) TestGetRoundResultMessage() {
	out, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Outcome:    models.RoundOutcomeGuessed,
		Answer:     "Grêmio",
		WinnerName: "Caio",
	})
	s.Require().NoError(err)
	s.Equal("Round won!", out.Title)
	s.Contains(out.Message, "Caio")
	s.Contains(out.Message, "Grêmio")

	out, err = s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Outcome:     models.RoundOutcomeStumped,
		Answer:      "Grêmio",
		ChooserName: "Ana",
	})
	s.Require().NoError(err)
	s.Equal("Stumped!", out.Title)
	s.Contains(out.Message, fmt.Sprintf("%d points", game.StumpBonusPoints))

	out, err = s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Outcome: models.RoundOutcomeAbandoned,
	})
	s.Require().NoError(err)
	s.Equal("Round abandoned", out.Title)
	s.NotContains(out.Message, "answer was")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	tests := []struct {
		name  string
		err   error
		title string
		want  string
	}{
		{"not your turn", game.ErrNotYourTurn, "Can't do that", "not your turn"},
		{"wrapped not host", fmt.Errorf("kick: %w", game.ErrNotHost), "Can't do that", "host"},
		{"room full", game.ErrRoomFull, "Room full", "already has"},
		{"validation", game.ErrEmptyText, "Check your input", "input"},
		{"not found", game.ErrRoomNotFound, "Not found", "Couldn't find"},
		{"unknown", errors.New("boom"), "Something went wrong", "our side"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tt.err})
			s.Require().NoError(err)
			s.Equal(tt.title, out.Title)
			s.Contains(out.Message, tt.want)
		})
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
