package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/stumped/internal/common/clock/mocks"
	"github.com/KirkDiggler/stumped/internal/common/locker"
	lockerMocks "github.com/KirkDiggler/stumped/internal/common/locker/mocks"
	randomMocks "github.com/KirkDiggler/stumped/internal/common/random/mocks"
	roomcodeMocks "github.com/KirkDiggler/stumped/internal/common/roomcode/mocks"
	uuidMocks "github.com/KirkDiggler/stumped/internal/common/uuid/mocks"
	"github.com/KirkDiggler/stumped/internal/events"
	eventsMocks "github.com/KirkDiggler/stumped/internal/events/mocks"
	"github.com/KirkDiggler/stumped/internal/models"
	exchangeRepo "github.com/KirkDiggler/stumped/internal/repositories/exchange"
	playerRepo "github.com/KirkDiggler/stumped/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/stumped/internal/repositories/room"
	roomMocks "github.com/KirkDiggler/stumped/internal/repositories/room/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var sessions = []string{"session-ana", "session-bia", "session-caio", "session-duda", "session-edu"}

var names = []string{"Ana", "Bia", "Caio", "Duda", "Edu"}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mr            *miniredis.Miniredis
	client        *redis.Client
	mockPicker    *randomMocks.MockPicker
	mockGenerator *roomcodeMocks.MockGenerator
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	mockPublisher *eventsMocks.MockPublisher
	gameService   Service
	ctx           context.Context

	roomRepo     roomRepo.Repository
	playerRepo   playerRepo.Repository
	exchangeRepo exchangeRepo.Repository

	testTime time.Time

	mu        sync.Mutex
	uuidCount int
	codeCount int
	published []*events.Event
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPicker = randomMocks.NewMockPicker(s.mockCtrl)
	s.mockGenerator = roomcodeMocks.NewMockGenerator(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockPublisher = eventsMocks.NewMockPublisher(s.mockCtrl)
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	exchange, err := exchangeRepo.NewRedis(&exchangeRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.roomRepo = rooms
	s.playerRepo = players
	s.exchangeRepo = exchange

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.uuidCount = 0
	s.codeCount = 0
	s.published = nil

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.uuidCount++
		return fmt.Sprintf("uuid-%d", s.uuidCount)
	}).AnyTimes()
	s.mockGenerator.EXPECT().Generate().DoAndReturn(func() string {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.codeCount++
		return fmt.Sprintf("code%02d", s.codeCount)
	}).AnyTimes()
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.published = append(s.published, event)
			return nil
		}).AnyTimes()

	s.gameService = s.newService(s.roomRepo, locker.NewMemory(&locker.MemoryConfig{Wait: time.Second}))
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) newService(rooms roomRepo.Repository, l locker.Locker) Service {
	svc, err := New(&Config{
		RoomRepo:      rooms,
		PlayerRepo:    s.playerRepo,
		ExchangeRepo:  s.exchangeRepo,
		Locker:        l,
		Publisher:     s.mockPublisher,
		Picker:        s.mockPicker,
		CodeGenerator: s.mockGenerator,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        zerolog.Nop(),
	})
	s.Require().NoError(err)
	return svc
}

// table is a room with seated players, indexed like sessions
type table struct {
	roomID  string
	code    string
	players []*models.Player
}

func (t *table) session(i int) string {
	return t.players[i].SessionToken
}

// seat creates a room hosted by sessions[0] and joins n-1 more players
func (s *GameServiceTestSuite) seat(n int, input *CreateRoomInput) *table {
	if input == nil {
		input = &CreateRoomInput{}
	}
	input.SessionToken = sessions[0]
	input.HostName = names[0]

	created, err := s.gameService.CreateRoom(s.ctx, input)
	s.Require().NoError(err)

	t := &table{
		roomID:  created.Room.ID,
		code:    created.Room.Code,
		players: []*models.Player{created.Player},
	}

	for i := 1; i < n; i++ {
		joined, err := s.gameService.JoinRoom(s.ctx, &JoinRoomInput{
			Code:         created.Room.Code,
			SessionToken: sessions[i],
			Name:         names[i],
		})
		s.Require().NoError(err)
		t.players = append(t.players, joined.Player)
	}

	return t
}

// play seats n players, starts with the given chooser and conceals answer
func (s *GameServiceTestSuite) play(n, chooser int, answer string, input *CreateRoomInput) *table {
	t := s.seat(n, input)

	s.mockPicker.EXPECT().Intn(n).Return(chooser)
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		RoomID:       t.roomID,
		SessionToken: t.session(0),
	})
	s.Require().NoError(err)

	_, err = s.gameService.ChooseAnswer(s.ctx, &ChooseAnswerInput{
		RoomID:       t.roomID,
		SessionToken: t.session(chooser),
		Answer:       answer,
	})
	s.Require().NoError(err)

	return t
}

func (s *GameServiceTestSuite) snapshot(t *table, session string) *RoomSnapshot {
	output, err := s.gameService.GetRoom(s.ctx, &GetRoomInput{
		RoomID:       t.roomID,
		SessionToken: session,
	})
	s.Require().NoError(err)
	return output.Snapshot
}

// storedRoom reads the room exactly as persisted
func (s *GameServiceTestSuite) storedRoom(t *table) *models.Room {
	room, err := s.roomRepo.GetRoom(s.ctx, &roomRepo.GetRoomInput{RoomID: t.roomID})
	s.Require().NoError(err)
	return room
}

func (s *GameServiceTestSuite) storedPlayers(t *table) []*models.Player {
	output, err := s.playerRepo.GetPlayersInRoom(s.ctx, &playerRepo.GetPlayersInRoomInput{RoomID: t.roomID})
	s.Require().NoError(err)
	return output.Players
}

func (s *GameServiceTestSuite) turnHolder(t *table) *models.Player {
	room := s.storedRoom(t)
	players := s.storedPlayers(t)
	return players[room.CurrentTurnIndex]
}

func (s *GameServiceTestSuite) pass(t *table, i int) {
	_, err := s.gameService.PassTurn(s.ctx, &PassTurnInput{
		RoomID:       t.roomID,
		SessionToken: t.session(i),
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) guess(t *table, i int, text string) *SubmitGuessOutput {
	output, err := s.gameService.SubmitGuess(s.ctx, &SubmitGuessInput{
		RoomID:       t.roomID,
		SessionToken: t.session(i),
		Text:         text,
	})
	s.Require().NoError(err)
	return output
}

// assertTurnInvariant checks the turn is never on the chooser while playing
func (s *GameServiceTestSuite) assertTurnInvariant(t *table) {
	room := s.storedRoom(t)
	players := s.storedPlayers(t)
	if len(players) == 0 {
		return
	}
	s.Less(room.CurrentChooserIndex, len(players))
	s.Less(room.CurrentTurnIndex, len(players))
	if room.Status.IsPlaying() {
		s.NotEqual(room.CurrentChooserIndex, room.CurrentTurnIndex)
	}
	for _, p := range players {
		s.GreaterOrEqual(p.GuessesLeft, 0)
		s.LessOrEqual(p.GuessesLeft, room.MaxGuesses)
		s.GreaterOrEqual(p.QuestionsLeft, 0)
		s.LessOrEqual(p.QuestionsLeft, room.MaxQuestions)
	}
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRoomRepo)

	_, err = New(&Config{
		RoomRepo:     s.roomRepo,
		PlayerRepo:   s.playerRepo,
		ExchangeRepo: s.exchangeRepo,
	})
	s.ErrorIs(err, ErrNilLocker)
}

func (s *GameServiceTestSuite) TestErrorCategories() {
	s.ErrorIs(ErrNotYourTurn, ErrIllegalAction)
	s.ErrorIs(ErrEmptyText, ErrValidation)
	s.ErrorIs(ErrRoomNotFound, ErrNotFound)
	s.ErrorIs(ErrRoomFull, ErrCapacityExceeded)
	s.NotErrorIs(ErrNotYourTurn, ErrValidation)
	s.NotErrorIs(ErrNotYourTurn, ErrNotHost)

	wrapped := fmt.Errorf("%w: max guesses", ErrInvalidRoomConfig)
	s.Equal(ErrValidation, Category(wrapped))
	s.Equal(GameError(""), Category(errors.New("other")))

	storage := storageError("save room", errors.New("connection reset"))
	s.ErrorIs(storage, ErrStorage)
	s.Equal(ErrStorage, Category(storage))
	s.Contains(storage.Error(), "save room")
}

func (s *GameServiceTestSuite) TestCreateRoom_HappyPath() {
	output, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{
		SessionToken: sessions[0],
		HostName:     "  Ana  ",
		ChannelID:    "channel-1",
	})
	s.Require().NoError(err)

	s.Equal("uuid-1", output.Room.ID)
	s.Equal("CODE01", output.Room.Code)
	s.Equal(models.RoomStatusWaiting, output.Room.Status)
	s.Equal(sessions[0], output.Room.HostID)
	s.Equal(DefaultMaxGuesses, output.Room.MaxGuesses)
	s.Equal(DefaultMaxQuestions, output.Room.MaxQuestions)
	s.Equal(DefaultMaxRounds, output.Room.MaxRounds)
	s.Equal(1, output.Room.GameNumber)

	s.Equal("uuid-2", output.Player.ID)
	s.Equal("Ana", output.Player.Name)
	s.True(output.Player.IsHost)
	s.Equal(0, output.Player.Order)
	s.Equal(DefaultMaxGuesses, output.Player.GuessesLeft)
	s.Equal(DefaultMaxQuestions, output.Player.QuestionsLeft)

	byChannel, err := s.roomRepo.GetRoomByChannel(s.ctx, &roomRepo.GetRoomByChannelInput{ChannelID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(output.Room.ID, byChannel.ID)
}

func (s *GameServiceTestSuite) TestGetRoomByChannel() {
	output, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{
		SessionToken: sessions[0],
		HostName:     "Ana",
		ChannelID:    "channel-7",
	})
	s.Require().NoError(err)

	byChannel, err := s.gameService.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{ChannelID: "channel-7"})
	s.Require().NoError(err)
	s.Equal(output.Room.ID, byChannel.Room.ID)

	_, err = s.gameService.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{ChannelID: "channel-8"})
	s.ErrorIs(err, ErrRoomNotFound)

	_, err = s.gameService.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *GameServiceTestSuite) TestCreateRoom_InvalidSettings() {
	cases := []struct {
		name  string
		input *CreateRoomInput
		err   error
	}{
		{"guesses too high", &CreateRoomInput{MaxGuesses: 11}, ErrInvalidRoomConfig},
		{"guesses negative", &CreateRoomInput{MaxGuesses: -1}, ErrInvalidRoomConfig},
		{"questions too high", &CreateRoomInput{MaxQuestions: 51}, ErrInvalidRoomConfig},
		{"rounds too high", &CreateRoomInput{MaxRounds: 11}, ErrInvalidRoomConfig},
		{"blank name", &CreateRoomInput{HostName: "   "}, ErrInvalidName},
		{"long name", &CreateRoomInput{HostName: strings.Repeat("a", 51)}, ErrInvalidName},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.input.SessionToken = sessions[0]
			if tc.input.HostName == "" {
				tc.input.HostName = "Ana"
			}
			_, err := s.gameService.CreateRoom(s.ctx, tc.input)
			s.ErrorIs(err, tc.err)
			s.ErrorIs(err, ErrValidation)
		})
	}

	_, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{HostName: "Ana"})
	s.ErrorIs(err, ErrMissingSession)
}

func (s *GameServiceTestSuite) TestCreateRoom_RetriesCodeCollision() {
	s.Require().NoError(s.roomRepo.ReserveCode(s.ctx, &roomRepo.ReserveCodeInput{
		Code:   "CODE01",
		RoomID: "someone-else",
	}))

	output, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{
		SessionToken: sessions[0],
		HostName:     "Ana",
	})
	s.Require().NoError(err)
	s.Equal("CODE02", output.Room.Code)
}

// unsavableRooms stores everything except rooms themselves
type unsavableRooms struct {
	roomRepo.Repository
	err error
}

func (r *unsavableRooms) SaveRoom(context.Context, *roomRepo.SaveRoomInput) error {
	return r.err
}

func (s *GameServiceTestSuite) TestCreateRoom_FailedSaveReleasesCode() {
	boom := errors.New("connection reset")
	svc := s.newService(&unsavableRooms{Repository: s.roomRepo, err: boom}, locker.NewMemory(nil))

	_, err := svc.CreateRoom(s.ctx, &CreateRoomInput{
		SessionToken: sessions[0],
		HostName:     "Ana",
	})
	s.ErrorIs(err, ErrStorage)
	s.ErrorIs(err, boom)

	s.False(s.mr.Exists("room_code:CODE01"))
	_, err = s.playerRepo.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "uuid-2"})
	s.ErrorIs(err, playerRepo.ErrPlayerNotFound)

	// The code is free for the next room
	s.NoError(s.roomRepo.ReserveCode(s.ctx, &roomRepo.ReserveCodeInput{
		Code:   "CODE01",
		RoomID: "room-next",
	}))
}

func (s *GameServiceTestSuite) TestCreateRoom_CodeSpaceExhausted() {
	for i := 1; i <= DefaultCodeAttempts; i++ {
		s.Require().NoError(s.roomRepo.ReserveCode(s.ctx, &roomRepo.ReserveCodeInput{
			Code:   fmt.Sprintf("CODE%02d", i),
			RoomID: "taken",
		}))
	}

	_, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{
		SessionToken: sessions[0],
		HostName:     "Ana",
	})
	s.ErrorIs(err, ErrNoCodeAvailable)
	s.ErrorIs(err, ErrCapacityExceeded)
}

func (s *GameServiceTestSuite) TestJoinRoom_HappyPath() {
	t := s.seat(1, nil)

	output, err := s.gameService.JoinRoom(s.ctx, &JoinRoomInput{
		Code:         strings.ToLower(t.code),
		SessionToken: sessions[1],
		Name:         "Bia",
	})
	s.Require().NoError(err)
	s.False(output.AlreadyJoined)
	s.Equal("Bia", output.Player.Name)
	s.Equal(1, output.Player.Order)
	s.False(output.Player.IsHost)

	players := s.storedPlayers(t)
	s.Require().Len(players, 2)
	s.Equal(sessions[1], players[1].SessionToken)
}

func (s *GameServiceTestSuite) TestJoinRoom_Rejoin() {
	t := s.seat(2, nil)

	output, err := s.gameService.JoinRoom(s.ctx, &JoinRoomInput{
		Code:         t.code,
		SessionToken: sessions[1],
		Name:         "Someone Else",
	})
	s.Require().NoError(err)
	s.True(output.AlreadyJoined)
	s.Equal(t.players[1].ID, output.Player.ID)
	s.Equal("Bia", output.Player.Name)
	s.Len(s.storedPlayers(t), 2)
}

func (s *GameServiceTestSuite) TestJoinRoom_Full() {
	t := s.seat(models.MaxPlayersPerRoom, nil)

	_, err := s.gameService.JoinRoom(s.ctx, &JoinRoomInput{
		Code:         t.code,
		SessionToken: sessions[4],
		Name:         names[4],
	})
	s.ErrorIs(err, ErrRoomFull)
	s.ErrorIs(err, ErrCapacityExceeded)
}

func (s *GameServiceTestSuite) TestJoinRoom_NotWaiting() {
	t := s.play(2, 0, "Flamengo", nil)

	_, err := s.gameService.JoinRoom(s.ctx, &JoinRoomInput{
		Code:         t.code,
		SessionToken: sessions[2],
		Name:         names[2],
	})
	s.ErrorIs(err, ErrWrongPhase)
	s.ErrorIs(err, ErrIllegalAction)
}

func (s *GameServiceTestSuite) TestJoinRoom_UnknownCode() {
	_, err := s.gameService.JoinRoom(s.ctx, &JoinRoomInput{
		Code:         "NOPE00",
		SessionToken: sessions[1],
		Name:         "Bia",
	})
	s.ErrorIs(err, ErrRoomNotFound)
	s.ErrorIs(err, ErrNotFound)
}

func (s *GameServiceTestSuite) TestStartGame_Guards() {
	t := s.seat(1, nil)

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.ErrorIs(err, ErrNotEnoughPlayers)

	joined, err := s.gameService.JoinRoom(s.ctx, &JoinRoomInput{Code: t.code, SessionToken: sessions[1], Name: "Bia"})
	s.Require().NoError(err)
	t.players = append(t.players, joined.Player)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: t.session(1)})
	s.ErrorIs(err, ErrNotHost)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: "stranger"})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: "missing", SessionToken: t.session(0)})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *GameServiceTestSuite) TestStartGame_HappyPath() {
	t := s.seat(3, &CreateRoomInput{MaxGuesses: 2, MaxQuestions: 5})

	s.mockPicker.EXPECT().Intn(3).Return(1)
	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		RoomID:       t.roomID,
		SessionToken: t.session(0),
	})
	s.Require().NoError(err)

	s.Equal(models.RoomStatusChoosing, output.Room.Status)
	s.Equal(1, output.Room.CurrentRound)
	s.Equal(1, output.Room.CurrentChooserIndex)
	s.Equal(t.players[1].ID, output.Chooser.ID)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.ErrorIs(err, ErrWrongPhase)
}

func (s *GameServiceTestSuite) TestChooseAnswer_Guards() {
	t := s.seat(3, nil)
	s.mockPicker.EXPECT().Intn(3).Return(2)
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)

	_, err = s.gameService.ChooseAnswer(s.ctx, &ChooseAnswerInput{
		RoomID: t.roomID, SessionToken: t.session(0), Answer: "Flamengo",
	})
	s.ErrorIs(err, ErrNotChooser)

	_, err = s.gameService.ChooseAnswer(s.ctx, &ChooseAnswerInput{
		RoomID: t.roomID, SessionToken: t.session(2), Answer: "   ",
	})
	s.ErrorIs(err, ErrEmptyText)

	s.Equal(models.RoomStatusChoosing, s.storedRoom(t).Status)
}

func (s *GameServiceTestSuite) TestChooseAnswer_TurnWrapsAfterLastChooser() {
	t := s.seat(3, nil)
	s.mockPicker.EXPECT().Intn(3).Return(2)
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)

	output, err := s.gameService.ChooseAnswer(s.ctx, &ChooseAnswerInput{
		RoomID: t.roomID, SessionToken: t.session(2), Answer: " Flamengo ",
	})
	s.Require().NoError(err)

	s.Equal(models.RoomStatusPlaying, output.Room.Status)
	s.Equal("Flamengo", output.Room.ConcealedAnswer)
	s.Equal(0, output.Room.CurrentTurnIndex)
	s.Equal(t.players[0].ID, output.TurnPlayer.ID)
	s.assertTurnInvariant(t)
}

func (s *GameServiceTestSuite) TestPassTurn_RotatesThroughThreeGuessers() {
	t := s.play(4, 0, "Flamengo", nil)

	s.Equal(t.players[1].ID, s.turnHolder(t).ID)

	s.pass(t, 1)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)

	s.pass(t, 2)
	s.Equal(t.players[3].ID, s.turnHolder(t).ID)

	s.pass(t, 3)
	s.Equal(t.players[1].ID, s.turnHolder(t).ID)

	s.assertTurnInvariant(t)
}

func (s *GameServiceTestSuite) TestPassTurn_NotYourTurn() {
	t := s.play(3, 0, "Flamengo", nil)

	_, err := s.gameService.PassTurn(s.ctx, &PassTurnInput{RoomID: t.roomID, SessionToken: t.session(2)})
	s.ErrorIs(err, ErrNotYourTurn)

	// The chooser never holds the turn
	_, err = s.gameService.PassTurn(s.ctx, &PassTurnInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.ErrorIs(err, ErrNotYourTurn)
}

func (s *GameServiceTestSuite) TestAskQuestion() {
	t := s.play(3, 0, "Flamengo", &CreateRoomInput{MaxQuestions: 1})

	output, err := s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: " Is it from Rio? ",
	})
	s.Require().NoError(err)
	s.Equal(0, output.QuestionsLeft)
	s.Equal("Is it from Rio?", output.Entry.Text)
	s.False(output.Entry.IsGuess)
	s.False(output.Entry.IsAnswered())
	s.Equal(1, output.Entry.Round)

	// Asking does not move the turn
	s.Equal(t.players[1].ID, s.turnHolder(t).ID)

	_, err = s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: "Red and black?",
	})
	s.ErrorIs(err, ErrNoQuestionsLeft)

	_, err = s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(2), Text: "Red and black?",
	})
	s.ErrorIs(err, ErrNotYourTurn)

	_, err = s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: "",
	})
	s.ErrorIs(err, ErrEmptyText)

	snap := s.snapshot(t, t.session(1))
	s.Require().Len(snap.Entries, 1)
	s.Equal(output.Entry.ID, snap.Entries[0].ID)
}

func (s *GameServiceTestSuite) TestAnswerQuestion_AdvancesTurn() {
	t := s.play(3, 0, "Flamengo", nil)

	first, err := s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: "Is it from Rio?",
	})
	s.Require().NoError(err)

	// Only the chooser answers
	_, err = s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), EntryID: first.Entry.ID, Answer: models.AnswerYes,
	})
	s.ErrorIs(err, ErrNotChooser)

	answered, err := s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(0), EntryID: first.Entry.ID, Answer: models.AnswerYes,
	})
	s.Require().NoError(err)
	s.True(answered.TurnAdvanced)
	s.Equal(models.AnswerYes, *answered.Entry.Answer)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)

	_, err = s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(0), EntryID: first.Entry.ID, Answer: models.AnswerNo,
	})
	s.ErrorIs(err, ErrEntryAlreadyAnswered)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)

	stored, err := s.exchangeRepo.GetEntry(s.ctx, &exchangeRepo.GetEntryInput{EntryID: first.Entry.ID})
	s.Require().NoError(err)
	s.Equal(models.AnswerYes, *stored.Answer)
}

func (s *GameServiceTestSuite) TestAnswerQuestion_LateAnswerStillAdvancesTurn() {
	t := s.play(4, 0, "Flamengo", nil)

	question, err := s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: "Is it from Rio?",
	})
	s.Require().NoError(err)

	s.pass(t, 1)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)

	// Answering an earlier holder's question still moves the turn on
	answered, err := s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(0), EntryID: question.Entry.ID, Answer: models.AnswerNo,
	})
	s.Require().NoError(err)
	s.True(answered.TurnAdvanced)
	s.Equal(t.players[3].ID, s.turnHolder(t).ID)
	s.assertTurnInvariant(t)
}

func (s *GameServiceTestSuite) TestAnswerQuestion_Rejections() {
	t := s.play(3, 0, "Flamengo", nil)

	guess := s.guess(t, 1, "Vasco")

	_, err := s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(0), EntryID: guess.Entry.ID, Answer: models.AnswerNo,
	})
	s.ErrorIs(err, ErrEntryIsGuess)

	_, err = s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(0), EntryID: "missing", Answer: models.AnswerNo,
	})
	s.ErrorIs(err, ErrEntryNotFound)

	question, err := s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(2), Text: "Is it from Rio?",
	})
	s.Require().NoError(err)

	_, err = s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(0), EntryID: question.Entry.ID, Answer: "  ",
	})
	s.ErrorIs(err, ErrEmptyText)
}

func (s *GameServiceTestSuite) TestSubmitGuess_CorrectEndsRound() {
	t := s.play(3, 0, "Flamengo", nil)

	output := s.guess(t, 1, "flamego")
	s.True(output.Correct)
	s.Equal(DefaultMaxGuesses-1, output.GuessesLeft)
	s.Require().NotNil(output.Entry.IsCorrect)
	s.True(*output.Entry.IsCorrect)

	room := s.storedRoom(t)
	s.Equal(models.RoomStatusRoundEnd, room.Status)
	s.Equal(models.RoundOutcomeGuessed, room.LastOutcome)
	s.Equal(t.players[1].ID, room.LastWinnerID)
	s.Equal("Flamengo", room.RevealedAnswer)
	s.Empty(room.ConcealedAnswer)

	players := s.storedPlayers(t)
	s.Equal(0, players[0].Score)
	s.Equal(CorrectGuessPoints, players[1].Score)
	s.Equal(0, players[2].Score)
}

func (s *GameServiceTestSuite) TestSubmitGuess_StumpedWithTwoGuesses() {
	t := s.play(3, 0, "Flamengo", &CreateRoomInput{MaxGuesses: 2})

	s.False(s.guess(t, 1, "Vasco").Correct)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)
	s.False(s.guess(t, 2, "Botafogo").Correct)
	s.Equal(t.players[1].ID, s.turnHolder(t).ID)
	s.False(s.guess(t, 1, "Fluminense").Correct)

	// Bia is out; Caio keeps the turn until he runs dry too
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)
	s.Equal(models.RoomStatusPlaying, s.storedRoom(t).Status)

	last := s.guess(t, 2, "Palmeiras")
	s.False(last.Correct)
	s.Equal(0, last.GuessesLeft)

	room := s.storedRoom(t)
	s.Equal(models.RoomStatusRoundEnd, room.Status)
	s.Equal(models.RoundOutcomeStumped, room.LastOutcome)
	s.Equal("Flamengo", room.RevealedAnswer)

	players := s.storedPlayers(t)
	s.Equal(StumpBonusPoints, players[0].Score)
	s.Equal(0, players[1].Score)
	s.Equal(0, players[2].Score)

	_, err := s.gameService.SubmitGuess(s.ctx, &SubmitGuessInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: "Santos",
	})
	s.ErrorIs(err, ErrWrongPhase)
}

func (s *GameServiceTestSuite) TestSubmitGuess_SkipsExhaustedGuessers() {
	t := s.play(4, 0, "Flamengo", &CreateRoomInput{MaxGuesses: 1})

	s.guess(t, 1, "Vasco")
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)

	s.pass(t, 2)
	s.Equal(t.players[3].ID, s.turnHolder(t).ID)

	// Bia has no guesses left and is skipped
	s.pass(t, 3)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)
	s.assertTurnInvariant(t)
}

func (s *GameServiceTestSuite) TestSubmitGuess_OutOfQuestionsStillPlays() {
	t := s.play(3, 0, "Flamengo", &CreateRoomInput{MaxQuestions: 1})

	_, err := s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: "Is it from Rio?",
	})
	s.Require().NoError(err)
	s.pass(t, 1)
	s.pass(t, 2)

	// No questions but guesses left keeps Bia in the rotation
	s.Equal(t.players[1].ID, s.turnHolder(t).ID)
	s.True(s.guess(t, 1, "Flamengo").Correct)
}

func (s *GameServiceTestSuite) TestRejectedActionLeavesStateUntouched() {
	t := s.play(3, 0, "Flamengo", nil)

	beforeRoom := s.storedRoom(t)
	beforePlayers := s.storedPlayers(t)

	_, err := s.gameService.SubmitGuess(s.ctx, &SubmitGuessInput{
		RoomID: t.roomID, SessionToken: t.session(2), Text: "Vasco",
	})
	s.ErrorIs(err, ErrNotYourTurn)
	_, err = s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{
		RoomID: t.roomID, SessionToken: t.session(0),
	})
	s.ErrorIs(err, ErrWrongPhase)

	if diff := cmp.Diff(beforeRoom, s.storedRoom(t)); diff != "" {
		s.Failf("room changed", "diff (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(beforePlayers, s.storedPlayers(t)); diff != "" {
		s.Failf("players changed", "diff (-before +after):\n%s", diff)
	}
}

func (s *GameServiceTestSuite) TestAdvanceRound_RotatesChooserAndEndsGame() {
	t := s.play(2, 0, "Flamengo", nil)

	s.guess(t, 1, "Flamengo")

	_, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{RoomID: t.roomID, SessionToken: t.session(1)})
	s.ErrorIs(err, ErrNotHost)

	output, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.False(output.GameOver)
	s.Equal(models.RoomStatusChoosing, output.Room.Status)
	s.Equal(2, output.Room.CurrentRound)
	s.Equal(t.players[1].ID, output.Chooser.ID)
	s.Empty(output.Room.RevealedAnswer)

	_, err = s.gameService.ChooseAnswer(s.ctx, &ChooseAnswerInput{
		RoomID: t.roomID, SessionToken: t.session(1), Answer: "Santos",
	})
	s.Require().NoError(err)

	// Counters are refilled for the new round
	s.Equal(DefaultMaxGuesses, s.storedPlayers(t)[0].GuessesLeft)

	s.guess(t, 0, "Santos")

	// MaxRounds(1) * 2 players rounds have been played
	output, err = s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.True(output.GameOver)
	s.Equal(models.RoomStatusGameOver, output.Room.Status)
	s.Equal("Santos", output.Room.RevealedAnswer)

	standings, err := s.gameService.GetStandings(s.ctx, &GetStandingsInput{RoomID: t.roomID})
	s.Require().NoError(err)
	s.Require().Len(standings.Standings, 2)
	s.Equal(1, standings.Standings[0].Rank)
	s.Equal(1, standings.Standings[1].Rank)
	s.Equal("Ana", standings.Standings[0].Name)
	s.Equal(CorrectGuessPoints, standings.Standings[0].Score)
}

func (s *GameServiceTestSuite) TestEndGame() {
	t := s.play(3, 0, "Flamengo", nil)

	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{RoomID: t.roomID, SessionToken: t.session(1)})
	s.ErrorIs(err, ErrNotHost)

	output, err := s.gameService.EndGame(s.ctx, &EndGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusGameOver, output.Room.Status)
	s.Equal("Flamengo", output.Room.RevealedAnswer)
	s.Equal(models.RoundOutcomeAbandoned, output.Room.LastOutcome)

	_, err = s.gameService.EndGame(s.ctx, &EndGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.ErrorIs(err, ErrWrongPhase)
}

func (s *GameServiceTestSuite) TestRestartGame() {
	t := s.play(2, 0, "Flamengo", nil)
	s.guess(t, 1, "Flamengo")

	_, err := s.gameService.RestartGame(s.ctx, &RestartGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.ErrorIs(err, ErrWrongPhase)

	_, err = s.gameService.EndGame(s.ctx, &EndGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)

	output, err := s.gameService.RestartGame(s.ctx, &RestartGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusWaiting, output.Room.Status)
	s.Equal(0, output.Room.CurrentRound)
	s.Equal(2, output.Room.GameNumber)
	s.Equal(t.code, output.Room.Code)
	s.Empty(output.Room.RevealedAnswer)

	players := s.storedPlayers(t)
	s.Require().Len(players, 2)
	for i, p := range players {
		s.Equal(t.players[i].ID, p.ID)
		s.Equal(t.players[i].Order, p.Order)
		s.Equal(0, p.Score)
		s.Equal(DefaultMaxGuesses, p.GuessesLeft)
	}

	// Old rounds do not leak into the new game
	s.mockPicker.EXPECT().Intn(2).Return(0)
	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.Empty(s.snapshot(t, t.session(0)).Entries)
}

func (s *GameServiceTestSuite) TestKickPlayer_TurnHolderAdvancesTurn() {
	t := s.play(4, 0, "Flamengo", nil)
	s.Equal(t.players[1].ID, s.turnHolder(t).ID)

	output, err := s.gameService.KickPlayer(s.ctx, &KickPlayerInput{
		RoomID: t.roomID, SessionToken: t.session(0), PlayerID: t.players[1].ID,
	})
	s.Require().NoError(err)
	s.Equal(t.players[1].ID, output.Removed.ID)

	players := s.storedPlayers(t)
	s.Require().Len(players, 3)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)
	s.Equal(models.RoomStatusPlaying, s.storedRoom(t).Status)
	s.assertTurnInvariant(t)

	_, err = s.playerRepo.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: t.players[1].ID})
	s.ErrorIs(err, playerRepo.ErrPlayerNotFound)
}

func (s *GameServiceTestSuite) TestKickPlayer_Guards() {
	t := s.seat(3, nil)

	_, err := s.gameService.KickPlayer(s.ctx, &KickPlayerInput{
		RoomID: t.roomID, SessionToken: t.session(1), PlayerID: t.players[2].ID,
	})
	s.ErrorIs(err, ErrNotHost)

	_, err = s.gameService.KickPlayer(s.ctx, &KickPlayerInput{
		RoomID: t.roomID, SessionToken: t.session(0), PlayerID: t.players[0].ID,
	})
	s.ErrorIs(err, ErrCannotKickSelf)

	_, err = s.gameService.KickPlayer(s.ctx, &KickPlayerInput{
		RoomID: t.roomID, SessionToken: t.session(0), PlayerID: "ghost",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *GameServiceTestSuite) TestKickPlayer_ChooserAbandonsRound() {
	t := s.play(4, 1, "Flamengo", nil)

	_, err := s.gameService.KickPlayer(s.ctx, &KickPlayerInput{
		RoomID: t.roomID, SessionToken: t.session(0), PlayerID: t.players[1].ID,
	})
	s.Require().NoError(err)

	room := s.storedRoom(t)
	s.Equal(models.RoomStatusRoundEnd, room.Status)
	s.Equal(models.RoundOutcomeAbandoned, room.LastOutcome)
	for _, p := range s.storedPlayers(t) {
		s.Equal(0, p.Score)
	}

	// Caio followed the removed chooser and picks next
	output, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.Equal(t.players[2].ID, output.Chooser.ID)
}

func (s *GameServiceTestSuite) TestKickPlayer_DownToOneEndsGame() {
	t := s.play(2, 0, "Flamengo", nil)

	_, err := s.gameService.KickPlayer(s.ctx, &KickPlayerInput{
		RoomID: t.roomID, SessionToken: t.session(0), PlayerID: t.players[1].ID,
	})
	s.Require().NoError(err)

	room := s.storedRoom(t)
	s.Equal(models.RoomStatusGameOver, room.Status)
	s.Equal("Flamengo", room.RevealedAnswer)
}

func (s *GameServiceTestSuite) TestLeavePlayer_HostHandsOver() {
	t := s.seat(3, nil)

	output, err := s.gameService.LeavePlayer(s.ctx, &LeavePlayerInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.False(output.RoomDeleted)

	room := s.storedRoom(t)
	s.Equal(t.session(1), room.HostID)
	players := s.storedPlayers(t)
	s.Require().Len(players, 2)
	s.True(players[0].IsHost)
	s.Equal(t.players[1].ID, players[0].ID)

	// The new host can start
	s.mockPicker.EXPECT().Intn(2).Return(0)
	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{RoomID: t.roomID, SessionToken: t.session(1)})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestLeavePlayer_LastOneDeletesRoom() {
	t := s.seat(1, nil)

	output, err := s.gameService.LeavePlayer(s.ctx, &LeavePlayerInput{RoomID: t.roomID, SessionToken: t.session(0)})
	s.Require().NoError(err)
	s.True(output.RoomDeleted)
	s.Nil(output.Room)

	_, err = s.roomRepo.GetRoom(s.ctx, &roomRepo.GetRoomInput{RoomID: t.roomID})
	s.ErrorIs(err, roomRepo.ErrRoomNotFound)

	_, err = s.gameService.GetRoomByCode(s.ctx, &GetRoomByCodeInput{Code: t.code})
	s.ErrorIs(err, ErrRoomNotFound)

	s.mu.Lock()
	defer s.mu.Unlock()
	last := s.published[len(s.published)-1]
	s.True(last.Deleted)
}

func (s *GameServiceTestSuite) TestEvictPlayer() {
	t := s.play(3, 0, "Flamengo", nil)

	output, err := s.gameService.EvictPlayer(s.ctx, &EvictPlayerInput{RoomID: t.roomID, PlayerID: t.players[1].ID})
	s.Require().NoError(err)
	s.Equal(t.players[1].ID, output.Removed.ID)
	s.Equal(t.players[2].ID, s.turnHolder(t).ID)

	_, err = s.gameService.EvictPlayer(s.ctx, &EvictPlayerInput{RoomID: t.roomID, PlayerID: t.players[2].ID})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusGameOver, s.storedRoom(t).Status)

	_, err = s.gameService.EvictPlayer(s.ctx, &EvictPlayerInput{RoomID: t.roomID, PlayerID: t.players[0].ID})
	s.ErrorIs(err, ErrLastPlayer)
}

func (s *GameServiceTestSuite) TestEvictPlayer_OnlyMidRound() {
	t := s.seat(3, nil)

	_, err := s.gameService.EvictPlayer(s.ctx, &EvictPlayerInput{RoomID: t.roomID, PlayerID: t.players[1].ID})
	s.ErrorIs(err, ErrWrongPhase)
}

func (s *GameServiceTestSuite) TestGetRoom_MasksAnswer() {
	t := s.play(3, 0, "Flamengo", nil)

	chooserView := s.snapshot(t, t.session(0))
	s.Equal("Flamengo", chooserView.Room.ConcealedAnswer)
	s.Equal(t.players[0].ID, chooserView.Viewer.ID)

	guesserView := s.snapshot(t, t.session(1))
	s.Empty(guesserView.Room.ConcealedAnswer)

	strangerView := s.snapshot(t, "")
	s.Empty(strangerView.Room.ConcealedAnswer)
	s.Nil(strangerView.Viewer)
	s.Len(strangerView.Players, 3)

	byCode, err := s.gameService.GetRoomByCode(s.ctx, &GetRoomByCodeInput{Code: strings.ToLower(t.code)})
	s.Require().NoError(err)
	s.Equal(t.roomID, byCode.Room.ID)
	s.Empty(byCode.Room.ConcealedAnswer)

	// Masking never touches the stored room
	s.Equal("Flamengo", s.storedRoom(t).ConcealedAnswer)
}

func (s *GameServiceTestSuite) TestEventsPublishedAfterMutation() {
	t := s.play(3, 0, "Flamengo", nil)

	s.mu.Lock()
	s.published = nil
	s.mu.Unlock()

	_, err := s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
		RoomID: t.roomID, SessionToken: t.session(1), Text: "Is it from Rio?",
	})
	s.Require().NoError(err)

	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := map[events.Kind]*events.Event{}
	for _, e := range s.published {
		kinds[e.Kind] = e
	}
	s.Contains(kinds, events.PlayersChanged)
	s.Contains(kinds, events.EntriesChanged)
	s.NotContains(kinds, events.RoomChanged)
	s.Equal(t.players[1].ID, kinds[events.EntriesChanged].TurnPlayerID)
	s.Equal("playing", kinds[events.EntriesChanged].Status)
	s.Len(kinds[events.PlayersChanged].PlayerIDs, 3)
}

func (s *GameServiceTestSuite) TestRoomBusy() {
	mockLocker := lockerMocks.NewMockLocker(s.mockCtrl)
	svc := s.newService(s.roomRepo, mockLocker)

	mockLocker.EXPECT().Acquire(gomock.Any(), "room-1").Return(nil, locker.ErrLockTimeout)

	_, err := svc.PassTurn(s.ctx, &PassTurnInput{RoomID: "room-1", SessionToken: sessions[0]})
	s.ErrorIs(err, ErrRoomBusy)
	s.ErrorIs(err, ErrIllegalAction)
}

func (s *GameServiceTestSuite) TestStorageFailure() {
	mockRooms := roomMocks.NewMockRepository(s.mockCtrl)
	svc := s.newService(mockRooms, locker.NewMemory(nil))

	boom := errors.New("connection reset")
	mockRooms.EXPECT().GetRoom(gomock.Any(), &roomRepo.GetRoomInput{RoomID: "room-1"}).Return(nil, boom)

	_, err := svc.PassTurn(s.ctx, &PassTurnInput{RoomID: "room-1", SessionToken: sessions[0]})
	s.ErrorIs(err, ErrStorage)
	s.ErrorIs(err, boom)

	var storageErr *StorageError
	s.Require().ErrorAs(err, &storageErr)
	s.Equal("load room", storageErr.Op)
}

func (s *GameServiceTestSuite) TestInvariantsAcrossFullGame() {
	t := s.play(4, 3, "Corinthians", &CreateRoomInput{MaxGuesses: 2, MaxQuestions: 2, MaxRounds: 1})

	script := []struct {
		action string
		text   string
	}{
		{"ask", "Is it from Sao Paulo?"},
		{"answer", models.AnswerYes},
		{"guess", "Palmeiras"},
		{"pass", ""},
		{"ask", "Black and white?"},
		{"answer", models.AnswerYes},
		{"guess", "Santos"},
		{"guess", "Sao Paulo"},
		{"guess", "corinthians"},
	}

	var pending string
	for _, step := range script {
		holder := s.turnHolder(t)
		holderSession := holder.SessionToken
		switch step.action {
		case "ask":
			output, err := s.gameService.AskQuestion(s.ctx, &AskQuestionInput{
				RoomID: t.roomID, SessionToken: holderSession, Text: step.text,
			})
			s.Require().NoError(err)
			pending = output.Entry.ID
		case "answer":
			_, err := s.gameService.AnswerQuestion(s.ctx, &AnswerQuestionInput{
				RoomID: t.roomID, SessionToken: t.session(3), EntryID: pending, Answer: step.text,
			})
			s.Require().NoError(err)
		case "guess":
			_, err := s.gameService.SubmitGuess(s.ctx, &SubmitGuessInput{
				RoomID: t.roomID, SessionToken: holderSession, Text: step.text,
			})
			s.Require().NoError(err)
		case "pass":
			_, err := s.gameService.PassTurn(s.ctx, &PassTurnInput{
				RoomID: t.roomID, SessionToken: holderSession,
			})
			s.Require().NoError(err)
		}
		s.assertTurnInvariant(t)
	}

	room := s.storedRoom(t)
	s.Equal(models.RoomStatusRoundEnd, room.Status)
	s.Equal(models.RoundOutcomeGuessed, room.LastOutcome)

	snap := s.snapshot(t, t.session(0))
	s.Len(snap.Entries, 7)
}
