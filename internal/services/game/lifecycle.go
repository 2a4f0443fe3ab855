package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/stumped/internal/common/roomcode"
	"github.com/KirkDiggler/stumped/internal/models"
	playerRepo "github.com/KirkDiggler/stumped/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/stumped/internal/repositories/room"
)

// validateSettings applies defaults to zero values and checks ranges
func validateSettings(input *CreateRoomInput) (guesses, questions, rounds int, err error) {
	guesses, questions, rounds = input.MaxGuesses, input.MaxQuestions, input.MaxRounds
	if guesses == 0 {
		guesses = DefaultMaxGuesses
	}
	if questions == 0 {
		questions = DefaultMaxQuestions
	}
	if rounds == 0 {
		rounds = DefaultMaxRounds
	}

	if guesses < MinMaxGuesses || guesses > MaxMaxGuesses {
		return 0, 0, 0, fmt.Errorf("%w: max guesses must be %d-%d", ErrInvalidRoomConfig, MinMaxGuesses, MaxMaxGuesses)
	}
	if questions < MinMaxQuestions || questions > MaxMaxQuestions {
		return 0, 0, 0, fmt.Errorf("%w: max questions must be %d-%d", ErrInvalidRoomConfig, MinMaxQuestions, MaxMaxQuestions)
	}
	if rounds < MinMaxRounds || rounds > MaxMaxRounds {
		return 0, 0, 0, fmt.Errorf("%w: max rounds must be %d-%d", ErrInvalidRoomConfig, MinMaxRounds, MaxMaxRounds)
	}

	return guesses, questions, rounds, nil
}

// CreateRoom opens a room and seats the creating session as host
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionToken == "" {
		return nil, ErrMissingSession
	}

	name, err := normalizeName(input.HostName)
	if err != nil {
		return nil, err
	}

	guesses, questions, rounds, err := validateSettings(input)
	if err != nil {
		return nil, err
	}

	roomID := s.uuid.NewUUID()
	code, err := s.reserveCode(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	host := &models.Player{
		ID:            s.uuid.NewUUID(),
		RoomID:        roomID,
		Name:          name,
		SessionToken:  input.SessionToken,
		IsHost:        true,
		Order:         0,
		GuessesLeft:   guesses,
		QuestionsLeft: questions,
		JoinedAt:      now,
	}

	room := &models.Room{
		ID:           roomID,
		Code:         code,
		ChannelID:    input.ChannelID,
		Status:       models.RoomStatusWaiting,
		HostID:       input.SessionToken,
		MaxGuesses:   guesses,
		MaxQuestions: questions,
		MaxRounds:    rounds,
		GameNumber:   1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: host,
	}); err != nil {
		s.abandonRoom(ctx, room, nil)
		return nil, storageError("save player", err)
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: room,
	}); err != nil {
		s.abandonRoom(ctx, room, host)
		return nil, storageError("save room", err)
	}

	if room.ChannelID != "" {
		if err := s.roomRepo.ClaimChannel(ctx, &roomRepo.ClaimChannelInput{
			ChannelID: room.ChannelID,
			RoomID:    room.ID,
		}); err != nil {
			return nil, storageError("claim channel", err)
		}
	}

	s.notify(ctx, &roomState{room: room, players: []*models.Player{host}}, changes{room: true, players: true})

	s.logger.Info().
		Str("room_id", room.ID).
		Str("code", room.Code).
		Str("player_id", host.ID).
		Msg("room created")

	return &CreateRoomOutput{
		Room:   room,
		Player: host,
	}, nil
}

// abandonRoom undoes the writes of a room creation that failed part way so
// its code can be drawn again. Cleanup failures are only logged.
func (s *service) abandonRoom(ctx context.Context, room *models.Room, host *models.Player) {
	if host != nil {
		if err := s.playerRepo.DeletePlayer(ctx, &playerRepo.DeletePlayerInput{
			PlayerID: host.ID,
		}); err != nil {
			s.logger.Warn().Err(err).Str("room_id", room.ID).Msg("failed to remove host of abandoned room")
		}
	}

	if err := s.roomRepo.ReleaseCode(ctx, &roomRepo.ReleaseCodeInput{
		Code:   room.Code,
		RoomID: room.ID,
	}); err != nil {
		s.logger.Warn().Err(err).Str("code", room.Code).Msg("failed to release room code")
	}
}

// reserveCode draws join codes until one is free
func (s *service) reserveCode(ctx context.Context, roomID string) (string, error) {
	for attempt := 0; attempt < s.codeAttempts; attempt++ {
		code := roomcode.Normalize(s.codeGenerator.Generate())

		err := s.roomRepo.ReserveCode(ctx, &roomRepo.ReserveCodeInput{
			Code:   code,
			RoomID: roomID,
		})
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, roomRepo.ErrCodeTaken) {
			return "", storageError("reserve code", err)
		}

		s.logger.Debug().Str("code", code).Int("attempt", attempt+1).Msg("room code collision")
	}

	return "", ErrNoCodeAvailable
}

// JoinRoom seats a session in a waiting room. A session already seated gets
// its existing player back in any phase.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionToken == "" {
		return nil, ErrMissingSession
	}

	code := roomcode.Normalize(input.Code)
	if code == "" {
		return nil, ErrRoomNotFound
	}

	found, err := s.roomRepo.GetRoomByCode(ctx, &roomRepo.GetRoomByCodeInput{
		Code: code,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, storageError("find room by code", err)
	}

	var (
		player        *models.Player
		alreadyJoined bool
	)
	st, err := s.mutate(ctx, found.ID, "join_room", func(st *roomState) (changes, error) {
		if existing := st.playerBySession(input.SessionToken); existing != nil {
			player = existing
			alreadyJoined = true
			return changes{}, nil
		}

		name, err := normalizeName(input.Name)
		if err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsWaiting() {
			return changes{}, ErrWrongPhase
		}

		if len(st.players) >= models.MaxPlayersPerRoom {
			return changes{}, ErrRoomFull
		}

		player = &models.Player{
			ID:            s.uuid.NewUUID(),
			RoomID:        st.room.ID,
			Name:          name,
			SessionToken:  input.SessionToken,
			Order:         st.nextOrder(),
			GuessesLeft:   st.room.MaxGuesses,
			QuestionsLeft: st.room.MaxQuestions,
			JoinedAt:      s.clock.Now(),
		}
		st.players = append(st.players, player)

		return changes{players: true}, nil
	})
	if err != nil {
		return nil, err
	}

	if !alreadyJoined {
		s.logger.Info().
			Str("room_id", st.room.ID).
			Str("player_id", player.ID).
			Msg("player joined")
	}

	return &JoinRoomOutput{
		Room:          st.room,
		Player:        player,
		AlreadyJoined: alreadyJoined,
	}, nil
}

// remove takes target out of the room and reports what must be written
func (s *service) remove(st *roomState, target *models.Player, reason RemovalReason) changes {
	st.removePlayer(target)

	s.logger.Info().
		Str("room_id", st.room.ID).
		Str("player_id", target.ID).
		Str("reason", string(reason)).
		Str("status", st.room.Status.String()).
		Msg("player removed")

	return changes{
		room:    true,
		players: true,
		removed: []*models.Player{target},
		deleted: len(st.players) == 0,
	}
}

// KickPlayer lets the host remove someone else in any phase
func (s *service) KickPlayer(ctx context.Context, input *KickPlayerInput) (*KickPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var removed *models.Player
	st, err := s.mutate(ctx, input.RoomID, "kick_player", func(st *roomState) (changes, error) {
		if _, err := s.actor(st, input.SessionToken); err != nil {
			return changes{}, err
		}

		if !st.isHost(input.SessionToken) {
			return changes{}, ErrNotHost
		}

		target := st.playerByID(input.PlayerID)
		if target == nil {
			return changes{}, ErrPlayerNotFound
		}

		if target.SessionToken == input.SessionToken {
			return changes{}, ErrCannotKickSelf
		}

		removed = target
		return s.remove(st, target, RemovalKicked), nil
	})
	if err != nil {
		return nil, err
	}

	return &KickPlayerOutput{
		Removed: removed,
		Room:    st.room,
	}, nil
}

// LeavePlayer removes the calling session. The last one out deletes the room.
func (s *service) LeavePlayer(ctx context.Context, input *LeavePlayerInput) (*LeavePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var (
		removed *models.Player
		deleted bool
	)
	st, err := s.mutate(ctx, input.RoomID, "leave_player", func(st *roomState) (changes, error) {
		player, err := s.actor(st, input.SessionToken)
		if err != nil {
			return changes{}, err
		}

		removed = player
		c := s.remove(st, player, RemovalLeft)
		deleted = c.deleted
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	output := &LeavePlayerOutput{
		Removed:     removed,
		RoomDeleted: deleted,
	}
	if !deleted {
		output.Room = st.room
	}

	return output, nil
}

// EvictPlayer removes a player that stopped responding mid-round
func (s *service) EvictPlayer(ctx context.Context, input *EvictPlayerInput) (*EvictPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var removed *models.Player
	st, err := s.mutate(ctx, input.RoomID, "evict_player", func(st *roomState) (changes, error) {
		target := st.playerByID(input.PlayerID)
		if target == nil {
			return changes{}, ErrPlayerNotFound
		}

		if len(st.players) <= 1 {
			return changes{}, ErrLastPlayer
		}

		if !st.room.Status.InRound() {
			return changes{}, ErrWrongPhase
		}

		removed = target
		return s.remove(st, target, RemovalIdle), nil
	})
	if err != nil {
		return nil, err
	}

	return &EvictPlayerOutput{
		Removed: removed,
		Room:    st.room,
	}, nil
}

// RestartGame returns a finished room to the lobby. Seats, order and the
// join code are kept; scores and counters start over.
func (s *service) RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	st, err := s.mutate(ctx, input.RoomID, "restart_game", func(st *roomState) (changes, error) {
		if _, err := s.actor(st, input.SessionToken); err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsGameOver() {
			return changes{}, ErrWrongPhase
		}

		if !st.isHost(input.SessionToken) {
			return changes{}, ErrNotHost
		}

		room := st.room
		room.Status = models.RoomStatusWaiting
		room.GameNumber++
		room.CurrentRound = 0
		room.CurrentChooserIndex = 0
		room.CurrentTurnIndex = 0
		room.ConcealedAnswer = ""
		room.RevealedAnswer = ""
		room.LastOutcome = ""
		room.LastWinnerID = ""

		for _, player := range st.players {
			player.Score = 0
		}
		st.resetCounters()

		return changes{room: true, players: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room_id", st.room.ID).
		Int("game", st.room.GameNumber).
		Msg("game restarted")

	return &RestartGameOutput{
		Room:    st.room,
		Players: st.players,
	}, nil
}
