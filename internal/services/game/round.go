package game

import (
	"context"
	"errors"

	"github.com/KirkDiggler/stumped/internal/match"
	"github.com/KirkDiggler/stumped/internal/models"
	exchangeRepo "github.com/KirkDiggler/stumped/internal/repositories/exchange"
)

// StartGame picks a random chooser and opens round one
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var chooser *models.Player
	st, err := s.mutate(ctx, input.RoomID, "start_game", func(st *roomState) (changes, error) {
		if _, err := s.actor(st, input.SessionToken); err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsWaiting() {
			return changes{}, ErrWrongPhase
		}

		if !st.isHost(input.SessionToken) {
			return changes{}, ErrNotHost
		}

		if len(st.players) < 2 {
			return changes{}, ErrNotEnoughPlayers
		}

		room := st.room
		room.Status = models.RoomStatusChoosing
		room.CurrentRound = 1
		room.CurrentChooserIndex = s.picker.Intn(len(st.players))
		room.CurrentTurnIndex = st.firstGuesserAfter(room.CurrentChooserIndex)
		room.ConcealedAnswer = ""
		room.RevealedAnswer = ""
		room.LastOutcome = ""
		room.LastWinnerID = ""
		st.resetCounters()

		chooser = st.chooser()

		return changes{room: true, players: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room_id", st.room.ID).
		Str("chooser_id", chooser.ID).
		Msg("game started")

	return &StartGameOutput{
		Room:    st.room,
		Chooser: chooser,
	}, nil
}

// ChooseAnswer conceals the answer and opens play
func (s *service) ChooseAnswer(ctx context.Context, input *ChooseAnswerInput) (*ChooseAnswerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	answer, err := normalizeText(input.Answer)
	if err != nil {
		return nil, err
	}

	st, err := s.mutate(ctx, input.RoomID, "choose_answer", func(st *roomState) (changes, error) {
		player, err := s.actor(st, input.SessionToken)
		if err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsChoosing() {
			return changes{}, ErrWrongPhase
		}

		if !st.isChooser(player) {
			return changes{}, ErrNotChooser
		}

		room := st.room
		room.ConcealedAnswer = answer
		room.RevealedAnswer = ""
		room.LastOutcome = ""
		room.LastWinnerID = ""
		room.Status = models.RoomStatusPlaying
		room.CurrentTurnIndex = st.firstGuesserAfter(room.CurrentChooserIndex)
		st.resetCounters()

		return changes{room: true, players: true}, nil
	})
	if err != nil {
		return nil, err
	}

	return &ChooseAnswerOutput{
		Room:       st.room,
		TurnPlayer: st.turnHolder(),
	}, nil
}

// AskQuestion logs an unanswered question. The turn does not move.
func (s *service) AskQuestion(ctx context.Context, input *AskQuestionInput) (*AskQuestionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	text, err := normalizeText(input.Text)
	if err != nil {
		return nil, err
	}

	var (
		entry *models.Entry
		left  int
	)
	_, err = s.mutate(ctx, input.RoomID, "ask_question", func(st *roomState) (changes, error) {
		player, err := s.actor(st, input.SessionToken)
		if err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsPlaying() {
			return changes{}, ErrWrongPhase
		}

		if !st.isTurnHolder(player) {
			return changes{}, ErrNotYourTurn
		}

		if player.QuestionsLeft <= 0 {
			return changes{}, ErrNoQuestionsLeft
		}

		player.QuestionsLeft--
		left = player.QuestionsLeft

		entry = &models.Entry{
			ID:             s.uuid.NewUUID(),
			RoomID:         st.room.ID,
			Game:           st.room.GameNumber,
			Round:          st.room.CurrentRound,
			AuthorPlayerID: player.ID,
			Text:           text,
			CreatedAt:      s.clock.Now(),
		}

		return changes{players: true, addEntry: entry}, nil
	})
	if err != nil {
		return nil, err
	}

	return &AskQuestionOutput{
		Entry:         entry,
		QuestionsLeft: left,
	}, nil
}

// AnswerQuestion records the chooser's reply. Answering the current turn
// holder's question hands the turn on; answering an older one does not.
func (s *service) AnswerQuestion(ctx context.Context, input *AnswerQuestionInput) (*AnswerQuestionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	answer, err := normalizeText(input.Answer)
	if err != nil {
		return nil, err
	}

	if input.EntryID == "" {
		return nil, ErrEntryNotFound
	}

	var (
		entry    *models.Entry
		advanced bool
	)
	st, err := s.mutate(ctx, input.RoomID, "answer_question", func(st *roomState) (changes, error) {
		player, err := s.actor(st, input.SessionToken)
		if err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsPlaying() {
			return changes{}, ErrWrongPhase
		}

		if !st.isChooser(player) {
			return changes{}, ErrNotChooser
		}

		stored, err := s.exchangeRepo.GetEntry(ctx, &exchangeRepo.GetEntryInput{
			EntryID: input.EntryID,
		})
		if err != nil {
			if errors.Is(err, exchangeRepo.ErrEntryNotFound) {
				return changes{}, ErrEntryNotFound
			}
			return changes{}, storageError("load entry", err)
		}

		// Entries from other rooms, games or rounds are invisible here
		if stored.RoomID != st.room.ID ||
			stored.Game != st.room.GameNumber ||
			stored.Round != st.room.CurrentRound {
			return changes{}, ErrEntryNotFound
		}

		if stored.IsGuess {
			return changes{}, ErrEntryIsGuess
		}

		if stored.IsAnswered() {
			return changes{}, ErrEntryAlreadyAnswered
		}

		now := s.clock.Now()
		stored.Answer = &answer
		stored.AnsweredAt = &now
		entry = stored

		c := changes{updateEntry: stored, room: true}

		// Every answer hands the turn to the next guesser with guesses left
		before := st.room.CurrentTurnIndex
		st.advanceTurn()
		advanced = st.room.CurrentTurnIndex != before
		if st.checkStumped() {
			c.players = true
		}

		return c, nil
	})
	if err != nil {
		return nil, err
	}

	return &AnswerQuestionOutput{
		Entry:        entry,
		Room:         st.room,
		TurnAdvanced: advanced,
	}, nil
}

// SubmitGuess spends a guess. A match ends the round in the guesser's favour,
// a miss hands the turn on.
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	text, err := normalizeText(input.Text)
	if err != nil {
		return nil, err
	}

	var (
		entry   *models.Entry
		correct bool
		left    int
	)
	st, err := s.mutate(ctx, input.RoomID, "submit_guess", func(st *roomState) (changes, error) {
		player, err := s.actor(st, input.SessionToken)
		if err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsPlaying() {
			return changes{}, ErrWrongPhase
		}

		if !st.isTurnHolder(player) {
			return changes{}, ErrNotYourTurn
		}

		if player.GuessesLeft <= 0 {
			return changes{}, ErrNoGuessesLeft
		}

		player.GuessesLeft--
		left = player.GuessesLeft
		correct = match.IsMatch(text, st.room.ConcealedAnswer)

		isCorrect := correct
		entry = &models.Entry{
			ID:             s.uuid.NewUUID(),
			RoomID:         st.room.ID,
			Game:           st.room.GameNumber,
			Round:          st.room.CurrentRound,
			AuthorPlayerID: player.ID,
			Text:           text,
			IsGuess:        true,
			IsCorrect:      &isCorrect,
			CreatedAt:      s.clock.Now(),
		}

		if correct {
			player.Score += CorrectGuessPoints
			st.endRound(models.RoundOutcomeGuessed, player.ID)
		} else {
			st.advanceTurn()
			st.checkStumped()
		}

		return changes{room: true, players: true, addEntry: entry}, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("room_id", st.room.ID).
		Str("player_id", entry.AuthorPlayerID).
		Bool("correct", correct).
		Msg("guess submitted")

	return &SubmitGuessOutput{
		Entry:       entry,
		Correct:     correct,
		GuessesLeft: left,
		Room:        st.room,
	}, nil
}

// PassTurn hands the turn to the next eligible guesser
func (s *service) PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	st, err := s.mutate(ctx, input.RoomID, "pass_turn", func(st *roomState) (changes, error) {
		player, err := s.actor(st, input.SessionToken)
		if err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsPlaying() {
			return changes{}, ErrWrongPhase
		}

		if !st.isTurnHolder(player) {
			return changes{}, ErrNotYourTurn
		}

		st.advanceTurn()
		if st.checkStumped() {
			return changes{room: true, players: true}, nil
		}

		return changes{room: true}, nil
	})
	if err != nil {
		return nil, err
	}

	return &PassTurnOutput{
		Room:       st.room,
		TurnPlayer: st.turnHolder(),
	}, nil
}

// AdvanceRound starts the next round with the following chooser, or ends the
// game once every player has chosen MaxRounds times.
func (s *service) AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var gameOver bool
	st, err := s.mutate(ctx, input.RoomID, "advance_round", func(st *roomState) (changes, error) {
		if _, err := s.actor(st, input.SessionToken); err != nil {
			return changes{}, err
		}

		if !st.room.Status.IsRoundEnd() {
			return changes{}, ErrWrongPhase
		}

		if !st.isHost(input.SessionToken) {
			return changes{}, ErrNotHost
		}

		room := st.room
		if room.CurrentRound >= room.MaxRounds*len(st.players) {
			st.finishGame()
			gameOver = true
			return changes{room: true}, nil
		}

		room.CurrentRound++
		room.CurrentChooserIndex = (room.CurrentChooserIndex + 1) % len(st.players)
		room.CurrentTurnIndex = st.firstGuesserAfter(room.CurrentChooserIndex)
		room.ConcealedAnswer = ""
		room.RevealedAnswer = ""
		room.LastOutcome = ""
		room.LastWinnerID = ""
		room.Status = models.RoomStatusChoosing

		return changes{room: true}, nil
	})
	if err != nil {
		return nil, err
	}

	if gameOver {
		s.logger.Info().Str("room_id", st.room.ID).Msg("game over")
	}

	var chooser *models.Player
	if !gameOver {
		chooser = st.chooser()
	}

	return &AdvanceRoundOutput{
		Room:     st.room,
		Chooser:  chooser,
		GameOver: gameOver,
	}, nil
}

// EndGame lets the host stop a game in progress
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	st, err := s.mutate(ctx, input.RoomID, "end_game", func(st *roomState) (changes, error) {
		if _, err := s.actor(st, input.SessionToken); err != nil {
			return changes{}, err
		}

		status := st.room.Status
		if !status.InRound() && !status.IsRoundEnd() {
			return changes{}, ErrWrongPhase
		}

		if !st.isHost(input.SessionToken) {
			return changes{}, ErrNotHost
		}

		if status.InRound() {
			st.room.LastOutcome = models.RoundOutcomeAbandoned
			st.room.LastWinnerID = ""
		}
		st.finishGame()

		return changes{room: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", st.room.ID).Msg("game ended by host")

	return &EndGameOutput{
		Room: st.room,
	}, nil
}
