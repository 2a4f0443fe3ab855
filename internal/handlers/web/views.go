package web

import (
	"time"

	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/repositories/results"
	"github.com/KirkDiggler/stumped/internal/services/game"
)

// The wire views never carry session tokens; the host is named by player id.

type roomView struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Status         string `json:"status"`
	HostPlayerID   string `json:"hostPlayerId,omitempty"`
	MaxGuesses     int    `json:"maxGuesses"`
	MaxQuestions   int    `json:"maxQuestions"`
	MaxRounds      int    `json:"maxRounds"`
	GameNumber     int    `json:"gameNumber"`
	CurrentRound   int    `json:"currentRound"`
	ChooserID      string `json:"chooserId,omitempty"`
	TurnPlayerID   string `json:"turnPlayerId,omitempty"`
	Answer         string `json:"answer,omitempty"`
	RevealedAnswer string `json:"revealedAnswer,omitempty"`
	LastOutcome    string `json:"lastOutcome,omitempty"`
	LastWinnerID   string `json:"lastWinnerId,omitempty"`
}

type playerView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsHost        bool   `json:"isHost"`
	Order         int    `json:"order"`
	Score         int    `json:"score"`
	GuessesLeft   int    `json:"guessesLeft"`
	QuestionsLeft int    `json:"questionsLeft"`
}

type entryView struct {
	ID         string     `json:"id"`
	AuthorID   string     `json:"authorId"`
	Text       string     `json:"text"`
	IsGuess    bool       `json:"isGuess"`
	Answer     *string    `json:"answer,omitempty"`
	IsCorrect  *bool      `json:"isCorrect,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
}

type snapshotView struct {
	Room     roomView     `json:"room"`
	Players  []playerView `json:"players"`
	Entries  []entryView  `json:"entries"`
	PlayerID string       `json:"playerId,omitempty"`
}

type standingView struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

type resultView struct {
	GameNumber int       `json:"gameNumber"`
	PlayerID   string    `json:"playerId"`
	Name       string    `json:"name"`
	Rank       int       `json:"rank"`
	Score      int       `json:"score"`
	FinishedAt time.Time `json:"finishedAt"`
}

func newSnapshotView(snapshot *game.RoomSnapshot) snapshotView {
	room := snapshot.Room
	view := snapshotView{
		Room: roomView{
			ID:             room.ID,
			Code:           room.Code,
			Status:         room.Status.String(),
			MaxGuesses:     room.MaxGuesses,
			MaxQuestions:   room.MaxQuestions,
			MaxRounds:      room.MaxRounds,
			GameNumber:     room.GameNumber,
			CurrentRound:   room.CurrentRound,
			Answer:         room.ConcealedAnswer,
			RevealedAnswer: room.RevealedAnswer,
			LastOutcome:    string(room.LastOutcome),
			LastWinnerID:   room.LastWinnerID,
		},
		Players: make([]playerView, len(snapshot.Players)),
		Entries: make([]entryView, len(snapshot.Entries)),
	}

	for i, player := range snapshot.Players {
		view.Players[i] = newPlayerView(player)
		if player.IsHost {
			view.Room.HostPlayerID = player.ID
		}
	}

	if room.CurrentRound > 0 && (room.Status.InRound() || room.Status.IsRoundEnd()) {
		if i := room.CurrentChooserIndex; i >= 0 && i < len(snapshot.Players) {
			view.Room.ChooserID = snapshot.Players[i].ID
		}
	}
	if room.Status.IsPlaying() {
		if i := room.CurrentTurnIndex; i >= 0 && i < len(snapshot.Players) {
			view.Room.TurnPlayerID = snapshot.Players[i].ID
		}
	}

	for i, entry := range snapshot.Entries {
		view.Entries[i] = newEntryView(entry)
	}

	if snapshot.Viewer != nil {
		view.PlayerID = snapshot.Viewer.ID
	}

	return view
}

func newPlayerView(player *models.Player) playerView {
	return playerView{
		ID:            player.ID,
		Name:          player.Name,
		IsHost:        player.IsHost,
		Order:         player.Order,
		Score:         player.Score,
		GuessesLeft:   player.GuessesLeft,
		QuestionsLeft: player.QuestionsLeft,
	}
}

func newEntryView(entry *models.Entry) entryView {
	return entryView{
		ID:         entry.ID,
		AuthorID:   entry.AuthorPlayerID,
		Text:       entry.Text,
		IsGuess:    entry.IsGuess,
		Answer:     entry.Answer,
		IsCorrect:  entry.IsCorrect,
		CreatedAt:  entry.CreatedAt,
		AnsweredAt: entry.AnsweredAt,
	}
}

func newStandingViews(standings []game.Standing) []standingView {
	views := make([]standingView, len(standings))
	for i, s := range standings {
		views[i] = standingView{
			Rank:     s.Rank,
			PlayerID: s.PlayerID,
			Name:     s.Name,
			Score:    s.Score,
		}
	}
	return views
}

func newResultViews(rows []*results.Result) []resultView {
	views := make([]resultView, len(rows))
	for i, r := range rows {
		views[i] = resultView{
			GameNumber: r.GameNumber,
			PlayerID:   r.PlayerID,
			Name:       r.PlayerName,
			Rank:       r.Rank,
			Score:      r.Score,
			FinishedAt: r.FinishedAt,
		}
	}
	return views
}
