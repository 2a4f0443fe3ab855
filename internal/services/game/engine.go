package game

import (
	"github.com/KirkDiggler/stumped/internal/models"
)

// roomState is a room and its players, ordered by Order, loaded under the lock
type roomState struct {
	room    *models.Room
	players []*models.Player
}

func (st *roomState) validIndex(i int) bool {
	return i >= 0 && i < len(st.players)
}

func (st *roomState) chooser() *models.Player {
	if !st.validIndex(st.room.CurrentChooserIndex) {
		return nil
	}
	return st.players[st.room.CurrentChooserIndex]
}

func (st *roomState) turnHolder() *models.Player {
	if !st.validIndex(st.room.CurrentTurnIndex) {
		return nil
	}
	return st.players[st.room.CurrentTurnIndex]
}

func (st *roomState) indexOf(playerID string) int {
	for i, player := range st.players {
		if player.ID == playerID {
			return i
		}
	}
	return -1
}

func (st *roomState) playerByID(playerID string) *models.Player {
	if i := st.indexOf(playerID); i >= 0 {
		return st.players[i]
	}
	return nil
}

func (st *roomState) playerBySession(sessionToken string) *models.Player {
	for _, player := range st.players {
		if player.SessionToken == sessionToken {
			return player
		}
	}
	return nil
}

func (st *roomState) playerIDs() []string {
	ids := make([]string, len(st.players))
	for i, player := range st.players {
		ids[i] = player.ID
	}
	return ids
}

// isHost checks host privileges; the host is tracked by session token
func (st *roomState) isHost(sessionToken string) bool {
	return sessionToken != "" && st.room.HostID == sessionToken
}

func (st *roomState) isChooser(player *models.Player) bool {
	chooser := st.chooser()
	return chooser != nil && player != nil && chooser.ID == player.ID
}

func (st *roomState) isTurnHolder(player *models.Player) bool {
	holder := st.turnHolder()
	return holder != nil && player != nil && holder.ID == player.ID
}

// nextOrder is one past the highest order ever seated in the room
func (st *roomState) nextOrder() int {
	next := 0
	for _, player := range st.players {
		if player.Order >= next {
			next = player.Order + 1
		}
	}
	return next
}

// resetCounters refills every player's rations
func (st *roomState) resetCounters() {
	for _, player := range st.players {
		player.GuessesLeft = st.room.MaxGuesses
		player.QuestionsLeft = st.room.MaxQuestions
	}
}

// firstGuesserAfter returns the first index after from that is not the
// chooser, wrapping. It returns from itself when there is nobody else.
func (st *roomState) firstGuesserAfter(from int) int {
	n := len(st.players)
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if i != st.room.CurrentChooserIndex {
			return i
		}
	}
	return from
}

// advanceTurn moves the turn to the next guesser after the holder who still
// has guesses, wrapping. Guessers out of questions but holding guesses keep
// their turns. With nobody eligible the turn stays put.
func (st *roomState) advanceTurn() {
	n := len(st.players)
	if n == 0 {
		return
	}

	from := st.room.CurrentTurnIndex
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if i == st.room.CurrentChooserIndex {
			continue
		}
		if st.players[i].GuessesLeft > 0 {
			st.room.CurrentTurnIndex = i
			return
		}
	}
}

// guessersExhausted reports whether no guesser has a guess left
func (st *roomState) guessersExhausted() bool {
	for i, player := range st.players {
		if i == st.room.CurrentChooserIndex {
			continue
		}
		if player.GuessesLeft > 0 {
			return false
		}
	}
	return true
}

// endRound closes the round and reveals the answer
func (st *roomState) endRound(outcome models.RoundOutcome, winnerID string) {
	st.room.Status = models.RoomStatusRoundEnd
	st.room.RevealedAnswer = st.room.ConcealedAnswer
	st.room.ConcealedAnswer = ""
	st.room.LastOutcome = outcome
	st.room.LastWinnerID = winnerID
}

// checkStumped ends the round with the stump bonus when every guesser is out.
// It returns true if the round ended.
func (st *roomState) checkStumped() bool {
	if !st.room.Status.IsPlaying() || !st.guessersExhausted() {
		return false
	}

	if chooser := st.chooser(); chooser != nil {
		chooser.Score += StumpBonusPoints
	}
	st.endRound(models.RoundOutcomeStumped, "")
	return true
}

// finishGame moves the room to game over, revealing any concealed answer
func (st *roomState) finishGame() {
	if st.room.ConcealedAnswer != "" {
		st.room.RevealedAnswer = st.room.ConcealedAnswer
		st.room.ConcealedAnswer = ""
	}
	st.room.Status = models.RoomStatusGameOver
}

// removePlayer takes a player out of the rotation and repairs the room so
// every index stays valid and the round rules keep holding.
func (st *roomState) removePlayer(target *models.Player) {
	removedAt := st.indexOf(target.ID)
	if removedAt < 0 {
		return
	}

	room := st.room
	wasChooser := removedAt == room.CurrentChooserIndex
	wasTurnHolder := room.Status.IsPlaying() && removedAt == room.CurrentTurnIndex

	// Pick the successor turn holder while the old positions still hold
	var nextHolderID string
	if wasTurnHolder && !wasChooser {
		guesses := target.GuessesLeft
		target.GuessesLeft = 0
		st.advanceTurn()
		target.GuessesLeft = guesses
		if holder := st.turnHolder(); holder != nil && holder.ID != target.ID {
			nextHolderID = holder.ID
		}
	} else if holder := st.turnHolder(); holder != nil {
		nextHolderID = holder.ID
	}

	var chooserID string
	if chooser := st.chooser(); chooser != nil && !wasChooser {
		chooserID = chooser.ID
	}

	st.players = append(st.players[:removedAt:removedAt], st.players[removedAt+1:]...)

	if target.IsHost && len(st.players) > 0 {
		// Lowest order inherits the host seat
		heir := st.players[0]
		heir.IsHost = true
		room.HostID = heir.SessionToken
	}

	n := len(st.players)
	if n == 0 {
		room.CurrentChooserIndex = 0
		room.CurrentTurnIndex = 0
		return
	}

	if wasChooser {
		// The player who followed the chooser now sits at removedAt; park the
		// index one before so the next rotation lands on them.
		room.CurrentChooserIndex = (removedAt - 1 + n) % n
		if room.Status.InRound() {
			st.endRound(models.RoundOutcomeAbandoned, "")
		}
	} else if i := st.indexOf(chooserID); i >= 0 {
		room.CurrentChooserIndex = i
	} else {
		room.CurrentChooserIndex = 0
	}

	if i := st.indexOf(nextHolderID); i >= 0 && i != room.CurrentChooserIndex {
		room.CurrentTurnIndex = i
	} else {
		room.CurrentTurnIndex = st.firstGuesserAfter(room.CurrentChooserIndex)
	}

	if n < 2 && (room.Status.InRound() || room.Status.IsRoundEnd()) {
		st.finishGame()
		return
	}

	st.checkStumped()
}
