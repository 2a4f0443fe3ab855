package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RoomStatus
		to   RoomStatus
		want bool
	}{
		{RoomStatusWaiting, RoomStatusChoosing, true},
		{RoomStatusWaiting, RoomStatusPlaying, false},
		{RoomStatusChoosing, RoomStatusPlaying, true},
		{RoomStatusPlaying, RoomStatusRoundEnd, true},
		{RoomStatusPlaying, RoomStatusChoosing, false},
		{RoomStatusRoundEnd, RoomStatusChoosing, true},
		{RoomStatusRoundEnd, RoomStatusGameOver, true},
		{RoomStatusGameOver, RoomStatusWaiting, true},
		{RoomStatusGameOver, RoomStatusChoosing, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRoomStatus_InRound(t *testing.T) {
	assert.True(t, RoomStatusChoosing.InRound())
	assert.True(t, RoomStatusPlaying.InRound())
	assert.False(t, RoomStatusWaiting.InRound())
	assert.False(t, RoomStatusRoundEnd.InRound())
	assert.False(t, RoomStatusGameOver.InRound())
}

func TestSortByOrder(t *testing.T) {
	players := []*Player{{ID: "c", Order: 2}, {ID: "a", Order: 0}, {ID: "b", Order: 1}}
	SortByOrder(players)

	assert.Equal(t, "a", players[0].ID)
	assert.Equal(t, "b", players[1].ID)
	assert.Equal(t, "c", players[2].ID)
}

func TestEntry_CloneIsDeep(t *testing.T) {
	answer := AnswerYes
	e := &Entry{ID: "e1", Answer: &answer}

	c := e.Clone()
	*c.Answer = AnswerNo

	assert.Equal(t, AnswerYes, *e.Answer)
	assert.True(t, c.IsAnswered())
}
