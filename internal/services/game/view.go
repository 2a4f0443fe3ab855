package game

import (
	"context"
	"errors"
	"sort"

	"github.com/KirkDiggler/stumped/internal/common/roomcode"
	"github.com/KirkDiggler/stumped/internal/models"
	exchangeRepo "github.com/KirkDiggler/stumped/internal/repositories/exchange"
	roomRepo "github.com/KirkDiggler/stumped/internal/repositories/room"
)

// GetRoom reads a room without taking the lock. Only the chooser sees the
// concealed answer.
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.RoomID == "" {
		return nil, ErrRoomNotFound
	}

	st, err := s.loadState(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	var viewer *models.Player
	if input.SessionToken != "" {
		viewer = st.playerBySession(input.SessionToken)
	}

	room := st.room.Clone()
	if !st.isChooser(viewer) {
		room.ConcealedAnswer = ""
	}

	entries := []*models.Entry{}
	if room.CurrentRound > 0 {
		output, err := s.exchangeRepo.GetEntriesForRound(ctx, &exchangeRepo.GetEntriesForRoundInput{
			RoomID: room.ID,
			Game:   room.GameNumber,
			Round:  room.CurrentRound,
		})
		if err != nil {
			return nil, storageError("load entries", err)
		}
		entries = output.Entries
	}

	return &GetRoomOutput{
		Snapshot: &RoomSnapshot{
			Room:    room,
			Players: st.players,
			Entries: entries,
			Viewer:  viewer,
		},
	}, nil
}

// GetRoomByCode resolves a join code; the answer is never included
func (s *service) GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*GetRoomByCodeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	code := roomcode.Normalize(input.Code)
	if code == "" {
		return nil, ErrRoomNotFound
	}

	room, err := s.roomRepo.GetRoomByCode(ctx, &roomRepo.GetRoomByCodeInput{
		Code: code,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, storageError("find room by code", err)
	}

	room.ConcealedAnswer = ""

	return &GetRoomByCodeOutput{
		Room: room,
	}, nil
}

// GetRoomByChannel finds the room a chat channel last opened
func (s *service) GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*GetRoomByChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrRoomNotFound
	}

	room, err := s.roomRepo.GetRoomByChannel(ctx, &roomRepo.GetRoomByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, storageError("find room by channel", err)
	}

	room.ConcealedAnswer = ""

	return &GetRoomByChannelOutput{
		Room: room,
	}, nil
}

// GetStandings ranks players by score, ties broken by seat order. Tied
// scores share a rank.
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.RoomID == "" {
		return nil, ErrRoomNotFound
	}

	st, err := s.loadState(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, len(st.players))
	copy(players, st.players)
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].Order < players[j].Order
	})

	standings := make([]Standing, len(players))
	for i, player := range players {
		rank := i + 1
		if i > 0 && player.Score == players[i-1].Score {
			rank = standings[i-1].Rank
		}
		standings[i] = Standing{
			Rank:     rank,
			PlayerID: player.ID,
			Name:     player.Name,
			Score:    player.Score,
		}
	}

	room := st.room.Clone()
	room.ConcealedAnswer = ""

	return &GetStandingsOutput{
		Room:      room,
		Standings: standings,
	}, nil
}
