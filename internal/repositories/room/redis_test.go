package room

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRoom(id, code string) *models.Room {
	return &models.Room{
		ID:           id,
		Code:         code,
		Status:       models.RoomStatusWaiting,
		HostID:       "host-" + id,
		MaxGuesses:   3,
		MaxQuestions: 10,
		MaxRounds:    2,
		GameNumber:   1,
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoom() {
	room := s.newRoom("room-1", "ABC123")
	room.ConcealedAnswer = "Flamengo"

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{
		Room: room,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: "room-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("room-1", retrieved.ID)
	s.Equal("ABC123", retrieved.Code)
	s.Equal(models.RoomStatusWaiting, retrieved.Status)
	s.Equal("host-room-1", retrieved.HostID)
	s.Equal(3, retrieved.MaxGuesses)
	s.Equal(10, retrieved.MaxQuestions)
	s.Equal(2, retrieved.MaxRounds)
	s.Equal("Flamengo", retrieved.ConcealedAnswer)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: "missing",
	})
	s.ErrorIs(err, ErrRoomNotFound)
	s.Nil(retrieved)
}

func (s *RedisRepositoryTestSuite) TestReserveCode() {
	err := s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   "ABC123",
		RoomID: "room-1",
	})
	s.Require().NoError(err)

	// Same code for a second room is refused
	err = s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   "ABC123",
		RoomID: "room-2",
	})
	s.ErrorIs(err, ErrCodeTaken)

	// Codes are case-insensitive
	err = s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   "abc123",
		RoomID: "room-3",
	})
	s.ErrorIs(err, ErrCodeTaken)
}

func (s *RedisRepositoryTestSuite) TestReleaseCode() {
	s.Require().NoError(s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   "ABC123",
		RoomID: "room-1",
	}))

	// Another room cannot free a code it does not hold
	s.Require().NoError(s.repo.ReleaseCode(context.Background(), &ReleaseCodeInput{
		Code:   "ABC123",
		RoomID: "room-2",
	}))
	s.True(s.mr.Exists("room_code:ABC123"))

	s.Require().NoError(s.repo.ReleaseCode(context.Background(), &ReleaseCodeInput{
		Code:   "abc123",
		RoomID: "room-1",
	}))
	s.False(s.mr.Exists("room_code:ABC123"))

	s.NoError(s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   "ABC123",
		RoomID: "room-2",
	}))
}

func (s *RedisRepositoryTestSuite) TestGetRoomByCode() {
	room := s.newRoom("room-1", "ABC123")
	s.Require().NoError(s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   room.Code,
		RoomID: room.ID,
	}))
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{
		Room: room,
	}))

	retrieved, err := s.repo.GetRoomByCode(context.Background(), &GetRoomByCodeInput{
		Code: " abc123 ",
	})
	s.Require().NoError(err)
	s.Equal("room-1", retrieved.ID)

	_, err = s.repo.GetRoomByCode(context.Background(), &GetRoomByCodeInput{
		Code: "ZZZZZZ",
	})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) claim(room *models.Room) {
	s.Require().NoError(s.repo.ClaimChannel(context.Background(), &ClaimChannelInput{
		ChannelID: room.ChannelID,
		RoomID:    room.ID,
	}))
}

func (s *RedisRepositoryTestSuite) TestGetRoomByChannel() {
	room := s.newRoom("room-1", "ABC123")
	room.ChannelID = "channel-1"
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{
		Room: room,
	}))
	s.claim(room)

	retrieved, err := s.repo.GetRoomByChannel(context.Background(), &GetRoomByChannelInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Equal("room-1", retrieved.ID)

	_, err = s.repo.GetRoomByChannel(context.Background(), &GetRoomByChannelInput{
		ChannelID: "channel-2",
	})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoomReleasesCode() {
	room := s.newRoom("room-1", "ABC123")
	room.ChannelID = "channel-1"
	room.Status = models.RoomStatusPlaying
	s.Require().NoError(s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   room.Code,
		RoomID: room.ID,
	}))
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{
		Room: room,
	}))
	s.claim(room)

	err := s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{
		RoomID: "room-1",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: "room-1",
	})
	s.ErrorIs(err, ErrRoomNotFound)

	_, err = s.repo.GetRoomByChannel(context.Background(), &GetRoomByChannelInput{
		ChannelID: "channel-1",
	})
	s.ErrorIs(err, ErrRoomNotFound)

	s.False(s.mr.Exists(activeRoomsKey))

	// The code can be reused once the room is gone
	err = s.repo.ReserveCode(context.Background(), &ReserveCodeInput{
		Code:   "ABC123",
		RoomID: "room-2",
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoomKeepsNewerChannelMapping() {
	older := s.newRoom("room-1", "ABC123")
	older.ChannelID = "channel-1"
	newer := s.newRoom("room-2", "XYZ789")
	newer.ChannelID = "channel-1"

	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: older}))
	s.claim(older)
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: newer}))
	s.claim(newer)

	// Saving the older room again does not take the channel back
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: older}))

	s.Require().NoError(s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{
		RoomID: "room-1",
	}))

	retrieved, err := s.repo.GetRoomByChannel(context.Background(), &GetRoomByChannelInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Equal("room-2", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetActiveRooms() {
	waiting := s.newRoom("room-1", "AAAAAA")
	choosing := s.newRoom("room-2", "BBBBBB")
	choosing.Status = models.RoomStatusChoosing
	playing := s.newRoom("room-3", "CCCCCC")
	playing.Status = models.RoomStatusPlaying

	for _, room := range []*models.Room{waiting, choosing, playing} {
		s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{
			Room: room,
		}))
	}

	output, err := s.repo.GetActiveRooms(context.Background(), &GetActiveRoomsInput{})
	s.Require().NoError(err)
	s.Len(output.Rooms, 2)

	ids := map[string]bool{}
	for _, room := range output.Rooms {
		ids[room.ID] = true
	}
	s.True(ids["room-2"])
	s.True(ids["room-3"])

	// Finishing a game drops the room from the active set
	playing.Status = models.RoomStatusGameOver
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{
		Room: playing,
	}))

	output, err = s.repo.GetActiveRooms(context.Background(), &GetActiveRoomsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Rooms, 1)
	s.Equal("room-2", output.Rooms[0].ID)
}
