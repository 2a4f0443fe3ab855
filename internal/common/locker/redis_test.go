package locker

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/stumped/internal/common/uuid/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisLockerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mr       *miniredis.Miniredis
	client   *redis.Client
	mockUUID *mocks.MockUUID
	locker   Locker
}

func (s *RedisLockerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.mockUUID = mocks.NewMockUUID(s.ctrl)

	l, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
		UUID:        s.mockUUID,
		TTL:         time.Second,
		Wait:        50 * time.Millisecond,
		Retry:       5 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.locker = l
}

func (s *RedisLockerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestRedisLockerTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerTestSuite))
}

func (s *RedisLockerTestSuite) TestAcquireAndRelease() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	release, err := s.locker.Acquire(context.Background(), "room-1")
	s.Require().NoError(err)

	value, err := s.mr.Get("lock:room-1")
	s.Require().NoError(err)
	s.Equal("token-1", value)
	s.True(s.mr.TTL("lock:room-1") > 0)

	release()
	s.False(s.mr.Exists("lock:room-1"))
}

func (s *RedisLockerTestSuite) TestAcquireTimesOutWhileHeld() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	release, err := s.locker.Acquire(context.Background(), "room-1")
	s.Require().NoError(err)
	defer release()

	_, err = s.locker.Acquire(context.Background(), "room-1")
	s.ErrorIs(err, ErrLockTimeout)
}

func (s *RedisLockerTestSuite) TestStaleReleaseKeepsNewHolder() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	stale, err := s.locker.Acquire(context.Background(), "room-1")
	s.Require().NoError(err)

	// First holder's TTL lapses and someone else takes the lock
	s.mr.FastForward(2 * time.Second)
	s.False(s.mr.Exists("lock:room-1"))

	fresh, err := s.locker.Acquire(context.Background(), "room-1")
	s.Require().NoError(err)

	stale()
	value, err := s.mr.Get("lock:room-1")
	s.Require().NoError(err)
	s.Equal("token-2", value)

	fresh()
	s.False(s.mr.Exists("lock:room-1"))
}
