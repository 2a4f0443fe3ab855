package results

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PostgresRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repo      *Postgres
	ctx       context.Context
	testTime  time.Time
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("stumped"),
		postgres.WithUsername("stumped"),
		postgres.WithPassword("stumped"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err)
	s.container = container

	connString, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.pool, err = pgxpool.New(s.ctx, connString)
	s.Require().NoError(err)

	s.Require().NoError(Migrate(s.ctx, s.pool))
	// Applying twice is safe
	s.Require().NoError(Migrate(s.ctx, s.pool))

	s.repo, err = NewPostgres(&Config{Pool: s.pool})
	s.Require().NoError(err)

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE game_results")
	s.Require().NoError(err)
}

func (s *PostgresRepositoryTestSuite) game(roomID string, number int) *RecordGameInput {
	return &RecordGameInput{
		RoomID:     roomID,
		GameNumber: number,
		FinishedAt: s.testTime,
		Results: []*Result{
			{PlayerID: "p2", PlayerName: "Bia", Rank: 1, Score: 8},
			{PlayerID: "p1", PlayerName: "Ana", Rank: 2, Score: 5},
			{PlayerID: "p3", PlayerName: "Caio", Rank: 2, Score: 5},
		},
	}
}

func (s *PostgresRepositoryTestSuite) TestNewPostgres_RequiresPool() {
	_, err := NewPostgres(nil)
	s.ErrorIs(err, ErrNilPool)

	_, err = NewPostgres(&Config{})
	s.ErrorIs(err, ErrNilPool)
}

func (s *PostgresRepositoryTestSuite) TestRecordAndList() {
	out, err := s.repo.RecordGame(s.ctx, s.game("room-1", 2))
	s.Require().NoError(err)
	s.True(out.Recorded)

	out, err = s.repo.RecordGame(s.ctx, s.game("room-1", 1))
	s.Require().NoError(err)
	s.True(out.Recorded)

	_, err = s.repo.RecordGame(s.ctx, s.game("room-2", 1))
	s.Require().NoError(err)

	list, err := s.repo.ListResults(s.ctx, &ListResultsInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(list.Results, 6)

	first := list.Results[0]
	s.Equal("room-1", first.RoomID)
	s.Equal(1, first.GameNumber)
	s.Equal("p2", first.PlayerID)
	s.Equal(1, first.Rank)
	s.Equal(8, first.Score)
	s.True(s.testTime.Equal(first.FinishedAt))

	// Ties share a rank and fall back to name order
	s.Equal("Ana", list.Results[1].PlayerName)
	s.Equal("Caio", list.Results[2].PlayerName)
	s.Equal(2, list.Results[3].GameNumber)
}

func (s *PostgresRepositoryTestSuite) TestRecordGame_Idempotent() {
	out, err := s.repo.RecordGame(s.ctx, s.game("room-1", 1))
	s.Require().NoError(err)
	s.True(out.Recorded)

	out, err = s.repo.RecordGame(s.ctx, s.game("room-1", 1))
	s.Require().NoError(err)
	s.False(out.Recorded)

	list, err := s.repo.ListResults(s.ctx, &ListResultsInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Len(list.Results, 3)
}

func (s *PostgresRepositoryTestSuite) TestRecordGame_Empty() {
	_, err := s.repo.RecordGame(s.ctx, &RecordGameInput{RoomID: "room-1", GameNumber: 1})
	s.ErrorIs(err, ErrEmptyGame)
}

func (s *PostgresRepositoryTestSuite) TestListResults_UnknownRoom() {
	list, err := s.repo.ListResults(s.ctx, &ListResultsInput{RoomID: "nope"})
	s.Require().NoError(err)
	s.Empty(list.Results)
}

func TestPostgresRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container tests in short mode")
	}
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
