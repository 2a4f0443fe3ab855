package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/stumped/internal/common/clock"
	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/repositories/results"
	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	standings  StandingsReader
	repository results.Repository
	subscriber events.Subscriber
	clock      clock.Clock
	logger     zerolog.Logger
}

// New creates a new archive service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Standings == nil {
		return nil, ErrNilStandings
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Subscriber == nil {
		return nil, ErrNilSubscriber
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		standings:  cfg.Standings,
		repository: cfg.Repository,
		subscriber: cfg.Subscriber,
		clock:      cfg.Clock,
		logger:     cfg.Logger.With().Str("component", "archive").Logger(),
	}, nil
}

// HandleEvent records the standings of a room that just reached game over
func (s *service) HandleEvent(ctx context.Context, event *events.Event) error {
	if event == nil {
		return ErrNilInput
	}

	if event.Kind != events.RoomChanged || event.Deleted ||
		models.RoomStatus(event.Status) != models.RoomStatusGameOver {
		return nil
	}

	out, err := s.standings.GetStandings(ctx, &game.GetStandingsInput{
		RoomID: event.RoomID,
	})
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read standings: %w", err)
	}

	// A restart can land between the event and the read
	if !out.Room.Status.IsGameOver() || len(out.Standings) == 0 {
		return nil
	}

	finishedAt := out.Room.UpdatedAt
	if finishedAt.IsZero() {
		finishedAt = s.clock.Now()
	}

	rows := make([]*results.Result, len(out.Standings))
	for i, standing := range out.Standings {
		rows[i] = &results.Result{
			RoomID:     out.Room.ID,
			GameNumber: out.Room.GameNumber,
			PlayerID:   standing.PlayerID,
			PlayerName: standing.Name,
			Rank:       standing.Rank,
			Score:      standing.Score,
			FinishedAt: finishedAt,
		}
	}

	recorded, err := s.repository.RecordGame(ctx, &results.RecordGameInput{
		RoomID:     out.Room.ID,
		GameNumber: out.Room.GameNumber,
		FinishedAt: finishedAt,
		Results:    rows,
	})
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}

	if recorded.Recorded {
		s.logger.Info().
			Str("room_id", out.Room.ID).
			Int("game", out.Room.GameNumber).
			Int("players", len(rows)).
			Msg("game archived")
	}

	return nil
}

// Run archives finished games as their events arrive
func (s *service) Run(ctx context.Context) error {
	sub, err := s.subscriber.SubscribeAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to room events: %w", err)
	}
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := s.HandleEvent(ctx, event); err != nil {
				s.logger.Error().Err(err).Str("room_id", event.RoomID).Msg("failed to archive game")
			}
		}
	}
}

// ListResults returns a room's archived standings
func (s *service) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.repository.ListResults(ctx, &results.ListResultsInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return &ListResultsOutput{
		Results: out.Results,
	}, nil
}
