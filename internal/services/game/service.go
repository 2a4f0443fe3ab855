package game

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/stumped/internal/common/clock"
	"github.com/KirkDiggler/stumped/internal/common/locker"
	"github.com/KirkDiggler/stumped/internal/common/random"
	"github.com/KirkDiggler/stumped/internal/common/roomcode"
	"github.com/KirkDiggler/stumped/internal/common/uuid"
	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/models"
	exchangeRepo "github.com/KirkDiggler/stumped/internal/repositories/exchange"
	playerRepo "github.com/KirkDiggler/stumped/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/stumped/internal/repositories/room"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	roomRepo     roomRepo.Repository
	playerRepo   playerRepo.Repository
	exchangeRepo exchangeRepo.Repository

	locker        locker.Locker
	publisher     events.Publisher
	picker        random.Picker
	codeGenerator roomcode.Generator
	clock         clock.Clock
	uuid          uuid.UUID
	logger        zerolog.Logger

	codeAttempts int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.ExchangeRepo == nil {
		return nil, ErrNilExchangeRepo
	}

	if cfg.Locker == nil {
		return nil, ErrNilLocker
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	codeAttempts := cfg.CodeAttempts
	if codeAttempts <= 0 {
		codeAttempts = DefaultCodeAttempts
	}

	return &service{
		roomRepo:      cfg.RoomRepo,
		playerRepo:    cfg.PlayerRepo,
		exchangeRepo:  cfg.ExchangeRepo,
		locker:        cfg.Locker,
		publisher:     cfg.Publisher,
		picker:        cfg.Picker,
		codeGenerator: cfg.CodeGenerator,
		clock:         cfg.Clock,
		uuid:          cfg.UUIDGenerator,
		logger:        cfg.Logger.With().Str("component", "game").Logger(),
		codeAttempts:  codeAttempts,
	}, nil
}

// changes records what a mutation touched. Mutations only compute; every
// write happens in persist once the whole action has been validated.
type changes struct {
	room    bool
	players bool

	// removed players are deleted from the store
	removed []*models.Player

	addEntry    *models.Entry
	updateEntry *models.Entry

	// deleted is set when the last player left and the room goes away
	deleted bool
}

func (c changes) entries() bool {
	return c.addEntry != nil || c.updateEntry != nil
}

// mutation is the body of a locked read-modify-write on one room
type mutation func(st *roomState) (changes, error)

// mutate runs fn under the room lock against freshly loaded state, persists
// what it reports as changed, then publishes after the lock is released.
func (s *service) mutate(ctx context.Context, roomID, action string, fn mutation) (*roomState, error) {
	if roomID == "" {
		return nil, ErrRoomNotFound
	}

	log := s.logger.With().Str("room_id", roomID).Str("action", action).Logger()

	release, err := s.locker.Acquire(ctx, roomID)
	if err != nil {
		if errors.Is(err, locker.ErrLockTimeout) {
			log.Warn().Msg("room lock busy")
			return nil, ErrRoomBusy
		}
		return nil, storageError("lock room", err)
	}

	st, c, err := func() (*roomState, changes, error) {
		defer release()

		st, err := s.loadState(ctx, roomID)
		if err != nil {
			return nil, changes{}, err
		}

		c, err := fn(st)
		if err != nil {
			return nil, changes{}, err
		}

		if err := s.persist(ctx, st, c); err != nil {
			return nil, changes{}, err
		}

		return st, c, nil
	}()
	if err != nil {
		if errors.Is(err, ErrStorage) {
			log.Error().Err(err).Msg("action failed")
		} else {
			log.Debug().Err(err).Msg("action rejected")
		}
		return nil, err
	}

	s.notify(ctx, st, c)

	return st, nil
}

// loadState reads the room and its players, ordered for rotation
func (s *service) loadState(ctx context.Context, roomID string) (*roomState, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, storageError("load room", err)
	}

	playersOutput, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		return nil, storageError("load players", err)
	}

	players := playersOutput.Players
	models.SortByOrder(players)

	return &roomState{
		room:    room,
		players: players,
	}, nil
}

// persist writes the aggregates a mutation changed
func (s *service) persist(ctx context.Context, st *roomState, c changes) error {
	if c.addEntry != nil {
		if err := s.exchangeRepo.AddEntry(ctx, &exchangeRepo.AddEntryInput{
			Entry: c.addEntry,
		}); err != nil {
			return storageError("add entry", err)
		}
	}

	if c.updateEntry != nil {
		if err := s.exchangeRepo.UpdateEntry(ctx, &exchangeRepo.UpdateEntryInput{
			Entry: c.updateEntry,
		}); err != nil {
			return storageError("update entry", err)
		}
	}

	for _, player := range c.removed {
		if err := s.playerRepo.DeletePlayer(ctx, &playerRepo.DeletePlayerInput{
			PlayerID: player.ID,
		}); err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return storageError("delete player", err)
		}
	}

	if c.deleted {
		if err := s.exchangeRepo.DeleteEntriesForRoom(ctx, &exchangeRepo.DeleteEntriesForRoomInput{
			RoomID: st.room.ID,
		}); err != nil {
			return storageError("delete entries", err)
		}

		if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{
			RoomID: st.room.ID,
		}); err != nil && !errors.Is(err, roomRepo.ErrRoomNotFound) {
			return storageError("delete room", err)
		}

		return nil
	}

	if c.players && len(st.players) > 0 {
		if err := s.playerRepo.SavePlayers(ctx, &playerRepo.SavePlayersInput{
			Players: st.players,
		}); err != nil {
			return storageError("save players", err)
		}
	}

	if c.room || c.players || len(c.removed) > 0 {
		st.room.UpdatedAt = s.clock.Now()
		if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
			Room: st.room,
		}); err != nil {
			return storageError("save room", err)
		}
	}

	return nil
}

// notify publishes one event per changed aggregate. Failures are logged:
// the mutation already committed and clients can always re-read.
func (s *service) notify(ctx context.Context, st *roomState, c changes) {
	now := s.clock.Now()

	base := events.Event{
		RoomID:  st.room.ID,
		Status:  st.room.Status.String(),
		Deleted: c.deleted,
		At:      now,
	}
	if holder := st.turnHolder(); holder != nil && st.room.Status.IsPlaying() {
		base.TurnPlayerID = holder.ID
	}

	var batch []events.Event
	if c.room || c.deleted {
		e := base
		e.Kind = events.RoomChanged
		batch = append(batch, e)
	}
	if c.players || len(c.removed) > 0 || c.deleted {
		e := base
		e.Kind = events.PlayersChanged
		e.PlayerIDs = st.playerIDs()
		batch = append(batch, e)
	}
	if c.entries() {
		e := base
		e.Kind = events.EntriesChanged
		batch = append(batch, e)
	}

	for i := range batch {
		if err := s.publisher.Publish(ctx, &batch[i]); err != nil {
			s.logger.Warn().Err(err).
				Str("room_id", st.room.ID).
				Str("event", string(batch[i].Kind)).
				Msg("failed to publish event")
		}
	}
}

// actor finds the player seated under a session token
func (s *service) actor(st *roomState, sessionToken string) (*models.Player, error) {
	if sessionToken == "" {
		return nil, ErrMissingSession
	}
	player := st.playerBySession(sessionToken)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// normalizeText trims free text and rejects blanks
func normalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// normalizeName trims a display name and enforces its length
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}
