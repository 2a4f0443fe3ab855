package results

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Postgres implements Repository on a pgx pool
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres results repository
func NewPostgres(cfg *Config) (*Postgres, error) {
	if cfg == nil || cfg.Pool == nil {
		return nil, ErrNilPool
	}

	return &Postgres{
		pool: cfg.Pool,
	}, nil
}

// Migrate applies the embedded schema migrations
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return ErrNilPool
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

const insertResult = `
INSERT INTO game_results (room_id, game_number, player_id, player_name, rank, score, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (room_id, game_number, player_id) DO NOTHING`

// RecordGame writes a game's standings in one transaction
func (p *Postgres) RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error) {
	if input == nil || len(input.Results) == 0 {
		return nil, ErrEmptyGame
	}

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, result := range input.Results {
		batch.Queue(insertResult,
			input.RoomID,
			input.GameNumber,
			result.PlayerID,
			result.PlayerName,
			result.Rank,
			result.Score,
			input.FinishedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var inserted int64
	for range input.Results {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return nil, fmt.Errorf("failed to insert result: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit results: %w", err)
	}

	return &RecordGameOutput{
		Recorded: inserted > 0,
	}, nil
}

// ListResults reads a room's archive ordered by game then rank
func (p *Postgres) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	if input == nil {
		return &ListResultsOutput{}, nil
	}

	rows, err := p.pool.Query(ctx, `
SELECT room_id, game_number, player_id, player_name, rank, score, finished_at
FROM game_results
WHERE room_id = $1
ORDER BY game_number, rank, player_name`, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := make([]*Result, 0)
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.RoomID, &r.GameNumber, &r.PlayerID, &r.PlayerName, &r.Rank, &r.Score, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	return &ListResultsOutput{
		Results: results,
	}, nil
}
