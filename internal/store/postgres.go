package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Migrate creates the evaluations table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS decide_evaluations (
			evaluation_id uuid PRIMARY KEY,
			source        text NOT NULL,
			alternatives  integer NOT NULL,
			winner        text NOT NULL,
			report        jsonb NOT NULL,
			created_at    timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const evaluationColumns = `evaluation_id, source, report, created_at`

func (s *PostgresStore) SaveEvaluation(ctx context.Context, e *Evaluation) error {
	if e.Report == nil || len(e.Report.Ranking) == 0 {
		return fmt.Errorf("save evaluation: empty report")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	reportJSON, err := json.Marshal(e.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	return s.pool.QueryRow(ctx, `
		INSERT INTO decide_evaluations (evaluation_id, source, alternatives, winner, report)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		e.ID, string(e.Source), len(e.Report.Ranking), e.Report.Winner().Name, reportJSON,
	).Scan(&e.CreatedAt)
}

func (s *PostgresStore) GetEvaluation(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+evaluationColumns+`
		FROM decide_evaluations WHERE evaluation_id = $1`, id)
	e, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (s *PostgresStore) ListEvaluations(ctx context.Context, limit int) ([]*Evaluation, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+evaluationColumns+`
		FROM decide_evaluations
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvaluation(row pgx.Row) (*Evaluation, error) {
	e := &Evaluation{}
	var source string
	var reportJSON []byte
	if err := row.Scan(&e.ID, &source, &reportJSON, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Source = Source(source)
	if err := json.Unmarshal(reportJSON, &e.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return e, nil
}
