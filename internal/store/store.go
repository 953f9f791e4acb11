package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

// Source records which input adapter produced an evaluation.
type Source string

const (
	SourceJSON     Source = "json"
	SourceForm     Source = "form"
	SourceWorkbook Source = "workbook"
)

// Evaluation is one completed scoring run kept for audit.
type Evaluation struct {
	ID        uuid.UUID    `json:"evaluation_id"`
	Source    Source       `json:"source"`
	Report    *mcda.Report `json:"report"`
	CreatedAt time.Time    `json:"created_at"`
}

// DefaultListLimit caps history listings when the caller gives no limit.
const DefaultListLimit = 50

type Store interface {
	SaveEvaluation(ctx context.Context, e *Evaluation) error
	GetEvaluation(ctx context.Context, id uuid.UUID) (*Evaluation, error)
	ListEvaluations(ctx context.Context, limit int) ([]*Evaluation, error)
	Close() error
}

// NopStore is used when no database is configured. Saves are dropped and
// lookups find nothing.
type NopStore struct{}

func (NopStore) SaveEvaluation(_ context.Context, e *Evaluation) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (NopStore) GetEvaluation(_ context.Context, _ uuid.UUID) (*Evaluation, error) {
	return nil, nil
}

func (NopStore) ListEvaluations(_ context.Context, _ int) ([]*Evaluation, error) {
	return []*Evaluation{}, nil
}

func (NopStore) Close() error { return nil }
