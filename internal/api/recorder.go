package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Decide/internal/hermes"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
	"github.com/MikeSquared-Agency/Decide/internal/store"
)

// Recorder keeps an audit trail of scoring runs. Storage and event failures
// are logged and never fail the request that produced the report.
type Recorder struct {
	store  store.Store
	hermes hermes.Client
	logger *slog.Logger
}

func NewRecorder(s store.Store, h hermes.Client, logger *slog.Logger) *Recorder {
	if s == nil {
		s = store.NopStore{}
	}
	return &Recorder{store: s, hermes: h, logger: logger}
}

func (rc *Recorder) Completed(ctx context.Context, source store.Source, report *mcda.Report) *store.Evaluation {
	e := &store.Evaluation{
		ID:        uuid.New(),
		Source:    source,
		Report:    report,
		CreatedAt: time.Now().UTC(),
	}
	if err := rc.store.SaveEvaluation(ctx, e); err != nil {
		rc.logger.Warn("failed to save evaluation", "evaluation_id", e.ID, "error", err)
	}

	winner := report.Winner()
	rc.logger.Info("evaluation completed",
		"evaluation_id", e.ID,
		"source", source,
		"alternatives", len(report.Ranking),
		"winner", winner.Name,
		"winner_score", winner.Score,
	)

	if rc.hermes != nil {
		evt := hermes.EvaluationCompletedEvent{
			EvaluationID: e.ID.String(),
			Source:       string(source),
			Alternatives: len(report.Ranking),
			Criteria:     len(report.Criteria),
			Winner:       winner.Name,
			WinnerScore:  winner.Score,
			Timestamp:    e.CreatedAt,
		}
		if err := rc.hermes.Publish(hermes.SubjectEvaluationCompleted(e.ID.String()), evt); err != nil {
			rc.logger.Warn("failed to publish evaluation event", "evaluation_id", e.ID, "error", err)
		}
	}
	return e
}

func (rc *Recorder) Rejected(source store.Source, err error) {
	kind := "workbook"
	var ve *mcda.ValidationError
	if errors.As(err, &ve) {
		kind = string(ve.Kind)
	}
	rc.logger.Debug("evaluation rejected", "source", source, "kind", kind, "error", err)

	if rc.hermes == nil {
		return
	}
	evt := hermes.EvaluationRejectedEvent{
		Source:    string(source),
		Kind:      kind,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	}
	if perr := rc.hermes.Publish(hermes.SubjectEvaluationRejected, evt); perr != nil {
		rc.logger.Warn("failed to publish rejection event", "error", perr)
	}
}
