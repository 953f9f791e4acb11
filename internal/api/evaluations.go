package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Decide/internal/ingest"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
	"github.com/MikeSquared-Agency/Decide/internal/store"
)

// pipeline runs scoring for any input adapter and records the outcome.
type pipeline struct {
	evaluator *mcda.Evaluator
	recorder  *Recorder
}

func (p *pipeline) run(w http.ResponseWriter, r *http.Request, source store.Source, in mcda.Input) {
	start := time.Now()
	report, err := p.evaluator.Evaluate(in)
	evaluationDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())
	if err != nil {
		evaluationsTotal.WithLabelValues(string(source), outcomeOf(err)).Inc()
		p.recorder.Rejected(source, err)
		writeError(w, err)
		return
	}

	evaluationsTotal.WithLabelValues(string(source), outcomeOK).Inc()
	evaluationAlternatives.Observe(float64(len(report.Ranking)))
	writeJSON(w, http.StatusCreated, p.recorder.Completed(r.Context(), source, report))
}

type EvaluationsHandler struct {
	pipeline *pipeline
	store    store.Store
	maxBytes int64
}

func NewEvaluationsHandler(p *pipeline, s store.Store, maxBytes int64) *EvaluationsHandler {
	return &EvaluationsHandler{pipeline: p, store: s, maxBytes: maxBytes}
}

// Create scores a JSON body.
// POST /api/v1/evaluations
func (h *EvaluationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	var in mcda.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if isTooLarge(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	h.pipeline.run(w, r, store.SourceJSON, in)
}

// CreateFromForm scores form fields named name[], c{j}[] and w{j}.
// POST /api/v1/evaluations/form
func (h *EvaluationsHandler) CreateFromForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseForm(); err != nil {
		if isTooLarge(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form body"})
		return
	}
	in := ingest.ParseForm(h.pipeline.evaluator.Registry(), r.PostForm)
	h.pipeline.run(w, r, store.SourceForm, in)
}

// List returns recent evaluations, newest first.
// GET /api/v1/evaluations?limit=N
func (h *EvaluationsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	evals, err := h.store.ListEvaluations(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if evals == nil {
		evals = []*store.Evaluation{}
	}
	writeJSON(w, http.StatusOK, evals)
}

// Get returns one stored evaluation.
// GET /api/v1/evaluations/{id}
func (h *EvaluationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid evaluation id"})
		return
	}

	e, err := h.store.GetEvaluation(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if e == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "evaluation not found"})
		return
	}
	writeJSON(w, http.StatusOK, e)
}
