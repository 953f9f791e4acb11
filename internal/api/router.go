package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Decide/internal/config"
	"github.com/MikeSquared-Agency/Decide/internal/hermes"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
	"github.com/MikeSquared-Agency/Decide/internal/store"
)

func NewRouter(ev *mcda.Evaluator, s store.Store, h hermes.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	if s == nil {
		s = store.NopStore{}
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	p := &pipeline{evaluator: ev, recorder: NewRecorder(s, h, logger)}
	evaluations := NewEvaluationsHandler(p, s, cfg.Upload.MaxBytes)
	workbooks := NewWorkbooksHandler(p, cfg.Upload.MaxBytes)
	crit := NewCriteriaHandler(ev)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/criteria", crit.List)

		r.Post("/evaluations", evaluations.Create)
		r.Post("/evaluations/form", evaluations.CreateFromForm)

		r.Post("/workbooks/preview", workbooks.Preview)
		r.Post("/workbooks/evaluate", workbooks.Evaluate)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/evaluations", evaluations.List)
			r.Get("/evaluations/{id}", evaluations.Get)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
