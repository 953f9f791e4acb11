package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

type CriteriaHandler struct {
	evaluator *mcda.Evaluator
}

func NewCriteriaHandler(ev *mcda.Evaluator) *CriteriaHandler {
	return &CriteriaHandler{evaluator: ev}
}

// List returns the criteria registry and the weight policy inputs must satisfy.
// GET /api/v1/criteria
func (h *CriteriaHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"criteria":      h.evaluator.Registry().All(),
		"weight_policy": h.evaluator.Policy(),
	})
}
