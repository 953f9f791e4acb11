package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/Decide/internal/ingest"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps input problems to 422 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *mcda.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, ve)
	case errors.Is(err, ingest.ErrInvalidWorkbook):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"kind": "workbook", "error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

func outcomeOf(err error) string {
	if mcda.IsValidation(err) || errors.Is(err, ingest.ErrInvalidWorkbook) {
		return outcomeRejected
	}
	return outcomeError
}
