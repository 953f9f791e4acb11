package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Decide/internal/ingest"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
	"github.com/MikeSquared-Agency/Decide/internal/store"
)

// WorkbookField is the multipart field carrying the uploaded .xlsx file.
const WorkbookField = "excel"

type WorkbooksHandler struct {
	pipeline *pipeline
	maxBytes int64
}

func NewWorkbooksHandler(p *pipeline, maxBytes int64) *WorkbooksHandler {
	return &WorkbooksHandler{pipeline: p, maxBytes: maxBytes}
}

type WorkbookPreview struct {
	Criteria []string   `json:"criteria"`
	Names    []string   `json:"names"`
	Data     [][]string `json:"data"`
	Weights  []string   `json:"weights,omitempty"`
}

// Preview parses an uploaded workbook without scoring it. Every value cell
// must already be numeric; weights are only checked on evaluation.
// POST /api/v1/workbooks/preview
func (h *WorkbooksHandler) Preview(w http.ResponseWriter, r *http.Request) {
	wb, ok := h.read(w, r)
	if !ok {
		return
	}
	if _, err := mcda.ValidateMatrix(h.pipeline.evaluator.Registry(), wb.Names, wb.Columns); err != nil {
		h.pipeline.recorder.Rejected(store.SourceWorkbook, err)
		writeError(w, err)
		return
	}

	preview := WorkbookPreview{
		Criteria: h.pipeline.evaluator.Registry().Names(),
		Names:    wb.Names,
		Data:     wb.Rows(),
	}
	if wb.HasWeights() {
		preview.Weights = make([]string, len(wb.Weights))
		for j, c := range wb.Weights {
			preview.Weights[j] = c.String()
		}
	}
	writeJSON(w, http.StatusOK, preview)
}

// Evaluate scores an uploaded workbook. When the workbook carries no weights
// they are taken from the w{j} form fields sent with the upload.
// POST /api/v1/workbooks/evaluate
func (h *WorkbooksHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	wb, ok := h.read(w, r)
	if !ok {
		return
	}

	in := wb.Input()
	if !wb.HasWeights() {
		in.Weights = ingest.ParseForm(h.pipeline.evaluator.Registry(), r.MultipartForm.Value).Weights
	}
	h.pipeline.run(w, r, store.SourceWorkbook, in)
}

func (h *WorkbooksHandler) read(w http.ResponseWriter, r *http.Request) (*ingest.Workbook, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		if isTooLarge(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "workbook too large"})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart body"})
		return nil, false
	}

	file, _, err := r.FormFile(WorkbookField)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no workbook file selected"})
		return nil, false
	}
	defer file.Close()

	wb, err := ingest.ReadWorkbook(file, h.pipeline.evaluator.Registry())
	if err != nil {
		workbooksTotal.WithLabelValues(outcomeOf(err)).Inc()
		h.pipeline.recorder.Rejected(store.SourceWorkbook, err)
		writeError(w, err)
		return nil, false
	}
	workbooksTotal.WithLabelValues(outcomeOK).Inc()
	return wb, true
}
