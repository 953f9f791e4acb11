package ingest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

// ErrInvalidWorkbook wraps every problem with the uploaded file's layout or content.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// WeightsSheet is the optional sheet whose first data row holds the weights
// when the main sheet has no weight row.
const WeightsSheet = "weights"

// Workbook is the tabular content of an uploaded spreadsheet. Cells stay raw
// so the core validators do the numeric checks.
type Workbook struct {
	Names   []string      `json:"names"`
	Columns [][]mcda.Cell `json:"columns"`
	Weights []mcda.Cell   `json:"weights,omitempty"`
}

// HasWeights reports whether the workbook supplied a weight row or sheet.
func (w *Workbook) HasWeights() bool { return w.Weights != nil }

// Input converts the workbook to a scoring input.
func (w *Workbook) Input() mcda.Input {
	return mcda.Input{Names: w.Names, Columns: w.Columns, Weights: w.Weights}
}

// Rows returns the values as one row per alternative, for previews.
func (w *Workbook) Rows() [][]string {
	out := make([][]string, len(w.Names))
	for i := range w.Names {
		out[i] = make([]string, len(w.Columns))
		for j, col := range w.Columns {
			out[i][j] = col[i].String()
		}
	}
	return out
}

// ReadWorkbook parses an .xlsx file. The first sheet has a header row whose
// first column holds alternative names; criterion columns are matched by
// header text, ignoring case. A row named "bobot" or "weight" holds weights.
func ReadWorkbook(r io.Reader, reg *criteria.Registry) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrInvalidWorkbook)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrInvalidWorkbook, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrInvalidWorkbook, sheets[0])
	}

	header := rows[0]
	n := reg.Len()
	if len(header) < n+1 {
		return nil, fmt.Errorf("%w: expected a name column plus %d criterion columns, found %d columns",
			ErrInvalidWorkbook, n, len(header))
	}

	colOf, err := mapHeader(header, reg)
	if err != nil {
		return nil, err
	}

	wb := &Workbook{Columns: make([][]mcda.Cell, n)}
	for _, row := range rows[1:] {
		first := strings.TrimSpace(cellAt(row, 0))
		if isBlankName(first) {
			continue
		}

		if isWeightRow(first) {
			weights := make([]mcda.Cell, n)
			for j := 0; j < n; j++ {
				v := cellAt(row, colOf[j])
				if strings.TrimSpace(v) == "" {
					return nil, fmt.Errorf("%w: weight for criterion %q in the weight row is empty",
						ErrInvalidWorkbook, reg.Name(j))
				}
				weights[j] = mcda.TextCell(v)
			}
			wb.Weights = weights
			continue
		}

		for j := 0; j < n; j++ {
			v := cellAt(row, colOf[j])
			if strings.TrimSpace(v) == "" {
				return nil, fmt.Errorf("%w: value %q is empty for alternative %q",
					ErrInvalidWorkbook, reg.Name(j), first)
			}
			wb.Columns[j] = append(wb.Columns[j], mcda.TextCell(v))
		}
		wb.Names = append(wb.Names, first)
	}

	if len(wb.Names) < mcda.MinAlternatives {
		return nil, fmt.Errorf("%w: at least %d alternatives are required, found %d",
			ErrInvalidWorkbook, mcda.MinAlternatives, len(wb.Names))
	}

	if sheet, ok := findSheet(sheets, WeightsSheet); ok && wb.Weights == nil {
		weights, err := readWeightsSheet(f, sheet, n)
		if err != nil {
			return nil, err
		}
		wb.Weights = weights
	}

	return wb, nil
}

// mapHeader finds each criterion's column index. Column 0 is the name column
// and is never matched.
func mapHeader(header []string, reg *criteria.Registry) ([]int, error) {
	colOf := make([]int, reg.Len())
	for j := range colOf {
		colOf[j] = -1
	}
	for idx := 1; idx < len(header); idx++ {
		j, ok := reg.Index(header[idx])
		if ok && colOf[j] == -1 {
			colOf[j] = idx
		}
	}
	for j, idx := range colOf {
		if idx == -1 {
			return nil, fmt.Errorf("%w: no header column for criterion %q", ErrInvalidWorkbook, reg.Name(j))
		}
	}
	return colOf, nil
}

func readWeightsSheet(f *excelize.File, sheet string, n int) ([]mcda.Cell, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrInvalidWorkbook, sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: sheet %q has no weight row", ErrInvalidWorkbook, sheet)
	}
	weights := make([]mcda.Cell, n)
	for j := 0; j < n; j++ {
		weights[j] = mcda.TextCell(cellAt(rows[1], j))
	}
	return weights, nil
}

// cellAt tolerates the short rows excelize returns when trailing cells are empty.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlankName(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "none":
		return true
	}
	return false
}

func isWeightRow(s string) bool {
	switch strings.ToLower(s) {
	case "bobot", "weight", "weights":
		return true
	}
	return false
}

func findSheet(sheets []string, name string) (string, bool) {
	for _, s := range sheets[1:] {
		if strings.EqualFold(s, name) {
			return s, true
		}
	}
	return "", false
}
