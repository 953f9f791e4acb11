package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

// buildWorkbook writes main into the first sheet and, when weights is non-nil,
// adds a "weights" sheet.
func buildWorkbook(t *testing.T, main [][]any, weights [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	writeRows(t, f, "Sheet1", main)
	if weights != nil {
		_, err := f.NewSheet(WeightsSheet)
		require.NoError(t, err)
		writeRows(t, f, WeightsSheet, weights)
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func writeRows(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for i, row := range rows {
		r := row
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &r))
	}
}

func TestReadWorkbook(t *testing.T) {
	reg := testRegistry(t)
	buf := buildWorkbook(t, [][]any{
		{"Content", "cost production", "Notes", " REACH "},
		{"Reel A", 50, "first", 1200},
		{"", "", "", ""},
		{"nan", 1, "", 1},
		{"Reel B", 30.5, "", 900},
		{"Bobot", 40, "", 60},
	}, nil)

	wb, err := ReadWorkbook(buf, reg)
	require.NoError(t, err)

	assert.Equal(t, []string{"Reel A", "Reel B"}, wb.Names)
	assert.Equal(t, [][]string{{"1200", "50"}, {"900", "30.5"}}, wb.Rows())
	require.True(t, wb.HasWeights())
	assert.Equal(t, "60", wb.Weights[0].String())
	assert.Equal(t, "40", wb.Weights[1].String())

	report, err := mcda.NewEvaluator(reg, mcda.DefaultWeightPolicy()).Evaluate(wb.Input())
	require.NoError(t, err)
	assert.Len(t, report.Ranking, 2)
}

func TestReadWorkbookWeightsSheet(t *testing.T) {
	reg := testRegistry(t)
	buf := buildWorkbook(t, [][]any{
		{"Content", "Reach", "Cost Production"},
		{"Reel A", 1200, 50},
		{"Reel B", 900, 30},
	}, [][]any{
		{"Reach", "Cost Production"},
		{55, 45},
	})

	wb, err := ReadWorkbook(buf, reg)
	require.NoError(t, err)
	require.True(t, wb.HasWeights())
	assert.Equal(t, "55", wb.Weights[0].String())
	assert.Equal(t, "45", wb.Weights[1].String())
}

func TestReadWorkbookWithoutWeights(t *testing.T) {
	reg := testRegistry(t)
	buf := buildWorkbook(t, [][]any{
		{"Content", "Reach", "Cost Production"},
		{"Reel A", 1200, 50},
		{"Reel B", 900, 30},
	}, nil)

	wb, err := ReadWorkbook(buf, reg)
	require.NoError(t, err)
	assert.False(t, wb.HasWeights())
}

func TestReadWorkbookErrors(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name    string
		main    [][]any
		weights [][]any
		wantMsg string
	}{
		{
			name:    "too few columns",
			main:    [][]any{{"Content", "Reach"}, {"A", 1}, {"B", 2}},
			wantMsg: "criterion columns",
		},
		{
			name:    "missing header",
			main:    [][]any{{"Content", "Reach", "Budget"}, {"A", 1, 1}, {"B", 2, 2}},
			wantMsg: "Cost Production",
		},
		{
			name:    "name column is not matched",
			main:    [][]any{{"Reach", "Views", "Cost Production"}, {"A", 1, 1}, {"B", 2, 2}},
			wantMsg: `"Reach"`,
		},
		{
			name:    "empty alternative value",
			main:    [][]any{{"Content", "Reach", "Cost Production"}, {"A", 1, ""}, {"B", 2, 2}},
			wantMsg: `for alternative "A"`,
		},
		{
			name:    "empty weight",
			main:    [][]any{{"Content", "Reach", "Cost Production"}, {"A", 1, 1}, {"B", 2, 2}, {"weight", 50}},
			wantMsg: "weight row is empty",
		},
		{
			name:    "one alternative",
			main:    [][]any{{"Content", "Reach", "Cost Production"}, {"A", 1, 1}},
			wantMsg: "at least 2 alternatives",
		},
		{
			name:    "weights sheet without data",
			main:    [][]any{{"Content", "Reach", "Cost Production"}, {"A", 1, 1}, {"B", 2, 2}},
			weights: [][]any{{"Reach", "Cost Production"}},
			wantMsg: "no weight row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadWorkbook(buildWorkbook(t, tt.main, tt.weights), reg)
			require.ErrorIs(t, err, ErrInvalidWorkbook)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadWorkbookNotAWorkbook(t *testing.T) {
	_, err := ReadWorkbook(strings.NewReader("name,reach\nA,1\n"), testRegistry(t))
	assert.ErrorIs(t, err, ErrInvalidWorkbook)
}
