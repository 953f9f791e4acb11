package mcda

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
)

func newRegistry(t *testing.T, list ...criteria.Criterion) *criteria.Registry {
	t.Helper()
	reg, err := criteria.New(list...)
	require.NoError(t, err)
	return reg
}

func benefit(name string) criteria.Criterion {
	return criteria.Criterion{Name: name, Polarity: criteria.Benefit}
}

func cost(name string) criteria.Criterion {
	return criteria.Criterion{Name: name, Polarity: criteria.Cost}
}

// mustMatrix builds a matrix from row-major values.
func mustMatrix(t *testing.T, reg *criteria.Registry, names []string, rows [][]float64) *DecisionMatrix {
	t.Helper()
	cols := make([][]Cell, reg.Len())
	for j := range cols {
		cols[j] = make([]Cell, len(rows))
		for i, row := range rows {
			cols[j][i] = NumberCell(row[j])
		}
	}
	x, err := ValidateMatrix(reg, names, cols)
	require.NoError(t, err)
	return x
}

func mustWeights(t *testing.T, reg *criteria.Registry, raw ...float64) *WeightVector {
	t.Helper()
	w, err := ValidateWeights(reg, NumberCells(raw), WeightPolicy{})
	require.NoError(t, err)
	return w
}

func requireValidation(t *testing.T, err error, kind ErrorKind) *ValidationError {
	t.Helper()
	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T: %v", err, err)
	require.Equal(t, kind, ve.Kind)
	return ve
}
