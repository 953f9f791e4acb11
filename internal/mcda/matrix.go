package mcda

import (
	"github.com/MikeSquared-Agency/Decide/internal/criteria"
)

// MinAlternatives is the smallest number of alternatives worth ranking.
const MinAlternatives = 2

// DecisionMatrix is a validated m×N matrix of finite values, one row per
// alternative and one column per criterion. Row i belongs to Names()[i].
// It is never mutated after construction; accessors return copies.
type DecisionMatrix struct {
	names  []string
	values [][]float64
}

// ValidateMatrix builds a DecisionMatrix from raw columns, one per criterion
// in registry order. Each column must hold exactly one cell per name.
func ValidateMatrix(reg *criteria.Registry, names []string, columns [][]Cell) (*DecisionMatrix, error) {
	if len(names) == 0 {
		return nil, shapeError("", 0, "no alternatives submitted")
	}
	n := reg.Len()
	if len(columns) != n {
		return nil, shapeError("", 0, "expected %d criterion columns, got %d", n, len(columns))
	}

	m := len(names)
	for j, col := range columns {
		if len(col) != m {
			return nil, shapeError(reg.Name(j), 0,
				"column %q has %d values but there are %d alternatives", reg.Name(j), len(col), m)
		}
	}

	values := make([][]float64, m)
	for i := 0; i < m; i++ {
		values[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cell := columns[j][i]
			if cell.IsBlank() {
				return nil, valueError(reg.Name(j), i+1,
					"empty value for alternative #%d in column %q", i+1, reg.Name(j))
			}
			v, err := cell.Float()
			if err != nil {
				return nil, valueError(reg.Name(j), i+1,
					"invalid value for alternative #%d in column %q: %q", i+1, reg.Name(j), cell.String())
			}
			values[i][j] = v
		}
	}

	if m < MinAlternatives {
		return nil, shapeError("", 0, "need at least two alternatives to compare")
	}

	out := make([]string, m)
	copy(out, names)
	return &DecisionMatrix{names: out, values: values}, nil
}

// Rows returns the number of alternatives.
func (x *DecisionMatrix) Rows() int { return len(x.values) }

// Cols returns the number of criteria.
func (x *DecisionMatrix) Cols() int {
	if len(x.values) == 0 {
		return 0
	}
	return len(x.values[0])
}

// At returns the raw value for alternative i and criterion j.
func (x *DecisionMatrix) At(i, j int) float64 { return x.values[i][j] }

// Name returns the name of alternative i.
func (x *DecisionMatrix) Name(i int) string { return x.names[i] }

// Names returns the alternative names in row order.
func (x *DecisionMatrix) Names() []string {
	out := make([]string, len(x.names))
	copy(out, x.names)
	return out
}

// Row returns a copy of alternative i's values.
func (x *DecisionMatrix) Row(i int) []float64 {
	out := make([]float64, len(x.values[i]))
	copy(out, x.values[i])
	return out
}

// Column returns a copy of criterion j's values across all alternatives.
func (x *DecisionMatrix) Column(j int) []float64 {
	out := make([]float64, len(x.values))
	for i, row := range x.values {
		out[i] = row[j]
	}
	return out
}

// Values returns a deep copy of the matrix.
func (x *DecisionMatrix) Values() [][]float64 { return cloneMatrix(x.values) }

func cloneMatrix(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
