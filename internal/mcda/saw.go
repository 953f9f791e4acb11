package mcda

import (
	"fmt"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
)

// NormalizeSAW scales each column of x by its criterion's polarity.
//
//	benefit: r = x / max(col)
//	cost:    r = min(col) / x
//
// The result has the same shape and row order as x.
func NormalizeSAW(reg *criteria.Registry, x *DecisionMatrix) ([][]float64, error) {
	if reg.Len() != x.Cols() {
		return nil, fmt.Errorf("%w: registry has %d criteria, matrix has %d columns", ErrDimensionMismatch, reg.Len(), x.Cols())
	}

	m, n := x.Rows(), x.Cols()
	r := make([][]float64, m)
	for i := range r {
		r[i] = make([]float64, n)
	}

	for j := 0; j < n; j++ {
		var col []float64
		switch reg.Polarity(j) {
		case criteria.Benefit:
			col = normalizeBenefit(x.Column(j))
		default:
			col = normalizeCost(x.Column(j))
		}
		for i, v := range col {
			r[i][j] = v
		}
	}
	return r, nil
}

// normalizeBenefit divides by the column maximum so the best value becomes 1.
// A zero maximum means no alternative stands out and the whole column is 0.
func normalizeBenefit(col []float64) []float64 {
	out := make([]float64, len(col))
	maxv := col[0]
	for _, v := range col[1:] {
		if v > maxv {
			maxv = v
		}
	}
	if maxv == 0 {
		return out
	}
	for i, v := range col {
		out[i] = v / maxv
	}
	return out
}

// normalizeCost divides the column minimum by each value so the cheapest
// becomes 1. A zero cost is treated as undefined and scores 0 rather than
// infinitely good. When the minimum itself is 0 every cell in the column
// ends up 0, including the zero-cost alternative.
func normalizeCost(col []float64) []float64 {
	out := make([]float64, len(col))
	minv := col[0]
	for _, v := range col[1:] {
		if v < minv {
			minv = v
		}
	}
	for i, v := range col {
		if v == 0 {
			out[i] = 0
			continue
		}
		out[i] = minv / v
	}
	return out
}

// Preference is the SAW preference value of each alternative:
// V[i] = sum over j of r[i][j] * w[j].
func Preference(r [][]float64, w []float64) ([]float64, error) {
	v := make([]float64, len(r))
	for i, row := range r {
		if len(row) != len(w) {
			return nil, fmt.Errorf("%w: row %d has %d values, %d weights", ErrDimensionMismatch, i, len(row), len(w))
		}
		var sum float64
		for j, rv := range row {
			sum += rv * w[j]
		}
		v[i] = sum
	}
	return v, nil
}
