package mcda

import (
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
)

// Result is the full TOPSIS output. Every per-alternative slice is indexed
// like the input matrix rows.
type Result struct {
	Normalized    [][]float64 `json:"r_norm"`
	Weighted      [][]float64 `json:"y"`
	IdealPositive []float64   `json:"ideal_pos"`
	IdealNegative []float64   `json:"ideal_neg"`
	DistPositive  []float64   `json:"d_pos"`
	DistNegative  []float64   `json:"d_neg"`
	Score         []float64   `json:"score"`
}

// Score normalizes x with SAW scaling and runs TOPSIS with the normalized weights.
func Score(reg *criteria.Registry, x *DecisionMatrix, w *WeightVector) (*Result, error) {
	if w.Len() != reg.Len() {
		return nil, fmt.Errorf("%w: registry has %d criteria, %d weights", ErrDimensionMismatch, reg.Len(), w.Len())
	}
	r, err := NormalizeSAW(reg, x)
	if err != nil {
		return nil, err
	}
	return ScoreNormalized(reg, r, w.Normalized())
}

// ScoreNormalized runs TOPSIS on an already-normalized matrix r. Neither r
// nor w is modified.
func ScoreNormalized(reg *criteria.Registry, r [][]float64, w []float64) (*Result, error) {
	n := reg.Len()
	if len(w) != n {
		return nil, fmt.Errorf("%w: registry has %d criteria, %d weights", ErrDimensionMismatch, n, len(w))
	}
	if len(r) == 0 {
		return nil, fmt.Errorf("%w: normalized matrix has no rows", ErrDimensionMismatch)
	}

	m := len(r)
	y := make([][]float64, m)
	for i, row := range r {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrDimensionMismatch, i, len(row), n)
		}
		y[i] = make([]float64, n)
		for j, v := range row {
			y[i][j] = v * w[j]
		}
	}

	pos, neg := idealSolutions(reg, y)

	dPos := make([]float64, m)
	dNeg := make([]float64, m)
	score := make([]float64, m)
	for i, row := range y {
		dPos[i] = distance(pos, row)
		dNeg[i] = distance(row, neg)
		score[i] = closeness(dPos[i], dNeg[i])
	}

	return &Result{
		Normalized:    cloneMatrix(r),
		Weighted:      y,
		IdealPositive: pos,
		IdealNegative: neg,
		DistPositive:  dPos,
		DistNegative:  dNeg,
		Score:         score,
	}, nil
}

// idealSolutions takes column extrema of y: the best value per criterion for
// the positive ideal and the worst for the negative one.
func idealSolutions(reg *criteria.Registry, y [][]float64) (pos, neg []float64) {
	n := reg.Len()
	pos = make([]float64, n)
	neg = make([]float64, n)
	for j := 0; j < n; j++ {
		lo, hi := y[0][j], y[0][j]
		for _, row := range y[1:] {
			if row[j] < lo {
				lo = row[j]
			}
			if row[j] > hi {
				hi = row[j]
			}
		}
		if reg.Polarity(j) == criteria.Benefit {
			pos[j], neg[j] = hi, lo
		} else {
			pos[j], neg[j] = lo, hi
		}
	}
	return pos, neg
}

// distance is the Euclidean norm of a - b.
func distance(a, b []float64) float64 {
	var sum float64
	for j := range a {
		d := a[j] - b[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// closeness is dNeg / (dPos + dNeg). An alternative sitting on both ideal
// points at once has no meaningful closeness and scores 0.
func closeness(dPos, dNeg float64) float64 {
	denom := dPos + dNeg
	if denom == 0 {
		return 0
	}
	return dNeg / denom
}
