package mcda

import (
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
)

// WeightPolicy is the input-layer rule on the raw weight total. A zero
// RequiredTotal disables the check.
type WeightPolicy struct {
	RequiredTotal float64 `json:"required_total"`
	Tolerance     float64 `json:"tolerance"`
}

// DefaultWeightPolicy requires raw weights to sum to exactly 100.
func DefaultWeightPolicy() WeightPolicy {
	return WeightPolicy{RequiredTotal: 100, Tolerance: 0}
}

// Validate checks the policy itself.
func (p WeightPolicy) Validate() error {
	if p.RequiredTotal < 0 {
		return fmt.Errorf("required weight total must not be negative: %g", p.RequiredTotal)
	}
	if p.Tolerance < 0 || math.IsNaN(p.Tolerance) {
		return fmt.Errorf("weight tolerance must not be negative: %g", p.Tolerance)
	}
	return nil
}

// WeightVector holds one weight per criterion, both as entered and
// normalized to sum to 1.
type WeightVector struct {
	raw        []float64
	normalized []float64
}

// ValidateWeights parses one raw weight per criterion and normalizes them.
func ValidateWeights(reg *criteria.Registry, raw []Cell, policy WeightPolicy) (*WeightVector, error) {
	n := reg.Len()
	if len(raw) != n {
		return nil, shapeError("", 0, "expected %d weights, got %d", n, len(raw))
	}

	weights := make([]float64, n)
	var total float64
	for j, cell := range raw {
		name := reg.Name(j)
		if cell.IsBlank() {
			return nil, valueError(name, 0, "all criterion weights are required (missing %q)", name)
		}
		w, err := cell.Float()
		if err != nil {
			return nil, valueError(name, 0, "invalid weight for %q: %q", name, cell.String())
		}
		if w < 0 {
			return nil, valueError(name, 0, "weight for %q must not be negative", name)
		}
		weights[j] = w
		total += w
	}

	if total <= 0 {
		return nil, valueError("", 0, "weight total must be greater than 0")
	}
	if policy.RequiredTotal > 0 && math.Abs(total-policy.RequiredTotal) > policy.Tolerance {
		return nil, valueError("", 0, "weights sum to %g, must sum to %g", total, policy.RequiredTotal)
	}

	normalized := make([]float64, n)
	for j, w := range weights {
		normalized[j] = w / total
	}
	return &WeightVector{raw: weights, normalized: normalized}, nil
}

// Len returns the number of weights.
func (w *WeightVector) Len() int { return len(w.raw) }

// Raw returns the weights as entered.
func (w *WeightVector) Raw() []float64 {
	out := make([]float64, len(w.raw))
	copy(out, w.raw)
	return out
}

// Normalized returns raw[j] / sum(raw).
func (w *WeightVector) Normalized() []float64 {
	out := make([]float64, len(w.normalized))
	copy(out, w.normalized)
	return out
}

// Sum returns the total of the raw weights.
func (w *WeightVector) Sum() float64 {
	var s float64
	for _, v := range w.raw {
		s += v
	}
	return s
}
