package mcda

import (
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
)

// Input is the raw, unvalidated content of one scoring request. Columns has
// one entry per criterion in registry order; Weights one entry per criterion.
type Input struct {
	Names   []string `json:"names"`
	Columns [][]Cell `json:"columns"`
	Weights []Cell   `json:"weights"`
}

// RankingRow is one alternative's line in the final report, best first.
type RankingRow struct {
	Rank     int       `json:"rank"`
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	Score    float64   `json:"score"`
	SAWValue float64   `json:"saw_value"`
	Values   []float64 `json:"values"`
	RSAW     []float64 `json:"r_saw"`
	Y        []float64 `json:"y"`
	DPos     float64   `json:"d_pos"`
	DNeg     float64   `json:"d_neg"`

	// Dominated is set when another alternative is at least as good on every
	// criterion and strictly better on one.
	Dominated bool `json:"dominated"`
}

// Report bundles every intermediate of a scoring run for display.
type Report struct {
	Criteria   []criteria.Criterion `json:"criteria"`
	Names      []string             `json:"names"`
	RawMatrix  [][]float64          `json:"raw_matrix"`
	RawWeights []float64            `json:"weights_raw"`
	Weights    []float64            `json:"weights"`
	SAW        []float64            `json:"v_saw"`
	Result
	Ranking  []RankingRow `json:"ranking"`
	Frontier []int        `json:"frontier"`
}

// Winner returns the top-ranked alternative.
func (r *Report) Winner() RankingRow { return r.Ranking[0] }

// Evaluator runs the full validate, normalize, score and rank pipeline
// against a fixed criteria registry and weight policy. It holds no per-request
// state and is safe for concurrent use.
type Evaluator struct {
	registry *criteria.Registry
	policy   WeightPolicy
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(reg *criteria.Registry, policy WeightPolicy) *Evaluator {
	return &Evaluator{registry: reg, policy: policy}
}

// Registry returns the criteria registry the evaluator scores against.
func (e *Evaluator) Registry() *criteria.Registry { return e.registry }

// Policy returns the weight policy applied to raw weights.
func (e *Evaluator) Policy() WeightPolicy { return e.policy }

// Evaluate validates in and produces the full report. Validation failures
// come back as *ValidationError.
func (e *Evaluator) Evaluate(in Input) (*Report, error) {
	x, err := ValidateMatrix(e.registry, in.Names, in.Columns)
	if err != nil {
		return nil, err
	}
	w, err := ValidateWeights(e.registry, in.Weights, e.policy)
	if err != nil {
		return nil, err
	}

	res, err := Score(e.registry, x, w)
	if err != nil {
		return nil, fmt.Errorf("topsis: %w", err)
	}
	if err := checkFinite(e.registry, res); err != nil {
		return nil, err
	}
	v, err := Preference(res.Normalized, w.Normalized())
	if err != nil {
		return nil, fmt.Errorf("saw preference: %w", err)
	}

	frontier := Frontier(e.registry, x)
	onFrontier := make(map[int]bool, len(frontier))
	for _, i := range frontier {
		onFrontier[i] = true
	}

	names := x.Names()
	rows := make([]RankingRow, 0, x.Rows())
	for _, entry := range Rank(res.Score) {
		i := entry.Index
		rows = append(rows, RankingRow{
			Rank:     entry.Rank,
			Index:    i,
			Name:     names[i],
			Score:    entry.Score,
			SAWValue: v[i],
			Values:   x.Row(i),
			RSAW:     cloneRow(res.Normalized[i]),
			Y:        cloneRow(res.Weighted[i]),
			DPos:     res.DistPositive[i],
			DNeg:     res.DistNegative[i],

			Dominated: !onFrontier[i],
		})
	}

	display := w.Normalized()
	for j := range display {
		display[j] = roundTo(display[j], 6)
	}

	return &Report{
		Criteria:   e.registry.All(),
		Names:      names,
		RawMatrix:  x.Values(),
		RawWeights: w.Raw(),
		Weights:    display,
		SAW:        v,
		Result:     *res,
		Ranking:    rows,
		Frontier:   frontier,
	}, nil
}

// checkFinite rejects input whose normalized values, weighted values or
// distances overflow float64 even though every raw cell is finite.
func checkFinite(reg *criteria.Registry, res *Result) error {
	for i, row := range res.Normalized {
		for j, v := range row {
			if !isFinite(v) || !isFinite(res.Weighted[i][j]) {
				return valueError(reg.Name(j), i+1,
					"normalized value overflows for alternative #%d in column %q", i+1, reg.Name(j))
			}
		}
	}
	for i := range res.Score {
		if !isFinite(res.DistPositive[i]) || !isFinite(res.DistNegative[i]) || !isFinite(res.Score[i]) {
			return valueError("", i+1, "distance overflows for alternative #%d", i+1)
		}
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func cloneRow(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)
	return out
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
