package mcda

import "sort"

// RankEntry places one alternative in the final order.
type RankEntry struct {
	Rank  int     `json:"rank"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Ranking is a total order over all alternatives, best first.
type Ranking []RankEntry

// Rank orders alternatives by descending score. Equal scores keep their
// input order, so the lower index ranks first.
func Rank(scores []float64) Ranking {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	out := make(Ranking, len(idx))
	for pos, i := range idx {
		out[pos] = RankEntry{Rank: pos + 1, Index: i, Score: scores[i]}
	}
	return out
}

// Indices returns the alternative indices in rank order.
func (r Ranking) Indices() []int {
	out := make([]int, len(r))
	for k, e := range r {
		out[k] = e.Index
	}
	return out
}
