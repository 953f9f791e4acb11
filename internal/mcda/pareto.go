package mcda

import "github.com/MikeSquared-Agency/Decide/internal/criteria"

// Frontier returns the indices, ascending, of the alternatives in x that no
// other alternative dominates on the raw values. Higher is better on benefit
// criteria and lower is better on cost criteria. Weights play no part.
// O(m^2·N) dominance check, fine for hand-entered matrices.
func Frontier(reg *criteria.Registry, x *DecisionMatrix) []int {
	m := x.Rows()
	frontier := make([]int, 0, m)
	for i := 0; i < m; i++ {
		dominated := false
		for k := 0; k < m; k++ {
			if i == k {
				continue
			}
			if dominates(reg, x, k, i) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, i)
		}
	}
	return frontier
}

// dominates reports whether alternative a is at least as good as b on every
// criterion and strictly better on at least one.
func dominates(reg *criteria.Registry, x *DecisionMatrix, a, b int) bool {
	strict := false
	for j := 0; j < reg.Len(); j++ {
		va, vb := x.At(a, j), x.At(b, j)
		if reg.Polarity(j) == criteria.Cost {
			va, vb = -va, -vb
		}
		if va < vb {
			return false
		}
		if va > vb {
			strict = true
		}
	}
	return strict
}
