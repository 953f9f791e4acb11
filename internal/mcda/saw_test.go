package mcda

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSAW(t *testing.T) {
	reg := newRegistry(t, benefit("Reach"), cost("Cost"))

	t.Run("benefit and cost", func(t *testing.T) {
		x := mustMatrix(t, reg, []string{"A", "B", "C"}, [][]float64{
			{10, 2},
			{5, 4},
			{2.5, 8},
		})
		r, err := NormalizeSAW(reg, x)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{
			{1, 1},
			{0.5, 0.5},
			{0.25, 0.25},
		}, r)
	})

	t.Run("all-zero benefit column", func(t *testing.T) {
		x := mustMatrix(t, reg, []string{"A", "B"}, [][]float64{{0, 1}, {0, 2}})
		r, err := NormalizeSAW(reg, x)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r[0][0])
		assert.Equal(t, 0.0, r[1][0])
	})

	t.Run("zero-cost cell", func(t *testing.T) {
		x := mustMatrix(t, reg, []string{"A", "B"}, [][]float64{{1, 0}, {2, 5}})
		r, err := NormalizeSAW(reg, x)
		require.NoError(t, err)
		// The zero minimum drags every cost cell to 0, not just the zero one.
		assert.Equal(t, 0.0, r[0][1])
		assert.Equal(t, 0.0, r[1][1])
	})

	t.Run("negative costs", func(t *testing.T) {
		neg := mustMatrix(t, reg, []string{"A", "B", "C"}, [][]float64{{1, -2}, {1, 0}, {1, 4}})
		r, err := NormalizeSAW(reg, neg)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r[0][1])
		assert.Equal(t, 0.0, r[1][1])
		assert.Equal(t, -0.5, r[2][1])
	})

	t.Run("maximum benefit and minimum cost map to one", func(t *testing.T) {
		x := mustMatrix(t, reg, []string{"A", "B", "C", "D"}, [][]float64{
			{3.7, 19.3},
			{12.9, 7.1},
			{0.4, 11},
			{8.8, 7.2},
		})
		r, err := NormalizeSAW(reg, x)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r[1][0])
		assert.Equal(t, 1.0, r[1][1])
		for i := range r {
			for j := range r[i] {
				assert.GreaterOrEqual(t, r[i][j], 0.0)
				assert.LessOrEqual(t, r[i][j], 1.0)
			}
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		other := newRegistry(t, benefit("Reach"))
		x := mustMatrix(t, other, []string{"A", "B"}, [][]float64{{1}, {2}})
		_, err := NormalizeSAW(reg, x)
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
	})
}

func TestPreference(t *testing.T) {
	v, err := Preference([][]float64{{1, 0.5}, {0.25, 1}}, []float64{0.6, 0.4})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, v[0], 1e-12)
	assert.InDelta(t, 0.55, v[1], 1e-12)

	_, err = Preference([][]float64{{1}}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
