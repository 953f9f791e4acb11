package mcda

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellUnmarshalJSON(t *testing.T) {
	var cells []Cell
	require.NoError(t, json.Unmarshal([]byte(`[1.5, "2", null, " "]`), &cells))
	require.Len(t, cells, 4)

	v, err := cells[0].Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = cells[1].Float()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	assert.True(t, cells[2].IsBlank())
	assert.True(t, cells[3].IsBlank())

	err = json.Unmarshal([]byte(`[true]`), &cells)
	assert.Error(t, err)
}

func TestCellFloatRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "+Inf", "1e400"} {
		_, err := TextCell(raw).Float()
		assert.Error(t, err, raw)
	}
}
