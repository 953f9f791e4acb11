package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	require.Equal(t, 6, r.Len())
	assert.Equal(t, []string{"Reach", "Views", "Engagement Rate", "Branding", "CTA", "Cost Production"}, r.Names())
	for j := 0; j < 5; j++ {
		assert.Equal(t, Benefit, r.Polarity(j), "criterion %d", j)
	}
	assert.Equal(t, Cost, r.Polarity(5))
}

func TestParsePolarity(t *testing.T) {
	tests := []struct {
		in      string
		want    Polarity
		wantErr bool
	}{
		{"benefit", Benefit, false},
		{"COST", Cost, false},
		{" Benefit ", Benefit, false},
		{"max", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolarity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := New()
		assert.Error(t, err)
	})
	t.Run("blank name", func(t *testing.T) {
		_, err := New(Criterion{Name: "  ", Polarity: Benefit})
		assert.Error(t, err)
	})
	t.Run("duplicate", func(t *testing.T) {
		_, err := New(Criterion{Name: "Price", Polarity: Cost}, Criterion{Name: "price", Polarity: Benefit})
		assert.ErrorContains(t, err, "duplicate")
	})
	t.Run("bad polarity", func(t *testing.T) {
		_, err := New(Criterion{Name: "Price", Polarity: "cheap"})
		assert.ErrorContains(t, err, "Price")
	})
}

func TestIndexIsCaseInsensitive(t *testing.T) {
	r := Default()
	j, ok := r.Index("  engagement rate ")
	require.True(t, ok)
	assert.Equal(t, 2, j)

	_, ok = r.Index("Likes")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	r := Default()
	all := r.All()
	all[0].Name = "changed"
	assert.Equal(t, "Reach", r.Name(0))
}
