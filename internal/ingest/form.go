package ingest

import (
	"fmt"
	"net/url"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

// FieldNames carries the alternative names. Criterion j's values arrive as
// c{j}[] and its weight as w{j}.
const FieldNames = "name[]"

// ValuesField returns the form field carrying criterion j's values.
func ValuesField(j int) string { return fmt.Sprintf("c%d[]", j) }

// WeightField returns the form field carrying criterion j's weight.
func WeightField(j int) string { return fmt.Sprintf("w%d", j) }

// ParseForm maps submitted form fields onto a scoring input. It does no
// numeric validation; absent fields become empty cells so the validators
// can report them.
func ParseForm(reg *criteria.Registry, form url.Values) mcda.Input {
	n := reg.Len()
	in := mcda.Input{
		Names:   form[FieldNames],
		Columns: make([][]mcda.Cell, n),
		Weights: make([]mcda.Cell, n),
	}
	for j := 0; j < n; j++ {
		in.Columns[j] = mcda.TextCells(form[ValuesField(j)])
		if vs, ok := form[WeightField(j)]; ok && len(vs) > 0 {
			in.Weights[j] = mcda.TextCell(vs[0])
		} else {
			in.Weights[j] = mcda.EmptyCell()
		}
	}
	return in
}
