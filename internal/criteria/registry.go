package criteria

import (
	"fmt"
	"strings"
)

// Polarity says whether higher or lower raw values are preferable for a criterion.
type Polarity string

const (
	Benefit Polarity = "benefit"
	Cost    Polarity = "cost"
)

// ParsePolarity accepts "benefit" or "cost" in any case.
func ParsePolarity(s string) (Polarity, error) {
	switch Polarity(strings.ToLower(strings.TrimSpace(s))) {
	case Benefit:
		return Benefit, nil
	case Cost:
		return Cost, nil
	default:
		return "", fmt.Errorf("unknown polarity %q (want benefit or cost)", s)
	}
}

// Criterion is a single named decision criterion.
type Criterion struct {
	Name     string   `json:"name"`
	Polarity Polarity `json:"polarity"`
}

// Registry is an immutable ordered list of criteria. A criterion is identified
// by its position in the list.
type Registry struct {
	criteria []Criterion
	index    map[string]int
}

// New builds a registry from at least one criterion. Names must be unique,
// compared case-insensitively.
func New(list ...Criterion) (*Registry, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("at least one criterion is required")
	}

	r := &Registry{
		criteria: make([]Criterion, len(list)),
		index:    make(map[string]int, len(list)),
	}
	for j, c := range list {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("criterion #%d has no name", j+1)
		}
		p, err := ParsePolarity(string(c.Polarity))
		if err != nil {
			return nil, fmt.Errorf("criterion %q: %w", name, err)
		}
		key := strings.ToLower(name)
		if _, dup := r.index[key]; dup {
			return nil, fmt.Errorf("duplicate criterion %q", name)
		}
		r.index[key] = j
		r.criteria[j] = Criterion{Name: name, Polarity: p}
	}
	return r, nil
}

// Default returns the reference configuration used for content ranking.
func Default() *Registry {
	r, err := New(
		Criterion{Name: "Reach", Polarity: Benefit},
		Criterion{Name: "Views", Polarity: Benefit},
		Criterion{Name: "Engagement Rate", Polarity: Benefit},
		Criterion{Name: "Branding", Polarity: Benefit},
		Criterion{Name: "CTA", Polarity: Benefit},
		Criterion{Name: "Cost Production", Polarity: Cost},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of criteria.
func (r *Registry) Len() int { return len(r.criteria) }

// At returns the criterion at position j.
func (r *Registry) At(j int) Criterion { return r.criteria[j] }

// Polarity returns the polarity of the criterion at position j.
func (r *Registry) Polarity(j int) Polarity { return r.criteria[j].Polarity }

// Name returns the name of the criterion at position j.
func (r *Registry) Name(j int) string { return r.criteria[j].Name }

// Names returns the criterion names in order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.criteria))
	for j, c := range r.criteria {
		out[j] = c.Name
	}
	return out
}

// All returns a copy of the ordered criteria list.
func (r *Registry) All() []Criterion {
	out := make([]Criterion, len(r.criteria))
	copy(out, r.criteria)
	return out
}

// Index looks up a criterion position by name, ignoring case and surrounding space.
func (r *Registry) Index(name string) (int, bool) {
	j, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	return j, ok
}
