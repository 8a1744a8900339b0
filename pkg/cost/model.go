package cost

import (
	"math/big"

	"github.com/go-air/gini/z"

	"github.com/chordsat/chordsat/pkg/chord"
	"github.com/chordsat/chordsat/pkg/solver"
)

// Model is the symbolic press cost of every gram of an encoding.
type Model struct {
	Encoding *chord.Encoding
	Table    Table
	// Fire[i][k] holds when case k is the first case of Table matching
	// gram i's chord.
	Fire [][]z.Lit
	// Null[i] holds when no case matches, that is when gram i has no
	// chord.
	Null []z.Lit
	// Cost[i] is the cost of typing gram i once.
	Cost []solver.Sum
}

// Build defines the cost of every gram of e. A gram with a chord costs
// its first matching case divided by its length. A longer gram without
// one costs the sum of its characters' costs.
func Build(o solver.Oracle, e *chord.Encoding, t Table) (*Model, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	c := o.Circuit()
	n := e.Len()
	m := &Model{
		Encoding: e,
		Table:    t,
		Fire:     make([][]z.Lit, n),
		Null:     make([]z.Lit, n),
		Cost:     make([]solver.Sum, n),
	}

	for i := 0; i < n; i++ {
		g := e.Assign[i]
		length := big.NewRat(int64(e.Corpus.Grams[i].Len()), 1)

		fire := make([]z.Lit, len(t))
		taken := c.F
		var sum solver.Sum
		for k, cs := range t {
			match := c.T
			for b := 0; b < chord.Width; b++ {
				if cs.Mask&(1<<uint(b)) != 0 {
					match = c.And(match, g[b])
				}
			}
			fire[k] = c.And(match, taken.Not())
			taken = c.Or(taken, match)
			sum.Add(new(big.Rat).Quo(cs.Cost, length), fire[k])
		}
		m.Fire[i] = fire
		m.Null[i] = taken.Not()

		// Characters are never Null, so their fallback never applies.
		if i >= e.Corpus.AlphabetSize {
			var fallback solver.Sum
			for _, p := range e.Constituents(i) {
				fallback = fallback.Plus(m.Cost[p])
			}
			sum = sum.Plus(fallback.Gate(c, m.Null[i]))
		}
		m.Cost[i] = sum
	}
	return m, nil
}

// Weighted returns Cost[i] * frequency of gram i.
func (m *Model) Weighted(i int) solver.Sum {
	return m.Cost[i].Scale(big.NewRat(m.Encoding.Corpus.Grams[i].Frequency, 1))
}

// CumulativeCost returns the sum of the weighted costs of grams 0..i.
func (m *Model) CumulativeCost(i int) solver.Sum {
	var sum solver.Sum
	for j := 0; j <= i; j++ {
		sum.Terms = append(sum.Terms, m.Weighted(j).Terms...)
	}
	return sum
}

// Total returns the cost of typing the whole corpus once per
// occurrence.
func (m *Model) Total() solver.Sum {
	return m.CumulativeCost(m.Encoding.Len() - 1)
}

// Costs reads every gram's cost from a model.
func (m *Model) Costs(sm solver.Model) []*big.Rat {
	costs := make([]*big.Rat, len(m.Cost))
	for i, s := range m.Cost {
		costs[i] = s.Value(sm)
	}
	return costs
}
