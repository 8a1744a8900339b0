package cost

import (
	"math/big"

	"github.com/go-air/gini/z"

	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/solver"
)

// Discounts scale the cost of typing two characters in a row.
type Discounts struct {
	// Stride applies when the two chords use disjoint fingers.
	Stride float64
	// Stutter applies when the fingers overlap but press the same
	// buttons on each other's fingers.
	Stutter float64
}

// DefaultDiscounts returns the factors measured for the Twiddler 3.
func DefaultDiscounts() Discounts {
	return Discounts{Stride: 0.5, Stutter: 0.75}
}

// PairModel is the symbolic cost of typing each bigram of a pair corpus
// as two consecutive chords.
type PairModel struct {
	Pairs []corpus.Pair
	// Stride[b] and Stutter[b] tell which discount applies to pair b.
	Stride  []z.Lit
	Stutter []z.Lit
	// PairCost[b] is discount * (Cost[first] + Cost[second]) * count.
	PairCost []solver.Sum
}

// BuildPairs defines the cost of every pair. With F and G the finger
// usage and chord of each character, the stride discount applies when
// F1 & F2 == 0, otherwise the stutter discount when F1 & G2 == G1 & F2,
// otherwise none.
func BuildPairs(o solver.Oracle, m *Model, pairs []corpus.Pair, d Discounts) *PairModel {
	c := o.Circuit()
	e := m.Encoding
	stride, stutter := Rat(d.Stride), Rat(d.Stutter)

	p := &PairModel{
		Pairs:    pairs,
		Stride:   make([]z.Lit, len(pairs)),
		Stutter:  make([]z.Lit, len(pairs)),
		PairCost: make([]solver.Sum, len(pairs)),
	}
	for b, pr := range pairs {
		g1, f1 := e.Assign[pr.First], e.Usage[pr.First]
		g2, f2 := e.Assign[pr.Second], e.Usage[pr.Second]

		disjoint := f1.And(c, f2).IsZero(c)
		same := f1.And(c, g2).Eq(c, g1.And(c, f2))
		p.Stride[b] = disjoint
		p.Stutter[b] = c.And(disjoint.Not(), same)
		plain := c.And(disjoint.Not(), same.Not())

		base := m.Cost[pr.First].Plus(m.Cost[pr.Second]).Scale(big.NewRat(pr.Count, 1))
		p.PairCost[b] = base.Gate(c, p.Stride[b]).Scale(stride).
			Plus(base.Gate(c, p.Stutter[b]).Scale(stutter)).
			Plus(base.Gate(c, plain))
	}
	return p
}

// CumulativePairCost returns the sum of the costs of pairs 0..i.
func (p *PairModel) CumulativePairCost(i int) solver.Sum {
	var sum solver.Sum
	for b := 0; b <= i; b++ {
		sum.Terms = append(sum.Terms, p.PairCost[b].Terms...)
	}
	return sum
}

// PairTotal returns the cost of typing every pair once per occurrence.
func (p *PairModel) PairTotal() solver.Sum {
	return p.CumulativePairCost(len(p.PairCost) - 1)
}

// TotalCount returns the number of pair occurrences.
func (p *PairModel) TotalCount() int64 {
	var total int64
	for _, pr := range p.Pairs {
		total += pr.Count
	}
	return total
}
