package cost

import (
	"fmt"
	"math/big"

	"github.com/go-air/gini/logic"

	"github.com/chordsat/chordsat/pkg/solver"
)

// Objective expresses throughput, characters typed per second, as
// Chars / Cost. Chars is a constant so that a lower bound on throughput
// is the linear bound Cost <= Chars / guess.
//
// With stride weight w, T characters in the corpus and B pair
// occurrences, the seconds spent per character are
//
//	(1-w) * Total/T + w * PairTotal/(2B)
//
// which gives Chars = T*2B and Cost = (1-w)*2B*Total + w*T*PairTotal.
// Without pairs, or with w = 0, Chars = T and Cost = Total.
type Objective struct {
	Chars *big.Rat
	Cost  solver.Sum

	totalCoef *big.Rat
	pairCoef  *big.Rat
}

// NewObjective combines the gram and pair costs. p may be nil when the
// stride weight is zero.
func NewObjective(m *Model, p *PairModel, strideWeight float64) (*Objective, error) {
	if strideWeight < 0 || strideWeight > 1 {
		return nil, fmt.Errorf("stride weight %g is outside [0, 1]", strideWeight)
	}
	chars := m.Encoding.Corpus.TotalFrequency()
	if chars <= 0 {
		return nil, fmt.Errorf("corpus has no characters to type")
	}
	t := big.NewRat(chars, 1)

	if p == nil || strideWeight == 0 {
		return &Objective{
			Chars:     t,
			Cost:      m.Total(),
			totalCoef: big.NewRat(1, 1),
			pairCoef:  new(big.Rat),
		}, nil
	}

	count := p.TotalCount()
	if count <= 0 {
		return nil, fmt.Errorf("stride weight %g needs pairs to type", strideWeight)
	}
	twoB := big.NewRat(2*count, 1)
	w := Rat(strideWeight)
	oneMinusW := new(big.Rat).Sub(big.NewRat(1, 1), w)

	ob := &Objective{
		Chars:     new(big.Rat).Mul(t, twoB),
		totalCoef: new(big.Rat).Mul(oneMinusW, twoB),
		pairCoef:  new(big.Rat).Mul(w, t),
	}
	ob.Cost = m.Total().Scale(ob.totalCoef).Plus(p.PairTotal().Scale(ob.pairCoef))
	return ob, nil
}

// Bound builds the accumulator used to bound Cost.
func (ob *Objective) Bound(c *logic.C) (*solver.Accumulator, error) {
	return solver.NewAccumulator(c, ob.Cost)
}

// CostOf combines concrete totals the same way Cost combines the
// symbolic ones.
func (ob *Objective) CostOf(total, pairTotal *big.Rat) *big.Rat {
	r := new(big.Rat).Mul(ob.totalCoef, total)
	return r.Add(r, new(big.Rat).Mul(ob.pairCoef, pairTotal))
}

// Throughput returns Chars / cost, or 0 for a zero cost.
func (ob *Objective) Throughput(cost *big.Rat) float64 {
	if cost.Sign() == 0 {
		return 0
	}
	f, _ := new(big.Rat).Quo(ob.Chars, cost).Float64()
	return f
}

// ModelThroughput evaluates the throughput of a satisfying model.
func (ob *Objective) ModelThroughput(m solver.Model) float64 {
	return ob.Throughput(ob.Cost.Value(m))
}
