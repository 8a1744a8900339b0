package cost

import (
	"fmt"
	"math/big"

	"github.com/chordsat/chordsat/pkg/chord"
	"github.com/chordsat/chordsat/pkg/corpus"
)

// Evaluate returns the cost of typing each gram of c once with the given
// layout.
func Evaluate(c *corpus.Corpus, t Table, chords []chord.Chord) ([]*big.Rat, error) {
	if len(chords) != c.Len() {
		return nil, fmt.Errorf("layout has %d chords for %d grams", len(chords), c.Len())
	}

	costs := make([]*big.Rat, len(chords))
	for i, ch := range chords {
		g := c.Grams[i]
		if k, ok := t.Match(ch); ok {
			costs[i] = new(big.Rat).Quo(t[k].Cost, big.NewRat(int64(g.Len()), 1))
			continue
		}
		if i < c.AlphabetSize {
			costs[i] = big.NewRat(NullSentinel, 1)
			continue
		}
		parts, err := c.Constituents(i)
		if err != nil {
			return nil, err
		}
		sum := new(big.Rat)
		for _, p := range parts {
			sum.Add(sum, costs[p])
		}
		costs[i] = sum
	}
	return costs, nil
}

// Discount returns the factor applied to typing a then b.
func (d Discounts) Discount(a, b chord.Chord) *big.Rat {
	fa, fb := a.Fingers(), b.Fingers()
	switch {
	case fa&fb == 0:
		return Rat(d.Stride)
	case fa&b == a&fb:
		return Rat(d.Stutter)
	default:
		return big.NewRat(1, 1)
	}
}

// EvaluatePairs returns the cost of every pair given the layout and the
// per-gram costs from Evaluate.
func EvaluatePairs(pairs []corpus.Pair, chords []chord.Chord, costs []*big.Rat, d Discounts) []*big.Rat {
	out := make([]*big.Rat, len(pairs))
	for b, pr := range pairs {
		r := new(big.Rat).Add(costs[pr.First], costs[pr.Second])
		r.Mul(r, big.NewRat(pr.Count, 1))
		out[b] = r.Mul(r, d.Discount(chords[pr.First], chords[pr.Second]))
	}
	return out
}

// WeightedTotal returns the sum of cost * frequency over every gram.
func WeightedTotal(c *corpus.Corpus, costs []*big.Rat) *big.Rat {
	total := new(big.Rat)
	for i, cost := range costs {
		total.Add(total, new(big.Rat).Mul(cost, big.NewRat(c.Grams[i].Frequency, 1)))
	}
	return total
}

// Total returns the sum of rs.
func Total(rs []*big.Rat) *big.Rat {
	total := new(big.Rat)
	for _, r := range rs {
		total.Add(total, r)
	}
	return total
}
