package solver

import (
	"math/big"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Term is a single product of a rational coefficient and the 0/1
// value of a literal.
type Term struct {
	Coefficient *big.Rat
	Lit         z.Lit
}

// Sum is a real-valued linear expression over literals. The zero value
// is the constant 0.
//
// Coefficients are shared between sums derived from one another and
// must not be mutated in place.
type Sum struct {
	Terms []Term
}

// Add appends coef * [m] to s. Zero coefficients are dropped.
func (s *Sum) Add(coef *big.Rat, m z.Lit) {
	if coef.Sign() == 0 {
		return
	}
	s.Terms = append(s.Terms, Term{Coefficient: coef, Lit: m})
}

// Plus returns s + o.
func (s Sum) Plus(o Sum) Sum {
	terms := make([]Term, 0, len(s.Terms)+len(o.Terms))
	terms = append(terms, s.Terms...)
	terms = append(terms, o.Terms...)
	return Sum{Terms: terms}
}

// Scale returns k * s.
func (s Sum) Scale(k *big.Rat) Sum {
	if k.Sign() == 0 {
		return Sum{}
	}
	terms := make([]Term, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = Term{
			Coefficient: new(big.Rat).Mul(k, t.Coefficient),
			Lit:         t.Lit,
		}
	}
	return Sum{Terms: terms}
}

// Gate returns the sum whose value equals s when guard is true and 0
// otherwise.
func (s Sum) Gate(c *logic.C, guard z.Lit) Sum {
	var r Sum
	for _, t := range s.Terms {
		m := c.And(guard, t.Lit)
		if m == c.F {
			continue
		}
		r.Terms = append(r.Terms, Term{Coefficient: t.Coefficient, Lit: m})
	}
	return r
}

// Value evaluates s under a model.
func (s Sum) Value(m Model) *big.Rat {
	r := new(big.Rat)
	for _, t := range s.Terms {
		if m.Value(t.Lit) {
			r.Add(r, t.Coefficient)
		}
	}
	return r
}

// Len returns the number of terms in s.
func (s Sum) Len() int {
	return len(s.Terms)
}
