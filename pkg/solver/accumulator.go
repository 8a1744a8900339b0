package solver

import (
	"fmt"
	"math/big"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Accumulator encodes the value of a Sum with non-negative
// coefficients as a binary number in a circuit, so that bounds on the
// sum can be asserted exactly.
//
// Every coefficient is brought to the common denominator of the sum.
// Each resulting integer weight contributes its literal to the column
// of every set bit, and the columns are then reduced with full and
// half adders until a single literal per bit remains.
type Accumulator struct {
	c     *logic.C
	scale *big.Int
	bits  []z.Lit
}

// NewAccumulator builds the adder network for s in c.
func NewAccumulator(c *logic.C, s Sum) (*Accumulator, error) {
	scale := big.NewInt(1)
	for _, t := range s.Terms {
		if t.Coefficient.Sign() < 0 {
			return nil, fmt.Errorf("negative coefficient %s", t.Coefficient.RatString())
		}
		scale = lcm(scale, t.Coefficient.Denom())
	}

	var columns [][]z.Lit
	w, q := new(big.Int), new(big.Int)
	for _, t := range s.Terms {
		if t.Lit == c.F || t.Coefficient.Sign() == 0 {
			continue
		}
		q.Quo(scale, t.Coefficient.Denom())
		w.Mul(t.Coefficient.Num(), q)
		for j := 0; j < w.BitLen(); j++ {
			if w.Bit(j) == 1 {
				columns = addToColumn(columns, j, t.Lit)
			}
		}
	}

	for j := 0; j < len(columns); j++ {
		col := columns[j]
		for len(col) > 1 {
			if len(col) >= 3 {
				sum, carry := fullAdd(c, col[0], col[1], col[2])
				col = append(col[3:], sum)
				columns = addToColumn(columns, j+1, carry)
				continue
			}
			sum, carry := halfAdd(c, col[0], col[1])
			col = append(col[2:], sum)
			columns = addToColumn(columns, j+1, carry)
		}
		columns[j] = col
	}

	bits := make([]z.Lit, len(columns))
	for j, col := range columns {
		if len(col) == 0 {
			bits[j] = c.F
			continue
		}
		bits[j] = col[0]
	}
	return &Accumulator{c: c, scale: scale, bits: bits}, nil
}

// Width returns the number of bits needed to hold the largest value
// of the sum.
func (a *Accumulator) Width() int {
	return len(a.bits)
}

// Scale returns the common denominator of the sum's coefficients.
func (a *Accumulator) Scale() *big.Int {
	return new(big.Int).Set(a.scale)
}

// Leq returns a literal that is true iff the sum is at most bound.
func (a *Accumulator) Leq(bound *big.Rat) z.Lit {
	c := a.c
	if bound.Sign() < 0 {
		return c.F
	}
	scaled := new(big.Rat).Mul(bound, new(big.Rat).SetInt(a.scale))
	b := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	if b.BitLen() > len(a.bits) {
		return c.T
	}

	gt, eq := c.F, c.T
	for i := len(a.bits) - 1; i >= 0; i-- {
		v := a.bits[i]
		if b.Bit(i) == 1 {
			eq = c.And(eq, v)
			continue
		}
		gt = c.Or(gt, c.And(eq, v))
		eq = c.And(eq, v.Not())
	}
	return gt.Not()
}

// Value reads the encoded sum from a model.
func (a *Accumulator) Value(m Model) *big.Rat {
	n := new(big.Int)
	for i, b := range a.bits {
		if m.Value(b) {
			n.SetBit(n, i, 1)
		}
	}
	return new(big.Rat).SetFrac(n, a.scale)
}

func addToColumn(columns [][]z.Lit, j int, m z.Lit) [][]z.Lit {
	for len(columns) <= j {
		columns = append(columns, nil)
	}
	columns[j] = append(columns[j], m)
	return columns
}

func fullAdd(c *logic.C, a, b, d z.Lit) (sum, carry z.Lit) {
	ab := c.Xor(a, b)
	sum = c.Xor(ab, d)
	carry = c.Or(c.And(a, b), c.And(d, ab))
	return
}

func halfAdd(c *logic.C, a, b z.Lit) (sum, carry z.Lit) {
	return c.Xor(a, b), c.And(a, b)
}

func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	r := new(big.Int).Quo(a, g)
	return r.Mul(r, b)
}
