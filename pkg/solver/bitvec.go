package solver

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// BitVec is a fixed-width vector of literals, least significant bit
// first.
type BitVec []z.Lit

// NewBitVec returns a vector of width fresh inputs of c.
func NewBitVec(c *logic.C, width int) BitVec {
	v := make(BitVec, width)
	for i := range v {
		v[i] = c.Lit()
	}
	return v
}

// ConstBitVec returns the constant vector holding value.
func ConstBitVec(c *logic.C, width int, value uint64) BitVec {
	v := make(BitVec, width)
	for i := range v {
		if value&(1<<uint(i)) != 0 {
			v[i] = c.T
		} else {
			v[i] = c.F
		}
	}
	return v
}

// Width returns the number of bits in v.
func (v BitVec) Width() int {
	return len(v)
}

// Bit returns the literal of bit k.
func (v BitVec) Bit(k int) z.Lit {
	return v[k]
}

// Or returns the bitwise union of v and w.
func (v BitVec) Or(c *logic.C, w BitVec) BitVec {
	mustSameWidth(v, w)
	r := make(BitVec, len(v))
	for i := range v {
		r[i] = c.Or(v[i], w[i])
	}
	return r
}

// And returns the bitwise intersection of v and w.
func (v BitVec) And(c *logic.C, w BitVec) BitVec {
	mustSameWidth(v, w)
	r := make(BitVec, len(v))
	for i := range v {
		r[i] = c.And(v[i], w[i])
	}
	return r
}

// Ors returns the bitwise union of all vs, which must be non-empty.
func Ors(c *logic.C, vs ...BitVec) BitVec {
	r := vs[0]
	for _, v := range vs[1:] {
		r = r.Or(c, v)
	}
	return r
}

// Eq returns a literal that is true iff v and w hold the same value.
func (v BitVec) Eq(c *logic.C, w BitVec) z.Lit {
	mustSameWidth(v, w)
	same := make([]z.Lit, len(v))
	for i := range v {
		same[i] = c.Xor(v[i], w[i]).Not()
	}
	return c.Ands(same...)
}

// EqConst returns a literal that is true iff v holds value.
func (v BitVec) EqConst(c *logic.C, value uint64) z.Lit {
	same := make([]z.Lit, len(v))
	for i := range v {
		if value&(1<<uint(i)) != 0 {
			same[i] = v[i]
		} else {
			same[i] = v[i].Not()
		}
	}
	return c.Ands(same...)
}

// IsZero returns a literal that is true iff no bit of v is set.
func (v BitVec) IsZero(c *logic.C) z.Lit {
	return c.Ors(v...).Not()
}

// Value reads v from a model.
func (v BitVec) Value(m Model) uint64 {
	var r uint64
	for i, b := range v {
		if m.Value(b) {
			r |= 1 << uint(i)
		}
	}
	return r
}

func mustSameWidth(v, w BitVec) {
	if len(v) != len(w) {
		panic("bit-vector width mismatch")
	}
}
