package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVecConstraints(t *testing.T) {
	type tc struct {
		Name   string
		Assert func(o Oracle, v, w BitVec) BitVec
		V, W   uint64
	}

	for _, tt := range []tc{
		{
			Name: "constant",
			Assert: func(o Oracle, v, w BitVec) BitVec {
				o.Assert(v.EqConst(o.Circuit(), 5), w.EqConst(o.Circuit(), 9))
				return v
			},
			V: 5,
			W: 9,
		},
		{
			Name: "equal vectors",
			Assert: func(o Oracle, v, w BitVec) BitVec {
				c := o.Circuit()
				o.Assert(v.Eq(c, w), w.EqConst(c, 12))
				return v
			},
			V: 12,
			W: 12,
		},
		{
			Name: "zero",
			Assert: func(o Oracle, v, w BitVec) BitVec {
				c := o.Circuit()
				o.Assert(v.IsZero(c), w.EqConst(c, 1))
				return v
			},
			V: 0,
			W: 1,
		},
		{
			Name: "union",
			Assert: func(o Oracle, v, w BitVec) BitVec {
				c := o.Circuit()
				o.Assert(v.EqConst(c, 3), w.EqConst(c, 6))
				return Ors(c, v, w)
			},
			V: 7,
			W: 6,
		},
		{
			Name: "intersection",
			Assert: func(o Oracle, v, w BitVec) BitVec {
				c := o.Circuit()
				o.Assert(v.EqConst(c, 3), w.EqConst(c, 6))
				return v.And(c, w)
			},
			V: 2,
			W: 6,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			o := NewGini()
			c := o.Circuit()
			v, w := NewBitVec(c, 4), NewBitVec(c, 4)

			r := tt.Assert(o, v, w)
			require.Equal(t, Sat, o.Check(0))
			m := o.Model()
			assert.Equal(t, tt.V, r.Value(m))
			assert.Equal(t, tt.W, w.Value(m))
		})
	}
}

func TestBitVecDistinct(t *testing.T) {
	o := NewGini()
	c := o.Circuit()
	v := NewBitVec(c, 2)
	w := NewBitVec(c, 2)

	o.Assert(v.Eq(c, w).Not(), v.EqConst(c, 2), w.IsZero(c).Not())
	o.Assert(w.EqConst(c, 1).Not(), w.EqConst(c, 3).Not())

	assert.Equal(t, Unsat, o.Check(0))
}

func TestConstBitVec(t *testing.T) {
	c := NewGini().Circuit()
	v := ConstBitVec(c, 3, 5)

	assert.Equal(t, 3, v.Width())
	assert.Equal(t, c.T, v.Bit(0))
	assert.Equal(t, c.F, v.Bit(1))
	assert.Equal(t, c.T, v.Bit(2))
	assert.Equal(t, c.T, v.EqConst(c, 5))
	assert.Equal(t, c.F, v.EqConst(c, 4))
}

func TestBitVecWidthMismatch(t *testing.T) {
	c := NewGini().Circuit()
	assert.Panics(t, func() {
		NewBitVec(c, 2).Or(c, NewBitVec(c, 3))
	})
}
