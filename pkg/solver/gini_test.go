package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiniScopes(t *testing.T) {
	assert := assert.New(t)

	o := NewGini()
	c := o.Circuit()
	a, b := c.Lit(), c.Lit()

	o.Assert(c.Or(a, b))
	assert.Equal(Sat, o.Check(0))
	assert.Equal(0, o.Depth())

	o.Push()
	o.Assert(a.Not(), b.Not())
	assert.Equal(1, o.Depth())
	assert.Equal(Unsat, o.Check(0))

	assert.NoError(o.Pop())
	assert.Equal(0, o.Depth())
	assert.Equal(Sat, o.Check(0))
}

func TestGiniNestedScopes(t *testing.T) {
	assert := assert.New(t)

	o := NewGini()
	c := o.Circuit()
	a, b := c.Lit(), c.Lit()

	o.Push()
	o.Assert(a)
	o.Push()
	o.Assert(b.Not())
	assert.Equal(2, o.Depth())
	assert.Equal(Sat, o.Check(0))
	m := o.Model()
	assert.True(m.Value(a))
	assert.False(m.Value(b))

	o.Assert(c.And(a, b))
	assert.Equal(Unsat, o.Check(0))

	require.NoError(t, o.Pop())
	o.Assert(b)
	assert.Equal(Sat, o.Check(0))
	assert.True(o.Model().Value(c.And(a, b)))

	require.NoError(t, o.Pop())
	o.Assert(a.Not())
	assert.Equal(Sat, o.Check(0))
	assert.False(o.Model().Value(a))
}

func TestGiniPopUnderflow(t *testing.T) {
	o := NewGini()
	assert.ErrorIs(t, o.Pop(), ErrScopeUnderflow)

	o.Push()
	assert.NoError(t, o.Pop())
	assert.ErrorIs(t, o.Pop(), ErrScopeUnderflow)
}

func TestGiniModelSurvivesFailedCheck(t *testing.T) {
	assert := assert.New(t)

	o := NewGini()
	c := o.Circuit()
	a := c.Lit()

	assert.Nil(o.Model())

	o.Assert(a)
	assert.Equal(Sat, o.Check(0))

	o.Push()
	o.Assert(a.Not())
	assert.Equal(Unsat, o.Check(0))
	assert.NoError(o.Pop())

	m := o.Model()
	if assert.NotNil(m) {
		assert.True(m.Value(a))
		assert.False(m.Value(a.Not()))
	}
}

func TestGiniPermanentAssertionsPersist(t *testing.T) {
	o := NewGiniCap(16)
	c := o.Circuit()
	a := c.Lit()

	o.Assert(a.Not())
	o.Push()
	o.Assert(a)
	assert.Equal(t, Unsat, o.Check(0))
	assert.NoError(t, o.Pop())

	o.Push()
	o.Assert(a)
	assert.Equal(t, Unsat, o.Check(0))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "sat", Sat.String())
	assert.Equal(t, "unsat", Unsat.String())
	assert.Equal(t, "unknown", Unknown.String())
}
