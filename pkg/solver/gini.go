package solver

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// giniOracle implements Oracle on top of a single gini instance.
//
// Circuit definitions are translated to CNF lazily, right before each
// Check, using the marks left by the previous translation so that no
// gate is added twice. Depth-0 assertions become unit clauses. Scoped
// assertions are never added as clauses: they are re-assumed on every
// Check, which is what makes Pop free.
type giniOracle struct {
	g      *gini.Gini
	c      *logic.C
	marks  []int8
	roots  []z.Lit   // every root asserted since the last Check
	units  []z.Lit   // depth-0 roots still to be added as clauses
	frames [][]z.Lit // assumptions of each open scope
	model  *snapshot
}

// NewGini returns an Oracle backed by the gini SAT solver.
func NewGini() Oracle {
	return newGiniOracle(0)
}

// NewGiniCap is like NewGini but preallocates room for capHint
// circuit nodes.
func NewGiniCap(capHint int) Oracle {
	return newGiniOracle(capHint)
}

func newGiniOracle(capHint int) *giniOracle {
	if capHint <= 0 {
		capHint = 1024
	}
	return &giniOracle{
		g: gini.NewV(capHint),
		c: logic.NewCCap(capHint),
	}
}

func (o *giniOracle) Circuit() *logic.C {
	return o.c
}

func (o *giniOracle) Assert(ms ...z.Lit) {
	for _, m := range ms {
		if m == o.c.T {
			continue
		}
		o.roots = append(o.roots, m)
		if len(o.frames) == 0 {
			o.units = append(o.units, m)
			continue
		}
		top := len(o.frames) - 1
		o.frames[top] = append(o.frames[top], m)
	}
}

func (o *giniOracle) Push() {
	o.frames = append(o.frames, nil)
}

func (o *giniOracle) Pop() error {
	if len(o.frames) == 0 {
		return ErrScopeUnderflow
	}
	o.frames = o.frames[:len(o.frames)-1]
	return nil
}

func (o *giniOracle) Depth() int {
	return len(o.frames)
}

func (o *giniOracle) Check(timeout time.Duration) Result {
	o.marks, _ = o.c.CnfSince(o.g, o.marks, o.roots...)
	o.roots = o.roots[:0]
	for _, m := range o.units {
		o.g.Add(m)
		o.g.Add(0)
	}
	o.units = o.units[:0]

	for _, frame := range o.frames {
		o.g.Assume(frame...)
	}

	var res int
	if timeout > 0 {
		res = o.g.Try(timeout)
	} else {
		res = o.g.Solve()
	}

	result := Result(res)
	if result == Sat {
		o.model = o.snapshot()
	}
	return result
}

func (o *giniOracle) Model() Model {
	if o.model == nil {
		return nil
	}
	return o.model
}

// snapshot copies the current assignment so that it outlives
// subsequent calls to Check. Inputs come from the solver and every gate
// of the circuit is then re-evaluated, so literals that were never
// translated to clauses still read consistently.
func (o *giniOracle) snapshot() *snapshot {
	n := o.c.Len()
	max := o.g.MaxVar()
	if int(max)+1 > n {
		n = int(max) + 1
	}
	vals := make([]bool, n)
	for v := z.Var(1); v <= max; v++ {
		vals[v] = o.g.Value(v.Pos())
	}
	o.c.Eval(vals)
	return &snapshot{vals: vals}
}

type snapshot struct {
	vals []bool
}

// Value reports the value of m. Inputs the solver never saw are
// unconstrained and read as false.
func (s *snapshot) Value(m z.Lit) bool {
	v := int(m.Var())
	val := false
	if v < len(s.vals) {
		val = s.vals[v]
	}
	if !m.IsPos() {
		return !val
	}
	return val
}
