package chord

import (
	"github.com/chordsat/chordsat/pkg/solver"
)

// AssertComposition requires the chord of every multi-character gram to
// be either Null or exactly the union of its characters' chords.
func (e *Encoding) AssertComposition(o solver.Oracle) {
	c := o.Circuit()
	for i := e.Corpus.AlphabetSize; i < e.Len(); i++ {
		parts := make([]solver.BitVec, 0, len(e.constituents[i]))
		for _, p := range e.constituents[i] {
			parts = append(parts, e.Assign[p])
		}
		union := solver.Ors(c, parts...)
		o.Assert(c.Or(e.zero[i], e.Assign[i].Eq(c, union)))
	}
}
