package chord

import (
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/solver"
)

// Encoding holds the symbolic chord of every gram in a corpus. Assign[i]
// is the chord of gram i and Usage[i] its finger usage pattern.
type Encoding struct {
	Corpus *corpus.Corpus
	Assign []solver.BitVec
	Usage  []solver.BitVec

	constituents [][]int
	zero         []z.Lit
}

// Encode declares one chord and one finger usage vector per gram of c and
// asserts, permanently, that every chord is legal, that no two grams
// share a chord other than Null, that single characters are never Null
// and that Usage is exactly the fingers pressed by Assign.
func Encode(o solver.Oracle, c *corpus.Corpus) (*Encoding, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	circ := o.Circuit()
	n := c.Len()
	e := &Encoding{
		Corpus:       c,
		Assign:       make([]solver.BitVec, n),
		Usage:        make([]solver.BitVec, n),
		constituents: make([][]int, n),
		zero:         make([]z.Lit, n),
	}

	for i := range c.Grams {
		if i >= c.AlphabetSize {
			parts, err := c.Constituents(i)
			if err != nil {
				return nil, errors.Wrap(err, "encoding corpus")
			}
			e.constituents[i] = parts
		} else {
			e.constituents[i] = []int{i}
		}

		g := solver.NewBitVec(circ, Width)
		u := solver.NewBitVec(circ, Width)
		e.Assign[i], e.Usage[i] = g, u
		e.zero[i] = g.IsZero(circ)

		for f := Index; f <= Pinky; f++ {
			l, m, r := Bit(f, Left), Bit(f, Center), Bit(f, Right)
			o.Assert(circ.And(g[l], g[r]).Not())

			o.Assert(
				circ.Xor(u[l], u[m]).Not(),
				circ.Xor(u[l], u[r]).Not(),
				circ.Xor(u[r], circ.Ors(g[l], g[m], g[r])).Not(),
			)
		}

		if i < c.AlphabetSize {
			o.Assert(e.zero[i].Not())
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			o.Assert(circ.Or(e.zero[i], e.Assign[i].Eq(circ, e.Assign[j]).Not()))
		}
	}

	return e, nil
}

// Len returns the number of encoded grams.
func (e *Encoding) Len() int {
	return len(e.Assign)
}

// Constituents returns the positions of the single characters making up
// gram i. A single character is its own constituent.
func (e *Encoding) Constituents(i int) []int {
	return e.constituents[i]
}

// IsNull returns the literal that holds when gram i has no chord.
func (e *Encoding) IsNull(i int) z.Lit {
	return e.zero[i]
}

// Chords reads every gram's chord from m.
func (e *Encoding) Chords(m solver.Model) []Chord {
	chords := make([]Chord, len(e.Assign))
	for i, g := range e.Assign {
		chords[i] = Chord(g.Value(m))
	}
	return chords
}

// Usages reads every gram's finger usage pattern from m.
func (e *Encoding) Usages(m solver.Model) []Chord {
	usages := make([]Chord, len(e.Usage))
	for i, u := range e.Usage {
		usages[i] = Chord(u.Value(m))
	}
	return usages
}

// lits returns the literals of v at the bits set in mask.
func lits(v solver.BitVec, mask Chord) []z.Lit {
	var ms []z.Lit
	for k := 0; k < Width; k++ {
		if mask&(1<<uint(k)) != 0 {
			ms = append(ms, v[k])
		}
	}
	return ms
}
