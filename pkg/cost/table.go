package cost

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/chordsat/chordsat/pkg/chord"
)

// NullSentinel is the cost of a single character without a chord. The
// encoding never allows one, so it only has to dominate every real cost.
const NullSentinel = 100000

// Case is one row of a cost table: a chord containing every button of
// Mask costs Cost to press.
type Case struct {
	Name string
	Mask chord.Chord
	Cost *big.Rat
}

// Table is an ordered list of cases. The first case whose mask a chord
// contains decides its cost.
type Table []Case

// Match returns the index of the first case matching ch.
func (t Table) Match(ch chord.Chord) (int, bool) {
	for k, c := range t {
		if ch&c.Mask == c.Mask {
			return k, true
		}
	}
	return 0, false
}

// Validate checks that every case has a non-empty mask and a
// non-negative cost.
func (t Table) Validate() error {
	for _, c := range t {
		if c.Mask == chord.Null || !c.Mask.Legal() {
			return fmt.Errorf("cost case %q has invalid mask %s", c.Name, c.Mask)
		}
		if c.Cost == nil || c.Cost.Sign() < 0 {
			return fmt.Errorf("cost case %q has a negative cost", c.Name)
		}
	}
	return nil
}

func pair(f chord.Finger, b chord.Button) chord.Chord {
	return chord.Of(f, b) | chord.Of(f, b+1)
}

func mustRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("invalid rational " + s)
	}
	return r
}

// Rat converts f to the exact rational of its shortest decimal form.
func Rat(f float64) *big.Rat {
	return mustRat(strconv.FormatFloat(f, 'g', -1, 64))
}

// DefaultTable returns the measured press times of the Twiddler 3, in
// seconds per chord. Adjacent double presses come first, the slowest
// first, so a chord is costed by its most expensive one-finger part.
func DefaultTable() Table {
	return Table{
		{Name: "ring center+right", Mask: pair(chord.Ring, chord.Center), Cost: mustRat("1.53846153846154")},
		{Name: "ring left+center", Mask: pair(chord.Ring, chord.Left), Cost: mustRat("1.53846153846154")},
		{Name: "pinky center+right", Mask: pair(chord.Pinky, chord.Center), Cost: mustRat("1.53846153846154")},
		{Name: "pinky left+center", Mask: pair(chord.Pinky, chord.Left), Cost: mustRat("1.53846153846154")},
		{Name: "index left+center", Mask: pair(chord.Index, chord.Left), Cost: mustRat("1.27659574468085")},
		{Name: "middle left+center", Mask: pair(chord.Middle, chord.Left), Cost: mustRat("1.2")},
		{Name: "middle center+right", Mask: pair(chord.Middle, chord.Center), Cost: mustRat("1.11111111111111")},
		{Name: "index center+right", Mask: pair(chord.Index, chord.Center), Cost: mustRat("1.09090909090909")},
		{Name: "pinky left", Mask: chord.Of(chord.Pinky, chord.Left), Cost: mustRat("0.689655172413793")},
		{Name: "ring left", Mask: chord.Of(chord.Ring, chord.Left), Cost: mustRat("0.674157303370786")},
		{Name: "pinky right", Mask: chord.Of(chord.Pinky, chord.Right), Cost: mustRat("0.625")},
		{Name: "ring right", Mask: chord.Of(chord.Ring, chord.Right), Cost: mustRat("0.594059405940594")},
		{Name: "index right", Mask: chord.Of(chord.Index, chord.Right), Cost: mustRat("0.560747663551402")},
		{Name: "pinky center", Mask: chord.Of(chord.Pinky, chord.Center), Cost: mustRat("0.538116591928251")},
		{Name: "index left", Mask: chord.Of(chord.Index, chord.Left), Cost: mustRat("0.530973451327434")},
		{Name: "middle left", Mask: chord.Of(chord.Middle, chord.Left), Cost: mustRat("0.530973451327434")},
		{Name: "middle right", Mask: chord.Of(chord.Middle, chord.Right), Cost: mustRat("0.521739130434783")},
		{Name: "middle center", Mask: chord.Of(chord.Middle, chord.Center), Cost: mustRat("0.470588235294118")},
		{Name: "ring center", Mask: chord.Of(chord.Ring, chord.Center), Cost: mustRat("0.465116279069767")},
		{Name: "index center", Mask: chord.Of(chord.Index, chord.Center), Cost: mustRat("0.452830188679245")},
	}
}
