package chord

import (
	"github.com/chordsat/chordsat/pkg/solver"
)

// The device scans buttons by column, so pressing two adjacent buttons
// under one finger together with the same buttons under another finger
// registers phantom presses.

// ghostRule is one adjacent double press and the buttons it cannot be
// combined with.
type ghostRule struct {
	double   Chord
	excluded Chord
}

func ghostRules(strict bool) []ghostRule {
	var rules []ghostRule
	for f := Index; f <= Pinky; f++ {
		for _, b := range []Button{Left, Center} {
			double := Of(f, b) | Of(f, b+1)
			var excluded Chord
			if strict {
				excluded = FingerMask(Index) | FingerMask(Middle) | FingerMask(Ring) | FingerMask(Pinky)
				excluded &^= FingerMask(f)
			} else {
				for o := Index; o <= Pinky; o++ {
					if o != f {
						excluded |= Of(o, b) | Of(o, b+1)
					}
				}
			}
			rules = append(rules, ghostRule{double: double, excluded: excluded})
		}
	}
	return rules
}

// AssertGhosting excludes every chord that would ghost. In strict mode
// any adjacent double press must be the only finger of the chord;
// otherwise only the same pair of columns on other fingers is excluded.
func (e *Encoding) AssertGhosting(o solver.Oracle, strict bool) {
	c := o.Circuit()
	rules := ghostRules(strict)
	for _, g := range e.Assign {
		for _, r := range rules {
			double := c.Ands(lits(g, r.double)...)
			o.Assert(c.Or(double.Not(), c.Ors(lits(g, r.excluded)...).Not()))
		}
	}
}

// Ghosts reports whether ch would ghost on the device.
func Ghosts(ch Chord, strict bool) bool {
	for _, r := range ghostRules(strict) {
		if ch&r.double == r.double && ch&r.excluded != 0 {
			return true
		}
	}
	return false
}
