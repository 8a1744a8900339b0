package chord

import (
	"fmt"

	"github.com/chordsat/chordsat/pkg/corpus"
)

// Verify checks a concrete layout of c against every constraint the
// encoding asserts.
func Verify(c *corpus.Corpus, chords []Chord, strict bool) error {
	if len(chords) != c.Len() {
		return fmt.Errorf("layout has %d chords for %d grams", len(chords), c.Len())
	}

	owner := make(map[Chord]int, len(chords))
	for i, ch := range chords {
		g := c.Grams[i]
		if !ch.Legal() {
			return fmt.Errorf("gram %q has illegal chord %s", g.Text, ch)
		}
		if Ghosts(ch, strict) {
			return fmt.Errorf("gram %q has chord %s, which ghosts", g.Text, ch)
		}
		if ch == Null {
			if i < c.AlphabetSize {
				return fmt.Errorf("character %q has no chord", g.Text)
			}
			continue
		}
		if j, ok := owner[ch]; ok {
			return fmt.Errorf("grams %q and %q share chord %s", c.Grams[j].Text, g.Text, ch)
		}
		owner[ch] = i

		if i < c.AlphabetSize {
			continue
		}
		parts, err := c.Constituents(i)
		if err != nil {
			return err
		}
		var union Chord
		for _, p := range parts {
			union |= chords[p]
		}
		if ch != union {
			return fmt.Errorf("gram %q has chord %s, expected the union %s of its characters", g.Text, ch, union)
		}
	}
	return nil
}
