package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	c := newCorpus(t, 2, "A", "B", "AB")
	a, b := Of(Index, Left), Of(Middle, Center)

	type tc struct {
		Name   string
		Chords []Chord
		Error  string
	}

	for _, tt := range []tc{
		{
			Name:   "null bigram",
			Chords: []Chord{a, b, Null},
		},
		{
			Name:   "composed bigram",
			Chords: []Chord{a, b, a | b},
		},
		{
			Name:   "wrong length",
			Chords: []Chord{a, b},
			Error:  "layout has 2 chords for 3 grams",
		},
		{
			Name:   "null character",
			Chords: []Chord{Null, b, Null},
			Error:  `character "A" has no chord`,
		},
		{
			Name:   "shared chord",
			Chords: []Chord{a, a, a},
			Error:  `grams "A" and "B" share chord L00.000.000.000`,
		},
		{
			Name:   "not a union",
			Chords: []Chord{a, b, a | Of(Pinky, Left)},
			Error:  `gram "AB" has chord L00.000.000.L00, expected the union L00.0M0.000.000 of its characters`,
		},
		{
			Name:   "illegal",
			Chords: []Chord{a | Of(Index, Right), b, Null},
			Error:  `gram "A" has illegal chord L0R.000.000.000`,
		},
		{
			Name:   "ghosting",
			Chords: []Chord{a | Of(Index, Center) | Of(Ring, Left), b, Null},
			Error:  `gram "A" has chord LM0.000.L00.000, which ghosts`,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			err := Verify(c, tt.Chords, false)
			if tt.Error == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.Error)
		})
	}
}
