package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsat/chordsat/pkg/chord"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())
	require.Len(t, table, 20)

	for k, c := range table {
		bits := 0
		for b := 0; b < chord.Width; b++ {
			if c.Mask&(1<<uint(b)) != 0 {
				bits++
			}
		}
		if k < 8 {
			assert.Equal(t, 2, bits, c.Name)
		} else {
			assert.Equal(t, 1, bits, c.Name)
		}
	}

	var all chord.Chord
	for _, c := range table[8:] {
		all |= c.Mask
	}
	assert.Equal(t, chord.Chord(1<<chord.Width-1), all, "every button has a single-press case")
}

func TestTableMatch(t *testing.T) {
	table := DefaultTable()

	type tc struct {
		Name  string
		Chord chord.Chord
		Case  string
	}

	for _, tt := range []tc{
		{
			Name:  "ring double beats everything",
			Chord: chord.Of(chord.Ring, chord.Center) | chord.Of(chord.Ring, chord.Right) | chord.Of(chord.Index, chord.Left) | chord.Of(chord.Index, chord.Center),
			Case:  "ring center+right",
		},
		{
			Name:  "double before single",
			Chord: chord.Of(chord.Index, chord.Left) | chord.Of(chord.Index, chord.Center) | chord.Of(chord.Pinky, chord.Left),
			Case:  "index left+center",
		},
		{
			Name:  "slowest single",
			Chord: chord.Of(chord.Index, chord.Center) | chord.Of(chord.Ring, chord.Right),
			Case:  "ring right",
		},
		{
			Name:  "single",
			Chord: chord.Of(chord.Middle, chord.Center),
			Case:  "middle center",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			k, ok := table.Match(tt.Chord)
			require.True(t, ok)
			assert.Equal(t, tt.Case, table[k].Name)
		})
	}

	_, ok := table.Match(chord.Null)
	assert.False(t, ok)
}

func TestTableValidate(t *testing.T) {
	assert.Error(t, Table{{Name: "empty", Mask: chord.Null, Cost: Rat(1)}}.Validate())
	assert.Error(t, Table{{Name: "negative", Mask: chord.Of(chord.Index, chord.Left), Cost: Rat(-1)}}.Validate())
	assert.Error(t, Table{{Name: "missing", Mask: chord.Of(chord.Index, chord.Left)}}.Validate())
}

func TestRat(t *testing.T) {
	assert.Equal(t, "1/2", Rat(0.5).RatString())
	assert.Equal(t, "9/10", Rat(0.9).RatString())
	assert.Equal(t, "3/4", Rat(0.75).RatString())
}
