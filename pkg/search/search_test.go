package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsat/chordsat/pkg/chord"
	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/cost"
	"github.com/chordsat/chordsat/pkg/solver"
)

func runLayoutSearch(t *testing.T, cfg Config) (*Outcome, *cost.Objective, *chord.Encoding) {
	t.Helper()
	c, err := corpus.New([]corpus.Gram{
		{Text: "A", Frequency: 10},
		{Text: "B", Frequency: 10},
		{Text: "AB", Frequency: 5},
	}, 2)
	require.NoError(t, err)

	o := solver.NewGini()
	enc, err := chord.Encode(o, c)
	require.NoError(t, err)
	enc.AssertComposition(o)
	enc.AssertGhosting(o, false)

	m, err := cost.Build(o, enc, cost.DefaultTable())
	require.NoError(t, err)
	ob, err := cost.NewObjective(m, nil, 0)
	require.NoError(t, err)
	acc, err := ob.Bound(o.Circuit())
	require.NoError(t, err)

	ctrl, err := New(o, ob.Chars, acc, WithConfig(cfg))
	require.NoError(t, err)
	out, err := ctrl.Run(context.Background())
	require.NoError(t, err)
	return out, ob, enc
}

func TestSearchLayout(t *testing.T) {
	cfg := Config{Lower: 0, Upper: 10, Resolution: 1e-3, InitialStepRatio: 0.1, Bisect: true}
	out, ob, enc := runLayoutSearch(t, cfg)

	assert.Equal(t, Proven, out.Confidence)
	require.True(t, out.Feasible())

	chords := enc.Chords(out.Model)
	assert.NoError(t, chord.Verify(enc.Corpus, chords, false))
	assert.GreaterOrEqual(t, ob.ModelThroughput(out.Model), out.Best)
	assert.Less(t, ob.ModelThroughput(out.Model), out.LowestInfeasible)

	again, _, _ := runLayoutSearch(t, cfg)
	assert.Equal(t, out.Best, again.Best)
	assert.Equal(t, out.Iterations, again.Iterations)
}
