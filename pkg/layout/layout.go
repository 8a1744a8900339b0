package layout

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/chordsat/chordsat/pkg/chord"
	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/cost"
	"github.com/chordsat/chordsat/pkg/solver"
)

// Layout is a concrete assignment of chords to the grams of a corpus.
type Layout struct {
	Corpus *corpus.Corpus
	Chords []chord.Chord
	// ByChord maps every chord in use to the position of its gram.
	ByChord map[chord.Chord]int
	// Chorded counts the grams of each length that have a chord.
	Chorded []int
	// Costs is the cost of typing each gram once.
	Costs []*big.Rat
	// Total is the cost of typing the corpus.
	Total *big.Rat
	// Throughput is zero when no objective was given.
	Throughput float64
}

// Options tell Extract how the layout was costed.
type Options struct {
	Table          cost.Table
	Objective      *cost.Objective
	Pairs          []corpus.Pair
	Discounts      cost.Discounts
	StrictGhosting bool
}

// Extract reads the layout from a satisfying model and checks it against
// the constraints it was found under.
func Extract(enc *chord.Encoding, m solver.Model, opts Options) (*Layout, error) {
	if m == nil {
		return nil, fmt.Errorf("no model to extract a layout from")
	}
	chords := enc.Chords(m)
	return New(enc.Corpus, chords, opts)
}

// New builds a Layout from concrete chords.
func New(c *corpus.Corpus, chords []chord.Chord, opts Options) (*Layout, error) {
	if err := chord.Verify(c, chords, opts.StrictGhosting); err != nil {
		return nil, errors.Wrap(err, "invalid layout")
	}

	table := opts.Table
	if table == nil {
		table = cost.DefaultTable()
	}
	costs, err := cost.Evaluate(c, table, chords)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Corpus:  c,
		Chords:  chords,
		ByChord: make(map[chord.Chord]int),
		Chorded: make([]int, corpus.MaxGramLength+1),
		Costs:   costs,
		Total:   cost.WeightedTotal(c, costs),
	}
	for i, ch := range chords {
		if ch == chord.Null {
			continue
		}
		l.ByChord[ch] = i
		l.Chorded[c.Grams[i].Len()]++
	}

	if opts.Objective != nil {
		pairTotal := new(big.Rat)
		if len(opts.Pairs) > 0 {
			pairTotal = cost.Total(cost.EvaluatePairs(opts.Pairs, chords, costs, opts.Discounts))
		}
		l.Throughput = opts.Objective.Throughput(opts.Objective.CostOf(l.Total, pairTotal))
	}
	return l, nil
}

// Gram returns the text typed by ch, if any.
func (l *Layout) Gram(ch chord.Chord) (string, bool) {
	i, ok := l.ByChord[ch]
	if !ok {
		return "", false
	}
	return l.Corpus.Grams[i].Text, true
}

// Summary reports how many longer grams received their own chord.
func (l *Layout) Summary() string {
	return fmt.Sprintf("Chorded 2-grams: %d, 3-grams: %d, 4-grams: %d, 5-grams: %d",
		l.Chorded[2], l.Chorded[3], l.Chorded[4], l.Chorded[5])
}
