package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsat/chordsat/pkg/chord"
	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/cost"
	"github.com/chordsat/chordsat/pkg/solver"
)

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New([]corpus.Gram{
		{Text: "A", Frequency: 10},
		{Text: "B", Frequency: 10},
		{Text: "AB", Frequency: 5},
	}, 2)
	require.NoError(t, err)
	return c
}

var (
	indexLeft  = chord.Of(chord.Index, chord.Left)
	middleLeft = chord.Of(chord.Middle, chord.Left)
)

func TestNew(t *testing.T) {
	l, err := New(testCorpus(t), []chord.Chord{indexLeft, middleLeft, indexLeft | middleLeft}, Options{})
	require.NoError(t, err)

	text, ok := l.Gram(indexLeft | middleLeft)
	assert.True(t, ok)
	assert.Equal(t, "AB", text)
	_, ok = l.Gram(chord.Of(chord.Pinky, chord.Right))
	assert.False(t, ok)

	assert.Equal(t, "Chorded 2-grams: 1, 3-grams: 0, 4-grams: 0, 5-grams: 0", l.Summary())
	assert.Equal(t, 2, l.Chorded[1])
	assert.Zero(t, l.Throughput)
}

func TestNewInvalid(t *testing.T) {
	_, err := New(testCorpus(t), []chord.Chord{indexLeft, indexLeft, chord.Null}, Options{})
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	c := testCorpus(t)
	o := solver.NewGini()
	enc, err := chord.Encode(o, c)
	require.NoError(t, err)
	enc.AssertComposition(o)
	enc.AssertGhosting(o, false)
	m, err := cost.Build(o, enc, cost.DefaultTable())
	require.NoError(t, err)
	ob, err := cost.NewObjective(m, nil, 0)
	require.NoError(t, err)

	_, err = Extract(enc, nil, Options{})
	assert.Error(t, err)

	require.Equal(t, solver.Sat, o.Check(0))
	l, err := Extract(enc, o.Model(), Options{Objective: ob})
	require.NoError(t, err)

	assert.Zero(t, l.Total.Cmp(m.Total().Value(o.Model())))
	assert.InDelta(t, ob.ModelThroughput(o.Model()), l.Throughput, 1e-12)
}

func TestRender(t *testing.T) {
	l, err := New(testCorpus(t), []chord.Chord{indexLeft, middleLeft, indexLeft | middleLeft}, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, l))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 15)

	blank := strings.Repeat(" ", cellWidth)
	assert.Equal(t, border, lines[0])
	assert.Equal(t, "| [A   ] "+blank+" ["+blank+"] "+blank+" ["+blank+"] |", lines[1])
	assert.Equal(t, spacer, lines[2])
	assert.Equal(t, "|  AB  "+strings.Repeat("  "+blank, 4)+"  |", lines[3])
	assert.Equal(t, "| [B   ] "+blank+" ["+blank+"] "+blank+" ["+blank+"] |", lines[5])
	assert.Equal(t, border, lines[14])
	for _, line := range lines {
		assert.Len(t, line, len(border))
	}
}

func TestList(t *testing.T) {
	l, err := New(testCorpus(t), []chord.Chord{indexLeft, middleLeft, chord.Null}, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, List(&buf, l))
	assert.Equal(t, "A   L00.000.000.000  0.5310\nB   000.L00.000.000  0.5310\n", buf.String())
}

func TestAppendLog(t *testing.T) {
	l, err := New(testCorpus(t), []chord.Chord{indexLeft, middleLeft, chord.Null}, Options{})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "results.log")

	entry := LogEntry{
		Time:             time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		RunID:            "01HQ",
		Best:             2.5,
		LowestInfeasible: 2.6,
		LowestUnknown:    3,
		Confidence:       "proven",
		Cutoff:           50,
		Layout:           l,
	}
	require.NoError(t, AppendLog(path, entry))
	require.NoError(t, AppendLog(path, entry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Equal(t, 2, strings.Count(text, "=== 2024-03-01T12:00:00Z run 01HQ\n"))
	assert.Contains(t, text, "Sat: 2.5, Unknown: 3, Unsat: 2.6 (proven)\n")
	assert.Contains(t, text, "Chorded 2-grams: 0")
	assert.Equal(t, 4, strings.Count(text, border))
}
