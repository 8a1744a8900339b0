package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRead(t *testing.T) {
	gs, err := Read(strings.NewReader("TH 100\nHE 7\n\nIN\t50\n\n"), 10)
	require.NoError(t, err)
	assert.Equal(t, []Gram{
		{Text: "TH", Frequency: 100},
		{Text: "IN", Frequency: 50},
	}, gs)
}

func TestReadErrors(t *testing.T) {
	for name, input := range map[string]string{
		"missing count":  "TH\n",
		"extra field":    "TH 1 2\n",
		"not a number":   "TH many\n",
		"negative count": "TH -4\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(input), 0)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := Load(LoadOptions{
		AlphabetFile: writeFile(t, dir, "mono.txt", "E 3\nT 1\nH 0\n"),
		BigramFile:   writeFile(t, dir, "bi.txt", "TH 10\nHE 9\nET 2\n"),
		OtherFiles:   []string{writeFile(t, dir, "tri.txt", "THE 8\nETH 1\n")},
		Cutoff:       5,
		Logger:       logger,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, c.AlphabetSize)
	var texts []string
	for _, g := range c.Grams {
		texts = append(texts, g.Text)
	}
	assert.Equal(t, []string{"E", "T", "H", "TH", "HE", "THE"}, texts)
	assert.Equal(t, "corpus loaded", hook.LastEntry().Message)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(LoadOptions{AlphabetFile: filepath.Join(t.TempDir(), "nope.txt")})
	assert.Error(t, err)
}

func TestLoadGramTooLong(t *testing.T) {
	dir := t.TempDir()
	logger, _ := test.NewNullLogger()

	_, err := Load(LoadOptions{
		AlphabetFile: writeFile(t, dir, "mono.txt", "A 3\n"),
		BigramFile:   writeFile(t, dir, "bi.txt", "AA 3\n"),
		OtherFiles:   []string{writeFile(t, dir, "long.txt", "AAAAAA 3\n")},
		Logger:       logger,
	})
	assert.ErrorIs(t, err, ErrGramTooLong)
}

func TestLoadPairs(t *testing.T) {
	dir := t.TempDir()
	c, err := New(grams("A", 10, "B", 10, "AB", 5), 2)
	require.NoError(t, err)

	pairs, err := LoadPairs(writeFile(t, dir, "bi.txt", "AB 5\nBA 1\nBB 0\n"), c)
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Text: "AB", First: 0, Second: 1, Count: 5},
		{Text: "BA", First: 1, Second: 0, Count: 1},
		{Text: "BB", First: 1, Second: 1, Count: 0},
	}, pairs)

	_, err = LoadPairs(writeFile(t, dir, "bad.txt", "AC 5\n"), c)
	assert.EqualError(t, err, `pair "AC" uses characters outside the alphabet`)

	_, err = LoadPairs(writeFile(t, dir, "long.txt", "ABA 5\n"), c)
	assert.EqualError(t, err, `pair "ABA" is not two characters long`)
}
