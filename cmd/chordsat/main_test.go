package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsat/chordsat/pkg/search"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type fixture struct {
	dir      string
	alphabet string
	bigrams  string
	db       string
	log      string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:      dir,
		alphabet: filepath.Join(dir, "monograms.txt"),
		bigrams:  filepath.Join(dir, "bigrams.txt"),
		db:       filepath.Join(dir, "history.db"),
		log:      filepath.Join(dir, "results.log"),
	}
	require.NoError(t, os.WriteFile(f.alphabet, []byte("a 100\nb 80\nc 40\n"), 0o644))
	require.NoError(t, os.WriteFile(f.bigrams, []byte("ab 30\nba 20\nca 5\n"), 0o644))
	return f
}

func (f fixture) args(extra ...string) []string {
	return append([]string{
		"search",
		"--alphabet-file", f.alphabet,
		"--bigram-file", f.bigrams,
		"--other-files", "",
		"--cutoff", "0",
		"--prune-ratio", "0",
		"--initial-step-ratio", "0",
		"--bisect",
		"--resolution", "0.001",
		"--timeout", "0",
		"--max-iterations", "100",
		"--history-db", f.db,
		"--log-file", f.log,
	}, extra...)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(fmt.Errorf("boom")))
	assert.Equal(t, 1, exitCode(search.Incomplete))
	assert.Equal(t, 2, exitCode(&search.NoFeasibleLayout{Lower: 4}))
	assert.Equal(t, 2, exitCode(errors.Wrap(&search.NoFeasibleLayout{Lower: 4}, "searching")))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "chordsat version: "))
}

func TestConfig(t *testing.T) {
	out, err := execute(t, "config", "show", "--cutoff", "7", "--timeout", "90s")
	require.NoError(t, err)
	assert.Contains(t, out, "cutoff: 7\n")
	assert.Contains(t, out, "timeout: 1m30s\n")

	_, err = execute(t, "config", "show", "--upper", "-1")
	assert.Error(t, err)

	out, err = execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"strideWeight"`)
}

func TestSearch(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, f.args()...)
	require.NoError(t, err)
	assert.Contains(t, out, "|--------------------------------|")
	assert.Contains(t, out, "Chorded 2-grams: ")

	logged, err := os.ReadFile(f.log)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "With cutoff 0\n")
	assert.Contains(t, string(logged), "(proven)")

	out, err = execute(t, "history", "list", "--history-db", f.db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID "))
	assert.Contains(t, lines[1], "finished")
	assert.Contains(t, lines[1], "proven")

	id := strings.Fields(lines[1])[0]
	out, err = execute(t, "history", "show", id, "--history-db", f.db)
	require.NoError(t, err)
	assert.Contains(t, out, "Run:        "+id)
	assert.Contains(t, out, "GRAM")
	assert.Contains(t, out, "unsat")

	_, err = execute(t, "history", "show", "missing", "--history-db", f.db)
	assert.Error(t, err)
}

func TestSearchNoFeasibleLayout(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, f.args("--lower", "4", "--upper", "5", "--stride-weight", "0")...)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.NotContains(t, out, "|--------------------------------|")

	_, statErr := os.Stat(f.log)
	assert.True(t, os.IsNotExist(statErr))

	out, err = execute(t, "history", "list", "--history-db", f.db)
	require.NoError(t, err)
	assert.Contains(t, out, "failed")
}
