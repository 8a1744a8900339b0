package corpus

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LoadOptions names the frequency files making up a corpus.
type LoadOptions struct {
	// AlphabetFile lists the single characters. It is never cut off.
	AlphabetFile string
	BigramFile   string
	// OtherFiles are the longer n-gram files, in load order.
	OtherFiles []string
	// Grams counted below Cutoff are skipped, except in AlphabetFile.
	Cutoff int64
	Logger logrus.FieldLogger
}

// Load reads the files named by opts into a Corpus. Grams are positioned
// in file order: the alphabet first, then the bigrams, then every other
// file in turn.
func Load(opts LoadOptions) (*Corpus, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}

	grams, err := readFile(opts.AlphabetFile, 0)
	if err != nil {
		return nil, err
	}
	alphabetSize := len(grams)

	for _, path := range append([]string{opts.BigramFile}, opts.OtherFiles...) {
		if path == "" {
			continue
		}
		more, err := readFile(path, opts.Cutoff)
		if err != nil {
			return nil, err
		}
		logger.WithField("file", path).Debugf("loaded %s grams", humanize.Comma(int64(len(more))))
		grams = append(grams, more...)
	}

	c, err := New(grams, alphabetSize)
	if err != nil {
		return nil, errors.Wrap(err, "building corpus")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"alphabet": alphabetSize,
		"grams":    c.Len(),
		"total":    humanize.Comma(c.TotalFrequency()),
	}).Info("corpus loaded")
	return c, nil
}

// Pair is a bigram of two alphabet characters, used to cost typing the
// characters one after the other.
type Pair struct {
	Text   string
	First  int
	Second int
	Count  int64
}

// LoadPairs reads the bigram file at path without a cutoff. Both
// characters of every bigram must belong to c's alphabet.
func LoadPairs(path string, c *Corpus) ([]Pair, error) {
	grams, err := readFile(path, 0)
	if err != nil {
		return nil, err
	}
	return NewPairs(grams, c)
}

// NewPairs resolves bigram grams against c's alphabet.
func NewPairs(grams []Gram, c *Corpus) ([]Pair, error) {
	pairs := make([]Pair, 0, len(grams))
	for _, g := range grams {
		if g.Len() != 2 {
			return nil, errors.Errorf("pair %q is not two characters long", g.Text)
		}
		first, size := utf8.DecodeRuneInString(g.Text)
		second, _ := utf8.DecodeRuneInString(g.Text[size:])
		i, ok := c.Index(string(first))
		j, ok2 := c.Index(string(second))
		if !ok || !ok2 || i >= c.AlphabetSize || j >= c.AlphabetSize {
			return nil, errors.Errorf("pair %q uses characters outside the alphabet", g.Text)
		}
		pairs = append(pairs, Pair{Text: g.Text, First: i, Second: j, Count: g.Frequency})
	}
	return pairs, nil
}

func readFile(path string, cutoff int64) ([]Gram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening frequency file")
	}
	defer f.Close()

	grams, err := Read(f, cutoff)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return grams, nil
}

// Read parses "<gram> <count>" lines, skipping blank lines and grams
// counted below cutoff.
func Read(r io.Reader, cutoff int64) ([]Gram, error) {
	var grams []Gram
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected a gram and a count, got %q", line, text)
		}
		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if count < 0 {
			return nil, errors.Errorf("line %d: negative count %d", line, count)
		}
		if count < cutoff {
			continue
		}
		grams = append(grams, Gram{Text: fields[0], Frequency: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grams, nil
}
