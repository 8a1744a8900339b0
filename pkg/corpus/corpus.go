package corpus

import (
	"fmt"
	"unicode/utf8"
)

// MaxGramLength is the longest gram the chord tables know how to cost.
const MaxGramLength = 5

// Gram is a character sequence with its corpus count. Position is the
// gram's identity within its Corpus.
type Gram struct {
	Text      string
	Frequency int64
	Position  int
}

// Len returns the number of characters in the gram.
func (g Gram) Len() int {
	return utf8.RuneCountInString(g.Text)
}

// Corpus is the ordered list of grams an encoding is built from. The
// first AlphabetSize grams are exactly the single characters.
type Corpus struct {
	Grams        []Gram
	AlphabetSize int

	index map[string]int
}

// New builds a Corpus from grams in position order. Positions are
// reassigned from the slice order.
func New(grams []Gram, alphabetSize int) (*Corpus, error) {
	c := &Corpus{
		Grams:        make([]Gram, len(grams)),
		AlphabetSize: alphabetSize,
		index:        make(map[string]int, len(grams)),
	}
	if alphabetSize > len(grams) {
		return nil, fmt.Errorf("alphabet size %d exceeds %d grams", alphabetSize, len(grams))
	}
	for i, g := range grams {
		g.Position = i
		if g.Frequency < 0 {
			return nil, fmt.Errorf("gram %q has negative count %d", g.Text, g.Frequency)
		}
		if i < alphabetSize && g.Len() != 1 {
			return nil, fmt.Errorf("alphabet gram %q at position %d is not a single character", g.Text, i)
		}
		if i >= alphabetSize && g.Len() < 2 {
			return nil, fmt.Errorf("gram %q at position %d follows the alphabet but is not a sequence", g.Text, i)
		}
		if _, ok := c.index[g.Text]; ok {
			return nil, fmt.Errorf("duplicate gram %q", g.Text)
		}
		c.index[g.Text] = i
		c.Grams[i] = g
	}
	return c, nil
}

// Len returns the number of grams.
func (c *Corpus) Len() int {
	return len(c.Grams)
}

// Index returns the position of the gram with the given text.
func (c *Corpus) Index(text string) (int, bool) {
	i, ok := c.index[text]
	return i, ok
}

// Constituents returns the positions of the single characters making up
// gram i, in order.
func (c *Corpus) Constituents(i int) ([]int, error) {
	g := c.Grams[i]
	positions := make([]int, 0, g.Len())
	for _, r := range g.Text {
		p, ok := c.index[string(r)]
		if !ok || p >= c.AlphabetSize {
			return nil, fmt.Errorf("gram %q uses character %q outside the alphabet", g.Text, r)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// TotalFrequency returns the sum of every gram's count.
func (c *Corpus) TotalFrequency() int64 {
	var total int64
	for _, g := range c.Grams {
		total += g.Frequency
	}
	return total
}

// CountByLength returns the number of grams of each length, indexed by
// length.
func (c *Corpus) CountByLength() []int {
	counts := make([]int, MaxGramLength+1)
	for _, g := range c.Grams {
		l := g.Len()
		for l >= len(counts) {
			counts = append(counts, 0)
		}
		counts[l]++
	}
	return counts
}

// Validate reports the first gram too long to be encoded.
func (c *Corpus) Validate() error {
	for _, g := range c.Grams {
		if g.Len() > MaxGramLength {
			return &GramTooLongError{Gram: g}
		}
	}
	return nil
}

// ErrGramTooLong matches any GramTooLongError with errors.Is.
var ErrGramTooLong = fmt.Errorf("gram longer than %d characters", MaxGramLength)

// GramTooLongError names a gram that no chord table can cost.
type GramTooLongError struct {
	Gram Gram
}

func (e *GramTooLongError) Error() string {
	return fmt.Sprintf("gram %q at position %d has %d characters, at most %d are supported", e.Gram.Text, e.Gram.Position, e.Gram.Len(), MaxGramLength)
}

func (e *GramTooLongError) Is(target error) bool {
	return target == ErrGramTooLong
}
