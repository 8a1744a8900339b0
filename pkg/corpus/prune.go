package corpus

import (
	"fmt"
	"math"
)

// PruneError reports a gram whose count was driven to zero or below,
// which means the prune ratio is too high.
type PruneError struct {
	Gram  string
	Count float64
	Ratio float64
}

func (e *PruneError) Error() string {
	return fmt.Sprintf("prune ratio %g is too high: count of %q dropped to %.2f", e.Ratio, e.Gram, e.Count)
}

// PruneReport summarizes a Prune.
type PruneReport struct {
	Removed float64
	Total   int64
}

// Percent returns the share of the total count that was removed.
func (r PruneReport) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return r.Removed * 100 / float64(r.Total)
}

// Prune removes from every gram the count it contributes to the longer
// grams it starts or ends. For each gram of length L past the alphabet,
// freq * (L-1)/L * ratio is subtracted from both its prefix and its
// suffix of length L-1, when those are in the corpus. Grams are visited
// in position order and the final counts are rounded down.
func (c *Corpus) Prune(ratio float64) (PruneReport, error) {
	counts := make([]float64, len(c.Grams))
	for i, g := range c.Grams {
		counts[i] = float64(g.Frequency)
	}

	report := PruneReport{Total: c.TotalFrequency()}
	for i := c.AlphabetSize; i < len(c.Grams); i++ {
		runes := []rune(c.Grams[i].Text)
		l := float64(len(runes))
		sub := counts[i] * ((l - 1) / l) * ratio
		for _, text := range []string{string(runes[1:]), string(runes[:len(runes)-1])} {
			j, ok := c.index[text]
			if !ok {
				continue
			}
			counts[j] -= sub
			report.Removed += sub
		}
	}

	for i, g := range c.Grams {
		if counts[i] <= 0 {
			return report, &PruneError{Gram: g.Text, Count: counts[i], Ratio: ratio}
		}
	}
	for i := range c.Grams {
		c.Grams[i].Frequency = int64(math.Floor(counts[i]))
	}
	return report, nil
}
