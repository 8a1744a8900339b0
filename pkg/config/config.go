package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mitchellh/hashstructure"

	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/cost"
	"github.com/chordsat/chordsat/pkg/search"
)

// Parameters holds everything that shapes a layout search. Fields tagged
// hash:"ignore" only say where results go and do not change the
// search itself.
type Parameters struct {
	Upper                 float64       `json:"upper" jsonschema:"description=Highest throughput searched in characters per second"`
	Lower                 float64       `json:"lower" jsonschema:"description=Lowest throughput searched"`
	Resolution            float64       `json:"resolution" jsonschema:"description=The search stops once the open gap is this narrow"`
	InitialStepRatio      float64       `json:"initialStepRatio" jsonschema:"description=Share of the bounds added to each guess until the first failure; 0 bisects at once"`
	AfterFailureStepRatio float64       `json:"afterFailureStepRatio" jsonschema:"description=Share of the open gap added to each guess after a failure"`
	Bisect                bool          `json:"bisect" jsonschema:"description=Bisect the open gap after a failure"`
	Timeout               time.Duration `json:"timeout" jsonschema:"description=Bound on each oracle query"`
	MaxIterations         int           `json:"maxIterations" jsonschema:"description=Cap on the number of queries; 0 means none"`
	MinPrintTime          time.Duration `json:"minPrintTime" hash:"ignore" jsonschema:"description=Queries that are not satisfiable are only logged when slower than this"`

	AlphabetFile string   `json:"alphabetFile" jsonschema:"description=Single characters and their counts"`
	BigramFile   string   `json:"bigramFile"`
	OtherFiles   []string `json:"otherFiles" jsonschema:"description=Longer n-gram files in load order"`
	Cutoff       int64    `json:"cutoff" jsonschema:"description=N-grams counted below this are skipped"`
	PruneRatio   float64  `json:"pruneRatio" jsonschema:"description=How much of each n-gram count is removed from its sub-grams; 0 turns pruning off"`

	Stride         float64 `json:"stride" jsonschema:"description=Discount for two chords on disjoint fingers"`
	Stutter        float64 `json:"stutter" jsonschema:"description=Discount for two chords pressing matching buttons"`
	StrideWeight   float64 `json:"strideWeight" jsonschema:"description=Weight of the pair cost in the objective; 0 ignores pairs"`
	StrictGhosting bool    `json:"strictGhosting" jsonschema:"description=Exclude every other finger during a double press"`

	LogFile        string `json:"logFile" hash:"ignore" jsonschema:"description=Results are appended to this file"`
	HistoryDB      string `json:"historyDB" hash:"ignore" jsonschema:"description=SQLite database recording every run; empty disables it"`
	MetricsAddress string `json:"metricsAddress" hash:"ignore" jsonschema:"description=Serve prometheus metrics on this address during a search"`
	Profiling      bool   `json:"profiling" hash:"ignore" jsonschema:"description=Also serve pprof profiles to local clients on the metrics address"`
}

// Default returns the parameters used for the English corpus.
func Default() Parameters {
	s := search.DefaultConfig()
	d := cost.DefaultDiscounts()
	return Parameters{
		Upper:                 s.Upper,
		Lower:                 s.Lower,
		Resolution:            s.Resolution,
		InitialStepRatio:      s.InitialStepRatio,
		AfterFailureStepRatio: s.AfterFailureStepRatio,
		Timeout:               s.Timeout,
		MinPrintTime:          5 * time.Minute,
		AlphabetFile:          "english_monograms.txt",
		BigramFile:            "english_bigrams.txt",
		OtherFiles: []string{
			"english_trigrams.txt",
			"english_quadgrams.txt",
			"english_quintgrams.txt",
		},
		Cutoff:       50000000,
		PruneRatio:   2.0 / 3,
		Stride:       d.Stride,
		Stutter:      d.Stutter,
		StrideWeight: 0.9,
		LogFile:      "chordsat.log",
		HistoryDB:    "chordsat.db",
	}
}

// MarshalJSON writes durations as Go duration strings, so the output
// loads back unchanged.
func (p Parameters) MarshalJSON() ([]byte, error) {
	type plain Parameters
	return json.Marshal(struct {
		plain
		Timeout      string `json:"timeout"`
		MinPrintTime string `json:"minPrintTime"`
	}{plain(p), p.Timeout.String(), p.MinPrintTime.String()})
}

// ValidationError lists every problem found in a set of Parameters.
type ValidationError []string

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters: %s", strings.Join(e, "; "))
}

// Validate reports every invalid parameter at once.
func (p Parameters) Validate() error {
	var problems ValidationError
	if err := p.SearchConfig().Validate(); err != nil {
		if invalid, ok := err.(search.InvalidConfig); ok {
			problems = append(problems, invalid...)
		} else {
			problems = append(problems, err.Error())
		}
	}
	if p.MinPrintTime < 0 {
		problems = append(problems, fmt.Sprintf("min print time %s is negative", p.MinPrintTime))
	}
	if p.AlphabetFile == "" {
		problems = append(problems, "alphabet file is required")
	}
	if p.Cutoff < 0 {
		problems = append(problems, fmt.Sprintf("cutoff %d is negative", p.Cutoff))
	}
	if !inRange(p.PruneRatio, 0, 1) {
		problems = append(problems, fmt.Sprintf("prune ratio %g is outside [0, 1]", p.PruneRatio))
	}
	if !inRange(p.Stride, 0, 1) || p.Stride == 0 {
		problems = append(problems, fmt.Sprintf("stride discount %g is outside (0, 1]", p.Stride))
	}
	if !inRange(p.Stutter, 0, 1) || p.Stutter == 0 {
		problems = append(problems, fmt.Sprintf("stutter discount %g is outside (0, 1]", p.Stutter))
	}
	if !inRange(p.StrideWeight, 0, 1) {
		problems = append(problems, fmt.Sprintf("stride weight %g is outside [0, 1]", p.StrideWeight))
	}
	if p.StrideWeight > 0 && p.BigramFile == "" {
		problems = append(problems, "a bigram file is required when the stride weight is positive")
	}
	if len(problems) > 0 {
		return problems
	}
	return nil
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// SearchConfig returns the settings of the search controller.
func (p Parameters) SearchConfig() search.Config {
	return search.Config{
		Lower:                 p.Lower,
		Upper:                 p.Upper,
		Resolution:            p.Resolution,
		InitialStepRatio:      p.InitialStepRatio,
		AfterFailureStepRatio: p.AfterFailureStepRatio,
		Bisect:                p.Bisect,
		Timeout:               p.Timeout,
		MaxIterations:         p.MaxIterations,
	}
}

// Discounts returns the pair cost factors.
func (p Parameters) Discounts() cost.Discounts {
	return cost.Discounts{Stride: p.Stride, Stutter: p.Stutter}
}

// LoadOptions returns the corpus files and cutoff.
func (p Parameters) LoadOptions() corpus.LoadOptions {
	return corpus.LoadOptions{
		AlphabetFile: p.AlphabetFile,
		BigramFile:   p.BigramFile,
		OtherFiles:   p.OtherFiles,
		Cutoff:       p.Cutoff,
	}
}

// Hash fingerprints the parameters that change the outcome of a search,
// so runs can be grouped by configuration.
func (p Parameters) Hash() (string, error) {
	h, err := hashstructure.Hash(p, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h), nil
}
