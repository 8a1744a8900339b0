package search

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Config bounds and paces the throughput search.
type Config struct {
	// Lower and Upper bound the throughput searched, in characters
	// per second.
	Lower float64
	Upper float64
	// The search stops once the gap between the best feasible guess
	// and the lowest failed one is at most Resolution.
	Resolution float64
	// Until the first failure, guesses climb by
	// (Upper-Lower)*InitialStepRatio. Zero starts bisecting at once.
	InitialStepRatio float64
	// After a failure, guesses move AfterFailureStepRatio of the way
	// across the remaining gap, unless Bisect is set.
	AfterFailureStepRatio float64
	Bisect                bool
	// Timeout bounds each oracle query. Zero waits for an answer.
	Timeout time.Duration
	// MaxIterations caps the number of queries. Zero means no cap.
	MaxIterations int
}

// DefaultConfig returns the settings that worked for the English
// corpus.
func DefaultConfig() Config {
	return Config{
		Lower:                 0,
		Upper:                 5,
		Resolution:            1e-11,
		InitialStepRatio:      1.0 / 10000,
		AfterFailureStepRatio: 1.0 / 1000,
		Timeout:               300 * time.Minute,
	}
}

// InvalidConfig lists every problem found in a Config.
type InvalidConfig []string

func (e InvalidConfig) Error() string {
	return fmt.Sprintf("invalid search configuration: %s", strings.Join(e, "; "))
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var problems InvalidConfig
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"lower", c.Lower},
		{"upper", c.Upper},
		{"resolution", c.Resolution},
		{"initial step ratio", c.InitialStepRatio},
		{"after failure step ratio", c.AfterFailureStepRatio},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			problems = append(problems, fmt.Sprintf("%s must be finite", f.name))
		}
	}
	if len(problems) > 0 {
		return problems
	}

	if c.Lower < 0 {
		problems = append(problems, fmt.Sprintf("lower bound %g is negative", c.Lower))
	}
	if c.Upper <= c.Lower {
		problems = append(problems, fmt.Sprintf("upper bound %g is not above lower bound %g", c.Upper, c.Lower))
	}
	if c.Resolution <= 0 {
		problems = append(problems, fmt.Sprintf("resolution %g is not positive", c.Resolution))
	} else if c.Upper-c.Lower <= c.Resolution {
		problems = append(problems, fmt.Sprintf("bounds %g and %g are within the resolution %g", c.Lower, c.Upper, c.Resolution))
	}
	if c.InitialStepRatio < 0 || c.InitialStepRatio >= 1 {
		problems = append(problems, fmt.Sprintf("initial step ratio %g is outside [0, 1)", c.InitialStepRatio))
	}
	if c.AfterFailureStepRatio < 0 || c.AfterFailureStepRatio >= 1 {
		problems = append(problems, fmt.Sprintf("after failure step ratio %g is outside [0, 1)", c.AfterFailureStepRatio))
	}
	if c.Timeout < 0 {
		problems = append(problems, fmt.Sprintf("timeout %s is negative", c.Timeout))
	}
	if c.MaxIterations < 0 {
		problems = append(problems, fmt.Sprintf("max iterations %d is negative", c.MaxIterations))
	}
	if len(problems) > 0 {
		return problems
	}
	return nil
}
