package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/chordsat/chordsat/pkg/solver"
)

// Incomplete is returned when the search stops before any layout was
// found and before the bounds proved that none exists.
var Incomplete = errors.New("search stopped before a layout could be found")

// NoFeasibleLayout is returned when every query failed: no layout
// reaches the lower bound within the time allowed.
type NoFeasibleLayout struct {
	Lower            float64
	LowestInfeasible float64
	LowestUnknown    float64
}

func (e *NoFeasibleLayout) Error() string {
	return fmt.Sprintf("no feasible layout at or above %g (lowest unsatisfiable %g, lowest timed out %g)",
		e.Lower, e.LowestInfeasible, e.LowestUnknown)
}

// Bound builds the constraint "cost <= max".
type Bound interface {
	Leq(max *big.Rat) z.Lit
}

// Confidence qualifies the best throughput of an Outcome.
type Confidence int

const (
	// Proven means the gap above Best was closed by an unsatisfiable
	// query or by the upper bound.
	Proven Confidence = iota
	// TimeoutBounded means a timed out query closed the gap, so a
	// better layout may exist.
	TimeoutBounded
	// Unconverged means the search stopped with the gap still open.
	Unconverged
)

func (c Confidence) String() string {
	switch c {
	case Proven:
		return "proven"
	case TimeoutBounded:
		return "timeout-bounded"
	default:
		return "unconverged"
	}
}

// Iteration describes one query.
type Iteration struct {
	Number  int
	Guess   float64
	MaxCost *big.Rat
	Result  solver.Result
	Elapsed time.Duration
	// Depth is the oracle scope depth once the query is settled.
	Depth int

	Best             float64
	LowestInfeasible float64
	LowestUnknown    float64
}

// Outcome is the state of the search when it stopped.
type Outcome struct {
	Best             float64
	LowestInfeasible float64
	LowestUnknown    float64
	// Model is the last satisfying model, or nil.
	Model       solver.Model
	Iterations  int
	Confidence  Confidence
	Interrupted bool
	Elapsed     time.Duration
}

// Feasible reports whether any query was satisfiable.
func (o *Outcome) Feasible() bool {
	return o.Model != nil
}

// Controller drives an oracle through a sequence of bounded queries to
// find the highest throughput it can prove feasible.
type Controller struct {
	oracle solver.Oracle
	bound  Bound
	chars  *big.Rat
	config Config
	tracer Tracer
	logger logrus.FieldLogger
	now    func() time.Time
}

type Option func(c *Controller) error

// WithTracer sets the tracer observing each query.
func WithTracer(t Tracer) Option {
	return func(c *Controller) error {
		c.tracer = t
		return nil
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) error {
		c.logger = l
		return nil
	}
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Controller) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.config = cfg
		return nil
	}
}

var defaults = []Option{
	func(c *Controller) error {
		if c.tracer == nil {
			c.tracer = DefaultTracer{}
		}
		return nil
	},
	func(c *Controller) error {
		if c.logger == nil {
			c.logger = logrus.New()
		}
		return nil
	},
}

// New returns a Controller searching for throughput chars / cost where
// bound constrains the cost.
func New(o solver.Oracle, chars *big.Rat, bound Bound, options ...Option) (*Controller, error) {
	if chars == nil || chars.Sign() <= 0 {
		return nil, fmt.Errorf("characters to type must be positive")
	}
	c := &Controller{
		oracle: o,
		bound:  bound,
		chars:  chars,
		config: DefaultConfig(),
		now:    time.Now,
	}
	for _, option := range append(options, defaults...) {
		if err := option(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Run searches until the gap closes, the iteration cap is reached or
// ctx is done. ctx is only consulted between queries: a running query
// is bounded by the configured timeout alone.
//
// Satisfiable queries keep their bound asserted, so the oracle gains
// one scope per improvement. Failed queries are rolled back.
//
// The returned Outcome is never nil. The error is a *NoFeasibleLayout
// when the bounds prove no layout reaches Lower, Incomplete when the
// search stopped early without a layout, and nil otherwise.
func (c *Controller) Run(ctx context.Context) (*Outcome, error) {
	cfg := c.config
	start := c.now()
	out := &Outcome{
		Best:             cfg.Lower,
		LowestInfeasible: math.Inf(1),
		LowestUnknown:    math.Inf(1),
	}
	failed := false
	step := (cfg.Upper - cfg.Lower) * cfg.InitialStepRatio

	c.logger.WithFields(logrus.Fields{
		"lower":      cfg.Lower,
		"upper":      cfg.Upper,
		"resolution": cfg.Resolution,
		"timeout":    cfg.Timeout.String(),
	}).Debug("starting search")

	for {
		lo, hi := c.gap(out)
		if hi-lo <= cfg.Resolution {
			break
		}
		if cfg.MaxIterations > 0 && out.Iterations >= cfg.MaxIterations {
			c.logger.WithField("iterations", out.Iterations).Info("iteration limit reached")
			break
		}
		if err := ctx.Err(); err != nil {
			out.Interrupted = true
			break
		}

		guess := c.guess(lo, hi, failed, step)
		it, err := c.query(out.Iterations+1, guess)
		if err != nil {
			out.Elapsed = c.now().Sub(start)
			return out, err
		}
		out.Iterations++

		switch it.Result {
		case solver.Sat:
			out.Best = guess
			out.Model = c.oracle.Model()
		case solver.Unsat:
			out.LowestInfeasible = guess
			failed = true
		default:
			out.LowestUnknown = guess
			failed = true
		}

		it.Best, it.LowestInfeasible, it.LowestUnknown = out.Best, out.LowestInfeasible, out.LowestUnknown
		c.tracer.Trace(it)
	}

	out.Elapsed = c.now().Sub(start)
	out.Confidence = c.confidence(out)

	if out.Feasible() {
		return out, nil
	}
	if out.Confidence == Unconverged {
		return out, Incomplete
	}
	return out, &NoFeasibleLayout{
		Lower:            cfg.Lower,
		LowestInfeasible: out.LowestInfeasible,
		LowestUnknown:    out.LowestUnknown,
	}
}

// gap returns the open interval the answer lies in.
func (c *Controller) gap(out *Outcome) (lo, hi float64) {
	lo = math.Max(out.Best, c.config.Lower)
	hi = math.Min(math.Min(out.LowestInfeasible, out.LowestUnknown), c.config.Upper)
	return lo, hi
}

func (c *Controller) guess(lo, hi float64, failed bool, step float64) float64 {
	var guess float64
	switch {
	case !failed && step > 0:
		guess = lo + step
	case !failed || c.config.Bisect || c.config.AfterFailureStepRatio == 0:
		guess = (lo + hi) / 2
	default:
		guess = lo + (hi-lo)*c.config.AfterFailureStepRatio
	}
	if guess <= lo || guess >= hi {
		guess = (lo + hi) / 2
	}
	return guess
}

// query checks the model under a bound matching guess. The bound stays
// asserted only when the query is satisfiable.
func (c *Controller) query(n int, guess float64) (Iteration, error) {
	maxCost := MaxCost(c.chars, guess)

	c.oracle.Push()
	c.oracle.Assert(c.bound.Leq(maxCost))

	start := c.now()
	result := c.oracle.Check(c.config.Timeout)
	elapsed := c.now().Sub(start)

	if result != solver.Sat {
		if err := c.oracle.Pop(); err != nil {
			return Iteration{}, err
		}
	}
	return Iteration{
		Number:  n,
		Guess:   guess,
		MaxCost: maxCost,
		Result:  result,
		Elapsed: elapsed,
		Depth:   c.oracle.Depth(),
	}, nil
}

func (c *Controller) confidence(out *Outcome) Confidence {
	lo, hi := c.gap(out)
	if hi-lo > c.config.Resolution {
		return Unconverged
	}
	if out.LowestUnknown <= out.LowestInfeasible && out.LowestUnknown <= c.config.Upper {
		return TimeoutBounded
	}
	return Proven
}

// MaxCost returns the cost bound equivalent to a throughput of at least
// guess, which must be positive. The guess is taken at its exact binary
// value.
func MaxCost(chars *big.Rat, guess float64) *big.Rat {
	return new(big.Rat).Quo(chars, new(big.Rat).SetFloat64(guess))
}
