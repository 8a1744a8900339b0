package search

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chordsat/chordsat/pkg/solver"
)

// Tracer observes every completed query.
type Tracer interface {
	Trace(it Iteration)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Iteration) {
}

// LoggingTracer writes a progress line per query. Queries other than
// satisfiable ones that finish within MinPrintTime are logged at debug
// level only.
type LoggingTracer struct {
	Logger       logrus.FieldLogger
	MinPrintTime time.Duration
}

func (t LoggingTracer) Trace(it Iteration) {
	entry := t.Logger.WithFields(logrus.Fields{
		"iteration": it.Number,
		"guess":     it.Guess,
		"result":    it.Result.String(),
		"elapsed":   it.Elapsed.Round(time.Millisecond).String(),
		"depth":     it.Depth,
	})
	if it.Result == solver.Sat || it.Elapsed >= t.MinPrintTime {
		entry.Info("query finished")
		return
	}
	entry.Debug("query finished")
}

// Tracers fans each iteration out to every tracer in order.
type Tracers []Tracer

func (ts Tracers) Trace(it Iteration) {
	for _, t := range ts {
		t.Trace(it)
	}
}
