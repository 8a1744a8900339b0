package history

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/chordsat/chordsat/pkg/search"
)

// Recorder is a search.Tracer storing every query of a run.
type Recorder struct {
	ctx    context.Context
	store  *Store
	runID  string
	logger logrus.FieldLogger
}

var _ search.Tracer = &Recorder{}

// Recorder returns a tracer recording into run runID. Queries keep
// being recorded after ctx is cancelled, so an interrupted search still
// leaves its last iterations behind.
func (s *Store) Recorder(ctx context.Context, runID string, logger logrus.FieldLogger) *Recorder {
	return &Recorder{
		ctx:    context.WithoutCancel(ctx),
		store:  s,
		runID:  runID,
		logger: logger,
	}
}

func (r *Recorder) Trace(it search.Iteration) {
	if err := r.store.RecordIteration(r.ctx, r.runID, it); err != nil {
		r.logger.WithError(err).Warn("could not record iteration")
	}
}
