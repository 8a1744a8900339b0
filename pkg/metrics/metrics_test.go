package metrics_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/metrics"
	"github.com/chordsat/chordsat/pkg/search"
	"github.com/chordsat/chordsat/pkg/solver"
)

func gather(t *testing.T, name string) []float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	var values []float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				values = append(values, m.GetGauge().GetValue())
			case m.GetCounter() != nil:
				values = append(values, m.GetCounter().GetValue())
			}
		}
	}
	return values
}

func setup() {
	metrics.RegisterSearch()
	metrics.RegisterSearch()
}

func TestTracer(t *testing.T) {
	setup()
	tr := metrics.Tracer{}
	tr.Trace(search.Iteration{
		Number:           1,
		Guess:            1.5,
		Result:           solver.Sat,
		Elapsed:          time.Second,
		Depth:            1,
		Best:             1.5,
		LowestInfeasible: math.Inf(1),
		LowestUnknown:    math.Inf(1),
	})
	tr.Trace(search.Iteration{
		Number:           2,
		Guess:            2.5,
		Result:           solver.Unsat,
		Elapsed:          2 * time.Second,
		Depth:            1,
		Best:             1.5,
		LowestInfeasible: 2.5,
		LowestUnknown:    math.Inf(1),
	})

	assert.Equal(t, []float64{1.5}, gather(t, "chordsat_best_throughput"))
	assert.Equal(t, []float64{2.5}, gather(t, "chordsat_lowest_infeasible_throughput"))
	assert.Equal(t, []float64{0}, gather(t, "chordsat_lowest_unknown_throughput"))
	assert.Equal(t, []float64{1}, gather(t, "chordsat_scope_depth"))
	assert.ElementsMatch(t, []float64{1, 1}, gather(t, "chordsat_queries_total"))
}

func TestEmitCorpus(t *testing.T) {
	setup()
	c, err := corpus.New([]corpus.Gram{
		{Text: "a", Frequency: 3},
		{Text: "b", Frequency: 2},
		{Text: "ab", Frequency: 1},
	}, 2)
	require.NoError(t, err)

	metrics.EmitCorpus(c)
	values := gather(t, "chordsat_corpus_grams")
	assert.Contains(t, values, 2.0)
	assert.Contains(t, values, 1.0)
}

func TestEmitSearchOutcomeThreadSafety(t *testing.T) {
	setup()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(ii int) {
			defer wg.Done()
			out := &search.Outcome{Confidence: search.Confidence(ii % 3), Elapsed: time.Duration(ii) * time.Millisecond}
			metrics.EmitSearchOutcome(out, nil)
		}(i)
	}
	wg.Wait()
	metrics.EmitSearchOutcome(nil, search.Incomplete)
}
