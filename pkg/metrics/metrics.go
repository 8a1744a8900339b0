package metrics

import (
	"math"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/search"
)

const (
	ResultLabel     = "result"
	LengthLabel     = "length"
	ConfidenceLabel = "confidence"
	Outcome         = "outcome"
	Succeeded       = "succeeded"
	Failed          = "failed"
)

var (
	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chordsat_queries_total",
			Help: "Monotonic count of oracle queries by result",
		},
		[]string{ResultLabel},
	)

	queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chordsat_query_duration_seconds",
			Help:    "The duration of a single oracle query",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 12),
		},
		[]string{ResultLabel},
	)

	bestThroughput = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chordsat_best_throughput",
			Help: "Highest throughput proven feasible so far, in characters per second",
		},
	)

	lowestInfeasible = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chordsat_lowest_infeasible_throughput",
			Help: "Lowest throughput proven infeasible so far",
		},
	)

	lowestUnknown = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chordsat_lowest_unknown_throughput",
			Help: "Lowest throughput whose query timed out so far",
		},
	)

	scopeDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chordsat_scope_depth",
			Help: "Number of open oracle scopes, one per improvement kept",
		},
	)

	corpusGrams = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chordsat_corpus_grams",
			Help: "Number of n-grams in the corpus by length",
		},
		[]string{LengthLabel},
	)

	searchDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "chordsat_search_duration_seconds",
			Help:       "The duration of a whole layout search",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{Outcome, ConfidenceLabel},
	)
)

var registerOnce sync.Once

// RegisterSearch registers every search metric with the default
// registry. Only the first call has an effect.
func RegisterSearch() {
	registerOnce.Do(registerSearch)
}

func registerSearch() {
	prometheus.MustRegister(queriesTotal)
	prometheus.MustRegister(queryDuration)
	prometheus.MustRegister(bestThroughput)
	prometheus.MustRegister(lowestInfeasible)
	prometheus.MustRegister(lowestUnknown)
	prometheus.MustRegister(scopeDepth)
	prometheus.MustRegister(corpusGrams)
	prometheus.MustRegister(searchDurationSummary)
}

// Tracer is a search.Tracer exporting each query as metrics.
type Tracer struct{}

var _ search.Tracer = Tracer{}

func (Tracer) Trace(it search.Iteration) {
	result := it.Result.String()
	queriesTotal.WithLabelValues(result).Inc()
	queryDuration.WithLabelValues(result).Observe(it.Elapsed.Seconds())
	scopeDepth.Set(float64(it.Depth))
	bestThroughput.Set(it.Best)
	setBound(lowestInfeasible, it.LowestInfeasible)
	setBound(lowestUnknown, it.LowestUnknown)
}

// Bounds that were never reached are left unset.
func setBound(g prometheus.Gauge, v float64) {
	if math.IsInf(v, 0) {
		return
	}
	g.Set(v)
}

// EmitCorpus records the size of the corpus being searched.
func EmitCorpus(c *corpus.Corpus) {
	for length, n := range c.CountByLength() {
		if length == 0 {
			continue
		}
		corpusGrams.WithLabelValues(strconv.Itoa(length)).Set(float64(n))
	}
}

// EmitSearchOutcome records how a search ended.
func EmitSearchOutcome(out *search.Outcome, err error) {
	if out == nil {
		return
	}
	outcome := Succeeded
	if err != nil {
		outcome = Failed
	}
	searchDurationSummary.WithLabelValues(outcome, out.Confidence.String()).Observe(out.Elapsed.Seconds())
}
