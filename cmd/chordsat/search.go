package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chordsat/chordsat/pkg/chord"
	"github.com/chordsat/chordsat/pkg/config"
	"github.com/chordsat/chordsat/pkg/corpus"
	"github.com/chordsat/chordsat/pkg/cost"
	"github.com/chordsat/chordsat/pkg/history"
	"github.com/chordsat/chordsat/pkg/layout"
	"github.com/chordsat/chordsat/pkg/lib/profile"
	"github.com/chordsat/chordsat/pkg/lib/signals"
	"github.com/chordsat/chordsat/pkg/metrics"
	"github.com/chordsat/chordsat/pkg/search"
	"github.com/chordsat/chordsat/pkg/solver"
)

type searchOptions struct {
	*rootOptions
	configFile string
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	o := &searchOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for the layout with the highest throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParameters(o.configFile, cmd)
			if err != nil {
				return err
			}
			logger := o.logger(cmd)
			logger.Infof("log level %s", logger.Level)

			ctx, cancel := context.WithCancel(signals.Context(logger))
			defer cancel()
			return o.run(ctx, cmd, p, logger)
		},
	}
	cmd.Flags().StringVar(&o.configFile, "config", "", "parameter file (YAML, JSON or TOML)")
	config.AddFlags(cmd.Flags())
	return cmd
}

// problem is everything the oracle was given for one search.
type problem struct {
	corpus    *corpus.Corpus
	pairs     []corpus.Pair
	oracle    solver.Oracle
	encoding  *chord.Encoding
	objective *cost.Objective
	bound     *solver.Accumulator
}

func buildProblem(p config.Parameters, logger logrus.FieldLogger) (*problem, error) {
	opts := p.LoadOptions()
	opts.Logger = logger
	c, err := corpus.Load(opts)
	if err != nil {
		return nil, err
	}
	if p.PruneRatio > 0 {
		report, err := c.Prune(p.PruneRatio)
		if err != nil {
			return nil, err
		}
		logger.WithFields(logrus.Fields{
			"removed": humanize.Comma(int64(report.Removed)),
			"percent": humanize.FormatFloat("#.##", report.Percent()),
		}).Info("pruned sub-gram counts")
	}
	metrics.EmitCorpus(c)

	var pairs []corpus.Pair
	if p.StrideWeight > 0 {
		if pairs, err = corpus.LoadPairs(p.BigramFile, c); err != nil {
			return nil, err
		}
	}

	// pairwise uniqueness dominates the circuit size
	o := solver.NewGiniCap(c.Len() * c.Len() * chord.Width)
	enc, err := chord.Encode(o, c)
	if err != nil {
		return nil, err
	}
	enc.AssertComposition(o)
	enc.AssertGhosting(o, p.StrictGhosting)

	model, err := cost.Build(o, enc, cost.DefaultTable())
	if err != nil {
		return nil, err
	}
	var pm *cost.PairModel
	if len(pairs) > 0 {
		pm = cost.BuildPairs(o, model, pairs, p.Discounts())
	}
	ob, err := cost.NewObjective(model, pm, p.StrideWeight)
	if err != nil {
		return nil, err
	}
	bound, err := ob.Bound(o.Circuit())
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"grams":      c.Len(),
		"pairs":      len(pairs),
		"boundWidth": bound.Width(),
	}).Debug("problem encoded")

	return &problem{
		corpus:    c,
		pairs:     pairs,
		oracle:    o,
		encoding:  enc,
		objective: ob,
		bound:     bound,
	}, nil
}

func (o *searchOptions) run(ctx context.Context, cmd *cobra.Command, p config.Parameters, logger logrus.FieldLogger) error {
	pr, err := buildProblem(p, logger)
	if err != nil {
		return err
	}

	tracers := search.Tracers{search.LoggingTracer{Logger: logger, MinPrintTime: p.MinPrintTime}}
	if p.MetricsAddress != "" {
		metrics.RegisterSearch()
		tracers = append(tracers, metrics.Tracer{})
	}

	var (
		store *history.Store
		run   *history.Run
	)
	if p.HistoryDB != "" {
		if store, run, err = startRun(ctx, p); err != nil {
			return err
		}
		defer store.Close()
		tracers = append(tracers, store.Recorder(ctx, run.ID, logger))
		logger.WithField("run", run.ID).Info("recording run")
	}

	ctrl, err := search.New(pr.oracle, pr.objective.Chars, pr.bound,
		search.WithConfig(p.SearchConfig()),
		search.WithTracer(tracers),
		search.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out, searchErr := runSearch(ctx, ctrl, p, logger)
	metrics.EmitSearchOutcome(out, searchErr)

	var l *layout.Layout
	if out != nil && out.Feasible() {
		l, err = layout.Extract(pr.encoding, out.Model, layout.Options{
			Table:          cost.DefaultTable(),
			Objective:      pr.objective,
			Pairs:          pr.pairs,
			Discounts:      p.Discounts(),
			StrictGhosting: p.StrictGhosting,
		})
		if err != nil && searchErr == nil {
			searchErr = err
		}
	}

	if store != nil {
		if err := store.FinishRun(context.WithoutCancel(ctx), run.ID, out, l, searchErr); err != nil {
			logger.WithError(err).Warn("could not record run outcome")
		}
	}

	if l != nil {
		logger.WithFields(logrus.Fields{
			"throughput": l.Throughput,
			"confidence": out.Confidence.String(),
			"iterations": out.Iterations,
		}).Info("layout found")
		w := cmd.OutOrStdout()
		if err := layout.Render(w, l); err != nil {
			return err
		}
		if _, err := w.Write([]byte(l.Summary() + "\n")); err != nil {
			return err
		}
		if p.LogFile != "" {
			entry := layout.LogEntry{
				Time:             time.Now(),
				Best:             out.Best,
				LowestInfeasible: out.LowestInfeasible,
				LowestUnknown:    out.LowestUnknown,
				Confidence:       out.Confidence.String(),
				Cutoff:           p.Cutoff,
				Layout:           l,
			}
			if run != nil {
				entry.RunID = run.ID
			}
			if err := layout.AppendLog(p.LogFile, entry); err != nil {
				return err
			}
		}
	}
	return searchErr
}

func startRun(ctx context.Context, p config.Parameters) (*history.Store, *history.Run, error) {
	hash, err := p.Hash()
	if err != nil {
		return nil, nil, err
	}
	params, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	store, err := history.Open(p.HistoryDB)
	if err != nil {
		return nil, nil, err
	}
	run, err := store.StartRun(ctx, hash, params)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, run, nil
}

// runSearch runs the controller, serving metrics alongside it when a
// metrics address is set. The server stops once the search returns.
func runSearch(ctx context.Context, ctrl *search.Controller, p config.Parameters, logger logrus.FieldLogger) (*search.Outcome, error) {
	addr := p.MetricsAddress
	if addr == "" {
		return ctrl.Run(ctx)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if p.Profiling {
		logger.Infof("profiling enabled")
		profile.RegisterHandlers(mux)
	}
	server := &http.Server{Addr: addr, Handler: mux}

	var (
		out       *search.Outcome
		searchErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("address", addr).Info("serving metrics")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		out, searchErr = ctrl.Run(gctx)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("metrics serving failed")
	}
	return out, searchErr
}
