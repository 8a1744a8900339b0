package config

import (
	"github.com/spf13/pflag"
)

// AddFlags registers one flag per parameter, defaulted from Default.
// Flags take precedence over the parameter file; see Override.
func AddFlags(fs *pflag.FlagSet) {
	p := Default()
	p.bind(fs)
}

func (p *Parameters) bind(fs *pflag.FlagSet) {
	fs.Float64Var(&p.Upper, "upper", p.Upper, "highest throughput searched, in characters per second")
	fs.Float64Var(&p.Lower, "lower", p.Lower, "lowest throughput searched")
	fs.Float64Var(&p.Resolution, "resolution", p.Resolution, "stop once the open gap is this narrow")
	fs.Float64Var(&p.InitialStepRatio, "initial-step-ratio", p.InitialStepRatio, "share of the bounds added to each guess until the first failure")
	fs.Float64Var(&p.AfterFailureStepRatio, "after-failure-step-ratio", p.AfterFailureStepRatio, "share of the open gap added to each guess after a failure")
	fs.BoolVar(&p.Bisect, "bisect", p.Bisect, "bisect the open gap after a failure")
	fs.DurationVar(&p.Timeout, "timeout", p.Timeout, "bound on each oracle query")
	fs.IntVar(&p.MaxIterations, "max-iterations", p.MaxIterations, "cap on the number of queries, 0 for none")
	fs.DurationVar(&p.MinPrintTime, "min-print-time", p.MinPrintTime, "log unsatisfiable queries only when slower than this")

	fs.StringVar(&p.AlphabetFile, "alphabet-file", p.AlphabetFile, "single characters and their counts")
	fs.StringVar(&p.BigramFile, "bigram-file", p.BigramFile, "bigrams and their counts")
	fs.StringSliceVar(&p.OtherFiles, "other-files", p.OtherFiles, "longer n-gram files, in load order")
	fs.Int64Var(&p.Cutoff, "cutoff", p.Cutoff, "skip n-grams counted below this")
	fs.Float64Var(&p.PruneRatio, "prune-ratio", p.PruneRatio, "share of each n-gram count removed from its sub-grams")

	fs.Float64Var(&p.Stride, "stride", p.Stride, "discount for two chords on disjoint fingers")
	fs.Float64Var(&p.Stutter, "stutter", p.Stutter, "discount for two chords pressing matching buttons")
	fs.Float64Var(&p.StrideWeight, "stride-weight", p.StrideWeight, "weight of the pair cost in the objective")
	fs.BoolVar(&p.StrictGhosting, "strict-ghosting", p.StrictGhosting, "exclude every other finger during a double press")

	fs.StringVar(&p.LogFile, "log-file", p.LogFile, "append results to this file")
	fs.StringVar(&p.HistoryDB, "history-db", p.HistoryDB, "sqlite database recording every run, empty to disable")
	fs.StringVar(&p.MetricsAddress, "metrics-address", p.MetricsAddress, "serve prometheus metrics on this address during a search")
	fs.BoolVar(&p.Profiling, "profiling", p.Profiling, "serve pprof profiles to local clients on the metrics address")
}

// Override copies the value of every parameter flag that was set on fs
// onto p. Flags fs does not know as parameters are ignored.
func (p *Parameters) Override(fs *pflag.FlagSet) error {
	bound := pflag.NewFlagSet("parameters", pflag.ContinueOnError)
	p.bind(bound)

	var err error
	fs.Visit(func(f *pflag.Flag) {
		target := bound.Lookup(f.Name)
		if target == nil || err != nil {
			return
		}
		if from, ok := f.Value.(pflag.SliceValue); ok {
			if to, ok := target.Value.(pflag.SliceValue); ok {
				err = to.Replace(from.GetSlice())
				return
			}
		}
		err = target.Value.Set(f.Value.String())
	})
	return err
}
