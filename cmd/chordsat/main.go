package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chordsat/chordsat/pkg/search"
)

// Exit status when the bounds prove that no layout reaches the lower
// throughput bound.
const exitNoFeasibleLayout = 2

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var infeasible *search.NoFeasibleLayout
	if errors.As(err, &infeasible) {
		return exitNoFeasibleLayout
	}
	return 1
}

type rootOptions struct {
	debug bool
}

func (o *rootOptions) logger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if o.debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "chordsat",
		Short:         "Search chorded keyboard layouts for the highest typing throughput",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(
		newSearchCmd(o),
		newConfigCmd(),
		newHistoryCmd(),
		newVersionCmd(),
	)
	return cmd
}
