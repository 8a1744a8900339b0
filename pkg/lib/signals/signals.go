package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
)

var (
	shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

	signalCtx context.Context
	once      sync.Once
)

// Context returns a Context cancelled on SIGTERM or SIGINT. A search
// only notices the cancellation between oracle queries, so a second
// signal terminates the program with exit code 1.
func Context(logger logrus.FieldLogger) context.Context {
	once.Do(func() {
		c := make(chan os.Signal, 2)
		signal.Notify(c, shutdownSignals...)
		signalCtx = notifyContext(context.Background(), c, logger, os.Exit)
	})
	return signalCtx
}

func notifyContext(parent context.Context, c <-chan os.Signal, logger logrus.FieldLogger, exit func(int)) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case sig := <-c:
			logger.WithField("signal", sig.String()).Warn("stopping after the current query, signal again to exit now")
			cancel()
		case <-ctx.Done():
			return
		}

		select {
		case <-parent.Done():
		case <-c:
			exit(1) // second signal. Exit directly.
		}
	}()
	return ctx
}
