package signals

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyContext(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := make(chan os.Signal, 2)
	exited := make(chan int, 1)

	ctx := notifyContext(context.Background(), c, logger, func(code int) { exited <- code })
	require.NoError(t, ctx.Err())

	c <- syscall.SIGTERM
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by the first signal")
	}
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "terminated", hook.LastEntry().Data["signal"])

	c <- os.Interrupt
	select {
	case code := <-exited:
		assert.Equal(t, 1, code)
	case <-time.After(5 * time.Second):
		t.Fatal("second signal did not exit")
	}
}

func TestNotifyContextParentDone(t *testing.T) {
	logger, hook := test.NewNullLogger()
	parent, cancel := context.WithCancel(context.Background())
	ctx := notifyContext(parent, make(chan os.Signal), logger, func(int) { t.Error("unexpected exit") })

	cancel()
	<-ctx.Done()
	assert.Empty(t, hook.AllEntries())
}
