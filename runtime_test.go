package garrison

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartUnblocksOnForceShutdown(t *testing.T) {
	defer reset()
	require.NoError(t, Init())

	started := make(chan struct{})
	finished := make(chan error, 1)
	go func() {
		close(started)
		finished <- Start()
	}()

	<-started
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, ForceShutdown())

	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not unblock after ForceShutdown")
	}
}

func TestStartCalledTwiceFails(t *testing.T) {
	defer reset()
	require.NoError(t, Init())

	go func() { _ = Start() }()
	time.Sleep(20 * time.Millisecond)

	require.ErrorIs(t, Start(), ErrAlreadyStarted)
	require.NoError(t, ForceShutdown())
}
