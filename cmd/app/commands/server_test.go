package commands

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer blocks in Start until Shutdown is called or fails immediately with startErr.
type fakeServer struct {
	startErr  error
	stopped   chan struct{}
	shutdowns atomic.Int32
}

func newFakeServer(startErr error) *fakeServer {
	return &fakeServer{startErr: startErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	if f.shutdowns.Add(1) == 1 {
		close(f.stopped)
	}
	return nil
}

func TestServe(t *testing.T) {
	t.Run("stops-on-context-cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		api := newFakeServer(nil)
		metricsSrv := newFakeServer(nil)

		done := make(chan error, 1)
		go func() { done <- serve(ctx, discardLogger(), time.Second, api, metricsSrv) }()
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return")
		}
		assert.Equal(t, int32(1), api.shutdowns.Load())
		assert.Equal(t, int32(1), metricsSrv.shutdowns.Load())
	})

	t.Run("server-error-shuts-down-others", func(t *testing.T) {
		boom := errors.New("listen failed")
		failing := newFakeServer(boom)
		healthy := newFakeServer(nil)

		done := make(chan error, 1)
		go func() { done <- serve(context.Background(), discardLogger(), time.Second, failing, healthy) }()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, boom)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return")
		}
		assert.Equal(t, int32(1), healthy.shutdowns.Load())
	})
}
