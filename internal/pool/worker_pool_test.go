package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolExecutesTasks(t *testing.T) {
	wp := New(4)
	defer wp.Close()

	var counter atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		err := wp.Submit(context.Background(), func() {
			defer wg.Done()
			counter.Add(1)
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int32(100), counter.Load())
}

func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	wp := New(2)
	wp.Close()

	err := wp.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWorkerPoolDoubleClose(t *testing.T) {
	wp := New(2)
	wp.Close()
	assert.NotPanics(t, func() { wp.Close() })
}

func TestWorkerPoolSubmitCancelledContext(t *testing.T) {
	wp := New(1)
	defer wp.Close()

	// Saturate the pool so the work channel backs up: one task running,
	// two filling the buffered channel.
	block := make(chan struct{})
	defer close(block)
	for i := 0; i < 3; i++ {
		_ = wp.Submit(context.Background(), func() { <-block })
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.Submit(ctx, func() {})
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestWorkerPoolDefaultSize(t *testing.T) {
	wp := New(0)
	defer wp.Close()
	assert.Greater(t, wp.Size(), 0)
}
