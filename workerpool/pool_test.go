package workerpool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_RejectsBadArguments(t *testing.T) {
	_, err := NewPool(1, 0, `p`)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPool(3, 2, `p`)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPool_NameReturnsConfiguredPrefix(t *testing.T) {
	p, err := NewPool(1, 1, `render`)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, `render`, p.Name())
}

func TestPool_TasksRunConcurrentlyUpToLimit(t *testing.T) {
	// scenario: 3 tasks each sleeping ~50ms on a pool with 3 concurrent
	// workers complete in ~50ms total, not ~150ms serially.
	p, err := NewPool(3, 3, `fanout`)
	require.NoError(t, err)
	defer p.Close()

	g := p.NewGroup()

	start := time.Now()
	for i := 0; i < 3; i++ {
		err := g.Push(func(any) {
			time.Sleep(50 * time.Millisecond)
		}, nil)
		require.NoError(t, err)
	}
	g.WaitAll()
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 120*time.Millisecond, "tasks should have run concurrently")
}

func TestPool_WaitAllCountsEveryTask(t *testing.T) {
	p, err := NewPool(2, 2, `count`)
	require.NoError(t, err)
	defer p.Close()

	g := p.NewGroup()

	var completed int64
	for i := 0; i < 20; i++ {
		err := g.Push(func(any) {
			atomic.AddInt64(&completed, 1)
		}, nil)
		require.NoError(t, err)
	}
	g.WaitAll()

	assert.EqualValues(t, 20, atomic.LoadInt64(&completed))
}

func TestPool_PushAfterCloseFails(t *testing.T) {
	p, err := NewPool(1, 1, `closed`)
	require.NoError(t, err)

	g := p.NewGroup()
	p.Close()

	err = g.Push(func(any) {}, nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPool_BacklogTaskQueuePushBlocksAndDrains(t *testing.T) {
	// a queue capacity smaller than the submitted task count forces Push to
	// fall back to WaitAll-and-retry; the whole submission must still
	// complete and every task must still run exactly once.
	p, err := NewPool(2, 2, `backlog`, WithTaskQueueCapacity(2))
	require.NoError(t, err)
	defer p.Close()

	g := p.NewGroup()

	var completed int64
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			err := g.Push(func(any) {
				time.Sleep(time.Millisecond)
				atomic.AddInt64(&completed, 1)
			}, nil)
			require.NoError(t, err)
		}
		g.WaitAll()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not complete in time")
	}

	assert.EqualValues(t, 10, atomic.LoadInt64(&completed))
}
