package progressrunner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/internal/domain/model"
	"github.com/target/rmsgas-api/internal/observability/metrics"
	"github.com/target/rmsgas-api/internal/observability/statsd"
)

func startPool(t *testing.T, p *Pool) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("pool did not stop")
		}
	})
	return cancel
}

func TestPool_EnqueueBackpressure(t *testing.T) {
	rec := &statsd.Recorder{}
	p, err := NewPool(PoolOptions{
		QueueSize: 1,
		Run:       func(context.Context, *model.Optimization) {},
		Metrics:   rec,
	})
	require.NoError(t, err)

	require.NoError(t, p.Enqueue(&model.Optimization{ID: 1}))
	assert.ErrorIs(t, p.Enqueue(&model.Optimization{ID: 2}), ErrQueueFull)
	assert.Equal(t, 1, p.Pending())

	depth := rec.Named(metrics.QueueDepth)
	require.Len(t, depth, 1)
	assert.InDelta(t, 1.0, depth[0].Value, 0)
}

func TestPool_RunsEveryQueuedJob(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = map[int64]bool{}
		wg   sync.WaitGroup
	)
	wg.Add(5)
	p, err := NewPool(PoolOptions{
		Concurrency: 3,
		QueueSize:   10,
		RunTimeout:  time.Minute,
		Run: func(ctx context.Context, job *model.Optimization) {
			defer wg.Done()
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			mu.Lock()
			seen[job.ID] = true
			mu.Unlock()
		},
	})
	require.NoError(t, err)
	startPool(t, p)

	for id := int64(1); id <= 5; id++ {
		require.NoError(t, p.Enqueue(&model.Optimization{ID: id}))
	}
	waitTimeout(t, &wg)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 5)
}

func TestPool_SurvivesPanickingRun(t *testing.T) {
	ran := make(chan int64, 2)
	p, err := NewPool(PoolOptions{
		Run: func(_ context.Context, job *model.Optimization) {
			ran <- job.ID
			if job.ID == 1 {
				panic("boom")
			}
		},
	})
	require.NoError(t, err)
	startPool(t, p)

	require.NoError(t, p.Enqueue(&model.Optimization{ID: 1}))
	assert.Equal(t, int64(1), <-ran)
	require.NoError(t, p.Enqueue(&model.Optimization{ID: 2}))
	select {
	case id := <-ran:
		assert.Equal(t, int64(2), id)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not survive the panic")
	}
}

func TestNewPool_RequiresRunFunc(t *testing.T) {
	_, err := NewPool(PoolOptions{})
	require.Error(t, err)
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for runs")
	}
}
