package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/worker"
)

type loopWorker struct {
	*worker.BaseWorker
	ticks atomic.Int32
}

func (w *loopWorker) Start(ctx context.Context) error {
	for !w.IsStopped() {
		w.ticks.Add(1)
		w.Pause(ctx, 5*time.Millisecond)
	}
	return nil
}

type stuckWorker struct {
	*worker.BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(ctx context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StartWithoutWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	w := &loopWorker{BaseWorker: worker.NewBaseWorker("loop", "group", zap.NewNop())}
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, func() bool { return w.ticks.Load() > 0 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))
	assert.True(t, w.IsStopped())

	// повторная остановка безопасна
	assert.NoError(t, w.Stop())
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	w := &stuckWorker{
		BaseWorker: worker.NewBaseWorker("stuck", "group", zap.NewNop()),
		release:    make(chan struct{}),
	}
	defer close(w.release)
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := m.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBaseWorker_PauseWakesOnStop(t *testing.T) {
	w := worker.NewBaseWorker("pause", "group", zap.NewNop())

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = w.Stop()
	}()

	start := time.Now()
	w.Pause(context.Background(), time.Minute)
	assert.Less(t, time.Since(start), 5*time.Second)
}
