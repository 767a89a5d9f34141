package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

// Refresher reloads the item catalog
type Refresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshWorker reloads the catalog on a fixed interval. A failed
// refresh keeps the previous catalog and waits for the next tick.
type CatalogRefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	timer     *time.Timer
	shutdown  chan struct{}
	running   atomic.Bool
	wg        sync.WaitGroup
	mu        sync.Mutex
	closed    bool
}

// NewCatalogRefreshWorker creates a worker; an interval <= 0 disables scheduling
func NewCatalogRefreshWorker(refresher Refresher, interval time.Duration) *CatalogRefreshWorker {
	return &CatalogRefreshWorker{
		refresher: refresher,
		interval:  interval,
		shutdown:  make(chan struct{}),
	}
}

// Start schedules the first refresh one interval from now
func (w *CatalogRefreshWorker) Start() {
	if w.interval <= 0 {
		logger.FromContext(context.Background()).Info(LogMsgCatalogRefreshDisabled)
		return
	}
	w.scheduleNext()
}

func (w *CatalogRefreshWorker) scheduleNext() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.interval, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.execute(context.Background())
		w.scheduleNext()
	})

	logger.FromContext(context.Background()).Info(LogMsgCatalogRefreshScheduled,
		"next_refresh_at", time.Now().UTC().Add(w.interval))
}

// Trigger runs a refresh immediately in the background, unless one is
// already in flight. It reports whether a refresh was started.
func (w *CatalogRefreshWorker) Trigger(ctx context.Context) bool {
	started := w.execute(context.WithoutCancel(ctx))
	if started {
		logger.FromContext(ctx).Info(LogMsgCatalogRefreshManualTrigger)
	}
	return started
}

// execute performs a refresh in a tracked goroutine
func (w *CatalogRefreshWorker) execute(ctx context.Context) bool {
	w.mu.Lock()
	if w.closed || !w.running.CompareAndSwap(false, true) {
		w.mu.Unlock()
		return false
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		defer w.running.Store(false)

		ctx, cancel := context.WithTimeout(ctx, w.refreshTimeout())
		defer cancel()

		log := logger.FromContext(ctx)
		log.Info(LogMsgCatalogRefreshStarting)
		start := time.Now()
		if err := w.refresher.Refresh(ctx); err != nil {
			log.Error(LogMsgCatalogRefreshFailed, "error", err)
			return
		}
		log.Info(LogMsgCatalogRefreshCompleted, "duration", time.Since(start))
	}()
	return true
}

func (w *CatalogRefreshWorker) refreshTimeout() time.Duration {
	timeout := w.interval / RefreshTimeoutFraction
	if timeout < MinRefreshTimeout {
		return MinRefreshTimeout
	}
	return timeout
}

// Shutdown cancels the pending timer and waits for an in-flight refresh
func (w *CatalogRefreshWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down catalog refresh worker")

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending catalog refresh")
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Catalog refresh worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Catalog refresh worker shutdown timeout, a refresh may still be running")
		return ctx.Err()
	}
}
