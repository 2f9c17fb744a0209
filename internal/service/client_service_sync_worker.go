// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/workers"
)

const defaultSyncInterval = 30 * time.Second

// SyncWorker drains the outbox in the background: once at start, after
// every nudge and on every tick. Ticks also prune old synced entries and act
// as the connectivity re-check while offline.
type SyncWorker struct {
	svc      SyncService
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

var _ workers.Worker = (*SyncWorker)(nil)

// NewSyncWorker creates a SyncWorker over svc. A non-positive interval
// defaults to 30 seconds. The worker is idle until Run is called.
func NewSyncWorker(svc SyncService, interval time.Duration, logger *logger.Logger) *SyncWorker {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &SyncWorker{
		svc:      svc,
		interval: interval,
		logger:   logger,
	}
}

// Run stops any previously running loop, then launches the background
// goroutine. It exits when ctx is cancelled or Stop is called.
func (w *SyncWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.drain(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-w.svc.Nudges():
				w.drain(jobCtx)
			case <-t.C:
				w.drain(jobCtx)
				w.prune(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SyncWorker) drain(ctx context.Context) {
	if err := w.svc.Drain(ctx); err != nil && ctx.Err() == nil {
		w.logger.Err(err).Str("func", "SyncWorker.drain").Msg("outbox drain failed")
	}
}

func (w *SyncWorker) prune(ctx context.Context) {
	n, err := w.svc.Prune(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "SyncWorker.prune").Msg("outbox prune failed")
		return
	}
	if n > 0 {
		w.logger.Debug().Str("func", "SyncWorker.prune").Int64("pruned", n).Msg("synced outbox entries pruned")
	}
}
