package workers

import (
	"context"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
)

// RetentionWorker periodically sweeps sync bookkeeping past its retention
// window: COMPLETED queue items, exhausted FAILED items, and resolved
// conflicts. Sync metadata is never part of the sweep.
type RetentionWorker struct {
	cleaner  Cleaner
	interval time.Duration
	days     int

	done chan struct{}

	logger *logger.Logger
}

// NewRetentionWorker builds a retention sweeper from the sync configuration.
// A zero or negative RetentionInterval disables the worker: Run becomes a
// logged no-op.
func NewRetentionWorker(cleaner Cleaner, cfg config.Sync, logger *logger.Logger) *RetentionWorker {
	return &RetentionWorker{
		cleaner:  cleaner,
		interval: cfg.RetentionInterval,
		days:     cfg.RetentionDays,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the periodic sweep in a background goroutine and returns
// immediately.
func (w *RetentionWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().
			Str("func", "*RetentionWorker.Run").
			Msg("retention sweeper disabled: no interval configured")
		return
	}

	w.logger.Info().
		Str("func", "*RetentionWorker.Run").
		Dur("interval", w.interval).
		Int("retention_days", w.days).
		Msg("retention sweeper started")

	go w.loop()
}

// Stop terminates the sweep loop. Safe to call even when Run was a no-op.
func (w *RetentionWorker) Stop() {
	close(w.done)
}

func (w *RetentionWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *RetentionWorker) sweep() {
	removed, err := w.cleaner.CleanupOldSyncData(context.Background(), w.days)
	if err != nil {
		w.logger.Err(err).
			Str("func", "*RetentionWorker.sweep").
			Msg("retention sweep failed")
		return
	}

	w.logger.Debug().
		Str("func", "*RetentionWorker.sweep").
		Int64("removed", removed).
		Msg("retention sweep finished")
}
