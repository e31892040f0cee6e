package sync

import (
	"context"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/models"
	"github.com/sethvargo/go-retry"
)

// RetryFailedSync re-drives the device's FAILED queue items through the
// processor. Only items with retry budget left (retryCount below the bound)
// are attempted; each re-drive reuses the original queue row, so a repeat
// failure increments the same retry count instead of escalating.
//
// Transient store failures inside one attempt are additionally retried in
// place with exponential backoff before counting as a failure.
func (e *Engine) RetryFailedSync(ctx context.Context, userID int64, deviceID string) (models.RetryReport, error) {
	log := logger.FromContext(ctx)

	client, err := e.clients.GetByDevice(ctx, userID, deviceID)
	if err != nil {
		return models.RetryReport{}, err
	}

	items, err := e.queue.ListFailed(ctx, client.ID, models.MaxRetryCount)
	if err != nil {
		return models.RetryReport{}, err
	}

	var report models.RetryReport
	for _, item := range items {
		report.Processed++

		outcome := e.retryItem(ctx, client, userID, item)
		switch outcome.Kind {
		case OutcomeApplied:
			report.Succeeded++
		case OutcomeFailed:
			report.Failed++
		case OutcomeConflict:
			// not applied, but no longer retryable either; the conflict row
			// awaits an explicit resolution
			report.Failed++
		}
	}

	log.Info().
		Str("func", "Engine.RetryFailedSync").
		Int64("user_id", userID).
		Str("device_id", deviceID).
		Int("processed", report.Processed).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("failed sync retry pass finished")

	return report, nil
}

// retryItem re-enters the processor with the stored queue item, wrapping the
// attempt in a short in-place backoff loop for transient store failures.
func (e *Engine) retryItem(ctx context.Context, client models.SyncClient, userID int64, item models.SyncQueue) ChangeOutcome {
	var outcome ChangeOutcome

	backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))
	_ = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := e.queue.MarkSyncing(ctx, item.ID); err != nil {
			outcome = failedOutcome(item.ID, err)
			return nil
		}

		outcome = e.processQueued(ctx, client, userID, item, nil)
		if outcome.Kind == OutcomeFailed && e.classify(outcome.Err) == store.Retryable {
			return retry.RetryableError(outcome.Err)
		}

		return nil
	})

	return outcome
}

// CleanupOldSyncData removes COMPLETED queue items and resolved conflicts
// older than daysToKeep. SyncMetadata is never touched: tombstones must stay
// discoverable for lagging clients.
func (e *Engine) CleanupOldSyncData(ctx context.Context, daysToKeep int) (int64, error) {
	log := logger.FromContext(ctx)

	if daysToKeep <= 0 {
		daysToKeep = e.cfg.RetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -daysToKeep)

	queueRemoved, err := e.queue.DeleteProcessedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	conflictsRemoved, err := e.conflicts.DeleteResolvedBefore(ctx, cutoff)
	if err != nil {
		return queueRemoved, err
	}

	log.Info().
		Str("func", "Engine.CleanupOldSyncData").
		Time("cutoff", cutoff).
		Int64("queue_items_removed", queueRemoved).
		Int64("conflicts_removed", conflictsRemoved).
		Msg("retention sweep finished")

	return queueRemoved + conflictsRemoved, nil
}
