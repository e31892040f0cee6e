package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// syncQueueRepository is the SQL-backed implementation of
// [SyncQueueRepository]. It manages the "sync_queue" table, the durable
// record of every inbound change and its processing lifecycle.
type syncQueueRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncQueueRepository constructs a [SyncQueueRepository] backed by the
// provided database connection and logger.
func NewSyncQueueRepository(db *DB, logger *logger.Logger) SyncQueueRepository {
	return &syncQueueRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new queue item in PENDING state.
func (r *syncQueueRepository) Create(ctx context.Context, item models.SyncQueue) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertSyncQueue,
		item.ID,
		item.ClientID,
		string(item.EntityType),
		item.EntityID,
		string(item.Operation),
		[]byte(item.Payload),
		item.ClientVersion,
		string(item.Status),
		item.RetryCount,
		item.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Create").
			Str("queue_id", item.ID).
			Str("client_id", item.ClientID).
			Msg("failed to insert sync queue item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetByID retrieves a queue item by its identifier.
// Returns [ErrQueueItemNotFound] when no such item exists.
func (r *syncQueueRepository) GetByID(ctx context.Context, id string) (models.SyncQueue, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSyncQueueByID, id)

	item, err := scanSyncQueueRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncQueue{}, ErrQueueItemNotFound
		}
		log.Err(err).
			Str("func", "syncQueueRepository.GetByID").
			Str("queue_id", id).
			Msg("failed to scan sync queue row")
		return models.SyncQueue{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// MarkSyncing moves the item to SYNCING.
func (r *syncQueueRepository) MarkSyncing(ctx context.Context, id string) error {
	return r.markStatus(ctx, "syncQueueRepository.MarkSyncing", markSyncQueueSyncing, id)
}

// MarkCompleted moves the item to COMPLETED, stamps processedAt and clears
// any previous error message.
func (r *syncQueueRepository) MarkCompleted(ctx context.Context, id string, processedAt time.Time) error {
	return r.markStatus(ctx, "syncQueueRepository.MarkCompleted", markSyncQueueCompleted, id, processedAt)
}

// MarkConflict moves the item to CONFLICT and records the conflict snapshot.
func (r *syncQueueRepository) MarkConflict(ctx context.Context, id string, conflictData json.RawMessage) error {
	return r.markStatus(ctx, "syncQueueRepository.MarkConflict", markSyncQueueConflict, id, []byte(conflictData))
}

// MarkFailed moves the item to FAILED, records the error message and
// increments retry_count.
func (r *syncQueueRepository) MarkFailed(ctx context.Context, id, errorMessage string) error {
	return r.markStatus(ctx, "syncQueueRepository.MarkFailed", markSyncQueueFailed, id, errorMessage)
}

// markStatus executes a single-row status transition and maps zero affected
// rows to [ErrQueueItemNotFound].
func (r *syncQueueRepository) markStatus(ctx context.Context, funcName, query string, id string, args ...any) error {
	log := logger.FromContext(ctx)

	queryArgs := append([]any{id}, args...)

	result, err := r.DB.ExecContext(ctx, query, queryArgs...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("queue_id", id).
			Msg("failed to update sync queue status")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("queue_id", id).
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrQueueItemNotFound
	}

	return nil
}

// ListFailed retrieves the client's FAILED items that still have retry budget
// left, oldest first.
func (r *syncQueueRepository) ListFailed(ctx context.Context, clientID string, maxRetryCount int) ([]models.SyncQueue, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listFailedSyncQueue, clientID, maxRetryCount)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.ListFailed").
			Str("client_id", clientID).
			Msg("failed to execute query for listing failed sync queue items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.SyncQueue, 0, 16)

	for rows.Next() {
		item, scanErr := scanSyncQueueRow(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncQueueRepository.ListFailed").
				Str("client_id", clientID).
				Msg("failed to scan sync queue row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncQueueRepository.ListFailed").
			Str("client_id", clientID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// CountByStatus counts the client's queue items currently in the given
// status.
func (r *syncQueueRepository) CountByStatus(ctx context.Context, clientID string, status models.QueueStatus) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	err := r.DB.QueryRowContext(ctx, countSyncQueueByStatus, clientID, string(status)).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.CountByStatus").
			Str("client_id", clientID).
			Str("status", string(status)).
			Msg("failed to count sync queue items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// DeleteProcessedBefore removes COMPLETED items processed before cutoff and
// FAILED items created before cutoff whose retry budget is exhausted.
// Returns the number of removed rows.
func (r *syncQueueRepository) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteProcessedSyncQueue, cutoff, models.MaxRetryCount)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.DeleteProcessedBefore").
			Time("cutoff", cutoff).
			Msg("failed to delete processed sync queue items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.DeleteProcessedBefore").
			Msg("failed to get affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return removed, nil
}

// scanSyncQueueRow scans one sync_queue row in canonical column order.
// The scan argument abstracts over *sql.Row and *sql.Rows.
func scanSyncQueueRow(scan func(dest ...any) error) (models.SyncQueue, error) {
	var (
		item         models.SyncQueue
		payload      []byte
		conflictData []byte
		resolution   sql.NullString
	)

	err := scan(
		&item.ID,
		&item.ClientID,
		&item.EntityType,
		&item.EntityID,
		&item.Operation,
		&payload,
		&item.ClientVersion,
		&item.Status,
		&conflictData,
		&resolution,
		&item.RetryCount,
		&item.ErrorMessage,
		&item.CreatedAt,
		&item.ProcessedAt,
	)
	if err != nil {
		return models.SyncQueue{}, err
	}

	item.Payload = json.RawMessage(payload)
	if len(conflictData) > 0 {
		item.ConflictData = json.RawMessage(conflictData)
	}
	if resolution.Valid {
		res := models.Resolution(resolution.String)
		item.Resolution = &res
	}

	return item, nil
}
