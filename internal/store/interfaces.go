package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rcldesign/asset-manager-sub006/models"
)

// MetadataQuery selects changed SyncMetadata rows for the delta feed.
//
// ExcludeClientID implements echo suppression: rows whose client_id equals
// it are omitted, while rows with a NULL client_id (writes from non-sync
// paths) always pass. Limit is expected to be pageSize+1 so that the caller
// can detect whether more rows remain.
type MetadataQuery struct {
	Since           time.Time
	EntityTypes     []models.EntityType
	ExcludeClientID string
	Limit           int
	Offset          int
}

// ConflictFilter selects a page of conflicts for one user.
type ConflictFilter struct {
	UserID     int64
	EntityType *models.EntityType
	Limit      int
	Offset     int
}

// SyncClientRepository persists registered (user, device) pairs.
type SyncClientRepository interface {
	// Upsert creates the client for (client.UserID, client.DeviceID) or, if
	// it already exists, updates its device name and reactivates it.
	// Returns the stored row.
	Upsert(ctx context.Context, client models.SyncClient) (models.SyncClient, error)

	GetByID(ctx context.Context, id string) (models.SyncClient, error)
	GetByDevice(ctx context.Context, userID int64, deviceID string) (models.SyncClient, error)
	ListByUser(ctx context.Context, userID int64) ([]models.SyncClient, error)

	// UpdateSyncState rotates the client's sync token and stamps lastSyncAt.
	UpdateSyncState(ctx context.Context, clientID, syncToken string, lastSyncAt time.Time) error

	// Deactivate marks the device inactive. The row is never deleted.
	Deactivate(ctx context.Context, userID int64, deviceID string) error
}

// SyncMetadataRepository persists per-entity version records.
type SyncMetadataRepository interface {
	// Get returns the metadata row for (entityType, entityID) or
	// ErrMetadataNotFound.
	Get(ctx context.Context, entityType models.EntityType, entityID string) (models.SyncMetadata, error)

	// Advance applies meta under an optimistic-concurrency guard.
	//
	// expectedVersion == 0 inserts a fresh row (first write); a concurrent
	// insert of the same entity surfaces as ErrVersionConflict. Otherwise
	// the row is updated only where version == expectedVersion; zero
	// affected rows surface as ErrVersionConflict. This is the serialized
	// read-check-write critical section of the engine.
	Advance(ctx context.Context, meta models.SyncMetadata, expectedVersion int64) error

	// ListChanged returns rows matching q ordered by last_modified_at
	// ascending for deterministic, resumable pagination.
	ListChanged(ctx context.Context, q MetadataQuery) ([]models.SyncMetadata, error)
}

// SyncQueueRepository persists the durable inbound-change lifecycle.
type SyncQueueRepository interface {
	Create(ctx context.Context, item models.SyncQueue) error
	GetByID(ctx context.Context, id string) (models.SyncQueue, error)

	MarkSyncing(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string, processedAt time.Time) error
	MarkConflict(ctx context.Context, id string, conflictData json.RawMessage) error

	// MarkFailed records the error message, increments retry_count and
	// moves the item to FAILED.
	MarkFailed(ctx context.Context, id, errorMessage string) error

	// ListFailed returns FAILED items of the client with retry_count below
	// maxRetryCount, oldest first.
	ListFailed(ctx context.Context, clientID string, maxRetryCount int) ([]models.SyncQueue, error)

	CountByStatus(ctx context.Context, clientID string, status models.QueueStatus) (int64, error)

	// DeleteProcessedBefore removes COMPLETED items processed before cutoff
	// and terminally-exhausted FAILED items created before cutoff.
	// Returns the number of removed rows.
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SyncConflictRepository persists detected version conflicts.
type SyncConflictRepository interface {
	Create(ctx context.Context, conflict models.SyncConflict) (models.SyncConflict, error)
	GetByID(ctx context.Context, id string) (models.SyncConflict, error)

	// Resolve closes an open conflict. Returns ErrConflictAlreadyResolved
	// when resolved_at is already set and ErrConflictNotFound when the row
	// does not exist.
	Resolve(ctx context.Context, id string, resolution models.Resolution, resolvedBy int64, resolvedAt time.Time) error

	// ListUnresolved returns one page of open conflicts plus the total
	// number of open conflicts matching the filter.
	ListUnresolved(ctx context.Context, filter ConflictFilter) ([]models.SyncConflict, int64, error)

	CountOpen(ctx context.Context, userID int64) (int64, error)

	// DeleteResolvedBefore removes resolved conflicts older than cutoff.
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The sync queue uses it to distinguish transient store failures
// from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
