package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClientNotFound is returned when a query targets a sync client
	// (by id or by user/device pair) that does not exist.
	ErrClientNotFound = errors.New("sync client was not found")

	// ErrMetadataNotFound is returned when no SyncMetadata row exists for
	// the requested (entity_type, entity_id) pair. For the change processor
	// this is the first-write case, not a failure.
	ErrMetadataNotFound = errors.New("sync metadata was not found")

	// ErrQueueItemNotFound is returned when a queue status transition
	// targets a row that does not exist.
	ErrQueueItemNotFound = errors.New("sync queue item was not found")

	// ErrConflictNotFound is returned when a conflict lookup or resolution
	// targets a row that does not exist.
	ErrConflictNotFound = errors.New("sync conflict was not found")

	// ErrConflictAlreadyResolved is returned when a resolution is applied
	// to a conflict whose resolved_at is already set. Resolution is a
	// one-way transition.
	ErrConflictAlreadyResolved = errors.New("sync conflict is already resolved")

	// ErrVersionConflict is returned when the optimistic-locking guard
	// fails: the expected version does not match the current version stored
	// in the database, meaning another client advanced the entity since the
	// caller last observed it.
	ErrVersionConflict = errors.New("sync metadata version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
