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

// syncConflictRepository is the SQL-backed implementation of
// [SyncConflictRepository]. It manages the "sync_conflicts" table, the audit
// record of every detected version conflict and its eventual resolution.
type syncConflictRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncConflictRepository constructs a [SyncConflictRepository] backed by
// the provided database connection and logger.
func NewSyncConflictRepository(db *DB, logger *logger.Logger) SyncConflictRepository {
	return &syncConflictRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a newly detected conflict and returns it unchanged.
func (r *syncConflictRepository) Create(ctx context.Context, conflict models.SyncConflict) (models.SyncConflict, error) {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertSyncConflict,
		conflict.ID,
		conflict.UserID,
		string(conflict.EntityType),
		conflict.EntityID,
		conflict.ClientVersion,
		conflict.ServerVersion,
		[]byte(conflict.ClientData),
		[]byte(conflict.ServerData),
		string(conflict.Resolution),
		conflict.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.Create").
			Str("conflict_id", conflict.ID).
			Str("entity_type", string(conflict.EntityType)).
			Str("entity_id", conflict.EntityID).
			Msg("failed to insert sync conflict")
		return models.SyncConflict{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return conflict, nil
}

// GetByID retrieves a conflict by its identifier.
// Returns [ErrConflictNotFound] when no such conflict exists.
func (r *syncConflictRepository) GetByID(ctx context.Context, id string) (models.SyncConflict, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSyncConflictByID, id)

	conflict, err := scanSyncConflictRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncConflict{}, ErrConflictNotFound
		}
		log.Err(err).
			Str("func", "syncConflictRepository.GetByID").
			Str("conflict_id", id).
			Msg("failed to scan sync conflict row")
		return models.SyncConflict{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return conflict, nil
}

// Resolve closes an open conflict with the chosen resolution strategy.
//
// The update is guarded by "resolved_at IS NULL" so resolution is a one-way
// transition. Zero affected rows mean the conflict either does not exist
// ([ErrConflictNotFound]) or was already resolved
// ([ErrConflictAlreadyResolved]); a follow-up read disambiguates the two.
func (r *syncConflictRepository) Resolve(ctx context.Context, id string, resolution models.Resolution, resolvedBy int64, resolvedAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, resolveSyncConflict, id, string(resolution), resolvedBy, resolvedAt)
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.Resolve").
			Str("conflict_id", id).
			Str("resolution", string(resolution)).
			Msg("failed to resolve sync conflict")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.Resolve").
			Str("conflict_id", id).
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrConflictAlreadyResolved
	}

	return nil
}

// ListUnresolved retrieves one page of the user's open conflicts, newest
// first, plus the total number of open conflicts matching the filter.
func (r *syncConflictRepository) ListUnresolved(ctx context.Context, filter ConflictFilter) ([]models.SyncConflict, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUnresolvedQuery(filter, false)
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.ListUnresolved").
			Int64("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.ListUnresolved").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing unresolved conflicts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	conflicts := make([]models.SyncConflict, 0, filter.Limit)

	for rows.Next() {
		conflict, scanErr := scanSyncConflictRow(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncConflictRepository.ListUnresolved").
				Int64("user_id", filter.UserID).
				Msg("failed to scan sync conflict row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		conflicts = append(conflicts, conflict)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncConflictRepository.ListUnresolved").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildListUnresolvedQuery(filter, true)
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.ListUnresolved").
			Int64("user_id", filter.UserID).
			Msg("failed to create count query")
		return nil, 0, err
	}

	var total int64
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.ListUnresolved").
			Int64("user_id", filter.UserID).
			Msg("failed to count unresolved conflicts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return conflicts, total, nil
}

// CountOpen counts the user's conflicts that still await resolution.
func (r *syncConflictRepository) CountOpen(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	err := r.DB.QueryRowContext(ctx, countOpenSyncConflicts, userID).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.CountOpen").
			Int64("user_id", userID).
			Msg("failed to count open conflicts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// DeleteResolvedBefore removes resolved conflicts older than cutoff.
// Returns the number of removed rows.
func (r *syncConflictRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteResolvedSyncConflicts, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.DeleteResolvedBefore").
			Time("cutoff", cutoff).
			Msg("failed to delete resolved conflicts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "syncConflictRepository.DeleteResolvedBefore").
			Msg("failed to get affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return removed, nil
}

// scanSyncConflictRow scans one sync_conflicts row in canonical column order.
// The scan argument abstracts over *sql.Row and *sql.Rows.
func scanSyncConflictRow(scan func(dest ...any) error) (models.SyncConflict, error) {
	var (
		conflict   models.SyncConflict
		clientData []byte
		serverData []byte
	)

	err := scan(
		&conflict.ID,
		&conflict.UserID,
		&conflict.EntityType,
		&conflict.EntityID,
		&conflict.ClientVersion,
		&conflict.ServerVersion,
		&clientData,
		&serverData,
		&conflict.Resolution,
		&conflict.ResolvedBy,
		&conflict.ResolvedAt,
		&conflict.CreatedAt,
	)
	if err != nil {
		return models.SyncConflict{}, err
	}

	conflict.ClientData = json.RawMessage(clientData)
	conflict.ServerData = json.RawMessage(serverData)

	return conflict, nil
}
