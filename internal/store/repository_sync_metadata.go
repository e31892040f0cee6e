package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// syncMetadataRepository is the SQL-backed implementation of
// [SyncMetadataRepository]. It manages the "sync_metadata" table, which holds
// one version record per entity and serves as the source of truth for
// optimistic concurrency decisions.
type syncMetadataRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncMetadataRepository constructs a [SyncMetadataRepository] backed by
// the provided database connection and logger.
func NewSyncMetadataRepository(db *DB, logger *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{
		DB:     db,
		logger: logger,
	}
}

// Get retrieves the version record for (entityType, entityID).
// Returns [ErrMetadataNotFound] when the entity has never been synced.
func (r *syncMetadataRepository) Get(ctx context.Context, entityType models.EntityType, entityID string) (models.SyncMetadata, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSyncMetadata, string(entityType), entityID)

	var meta models.SyncMetadata
	err := row.Scan(
		&meta.EntityType,
		&meta.EntityID,
		&meta.Version,
		&meta.LastModifiedBy,
		&meta.LastModifiedAt,
		&meta.Checksum,
		&meta.ClientID,
		&meta.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncMetadata{}, ErrMetadataNotFound
		}
		log.Err(err).
			Str("func", "syncMetadataRepository.Get").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to scan sync metadata row")
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meta, nil
}

// Advance writes meta under the optimistic-concurrency guard.
//
// When expectedVersion is zero the entity has no prior version record, so a
// fresh row is inserted with ON CONFLICT DO NOTHING; a lost insert race
// surfaces as [ErrVersionConflict]. Otherwise the row is updated only where
// its stored version still equals expectedVersion, and zero affected rows
// surface as [ErrVersionConflict]. Either way the caller learns atomically
// whether it won the write.
func (r *syncMetadataRepository) Advance(ctx context.Context, meta models.SyncMetadata, expectedVersion int64) error {
	log := logger.FromContext(ctx)

	var (
		result sql.Result
		err    error
	)

	if expectedVersion == 0 {
		result, err = r.DB.ExecContext(ctx, insertSyncMetadata,
			string(meta.EntityType),
			meta.EntityID,
			meta.Version,
			meta.LastModifiedBy,
			meta.LastModifiedAt,
			meta.Checksum,
			meta.ClientID,
			meta.DeletedAt,
		)
	} else {
		result, err = r.DB.ExecContext(ctx, advanceSyncMetadata,
			string(meta.EntityType),
			meta.EntityID,
			meta.Version,
			meta.LastModifiedBy,
			meta.LastModifiedAt,
			meta.Checksum,
			meta.ClientID,
			meta.DeletedAt,
			expectedVersion,
		)
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.Advance").
			Str("entity_type", string(meta.EntityType)).
			Str("entity_id", meta.EntityID).
			Int64("expected_version", expectedVersion).
			Msg("failed to advance sync metadata")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.Advance").
			Str("entity_type", string(meta.EntityType)).
			Str("entity_id", meta.EntityID).
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// ListChanged retrieves the version records matching q, ordered by
// last_modified_at ascending with the entity key as a tiebreaker.
func (r *syncMetadataRepository) ListChanged(ctx context.Context, q MetadataQuery) ([]models.SyncMetadata, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListChangedQuery(q)
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.ListChanged").
			Str("exclude_client_id", q.ExcludeClientID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.ListChanged").
			Str("exclude_client_id", q.ExcludeClientID).
			Int("entity types count", len(q.EntityTypes)).
			Msg("failed to execute query for listing changed metadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SyncMetadata, 0, q.Limit)

	for rows.Next() {
		var meta models.SyncMetadata

		scanErr := rows.Scan(
			&meta.EntityType,
			&meta.EntityID,
			&meta.Version,
			&meta.LastModifiedBy,
			&meta.LastModifiedAt,
			&meta.Checksum,
			&meta.ClientID,
			&meta.DeletedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncMetadataRepository.ListChanged").
				Msg("failed to scan sync metadata row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, meta)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncMetadataRepository.ListChanged").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
