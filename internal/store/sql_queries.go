package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	upsertSyncClient = `
		INSERT INTO sync_clients (
			id, user_id, device_id, device_name, is_active, sync_token, created_at, updated_at
		) VALUES ($1, $2, $3, $4, TRUE, '', $5, $5)
		ON CONFLICT (user_id, device_id) DO UPDATE SET
			device_name = CASE
				WHEN excluded.device_name <> '' THEN excluded.device_name
				ELSE sync_clients.device_name
			END,
			is_active  = TRUE,
			updated_at = excluded.updated_at
		RETURNING id, user_id, device_id, device_name, is_active, last_sync_at, sync_token, created_at, updated_at;`

	getSyncClientByID = `
		SELECT id, user_id, device_id, device_name, is_active, last_sync_at, sync_token, created_at, updated_at
		FROM sync_clients
		WHERE id = $1;`

	getSyncClientByDevice = `
		SELECT id, user_id, device_id, device_name, is_active, last_sync_at, sync_token, created_at, updated_at
		FROM sync_clients
		WHERE user_id = $1 AND device_id = $2;`

	listSyncClientsByUser = `
		SELECT id, user_id, device_id, device_name, is_active, last_sync_at, sync_token, created_at, updated_at
		FROM sync_clients
		WHERE user_id = $1
		ORDER BY created_at ASC;`

	updateSyncClientState = `
		UPDATE sync_clients
		SET sync_token = $2, last_sync_at = $3, updated_at = $3
		WHERE id = $1;`

	deactivateSyncClient = `
		UPDATE sync_clients
		SET is_active = FALSE, updated_at = $3
		WHERE user_id = $1 AND device_id = $2;`

	getSyncMetadata = `
		SELECT entity_type, entity_id, version, last_modified_by, last_modified_at, checksum, client_id, deleted_at
		FROM sync_metadata
		WHERE entity_type = $1 AND entity_id = $2;`

	insertSyncMetadata = `
		INSERT INTO sync_metadata (
			entity_type, entity_id, version, last_modified_by, last_modified_at, checksum, client_id, deleted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (entity_type, entity_id) DO NOTHING;`

	advanceSyncMetadata = `
		UPDATE sync_metadata
		SET version = $3, last_modified_by = $4, last_modified_at = $5, checksum = $6, client_id = $7, deleted_at = $8
		WHERE entity_type = $1 AND entity_id = $2 AND version = $9;`

	insertSyncQueue = `
		INSERT INTO sync_queue (
			id, client_id, entity_type, entity_id, operation, payload,
			client_version, status, retry_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	getSyncQueueByID = `
		SELECT id, client_id, entity_type, entity_id, operation, payload, client_version,
			status, conflict_data, resolution, retry_count, error_message, created_at, processed_at
		FROM sync_queue
		WHERE id = $1;`

	markSyncQueueSyncing = `
		UPDATE sync_queue
		SET status = 'SYNCING'
		WHERE id = $1;`

	markSyncQueueCompleted = `
		UPDATE sync_queue
		SET status = 'COMPLETED', processed_at = $2, error_message = NULL
		WHERE id = $1;`

	markSyncQueueConflict = `
		UPDATE sync_queue
		SET status = 'CONFLICT', conflict_data = $2
		WHERE id = $1;`

	markSyncQueueFailed = `
		UPDATE sync_queue
		SET status = 'FAILED', retry_count = retry_count + 1, error_message = $2
		WHERE id = $1;`

	listFailedSyncQueue = `
		SELECT id, client_id, entity_type, entity_id, operation, payload, client_version,
			status, conflict_data, resolution, retry_count, error_message, created_at, processed_at
		FROM sync_queue
		WHERE client_id = $1 AND status = 'FAILED' AND retry_count < $2
		ORDER BY created_at ASC;`

	countSyncQueueByStatus = `
		SELECT COUNT(*)
		FROM sync_queue
		WHERE client_id = $1 AND status = $2;`

	deleteProcessedSyncQueue = `
		DELETE FROM sync_queue
		WHERE (status = 'COMPLETED' AND processed_at < $1)
		   OR (status = 'FAILED' AND retry_count >= $2 AND created_at < $1);`

	insertSyncConflict = `
		INSERT INTO sync_conflicts (
			id, user_id, entity_type, entity_id, client_version, server_version,
			client_data, server_data, resolution, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	getSyncConflictByID = `
		SELECT id, user_id, entity_type, entity_id, client_version, server_version,
			client_data, server_data, resolution, resolved_by, resolved_at, created_at
		FROM sync_conflicts
		WHERE id = $1;`

	resolveSyncConflict = `
		UPDATE sync_conflicts
		SET resolution = $2, resolved_by = $3, resolved_at = $4
		WHERE id = $1 AND resolved_at IS NULL;`

	countOpenSyncConflicts = `
		SELECT COUNT(*)
		FROM sync_conflicts
		WHERE user_id = $1 AND resolved_at IS NULL;`

	deleteResolvedSyncConflicts = `
		DELETE FROM sync_conflicts
		WHERE resolved_at IS NOT NULL AND resolved_at < $1;`
)

// metadataColumns is the canonical column order of sync_metadata selects.
const metadataColumns = "entity_type, entity_id, version, last_modified_by, last_modified_at, checksum, client_id, deleted_at"

// buildListChangedQuery builds the delta feed query over sync_metadata.
//
// The echo-suppression clause admits rows last written by a different client
// or by no sync client at all (client_id IS NULL). Ordering is by
// last_modified_at with the entity key as a tiebreaker so that pagination is
// deterministic when many rows share a timestamp.
func buildListChangedQuery(q MetadataQuery) (string, []any, error) {
	builder := sq.Select(metadataColumns).
		From("sync_metadata").
		Where(sq.Gt{"last_modified_at": q.Since}).
		Where(sq.Or{
			sq.NotEq{"client_id": q.ExcludeClientID},
			sq.Eq{"client_id": nil},
		}).
		OrderBy("last_modified_at ASC", "entity_type ASC", "entity_id ASC").
		PlaceholderFormat(sq.Dollar)

	if len(q.EntityTypes) > 0 {
		types := make([]string, 0, len(q.EntityTypes))
		for _, t := range q.EntityTypes {
			types = append(types, string(t))
		}
		builder = builder.Where(sq.Eq{"entity_type": types})
	}

	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		builder = builder.Offset(uint64(q.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListUnresolvedQuery builds the paged open-conflict listing for one
// user, optionally narrowed to an entity type. When count is true the
// builder produces the matching COUNT(*) query instead.
func buildListUnresolvedQuery(filter ConflictFilter, count bool) (string, []any, error) {
	columns := `id, user_id, entity_type, entity_id, client_version, server_version,
		client_data, server_data, resolution, resolved_by, resolved_at, created_at`
	if count {
		columns = "COUNT(*)"
	}

	builder := sq.Select(columns).
		From("sync_conflicts").
		Where(sq.Eq{"user_id": filter.UserID}).
		Where(sq.Eq{"resolved_at": nil}).
		PlaceholderFormat(sq.Dollar)

	if filter.EntityType != nil {
		builder = builder.Where(sq.Eq{"entity_type": string(*filter.EntityType)})
	}

	if !count {
		builder = builder.OrderBy("created_at DESC")
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset > 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
