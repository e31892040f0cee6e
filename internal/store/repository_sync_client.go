package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// syncClientRepository is the SQL-backed implementation of
// [SyncClientRepository]. It manages the "sync_clients" table through the
// embedded [*DB] connection.
type syncClientRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncClientRepository constructs a [SyncClientRepository] backed by the
// provided database connection and logger.
func NewSyncClientRepository(db *DB, logger *logger.Logger) SyncClientRepository {
	return &syncClientRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert creates a sync client for (client.UserID, client.DeviceID) or, when
// the pair is already registered, updates its device name and reactivates it.
// The stored row is returned in both cases, so repeated registrations of the
// same device keep their original id and sync token.
func (r *syncClientRepository) Upsert(ctx context.Context, client models.SyncClient) (models.SyncClient, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, upsertSyncClient,
		client.ID,
		client.UserID,
		client.DeviceID,
		client.DeviceName,
		time.Now(),
	)

	stored, err := scanSyncClient(row)
	if err != nil {
		log.Err(err).
			Str("func", "syncClientRepository.Upsert").
			Int64("user_id", client.UserID).
			Str("device_id", client.DeviceID).
			Msg("failed to upsert sync client")
		return models.SyncClient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

// GetByID retrieves a sync client by its identifier.
// Returns [ErrClientNotFound] when no such client exists.
func (r *syncClientRepository) GetByID(ctx context.Context, id string) (models.SyncClient, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSyncClientByID, id)

	client, err := scanSyncClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncClient{}, ErrClientNotFound
		}
		log.Err(err).
			Str("func", "syncClientRepository.GetByID").
			Str("client_id", id).
			Msg("failed to get sync client")
		return models.SyncClient{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return client, nil
}

// GetByDevice retrieves the sync client registered for the (userID, deviceID)
// pair. Returns [ErrClientNotFound] when the device was never registered.
func (r *syncClientRepository) GetByDevice(ctx context.Context, userID int64, deviceID string) (models.SyncClient, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSyncClientByDevice, userID, deviceID)

	client, err := scanSyncClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncClient{}, ErrClientNotFound
		}
		log.Err(err).
			Str("func", "syncClientRepository.GetByDevice").
			Int64("user_id", userID).
			Str("device_id", deviceID).
			Msg("failed to get sync client by device")
		return models.SyncClient{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return client, nil
}

// ListByUser retrieves every sync client of the given user, active and
// inactive, ordered by registration time.
func (r *syncClientRepository) ListByUser(ctx context.Context, userID int64) ([]models.SyncClient, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listSyncClientsByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "syncClientRepository.ListByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing sync clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.SyncClient, 0, 4)

	for rows.Next() {
		var client models.SyncClient

		scanErr := rows.Scan(
			&client.ID,
			&client.UserID,
			&client.DeviceID,
			&client.DeviceName,
			&client.IsActive,
			&client.LastSyncAt,
			&client.SyncToken,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncClientRepository.ListByUser").
				Int64("user_id", userID).
				Msg("failed to scan sync client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		clients = append(clients, client)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncClientRepository.ListByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return clients, nil
}

// UpdateSyncState rotates the client's sync token and records the completion
// time of its latest sync. Returns [ErrClientNotFound] when the client does
// not exist.
func (r *syncClientRepository) UpdateSyncState(ctx context.Context, clientID, syncToken string, lastSyncAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, updateSyncClientState, clientID, syncToken, lastSyncAt)
	if err != nil {
		log.Err(err).
			Str("func", "syncClientRepository.UpdateSyncState").
			Str("client_id", clientID).
			Msg("failed to update sync client state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "syncClientRepository.UpdateSyncState").
			Str("client_id", clientID).
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Deactivate marks the device's sync client inactive. The row and its history
// are retained. Returns [ErrClientNotFound] when the device was never
// registered for the user.
func (r *syncClientRepository) Deactivate(ctx context.Context, userID int64, deviceID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deactivateSyncClient, userID, deviceID, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "syncClientRepository.Deactivate").
			Int64("user_id", userID).
			Str("device_id", deviceID).
			Msg("failed to deactivate sync client")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "syncClientRepository.Deactivate").
			Int64("user_id", userID).
			Str("device_id", deviceID).
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// scanSyncClient scans one sync_clients row in canonical column order.
func scanSyncClient(row *sql.Row) (models.SyncClient, error) {
	var client models.SyncClient

	err := row.Scan(
		&client.ID,
		&client.UserID,
		&client.DeviceID,
		&client.DeviceName,
		&client.IsActive,
		&client.LastSyncAt,
		&client.SyncToken,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return models.SyncClient{}, err
	}

	return client, nil
}
