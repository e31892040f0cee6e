package store

import (
	"context"
	"fmt"

	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
)

// Storages bundles every repository of the sync engine behind their
// interfaces. All repositories share one *DB connection.
type Storages struct {
	SyncClientRepository   SyncClientRepository
	SyncMetadataRepository SyncMetadataRepository
	SyncQueueRepository    SyncQueueRepository
	SyncConflictRepository SyncConflictRepository

	db *DB
}

// NewStorages connects to the configured database backend, runs pending
// migrations and wires all repositories.
//
// Supported drivers are "pgx" (PostgreSQL) and "sqlite3".
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case "pgx", "postgres":
		db, err = NewConnectPostgres(ctx, cfg, log)
	case "sqlite3", "sqlite":
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to run database migrations")
		return nil, err
	}

	return &Storages{
		SyncClientRepository:   NewSyncClientRepository(db, log),
		SyncMetadataRepository: NewSyncMetadataRepository(db, log),
		SyncQueueRepository:    NewSyncQueueRepository(db, log),
		SyncConflictRepository: NewSyncConflictRepository(db, log),
		db:                     db,
	}, nil
}

// Classify exposes the backend's transient-error classification.
func (s *Storages) Classify(err error) ErrorClassification {
	return s.db.Classify(err)
}

// Close closes the underlying database connection.
func (s *Storages) Close() error {
	return s.db.DB.Close()
}
