package store

import (
	"database/sql"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/migrations"
)

// DB wraps the raw sql.DB handle together with the driver-specific error
// classifier. All repositories embed *DB.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// Migrate brings the sync schema up to date for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Classify exposes the driver-specific retryability classification of err.
func (db *DB) Classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}
