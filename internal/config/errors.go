package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidAuthConfigs is returned when the JWT verification settings
	// are incomplete.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs: token sign key and issuer are required")

	// ErrInvalidSyncConfigs is returned when the sync tunables are
	// internally inconsistent (e.g. default page size above the maximum).
	ErrInvalidSyncConfigs = errors.New("invalid sync configs")
)
