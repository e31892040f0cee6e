package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants and fills in engine defaults for unset tunables.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = "pgx"
	}

	if cfg.Sync.DefaultPageSize == 0 {
		cfg.Sync.DefaultPageSize = DefaultPageSize
	}
	if cfg.Sync.MaxPageSize == 0 {
		cfg.Sync.MaxPageSize = DefaultMaxPageSize
	}
	if cfg.Sync.RetentionDays == 0 {
		cfg.Sync.RetentionDays = DefaultRetentionDays
	}

	if cfg.Sync.DefaultPageSize < 0 || cfg.Sync.MaxPageSize < 0 || cfg.Sync.RetentionDays < 0 {
		return fmt.Errorf("%w: negative sizes are not allowed", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.DefaultPageSize > cfg.Sync.MaxPageSize {
		return fmt.Errorf("%w: default page size %d exceeds max page size %d",
			ErrInvalidSyncConfigs, cfg.Sync.DefaultPageSize, cfg.Sync.MaxPageSize)
	}

	return nil
}
