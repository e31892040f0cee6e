package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey: "key",
			TokenIssuer:  "issuer",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/assets"},
		},
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.validate())

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultPageSize, cfg.Sync.DefaultPageSize)
	assert.Equal(t, DefaultMaxPageSize, cfg.Sync.MaxPageSize)
	assert.Equal(t, DefaultRetentionDays, cfg.Sync.RetentionDays)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingAuth(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}

func TestValidate_PageSizeAboveMax(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.DefaultPageSize = 1000
	cfg.Sync.MaxPageSize = 100

	assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env-host:5432/assets")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("SYNC_RETENTION_DAYS", "14")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://env-host:5432/assets", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 14, cfg.Sync.RetentionDays)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON(t *testing.T) {
	jsonCfg := map[string]any{
		"auth": map[string]any{
			"token_sign_key": "json-key",
			"token_issuer":   "json-issuer",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite3", "dsn": "file:sync.db"},
		},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "30s",
		},
		"sync": map[string]any{
			"retention_days":     7,
			"retention_interval": "1h",
			"webhook_url":        "http://hooks.local/sync",
		},
	}

	raw, err := json.Marshal(jsonCfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:sync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 7, cfg.Sync.RetentionDays)
	assert.Equal(t, time.Hour, cfg.Sync.RetentionInterval)
	assert.Equal(t, "http://hooks.local/sync", cfg.Sync.WebhookURL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestNetAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_EmptyString(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
