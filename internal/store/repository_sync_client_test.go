package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/models"
)

func newTestClientRepo(t *testing.T) (*syncClientRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &syncClientRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var clientTestColumns = []string{
	"id", "user_id", "device_id", "device_name", "is_active",
	"last_sync_at", "sync_token", "created_at", "updated_at",
}

func TestSyncClientUpsert_NewDevice(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	now := time.Now()

	rows := sqlmock.NewRows(clientTestColumns).
		AddRow("c-1", int64(42), "device-a", "Workshop tablet", true, nil, "", now, now)

	mock.ExpectQuery("INSERT INTO sync_clients").
		WithArgs("c-1", int64(42), "device-a", "Workshop tablet", sqlmock.AnyArg()).
		WillReturnRows(rows)

	stored, err := repo.Upsert(context.Background(), models.SyncClient{
		ID:         "c-1",
		UserID:     42,
		DeviceID:   "device-a",
		DeviceName: "Workshop tablet",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "c-1" {
		t.Errorf("expected id c-1, got %s", stored.ID)
	}
	if !stored.IsActive {
		t.Error("expected freshly registered client to be active")
	}
}

func TestSyncClientUpsert_ExistingDeviceKeepsID(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	now := time.Now()
	lastSync := now.Add(-time.Hour)

	// conflict path: the stored row keeps its original id and sync token
	rows := sqlmock.NewRows(clientTestColumns).
		AddRow("c-original", int64(42), "device-a", "Renamed tablet", true, lastSync, "tok-1", now.Add(-24*time.Hour), now)

	mock.ExpectQuery("INSERT INTO sync_clients").
		WithArgs("c-new", int64(42), "device-a", "Renamed tablet", sqlmock.AnyArg()).
		WillReturnRows(rows)

	stored, err := repo.Upsert(context.Background(), models.SyncClient{
		ID:         "c-new",
		UserID:     42,
		DeviceID:   "device-a",
		DeviceName: "Renamed tablet",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "c-original" {
		t.Errorf("expected stored id c-original, got %s", stored.ID)
	}
	if stored.SyncToken != "tok-1" {
		t.Errorf("expected sync token to survive re-registration, got %q", stored.SyncToken)
	}
}

func TestSyncClientGetByDevice_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_clients").
		WithArgs(int64(42), "device-x").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByDevice(context.Background(), 42, "device-x")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestSyncClientListByUser(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	now := time.Now()

	rows := sqlmock.NewRows(clientTestColumns).
		AddRow("c-1", int64(42), "device-a", "Tablet", true, now, "tok-1", now, now).
		AddRow("c-2", int64(42), "device-b", "Phone", false, nil, "", now, now)

	mock.ExpectQuery("SELECT (.+) FROM sync_clients").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	clients, err := repo.ListByUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
	if clients[1].IsActive {
		t.Error("expected second client to be inactive")
	}
	if clients[1].LastSyncAt != nil {
		t.Error("expected never-synced client to have nil last_sync_at")
	}
}

func TestSyncClientUpdateSyncState_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	lastSyncAt := time.Now()

	mock.ExpectExec("UPDATE sync_clients").
		WithArgs("c-1", "tok-2", lastSyncAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateSyncState(context.Background(), "c-1", "tok-2", lastSyncAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncClientUpdateSyncState_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_clients").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSyncState(context.Background(), "c-404", "tok-2", time.Now())
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestSyncClientDeactivate_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_clients").
		WithArgs(int64(42), "device-a", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Deactivate(context.Background(), 42, "device-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncClientDeactivate_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_clients").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), 42, "device-x")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
