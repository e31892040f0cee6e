package sync

import (
	"testing"

	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/mock"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/models"
	"go.uber.org/mock/gomock"
)

// captureNotifier records emitted events in place of a webhook sink.
type captureNotifier struct {
	events []models.SyncCompletedEvent
}

func (n *captureNotifier) SyncCompleted(event models.SyncCompletedEvent) {
	n.events = append(n.events, event)
}

// engineMocks bundles the gomock collaborators behind a test Engine.
type engineMocks struct {
	clients   *mock.MockSyncClientRepository
	metadata  *mock.MockSyncMetadataRepository
	queue     *mock.MockSyncQueueRepository
	conflicts *mock.MockSyncConflictRepository
	gateway   *mock.MockEntityDataGateway
	oracle    *mock.MockPermissionOracle
	notifier  *captureNotifier
}

func newTestEngine(t *testing.T) (*Engine, engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := engineMocks{
		clients:   mock.NewMockSyncClientRepository(ctrl),
		metadata:  mock.NewMockSyncMetadataRepository(ctrl),
		queue:     mock.NewMockSyncQueueRepository(ctrl),
		conflicts: mock.NewMockSyncConflictRepository(ctrl),
		gateway:   mock.NewMockEntityDataGateway(ctrl),
		oracle:    mock.NewMockPermissionOracle(ctrl),
		notifier:  &captureNotifier{},
	}

	e := &Engine{
		clients:   m.clients,
		metadata:  m.metadata,
		queue:     m.queue,
		conflicts: m.conflicts,
		gateway:   m.gateway,
		oracle:    m.oracle,
		resolver:  NewResolver(),
		notifier:  m.notifier,
		classify:  func(error) store.ErrorClassification { return store.NonRetryable },
		cfg: config.Sync{
			DefaultPageSize: 100,
			MaxPageSize:     500,
			RetentionDays:   30,
		},
		logger: logger.Nop(),
	}

	return e, m
}

func testClient() models.SyncClient {
	return models.SyncClient{
		ID:       "client-1",
		UserID:   42,
		DeviceID: "device-a",
		IsActive: true,
	}
}
