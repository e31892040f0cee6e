package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/gateway"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterClient_RequiresDeviceID(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.RegisterClient(context.Background(), 42, models.RegisterRequest{DeviceName: "Phone"})
	assert.ErrorIs(t, err, ErrInvalidChange)
}

func TestRegisterClient_UpsertsDevice(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.clients.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncClient) (models.SyncClient, error) {
			assert.NotEmpty(t, c.ID)
			assert.Equal(t, int64(42), c.UserID)
			assert.Equal(t, "device-a", c.DeviceID)
			assert.Equal(t, "Pixel", c.DeviceName)
			return c, nil
		})

	client, err := e.RegisterClient(ctx, 42, models.RegisterRequest{DeviceID: "device-a", DeviceName: "Pixel"})
	require.NoError(t, err)
	assert.Equal(t, "device-a", client.DeviceID)
}

func TestProcessSync_EmptySessionRotatesToken(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.clients.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncClient) (models.SyncClient, error) {
			return c, nil
		})
	m.metadata.EXPECT().ListChanged(ctx, gomock.Any()).Return(nil, nil)

	var rotated string
	m.clients.EXPECT().UpdateSyncState(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, token string, _ time.Time) error {
			rotated = token
			return nil
		})

	resp, err := e.ProcessSync(ctx, 42, models.SyncRequest{DeviceID: "device-a"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SyncToken)
	assert.Equal(t, rotated, resp.SyncToken)
	assert.Empty(t, resp.Changes)
	assert.Empty(t, resp.Conflicts)
	assert.False(t, resp.ServerTime.IsZero())

	require.Len(t, m.notifier.events, 1)
	event := m.notifier.events[0]
	assert.Equal(t, "device-a", event.DeviceID)
	assert.Equal(t, resp.SyncToken, event.SyncToken)
	assert.Zero(t, event.Uploaded)
	assert.Zero(t, event.Conflicts)
}

func TestProcessSync_TokenChangesEverySession(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.clients.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncClient) (models.SyncClient, error) {
			return c, nil
		}).Times(2)
	m.metadata.EXPECT().ListChanged(ctx, gomock.Any()).Return(nil, nil).Times(2)
	m.clients.EXPECT().UpdateSyncState(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	first, err := e.ProcessSync(ctx, 42, models.SyncRequest{DeviceID: "device-a"})
	require.NoError(t, err)
	second, err := e.ProcessSync(ctx, 42, models.SyncRequest{DeviceID: "device-a"})
	require.NoError(t, err)

	assert.NotEqual(t, first.SyncToken, second.SyncToken)
}

func TestProcessSync_FailedChangeDoesNotAbortBatch(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	bad := models.SyncChange{
		EntityType: "invoice", EntityID: "i-1",
		Operation: models.OperationCreate, Payload: json.RawMessage(`{}`),
	}
	good := models.SyncChange{
		EntityType: models.EntityTask, EntityID: "task-1",
		Operation: models.OperationCreate, Payload: json.RawMessage(`{"title":"ok"}`),
		ClientVersion: 0,
	}

	m.clients.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncClient) (models.SyncClient, error) {
			return c, nil
		})

	// the valid change flows through the full pipeline
	m.queue.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.metadata.EXPECT().Get(ctx, models.EntityTask, "task-1").
		Return(models.SyncMetadata{}, store.ErrMetadataNotFound)
	m.oracle.EXPECT().Check(ctx, int64(42), models.EntityTask, "task-1", gateway.ActionCreate).
		Return(true, nil)
	m.gateway.EXPECT().Create(ctx, models.EntityTask, "task-1", good.Payload).Return(nil)
	m.metadata.EXPECT().Advance(ctx, gomock.Any(), int64(0)).Return(nil)
	m.queue.EXPECT().MarkCompleted(ctx, gomock.Any(), gomock.Any()).Return(nil)

	m.metadata.EXPECT().ListChanged(ctx, gomock.Any()).Return(nil, nil)
	m.clients.EXPECT().UpdateSyncState(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := e.ProcessSync(ctx, 42, models.SyncRequest{
		DeviceID: "device-a",
		Changes:  []models.SyncChange{bad, good},
	})
	require.NoError(t, err)

	// the invalid change surfaces as a synthetic conflict
	require.Len(t, resp.Conflicts, 1)
	synthetic := resp.Conflicts[0]
	assert.Equal(t, models.EntityType("invoice"), synthetic.EntityType)
	assert.Equal(t, int64(0), synthetic.ServerVersion)
	assert.Equal(t, models.ResolutionServerWins, synthetic.Resolution)
	assert.Contains(t, string(synthetic.ServerData), "error")

	require.Len(t, m.notifier.events, 1)
	assert.Equal(t, 2, m.notifier.events[0].Uploaded)
	assert.Equal(t, 1, m.notifier.events[0].Conflicts)
}

func TestProcessSync_PanicInOneChangeIsContained(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	change := models.SyncChange{
		EntityType: models.EntityTask, EntityID: "task-1",
		Operation: models.OperationCreate, Payload: json.RawMessage(`{"title":"boom"}`),
	}

	m.clients.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncClient) (models.SyncClient, error) {
			return c, nil
		})
	m.queue.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncQueue) error {
			panic("queue storage corrupted")
		})
	m.metadata.EXPECT().ListChanged(ctx, gomock.Any()).Return(nil, nil)
	m.clients.EXPECT().UpdateSyncState(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := e.ProcessSync(ctx, 42, models.SyncRequest{
		DeviceID: "device-a",
		Changes:  []models.SyncChange{change},
	})
	require.NoError(t, err)

	require.Len(t, resp.Conflicts, 1)
	assert.Contains(t, string(resp.Conflicts[0].ServerData), "panicked")
}

func TestProcessSync_TokenRotationFailureAborts(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.clients.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncClient) (models.SyncClient, error) {
			return c, nil
		})
	m.metadata.EXPECT().ListChanged(ctx, gomock.Any()).Return(nil, nil)
	m.clients.EXPECT().UpdateSyncState(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	_, err := e.ProcessSync(ctx, 42, models.SyncRequest{DeviceID: "device-a"})
	require.Error(t, err)
	assert.Empty(t, m.notifier.events)
}

func TestUnregisterDevice(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.clients.EXPECT().Deactivate(ctx, int64(42), "device-a").Return(nil)
	require.NoError(t, e.UnregisterDevice(ctx, 42, "device-a"))
}

func TestStatus_AggregatesBacklog(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	lastSync := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	client := testClient()
	client.LastSyncAt = &lastSync

	m.clients.EXPECT().GetByDevice(ctx, int64(42), "device-a").Return(client, nil)
	m.queue.EXPECT().CountByStatus(ctx, client.ID, models.QueuePending).Return(int64(5), nil)
	m.queue.EXPECT().CountByStatus(ctx, client.ID, models.QueueFailed).Return(int64(2), nil)
	m.conflicts.EXPECT().CountOpen(ctx, int64(42)).Return(int64(1), nil)

	status, err := e.Status(ctx, 42, "device-a")
	require.NoError(t, err)

	assert.Equal(t, int64(5), status.PendingChanges)
	assert.Equal(t, int64(2), status.FailedChanges)
	assert.Equal(t, int64(1), status.OpenConflicts)
	require.NotNil(t, status.LastSyncAt)
	assert.True(t, status.LastSyncAt.Equal(lastSync))
}

func TestStatus_UnknownDevice(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.clients.EXPECT().GetByDevice(ctx, int64(42), "ghost").
		Return(models.SyncClient{}, store.ErrClientNotFound)

	_, err := e.Status(ctx, 42, "ghost")
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}
