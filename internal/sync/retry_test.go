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

func failedQueueItem(id, entityID string) models.SyncQueue {
	return models.SyncQueue{
		ID:            id,
		ClientID:      "client-1",
		EntityType:    models.EntityTask,
		EntityID:      entityID,
		Operation:     models.OperationUpdate,
		Payload:       json.RawMessage(`{"title":"Retry me"}`),
		ClientVersion: 1,
		Status:        models.QueueFailed,
		RetryCount:    1,
		CreatedAt:     time.Now().Add(-time.Hour),
	}
}

func TestRetryFailedSync_ReDrivesWithinBudget(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()
	client := testClient()

	ok := failedQueueItem("q-1", "task-1")
	bad := failedQueueItem("q-2", "task-2")

	m.clients.EXPECT().GetByDevice(ctx, int64(42), "device-a").Return(client, nil)
	m.queue.EXPECT().ListFailed(ctx, client.ID, models.MaxRetryCount).
		Return([]models.SyncQueue{ok, bad}, nil)

	// q-1 succeeds this time
	m.queue.EXPECT().MarkSyncing(ctx, "q-1").Return(nil)
	m.metadata.EXPECT().Get(ctx, models.EntityTask, "task-1").
		Return(models.SyncMetadata{Version: 1}, nil)
	m.oracle.EXPECT().Check(ctx, int64(42), models.EntityTask, "task-1", gateway.ActionUpdate).
		Return(true, nil)
	m.gateway.EXPECT().Update(ctx, models.EntityTask, "task-1", ok.Payload).Return(nil)
	m.metadata.EXPECT().Advance(ctx, gomock.Any(), int64(1)).Return(nil)
	m.queue.EXPECT().MarkCompleted(ctx, "q-1", gomock.Any()).Return(nil)

	// q-2 fails again on the same row
	m.queue.EXPECT().MarkSyncing(ctx, "q-2").Return(nil)
	m.metadata.EXPECT().Get(ctx, models.EntityTask, "task-2").
		Return(models.SyncMetadata{Version: 1}, nil)
	m.oracle.EXPECT().Check(ctx, int64(42), models.EntityTask, "task-2", gateway.ActionUpdate).
		Return(true, nil)
	m.gateway.EXPECT().Update(ctx, models.EntityTask, "task-2", bad.Payload).
		Return(errors.New("entity store unavailable"))
	m.queue.EXPECT().MarkFailed(ctx, "q-2", gomock.Any()).Return(nil)

	report, err := e.RetryFailedSync(ctx, 42, "device-a")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
}

func TestRetryFailedSync_TransientFailureRetriedInPlace(t *testing.T) {
	e, m := newTestEngine(t)
	e.classify = func(err error) store.ErrorClassification {
		if err != nil {
			return store.Retryable
		}
		return store.NonRetryable
	}
	ctx := context.Background()
	client := testClient()
	item := failedQueueItem("q-1", "task-1")

	m.clients.EXPECT().GetByDevice(ctx, int64(42), "device-a").Return(client, nil)
	m.queue.EXPECT().ListFailed(ctx, client.ID, models.MaxRetryCount).
		Return([]models.SyncQueue{item}, nil)

	// first attempt hits a transient store error, second lands
	gomock.InOrder(
		m.queue.EXPECT().MarkSyncing(ctx, "q-1").Return(nil),
		m.metadata.EXPECT().Get(ctx, models.EntityTask, "task-1").
			Return(models.SyncMetadata{}, errors.New("connection reset")),
		m.queue.EXPECT().MarkFailed(ctx, "q-1", gomock.Any()).Return(nil),
		m.queue.EXPECT().MarkSyncing(ctx, "q-1").Return(nil),
		m.metadata.EXPECT().Get(ctx, models.EntityTask, "task-1").
			Return(models.SyncMetadata{Version: 1}, nil),
		m.oracle.EXPECT().Check(ctx, int64(42), models.EntityTask, "task-1", gateway.ActionUpdate).
			Return(true, nil),
		m.gateway.EXPECT().Update(ctx, models.EntityTask, "task-1", item.Payload).Return(nil),
		m.metadata.EXPECT().Advance(ctx, gomock.Any(), int64(1)).Return(nil),
		m.queue.EXPECT().MarkCompleted(ctx, "q-1", gomock.Any()).Return(nil),
	)

	report, err := e.RetryFailedSync(ctx, 42, "device-a")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Zero(t, report.Failed)
}

func TestRetryFailedSync_ConflictCountsAsFailed(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()
	client := testClient()
	item := failedQueueItem("q-1", "task-1")

	m.clients.EXPECT().GetByDevice(ctx, int64(42), "device-a").Return(client, nil)
	m.queue.EXPECT().ListFailed(ctx, client.ID, models.MaxRetryCount).
		Return([]models.SyncQueue{item}, nil)

	m.queue.EXPECT().MarkSyncing(ctx, "q-1").Return(nil)
	m.metadata.EXPECT().Get(ctx, models.EntityTask, "task-1").
		Return(models.SyncMetadata{Version: 4, EntityType: models.EntityTask, EntityID: "task-1"}, nil)
	m.gateway.EXPECT().Read(ctx, models.EntityTask, "task-1").
		Return(json.RawMessage(`{"title":"Server copy"}`), nil)
	m.conflicts.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncConflict) (models.SyncConflict, error) {
			return c, nil
		})
	m.queue.EXPECT().MarkConflict(ctx, "q-1", gomock.Any()).Return(nil)

	report, err := e.RetryFailedSync(ctx, 42, "device-a")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Failed)
}

func TestRetryFailedSync_UnknownDevice(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.clients.EXPECT().GetByDevice(ctx, int64(42), "ghost").
		Return(models.SyncClient{}, store.ErrClientNotFound)

	_, err := e.RetryFailedSync(ctx, 42, "ghost")
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}

func TestCleanupOldSyncData_SumsRemovals(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.queue.EXPECT().DeleteProcessedBefore(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			expected := time.Now().AddDate(0, 0, -90)
			assert.WithinDuration(t, expected, cutoff, time.Minute)
			return 12, nil
		})
	m.conflicts.EXPECT().DeleteResolvedBefore(ctx, gomock.Any()).Return(int64(5), nil)
	// metadata repository is never touched: tombstones survive every sweep

	removed, err := e.CleanupOldSyncData(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, int64(17), removed)
}

func TestCleanupOldSyncData_DefaultsRetentionDays(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	m.queue.EXPECT().DeleteProcessedBefore(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			expected := time.Now().AddDate(0, 0, -30)
			assert.WithinDuration(t, expected, cutoff, time.Minute)
			return 0, nil
		})
	m.conflicts.EXPECT().DeleteResolvedBefore(ctx, gomock.Any()).Return(int64(0), nil)

	_, err := e.CleanupOldSyncData(ctx, 0)
	require.NoError(t, err)
}
