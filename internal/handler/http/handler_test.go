package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/mock"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/internal/sync"
	"github.com/rcldesign/asset-manager-sub006/internal/utils"
	"github.com/rcldesign/asset-manager-sub006/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "sync-server"
	testUserID  = int64(42)
)

type handlerMocks struct {
	clients   *mock.MockSyncClientRepository
	metadata  *mock.MockSyncMetadataRepository
	queue     *mock.MockSyncQueueRepository
	conflicts *mock.MockSyncConflictRepository
	gateway   *mock.MockEntityDataGateway
	oracle    *mock.MockPermissionOracle
}

func newTestRouter(t *testing.T) (*chi.Mux, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		clients:   mock.NewMockSyncClientRepository(ctrl),
		metadata:  mock.NewMockSyncMetadataRepository(ctrl),
		queue:     mock.NewMockSyncQueueRepository(ctrl),
		conflicts: mock.NewMockSyncConflictRepository(ctrl),
		gateway:   mock.NewMockEntityDataGateway(ctrl),
		oracle:    mock.NewMockPermissionOracle(ctrl),
	}

	storages := &store.Storages{
		SyncClientRepository:   m.clients,
		SyncMetadataRepository: m.metadata,
		SyncQueueRepository:    m.queue,
		SyncConflictRepository: m.conflicts,
	}

	engine := sync.NewEngine(storages, m.gateway, m.oracle, nil, config.Sync{
		DefaultPageSize: 100,
		MaxPageSize:     500,
		RetentionDays:   30,
	}, logger.Nop())

	h := NewHandler(engine, config.Auth{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}, logger.Nop())

	return h.Init(), m
}

func authorize(t *testing.T, r *http.Request) {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)
	r.Header.Set("Authorization", "Bearer "+token.SignedString)
}

func doRequest(t *testing.T, router *chi.Mux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	authorize(t, req)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth_MissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/devices", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/devices", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	router, _ := newTestRouter(t)

	token, err := utils.GenerateJWTToken(testIssuer, testUserID, -time.Hour, testSignKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/devices", nil)
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongIssuer(t *testing.T) {
	router, _ := newTestRouter(t)

	token, err := utils.GenerateJWTToken("someone-else", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/devices", nil)
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterClient_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, c models.SyncClient) (models.SyncClient, error) {
			assert.Equal(t, testUserID, c.UserID)
			c.IsActive = true
			return c, nil
		})

	rec := doRequest(t, router, http.MethodPost, "/api/sync/register",
		models.RegisterRequest{DeviceID: "device-a", DeviceName: "Pixel"})

	require.Equal(t, http.StatusOK, rec.Code)

	var client models.SyncClient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &client))
	assert.Equal(t, "device-a", client.DeviceID)
	assert.True(t, client.IsActive)
}

func TestRegisterClient_MissingDeviceID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/sync/register",
		models.RegisterRequest{DeviceName: "Pixel"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessSync_EmptyBatch(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, c models.SyncClient) (models.SyncClient, error) {
			return c, nil
		})
	m.metadata.EXPECT().ListChanged(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.clients.EXPECT().UpdateSyncState(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/api/sync",
		models.SyncRequest{DeviceID: "device-a"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SyncToken)
	assert.Empty(t, resp.Conflicts)
}

func TestProcessSync_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sync", bytes.NewReader([]byte("{not json")))
	authorize(t, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDevices(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().ListByUser(gomock.Any(), testUserID).
		Return([]models.SyncClient{
			{ID: "c-1", UserID: testUserID, DeviceID: "device-a", IsActive: true},
			{ID: "c-2", UserID: testUserID, DeviceID: "device-b", IsActive: false},
		}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/sync/devices", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var devices []models.SyncClient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &devices))
	assert.Len(t, devices, 2)
}

func TestUnregisterDevice(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().Deactivate(gomock.Any(), testUserID, "device-a").Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/sync/devices/device-a", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUnregisterDevice_Unknown(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().Deactivate(gomock.Any(), testUserID, "ghost").
		Return(store.ErrClientNotFound)

	rec := doRequest(t, router, http.MethodDelete, "/api/sync/devices/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDeltaChanges_RequiresDeviceID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/sync/delta", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDeltaChanges_UnknownDevice(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().GetByDevice(gomock.Any(), testUserID, "ghost").
		Return(models.SyncClient{}, store.ErrClientNotFound)

	rec := doRequest(t, router, http.MethodGet, "/api/sync/delta?deviceId=ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDeltaChanges_InvalidPageToken(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().GetByDevice(gomock.Any(), testUserID, "device-a").
		Return(models.SyncClient{ID: "c-1", UserID: testUserID, DeviceID: "device-a"}, nil)

	rec := doRequest(t, router, http.MethodGet,
		"/api/sync/delta?deviceId=device-a&pageToken=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDeltaChanges_BadEntityType(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet,
		"/api/sync/delta?deviceId=device-a&entityTypes=invoice", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDeltaChanges_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().GetByDevice(gomock.Any(), testUserID, "device-a").
		Return(models.SyncClient{ID: "c-1", UserID: testUserID, DeviceID: "device-a"}, nil)
	m.metadata.EXPECT().ListChanged(gomock.Any(), gomock.Any()).
		Return([]models.SyncMetadata{{
			EntityType:     models.EntityTask,
			EntityID:       "task-1",
			Version:        3,
			LastModifiedAt: time.Now(),
		}}, nil)
	m.oracle.EXPECT().Check(gomock.Any(), testUserID, models.EntityTask, "task-1", gomock.Any()).
		Return(true, nil)
	m.gateway.EXPECT().Read(gomock.Any(), models.EntityTask, "task-1").
		Return(json.RawMessage(`{"title":"Inspect pump"}`), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/sync/delta?deviceId=device-a", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DeltaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, "task-1", resp.Changes[0].EntityID)
	assert.False(t, resp.HasMore)
}

func TestGetUnresolvedConflicts(t *testing.T) {
	router, m := newTestRouter(t)

	m.conflicts.EXPECT().ListUnresolved(gomock.Any(), gomock.Any()).
		Return([]models.SyncConflict{{ID: "cf-1", UserID: testUserID}}, int64(1), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/sync/conflicts?page=1&limit=20", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page models.ConflictPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Conflicts, 1)
}

func TestResolveConflict_InvalidResolution(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/sync/conflicts/cf-1",
		map[string]string{"resolution": "COIN_FLIP"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveConflict_AlreadyResolved(t *testing.T) {
	router, m := newTestRouter(t)

	resolvedAt := time.Now()
	m.conflicts.EXPECT().GetByID(gomock.Any(), "cf-1").
		Return(models.SyncConflict{ID: "cf-1", ResolvedAt: &resolvedAt}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/sync/conflicts/cf-1",
		models.ResolveRequest{Resolution: models.ResolutionServerWins})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResolveConflict_ServerWins(t *testing.T) {
	router, m := newTestRouter(t)

	m.conflicts.EXPECT().GetByID(gomock.Any(), "cf-1").
		Return(models.SyncConflict{ID: "cf-1", UserID: testUserID, EntityType: models.EntityTask, EntityID: "task-1"}, nil)
	m.conflicts.EXPECT().Resolve(gomock.Any(), "cf-1", models.ResolutionServerWins, testUserID, gomock.Any()).
		Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/api/sync/conflicts/cf-1",
		models.ResolveRequest{Resolution: models.ResolutionServerWins})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRetryFailedSync_RequiresDeviceID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/sync/retry", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetryFailedSync_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().GetByDevice(gomock.Any(), testUserID, "device-a").
		Return(models.SyncClient{ID: "c-1", UserID: testUserID, DeviceID: "device-a"}, nil)
	m.queue.EXPECT().ListFailed(gomock.Any(), "c-1", models.MaxRetryCount).
		Return(nil, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/sync/retry?deviceId=device-a", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.RetryReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Zero(t, report.Processed)
}

func TestSyncStatus(t *testing.T) {
	router, m := newTestRouter(t)

	m.clients.EXPECT().GetByDevice(gomock.Any(), testUserID, "device-a").
		Return(models.SyncClient{ID: "c-1", UserID: testUserID, DeviceID: "device-a"}, nil)
	m.queue.EXPECT().CountByStatus(gomock.Any(), "c-1", models.QueuePending).Return(int64(3), nil)
	m.queue.EXPECT().CountByStatus(gomock.Any(), "c-1", models.QueueFailed).Return(int64(1), nil)
	m.conflicts.EXPECT().CountOpen(gomock.Any(), testUserID).Return(int64(2), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/sync/status?deviceId=device-a", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status models.SyncStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, int64(3), status.PendingChanges)
	assert.Equal(t, int64(1), status.FailedChanges)
	assert.Equal(t, int64(2), status.OpenConflicts)
}

func TestUnsupportedMethodHidesRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/sync/devices", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
