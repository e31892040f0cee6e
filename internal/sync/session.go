package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/utils"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// RegisterClient registers (or reactivates) a device for the user. The
// (userID, deviceID) pair is unique: a repeat registration updates the device
// name and reactivates the existing row instead of duplicating it.
func (e *Engine) RegisterClient(ctx context.Context, userID int64, req models.RegisterRequest) (models.SyncClient, error) {
	if req.DeviceID == "" {
		return models.SyncClient{}, fmt.Errorf("%w: device id is required", ErrInvalidChange)
	}

	return e.clients.Upsert(ctx, models.SyncClient{
		ID:         utils.NewID(),
		UserID:     userID,
		DeviceID:   req.DeviceID,
		DeviceName: req.DeviceName,
	})
}

// ProcessSync runs one full sync session: register the client, drive every
// uploaded change through the processor, pull the delta the client has not
// seen, rotate the sync token, and emit the completion event.
//
// Per-change isolation: one change failing (or panicking) never aborts its
// siblings. A processing failure is converted to a conflict-shaped record
// with serverVersion 0 and a SERVER_WINS suggestion so the client learns the
// change did not land; the durable FAILED queue row remains for retry.
func (e *Engine) ProcessSync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)
	startedAt := time.Now()

	client, err := e.RegisterClient(ctx, userID, models.RegisterRequest{
		DeviceID:   req.DeviceID,
		DeviceName: req.DeviceName,
	})
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("failed to register sync client: %w", err)
	}

	conflicts := make([]models.SyncConflict, 0)
	applied := 0
	for _, change := range req.Changes {
		outcome := e.processIsolated(ctx, client, userID, change)
		switch outcome.Kind {
		case OutcomeApplied:
			applied++
		case OutcomeConflict:
			conflicts = append(conflicts, *outcome.Conflict)
		case OutcomeFailed:
			conflicts = append(conflicts, syntheticConflict(userID, change, outcome.Err))
		}
	}

	delta, err := e.GetDeltaChanges(ctx, client, userID, models.DeltaQuery{
		PageSize: e.cfg.DefaultPageSize,
	})
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("failed to compute delta changes: %w", err)
	}

	token, err := utils.GenerateSyncToken()
	if err != nil {
		return models.SyncResponse{}, err
	}

	now := time.Now()
	if err = e.clients.UpdateSyncState(ctx, client.ID, token, now); err != nil {
		return models.SyncResponse{}, fmt.Errorf("failed to rotate sync token: %w", err)
	}

	e.notifier.SyncCompleted(models.SyncCompletedEvent{
		DeviceID:    client.DeviceID,
		SyncToken:   token,
		StartedAt:   startedAt,
		CompletedAt: now,
		Uploaded:    len(req.Changes),
		Downloaded:  len(delta.Changes),
		Conflicts:   len(conflicts),
	})

	log.Info().
		Str("func", "Engine.ProcessSync").
		Int64("user_id", userID).
		Str("device_id", client.DeviceID).
		Int("uploaded", len(req.Changes)).
		Int("applied", applied).
		Int("downloaded", len(delta.Changes)).
		Int("conflicts", len(conflicts)).
		Msg("sync session completed")

	return models.SyncResponse{
		SyncToken:  token,
		Changes:    delta.Changes,
		Conflicts:  conflicts,
		ServerTime: now,
	}, nil
}

// processIsolated shields the batch loop from a panicking change.
func (e *Engine) processIsolated(ctx context.Context, client models.SyncClient, userID int64, change models.SyncChange) (outcome ChangeOutcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("change processing panicked: %v", r)
			logger.FromContext(ctx).Error().
				Str("func", "Engine.processIsolated").
				Str("entity_type", string(change.EntityType)).
				Str("entity_id", change.EntityID).
				Any("panic", r).
				Msg("recovered from change processing panic")
			outcome = failedOutcome("", err)
		}
	}()

	return e.ProcessChange(ctx, client, userID, change)
}

// syntheticConflict is the conflict-shaped record returned for a change that
// failed processing. Server version 0 and the SERVER_WINS suggestion signal
// "nothing was applied; the server state stands".
func syntheticConflict(userID int64, change models.SyncChange, cause error) models.SyncConflict {
	message := "change processing failed"
	if cause != nil {
		message = cause.Error()
	}

	return models.SyncConflict{
		ID:            utils.NewID(),
		UserID:        userID,
		EntityType:    change.EntityType,
		EntityID:      change.EntityID,
		ClientVersion: change.ClientVersion,
		ServerVersion: 0,
		ClientData:    change.Payload,
		ServerData:    fmt.Appendf(nil, `{"error":%q}`, message),
		Resolution:    models.ResolutionServerWins,
		CreatedAt:     time.Now(),
	}
}

// UnregisterDevice deactivates the device's sync client. History is kept;
// only isActive flips.
func (e *Engine) UnregisterDevice(ctx context.Context, userID int64, deviceID string) error {
	return e.clients.Deactivate(ctx, userID, deviceID)
}

// ListDevices returns every device the user has registered for sync.
func (e *Engine) ListDevices(ctx context.Context, userID int64) ([]models.SyncClient, error) {
	return e.clients.ListByUser(ctx, userID)
}

// Status reports the device's sync backlog: changes awaiting processing,
// changes stuck in FAILED, and the user's open conflict count.
func (e *Engine) Status(ctx context.Context, userID int64, deviceID string) (models.SyncStatus, error) {
	client, err := e.clients.GetByDevice(ctx, userID, deviceID)
	if err != nil {
		return models.SyncStatus{}, err
	}

	pending, err := e.queue.CountByStatus(ctx, client.ID, models.QueuePending)
	if err != nil {
		return models.SyncStatus{}, err
	}
	failed, err := e.queue.CountByStatus(ctx, client.ID, models.QueueFailed)
	if err != nil {
		return models.SyncStatus{}, err
	}
	open, err := e.conflicts.CountOpen(ctx, userID)
	if err != nil {
		return models.SyncStatus{}, err
	}

	return models.SyncStatus{
		PendingChanges: pending,
		FailedChanges:  failed,
		OpenConflicts:  open,
		LastSyncAt:     client.LastSyncAt,
	}, nil
}
