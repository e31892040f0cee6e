package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/gateway"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/internal/utils"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// ProcessChange applies one inbound client change.
//
// A durable queue row is created in SYNCING state, then the change runs
// through the version check: no metadata row means a trivially conflict-free
// first write; a matching version proceeds to apply; a mismatch records a
// SyncConflict with a suggested resolution and stops without mutating the
// entity. The apply path consults the permission oracle, mutates the entity
// through the gateway, and advances the metadata version under the optimistic
// guard, so a race lost after the initial read still surfaces as a conflict
// rather than a double write.
//
// Real failures (permission denial, gateway or store errors) mark the queue
// row FAILED with an incremented retry count; they are never converted to
// conflicts.
func (e *Engine) ProcessChange(ctx context.Context, client models.SyncClient, userID int64, change models.SyncChange) ChangeOutcome {
	log := logger.FromContext(ctx)

	if err := validateChange(change); err != nil {
		return failedOutcome("", err)
	}

	item := models.SyncQueue{
		ID:            utils.NewID(),
		ClientID:      client.ID,
		EntityType:    change.EntityType,
		EntityID:      change.EntityID,
		Operation:     change.Operation,
		Payload:       change.Payload,
		ClientVersion: change.ClientVersion,
		Status:        models.QueueSyncing,
		CreatedAt:     time.Now(),
	}
	if err := e.queue.Create(ctx, item); err != nil {
		log.Err(err).
			Str("func", "Engine.ProcessChange").
			Str("entity_type", string(change.EntityType)).
			Str("entity_id", change.EntityID).
			Msg("failed to enqueue change")
		return failedOutcome("", err)
	}

	outcome := e.processQueued(ctx, client, userID, item, change.Timestamp)

	log.Debug().
		Str("func", "Engine.ProcessChange").
		Str("entity_type", string(change.EntityType)).
		Str("entity_id", change.EntityID).
		Str("operation", string(change.Operation)).
		Int("outcome", int(outcome.Kind)).
		Msg("change processed")

	return outcome
}

// processQueued drives an already-persisted queue item through the version
// check and apply path. Retry re-enters here with the stored item, so the
// original row keeps accumulating its retry count instead of spawning
// duplicates.
func (e *Engine) processQueued(ctx context.Context, client models.SyncClient, userID int64, item models.SyncQueue, clientEditedAt *time.Time) ChangeOutcome {
	meta, err := e.metadata.Get(ctx, item.EntityType, item.EntityID)
	switch {
	case errors.Is(err, store.ErrMetadataNotFound):
		// first write: no version to race against
		return e.apply(ctx, client, userID, item, 0)

	case err != nil:
		return e.fail(ctx, item, err)

	case meta.Version == item.ClientVersion:
		return e.apply(ctx, client, userID, item, meta.Version)

	default:
		return e.recordConflict(ctx, userID, item, clientEditedAt, meta)
	}
}

// apply runs the permission check, the gateway mutation, and the guarded
// metadata advance, in that order.
func (e *Engine) apply(ctx context.Context, client models.SyncClient, userID int64, item models.SyncQueue, expectedVersion int64) ChangeOutcome {
	allowed, err := e.oracle.Check(ctx, userID, item.EntityType, item.EntityID, gateway.ActionForOperation(item.Operation))
	if err != nil {
		return e.fail(ctx, item, fmt.Errorf("permission check failed: %w", err))
	}
	if !allowed {
		return e.fail(ctx, item, fmt.Errorf("%w: user %d may not %s %s/%s",
			gateway.ErrPermissionDenied, userID, item.Operation, item.EntityType, item.EntityID))
	}

	if err = e.mutateEntity(ctx, item); err != nil {
		return e.fail(ctx, item, err)
	}

	now := time.Now()
	meta := models.SyncMetadata{
		EntityType:     item.EntityType,
		EntityID:       item.EntityID,
		Version:        item.ClientVersion + 1,
		LastModifiedBy: userID,
		LastModifiedAt: now,
		Checksum:       utils.EntityChecksum(string(item.EntityType), item.EntityID, item.ClientVersion+1),
		ClientID:       &client.ID,
	}
	if item.Operation == models.OperationDelete {
		meta.DeletedAt = &now
	}

	err = e.metadata.Advance(ctx, meta, expectedVersion)
	if errors.Is(err, store.ErrVersionConflict) {
		// lost the write race after our read; the winner's version stands
		current, getErr := e.metadata.Get(ctx, item.EntityType, item.EntityID)
		if getErr != nil {
			return e.fail(ctx, item, getErr)
		}
		return e.recordConflict(ctx, userID, item, nil, current)
	}
	if err != nil {
		return e.fail(ctx, item, err)
	}

	if err = e.queue.MarkCompleted(ctx, item.ID, time.Now()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Engine.apply").
			Str("queue_id", item.ID).
			Msg("change applied but queue completion mark failed")
	}

	return appliedOutcome(item.ID)
}

// mutateEntity dispatches the gateway call for the item's operation.
// Deleting an entity the gateway no longer has is tolerated: the tombstone
// in the metadata store is what other clients observe.
func (e *Engine) mutateEntity(ctx context.Context, item models.SyncQueue) error {
	switch item.Operation {
	case models.OperationCreate:
		return e.gateway.Create(ctx, item.EntityType, item.EntityID, item.Payload)
	case models.OperationUpdate:
		return e.gateway.Update(ctx, item.EntityType, item.EntityID, item.Payload)
	case models.OperationDelete:
		err := e.gateway.Delete(ctx, item.EntityType, item.EntityID)
		if errors.Is(err, gateway.ErrEntityNotFound) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("%w: operation %q", ErrInvalidChange, item.Operation)
	}
}

// recordConflict persists the SyncConflict row for a version mismatch, marks
// the queue item CONFLICT, and returns the conflict as a value.
func (e *Engine) recordConflict(ctx context.Context, userID int64, item models.SyncQueue, clientEditedAt *time.Time, meta models.SyncMetadata) ChangeOutcome {
	log := logger.FromContext(ctx)

	serverData, err := e.gateway.Read(ctx, item.EntityType, item.EntityID)
	if err != nil && !errors.Is(err, gateway.ErrEntityNotFound) {
		return e.fail(ctx, item, err)
	}

	conflict := models.SyncConflict{
		ID:            utils.NewID(),
		UserID:        userID,
		EntityType:    item.EntityType,
		EntityID:      item.EntityID,
		ClientVersion: item.ClientVersion,
		ServerVersion: meta.Version,
		ClientData:    item.Payload,
		ServerData:    serverData,
		Resolution:    e.resolver.Suggest(item.EntityType, item.Payload, serverData, clientEditedAt, meta),
		CreatedAt:     time.Now(),
	}

	stored, err := e.conflicts.Create(ctx, conflict)
	if err != nil {
		return e.fail(ctx, item, err)
	}

	conflictData, err := json.Marshal(stored)
	if err != nil {
		conflictData = nil
	}
	if err = e.queue.MarkConflict(ctx, item.ID, conflictData); err != nil {
		log.Err(err).
			Str("func", "Engine.recordConflict").
			Str("queue_id", item.ID).
			Msg("conflict recorded but queue mark failed")
	}

	log.Info().
		Str("func", "Engine.recordConflict").
		Str("entity_type", string(item.EntityType)).
		Str("entity_id", item.EntityID).
		Int64("client_version", item.ClientVersion).
		Int64("server_version", meta.Version).
		Str("suggested_resolution", string(stored.Resolution)).
		Msg("version conflict detected")

	return conflictOutcome(item.ID, stored)
}

// fail marks the queue row FAILED with the error message and an incremented
// retry count, then returns the failure outcome.
func (e *Engine) fail(ctx context.Context, item models.SyncQueue, cause error) ChangeOutcome {
	log := logger.FromContext(ctx)

	if err := e.queue.MarkFailed(ctx, item.ID, cause.Error()); err != nil {
		log.Err(err).
			Str("func", "Engine.fail").
			Str("queue_id", item.ID).
			Msg("failed to mark queue item FAILED")
	}

	log.Err(cause).
		Str("func", "Engine.fail").
		Str("entity_type", string(item.EntityType)).
		Str("entity_id", item.EntityID).
		Str("operation", string(item.Operation)).
		Msg("change processing failed")

	return failedOutcome(item.ID, cause)
}

func validateChange(change models.SyncChange) error {
	if !change.EntityType.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidChange, models.ErrUnsupportedEntityType, change.EntityType)
	}
	if !change.Operation.Valid() {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidChange, change.Operation)
	}
	if change.EntityID == "" {
		return fmt.Errorf("%w: entity id is required", ErrInvalidChange)
	}
	if change.ClientVersion < 0 {
		return fmt.Errorf("%w: negative client version", ErrInvalidChange)
	}
	if change.Operation != models.OperationDelete && len(change.Payload) == 0 {
		return fmt.Errorf("%w: payload is required for %s", ErrInvalidChange, change.Operation)
	}

	return nil
}
