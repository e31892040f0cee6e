package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/internal/utils"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// GetUnresolvedConflicts returns one page of the user's open conflicts,
// newest first.
func (e *Engine) GetUnresolvedConflicts(ctx context.Context, userID int64, query models.ConflictQuery) (models.ConflictPage, error) {
	limit := e.pageSize(query.Limit)
	page := query.Page
	if page < 1 {
		page = 1
	}

	conflicts, total, err := e.conflicts.ListUnresolved(ctx, store.ConflictFilter{
		UserID:     userID,
		EntityType: query.EntityType,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return models.ConflictPage{}, err
	}

	return models.ConflictPage{
		Conflicts: conflicts,
		Page:      page,
		Limit:     limit,
		Total:     total,
	}, nil
}

// ResolveConflict closes an open conflict with the chosen strategy.
//
// CLIENT_WINS re-applies the conflict's client data as an UPDATE; MERGE
// combines both payloads and applies the result; SERVER_WINS mutates
// nothing. In every case the conflict is marked resolved, a one-way
// transition: a second resolution attempt returns
// [store.ErrConflictAlreadyResolved].
func (e *Engine) ResolveConflict(ctx context.Context, conflictID string, resolution models.Resolution, resolvedBy int64) error {
	log := logger.FromContext(ctx)

	if !resolution.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidResolution, resolution)
	}

	conflict, err := e.conflicts.GetByID(ctx, conflictID)
	if err != nil {
		return err
	}
	if !conflict.Open() {
		return store.ErrConflictAlreadyResolved
	}

	switch resolution {
	case models.ResolutionClientWins:
		err = e.applyResolved(ctx, conflict, resolvedBy, conflict.ClientData)

	case models.ResolutionMerge:
		var merged json.RawMessage
		merged, err = e.resolver.Merge(conflict.ClientData, conflict.ServerData)
		if err == nil {
			err = e.applyResolved(ctx, conflict, resolvedBy, merged)
		}

	case models.ResolutionServerWins:
		// server state stands as-is
	}
	if err != nil {
		return err
	}

	if err = e.conflicts.Resolve(ctx, conflictID, resolution, resolvedBy, time.Now()); err != nil {
		return err
	}

	log.Info().
		Str("func", "Engine.ResolveConflict").
		Str("conflict_id", conflictID).
		Str("entity_type", string(conflict.EntityType)).
		Str("entity_id", conflict.EntityID).
		Str("resolution", string(resolution)).
		Int64("resolved_by", resolvedBy).
		Msg("conflict resolved")

	return nil
}

// applyResolved writes the winning payload through the gateway and advances
// the metadata version from its current value. The write carries no client
// id, so every device, including the conflict's originator, receives the
// resolved state on its next delta pull.
func (e *Engine) applyResolved(ctx context.Context, conflict models.SyncConflict, resolvedBy int64, payload json.RawMessage) error {
	meta, err := e.metadata.Get(ctx, conflict.EntityType, conflict.EntityID)
	if err != nil {
		return err
	}

	if err = e.gateway.Update(ctx, conflict.EntityType, conflict.EntityID, payload); err != nil {
		return err
	}

	now := time.Now()
	next := models.SyncMetadata{
		EntityType:     conflict.EntityType,
		EntityID:       conflict.EntityID,
		Version:        meta.Version + 1,
		LastModifiedBy: resolvedBy,
		LastModifiedAt: now,
		Checksum:       utils.EntityChecksum(string(conflict.EntityType), conflict.EntityID, meta.Version+1),
	}

	return e.metadata.Advance(ctx, next, meta.Version)
}
