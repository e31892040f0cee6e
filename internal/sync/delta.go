package sync

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/gateway"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// GetDeltaChanges computes one page of the server-side changes the client
// has not yet seen.
//
// The window starts at query.Since, defaulting to the client's lastSyncAt
// (zero for a never-synced client, which replays everything). Rows the
// client itself wrote last are suppressed, rows the user may not read are
// silently skipped, and tombstones surface as DELETE deltas. Ordering is by
// lastModifiedAt ascending; the page token is the numeric offset of the next
// page, detected by fetching one row beyond the page size.
func (e *Engine) GetDeltaChanges(ctx context.Context, client models.SyncClient, userID int64, query models.DeltaQuery) (models.DeltaResponse, error) {
	return e.deltaChanges(ctx, client, userID, query)
}

// DeltaForDevice resolves the device's sync client and returns its delta
// page. It backs the standalone delta endpoint, where the caller identifies
// itself by device id rather than by an in-session client row.
func (e *Engine) DeltaForDevice(ctx context.Context, userID int64, deviceID string, query models.DeltaQuery) (models.DeltaResponse, error) {
	client, err := e.clients.GetByDevice(ctx, userID, deviceID)
	if err != nil {
		return models.DeltaResponse{}, err
	}

	return e.deltaChanges(ctx, client, userID, query)
}

func (e *Engine) deltaChanges(ctx context.Context, client models.SyncClient, userID int64, query models.DeltaQuery) (models.DeltaResponse, error) {
	log := logger.FromContext(ctx)

	since := time.Time{}
	switch {
	case query.Since != nil:
		since = *query.Since
	case client.LastSyncAt != nil:
		since = *client.LastSyncAt
	}

	offset := 0
	if query.PageToken != "" {
		parsed, err := strconv.Atoi(query.PageToken)
		if err != nil || parsed < 0 {
			return models.DeltaResponse{}, fmt.Errorf("%w: %q", ErrInvalidPageToken, query.PageToken)
		}
		offset = parsed
	}

	pageSize := e.pageSize(query.PageSize)

	rows, err := e.metadata.ListChanged(ctx, store.MetadataQuery{
		Since:           since,
		EntityTypes:     query.EntityTypes,
		ExcludeClientID: client.ID,
		Limit:           pageSize + 1,
		Offset:          offset,
	})
	if err != nil {
		return models.DeltaResponse{}, err
	}

	hasMore := len(rows) > pageSize
	if hasMore {
		rows = rows[:pageSize]
	}

	changes := make([]models.SyncDelta, 0, len(rows))
	for _, meta := range rows {
		allowed, checkErr := e.oracle.Check(ctx, userID, meta.EntityType, meta.EntityID, gateway.ActionRead)
		if checkErr != nil {
			return models.DeltaResponse{}, fmt.Errorf("permission check failed: %w", checkErr)
		}
		if !allowed {
			continue
		}

		delta := models.SyncDelta{
			EntityType:    meta.EntityType,
			EntityID:      meta.EntityID,
			Operation:     models.OperationUpdate,
			ClientVersion: meta.Version,
			Timestamp:     meta.LastModifiedAt,
		}

		if meta.Deleted() {
			delta.Operation = models.OperationDelete
		} else {
			payload, readErr := e.gateway.Read(ctx, meta.EntityType, meta.EntityID)
			if errors.Is(readErr, gateway.ErrEntityNotFound) {
				// metadata says live but the entity is gone; skip rather
				// than fabricate a payload
				log.Warn().
					Str("func", "Engine.deltaChanges").
					Str("entity_type", string(meta.EntityType)).
					Str("entity_id", meta.EntityID).
					Msg("live metadata row without entity data")
				continue
			}
			if readErr != nil {
				return models.DeltaResponse{}, readErr
			}
			delta.Payload = payload
		}

		changes = append(changes, delta)
	}

	resp := models.DeltaResponse{
		Changes: changes,
		HasMore: hasMore,
	}
	if hasMore {
		resp.NextPageToken = strconv.Itoa(offset + pageSize)
	}

	return resp, nil
}
