// Package gateway defines the engine's two external collaborators: the
// entity data gateway that reads and writes concrete business entities, and
// the permission oracle that answers access questions. The sync engine never
// touches business tables directly; every entity mutation goes through these
// contracts.
package gateway

//go:generate mockgen -source=gateway.go -destination=../mock/gateway_mock.go -package=mock

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rcldesign/asset-manager-sub006/models"
)

var (
	// ErrEntityNotFound is returned by Read, Update and Delete when the
	// addressed entity does not exist.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrPermissionDenied is returned when the permission oracle rejects an
	// operation. The offending change is never applied; sibling changes in
	// the same batch continue processing.
	ErrPermissionDenied = errors.New("permission denied")
)

// Action is the access kind checked against the permission oracle. Write
// actions map one-to-one onto change operations; ActionRead guards the delta
// feed.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionRead   Action = "READ"
)

// ActionForOperation maps a change operation onto its access action.
func ActionForOperation(op models.Operation) Action {
	return Action(op)
}

// EntityDataGateway reads and writes concrete business entities addressed by
// (entityType, entityID). Payloads are raw JSON; implementations decode them
// through [models.DecodePayload] and apply their own business rules.
type EntityDataGateway interface {
	Create(ctx context.Context, entityType models.EntityType, entityID string, payload json.RawMessage) error
	Update(ctx context.Context, entityType models.EntityType, entityID string, payload json.RawMessage) error
	Delete(ctx context.Context, entityType models.EntityType, entityID string) error

	// Read returns the entity's current sync-visible data, used for
	// conflict snapshots and the delta feed. Returns [ErrEntityNotFound]
	// for missing entities.
	Read(ctx context.Context, entityType models.EntityType, entityID string) (json.RawMessage, error)
}

// PermissionOracle answers "may user U perform action A on entity (T, ID)".
// An error return means the answer could not be computed; it is distinct
// from an explicit false.
type PermissionOracle interface {
	Check(ctx context.Context, userID int64, entityType models.EntityType, entityID string, action Action) (bool, error)
}
