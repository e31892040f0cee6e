package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rcldesign/asset-manager-sub006/models"
)

type entityKey struct {
	entityType models.EntityType
	entityID   string
}

// MemoryGateway is an in-memory [EntityDataGateway] used by the single-binary
// local mode and by tests. It validates payloads through the typed payload
// union before accepting them, the same boundary check a database-backed
// gateway performs.
type MemoryGateway struct {
	mu       sync.RWMutex
	entities map[entityKey]json.RawMessage
}

// NewMemoryGateway constructs an empty [MemoryGateway].
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		entities: make(map[entityKey]json.RawMessage),
	}
}

// Create stores a new entity. Creating over an existing entity overwrites it;
// the version guard upstream already decided the write is legal.
func (g *MemoryGateway) Create(_ context.Context, entityType models.EntityType, entityID string, payload json.RawMessage) error {
	if _, err := models.DecodePayload(entityType, payload); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.entities[entityKey{entityType, entityID}] = append(json.RawMessage(nil), payload...)

	return nil
}

// Update replaces an existing entity's data.
func (g *MemoryGateway) Update(_ context.Context, entityType models.EntityType, entityID string, payload json.RawMessage) error {
	if _, err := models.DecodePayload(entityType, payload); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := entityKey{entityType, entityID}
	if _, ok := g.entities[key]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrEntityNotFound, entityType, entityID)
	}
	g.entities[key] = append(json.RawMessage(nil), payload...)

	return nil
}

// Delete removes an entity. The sync tombstone lives in the metadata store,
// not here.
func (g *MemoryGateway) Delete(_ context.Context, entityType models.EntityType, entityID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := entityKey{entityType, entityID}
	if _, ok := g.entities[key]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrEntityNotFound, entityType, entityID)
	}
	delete(g.entities, key)

	return nil
}

// Read returns the entity's current data.
func (g *MemoryGateway) Read(_ context.Context, entityType models.EntityType, entityID string) (json.RawMessage, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	data, ok := g.entities[entityKey{entityType, entityID}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrEntityNotFound, entityType, entityID)
	}

	return append(json.RawMessage(nil), data...), nil
}

// AllowAllOracle is a [PermissionOracle] that grants everything. It backs the
// single-binary local mode, where the surrounding application has no
// multi-user permission model to consult.
type AllowAllOracle struct{}

// NewAllowAllOracle constructs an [AllowAllOracle].
func NewAllowAllOracle() *AllowAllOracle {
	return &AllowAllOracle{}
}

// Check always grants access.
func (o *AllowAllOracle) Check(context.Context, int64, models.EntityType, string, Action) (bool, error) {
	return true, nil
}
