package sync

import (
	"encoding/json"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// auditFields never participate in merge decisions or merged output
// overlays; they are owned by the server side.
var auditFields = map[string]struct{}{
	"id":        {},
	"createdAt": {},
	"updatedAt": {},
}

// MergePolicy decides, per entity type, whether two conflicting payloads can
// be merged without losing a write. The heuristic is not a correctness proof
// for arbitrary domain objects, so the policy is pluggable rather than one
// hard-coded rule.
type MergePolicy interface {
	// CanMerge reports whether the client and server payloads are safe to
	// combine automatically.
	CanMerge(clientData, serverData map[string]any) bool
}

// disjointFieldPolicy is the default MergePolicy: merging is safe when no
// field carried by the client collides with a differing live server value.
// A field present with differing non-null values on both sides means both
// writers touched it, and the policy refuses to guess an intent.
type disjointFieldPolicy struct{}

func (disjointFieldPolicy) CanMerge(clientData, serverData map[string]any) bool {
	for key, clientValue := range clientData {
		if _, audit := auditFields[key]; audit {
			continue
		}
		if clientValue == nil {
			continue
		}

		serverValue, ok := serverData[key]
		if !ok || serverValue == nil {
			continue
		}

		if !equalJSONValue(clientValue, serverValue) {
			return false
		}
	}

	return true
}

// Resolver suggests a resolution for a detected conflict and computes merged
// payloads. Suggestion is pure; it touches no storage.
type Resolver struct {
	policies map[models.EntityType]MergePolicy
}

// NewResolver constructs a Resolver with the disjoint-field policy installed
// for every known entity type.
func NewResolver() *Resolver {
	policy := disjointFieldPolicy{}
	return &Resolver{
		policies: map[models.EntityType]MergePolicy{
			models.EntityAsset:    policy,
			models.EntityTask:     policy,
			models.EntitySchedule: policy,
		},
	}
}

// SetPolicy installs a custom merge policy for one entity type. A nil policy
// marks the type as unmergeable.
func (r *Resolver) SetPolicy(entityType models.EntityType, policy MergePolicy) {
	if policy == nil {
		delete(r.policies, entityType)
		return
	}
	r.policies[entityType] = policy
}

// Suggest picks the resolution strategy for a detected version conflict.
//
// A client edit older than the server's last accepted write is stale and
// loses (SERVER_WINS). Otherwise, if the entity type's policy judges the two
// payloads mergeable, MERGE is suggested. In every remaining case the user's
// local edit survives (CLIENT_WINS): it is not strictly stale and cannot be
// safely combined, so the human gets the benefit of the doubt.
func (r *Resolver) Suggest(entityType models.EntityType, clientData, serverData json.RawMessage, clientEditedAt *time.Time, meta models.SyncMetadata) models.Resolution {
	if clientEditedAt != nil && meta.LastModifiedAt.After(*clientEditedAt) {
		return models.ResolutionServerWins
	}

	policy, mergeable := r.policies[entityType]
	if mergeable {
		clientMap, clientErr := decodeObject(clientData)
		serverMap, serverErr := decodeObject(serverData)
		if clientErr == nil && serverErr == nil && policy.CanMerge(clientMap, serverMap) {
			return models.ResolutionMerge
		}
	}

	return models.ResolutionClientWins
}

// Merge combines the two payloads of a conflict: the server data is the
// base, and every non-null, non-audit field the client carried overlays it.
// Fields only one side touched all survive; where both sides carry a value,
// the client's wins, consistent with CLIENT_WINS being the non-stale default.
func (r *Resolver) Merge(clientData, serverData json.RawMessage) (json.RawMessage, error) {
	clientMap, err := decodeObject(clientData)
	if err != nil {
		return nil, fmt.Errorf("%w: client payload: %w", models.ErrInvalidPayload, err)
	}
	serverMap, err := decodeObject(serverData)
	if err != nil {
		return nil, fmt.Errorf("%w: server payload: %w", models.ErrInvalidPayload, err)
	}

	overlay := make(map[string]any, len(clientMap))
	for key, value := range clientMap {
		if _, audit := auditFields[key]; audit {
			continue
		}
		if value == nil {
			continue
		}
		overlay[key] = value
	}

	if err = mergo.Map(&serverMap, overlay, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge conflicting payloads: %w", err)
	}

	merged, err := json.Marshal(serverMap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged payload: %w", err)
	}

	return merged, nil
}

func decodeObject(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}

	return m, nil
}

// equalJSONValue compares two decoded JSON values structurally.
func equalJSONValue(a, b any) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}

	return string(aj) == string(bj)
}
