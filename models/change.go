package models

import (
	"encoding/json"
	"time"
)

// SyncChange is one mutation uploaded by a client. ClientVersion is the
// entity version the client believed it was modifying; a mismatch against
// the server-side SyncMetadata version is what constitutes a conflict.
//
// Timestamp is the client's local edit time and feeds the resolver's
// staleness check. It is advisory only and never drives conflict detection.
type SyncChange struct {
	EntityType    EntityType      `json:"entityType"`
	EntityID      string          `json:"entityId"`
	Operation     Operation       `json:"operation"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	ClientVersion int64           `json:"clientVersion"`
	Timestamp     *time.Time      `json:"timestamp,omitempty"`
}

// SyncDelta is one server-side change streamed back to a client. Tombstoned
// entities surface as OperationDelete with an empty payload; everything else
// is OperationUpdate carrying the current entity data.
type SyncDelta struct {
	EntityType    EntityType      `json:"entityType"`
	EntityID      string          `json:"entityId"`
	Operation     Operation       `json:"operation"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	ClientVersion int64           `json:"clientVersion"`
	Timestamp     time.Time       `json:"timestamp"`
}
