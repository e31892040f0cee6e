package models

import (
	"encoding/json"
	"time"
)

// Resolution is a conflict resolution strategy, first suggested by the
// resolver and later confirmed (or overridden) when the conflict is applied.
type Resolution string

const (
	ResolutionServerWins Resolution = "SERVER_WINS"
	ResolutionClientWins Resolution = "CLIENT_WINS"
	ResolutionMerge      Resolution = "MERGE"
)

// Valid reports whether r is one of the known resolutions.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionServerWins, ResolutionClientWins, ResolutionMerge:
		return true
	}
	return false
}

// SyncConflict records one detected version mismatch that was not applied
// automatically. A conflict is open while ResolvedAt is nil; resolving it is
// a one-way transition.
type SyncConflict struct {
	ID            string          `json:"id"`
	UserID        int64           `json:"userId"`
	EntityType    EntityType      `json:"entityType"`
	EntityID      string          `json:"entityId"`
	ClientVersion int64           `json:"clientVersion"`
	ServerVersion int64           `json:"serverVersion"`
	ClientData    json.RawMessage `json:"clientData,omitempty"`
	ServerData    json.RawMessage `json:"serverData,omitempty"`
	Resolution    Resolution      `json:"resolution"`
	ResolvedBy    *int64          `json:"resolvedBy,omitempty"`
	ResolvedAt    *time.Time      `json:"resolvedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Open reports whether the conflict still awaits resolution.
func (c SyncConflict) Open() bool {
	return c.ResolvedAt == nil
}
