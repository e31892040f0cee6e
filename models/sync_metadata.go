package models

import "time"

// SyncMetadata is the per-entity version record, shared by all clients.
// It is the single source of truth for "what version is the server on".
//
// Version strictly increases on every accepted write. A row with DeletedAt
// set is a tombstone: it is never physically removed so that lagging clients
// still learn about the deletion as a DELETE delta.
//
// ClientID records the client that produced the last accepted write and
// drives echo suppression in the delta feed. It is nil when the last write
// came from a non-sync path (e.g. the regular web UI).
type SyncMetadata struct {
	EntityType     EntityType `json:"entityType"`
	EntityID       string     `json:"entityId"`
	Version        int64      `json:"version"`
	LastModifiedBy int64      `json:"lastModifiedBy"`
	LastModifiedAt time.Time  `json:"lastModifiedAt"`
	Checksum       string     `json:"checksum"`
	ClientID       *string    `json:"clientId,omitempty"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
}

// Deleted reports whether the row is a tombstone.
func (m SyncMetadata) Deleted() bool {
	return m.DeletedAt != nil
}
