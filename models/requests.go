package models

import "time"

// RegisterRequest registers (or reactivates) a device for the calling user.
type RegisterRequest struct {
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName,omitempty"`
}

// SyncRequest is the body of one sync session: the device identity, the
// token issued by the previous session (advisory), and the batch of local
// changes accumulated while offline.
type SyncRequest struct {
	DeviceID   string       `json:"deviceId"`
	DeviceName string       `json:"deviceName,omitempty"`
	SyncToken  string       `json:"syncToken,omitempty"`
	Changes    []SyncChange `json:"changes"`
}

// DeltaQuery selects the slice of server-side changes a client wants to pull.
//
// Since defaults to the client's lastSyncAt when zero. PageToken is an opaque
// numeric offset issued by a previous page; an empty token starts from the
// beginning of the window.
type DeltaQuery struct {
	EntityTypes []EntityType `json:"entityTypes,omitempty"`
	Since       *time.Time   `json:"since,omitempty"`
	PageSize    int          `json:"pageSize"`
	PageToken   string       `json:"pageToken,omitempty"`
}

// ConflictQuery selects a page of unresolved conflicts.
type ConflictQuery struct {
	EntityType *EntityType `json:"entityType,omitempty"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
}

// ResolveRequest carries the chosen resolution for an open conflict.
type ResolveRequest struct {
	Resolution Resolution `json:"resolution"`
}
