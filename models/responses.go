package models

import "time"

// SyncResponse is the outcome of one sync session. It always carries a fresh
// token and a (possibly empty) conflicts slice even when individual changes
// failed: failures surface as conflicts or as queryable FAILED queue rows,
// never silently.
type SyncResponse struct {
	SyncToken  string         `json:"syncToken"`
	Changes    []SyncDelta    `json:"changes"`
	Conflicts  []SyncConflict `json:"conflicts"`
	ServerTime time.Time      `json:"serverTime"`
}

// DeltaResponse is one page of the delta feed. NextPageToken is present only
// while HasMore is true.
type DeltaResponse struct {
	Changes       []SyncDelta `json:"changes"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
	HasMore       bool        `json:"hasMore"`
}

// ConflictPage is one page of unresolved conflicts.
type ConflictPage struct {
	Conflicts []SyncConflict `json:"conflicts"`
	Page      int            `json:"page"`
	Limit     int            `json:"limit"`
	Total     int64          `json:"total"`
}

// RetryReport summarizes one retryFailedSync pass.
type RetryReport struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// SyncStatus is the per-client backlog summary exposed for client-side UX.
type SyncStatus struct {
	PendingChanges int64      `json:"pendingChanges"`
	FailedChanges  int64      `json:"failedChanges"`
	OpenConflicts  int64      `json:"openConflicts"`
	LastSyncAt     *time.Time `json:"lastSyncAt,omitempty"`
}

// SyncCompletedEvent is the fire-and-forget observability event emitted
// after a successful sync session.
type SyncCompletedEvent struct {
	DeviceID    string    `json:"deviceId"`
	SyncToken   string    `json:"syncToken"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
	Uploaded    int       `json:"uploaded"`
	Downloaded  int       `json:"downloaded"`
	Conflicts   int       `json:"conflicts"`
}
