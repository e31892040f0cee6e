package models

import (
	"encoding/json"
	"time"
)

// QueueStatus is the lifecycle state of a SyncQueue item.
//
// Transitions: PENDING → SYNCING → {COMPLETED | CONFLICT | FAILED}.
// FAILED re-enters SYNCING on retry while RetryCount < MaxRetryCount;
// CONFLICT leaves the queue only through an explicit conflict resolution.
type QueueStatus string

const (
	QueuePending   QueueStatus = "PENDING"
	QueueSyncing   QueueStatus = "SYNCING"
	QueueCompleted QueueStatus = "COMPLETED"
	QueueConflict  QueueStatus = "CONFLICT"
	QueueFailed    QueueStatus = "FAILED"
)

// MaxRetryCount bounds automatic re-processing of FAILED queue items.
// Items at or beyond the bound stay FAILED until an administrator intervenes.
const MaxRetryCount = 3

// CanTransition reports whether moving from s to next is a legal step of
// the queue state machine.
func (s QueueStatus) CanTransition(next QueueStatus) bool {
	switch s {
	case QueuePending:
		return next == QueueSyncing
	case QueueSyncing:
		return next == QueueCompleted || next == QueueConflict || next == QueueFailed
	case QueueFailed:
		return next == QueueSyncing
	}
	return false
}

// SyncQueue is the durable record of one inbound change attempt. Rows are
// retained after processing for auditing and retry until the retention sweep
// removes old completed items.
type SyncQueue struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	EntityType    EntityType      `json:"entityType"`
	EntityID      string          `json:"entityId"`
	Operation     Operation       `json:"operation"`
	Payload       json.RawMessage `json:"payload"`
	ClientVersion int64           `json:"clientVersion"`
	Status        QueueStatus     `json:"status"`
	ConflictData  json.RawMessage `json:"conflictData,omitempty"`
	Resolution    *Resolution     `json:"resolution,omitempty"`
	RetryCount    int             `json:"retryCount"`
	ErrorMessage  *string         `json:"errorMessage,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	ProcessedAt   *time.Time      `json:"processedAt,omitempty"`
}
