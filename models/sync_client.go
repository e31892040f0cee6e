package models

import "time"

// SyncClient is one registered (user, device) pair. Re-registering the same
// device upserts DeviceName and reactivates the row instead of duplicating
// it; unregistering deactivates, never deletes.
type SyncClient struct {
	ID         string     `json:"id"`
	UserID     int64      `json:"userId"`
	DeviceID   string     `json:"deviceId"`
	DeviceName string     `json:"deviceName"`
	IsActive   bool       `json:"isActive"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
	SyncToken  string     `json:"syncToken,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
