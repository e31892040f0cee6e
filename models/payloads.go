package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Payload errors returned by DecodePayload and the per-type Validate methods.
var (
	ErrUnsupportedEntityType = errors.New("unsupported entity type")
	ErrInvalidPayload        = errors.New("invalid entity payload")
)

// EntityPayload is the tagged union over per-entity-type payload structs.
// A payload arrives on the wire as raw JSON keyed by the change's entityType
// and is decoded into its strongly-typed variant at the gateway boundary.
type EntityPayload interface {
	// EntityType returns the discriminator this payload variant belongs to.
	EntityType() EntityType

	// Validate checks type-specific structural requirements. It does not
	// enforce business rules; those belong to the entity data gateway's
	// backing implementation.
	Validate() error
}

// AssetPayload is the sync-visible shape of an asset.
type AssetPayload struct {
	Name         string     `json:"name"`
	Category     string     `json:"category,omitempty"`
	Location     string     `json:"location,omitempty"`
	SerialNumber string     `json:"serialNumber,omitempty"`
	PurchasedAt  *time.Time `json:"purchasedAt,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

func (p AssetPayload) EntityType() EntityType { return EntityAsset }

func (p AssetPayload) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: asset name is required", ErrInvalidPayload)
	}
	return nil
}

// TaskPayload is the sync-visible shape of a maintenance task.
type TaskPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	AssetID     string     `json:"assetId,omitempty"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
}

func (p TaskPayload) EntityType() EntityType { return EntityTask }

func (p TaskPayload) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: task title is required", ErrInvalidPayload)
	}
	return nil
}

// SchedulePayload is the sync-visible shape of a maintenance schedule.
type SchedulePayload struct {
	Name         string     `json:"name"`
	AssetID      string     `json:"assetId,omitempty"`
	IntervalDays int        `json:"intervalDays,omitempty"`
	NextRunAt    *time.Time `json:"nextRunAt,omitempty"`
	Enabled      bool       `json:"enabled"`
}

func (p SchedulePayload) EntityType() EntityType { return EntitySchedule }

func (p SchedulePayload) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: schedule name is required", ErrInvalidPayload)
	}
	if p.IntervalDays < 0 {
		return fmt.Errorf("%w: schedule interval must not be negative", ErrInvalidPayload)
	}
	return nil
}

// DecodePayload decodes raw JSON into the payload variant selected by
// entityType and validates it.
//
// Unknown fields are rejected so that a client running a newer schema does
// not silently lose data through an older server.
func DecodePayload(entityType EntityType, raw json.RawMessage) (EntityPayload, error) {
	var payload EntityPayload

	switch entityType {
	case EntityAsset:
		payload = &AssetPayload{}
	case EntityTask:
		payload = &TaskPayload{}
	case EntitySchedule:
		payload = &SchedulePayload{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEntityType, entityType)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	return payload, nil
}
