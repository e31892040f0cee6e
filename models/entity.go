// Package models defines the data model of the offline synchronization
// engine: registered sync clients, per-entity version metadata, the durable
// sync queue, detected conflicts, and the wire-level request/response
// contracts of the sync API.
package models

// EntityType identifies the kind of business entity a change applies to.
// The set is extensible: new types are added here and wired into the
// entity data gateway without touching the sync engine itself.
type EntityType string

const (
	EntityAsset    EntityType = "asset"
	EntityTask     EntityType = "task"
	EntitySchedule EntityType = "schedule"
)

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityAsset, EntityTask, EntitySchedule:
		return true
	}
	return false
}

// Operation is the kind of mutation carried by a client change or emitted
// as a server delta.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// Valid reports whether op is one of the known operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}
