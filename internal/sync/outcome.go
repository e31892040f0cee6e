package sync

import "github.com/rcldesign/asset-manager-sub006/models"

// OutcomeKind discriminates the three results of processing one change.
type OutcomeKind int

const (
	// OutcomeApplied means the change passed the version check and the
	// entity mutation went through.
	OutcomeApplied OutcomeKind = iota

	// OutcomeConflict means the version check failed; a SyncConflict row was
	// recorded and the change was not applied.
	OutcomeConflict

	// OutcomeFailed means processing hit a real error (permission denial,
	// gateway failure, store failure); the queue row is FAILED and eligible
	// for retry.
	OutcomeFailed
)

// ChangeOutcome is the result of processing one inbound change. Conflicts
// are expected outcomes, carried as values; only OutcomeFailed carries an
// error.
type ChangeOutcome struct {
	Kind     OutcomeKind
	QueueID  string
	Conflict *models.SyncConflict
	Err      error
}

func appliedOutcome(queueID string) ChangeOutcome {
	return ChangeOutcome{Kind: OutcomeApplied, QueueID: queueID}
}

func conflictOutcome(queueID string, conflict models.SyncConflict) ChangeOutcome {
	return ChangeOutcome{Kind: OutcomeConflict, QueueID: queueID, Conflict: &conflict}
}

func failedOutcome(queueID string, err error) ChangeOutcome {
	return ChangeOutcome{Kind: OutcomeFailed, QueueID: queueID, Err: err}
}
