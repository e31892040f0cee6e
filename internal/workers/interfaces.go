// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the retention sweeper that periodically
// removes processed sync queue items and resolved conflicts.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Cleaner removes sync bookkeeping older than the retention window. It is
// implemented by the sync engine.
type Cleaner interface {
	CleanupOldSyncData(ctx context.Context, daysToKeep int) (int64, error)
}
