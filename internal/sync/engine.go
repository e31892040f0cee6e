// Package sync implements the offline synchronization engine: batched change
// ingestion with optimistic version checks, conflict detection and
// resolution, a durable processing queue with bounded retry, and the
// paginated, echo-free delta feed.
package sync

import (
	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/gateway"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
)

// Engine is the sync engine. It owns no business data: entity reads and
// writes go through the injected gateway, permission questions through the
// oracle, and all sync bookkeeping through the repositories.
//
// Every public method is safe for concurrent use; races between devices on
// the same entity are resolved solely by the version guard in the metadata
// repository, never by arrival order.
type Engine struct {
	clients   store.SyncClientRepository
	metadata  store.SyncMetadataRepository
	queue     store.SyncQueueRepository
	conflicts store.SyncConflictRepository

	gateway  gateway.EntityDataGateway
	oracle   gateway.PermissionOracle
	resolver *Resolver
	notifier Notifier
	classify func(error) store.ErrorClassification

	cfg    config.Sync
	logger *logger.Logger
}

// NewEngine wires an Engine from its collaborators. A nil notifier disables
// sync.completed events.
func NewEngine(
	storages *store.Storages,
	entityGateway gateway.EntityDataGateway,
	oracle gateway.PermissionOracle,
	notifier Notifier,
	cfg config.Sync,
	log *logger.Logger,
) *Engine {
	e := &Engine{
		clients:   storages.SyncClientRepository,
		metadata:  storages.SyncMetadataRepository,
		queue:     storages.SyncQueueRepository,
		conflicts: storages.SyncConflictRepository,
		gateway:   entityGateway,
		oracle:    oracle,
		resolver:  NewResolver(),
		notifier:  notifier,
		classify:  storages.Classify,
		cfg:       cfg,
		logger:    log,
	}

	if e.notifier == nil {
		e.notifier = NopNotifier{}
	}

	return e
}

// Resolver exposes the engine's resolver so callers can install per-type
// merge policies before serving traffic.
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

func (e *Engine) pageSize(requested int) int {
	size := requested
	if size <= 0 {
		size = e.cfg.DefaultPageSize
	}
	if size <= 0 {
		size = config.DefaultPageSize
	}

	limit := e.cfg.MaxPageSize
	if limit <= 0 {
		limit = config.DefaultMaxPageSize
	}
	if size > limit {
		size = limit
	}

	return size
}
