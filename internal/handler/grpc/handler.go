// Package grpc implements the gRPC transport surface of the sync server.
// It currently exposes the standard health service used by orchestrators
// for liveness and readiness probing.
package grpc

import (
	"github.com/rcldesign/asset-manager-sub006/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler. It owns the health service
// instance and registers every gRPC service on the server at startup.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with a health service that starts in the
// SERVING state.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// RegisterServices registers all gRPC services owned by this handler on the
// given server.
func (h *Handler) RegisterServices(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetNotServing flips the health service to NOT_SERVING. Called during
// graceful shutdown so load balancers stop routing new requests.
func (h *Handler) SetNotServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
}
