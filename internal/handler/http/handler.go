package http

import (
	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/sync"
)

// Handler is the root HTTP transport handler. It holds the sync engine, the
// JWT verification settings, and the base logger shared by all routes.
type Handler struct {
	engine *sync.Engine
	auth   config.Auth

	logger *logger.Logger
}

func NewHandler(engine *sync.Engine, auth config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine: engine,
		auth:   auth,
		logger: logger,
	}
}
