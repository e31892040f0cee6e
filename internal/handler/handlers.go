package handler

import (
	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/handler/grpc"
	"github.com/rcldesign/asset-manager-sub006/internal/handler/http"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/sync"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(engine *sync.Engine, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(engine, cfg.Auth, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
