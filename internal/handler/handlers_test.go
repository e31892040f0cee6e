package handler

import (
	"testing"

	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine returns a nil *sync.Engine. Both http.NewHandler and
// grpc.NewHandler only store the pointer without dereferencing it, so nil is
// safe for construction-time tests.
func newTestEngine() *sync.Engine {
	return nil
}

func newTestConfig(httpAddr, grpcAddr string) *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{
			HTTPAddress: httpAddr,
			GRPCAddress: grpcAddr,
		},
	}
}

func TestNewHandlers_BothAddresses(t *testing.T) {
	handlers, err := NewHandlers(newTestEngine(), newTestConfig(":8080", ":9090"), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
	assert.NotNil(t, handlers.GRPC)
}

func TestNewHandlers_HTTPOnly(t *testing.T) {
	handlers, err := NewHandlers(newTestEngine(), newTestConfig(":8080", ""), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
	assert.Nil(t, handlers.GRPC)
}

func TestNewHandlers_GRPCOnly(t *testing.T) {
	handlers, err := NewHandlers(newTestEngine(), newTestConfig("", ":9090"), logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, handlers.HTTP)
	assert.NotNil(t, handlers.GRPC)
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	handlers, err := NewHandlers(newTestEngine(), newTestConfig("", ""), logger.Nop())

	require.Error(t, err)
	assert.Nil(t, handlers)
}
