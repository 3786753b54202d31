package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/handler"
	healthgrpc "github.com/MKhiriev/go-inbox-pilot/internal/handler/grpc"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	return handlers
}

// ---- NewServer ----

func TestNewServer_NoAddresses(t *testing.T) {
	handlers := &handler.Handlers{}

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_HTTPOnly(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: 15 * time.Second,
	}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	impl, ok := srv.(*server)
	require.True(t, ok)
	require.NotNil(t, impl.httpServer)
	assert.Nil(t, impl.gRPCServer)
	assert.Equal(t, "127.0.0.1:0", impl.httpServer.server.Addr)
	assert.Equal(t, 15*time.Second, impl.httpServer.server.ReadTimeout)
	assert.Equal(t, 15*time.Second, impl.httpServer.server.WriteTimeout)
}

func TestNewServer_GRPCOnly(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	impl, ok := srv.(*server)
	require.True(t, ok)
	assert.Nil(t, impl.httpServer)
	require.NotNil(t, impl.gRPCServer)

	impl.gRPCServer.Shutdown()
}

func TestNewServer_GRPCAddressTaken(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
	handlers := newTestHandlers(t, cfg)

	first, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	firstImpl := first.(*server)
	defer firstImpl.gRPCServer.Shutdown()

	// Rebind the exact port the first server got.
	takenCfg := config.Server{GRPCAddress: firstImpl.gRPCServer.listener.Addr().String()}
	second, err := NewServer(newTestHandlers(t, takenCfg), takenCfg, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, second)
}

// ---- gRPC transport round-trip ----

func TestGRPCServer_HealthCheckRoundTrip(t *testing.T) {
	healthHandler := healthgrpc.NewHandler(&service.Services{}, logger.Nop())
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}

	grpcSrv, err := newGRPCServer(healthHandler, cfg, logger.Nop())
	require.NoError(t, err)

	serveDone := make(chan struct{})
	go func() {
		grpcSrv.RunServer()
		close(serveDone)
	}()

	conn, err := grpc.NewClient(
		grpcSrv.listener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := healthpb.NewHealthClient(conn)

	overall, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, overall.GetStatus())

	named, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: healthgrpc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, named.GetStatus())

	grpcSrv.Shutdown()

	select {
	case <-serveDone:
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not stop after Shutdown")
	}
}

// ---- HTTP transport ----

func TestNewHTTPServer_WiresRouterAndTimeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    ":8000",
		RequestTimeout: 30 * time.Second,
	}
	handlers := newTestHandlers(t, cfg)

	httpSrv := newHTTPServer(handlers.HTTP.Init(), cfg, logger.Nop())

	require.NotNil(t, httpSrv.server)
	assert.Equal(t, ":8000", httpSrv.server.Addr)
	assert.NotNil(t, httpSrv.server.Handler)
	assert.Equal(t, 30*time.Second, httpSrv.server.ReadHeaderTimeout)
}

func TestHTTPServer_ShutdownWithoutRunIsSafe(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8000"}
	handlers := newTestHandlers(t, cfg)
	httpSrv := newHTTPServer(handlers.HTTP.Init(), cfg, logger.Nop())

	assert.NotPanics(t, func() { httpSrv.Shutdown() })
}
