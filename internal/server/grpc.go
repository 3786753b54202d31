package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	healthgrpc "github.com/MKhiriev/go-inbox-pilot/internal/handler/grpc"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
)

// grpcServer runs the gRPC transport. It binds the listener at construction
// time so address conflicts surface during startup, not on first serve.
type grpcServer struct {
	handler  *healthgrpc.Handler
	server   *grpc.Server
	listener net.Listener
	logger   *logger.Logger
}

func newGRPCServer(handler *healthgrpc.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %q ended with error: %w", cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer()
	handler.Register(srv)

	return &grpcServer{
		handler:  handler,
		server:   srv,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server stopped unexpectedly")
	}
}

// Shutdown flips the health status first so probes fail before the listener
// closes, then drains in-flight RPCs.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutting down")
	g.handler.SetNotServing()
	g.server.GracefulStop()
}
