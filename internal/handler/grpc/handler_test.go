package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
)

func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, logger.Nop())
}

func checkStatus(t *testing.T, h *Handler, svc string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: svc})
	require.NoError(t, err)

	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h := newTestHandler()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}

func TestRegister_MarksServing(t *testing.T) {
	h := newTestHandler()
	srv := grpc.NewServer()
	defer srv.Stop()

	h.Register(srv)

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ServiceName))
}

func TestRegister_AttachesHealthService(t *testing.T) {
	h := newTestHandler()
	srv := grpc.NewServer()
	defer srv.Stop()

	h.Register(srv)

	_, registered := srv.GetServiceInfo()["grpc.health.v1.Health"]
	assert.True(t, registered)
}

func TestSetNotServing_FlipsBothStatuses(t *testing.T) {
	h := newTestHandler()
	srv := grpc.NewServer()
	defer srv.Stop()
	h.Register(srv)

	h.SetNotServing()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}

func TestCheck_UnknownServiceIsNotFound(t *testing.T) {
	h := newTestHandler()

	_, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "no-such-service"})

	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
