// Package server runs the enabled transports (HTTP and gRPC) behind a
// single lifecycle: startup, OS signal handling, and graceful shutdown.
package server
