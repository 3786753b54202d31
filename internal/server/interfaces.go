package server

// Server is the lifecycle contract of a transport server.
//
// [Server.RunServer] blocks until shutdown is requested; [Server.Shutdown]
// releases the listener and drains in-flight work.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
