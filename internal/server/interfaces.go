package server

// Server runs the verification server's transports.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops every enabled transport.
	Shutdown()
}
