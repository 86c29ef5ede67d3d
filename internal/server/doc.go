// Package server runs the transports of the verification server.
//
// It starts the HTTP API and the gRPC health endpoint, waits for a stop
// signal or a transport failure, and shuts every enabled transport down.
package server
