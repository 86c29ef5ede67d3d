// Package http implements the HTTP transport of the verification server.
//
// It wires the chi router, the request handlers for test registration,
// result lookup and lab uploads, and the tracing and access-logging
// middleware. Handlers decode requests, delegate to the service layer and
// map service errors to status codes.
package http
