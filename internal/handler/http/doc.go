// Package http implements the HTTP transport of the notes bridge.
//
// It exposes the two bridge operations (GET and PUT /api/notes) plus the host
// version, and wraps them in middleware for panic recovery, request tracing,
// access logging, response compression, rate limiting and payload integrity
// checks before delegating to the service layer.
package http
