// Package server runs the host's bridge transports.
//
// It owns the HTTP and gRPC listener lifecycles, including startup, signal
// handling and graceful shutdown of every enabled transport.
package server
