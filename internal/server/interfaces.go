package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer()

	// Run serves until ctx is done or a transport fails, then shuts every
	// transport down. A failing transport's error is returned.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
