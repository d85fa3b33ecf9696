package server

import "context"

// Server defines the lifecycle contract of the relay process.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled,
	// a stop signal arrives or serving fails. On stop it shuts down
	// gracefully and returns nil.
	RunServer(ctx context.Context) error
}
