// Package workers provides abstractions for managing and running
// background workers next to the HTTP server.
// It defines the Worker interface, a Workers aggregate that runs several
// workers under one context, and the KeepAlive worker.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is the normal way to stop.
type Worker interface {
	Run(ctx context.Context) error
}
