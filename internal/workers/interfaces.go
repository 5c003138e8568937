// Package workers runs the background jobs of the stub service alongside
// its HTTP server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
