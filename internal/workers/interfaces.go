// Package workers runs the home client's background jobs as one group.
package workers

import "context"

// Worker is a background job. Start must not block; Stop waits until the
// job has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
