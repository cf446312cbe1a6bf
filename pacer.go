package harvest

import "context"

// Pacer enforces the politeness interval between page fetches.
type Pacer interface {
	// Wait blocks until the next page may be fetched.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
