// Package delivery defines the contract every serving process implements,
// whether it listens on HTTP or polls the outbox.
package delivery

import "context"

// Delivery is a long-running serving loop. Serve blocks until the process
// shuts down or the loop fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
