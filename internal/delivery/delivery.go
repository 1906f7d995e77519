// Package delivery defines the contract every transport entrypoint
// implements, regardless of protocol.
package delivery

import "context"

// Delivery is a long-running server started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
