// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a long-running server that owns a listener until ctx or the
// process lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
