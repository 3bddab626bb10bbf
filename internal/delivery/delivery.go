// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a long-running server owned by the Fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
