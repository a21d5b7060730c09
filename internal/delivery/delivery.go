// Package delivery defines the contract for transport servers (HTTP, workers).
package delivery

import "context"

// Delivery is a long-running transport server started by the application runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
