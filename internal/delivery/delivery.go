// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a transport server the application can run.
type Delivery interface {
	Serve(ctx context.Context) error
}
