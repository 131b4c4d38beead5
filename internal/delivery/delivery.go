// Package delivery defines the transport-agnostic server contract.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}
