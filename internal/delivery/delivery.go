// Package delivery defines the contract every transport entry point
// (HTTP server, workers) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until the context ends
// or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
