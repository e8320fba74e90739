// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// bootstrap and stopped through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
