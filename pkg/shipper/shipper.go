// Package shipper provides an abstraction layer for shipping carriers.
package shipper

import (
	"context"
)

// Shipper defines the interface that all shipping carriers must implement.
type Shipper interface {
	// Name returns the carrier identifier (e.g., "correios").
	Name() string

	// GetQuote returns shipping rate quotes for a shipment.
	GetQuote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error)
}
