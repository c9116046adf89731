// Package mock provides a mock shipper implementation for testing.
package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
)

// Client is a mock shipper for testing.
type Client struct {
	name string

	// Err, when set, is returned by every GetQuote call.
	Err error
}

// New creates a new mock shipper.
func New(name string) *Client {
	return &Client{name: name}
}

// NewFailing creates a mock shipper whose quotes always fail with err.
func NewFailing(name string, err error) *Client {
	return &Client{name: name, Err: err}
}

// Name returns the carrier name.
func (c *Client) Name() string {
	return c.name
}

// GetQuote returns mock shipping quotes.
func (c *Client) GetQuote(ctx context.Context, req *shipper.QuoteRequest) (*shipper.QuoteResponse, error) {
	if c.Err != nil {
		return nil, c.Err
	}

	now := time.Now()
	expiresAt := now.Add(30 * time.Minute)

	return &shipper.QuoteResponse{
		QuoteID:   fmt.Sprintf("%s-quote-%d", c.name, now.UnixNano()),
		Carrier:   c.name,
		ExpiresAt: expiresAt,
		Rates: []shipper.RateOption{
			{
				RateID:      fmt.Sprintf("%s-rate-standard-%d", c.name, now.UnixNano()),
				Carrier:     c.name,
				ServiceCode: "STANDARD",
				ServiceName: fmt.Sprintf("%s Standard", c.name),
				ServiceType: shipper.ServiceEconomy,
				TotalPrice:  shipper.Money{Amount: 18.50, Currency: shipper.CurrencyBRL},
				TransitDays: 6,
				ExpiresAt:   expiresAt,
			},
			{
				RateID:      fmt.Sprintf("%s-rate-express-%d", c.name, now.UnixNano()),
				Carrier:     c.name,
				ServiceCode: "EXPRESS",
				ServiceName: fmt.Sprintf("%s Express", c.name),
				ServiceType: shipper.ServiceExpress,
				TotalPrice:  shipper.Money{Amount: 29.95, Currency: shipper.CurrencyBRL},
				TransitDays: 2,
				ExpiresAt:   expiresAt,
			},
		},
	}, nil
}
