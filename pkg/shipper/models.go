package shipper

import (
	"time"
)

// ServiceType represents the shipping service type.
type ServiceType string

const (
	ServiceEconomy ServiceType = "economy"
	ServiceExpress ServiceType = "express"
)

// CurrencyBRL is the currency every storefront quote is priced in.
const CurrencyBRL = "BRL"

// Address represents a shipping address.
type Address struct {
	Name         string
	Line1        string
	Line2        string
	District     string
	City         string
	StateCode    string // e.g., "MG", "SP"
	PostalCode   string
	CountryCode  string // ISO 3166-1 alpha-2, e.g., "BR"
	Phone        string
	Email        string
	Instructions string
}

// Package represents one cart line to be shipped.
// Dimensions are in centimeters and weight in grams. A zero weight means the
// product record carries none and the carrier default applies.
type Package struct {
	ID          string
	Length      float64
	Width       float64
	Height      float64
	WeightGrams float64
	Description string
}

// Money represents a monetary amount.
type Money struct {
	Amount   float64
	Currency string
}

// RateOption represents a shipping rate option from a carrier.
type RateOption struct {
	RateID       string
	Carrier      string
	ServiceCode  string
	ServiceName  string
	ServiceType  ServiceType
	TotalPrice   Money
	TransitDays  int
	ExpiresAt    time.Time
	FreeOfCharge bool
}

// ShippingOptions represents shipping preferences.
type ShippingOptions struct {
	Carriers []string // Empty = all carriers

	// Subtotal of the order in BRL. When it reaches FreeShippingThreshold
	// every returned rate is zero-priced.
	Subtotal              float64
	FreeShippingThreshold float64
}

// ============================================================================
// Request/Response Types
// ============================================================================

// QuoteRequest is the request for getting shipping quotes.
type QuoteRequest struct {
	Destination Address
	Packages    []Package
	Options     ShippingOptions
}

// QuoteResponse is the response from getting shipping quotes.
type QuoteResponse struct {
	QuoteID   string
	Carrier   string
	Rates     []RateOption
	ExpiresAt time.Time
	Degraded  bool // rates come from the carrier's fixed fallback table
}
