package shipper

import (
	"errors"
	"fmt"
)

// Error codes shared by carriers and the transport layer.
const (
	CodeInvalidPostalCode = "INVALID_POSTAL_CODE"
	CodeInvalidPackage    = "INVALID_PACKAGE"
	CodeCarrierError      = "CARRIER_ERROR"
)

// ShipperError represents an error from a shipping carrier.
type ShipperError struct {
	Carrier string
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ShipperError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Carrier, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Carrier, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ShipperError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for ShipperError.
func (e *ShipperError) Is(target error) bool {
	t, ok := target.(*ShipperError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewShipperError creates a new ShipperError.
func NewShipperError(carrier, code, message string) *ShipperError {
	return &ShipperError{
		Carrier: carrier,
		Code:    code,
		Message: message,
	}
}

// WithCause adds a cause to the error.
func (e *ShipperError) WithCause(err error) *ShipperError {
	e.Cause = err
	return e
}

// Sentinel errors for common shipping scenarios.
var (
	// ErrInvalidPostalCode indicates the destination postal code does not have
	// exactly eight digits once separators are removed.
	ErrInvalidPostalCode = errors.New("invalid postal code")

	// ErrInvalidPackage indicates package dimensions or weight are invalid.
	ErrInvalidPackage = errors.New("invalid package")

	// ErrCarrierNotFound indicates the requested carrier is not registered.
	ErrCarrierNotFound = errors.New("carrier not found")
)

// ErrorCode maps an error to the code reported to API clients.
func ErrorCode(err error) string {
	var shipperErr *ShipperError
	if errors.As(err, &shipperErr) && shipperErr.Code != "" {
		return shipperErr.Code
	}
	switch {
	case errors.Is(err, ErrInvalidPostalCode):
		return CodeInvalidPostalCode
	case errors.Is(err, ErrInvalidPackage):
		return CodeInvalidPackage
	default:
		return CodeCarrierError
	}
}
