package shipper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
)

func TestShipperError_Error(t *testing.T) {
	err := shipper.NewShipperError("correios", shipper.CodeInvalidPostalCode, "Invalid postal code")
	assert.Equal(t, "correios error (INVALID_POSTAL_CODE): Invalid postal code", err.Error())
}

func TestShipperError_ErrorWithCause(t *testing.T) {
	cause := errors.New("table lookup failed")
	err := shipper.NewShipperError("correios", shipper.CodeCarrierError, "estimate failed").WithCause(cause)
	assert.Contains(t, err.Error(), "estimate failed")
	assert.Contains(t, err.Error(), "table lookup failed")
}

func TestShipperError_Unwrap(t *testing.T) {
	err := shipper.NewShipperError("correios", shipper.CodeInvalidPostalCode, "bad cep").
		WithCause(shipper.ErrInvalidPostalCode)
	assert.True(t, errors.Is(err, shipper.ErrInvalidPostalCode))
}

func TestShipperError_Is(t *testing.T) {
	err1 := shipper.NewShipperError("correios", shipper.CodeInvalidPostalCode, "Invalid postal code")
	err2 := shipper.NewShipperError("jadlog", shipper.CodeInvalidPostalCode, "Different message")

	// Same code should match
	assert.True(t, errors.Is(err1, err2))
}

func TestShipperError_IsNot(t *testing.T) {
	err1 := shipper.NewShipperError("correios", shipper.CodeInvalidPostalCode, "Invalid postal code")
	err2 := shipper.NewShipperError("correios", shipper.CodeCarrierError, "Different error")

	assert.False(t, errors.Is(err1, err2))
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sentinel postal code", shipper.ErrInvalidPostalCode, shipper.CodeInvalidPostalCode},
		{"wrapped postal code", fmt.Errorf("correios: %w", shipper.ErrInvalidPostalCode), shipper.CodeInvalidPostalCode},
		{"invalid package", shipper.ErrInvalidPackage, shipper.CodeInvalidPackage},
		{"wrapped invalid package", fmt.Errorf("%w: items[0]", shipper.ErrInvalidPackage), shipper.CodeInvalidPackage},
		{"shipper error code wins", shipper.NewShipperError("correios", "CUSTOM", "x"), "CUSTOM"},
		{"unknown", errors.New("boom"), shipper.CodeCarrierError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shipper.ErrorCode(tt.err))
		})
	}
}
