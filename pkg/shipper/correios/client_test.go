package correios_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestClient() *correios.Client {
	logger := otelzap.New(zap.NewNop())
	return correios.New(correios.Config{}, logger, nil)
}

func newQuoteRequest(postalCode string) *shipper.QuoteRequest {
	return &shipper.QuoteRequest{
		Destination: shipper.Address{
			Name:        "Receiver",
			City:        "Uberlândia",
			StateCode:   "MG",
			PostalCode:  postalCode,
			CountryCode: "BR",
		},
		Packages: []shipper.Package{
			{Length: 30, Width: 20, Height: 10, WeightGrams: 300},
		},
	}
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, "correios", newTestClient().Name())
}

func TestClient_GetQuote_Success(t *testing.T) {
	resp, err := newTestClient().GetQuote(context.Background(), newQuoteRequest("38400-000"))

	require.NoError(t, err)
	assert.NotEmpty(t, resp.QuoteID)
	assert.Equal(t, "correios", resp.Carrier)
	assert.False(t, resp.Degraded)
	require.Len(t, resp.Rates, 2)

	pac := resp.Rates[0]
	assert.Equal(t, "PAC", pac.ServiceCode)
	assert.Equal(t, shipper.ServiceEconomy, pac.ServiceType)
	assert.InDelta(t, 19.08, pac.TotalPrice.Amount, 1e-9)
	assert.Equal(t, shipper.CurrencyBRL, pac.TotalPrice.Currency)
	assert.Equal(t, 5, pac.TransitDays)
	assert.True(t, strings.HasPrefix(pac.RateID, "correios-pac-"))
	assert.False(t, pac.FreeOfCharge)

	sedex := resp.Rates[1]
	assert.Equal(t, "SEDEX", sedex.ServiceCode)
	assert.Equal(t, shipper.ServiceExpress, sedex.ServiceType)
	assert.InDelta(t, 31.08, sedex.TotalPrice.Amount, 1e-9)
	assert.Equal(t, 2, sedex.TransitDays)
}

func TestClient_GetQuote_FreeShipping(t *testing.T) {
	req := newQuoteRequest("69000000")
	req.Options.Subtotal = 299

	resp, err := newTestClient().GetQuote(context.Background(), req)

	require.NoError(t, err)
	for _, rate := range resp.Rates {
		assert.True(t, rate.FreeOfCharge)
		assert.Zero(t, rate.TotalPrice.Amount)
		assert.Positive(t, rate.TransitDays)
	}
}

func TestClient_GetQuote_RequestThresholdOverridesConfig(t *testing.T) {
	req := newQuoteRequest("69000000")
	req.Options.Subtotal = 150
	req.Options.FreeShippingThreshold = 500

	resp, err := newTestClient().GetQuote(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Rates[0].FreeOfCharge)
	assert.Positive(t, resp.Rates[0].TotalPrice.Amount)
}

func TestClient_GetQuote_InvalidPostalCode(t *testing.T) {
	_, err := newTestClient().GetQuote(context.Background(), newQuoteRequest("123"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, shipper.ErrInvalidPostalCode))
	assert.Equal(t, shipper.CodeInvalidPostalCode, shipper.ErrorCode(err))

	var shipperErr *shipper.ShipperError
	require.True(t, errors.As(err, &shipperErr))
	assert.Equal(t, "correios", shipperErr.Carrier)
}

func TestClient_ImplementsShipper(t *testing.T) {
	var _ shipper.Shipper = newTestClient()
}
