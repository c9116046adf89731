package correios_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
)

func TestIsEligibleForFreeShipping(t *testing.T) {
	assert.True(t, correios.IsEligibleForFreeShipping(300, 299))
	assert.False(t, correios.IsEligibleForFreeShipping(298.99, 299))
	assert.True(t, correios.IsEligibleForFreeShipping(299, 299))
	assert.True(t, correios.IsEligibleForFreeShipping(299, correios.DefaultFreeShippingThreshold))
}

func TestApplyFreeShipping(t *testing.T) {
	quotes := []correios.Quote{
		{Service: correios.ServicePAC, Price: decimal.RequireFromString("19.08"), Days: 5},
		{Service: correios.ServiceSEDEX, Price: decimal.RequireFromString("31.08"), Days: 2},
	}

	free, ok := correios.ApplyFreeShipping(quotes, 350, 299)
	assert.True(t, ok)
	for i, q := range free {
		assert.True(t, q.Price.IsZero())
		assert.Equal(t, quotes[i].Days, q.Days)
	}
	assert.Equal(t, "19.08", quotes[0].Price.StringFixed(2), "input is not mutated")

	same, ok := correios.ApplyFreeShipping(quotes, 100, 299)
	assert.False(t, ok)
	assert.Equal(t, quotes, same)
}
