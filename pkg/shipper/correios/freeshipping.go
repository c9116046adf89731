package correios

import "github.com/shopspring/decimal"

// DefaultFreeShippingThreshold is the order subtotal, in BRL, from which
// delivery is free.
const DefaultFreeShippingThreshold = 299.0

// IsEligibleForFreeShipping reports whether subtotal reaches threshold.
// The boundary is inclusive.
func IsEligibleForFreeShipping(subtotal, threshold float64) bool {
	return subtotal >= threshold
}

// ApplyFreeShipping returns a copy of quotes with every price zeroed when
// subtotal is eligible, or the quotes unchanged otherwise.
func ApplyFreeShipping(quotes []Quote, subtotal, threshold float64) ([]Quote, bool) {
	if !IsEligibleForFreeShipping(subtotal, threshold) {
		return quotes, false
	}
	free := make([]Quote, len(quotes))
	for i, q := range quotes {
		q.Price = decimal.Zero
		free[i] = q
	}
	return free, true
}
