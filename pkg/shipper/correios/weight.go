package correios

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultWeightGrams is assumed for items whose product record has no weight.
	DefaultWeightGrams = 300

	// VolumetricDivisor is the courier convention of cubic centimeters per
	// chargeable kilogram.
	VolumetricDivisor = 6000
)

// Item holds the physical attributes of one cart line.
type Item struct {
	WeightGrams float64
	HeightCm    float64
	WidthCm     float64
	LengthCm    float64
}

func (i Item) weight() float64 {
	if i.WeightGrams == 0 {
		return DefaultWeightGrams
	}
	return i.WeightGrams
}

func (i Item) volume() float64 {
	return i.HeightCm * i.WidthCm * i.LengthCm
}

// ChargeableWeight returns the greater of the real and the volumetric weight
// of items, in grams.
func ChargeableWeight(items []Item) float64 {
	var actual, volume float64
	for _, item := range items {
		actual += item.weight()
		volume += item.volume()
	}
	volumetric := volume / VolumetricDivisor * 1000
	return max(actual, volumetric)
}

type weightBracket struct {
	upToKg     float64
	multiplier decimal.Decimal
}

// weightBrackets is ordered by upper bound; anything above the last bound
// uses heavyMultiplier.
var weightBrackets = []weightBracket{
	{0.5, decimal.RequireFromString("1.0")},
	{1, decimal.RequireFromString("1.2")},
	{2, decimal.RequireFromString("1.5")},
	{5, decimal.RequireFromString("2.0")},
	{10, decimal.RequireFromString("2.8")},
}

var heavyMultiplier = decimal.RequireFromString("3.5")

// WeightMultiplier returns the price multiplier for a chargeable weight in grams.
func WeightMultiplier(grams float64) decimal.Decimal {
	kg := grams / 1000
	for _, b := range weightBrackets {
		if kg <= b.upToKg {
			return b.multiplier
		}
	}
	return heavyMultiplier
}
