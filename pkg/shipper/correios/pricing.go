package correios

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Service is a Correios delivery service.
type Service string

const (
	ServicePAC   Service = "PAC"
	ServiceSEDEX Service = "SEDEX"
)

// Services lists the quoted services in the order they are returned.
var Services = []Service{ServicePAC, ServiceSEDEX}

var serviceNames = map[Service]string{
	ServicePAC:   "PAC - Correios",
	ServiceSEDEX: "SEDEX - Correios",
}

// DisplayName returns the customer-facing name of the service.
func (s Service) DisplayName() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return string(s)
}

// Quote is a priced delivery option. Price is in BRL rounded to cents.
type Quote struct {
	Service Service
	Name    string
	Price   decimal.Decimal
	Days    int
}

type tariff struct {
	price decimal.Decimal
	days  int
}

type tariffTable map[Service]map[Tier]tariff

func (t tariffTable) lookup(s Service, tier Tier) (tariff, error) {
	byTier, ok := t[s]
	if !ok {
		return tariff{}, fmt.Errorf("no tariff for service %s", s)
	}
	tr, ok := byTier[tier]
	if !ok {
		return tariff{}, fmt.Errorf("no %s tariff for tier %s", s, tier)
	}
	return tr, nil
}

var baseTariffs = tariffTable{
	ServicePAC: {
		TierLocal:    {decimal.RequireFromString("15.90"), 5},
		TierRegional: {decimal.RequireFromString("22.90"), 8},
		TierNacional: {decimal.RequireFromString("32.90"), 12},
	},
	ServiceSEDEX: {
		TierLocal:    {decimal.RequireFromString("25.90"), 2},
		TierRegional: {decimal.RequireFromString("35.90"), 4},
		TierNacional: {decimal.RequireFromString("52.90"), 7},
	},
}

// FallbackQuotes returns the generic pair offered when an estimate cannot be
// computed.
func FallbackQuotes() []Quote {
	return []Quote{
		{Service: ServicePAC, Name: ServicePAC.DisplayName(), Price: decimal.RequireFromString("25.90"), Days: 10},
		{Service: ServiceSEDEX, Name: ServiceSEDEX.DisplayName(), Price: decimal.RequireFromString("45.90"), Days: 5},
	}
}

func priceQuotes(tariffs tariffTable, tier Tier, multiplier decimal.Decimal) ([]Quote, error) {
	quotes := make([]Quote, 0, len(Services))
	for _, s := range Services {
		tr, err := tariffs.lookup(s, tier)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, Quote{
			Service: s,
			Name:    s.DisplayName(),
			Price:   tr.price.Mul(multiplier).Round(2),
			Days:    tr.days,
		})
	}
	return quotes, nil
}
