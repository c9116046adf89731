package graphql

import (
	"errors"
	"strings"
	"time"

	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
)

func estimateInputToModel(input EstimateShippingInput, threshold float64) *shipper.QuoteRequest {
	req := &shipper.QuoteRequest{
		Destination: shipper.Address{
			PostalCode:  input.PostalCode,
			CountryCode: "BR",
		},
		Packages: itemsInputToModel(input.Items),
		Options: shipper.ShippingOptions{
			Carriers:              input.Carriers,
			FreeShippingThreshold: threshold,
		},
	}
	if input.Subtotal != nil {
		req.Options.Subtotal = *input.Subtotal
	}
	return req
}

func itemsInputToModel(inputs []ItemInput) []shipper.Package {
	packages := make([]shipper.Package, len(inputs))
	for i, input := range inputs {
		pkg := shipper.Package{
			Length: input.LengthCm,
			Width:  input.WidthCm,
			Height: input.HeightCm,
		}
		if input.WeightGrams != nil {
			pkg.WeightGrams = *input.WeightGrams
		}
		packages[i] = pkg
	}
	return packages
}

func rateToGraphQL(rate *shipper.RateOption) *RateOption {
	return &RateOption{
		RateID:       rate.RateID,
		Carrier:      rate.Carrier,
		Service:      rate.ServiceCode,
		Name:         rate.ServiceName,
		ServiceType:  serviceTypeToEnum(rate.ServiceType),
		Price:        rate.TotalPrice.Amount,
		Currency:     rate.TotalPrice.Currency,
		Days:         rate.TransitDays,
		ExpiresAt:    rate.ExpiresAt.UTC().Format(time.RFC3339),
		FreeOfCharge: rate.FreeOfCharge,
	}
}

func destinationToGraphQL(d correios.Destination) *Destination {
	return &Destination{
		PostalCode: d.PostalCode,
		State:      string(d.State),
		Region:     string(d.Region),
		Tier:       strings.ToUpper(string(d.Tier)),
	}
}

func errorsToGraphQL(errs []error) []*Error {
	if len(errs) == 0 {
		return nil
	}
	result := make([]*Error, len(errs))
	for i, err := range errs {
		e := &Error{
			Code:    shipper.ErrorCode(err),
			Message: err.Error(),
		}
		if carrier := carrierOf(err); carrier != "unknown" {
			e.Carrier = &carrier
		}
		result[i] = e
	}
	return result
}

func carrierOf(err error) string {
	var shipperErr *shipper.ShipperError
	if errors.As(err, &shipperErr) && shipperErr.Carrier != "" {
		return shipperErr.Carrier
	}
	return "unknown"
}

func serviceTypeToEnum(st shipper.ServiceType) string {
	switch st {
	case shipper.ServiceExpress:
		return "EXPRESS"
	default:
		return "ECONOMY"
	}
}
