package graphql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
	"go.uber.org/zap"
)

const operationEstimate = "estimateShipping"

type queryResolver struct{ *Resolver }

// Query returns the resolver for root query fields.
func (r *Resolver) Query() *queryResolver { return &queryResolver{r} }

func (q *queryResolver) Health(ctx context.Context) (bool, error) {
	return true, nil
}

func (q *queryResolver) Carriers(ctx context.Context) ([]string, error) {
	return q.Registry.Names(), nil
}

func (q *queryResolver) ServiceTypes(ctx context.Context) ([]string, error) {
	return []string{
		serviceTypeToEnum(shipper.ServiceEconomy),
		serviceTypeToEnum(shipper.ServiceExpress),
	}, nil
}

// Destination returns nil for a malformed postal code.
func (q *queryResolver) Destination(ctx context.Context, postalCode string) (*Destination, error) {
	dest, err := correios.Lookup(postalCode)
	if errors.Is(err, shipper.ErrInvalidPostalCode) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return destinationToGraphQL(dest), nil
}

func (q *queryResolver) FreeShippingEligibility(ctx context.Context, subtotal float64, threshold *float64) (bool, error) {
	t := q.FreeShippingThreshold
	if threshold != nil {
		t = *threshold
	}
	return correios.IsEligibleForFreeShipping(subtotal, t), nil
}

func (q *queryResolver) EstimateShipping(ctx context.Context, input EstimateShippingInput) (*EstimateShippingResult, error) {
	start := time.Now()
	requestID := uuid.NewString()
	logger := q.Logger.Ctx(ctx)

	logger.Info("Estimating shipping",
		zap.String("request_id", requestID),
		zap.String("postal_code", input.PostalCode),
		zap.Int("item_count", len(input.Items)),
		zap.Strings("carriers", input.Carriers),
	)

	result := &EstimateShippingResult{
		QuoteIDs: []string{},
		Rates:    []*RateOption{},
	}

	if err := q.validate.Struct(input); err != nil {
		result.Errors = errorsToGraphQL([]error{fmt.Errorf("%w: %v", shipper.ErrInvalidPackage, err)})
		result.Metadata = metadata(requestID, start, false)
		q.Metrics.RecordRequest(operationEstimate, "all", "invalid", time.Since(start).Seconds())
		return result, nil
	}

	req := estimateInputToModel(input, q.FreeShippingThreshold)
	responses, errs := q.Registry.GetQuotesFromCarriers(ctx, req, input.Carriers)

	degraded := false
	quotedByCorreios := false
	for _, resp := range responses {
		quotedByCorreios = quotedByCorreios || resp.Carrier == correios.CarrierName
		result.QuoteIDs = append(result.QuoteIDs, resp.QuoteID)
		for i := range resp.Rates {
			result.Rates = append(result.Rates, rateToGraphQL(&resp.Rates[i]))
		}
		degraded = degraded || resp.Degraded
	}

	for _, err := range errs {
		carrier := carrierOf(err)
		code := shipper.ErrorCode(err)
		q.Metrics.RecordError(carrier, code)
		logger.Warn("Carrier quote failed",
			zap.String("request_id", requestID),
			zap.String("carrier", carrier),
			zap.String("code", code),
			zap.Error(err),
		)
	}
	result.Errors = errorsToGraphQL(errs)

	if dest, err := correios.Lookup(input.PostalCode); err == nil {
		result.Destination = destinationToGraphQL(dest)
		if quotedByCorreios {
			q.Metrics.RecordTier(string(dest.Tier))
		}
	}

	if input.Subtotal != nil {
		result.FreeShipping = correios.IsEligibleForFreeShipping(*input.Subtotal, q.FreeShippingThreshold)
	}

	result.Success = len(result.Rates) > 0
	result.Metadata = metadata(requestID, start, degraded)

	status := "success"
	if !result.Success {
		status = "error"
	}
	q.Metrics.RecordRequest(operationEstimate, "all", status, time.Since(start).Seconds())

	return result, nil
}

func metadata(requestID string, start time.Time, degraded bool) ResponseMetadata {
	return ResponseMetadata{
		RequestID:  requestID,
		DurationMs: int(time.Since(start).Milliseconds()),
		Degraded:   degraded,
	}
}
