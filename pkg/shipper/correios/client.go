// Package correios estimates PAC and SEDEX delivery prices from the
// storefront warehouse and exposes them as a shipping carrier.
package correios

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// CarrierName is the registry name of the Correios carrier.
const CarrierName = "correios"

// quoteTTL is how long a returned rate may be shown before re-quoting.
const quoteTTL = 30 * time.Minute

// Config holds Correios configuration.
type Config struct {
	// FreeShippingThreshold applies when a request does not carry its own.
	FreeShippingThreshold float64
}

// Client is the Correios shipper client.
type Client struct {
	config    Config
	estimator *Estimator
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Correios client with the built-in tariff tables.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer, opts ...Option) *Client {
	return NewWithEstimator(cfg, NewEstimator(logger, opts...), logger, tracer)
}

// NewWithEstimator creates a new Correios client with a custom estimator.
func NewWithEstimator(cfg Config, estimator *Estimator, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	if cfg.FreeShippingThreshold <= 0 {
		cfg.FreeShippingThreshold = DefaultFreeShippingThreshold
	}
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(CarrierName)
	}
	return &Client{
		config:    cfg,
		estimator: estimator,
		logger:    logger,
		tracer:    tracer,
	}
}

// Name returns the carrier name.
func (c *Client) Name() string {
	return CarrierName
}

// GetQuote returns PAC and SEDEX rates for the request destination.
func (c *Client) GetQuote(ctx context.Context, req *shipper.QuoteRequest) (*shipper.QuoteResponse, error) {
	ctx, span := c.tracer.Start(ctx, "correios.GetQuote", trace.WithAttributes(
		attribute.String("destination.postal_code", req.Destination.PostalCode),
		attribute.Int("package_count", len(req.Packages)),
	))
	defer span.End()

	c.logger.Ctx(ctx).Info("Getting Correios quotes",
		zap.String("destination_postal", req.Destination.PostalCode),
		zap.Int("package_count", len(req.Packages)),
	)

	est, err := c.estimator.Evaluate(ctx, req.Destination.PostalCode, packagesToItems(req.Packages))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Ctx(ctx).Warn("Correios quote rejected", zap.Error(err))
		return nil, toShipperError(err)
	}

	span.SetAttributes(
		attribute.String("destination.state", string(est.Destination.State)),
		attribute.String("destination.tier", string(est.Destination.Tier)),
		attribute.Float64("chargeable_weight_g", est.ChargeableWeightGrams),
		attribute.Bool("fallback", est.Fallback),
	)

	threshold := req.Options.FreeShippingThreshold
	if threshold <= 0 {
		threshold = c.config.FreeShippingThreshold
	}
	quotes, free := ApplyFreeShipping(est.Quotes, req.Options.Subtotal, threshold)

	return quotesToShipper(quotes, free, est.Fallback), nil
}

// ============================================================================
// Conversion helpers
// ============================================================================

func packagesToItems(pkgs []shipper.Package) []Item {
	items := make([]Item, len(pkgs))
	for i, p := range pkgs {
		items[i] = Item{
			WeightGrams: p.WeightGrams,
			HeightCm:    p.Height,
			WidthCm:     p.Width,
			LengthCm:    p.Length,
		}
	}
	return items
}

func quotesToShipper(quotes []Quote, free, degraded bool) *shipper.QuoteResponse {
	expiresAt := time.Now().Add(quoteTTL)
	rates := make([]shipper.RateOption, len(quotes))

	for i, q := range quotes {
		rates[i] = shipper.RateOption{
			RateID:       generateRateID(q.Service),
			Carrier:      CarrierName,
			ServiceCode:  string(q.Service),
			ServiceName:  q.Name,
			ServiceType:  mapServiceType(q.Service),
			TotalPrice:   shipper.Money{Amount: q.Price.InexactFloat64(), Currency: shipper.CurrencyBRL},
			TransitDays:  q.Days,
			ExpiresAt:    expiresAt,
			FreeOfCharge: free,
		}
	}

	return &shipper.QuoteResponse{
		QuoteID:   uuid.NewString(),
		Carrier:   CarrierName,
		Rates:     rates,
		ExpiresAt: expiresAt,
		Degraded:  degraded,
	}
}

func toShipperError(err error) error {
	if errors.Is(err, shipper.ErrInvalidPostalCode) {
		return shipper.NewShipperError(CarrierName, shipper.CodeInvalidPostalCode, "Invalid postal code").WithCause(err)
	}
	return shipper.NewShipperError(CarrierName, shipper.CodeCarrierError, "estimate failed").WithCause(err)
}

func generateRateID(s Service) string {
	return CarrierName + "-" + strings.ToLower(string(s)) + "-" + uuid.NewString()
}

func mapServiceType(s Service) shipper.ServiceType {
	switch s {
	case ServiceSEDEX:
		return shipper.ServiceExpress
	default:
		return shipper.ServiceEconomy
	}
}
