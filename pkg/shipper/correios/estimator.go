package correios

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// FallbackHandler is notified whenever an estimate degrades to FallbackQuotes.
type FallbackHandler func(ctx context.Context, err error)

// Option configures an Estimator.
type Option func(*Estimator)

// WithFallbackHandler registers fn to be called on every fallback.
func WithFallbackHandler(fn FallbackHandler) Option {
	return func(e *Estimator) {
		e.onFallback = fn
	}
}

// Estimator prices PAC and SEDEX deliveries from the warehouse in MG.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	logger     *otelzap.Logger
	tariffs    tariffTable
	classify   func(cep string) (Destination, error)
	onFallback FallbackHandler
}

// NewEstimator creates an estimator backed by the built-in tariff tables.
func NewEstimator(logger *otelzap.Logger, opts ...Option) *Estimator {
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}
	e := &Estimator{
		logger:   logger,
		tariffs:  baseTariffs,
		classify: classify,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimation is the full outcome of pricing one destination.
type Estimation struct {
	Destination           Destination
	ChargeableWeightGrams float64
	Quotes                []Quote

	// Fallback reports that Quotes is the generic pair because the
	// computation failed.
	Fallback bool
}

// Estimate returns the PAC and SEDEX quotes for delivering items to
// postalCode. The only error is shipper.ErrInvalidPostalCode.
func (e *Estimator) Estimate(ctx context.Context, postalCode string, items []Item) ([]Quote, error) {
	est, err := e.Evaluate(ctx, postalCode, items)
	if err != nil {
		return nil, err
	}
	return est.Quotes, nil
}

// Evaluate is Estimate with the intermediate classification attached.
// Computation faults never surface to the caller: they are logged and
// answered with FallbackQuotes.
func (e *Estimator) Evaluate(ctx context.Context, postalCode string, items []Item) (*Estimation, error) {
	cep, err := NormalizePostalCode(postalCode)
	if err != nil {
		return nil, err
	}

	est, err := e.compute(cep, items)
	if err != nil {
		e.logger.Ctx(ctx).Warn("Shipping estimate failed, using fallback quotes",
			zap.String("postal_code", cep),
			zap.Int("item_count", len(items)),
			zap.Error(err),
		)
		if e.onFallback != nil {
			e.onFallback(ctx, err)
		}
		return &Estimation{
			Destination: Destination{PostalCode: cep},
			Quotes:      FallbackQuotes(),
			Fallback:    true,
		}, nil
	}
	return est, nil
}

func (e *Estimator) compute(cep string, items []Item) (est *Estimation, err error) {
	defer func() {
		if r := recover(); r != nil {
			est, err = nil, fmt.Errorf("estimate panicked: %v", r)
		}
	}()

	dest, err := e.classify(cep)
	if err != nil {
		return nil, err
	}

	weight := ChargeableWeight(items)
	quotes, err := priceQuotes(e.tariffs, dest.Tier, WeightMultiplier(weight))
	if err != nil {
		return nil, err
	}

	return &Estimation{
		Destination:           dest,
		ChargeableWeightGrams: weight,
		Quotes:                quotes,
	}, nil
}
