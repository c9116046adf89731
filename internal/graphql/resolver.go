package graphql

import (
	"github.com/go-playground/validator/v10"
	"github.com/superfellype/allura-concierge-sub001/internal/telemetry"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// Resolver is the root resolver for the GraphQL schema.
// It holds dependencies needed by all resolvers.
type Resolver struct {
	Registry              *shipper.Registry
	Logger                *otelzap.Logger
	Metrics               *telemetry.Metrics
	FreeShippingThreshold float64

	validate *validator.Validate
}

// NewResolver creates a new resolver with the given dependencies.
// A non-positive threshold selects correios.DefaultFreeShippingThreshold.
func NewResolver(registry *shipper.Registry, logger *otelzap.Logger, metrics *telemetry.Metrics, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = correios.DefaultFreeShippingThreshold
	}
	return &Resolver{
		Registry:              registry,
		Logger:                logger,
		Metrics:               metrics,
		FreeShippingThreshold: threshold,
		validate:              validator.New(validator.WithRequiredStructEnabled()),
	}
}
