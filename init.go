package main

import (
	"context"

	"github.com/superfellype/allura-concierge-sub001/internal/config"
	"github.com/superfellype/allura-concierge-sub001/internal/telemetry"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(cfg *config.Config) (*otelzap.Logger, error) {
	return telemetry.NewLogger(cfg.LogLevel, cfg.ServiceName, cfg.Version)
}

// initCLILogger keeps warnings, fallback notices included, on stderr so
// stdout carries only the command's result.
func initCLILogger(cfg *config.Config) (*otelzap.Logger, error) {
	return telemetry.NewStderrLogger("warn", cfg.ServiceName, cfg.Version)
}

func initTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return func(context.Context) error { return nil }, nil
	}

	_, shutdown, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Attributes()...)
	return shutdown, err
}

func initShipperRegistry(cfg *config.Config, logger *otelzap.Logger, metrics *telemetry.Metrics) *shipper.Registry {
	registry := shipper.NewRegistry()

	// Global provider is a no-op unless initTracer installed one.
	tracer := otel.GetTracerProvider().Tracer(cfg.ServiceName)

	if cfg.CorreiosEnabled {
		onFallback := func(context.Context, error) {
			metrics.RecordFallback(correios.CarrierName)
		}
		registry.Register(correios.New(correios.Config{
			FreeShippingThreshold: cfg.FreeShippingThreshold,
		}, logger, tracer, correios.WithFallbackHandler(onFallback)))
	}

	return registry
}
