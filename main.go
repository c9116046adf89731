package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/superfellype/allura-concierge-sub001/internal/server"
	"github.com/superfellype/allura-concierge-sub001/internal/telemetry"
	"go.uber.org/zap"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "allura-concierge",
	Short:   "Allura storefront shipping estimator - Correios PAC/SEDEX quotes over GraphQL",
	Version: version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL server",
	RunE:  runServe,
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Print PAC and SEDEX quotes for a postal code",
	Example: "  allura-concierge estimate --cep 38400-000 --item 300:10x20x30\n" +
		"  allura-concierge estimate --cep 69000000 --item 10x10x10 --item 800:20x20x20 --subtotal 320",
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().String("cep", "", "destination postal code (CEP)")
	estimateCmd.Flags().StringArray("item", nil, "cart item as [weightGrams:]HxWxL in centimeters, repeatable")
	estimateCmd.Flags().Float64("subtotal", 0, "order subtotal in BRL, zeroes prices when free shipping applies")
	_ = estimateCmd.MarkFlagRequired("cep")

	rootCmd.AddCommand(serveCmd, estimateCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize telemetry
	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracerShutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
	} else {
		defer tracerShutdown(context.Background())
	}

	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize shipper registry with all carriers
	registry := initShipperRegistry(cfg, logger, metrics)

	logger.Info("Starting Allura shipping service",
		zap.Int("port", cfg.Port),
		zap.String("version", cfg.Version),
		zap.Float64("free_shipping_threshold", cfg.FreeShippingThreshold),
	)

	// Start HTTP server
	srv := server.New(server.Config{
		Port:                  cfg.Port,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
	}, registry, logger, metrics)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
