package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
)

type quoteView struct {
	Service string  `json:"service"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Days    int     `json:"days"`
}

type estimateView struct {
	PostalCode       string      `json:"postalCode"`
	State            string      `json:"state,omitempty"`
	Region           string      `json:"region,omitempty"`
	Tier             string      `json:"tier,omitempty"`
	ChargeableWeight float64     `json:"chargeableWeightGrams"`
	FreeShipping     bool        `json:"freeShipping"`
	Fallback         bool        `json:"fallback,omitempty"`
	Quotes           []quoteView `json:"quotes"`
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cep, _ := cmd.Flags().GetString("cep")
	rawItems, _ := cmd.Flags().GetStringArray("item")
	subtotal, _ := cmd.Flags().GetFloat64("subtotal")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := initCLILogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	items := make([]correios.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, err := parseItem(raw)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	est, err := correios.NewEstimator(logger).Evaluate(cmd.Context(), cep, items)
	if err != nil {
		return fmt.Errorf("estimating %q: %w", cep, err)
	}

	quotes, free := correios.ApplyFreeShipping(est.Quotes, subtotal, cfg.FreeShippingThreshold)

	view := estimateView{
		PostalCode:       est.Destination.PostalCode,
		State:            string(est.Destination.State),
		Region:           string(est.Destination.Region),
		Tier:             string(est.Destination.Tier),
		ChargeableWeight: est.ChargeableWeightGrams,
		FreeShipping:     free,
		Fallback:         est.Fallback,
		Quotes:           make([]quoteView, len(quotes)),
	}
	for i, q := range quotes {
		view.Quotes[i] = quoteView{
			Service: string(q.Service),
			Name:    q.Name,
			Price:   q.Price.InexactFloat64(),
			Days:    q.Days,
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

// parseItem reads "[weightGrams:]HxWxL", e.g. "300:10x20x30" or "10x20x30".
func parseItem(raw string) (correios.Item, error) {
	var item correios.Item

	dims := raw
	if weight, rest, ok := strings.Cut(raw, ":"); ok {
		w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil || w < 0 {
			return item, fmt.Errorf("%w: weight in %q", shipper.ErrInvalidPackage, raw)
		}
		item.WeightGrams = w
		dims = rest
	}

	parts := strings.Split(strings.ToLower(dims), "x")
	if len(parts) != 3 {
		return item, fmt.Errorf("%w: dimensions %q, want HxWxL", shipper.ErrInvalidPackage, raw)
	}
	values := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 {
			return item, fmt.Errorf("%w: dimension %q in %q", shipper.ErrInvalidPackage, p, raw)
		}
		values[i] = v
	}
	item.HeightCm, item.WidthCm, item.LengthCm = values[0], values[1], values[2]
	return item, nil
}
