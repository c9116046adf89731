package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superfellype/allura-concierge-sub001/internal/config"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
	"go.uber.org/zap/zapcore"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		raw     string
		want    correios.Item
		wantErr bool
	}{
		{raw: "300:10x20x30", want: correios.Item{WeightGrams: 300, HeightCm: 10, WidthCm: 20, LengthCm: 30}},
		{raw: "10X20X30", want: correios.Item{HeightCm: 10, WidthCm: 20, LengthCm: 30}},
		{raw: "1.5 : 2.5x3x4", want: correios.Item{WeightGrams: 1.5, HeightCm: 2.5, WidthCm: 3, LengthCm: 4}},
		{raw: "10x20", wantErr: true},
		{raw: "abc:10x20x30", wantErr: true},
		{raw: "10x-1x30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseItem(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, shipper.ErrInvalidPackage))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"estimate", "--cep", "38400-000", "--item", "300:10x20x30"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	var view estimateView
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, "38400000", view.PostalCode)
	assert.Equal(t, "local", view.Tier)
	assert.Equal(t, 1000.0, view.ChargeableWeight)
	require.Len(t, view.Quotes, 2)
	assert.Equal(t, quoteView{Service: "PAC", Name: "PAC - Correios", Price: 19.08, Days: 5}, view.Quotes[0])
	assert.Equal(t, quoteView{Service: "SEDEX", Name: "SEDEX - Correios", Price: 31.08, Days: 2}, view.Quotes[1])
}

func TestEstimateCommand_InvalidPostalCode(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"estimate", "--cep", "123"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}

func TestInitCLILogger_KeepsWarnings(t *testing.T) {
	logger, err := initCLILogger(&config.Config{ServiceName: "allura-shipping", Version: "test"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}
