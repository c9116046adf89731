package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superfellype/allura-concierge-sub001/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 299.0, cfg.FreeShippingThreshold)
	assert.True(t, cfg.CorreiosEnabled)
	assert.False(t, cfg.OTELEnabled)
	assert.Equal(t, "allura-shipping", cfg.ServiceName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FREE_SHIPPING_THRESHOLD", "199.90")
	t.Setenv("CORREIOS_ENABLED", "false")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 199.90, cfg.FreeShippingThreshold)
	assert.False(t, cfg.CorreiosEnabled)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non numeric port", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"negative threshold", "FREE_SHIPPING_THRESHOLD", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_Attributes(t *testing.T) {
	cfg := &config.Config{ServiceName: "svc", Version: "1.2.3", CorreiosEnabled: true, FreeShippingThreshold: 299}

	attrs := cfg.Attributes()

	require.Len(t, attrs, 4)
	assert.Equal(t, "svc", attrs[0].Value.AsString())
	assert.Equal(t, "1.2.3", attrs[1].Value.AsString())
	assert.True(t, attrs[2].Value.AsBool())
	assert.Equal(t, 299.0, attrs[3].Value.AsFloat64())
}
