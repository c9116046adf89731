package correios_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper/correios"
)

func TestNormalizePostalCode(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "38400000", want: "38400000"},
		{raw: "38400-000", want: "38400000"},
		{raw: "38.400-000", want: "38400000"},
		{raw: "CEP 01310 000", want: "01310000"},
		{raw: "123", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "384000001", wantErr: true},
		{raw: "3840O000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := correios.NormalizePostalCode(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, shipper.ErrInvalidPostalCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateForPostalCode(t *testing.T) {
	tests := []struct {
		cep  string
		want correios.State
	}{
		{"00000000", correios.StateSP},
		{"01000000", correios.StateSP},
		{"19999999", correios.StateSP},
		{"20000000", correios.StateRJ},
		{"28999999", correios.StateRJ},
		{"29000000", correios.StateES},
		{"30000000", correios.StateMG},
		{"39999999", correios.StateMG},
		{"40000000", correios.StateBA},
		{"49000000", correios.StateSE},
		{"50000000", correios.StatePE},
		{"57000000", correios.StateAL},
		{"58000000", correios.StatePB},
		{"59000000", correios.StateRN},
		{"63000000", correios.StateCE},
		{"64000000", correios.StatePI},
		{"65000000", correios.StateMA},
		{"68000000", correios.StatePA},
		{"69000000", correios.StateAM},
		{"73000000", correios.StateDF},
		{"74000000", correios.StateGO},
		{"77000000", correios.StateTO},
		{"78000000", correios.StateMT},
		{"79000000", correios.StateMS},
		{"80000000", correios.StatePR},
		{"89000000", correios.StateSC},
		{"99999999", correios.StateRS},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, correios.StateForPostalCode(tt.cep), tt.cep)
	}
}

func TestTierFor_EveryStateClassified(t *testing.T) {
	states := []correios.State{
		correios.StateAC, correios.StateAL, correios.StateAM, correios.StateAP, correios.StateBA,
		correios.StateCE, correios.StateDF, correios.StateES, correios.StateGO, correios.StateMA,
		correios.StateMG, correios.StateMS, correios.StateMT, correios.StatePA, correios.StatePB,
		correios.StatePE, correios.StatePI, correios.StatePR, correios.StateRJ, correios.StateRN,
		correios.StateRO, correios.StateRR, correios.StateRS, correios.StateSC, correios.StateSE,
		correios.StateSP, correios.StateTO,
	}

	for _, s := range states {
		_, err := correios.RegionOf(s)
		assert.NoError(t, err, s)
		tier, err := correios.TierFor(s)
		assert.NoError(t, err, s)
		assert.Contains(t, correios.Tiers, tier)
	}
}

func TestTierFor_UnknownState(t *testing.T) {
	_, err := correios.TierFor(correios.State("XX"))
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	dest, err := correios.Lookup("90000-000")
	require.NoError(t, err)
	assert.Equal(t, correios.Destination{
		PostalCode: "90000000",
		State:      correios.StateRS,
		Region:     correios.RegionSul,
		Tier:       correios.TierRegional,
	}, dest)

	_, err = correios.Lookup("123")
	assert.True(t, errors.Is(err, shipper.ErrInvalidPostalCode))
}
