package models

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestegg/wealth-projector/internal/domain"
)

func TestParamsAppliesYearsDefault(t *testing.T) {
	req := SimulateRequest{AnnualReturn: 0.07}
	assert.Equal(t, domain.DefaultYears, req.Params().Years)

	req.Years = 12
	assert.Equal(t, 12, req.Params().Years)
}

func TestQueryRoundTripsLosslessly(t *testing.T) {
	req := SimulateRequest{
		StartingAssets:         100000.25,
		AnnualReturn:           0.07,
		InitialContribution:    20000,
		ContributionGrowthRate: 0.05,
		InflationRate:          0.025,
		Years:                  30,
		PathCount:              250,
		View:                   "real",
		Ranks:                  []int{10, 50, 90},
	}

	values, err := url.ParseQuery(req.Query(42))
	require.NoError(t, err)

	// Seed must round-trip as an exact integer.
	seed, err := strconv.ParseInt(values.Get("seed"), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)

	// Floats use the shortest round-tripping form: parsing them back
	// yields the identical values.
	for key, want := range map[string]float64{
		"starting_assets":          req.StartingAssets,
		"annual_return":            req.AnnualReturn,
		"initial_contribution":     req.InitialContribution,
		"contribution_growth_rate": req.ContributionGrowthRate,
		"inflation_rate":           req.InflationRate,
	} {
		got, err := strconv.ParseFloat(values.Get(key), 64)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	assert.Equal(t, "30", values.Get("years"))
	assert.Equal(t, "250", values.Get("path_count"))
	assert.Equal(t, "real", values.Get("view"))
	assert.Equal(t, []string{"10", "50", "90"}, values["ranks"])
}

func TestQueryOmitsUnsetOptionals(t *testing.T) {
	req := SimulateRequest{AnnualReturn: 0.07}
	values, err := url.ParseQuery(req.Query(7))
	require.NoError(t, err)
	assert.Empty(t, values.Get("path_count"))
	assert.Empty(t, values.Get("view"))
	assert.Empty(t, values["ranks"])
	// Years is always present, defaulted, so the link is self-contained.
	assert.Equal(t, strconv.Itoa(domain.DefaultYears), values.Get("years"))
}
