package models

import (
	"net/url"
	"strconv"

	"github.com/nestegg/wealth-projector/internal/domain"
)

// SimulateRequest carries one projection request, either as a JSON body
// (POST) or as query parameters (GET). The two forms bind to the same
// struct so a POSTed run and its shareable GET link mean the same thing.
//
// Seed is a pointer so an absent seed is distinguishable from an explicit
// seed of 0; when absent, the handler derives one from the clock and
// reports it back, keeping the engine itself free of nondeterminism.
type SimulateRequest struct {
	StartingAssets         float64 `json:"starting_assets" form:"starting_assets"`
	AnnualReturn           float64 `json:"annual_return" form:"annual_return"`
	InitialContribution    float64 `json:"initial_contribution" form:"initial_contribution"`
	ContributionGrowthRate float64 `json:"contribution_growth_rate" form:"contribution_growth_rate"`
	InflationRate          float64 `json:"inflation_rate" form:"inflation_rate"`
	Years                  int     `json:"years" form:"years"`
	PathCount              int     `json:"path_count" form:"path_count"`
	Seed                   *int64  `json:"seed" form:"seed"`
	View                   string  `json:"view" form:"view"`
	Ranks                  []int   `json:"ranks" form:"ranks"`
	IncludePaths           bool    `json:"include_paths" form:"include_paths"`
}

// Params extracts the engine parameters, applying the years default.
func (r SimulateRequest) Params() domain.SimulationParams {
	years := r.Years
	if years == 0 {
		years = domain.DefaultYears
	}
	return domain.SimulationParams{
		StartingAssets:         r.StartingAssets,
		AnnualReturn:           r.AnnualReturn,
		InitialContribution:    r.InitialContribution,
		ContributionGrowthRate: r.ContributionGrowthRate,
		InflationRate:          r.InflationRate,
		Years:                  years,
	}
}

// Query encodes the request as its canonical shareable query string using
// the resolved seed. Floats use the shortest round-tripping decimal form
// and the seed is an exact base-10 integer, so parsing the string back
// reproduces the identical run.
func (r SimulateRequest) Query(seed int64) string {
	v := url.Values{}
	v.Set("starting_assets", formatFloat(r.StartingAssets))
	v.Set("annual_return", formatFloat(r.AnnualReturn))
	v.Set("initial_contribution", formatFloat(r.InitialContribution))
	v.Set("contribution_growth_rate", formatFloat(r.ContributionGrowthRate))
	v.Set("inflation_rate", formatFloat(r.InflationRate))
	v.Set("years", strconv.Itoa(r.Params().Years))
	if r.PathCount > 0 {
		v.Set("path_count", strconv.Itoa(r.PathCount))
	}
	v.Set("seed", strconv.FormatInt(seed, 10))
	if r.View != "" {
		v.Set("view", r.View)
	}
	for _, rank := range r.Ranks {
		v.Add("ranks", strconv.Itoa(rank))
	}
	return v.Encode()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
