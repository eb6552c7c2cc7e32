package domain

import (
	"errors"
	"fmt"
)

// Defaults applied when a caller leaves the corresponding field unset.
const (
	DefaultYears     = 30
	DefaultPathCount = 100
)

// MaxYears bounds the projection horizon. Plain float64 arithmetic is
// comfortably inside IEEE-754 double range for horizons of this length.
const MaxYears = 200

// ErrInvalidParameter is the sentinel for all parameter validation failures.
// Callers can match it with errors.Is regardless of which field failed.
var ErrInvalidParameter = errors.New("invalid parameter")

// SimulationParams describes one projection scenario. Values are fixed for
// the duration of a simulation call; the engine never mutates them.
type SimulationParams struct {
	StartingAssets         float64 `json:"starting_assets" yaml:"starting_assets"`
	AnnualReturn           float64 `json:"annual_return" yaml:"annual_return"`
	InitialContribution    float64 `json:"initial_contribution" yaml:"initial_contribution"`
	ContributionGrowthRate float64 `json:"contribution_growth_rate" yaml:"contribution_growth_rate"`
	InflationRate          float64 `json:"inflation_rate" yaml:"inflation_rate"`
	Years                  int     `json:"years" yaml:"years"`
}

// Validate rejects parameter sets the engine will not simulate. Bounds are
// sanity bounds, wider than any UI slider range: the engine accepts any
// physically meaningful rate. Nothing is clamped here; the only documented
// clamp in the system is the inflation floor inside the sampler.
func (p SimulationParams) Validate() error {
	if p.Years <= 0 {
		return fmt.Errorf("%w: years must be positive, got %d", ErrInvalidParameter, p.Years)
	}
	if p.Years > MaxYears {
		return fmt.Errorf("%w: years must be at most %d, got %d", ErrInvalidParameter, MaxYears, p.Years)
	}
	if p.StartingAssets < 0 {
		return fmt.Errorf("%w: starting assets cannot be negative, got %g", ErrInvalidParameter, p.StartingAssets)
	}
	if p.InitialContribution < 0 {
		return fmt.Errorf("%w: initial contribution cannot be negative, got %g", ErrInvalidParameter, p.InitialContribution)
	}
	if p.AnnualReturn <= -1 || p.AnnualReturn > 1 {
		return fmt.Errorf("%w: annual return must be in (-1, 1], got %g", ErrInvalidParameter, p.AnnualReturn)
	}
	if p.ContributionGrowthRate <= -1 || p.ContributionGrowthRate > 1 {
		return fmt.Errorf("%w: contribution growth rate must be in (-1, 1], got %g", ErrInvalidParameter, p.ContributionGrowthRate)
	}
	if p.InflationRate < 0 || p.InflationRate > 1 {
		return fmt.Errorf("%w: inflation rate must be in [0, 1], got %g", ErrInvalidParameter, p.InflationRate)
	}
	return nil
}
