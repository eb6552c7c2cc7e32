package domain

import (
	"errors"
	"testing"
)

func validParams() SimulationParams {
	return SimulationParams{
		StartingAssets:         100000,
		AnnualReturn:           0.07,
		InitialContribution:    20000,
		ContributionGrowthRate: 0.05,
		InflationRate:          0.025,
		Years:                  30,
	}
}

func TestValidateAcceptsSaneParams(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SimulationParams)
	}{
		{"zero years", func(p *SimulationParams) { p.Years = 0 }},
		{"negative years", func(p *SimulationParams) { p.Years = -5 }},
		{"excessive years", func(p *SimulationParams) { p.Years = MaxYears + 1 }},
		{"negative assets", func(p *SimulationParams) { p.StartingAssets = -1 }},
		{"negative contribution", func(p *SimulationParams) { p.InitialContribution = -100 }},
		{"return at -100%", func(p *SimulationParams) { p.AnnualReturn = -1 }},
		{"return above bound", func(p *SimulationParams) { p.AnnualReturn = 1.5 }},
		{"growth below bound", func(p *SimulationParams) { p.ContributionGrowthRate = -1 }},
		{"negative inflation", func(p *SimulationParams) { p.InflationRate = -0.01 }},
		{"inflation above bound", func(p *SimulationParams) { p.InflationRate = 1.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestValidateAllowsBoundaryValues(t *testing.T) {
	p := validParams()
	p.StartingAssets = 0
	p.InitialContribution = 0
	p.InflationRate = 0
	p.Years = 1
	if err := p.Validate(); err != nil {
		t.Fatalf("boundary values should validate, got %v", err)
	}
}
