package simulation

import (
	"github.com/nestegg/wealth-projector/internal/domain"
)

// SimulatePath runs one path with the default volatilities. The Runner
// uses simulatePath directly so configured volatilities flow through.
func SimulatePath(params domain.SimulationParams, src *Source) (domain.PathResult, error) {
	return simulatePath(params, src, DefaultReturnVolatility, DefaultInflationVolatility)
}

// simulatePath advances one account balance year by year. Both rate
// sequences are drawn up front from the same Source, returns first and
// inflation second; the order is part of the determinism contract, so a
// change to the inflation volatility never alters the return sequence a
// given seed produces.
func simulatePath(params domain.SimulationParams, src *Source, returnVol, inflationVol float64) (domain.PathResult, error) {
	if err := params.Validate(); err != nil {
		return domain.PathResult{}, err
	}

	returns := SampleReturns(src, params.AnnualReturn, params.Years, returnVol)
	inflation := SampleInflation(src, params.InflationRate, params.Years, inflationVol)

	years := make([]domain.YearRecord, 0, params.Years)
	balance := params.StartingAssets
	contribution := params.InitialContribution
	cumulativeInflation := 1.0
	var totalContributions, totalGrowth float64

	for year := 1; year <= params.Years; year++ {
		returnRate := returns[year-1]
		inflationRate := inflation[year-1]

		// Contributions compound in the year they are made: add first,
		// then apply growth to the combined balance.
		invested := balance + contribution
		growth := invested * returnRate
		ending := invested + growth
		cumulativeInflation *= 1 + inflationRate

		years = append(years, domain.YearRecord{
			Year:                year,
			StartingBalance:     balance,
			Contribution:        contribution,
			ReturnRate:          returnRate,
			InflationRate:       inflationRate,
			Growth:              growth,
			EndingBalance:       ending,
			CumulativeInflation: cumulativeInflation,
			RealEndingBalance:   ending / cumulativeInflation,
		})

		totalContributions += contribution
		totalGrowth += growth
		balance = ending
		contribution *= 1 + params.ContributionGrowthRate
	}

	return domain.PathResult{
		Years:              years,
		FinalBalance:       balance,
		TotalContributions: totalContributions,
		TotalGrowth:        totalGrowth,
	}, nil
}
