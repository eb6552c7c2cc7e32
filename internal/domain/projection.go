package domain

// YearRecord captures one simulated year of a single path. Year is 1-based.
type YearRecord struct {
	Year            int     `json:"year"`
	StartingBalance float64 `json:"starting_balance"`
	Contribution    float64 `json:"contribution"`
	ReturnRate      float64 `json:"return_rate"`
	InflationRate   float64 `json:"inflation_rate"`
	Growth          float64 `json:"growth"`
	EndingBalance   float64 `json:"ending_balance"`

	// CumulativeInflation is the product of (1 + inflation) over all years
	// up to and including this one; RealEndingBalance is EndingBalance
	// deflated by it.
	CumulativeInflation float64 `json:"cumulative_inflation"`
	RealEndingBalance   float64 `json:"real_ending_balance"`
}

// PathResult is the outcome of simulating one path. Years is ordered by
// year; FinalBalance equals StartingAssets + TotalContributions +
// TotalGrowth up to floating tolerance.
type PathResult struct {
	Years              []YearRecord `json:"years"`
	FinalBalance       float64      `json:"final_balance"`
	TotalContributions float64      `json:"total_contributions"`
	TotalGrowth        float64      `json:"total_growth"`
}

// PercentileBands maps each requested percentile rank to an ordered series
// of balances, one per year, computed independently per year across all
// paths. A band is a cross-section, not a realized trajectory: the curve
// for a given rank may be stitched from different underlying paths at
// different years.
type PercentileBands struct {
	Years int               `json:"years"`
	Real  bool              `json:"real"`
	Bands map[int][]float64 `json:"bands"`
}
