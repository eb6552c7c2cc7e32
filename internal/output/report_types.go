package output

import (
	"sort"

	"github.com/nestegg/wealth-projector/internal/domain"
)

// Report bundles everything a formatter needs to render one projection
// run. It is assembled once after the run and treated as read-only.
type Report struct {
	Params    domain.SimulationParams `json:"params"`
	PathCount int                     `json:"path_count"`
	Seed      int64                   `json:"seed"`
	View      string                  `json:"view"`
	Ranks     []int                   `json:"ranks"`

	Bands domain.PercentileBands `json:"bands"`

	MedianFinalBalance     float64 `json:"median_final_balance"`
	ScheduledContributions float64 `json:"scheduled_contributions"`

	// Representative realized paths by final-balance rank, when the
	// caller asked for diagnostics.
	Representative map[int]domain.PathResult `json:"representative_paths,omitempty"`
}

// NewReport assembles a Report from raw path results and precomputed
// bands. The median final balance is the nearest-rank 50th percentile of
// nominal final balances; scheduled contributions are the deterministic
// contribution schedule implied by the parameters.
func NewReport(params domain.SimulationParams, seed int64, view string, ranks []int, results []domain.PathResult, bands domain.PercentileBands) *Report {
	finals := make([]float64, len(results))
	for i, r := range results {
		finals[i] = r.FinalBalance
	}
	sort.Float64s(finals)
	var median float64
	if n := len(finals); n > 0 {
		idx := 50 * n / 100
		if idx >= n {
			idx = n - 1
		}
		median = finals[idx]
	}

	contribution := params.InitialContribution
	var scheduled float64
	for year := 0; year < params.Years; year++ {
		scheduled += contribution
		contribution *= 1 + params.ContributionGrowthRate
	}

	return &Report{
		Params:                 params,
		PathCount:              len(results),
		Seed:                   seed,
		View:                   view,
		Ranks:                  append([]int(nil), ranks...),
		Bands:                  bands,
		MedianFinalBalance:     median,
		ScheduledContributions: scheduled,
	}
}
