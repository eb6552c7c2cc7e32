package simulation

import (
	"fmt"
	"sort"

	"github.com/nestegg/wealth-projector/internal/domain"
)

// DefaultRanks are the canonical percentile ranks callers request when
// they have no preference of their own.
var DefaultRanks = []int{10, 25, 50, 75, 90}

// rankIndex is the nearest-rank selection rule: floor(rank/100 * n),
// clamped to the last element. No interpolation.
func rankIndex(rank, n int) int {
	idx := rank * n / 100
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// ComputePercentiles reduces M path results to per-year percentile bands.
// For each year the M balances (nominal ending balance, or real when
// useReal is set) are sorted ascending and the nearest-rank value is
// selected, independently per year. The resulting band for a rank is a
// cross-section across paths, not any single simulated trajectory.
func ComputePercentiles(results []domain.PathResult, ranks []int, useReal bool) (domain.PercentileBands, error) {
	if len(results) == 0 {
		return domain.PercentileBands{}, fmt.Errorf("%w: no path results to aggregate", domain.ErrInvalidParameter)
	}
	if len(ranks) == 0 {
		ranks = DefaultRanks
	}
	for _, rank := range ranks {
		if rank < 0 || rank > 100 {
			return domain.PercentileBands{}, fmt.Errorf("%w: percentile rank must be in [0, 100], got %d", domain.ErrInvalidParameter, rank)
		}
	}
	years := len(results[0].Years)
	for i, result := range results {
		if len(result.Years) != years {
			return domain.PercentileBands{}, fmt.Errorf("%w: path %d has %d years, expected %d", domain.ErrInvalidParameter, i, len(result.Years), years)
		}
	}

	bands := make(map[int][]float64, len(ranks))
	for _, rank := range ranks {
		bands[rank] = make([]float64, years)
	}

	balances := make([]float64, len(results))
	for t := 0; t < years; t++ {
		for i, result := range results {
			if useReal {
				balances[i] = result.Years[t].RealEndingBalance
			} else {
				balances[i] = result.Years[t].EndingBalance
			}
		}
		sort.Float64s(balances)
		for _, rank := range ranks {
			bands[rank][t] = balances[rankIndex(rank, len(balances))]
		}
	}

	return domain.PercentileBands{Years: years, Real: useReal, Bands: bands}, nil
}
