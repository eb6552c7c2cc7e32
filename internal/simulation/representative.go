package simulation

import (
	"fmt"
	"sort"

	"github.com/nestegg/wealth-projector/internal/domain"
)

// RepresentativePaths selects, for each requested rank, the whole realized
// path whose final balance sits at that rank across all paths. This is
// ranking by final balance over entire trajectories, which is a different
// operation from per-year band computation: a band is stitched from many
// paths, while a representative path is one real trajectory suitable for
// year-by-year diagnostics.
func RepresentativePaths(results []domain.PathResult, ranks []int) (map[int]domain.PathResult, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no path results to rank", domain.ErrInvalidParameter)
	}
	if len(ranks) == 0 {
		ranks = DefaultRanks
	}
	for _, rank := range ranks {
		if rank < 0 || rank > 100 {
			return nil, fmt.Errorf("%w: percentile rank must be in [0, 100], got %d", domain.ErrInvalidParameter, rank)
		}
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return results[order[a]].FinalBalance < results[order[b]].FinalBalance
	})

	selected := make(map[int]domain.PathResult, len(ranks))
	for _, rank := range ranks {
		selected[rank] = results[order[rankIndex(rank, len(order))]]
	}
	return selected, nil
}
