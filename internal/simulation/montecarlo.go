package simulation

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nestegg/wealth-projector/internal/domain"
)

// Runner executes many independent path simulations for one parameter
// set. Path i derives its generator from BaseSeed+i, so no generator is
// ever shared between paths and one path's draws cannot affect another's.
// Given the same (params, PathCount, BaseSeed) a Runner produces
// bit-identical results on every run.
//
// Runner never falls back to a wall-clock seed. Callers that want a fresh
// seed must derive one themselves and pass it in, so the nondeterminism
// stays visible at the boundary.
type Runner struct {
	PathCount int
	BaseSeed  int64

	// Volatility overrides; zero means the package default, mirroring
	// how unset config fields behave elsewhere.
	ReturnVolatility    float64
	InflationVolatility float64

	// Workers bounds concurrent path simulations; zero means GOMAXPROCS.
	Workers int

	Log Logger
}

// NewRunner returns a Runner with the given shape and default volatilities.
func NewRunner(pathCount int, baseSeed int64) *Runner {
	return &Runner{
		PathCount: pathCount,
		BaseSeed:  baseSeed,
		Log:       NopLogger{},
	}
}

// Run simulates all paths and returns them in path-index order. Paths are
// independent, so they run concurrently; each worker owns its Source and
// writes only its own slot of the pre-sized result slice, which keeps the
// output independent of scheduling. Cancellation applies to the run as a
// whole: it is checked between paths, never mid-year.
func (r *Runner) Run(ctx context.Context, params domain.SimulationParams) ([]domain.PathResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	pathCount := r.PathCount
	if pathCount <= 0 {
		pathCount = domain.DefaultPathCount
	}
	returnVol := r.ReturnVolatility
	if returnVol == 0 {
		returnVol = DefaultReturnVolatility
	}
	inflationVol := r.InflationVolatility
	if inflationVol == 0 {
		inflationVol = DefaultInflationVolatility
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := r.Log
	if log == nil {
		log = NopLogger{}
	}

	log.Debugf("monte carlo run: paths=%d years=%d baseSeed=%d workers=%d",
		pathCount, params.Years, r.BaseSeed, workers)

	results := make([]domain.PathResult, pathCount)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < pathCount; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := NewSource(r.BaseSeed + int64(i))
			result, err := simulatePath(params, src, returnVol, inflationVol)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
