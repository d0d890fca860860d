package solve

import (
	"context"
	"sync"

	"github.com/nkasten/cubesolver"
)

// RunAll runs every available backend in the registry concurrently,
// each against its own clone of the same cube state and under its own
// independent wall-clock budget. It reports each backend's result exactly
// as that backend measured it — no cross-backend time rescaling, matching
// spec.md's explicit exclusion of a "speedup adjustment" against the
// fastest result.
func RunAll(ctx context.Context, r *Registry, c *cube.Cube, opts Options) []Result {
	backends := r.Available()
	results := make([]Result, len(backends))

	var wg sync.WaitGroup
	for i, b := range backends {
		i, b := i, b
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = b.Solve(ctx, c.Clone(), opts)
		}()
	}
	wg.Wait()

	return results
}
