package elevation

import (
	"fmt"
	"sync"
)

// Holds the outcome of a walk started at column 0 of a single row.
type WalkResult struct {
	StartRow int
	Path     Path
	// The total elevation change along Path.
	ElevationChange int
	// Non-nil if the walk failed, in which case Path is nil.
	Err error
}

// Walks from column 0 of every row in the grid, one goroutine per row. Each
// walk gets its own tie breaker from newTieBreaker, which may be nil to use a
// time-seeded random one per row. A failed walk is recorded in its result and
// doesn't prevent the others from completing. Results are ordered by row.
// Returns nil if g is nil.
func WalkAllRows(g *Grid, newTieBreaker func(row int) TieBreaker,
	boundary BoundaryPolicy) []WalkResult {
	if g == nil {
		return nil
	}
	toReturn := make([]WalkResult, g.Height())
	var wg sync.WaitGroup
	for row := range toReturn {
		toReturn[row].StartRow = row
		var tieBreaker TieBreaker
		if newTieBreaker != nil {
			tieBreaker = newTieBreaker(row)
		}
		wg.Add(1)
		go func(result *WalkResult, tieBreaker TieBreaker) {
			defer wg.Done()
			walkRow(g, result, tieBreaker, boundary)
		}(&(toReturn[row]), tieBreaker)
	}
	wg.Wait()
	return toReturn
}

// Fills in the given result, for the walk starting at result.StartRow.
func walkRow(g *Grid, result *WalkResult, tieBreaker TieBreaker,
	boundary BoundaryPolicy) {
	w, e := NewWalker(g, tieBreaker, boundary)
	if e != nil {
		result.Err = e
		return
	}
	path, e := w.Walk(result.StartRow, 0)
	if e != nil {
		result.Err = e
		return
	}
	change, e := path.ElevationChange(g)
	if e != nil {
		result.Err = e
		return
	}
	result.Path = path
	result.ElevationChange = change
}

// Returns the successful walk with the smallest total elevation change. Ties
// go to the lowest start row. Returns an error if no walk succeeded.
func BestWalk(results []WalkResult) (*WalkResult, error) {
	var best *WalkResult
	for i := range results {
		r := &(results[i])
		if r.Err != nil {
			continue
		}
		if best == nil {
			best = r
			continue
		}
		if (r.ElevationChange < best.ElevationChange) ||
			((r.ElevationChange == best.ElevationChange) &&
				(r.StartRow < best.StartRow)) {
			best = r
		}
	}
	if best == nil {
		if len(results) == 0 {
			return nil, fmt.Errorf("No walks were provided")
		}
		return nil, fmt.Errorf("None of the %d walks succeeded; first "+
			"error: %w", len(results), results[0].Err)
	}
	return best, nil
}
