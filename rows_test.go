package elevation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yalue/elevation"
)

func fixedUp(row int) elevation.TieBreaker {
	return elevation.FixedTieBreaker(0)
}

func TestWalkAllRows(t *testing.T) {
	g, err := elevation.NewGrid(fiveByThree)
	require.NoError(t, err)
	results := elevation.WalkAllRows(g, fixedUp, elevation.ClampToGrid)
	require.Len(t, results, g.Height())
	for row, r := range results {
		assert.Equal(t, row, r.StartRow)
		require.NoError(t, r.Err)
		require.Len(t, r.Path, g.Width())
		assert.Equal(t, elevation.Position{Row: row, Column: 0}, r.Path[0])
		change, err := r.Path.ElevationChange(g)
		require.NoError(t, err)
		assert.Equal(t, change, r.ElevationChange)

		// Walking the same row alone gives the same path.
		w, err := elevation.NewWalker(g, elevation.FixedTieBreaker(0),
			elevation.ClampToGrid)
		require.NoError(t, err)
		path, err := w.Walk(row, 0)
		require.NoError(t, err)
		assert.Equal(t, path, r.Path)
	}
}

func TestWalkAllRows_FailuresAreIndependent(t *testing.T) {
	g, err := elevation.NewGrid(fiveByThree)
	require.NoError(t, err)
	results := elevation.WalkAllRows(g, nil, elevation.RejectAtEdge)
	require.Len(t, results, 5)
	assert.ErrorIs(t, results[0].Err, elevation.ErrOutOfBounds)
	assert.Nil(t, results[0].Path)
	assert.ErrorIs(t, results[4].Err, elevation.ErrOutOfBounds)
	// The middle rows go straight into column 1, which isn't an edge row, and
	// column 2 is the last one.
	for _, row := range []int{1, 2, 3} {
		assert.NoError(t, results[row].Err, "row %d", row)
		assert.Len(t, results[row].Path, 3)
	}
}

func TestWalkAllRows_NilGrid(t *testing.T) {
	assert.Nil(t, elevation.WalkAllRows(nil, fixedUp, elevation.ClampToGrid))
}

func TestBestWalk(t *testing.T) {
	results := []elevation.WalkResult{
		{StartRow: 0, ElevationChange: 10, Path: elevation.Path{{0, 0}}},
		{StartRow: 1, Err: elevation.ErrOutOfBounds},
		{StartRow: 2, ElevationChange: 4, Path: elevation.Path{{2, 0}}},
		{StartRow: 3, ElevationChange: 4, Path: elevation.Path{{3, 0}}},
		{StartRow: 4, ElevationChange: 7, Path: elevation.Path{{4, 0}}},
	}
	best, err := elevation.BestWalk(results)
	require.NoError(t, err)
	assert.Equal(t, 2, best.StartRow)
	assert.Equal(t, 4, best.ElevationChange)
}

func TestBestWalk_Errors(t *testing.T) {
	_, err := elevation.BestWalk(nil)
	assert.Error(t, err)
	_, err = elevation.BestWalk([]elevation.WalkResult{
		{StartRow: 0, Err: elevation.ErrOutOfBounds},
		{StartRow: 1, Err: elevation.ErrOutOfBounds},
	})
	assert.ErrorIs(t, err, elevation.ErrOutOfBounds)
}

func TestBestWalk_FromAllRows(t *testing.T) {
	g, err := elevation.NewGrid([][]int{
		{10, 50, 90},
		{20, 21, 22},
		{30, 60, 10},
	})
	require.NoError(t, err)
	results := elevation.WalkAllRows(g, fixedUp, elevation.ClampToGrid)
	best, err := elevation.BestWalk(results)
	require.NoError(t, err)
	assert.Equal(t, 1, best.StartRow)
	assert.Equal(t, elevation.Path{{1, 0}, {1, 1}, {1, 2}}, best.Path)
	assert.Equal(t, 2, best.ElevationChange)
}
