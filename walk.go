package elevation

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Chooses between equally good options when walking. Walks only consult the
// tie breaker when moving diagonally up and moving diagonally down are equally
// good, and both are better than moving straight ahead; Choose(2) returning 0
// means "up", and 1 means "down".
type TieBreaker interface {
	// Must return a value in [0, n).
	Choose(n int) int
}

type randomTieBreaker struct {
	rng *rand.Rand
}

func (t *randomTieBreaker) Choose(n int) int {
	return t.rng.Intn(n)
}

// Returns a TieBreaker that flips an unbiased coin. If the given seed is not
// positive, a seed will be selected based on the current time in nanoseconds.
// The returned TieBreaker must not be shared between goroutines.
func NewRandomTieBreaker(seed int64) TieBreaker {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &randomTieBreaker{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// A TieBreaker that always makes the same choice. FixedTieBreaker(0) always
// picks "up", FixedTieBreaker(1) always picks "down".
type FixedTieBreaker int

func (t FixedTieBreaker) Choose(n int) int {
	return int(t)
}

// Determines what a walk does when it's on the first or last row, where one of
// the diagonal moves would leave the grid.
type BoundaryPolicy uint8

const (
	// Diagonal moves that would leave the grid are simply not considered.
	ClampToGrid BoundaryPolicy = iota
	// Stepping from the first or last row fails with ErrOutOfBounds, even if
	// the grid's only row is both.
	RejectAtEdge
)

func (p BoundaryPolicy) String() string {
	switch p {
	case ClampToGrid:
		return "clamp"
	case RejectAtEdge:
		return "reject"
	}
	return fmt.Sprintf("Unknown BoundaryPolicy: %d", uint8(p))
}

// A single (row, column) location in a grid.
type Position struct {
	Row    int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// The positions visited by a walk, in order, including the starting position.
type Path []Position

// Returns the sum of absolute elevation changes between consecutive positions
// in the path.
func (p Path) ElevationChange(g *Grid) (int, error) {
	total := 0
	for i := range p {
		current, e := g.ElevationAt(p[i].Row, p[i].Column)
		if e != nil {
			return 0, e
		}
		if i == 0 {
			continue
		}
		change := absDiff(current, g.elevation(p[i-1].Row, p[i-1].Column))
		if total > (math.MaxInt - change) {
			return 0, fmt.Errorf("The elevation change along the path "+
				"overflows at %s", p[i])
		}
		total += change
	}
	return total, nil
}

// Walks greedily from left to right across a single grid. Create using
// NewWalker. A Walker is only as safe for concurrent use as its TieBreaker.
type Walker struct {
	grid       *Grid
	tieBreaker TieBreaker
	boundary   BoundaryPolicy
}

// Returns a new Walker for the given grid. If tieBreaker is nil, a
// NewRandomTieBreaker with a time-based seed will be used.
func NewWalker(g *Grid, tieBreaker TieBreaker,
	boundary BoundaryPolicy) (*Walker, error) {
	if g == nil {
		return nil, fmt.Errorf("A grid is required")
	}
	if (boundary != ClampToGrid) && (boundary != RejectAtEdge) {
		return nil, fmt.Errorf("Invalid boundary policy: %s", boundary)
	}
	if tieBreaker == nil {
		tieBreaker = NewRandomTieBreaker(-1)
	}
	return &Walker{
		grid:       g,
		tieBreaker: tieBreaker,
		boundary:   boundary,
	}, nil
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Returns the position in the next column with the smallest elevation change
// from (row, col). Moving straight ahead wins whenever no diagonal move is
// strictly better. If the diagonal moves are equally good and both beat moving
// straight, the tie breaker chooses between them. Returns an error wrapping
// ErrOutOfBounds if (row, col) isn't in the grid, it's in the last column, or
// if it's on the first or last row and the walker uses RejectAtEdge.
func (w *Walker) NextPosition(row, col int) (Position, error) {
	g := w.grid
	if !g.InBounds(row, col) {
		return Position{}, fmt.Errorf("%w: can't step from row %d, "+
			"column %d", ErrOutOfBounds, row, col)
	}
	if col == (g.width - 1) {
		return Position{}, fmt.Errorf("%w: column %d is the last column",
			ErrOutOfBounds, col)
	}
	hasUp := row > 0
	hasDown := row < (g.height - 1)
	if (w.boundary == RejectAtEdge) && (!hasUp || !hasDown) {
		return Position{}, fmt.Errorf("%w: row %d has no neighbor on "+
			"both sides", ErrOutOfBounds, row)
	}
	current := g.elevation(row, col)
	next := col + 1
	straight := absDiff(current, g.elevation(row, next))
	// An unavailable diagonal is treated as never being better than moving
	// straight.
	up := straight
	if hasUp {
		up = absDiff(current, g.elevation(row-1, next))
	}
	down := straight
	if hasDown {
		down = absDiff(current, g.elevation(row+1, next))
	}

	if (straight <= up) && (straight <= down) {
		return Position{Row: row, Column: next}, nil
	}
	if up < down {
		return Position{Row: row - 1, Column: next}, nil
	}
	if down < up {
		return Position{Row: row + 1, Column: next}, nil
	}
	// Both diagonals are available, equally good, and better than straight.
	choice := w.tieBreaker.Choose(2)
	switch choice {
	case 0:
		return Position{Row: row - 1, Column: next}, nil
	case 1:
		return Position{Row: row + 1, Column: next}, nil
	}
	return Position{}, fmt.Errorf("Internal error: tie breaker returned %d "+
		"for 2 options", choice)
}

// Walks from the given start position to the last column, one column per
// step. The returned path includes the start position, so it contains
// Width() - startCol positions.
func (w *Walker) Walk(startRow, startCol int) (Path, error) {
	g := w.grid
	if !g.InBounds(startRow, startCol) {
		return nil, fmt.Errorf("%w: can't start a walk at row %d, column %d",
			ErrOutOfBounds, startRow, startCol)
	}
	toReturn := make(Path, 0, g.width-startCol)
	current := Position{Row: startRow, Column: startCol}
	toReturn = append(toReturn, current)
	for current.Column < (g.width - 1) {
		next, e := w.NextPosition(current.Row, current.Column)
		if e != nil {
			return nil, fmt.Errorf("Error stepping from %s: %w", current, e)
		}
		toReturn = append(toReturn, next)
		current = next
	}
	return toReturn, nil
}
