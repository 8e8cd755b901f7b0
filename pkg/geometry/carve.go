package geometry

import (
	"errors"
	"math/rand"
)

// ErrDegenerateGrid is returned when carving leaves a largest room with
// fewer than two cells — too small to place a start and a goal in.
var ErrDegenerateGrid = errors.New("geometry: largest room has fewer than 2 cells")

// Carve builds a rows x cols grid, scatters walls independently at a
// randomly chosen ratio within [wallRatioMin, wallRatioMax], then keeps only
// the largest connected room, walling off everything else so the returned
// grid always has exactly one room. It performs exactly one carve attempt;
// retrying on ErrDegenerateGrid is the caller's responsibility.
func Carve(rows, cols int, wallRatioMin, wallRatioMax float64, rng *rand.Rand) (*Grid, error) {
	g := NewGrid(rows, cols)

	ratio := wallRatioMin
	if wallRatioMax > wallRatioMin {
		ratio = wallRatioMin + rng.Float64()*(wallRatioMax-wallRatioMin)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < ratio {
				g.SetWall(Position{Row: r, Col: c})
			}
		}
	}

	rooms := g.Rooms()
	if len(rooms) == 0 {
		return nil, ErrDegenerateGrid
	}

	keep := largestRoom(rooms)
	if len(keep) < 2 {
		return nil, ErrDegenerateGrid
	}

	keepSet := make(map[Position]bool, len(keep))
	for _, p := range keep {
		keepSet[p] = true
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Position{Row: r, Col: c}
			if g.State(p) == Empty && !keepSet[p] {
				g.SetWall(p)
			}
		}
	}

	return g, nil
}
