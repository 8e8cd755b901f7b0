package chooser

import (
	"math/rand"
	"testing"

	"github.com/crossplay/levelgen/pkg/geometry"
	"github.com/crossplay/levelgen/pkg/metrics"
)

func TestChooseReturnsDistinctFreeCells(t *testing.T) {
	g := geometry.NewGrid(5, 5)
	free := g.FreeCells()
	dist := metrics.BuildDistanceMap(g, free)
	turns := metrics.BuildTurnMap(g, free)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		start, goal, err := Choose(free, dist, turns, DefaultGoalTopFraction, rng)
		if err != nil {
			t.Fatalf("Choose: unexpected error: %v", err)
		}
		if start == goal {
			t.Fatalf("Choose returned start == goal: %v", start)
		}
		if !g.IsFree(start) || !g.IsFree(goal) {
			t.Fatalf("Choose returned a non-free cell: %v, %v", start, goal)
		}
	}
}

func TestChooseTooFewCells(t *testing.T) {
	g := geometry.NewGrid(1, 1)
	free := g.FreeCells()
	dist := metrics.BuildDistanceMap(g, free)
	turns := metrics.BuildTurnMap(g, free)
	_, _, err := Choose(free, dist, turns, DefaultGoalTopFraction, rand.New(rand.NewSource(1)))
	if err != ErrNoCandidates {
		t.Fatalf("err = %v, want ErrNoCandidates", err)
	}
}
