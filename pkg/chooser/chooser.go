// Package chooser samples a (start, goal) pair from a room's free cells,
// weighted toward pairs that are both far apart and require many turns to
// connect — the same "pick an interesting route" idea the teacher applies
// when seeding grid layouts with math/rand.
package chooser

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/crossplay/levelgen/pkg/geometry"
	"github.com/crossplay/levelgen/pkg/metrics"
)

// ErrNoCandidates is returned when free has fewer than 2 cells.
var ErrNoCandidates = errors.New("chooser: fewer than 2 free cells")

// DefaultGoalTopFraction is the fraction of distance+turn-ranked candidates
// the goal is sampled from, matching the spec's default of 1/3.
const DefaultGoalTopFraction = 1.0 / 3.0

// Choose samples a start cell uniformly from free, then samples a goal from
// the top goalTopFraction of the remaining cells ranked by
// dist(start,c)+turns(start,c).
func Choose(free []geometry.Position, dist *metrics.DistanceMap, turns *metrics.TurnMap, goalTopFraction float64, rng *rand.Rand) (start, goal geometry.Position, err error) {
	if len(free) < 2 {
		return geometry.Position{}, geometry.Position{}, ErrNoCandidates
	}

	start = free[rng.Intn(len(free))]

	type scored struct {
		pos   geometry.Position
		score int
	}
	candidates := make([]scored, 0, len(free)-1)
	for _, c := range free {
		if c == start {
			continue
		}
		d, ok := dist.Dist(start, c)
		if !ok {
			continue
		}
		t, ok := turns.Turns(start, c)
		if !ok {
			continue
		}
		candidates = append(candidates, scored{pos: c, score: d + t.Turns})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		a, b := candidates[i].pos, candidates[j].pos
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	k := int(math.Ceil(float64(len(candidates)) * goalTopFraction))
	if k < 1 {
		k = 1
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	goal = candidates[rng.Intn(k)].pos
	return start, goal, nil
}
