// Package pathwalk extracts the junction list of a minimum-turn path: the
// sequence of positions where the route starts, ends, or changes direction.
package pathwalk

import (
	"errors"

	"github.com/crossplay/levelgen/pkg/geometry"
	"github.com/crossplay/levelgen/pkg/metrics"
)

// ErrUnreachable is returned when start and goal are not in the same room.
var ErrUnreachable = errors.New("pathwalk: goal unreachable from start")

// ExtractJunctions walks the turn map's first-direction chain from start to
// goal and returns the ordered list of junctions: start, goal, and every
// position where the upcoming step direction differs from the previous one.
func ExtractJunctions(turns *metrics.TurnMap, start, goal geometry.Position) ([]geometry.Position, error) {
	if start == goal {
		return []geometry.Position{start}, nil
	}

	junctions := []geometry.Position{start}
	var prevDir *geometry.Direction
	cur := start

	for cur != goal {
		e, ok := turns.Turns(cur, goal)
		if !ok || e.FirstDir == nil {
			return nil, ErrUnreachable
		}

		if prevDir != nil && *prevDir != *e.FirstDir {
			junctions = append(junctions, cur)
		}

		dir := *e.FirstDir
		prevDir = &dir
		cur = cur.Step(dir)
	}

	junctions = append(junctions, goal)
	return junctions, nil
}
