package metrics

import "github.com/crossplay/levelgen/pkg/geometry"

// TurnEntry is the minimum number of direction changes over the shortest
// paths toward some fixed destination, together with the first step to take.
// FirstDir is nil when the entry describes the destination itself.
type TurnEntry struct {
	Turns    int
	FirstDir *geometry.Direction
}

// TurnMap is an all-pairs table of TurnEntry, keyed by destination then
// source: TurnMap.Turns(source, dest) mirrors the spec's turns(p, d) query.
type TurnMap struct {
	byDest map[geometry.Position]map[geometry.Position]TurnEntry
}

// BuildTurnMap computes, for every destination in free, the minimum-turn
// value and first direction from every other free cell, via worklist
// relaxation seeded at the destination. Running this once per destination
// yields the full all-pairs table.
func BuildTurnMap(g *geometry.Grid, free []geometry.Position) *TurnMap {
	tm := &TurnMap{byDest: make(map[geometry.Position]map[geometry.Position]TurnEntry, len(free))}
	for _, dest := range free {
		tm.byDest[dest] = turnsToDestination(g, dest)
	}
	return tm
}

func turnsToDestination(g *geometry.Grid, dest geometry.Position) map[geometry.Position]TurnEntry {
	// Only relax along edges that bring p one step closer to dest, so every
	// first-direction chain is also a shortest path.
	distTo := bfsDistances(g, dest)
	entries := map[geometry.Position]TurnEntry{dest: {Turns: 0, FirstDir: nil}}
	queue := []geometry.Position{dest}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		nEntry := entries[n]

		for _, p := range g.FreeNeighbors(n) {
			if distTo[p] != distTo[n]+1 {
				continue
			}
			stepDir, err := geometry.DirectionFrom(p, n)
			if err != nil {
				continue
			}

			candidate := nEntry.Turns
			if nEntry.FirstDir != nil && *nEntry.FirstDir != stepDir {
				candidate++
			}

			cur, seen := entries[p]
			if !seen || candidate < cur.Turns {
				dir := stepDir
				entries[p] = TurnEntry{Turns: candidate, FirstDir: &dir}
				queue = append(queue, p)
			}
		}
	}
	return entries
}

// Turns returns the minimum-turn entry from source toward dest. The second
// return value is false if source and dest are not in the same room.
func (tm *TurnMap) Turns(source, dest geometry.Position) (TurnEntry, bool) {
	row, ok := tm.byDest[dest]
	if !ok {
		return TurnEntry{}, false
	}
	e, ok := row[source]
	return e, ok
}
