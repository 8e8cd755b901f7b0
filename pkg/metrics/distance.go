// Package metrics computes all-pairs distance and minimum-turn tables over
// a grid's free space, the graph analysis the chooser and path-walk
// components query to pick and describe a route.
package metrics

import "github.com/crossplay/levelgen/pkg/geometry"

// DistanceMap is an all-pairs shortest-path table over a grid's free cells,
// measured in edges of 4-adjacent travel.
type DistanceMap struct {
	dist map[geometry.Position]map[geometry.Position]int
}

// BuildDistanceMap runs one breadth-first search per free cell and records
// the resulting distances, the same traversal the teacher uses for its
// single-origin connectivity check, generalized to every origin.
func BuildDistanceMap(g *geometry.Grid, free []geometry.Position) *DistanceMap {
	dm := &DistanceMap{dist: make(map[geometry.Position]map[geometry.Position]int, len(free))}
	for _, src := range free {
		dm.dist[src] = bfsDistances(g, src)
	}
	return dm
}

func bfsDistances(g *geometry.Grid, src geometry.Position) map[geometry.Position]int {
	dist := map[geometry.Position]int{src: 0}
	queue := []geometry.Position{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.FreeNeighbors(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Dist returns the shortest-path distance between u and v. The second
// return value is false if u and v are not in the same room.
func (dm *DistanceMap) Dist(u, v geometry.Position) (int, bool) {
	row, ok := dm.dist[u]
	if !ok {
		return 0, false
	}
	d, ok := row[v]
	return d, ok
}
