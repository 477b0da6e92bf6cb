package world

import "github.com/zyedidia/generic/mapset"

// Neighbor order for the breadth-first search: up, down, left, right.
var reachDirs = [4]Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// IsReachable returns true if a path of 4-connected non-wall cells joins
// start and end. Goal and hazard tiles are passable. Out-of-bounds
// endpoints are never reachable.
func IsReachable(g *Grid, start, end Point) bool {
	if !g.InBounds(start) || !g.InBounds(end) {
		return false
	}

	visited := mapset.New[Point]()
	visited.Put(start)
	queue := []Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return true
		}

		for _, d := range reachDirs {
			next := current.Add(d.X, d.Y)
			if !g.InBounds(next) || visited.Has(next) {
				continue
			}
			if g.at(next) == TileWall {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return false
}
