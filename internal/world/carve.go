package world

// Carving moves two cells at a time so that a wall cell always sits
// between two lattice cells.
var carveDirs = [4]Point{
	{X: 0, Y: -2},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
}

// Carve turns g into a spanning-tree maze using a randomized depth-first
// search over odd coordinates. It returns the start cell and every carved
// cell (lattice cells and their connectors) in carve order.
//
// g is reset to all walls first. Both dimensions must be at least 3.
func Carve(g *Grid, rng Source) (Point, []Point) {
	for y := range g.tiles {
		for x := range g.tiles[y] {
			g.tiles[y][x] = TileWall
		}
	}

	visited := make([][]bool, g.height)
	for y := range visited {
		visited[y] = make([]bool, g.width)
	}

	start := Point{
		X: rng.Intn((g.width-1)/2)*2 + 1,
		Y: rng.Intn((g.height-1)/2)*2 + 1,
	}

	visited[start.Y][start.X] = true
	g.set(start, TileFloor)
	floor := []Point{start}
	stack := []Point{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		dirs := carveDirs
		shuffle(rng, dirs[:])

		var (
			next, wall Point
			found      bool
		)
		for _, d := range dirs {
			n := current.Add(d.X, d.Y)
			if n.X <= 0 || n.X >= g.width-1 || n.Y <= 0 || n.Y >= g.height-1 {
				continue
			}
			if visited[n.Y][n.X] {
				continue
			}
			next, wall, found = n, current.Add(d.X/2, d.Y/2), true
			break
		}

		if !found {
			stack = stack[:len(stack)-1]
			continue
		}

		g.set(wall, TileFloor)
		g.set(next, TileFloor)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
		floor = append(floor, next, wall)
	}

	return start, floor
}
