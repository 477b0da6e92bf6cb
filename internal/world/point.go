package world

// Point is a 0-indexed cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
