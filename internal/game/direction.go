package game

// Direction is one of the eight single-step headings.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

var directionDeltas = [...]struct{ dx, dy int }{
	DirUp:        {0, -1},
	DirDown:      {0, 1},
	DirLeft:      {-1, 0},
	DirRight:     {1, 0},
	DirUpLeft:    {-1, -1},
	DirUpRight:   {1, -1},
	DirDownLeft:  {-1, 1},
	DirDownRight: {1, 1},
}

// Delta returns the per-step offset. Unknown directions do not move.
func (d Direction) Delta() (dx, dy int) {
	if d < 0 || int(d) >= len(directionDeltas) {
		return 0, 0
	}
	delta := directionDeltas[d]
	return delta.dx, delta.dy
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up_left"
	case DirUpRight:
		return "up_right"
	case DirDownLeft:
		return "down_left"
	case DirDownRight:
		return "down_right"
	default:
		return "unknown"
	}
}
