package world

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Default grid dimensions
	DefaultWidth  = 36
	DefaultHeight = 18
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSize is returned for non-positive grid dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Grid is a fixed-size rectangular array of tiles.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// ParseGrid builds a grid from rows of tile runes. All rows must have the
// same length and contain only known tiles.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	g, err := NewGrid(len([]rune(rows[0])), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != g.width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidSize, y, len(runes), g.width)
		}
		for x, r := range runes {
			t := Tile(r)
			if t.String() == "unknown" {
				return nil, fmt.Errorf("unknown tile %q at (%d,%d)", r, x, y)
			}
			g.tiles[y][x] = t
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p, or an error wrapping ErrOutOfBounds.
func (g *Grid) At(p Point) (Tile, error) {
	if !g.InBounds(p) {
		return TileWall, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}
	return g.tiles[p.Y][p.X], nil
}

// Set replaces the tile at p, or returns an error wrapping ErrOutOfBounds.
func (g *Grid) Set(p Point, t Tile) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}
	g.tiles[p.Y][p.X] = t
	return nil
}

// IsPassable returns true if p is inside the grid and not a wall.
func (g *Grid) IsPassable(p Point) bool {
	return g.InBounds(p) && g.tiles[p.Y][p.X].IsPassable()
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.tiles {
		for _, cell := range row {
			if cell == t {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.height)
	for y := range tiles {
		tiles[y] = append([]Tile(nil), g.tiles[y]...)
	}
	return &Grid{width: g.width, height: g.height, tiles: tiles}
}

// Rows renders the grid as one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y, row := range g.tiles {
		b.Reset()
		for _, t := range row {
			b.WriteRune(t.Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// String returns the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// at is the unchecked accessor used by the generator once bounds are known.
func (g *Grid) at(p Point) Tile {
	return g.tiles[p.Y][p.X]
}

func (g *Grid) set(p Point, t Tile) {
	g.tiles[p.Y][p.X] = t
}
