// Package world provides maze generation and grid reachability.
package world

// Tile represents a single grid tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileGoal marks the exit of the level.
	TileGoal Tile = '>'
	// TileHazard ends the run when the player lands on it.
	TileHazard Tile = 'X'
)

// IsPassable returns true if the tile can be walked on.
// Goal and hazard tiles are passable; only walls block.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileGoal:
		return "goal"
	case TileHazard:
		return "hazard"
	default:
		return "unknown"
	}
}
