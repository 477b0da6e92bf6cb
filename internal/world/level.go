package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/trapmaze/internal/telemetry"
)

const (
	// One hazard per this many floor tiles at most.
	floorTilesPerHazard = 20
	// Hazard target at level 1 is baseHazards+1.
	baseHazards = 4
	// Goal must be farther than min(W,H)/goalDistanceDivisor from the start.
	goalDistanceDivisor = 1.5
)

var (
	// ErrGridTooSmall is returned when the grid has no interior cell to carve.
	ErrGridTooSmall = errors.New("grid too small for a maze")
	// ErrInvalidLevel is returned for level numbers below 1.
	ErrInvalidLevel = errors.New("invalid level number")
)

// Level is a finished maze ready to be played.
type Level struct {
	Number       int
	Grid         *Grid
	Start        Point
	Goal         Point
	Hazards      []Point
	FloorTiles   int // size of the carved candidate set
	HazardTarget int // hazards requested before connectivity rejections
}

// HazardTarget returns how many hazards a level asks for:
// min(floorTiles/20, 4+level).
func HazardTarget(floorTiles, level int) int {
	return min(floorTiles/floorTilesPerHazard, baseHazards+level)
}

// GenerateLevel carves a new maze and places the goal and hazards so that
// the goal stays reachable from the start.
func GenerateLevel(ctx context.Context, number, width, height int, rng Source) (*Level, error) {
	if number < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, number)
	}
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, width, height)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	start, floor := Carve(g, rng)
	goal := placeGoal(g, start, floor, rng)

	target := HazardTarget(len(floor), number)
	hazards, rejected := placeHazards(g, start, goal, floor, target, rng)

	span.SetAttributes(
		attribute.Int("level.number", number),
		attribute.Int("level.width", width),
		attribute.Int("level.height", height),
		attribute.Int("level.floor_tiles", len(floor)),
		attribute.Int("level.goal_distance", start.Manhattan(goal)),
		attribute.Int("level.hazard_target", target),
		attribute.Int("level.hazards_placed", len(hazards)),
		attribute.Int("level.hazards_rejected", rejected),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Level{
		Number:       number,
		Grid:         g,
		Start:        start,
		Goal:         goal,
		Hazards:      hazards,
		FloorTiles:   len(floor),
		HazardTarget: target,
	}, nil
}

// placeGoal marks the goal tile and returns its position. candidates is
// shuffled in place.
//
// Preference order: a candidate farther than min(W,H)/1.5 from start, then
// any candidate other than start, then the (W-2, H-2) corner. If the corner
// is off the grid the goal lands on start itself.
func placeGoal(g *Grid, start Point, candidates []Point, rng Source) Point {
	shuffle(rng, candidates)

	minDist := float64(min(g.width, g.height)) / goalDistanceDivisor
	for _, p := range candidates {
		if p != start && float64(p.Manhattan(start)) > minDist {
			g.set(p, TileGoal)
			return p
		}
	}

	for _, p := range candidates {
		if p != start {
			g.set(p, TileGoal)
			return p
		}
	}

	corner := Point{X: g.width - 2, Y: g.height - 2}
	if !g.InBounds(corner) {
		return start
	}
	g.set(corner, TileGoal)
	return corner
}

// placeHazards tries candidates in a fresh random order, committing each
// one only if the goal remains reachable with that cell blocked. It returns
// the committed hazards and the number of candidates rejected for cutting
// the path.
func placeHazards(g *Grid, start, goal Point, candidates []Point, target int, rng Source) ([]Point, int) {
	shuffle(rng, candidates)

	hazards := make([]Point, 0, target)
	rejected := 0
	for _, p := range candidates {
		if len(hazards) >= target {
			break
		}
		if p == start || p == goal {
			continue
		}

		original := g.at(p)
		if original == TileHazard {
			continue
		}

		g.set(p, TileWall)
		if !IsReachable(g, start, goal) {
			g.set(p, original)
			rejected++
			continue
		}

		g.set(p, TileHazard)
		hazards = append(hazards, p)
	}

	return hazards, rejected
}
