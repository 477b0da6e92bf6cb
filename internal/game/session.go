package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/trapmaze/internal/telemetry"
	"github.com/samdwyer/trapmaze/internal/world"
)

// ErrLevelNotComplete is returned by NextLevel before the goal is reached.
var ErrLevelNotComplete = errors.New("level not complete")

// MoveResult reports what a move or jump request did.
type MoveResult struct {
	Outcome Outcome
	From    world.Point // Player position before the request
	To      world.Point // Player position after the request
	Status  string      // Message for the status line
}

// Moved reports whether the player position changed.
func (r MoveResult) Moved() bool {
	return r.From != r.To
}

// Session owns the state of one player's run: the current level, the
// player position and the hazards not yet triggered.
type Session struct {
	ID uuid.UUID

	cfg     Config
	rng     world.Source
	level   *world.Level
	player  world.Point
	hazards []world.Point
	phase   Phase
	status  string
}

// NewSession creates a session. Call Start to generate the first level.
func NewSession(cfg Config, rng world.Source) *Session {
	return &Session{
		ID:  uuid.New(),
		cfg: cfg,
		rng: rng,
	}
}

// Start generates level 1.
func (s *Session) Start(ctx context.Context) (*world.Level, error) {
	return s.load(ctx, "session.start", 1)
}

// NextLevel generates the level after the one just completed.
func (s *Session) NextLevel(ctx context.Context) (*world.Level, error) {
	if s.level == nil || s.phase != PhaseLevelComplete {
		return nil, ErrLevelNotComplete
	}
	return s.load(ctx, "session.next_level", s.level.Number+1)
}

// Restart drops the current run and generates level 1 again.
func (s *Session) Restart(ctx context.Context) (*world.Level, error) {
	return s.load(ctx, "session.restart", 1)
}

func (s *Session) load(ctx context.Context, spanName string, number int) (*world.Level, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	lvl, err := world.GenerateLevel(ctx, number, s.cfg.Width, s.cfg.Height, s.rng)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate level %d: %w", number, err)
	}

	s.level = lvl
	s.player = lvl.Start
	s.hazards = slices.Clone(lvl.Hazards)
	s.phase = PhasePlaying
	s.status = fmt.Sprintf("Level %d Start!", number)

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("level.number", number),
		attribute.Int("level.hazards", len(lvl.Hazards)),
	)

	return lvl, nil
}

// Level returns the level being played, or nil before Start.
func (s *Session) Level() *world.Level { return s.level }

// LevelNumber returns the current level number, or 0 before Start.
func (s *Session) LevelNumber() int {
	if s.level == nil {
		return 0
	}
	return s.level.Number
}

// Player returns the player position.
func (s *Session) Player() world.Point { return s.player }

// Hazards returns the hazards that have not been triggered.
func (s *Session) Hazards() []world.Point { return slices.Clone(s.hazards) }

// Phase returns the session phase.
func (s *Session) Phase() Phase { return s.phase }

// Status returns the latest status message.
func (s *Session) Status() string { return s.status }

// Move steps the player one tile in dir.
func (s *Session) Move(ctx context.Context, dir Direction) MoveResult {
	dx, dy := dir.Delta()
	return s.MoveTo(ctx, s.player.Add(dx, dy))
}

// MoveTo moves the player onto target if it is inside the grid and not a
// wall. Rejected requests leave the session untouched.
func (s *Session) MoveTo(ctx context.Context, target world.Point) MoveResult {
	if r, ok := s.active(); !ok {
		return r
	}

	tile, err := s.level.Grid.At(target)
	if errors.Is(err, world.ErrOutOfBounds) {
		return s.reject(OutcomeOutOfBounds, "Out of bounds!")
	}
	if !tile.IsPassable() {
		return s.reject(OutcomeBlocked, "Bump! Wall.")
	}

	return s.land(ctx, target)
}

// Jump moves the player steps tiles in dir, checking every tile on the
// way. A wall or the grid edge anywhere on the path cancels the whole
// jump. Only the landing tile has consequences.
func (s *Session) Jump(ctx context.Context, dir Direction, steps int) MoveResult {
	if r, ok := s.active(); !ok {
		return r
	}
	if steps < 1 {
		return s.reject(OutcomeBlocked, "Nothing to jump.")
	}

	dx, dy := dir.Delta()
	pos := s.player
	for i := 0; i < steps; i++ {
		pos = pos.Add(dx, dy)
		tile, err := s.level.Grid.At(pos)
		if errors.Is(err, world.ErrOutOfBounds) {
			return s.reject(OutcomeOutOfBounds, "Jump out of bounds!")
		}
		if !tile.IsPassable() {
			return s.reject(OutcomeBlocked, "Jump blocked by a wall!")
		}
	}

	return s.land(ctx, pos)
}

func (s *Session) active() (MoveResult, bool) {
	if s.level == nil || s.phase != PhasePlaying {
		return MoveResult{Outcome: OutcomeInactive, From: s.player, To: s.player, Status: s.status}, false
	}
	return MoveResult{}, true
}

func (s *Session) reject(outcome Outcome, status string) MoveResult {
	s.status = status
	return MoveResult{Outcome: outcome, From: s.player, To: s.player, Status: status}
}

// land places the player on target and applies the tile's consequences.
func (s *Session) land(ctx context.Context, target world.Point) MoveResult {
	from := s.player
	s.player = target

	// target was validated by the caller
	tile, _ := s.level.Grid.At(target)

	result := MoveResult{Outcome: OutcomeMoved, From: from, To: target}
	switch tile {
	case world.TileGoal:
		result.Outcome = OutcomeGoal
		s.phase = PhaseLevelComplete
		s.status = fmt.Sprintf("Level %d Complete!", s.level.Number)
	case world.TileHazard:
		result.Outcome = OutcomeHazard
		s.triggerHazard(ctx, target)
		s.status = fmt.Sprintf("Stepped on a trap! Game Over (Lvl %d)!", s.level.Number)
	default:
		s.status = ""
	}
	result.Status = s.status

	return result
}

// triggerHazard consumes the hazard at p and ends the run.
func (s *Session) triggerHazard(ctx context.Context, p world.Point) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.hazard")
	defer span.End()

	_ = s.level.Grid.Set(p, world.TileFloor)
	s.hazards = slices.DeleteFunc(s.hazards, func(h world.Point) bool { return h == p })
	s.phase = PhaseGameOver

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("level.number", s.level.Number),
		attribute.Int("hazard.x", p.X),
		attribute.Int("hazard.y", p.Y),
		attribute.Int("hazards.remaining", len(s.hazards)),
	)
}
