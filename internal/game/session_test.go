package game

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/trapmaze/internal/world"
)

// newTestSession puts a session on a hand-drawn level. '>' marks the goal
// and 'X' marks hazards.
func newTestSession(t *testing.T, start world.Point, rows ...string) *Session {
	t.Helper()

	g, err := world.ParseGrid(rows...)
	require.NoError(t, err)

	lvl := &world.Level{Number: 1, Grid: g, Start: start}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := world.Point{X: x, Y: y}
			tile, err := g.At(p)
			require.NoError(t, err)
			switch tile {
			case world.TileGoal:
				lvl.Goal = p
			case world.TileHazard:
				lvl.Hazards = append(lvl.Hazards, p)
			}
		}
	}

	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(1)))
	s.level = lvl
	s.player = start
	s.hazards = slices.Clone(lvl.Hazards)
	s.phase = PhasePlaying
	return s
}

func TestSessionStart(t *testing.T) {
	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(99)))
	assert.Equal(t, 0, s.LevelNumber())

	lvl, err := s.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, s.LevelNumber())
	assert.Equal(t, lvl.Start, s.Player())
	assert.Equal(t, lvl.Hazards, s.Hazards())
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, "Level 1 Start!", s.Status())
	assert.Equal(t, world.DefaultWidth, lvl.Grid.Width())
	assert.Equal(t, world.DefaultHeight, lvl.Grid.Height())
	assert.True(t, world.IsReachable(lvl.Grid, lvl.Start, lvl.Goal))
}

func TestSessionStartRejectsTinyGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2

	_, err := NewSession(cfg, rand.New(rand.NewSource(1))).Start(context.Background())
	assert.ErrorIs(t, err, world.ErrGridTooSmall)
}

func TestMoveOutOfBounds(t *testing.T) {
	ctx := context.Background()
	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(3)))
	_, err := s.Start(ctx)
	require.NoError(t, err)

	before := s.Player()
	result := s.MoveTo(ctx, world.Point{X: -1, Y: 3})

	assert.Equal(t, OutcomeOutOfBounds, result.Outcome)
	assert.Equal(t, "Out of bounds!", result.Status)
	assert.False(t, result.Moved())
	assert.Equal(t, before, s.Player())
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestMove(t *testing.T) {
	rows := []string{
		"#####",
		"#...#",
		"#.#.#",
		"#####",
	}

	tests := []struct {
		name     string
		dir      Direction
		outcome  Outcome
		expected world.Point
		status   string
	}{
		{"right", DirRight, OutcomeMoved, world.Point{X: 2, Y: 1}, ""},
		{"down", DirDown, OutcomeMoved, world.Point{X: 1, Y: 2}, ""},
		{"up into wall", DirUp, OutcomeBlocked, world.Point{X: 1, Y: 1}, "Bump! Wall."},
		{"left into wall", DirLeft, OutcomeBlocked, world.Point{X: 1, Y: 1}, "Bump! Wall."},
		{"diagonal into wall", DirDownRight, OutcomeBlocked, world.Point{X: 1, Y: 1}, "Bump! Wall."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, world.Point{X: 1, Y: 1}, rows...)

			result := s.Move(context.Background(), tt.dir)

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.expected, s.Player())
			assert.Equal(t, tt.expected, result.To)
			assert.Equal(t, tt.status, s.Status())
		})
	}
}

func TestMoveDiagonalPassesCorners(t *testing.T) {
	s := newTestSession(t, world.Point{X: 1, Y: 1},
		"####",
		"#.##",
		"##.#",
		"####",
	)

	result := s.Move(context.Background(), DirDownRight)

	assert.Equal(t, OutcomeMoved, result.Outcome)
	assert.Equal(t, world.Point{X: 2, Y: 2}, s.Player())
}

func TestJumpBlockedByAdjacentWall(t *testing.T) {
	for steps := 1; steps <= 5; steps++ {
		s := newTestSession(t, world.Point{X: 1, Y: 1},
			"#######",
			"#.#...#",
			"#######",
		)

		result := s.Jump(context.Background(), DirRight, steps)

		assert.Equal(t, OutcomeBlocked, result.Outcome, "steps %d", steps)
		assert.Equal(t, "Jump blocked by a wall!", result.Status, "steps %d", steps)
		assert.Equal(t, world.Point{X: 1, Y: 1}, s.Player(), "steps %d", steps)
	}
}

func TestJump(t *testing.T) {
	rows := []string{
		"..X...#.",
		"........",
	}

	tests := []struct {
		name     string
		dir      Direction
		steps    int
		outcome  Outcome
		expected world.Point
	}{
		{"over a hazard", DirRight, 3, OutcomeMoved, world.Point{X: 4, Y: 0}},
		{"wall midway", DirRight, 5, OutcomeBlocked, world.Point{X: 1, Y: 0}},
		{"past the left edge", DirLeft, 3, OutcomeOutOfBounds, world.Point{X: 1, Y: 0}},
		{"onto a hazard", DirRight, 1, OutcomeHazard, world.Point{X: 2, Y: 0}},
		{"zero steps", DirRight, 0, OutcomeBlocked, world.Point{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, world.Point{X: 1, Y: 0}, rows...)

			result := s.Jump(context.Background(), tt.dir, tt.steps)

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.expected, s.Player())
		})
	}
}

func TestJumpOutOfBoundsStatus(t *testing.T) {
	s := newTestSession(t, world.Point{X: 2, Y: 0}, "....")

	result := s.Jump(context.Background(), DirRight, 3)

	assert.Equal(t, OutcomeOutOfBounds, result.Outcome)
	assert.Equal(t, "Jump out of bounds!", result.Status)
	assert.Equal(t, world.Point{X: 2, Y: 0}, s.Player())
}

func TestHazardEndsRun(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, world.Point{X: 1, Y: 1},
		"######",
		"#.XX>#",
		"######",
	)
	require.Len(t, s.Hazards(), 2)

	result := s.Move(ctx, DirRight)

	assert.Equal(t, OutcomeHazard, result.Outcome)
	assert.Equal(t, "Stepped on a trap! Game Over (Lvl 1)!", result.Status)
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, []world.Point{{X: 3, Y: 1}}, s.Hazards())

	tile, err := s.Level().Grid.At(world.Point{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, world.TileFloor, tile)

	// No more moves until restart.
	result = s.Move(ctx, DirRight)
	assert.Equal(t, OutcomeInactive, result.Outcome)
	assert.Equal(t, world.Point{X: 2, Y: 1}, s.Player())
}

func TestGoalAdvancesLevel(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, world.Point{X: 1, Y: 1},
		"#####",
		"#..>#",
		"#####",
	)

	_, err := s.NextLevel(ctx)
	assert.ErrorIs(t, err, ErrLevelNotComplete)

	result := s.Jump(ctx, DirRight, 2)
	assert.Equal(t, OutcomeGoal, result.Outcome)
	assert.Equal(t, "Level 1 Complete!", result.Status)
	assert.Equal(t, PhaseLevelComplete, s.Phase())

	assert.Equal(t, OutcomeInactive, s.Move(ctx, DirLeft).Outcome)

	lvl, err := s.NextLevel(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, lvl.Number)
	assert.Equal(t, 2, s.LevelNumber())
	assert.Equal(t, lvl.Start, s.Player())
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, "Level 2 Start!", s.Status())
	assert.Equal(t, world.DefaultWidth, lvl.Grid.Width())
}

func TestRestartResetsToLevelOne(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, world.Point{X: 1, Y: 1},
		"#####",
		"#.X>#",
		"#####",
	)
	s.level.Number = 4

	require.Equal(t, OutcomeHazard, s.Move(ctx, DirRight).Outcome)
	assert.Equal(t, "Stepped on a trap! Game Over (Lvl 4)!", s.Status())

	lvl, err := s.Restart(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, lvl.Number)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, lvl.Hazards, s.Hazards())
}

func TestOutcomeAndPhaseStrings(t *testing.T) {
	outcomes := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeMoved, "moved"},
		{OutcomeBlocked, "blocked"},
		{OutcomeOutOfBounds, "out_of_bounds"},
		{OutcomeGoal, "goal"},
		{OutcomeHazard, "hazard"},
		{OutcomeInactive, "inactive"},
		{Outcome(99), "unknown"},
	}
	for _, tt := range outcomes {
		assert.Equal(t, tt.expected, tt.outcome.String())
	}

	phases := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlaying, "playing"},
		{PhaseLevelComplete, "level_complete"},
		{PhaseGameOver, "game_over"},
		{Phase(99), "unknown"},
	}
	for _, tt := range phases {
		assert.Equal(t, tt.expected, tt.phase.String())
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
		name   string
	}{
		{DirUp, 0, -1, "up"},
		{DirDown, 0, 1, "down"},
		{DirLeft, -1, 0, "left"},
		{DirRight, 1, 0, "right"},
		{DirUpLeft, -1, -1, "up_left"},
		{DirUpRight, 1, -1, "up_right"},
		{DirDownLeft, -1, 1, "down_left"},
		{DirDownRight, 1, 1, "down_right"},
		{Direction(42), 0, 0, "unknown"},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		assert.Equal(t, tt.dx, dx, tt.name)
		assert.Equal(t, tt.dy, dy, tt.name)
		assert.Equal(t, tt.name, tt.dir.String())
	}
}
