package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/trapmaze/internal/gamedata"
	"github.com/samdwyer/trapmaze/internal/telemetry"
	"github.com/samdwyer/trapmaze/internal/ui"
	"github.com/samdwyer/trapmaze/internal/world"
)

const restartHint = "Press Enter to restart"

// Game drives a Session from terminal input.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return newGame(cfg, screen, theme), nil
}

func newGame(cfg Config, screen *ui.Screen, theme *gamedata.Theme) *Game {
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		session:  NewSession(cfg, world.NewSource(cfg.Seed)),
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	if _, err := g.session.Start(ctx); err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}

	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID.String()),
		attribute.Int64("config.seed", g.cfg.Seed),
		attribute.Int("config.width", g.cfg.Width),
		attribute.Int("config.height", g.cfg.Height),
	)
	initSpan.End()

	for g.running {
		g.render()

		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}

	return nil
}

// render draws the current session state.
func (g *Game) render() {
	s := g.session
	lvl := s.Level()
	if lvl == nil {
		return
	}

	view := ui.View{
		Grid:   lvl.Grid,
		Player: s.Player(),
		Level:  lvl.Number,
		Status: s.Status(),
	}
	if s.Phase() == PhaseGameOver {
		view.Overlay = []string{s.Status(), restartHint}
	}

	g.renderer.Render(view)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return g.handleCommand(ctx, commandForKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		g.running = false
	}
	return nil
}

// handleCommand applies a command according to the session phase.
func (g *Game) handleCommand(ctx context.Context, cmd command) error {
	if cmd.kind == cmdQuit {
		g.running = false
		return nil
	}

	switch g.session.Phase() {
	case PhaseGameOver:
		if cmd.kind == cmdConfirm || cmd.kind == cmdCancel {
			_, err := g.session.Restart(ctx)
			return err
		}

	case PhasePlaying:
		var result MoveResult
		switch cmd.kind {
		case cmdCancel:
			g.running = false
			return nil
		case cmdMove:
			result = g.session.Move(ctx, cmd.dir)
		case cmdJump:
			result = g.session.Jump(ctx, cmd.dir, g.cfg.JumpDistance)
		default:
			return nil
		}

		if result.Outcome == OutcomeGoal {
			return g.advance(ctx)
		}
	}

	return nil
}

// advance shows the completion message for LevelPause, then loads the
// next level.
func (g *Game) advance(ctx context.Context) error {
	g.render()

	if g.cfg.LevelPause > 0 {
		timer := time.NewTimer(g.cfg.LevelPause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	_, err := g.session.NextLevel(ctx)
	return err
}
