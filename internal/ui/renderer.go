package ui

import (
	"strconv"

	"github.com/samdwyer/trapmaze/internal/gamedata"
	"github.com/samdwyer/trapmaze/internal/world"
)

// View is everything the renderer needs for one frame.
type View struct {
	Grid    *world.Grid
	Player  world.Point
	Level   int
	Status  string
	Overlay []string // Centered message lines, drawn only when non-empty
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the grid, the player, the level and status lines, and the
// overlay if there is one.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	g := v.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile, err := g.At(world.Point{X: x, Y: y})
			if err != nil {
				continue
			}
			def, ok := r.theme.Tile(tile.String())
			if !ok {
				r.screen.SetContent(x, y, tile.Rune(), r.theme.Status.Style())
				continue
			}
			r.screen.SetContent(x, y, def.GlyphRune(), def.Style())
		}
	}

	r.screen.SetContent(v.Player.X, v.Player.Y, r.theme.Player.GlyphRune(), r.theme.Player.Style())

	r.drawText(0, g.Height(), levelLine(v.Level), r.theme.Status)
	r.drawText(0, g.Height()+1, v.Status, r.theme.Status)

	if len(v.Overlay) > 0 {
		r.drawOverlay(g.Width(), g.Height(), v.Overlay)
	}

	r.screen.Show()
}

// drawOverlay centers lines over a w x h area on a filled band.
func (r *Renderer) drawOverlay(w, h int, lines []string) {
	top := (h - len(lines)) / 2
	for i, line := range lines {
		y := top + i
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', r.theme.Overlay.Style())
		}
		x := (w - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		r.drawText(x, y, line, r.theme.Overlay)
	}
}

func (r *Renderer) drawText(x, y int, msg string, def gamedata.GlyphDef) {
	style := def.Style()
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

func levelLine(n int) string {
	return "Level: " + strconv.Itoa(n)
}
