package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// GlyphDef describes how one kind of cell is drawn.
type GlyphDef struct {
	Glyph      string `json:"glyph"`                // Single character (e.g., "#")
	Color      string `json:"color"`                // Hex foreground (e.g., "#5A5A6E")
	Background string `json:"background,omitempty"` // Hex background, terminal default when empty
	Bold       bool   `json:"bold,omitempty"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d GlyphDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// Style returns the tcell style for the glyph. Unparsable colors fall back
// to the terminal defaults.
func (d GlyphDef) Style() tcell.Style {
	style := tcell.StyleDefault.Bold(d.Bold)
	if fg, err := ParseHexColor(d.Color); err == nil {
		style = style.Foreground(fg)
	}
	if d.Background != "" {
		if bg, err := ParseHexColor(d.Background); err == nil {
			style = style.Background(bg)
		}
	}
	return style
}

// Theme maps tile names to glyphs plus the player and text styles.
type Theme struct {
	Tiles   map[string]GlyphDef `json:"tiles"`
	Player  GlyphDef            `json:"player"`
	Status  GlyphDef            `json:"status"`
	Overlay GlyphDef            `json:"overlay"`
}

// Tile returns the glyph for a tile name such as "wall" or "goal".
func (t *Theme) Tile(name string) (GlyphDef, bool) {
	def, ok := t.Tiles[name]
	return def, ok
}

// LoadTheme loads the embedded theme.json file.
func LoadTheme() (*Theme, error) {
	theme, err := Load[Theme]("theme.json")
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"wall", "floor", "goal", "hazard"} {
		if _, ok := theme.Tiles[name]; !ok {
			return nil, fmt.Errorf("theme.json: missing tile %q", name)
		}
	}
	return &theme, nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}
