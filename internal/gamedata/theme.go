package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/connectfour/internal/board"
)

const themeFile = "theme.yaml"

// DiscDef describes how one seat's discs are drawn.
type DiscDef struct {
	Glyph string `yaml:"glyph"` // Single character (e.g., "o")
	Color string `yaml:"color"` // Hex color or color name, used by the screen console
}

// BorderDef holds the frame glyphs around the grid.
type BorderDef struct {
	Vertical    string `yaml:"vertical"`     // Between cells and on both sides
	BottomLeft  string `yaml:"bottom_left"`  // Bottom-left corner
	BottomRight string `yaml:"bottom_right"` // Bottom-right corner
	Fill        string `yaml:"fill"`         // Under each cell
	Joiner      string `yaml:"joiner"`       // Under each inner vertical bar
	Color       string `yaml:"color"`
}

// Theme is the full set of glyphs and colors used to draw a board.
type Theme struct {
	Name  string `yaml:"name"`
	Empty string `yaml:"empty"`
	Discs struct {
		First  DiscDef `yaml:"first"`
		Second DiscDef `yaml:"second"`
	} `yaml:"discs"`
	Border BorderDef `yaml:"border"`
}

// DefaultTheme loads the embedded theme.
func DefaultTheme() (Theme, error) {
	theme, err := Load[Theme](themeFile)
	if err != nil {
		return Theme{}, err
	}
	return theme, theme.Validate()
}

// LoadTheme returns the embedded theme with the YAML file at path laid over it.
// An empty path returns the embedded theme unchanged.
func LoadTheme(path string) (Theme, error) {
	theme, err := Load[Theme](themeFile)
	if err != nil {
		return Theme{}, err
	}
	if path != "" {
		if err := overlayFile(path, &theme); err != nil {
			return Theme{}, err
		}
	}
	if err := theme.Validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", theme.Name, err)
	}
	return theme, nil
}

// Validate checks that every glyph is a single character, that the two discs differ
// and that all colors parse.
func (t Theme) Validate() error {
	glyphs := map[string]string{
		"empty":               t.Empty,
		"discs.first.glyph":   t.Discs.First.Glyph,
		"discs.second.glyph":  t.Discs.Second.Glyph,
		"border.vertical":     t.Border.Vertical,
		"border.bottom_left":  t.Border.BottomLeft,
		"border.bottom_right": t.Border.BottomRight,
		"border.fill":         t.Border.Fill,
		"border.joiner":       t.Border.Joiner,
	}
	var errs []error
	for field, glyph := range glyphs {
		if utf8.RuneCountInString(glyph) != 1 {
			errs = append(errs, fmt.Errorf("%s must be a single character, got %q", field, glyph))
		}
	}
	if t.Discs.First.Glyph == t.Discs.Second.Glyph {
		errs = append(errs, fmt.Errorf("disc glyphs must differ, both are %q", t.Discs.First.Glyph))
	}
	if t.Discs.First.Glyph == t.Empty || t.Discs.Second.Glyph == t.Empty {
		errs = append(errs, errors.New("disc glyphs must differ from the empty glyph"))
	}
	for field, color := range map[string]string{
		"discs.first.color":  t.Discs.First.Color,
		"discs.second.color": t.Discs.Second.Color,
		"border.color":       t.Border.Color,
	} {
		if color == "" {
			continue
		}
		if _, err := ParseColor(color); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	return errors.Join(errs...)
}

// CellRune returns the glyph drawn for a cell.
func (t Theme) CellRune(c board.Cell) rune {
	switch c {
	case board.First:
		return firstRune(t.Discs.First.Glyph)
	case board.Second:
		return firstRune(t.Discs.Second.Glyph)
	default:
		return firstRune(t.Empty)
	}
}

// Palette maps every colored glyph to its tcell color. Glyphs without a color are omitted.
func (t Theme) Palette() map[rune]tcell.Color {
	palette := make(map[rune]tcell.Color)
	add := func(glyph, color string) {
		if color == "" {
			return
		}
		if c, err := ParseColor(color); err == nil {
			palette[firstRune(glyph)] = c
		}
	}
	for _, g := range []string{t.Border.Vertical, t.Border.BottomLeft, t.Border.BottomRight, t.Border.Fill, t.Border.Joiner} {
		add(g, t.Border.Color)
	}
	add(t.Discs.First.Glyph, t.Discs.First.Color)
	add(t.Discs.Second.Glyph, t.Discs.Second.Color)
	return palette
}

// firstRune returns the first character of s, or '?' if s is empty.
func firstRune(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return '?'
	}
	return r
}
