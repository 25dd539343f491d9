package colorspace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Palette is a set of named colors. Names are case-insensitive; spaces and
// '-' are treated as '_'.
type Palette struct {
	colors map[string]Color
}

// Base hues of the standard palette.
var standardHex = [...]struct{ name, hex string }{
	{"white", "#FFFFFF"},
	{"black", "#000000"},
	{"gray", "#888888"},
	{"blue", "#58C4DD"},
	{"teal", "#5CD0B3"},
	{"green", "#83C167"},
	{"yellow", "#FFFF00"},
	{"gold", "#F0AC5F"},
	{"red", "#FC6255"},
	{"maroon", "#C55F73"},
	{"purple", "#9A72AC"},
	{"pink", "#D147BD"},
	{"orange", "#FF862F"},
}

// NewPalette returns the standard palette. Every chromatic base color also
// gets "light_" and "dark_" variants, mixed halfway toward white or black
// in Oklab. Each call builds a fresh palette.
func NewPalette() *Palette {
	p := &Palette{colors: make(map[string]Color, len(standardHex)*3)}
	for _, e := range standardHex {
		c := MustHex(e.hex)
		p.colors[e.name] = c
		if e.name == "white" || e.name == "black" {
			continue
		}
		p.colors["light_"+e.name] = Interpolate(c, White, 0.5, Oklab)
		p.colors["dark_"+e.name] = Interpolate(c, Black, 0.5, Oklab)
	}
	return p
}

// paletteFile is the TOML layout read by LoadPalette:
//
//	extends = "standard"   # optional
//
//	[colors]
//	accent = "#58C4DD"
//	shadow = "#00000080"
type paletteFile struct {
	Extends string            `toml:"extends"`
	Colors  map[string]string `toml:"colors"`
}

// LoadPalette decodes a palette from TOML. With extends = "standard" the
// file's colors are layered over NewPalette; otherwise the palette holds
// only the file's colors.
func LoadPalette(data []byte) (*Palette, error) {
	var f paletteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: palette: %w", ErrValidation, err)
	}
	var p *Palette
	switch strings.ToLower(f.Extends) {
	case "":
		p = &Palette{colors: make(map[string]Color, len(f.Colors))}
	case "standard":
		p = NewPalette()
	default:
		return nil, fmt.Errorf("%w: palette extends unknown base %q", ErrValue, f.Extends)
	}
	for name, hex := range f.Colors {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", name, err)
		}
		p.Set(name, c)
	}
	return p, nil
}

func paletteKey(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(name)))
}

// Get looks up a color by name.
func (p *Palette) Get(name string) (Color, error) {
	c, ok := p.colors[paletteKey(name)]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color %q", ErrValue, name)
	}
	return c, nil
}

// MustGet is Get for names known to exist; it panics otherwise.
func (p *Palette) MustGet(name string) Color {
	c, err := p.Get(name)
	if err != nil {
		panic("colorspace: " + err.Error())
	}
	return c
}

// Set adds or replaces a named color.
func (p *Palette) Set(name string, c Color) {
	p.colors[paletteKey(name)] = c
}

// Names returns the palette's names in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.colors))
	for n := range p.colors {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }
