package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Common colours. White doubles as the blank/consumed pixel value.
var (
	Red    = Color{R: 255, G: 0, B: 0}
	Green  = Color{R: 0, G: 255, B: 0}
	Blue   = Color{R: 0, G: 0, B: 255}
	Yellow = Color{R: 255, G: 255, B: 0}
	White  = Color{R: 255, G: 255, B: 255}
	Black  = Color{R: 0, G: 0, B: 0}

	// Pink is the function-marker colour used by user programs by default.
	Pink = Color{R: 255, G: 127, B: 248}
)

// RGB is shorthand for Color{R: r, G: g, B: b}.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts any image/color value, dropping alpha.
// Fully transparent pixels are treated as blank.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return White
	}
	return Color{R: n.R, G: n.G, B: n.B}
}

// RGBA returns c as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// IsBlank reports whether c is the blank (white) pixel value.
func (c Color) IsBlank() bool {
	return c == White
}

// IsLoopForm reports whether c has the structural loop-marker shape (N,0,0).
func (c Color) IsLoopForm() bool {
	return c.G == 0 && c.B == 0
}

// Hex renders c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
// Returns ErrBadHex wrapped with the offending input on failure.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("palette: ParseHex(%q): %w", s, ErrBadHex)
	}
	cf, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("palette: ParseHex(%q): %w", s, ErrBadHex)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for package-level literals; it panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHexList parses every entry of ss, stopping at the first error.
func ParseHexList(ss []string) ([]Color, error) {
	out := make([]Color, 0, len(ss))
	for _, s := range ss {
		c, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// IsDark reports whether c is perceptually dark (CIE L* below 0.5).
// Used to pick a readable label colour on top of c.
func (c Color) IsDark() bool {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, _, _ := cf.Lab()
	return l < 0.5
}
