// Package glyph extracts glyphs, the maximal 8-connected regions of one
// relevant colour, from a picture.
//
// A pixel is relevant when the supplied palette.Ledger classifies its colour
// as anything but None. Glyphs are derived fresh for every scan and carry
// absolute picture positions plus an inclusive bounding box.
//
// Complexity:
//
//   - Gather: O(W·H·8) time, O(W·H) memory for the seen bitmap and output.
package glyph

import (
	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
)

// Pixel is one member of a glyph: its absolute position and colour.
type Pixel struct {
	Pos   geom.Point
	Color palette.Color
}

// Glyph is a maximal 8-connected set of same-coloured relevant pixels.
type Glyph struct {
	Color  palette.Color
	Pixels []Pixel
	Bounds geom.BoundingBox
}

// Len returns the number of member pixels.
func (g *Glyph) Len() int { return len(g.Pixels) }

// TopLeft returns the topmost-then-leftmost member, the seed used when the
// glyph is matched against a machine. The zero point is returned for an
// empty glyph.
func (g *Glyph) TopLeft() geom.Point {
	if len(g.Pixels) == 0 {
		return geom.Point{}
	}
	best := g.Pixels[0].Pos
	for _, px := range g.Pixels[1:] {
		if px.Pos.Less(best) {
			best = px.Pos
		}
	}
	return best
}

// Contains reports whether p is a member of g.
// Complexity: O(len(Pixels)).
func (g *Glyph) Contains(p geom.Point) bool {
	if !g.Bounds.Contains(p) {
		return false
	}
	for _, px := range g.Pixels {
		if px.Pos == p {
			return true
		}
	}
	return false
}

// Points returns the member positions in discovery order.
func (g *Glyph) Points() []geom.Point {
	out := make([]geom.Point, len(g.Pixels))
	for i, px := range g.Pixels {
		out[i] = px.Pos
	}
	return out
}
