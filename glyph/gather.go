package glyph

import (
	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// Gather finds every glyph in pic: each maximal group of same-coloured,
// 8-connected pixels whose colour the ledger classifies as relevant.
// Seeds are taken in row-major order, so glyphs come out ordered by their
// first pixel in reading order. pic is not modified.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for the seen flags and output.
func Gather(pic *picture.Picture, ledger palette.Ledger) []Glyph {
	seen := make([]bool, len(pic.Pixels))
	var glyphs []Glyph

	for i0, c := range pic.Pixels {
		if seen[i0] || !ledger.Relevant(c) {
			continue // visited, or a colour we don't care about
		}
		glyphs = append(glyphs, flood(pic, i0, seen))
	}
	return glyphs
}

// flood collects the component containing seed index i0 with an explicit
// stack, visiting neighbours in geom.Surrounding order.
func flood(pic *picture.Picture, i0 int, seen []bool) Glyph {
	color := pic.Pixels[i0]
	start := pic.Coordinate(i0)
	g := Glyph{Color: color, Bounds: geom.BoundingBox{Min: start, Max: start}}

	stack := []geom.Point{start}
	seen[i0] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		g.Pixels = append(g.Pixels, Pixel{Pos: u, Color: color})
		g.Bounds = g.Bounds.Extend(u)

		for _, d := range geom.Surrounding {
			v := u.Add(d)
			if !pic.InBounds(v) {
				continue
			}
			vi := pic.Index(v)
			if seen[vi] || pic.Pixels[vi] != color {
				continue
			}
			seen[vi] = true
			stack = append(stack, v)
		}
	}
	return g
}

// Find returns the glyph among gs that contains p.
func Find(gs []Glyph, p geom.Point) (*Glyph, bool) {
	for i := range gs {
		if gs[i].Contains(p) {
			return &gs[i], true
		}
	}
	return nil, false
}
