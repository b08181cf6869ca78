package picture

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
)

// Picture is a row-major RGB pixel grid.
// Pixels[y*Width+x] holds the colour at (x, y).
type Picture struct {
	Width, Height int
	Pixels        []palette.Color
}

// New returns a blank (all white) picture of the given size.
// Returns ErrEmptyPicture if either dimension is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyPicture
	}
	px := make([]palette.Color, width*height)
	for i := range px {
		px[i] = palette.White
	}
	return &Picture{Width: width, Height: height, Pixels: px}, nil
}

// FromPixels wraps a copy of px as a width×height picture.
// Returns ErrEmptyPicture or ErrBufferSize on inconsistent input.
func FromPixels(width, height int, px []palette.Color) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyPicture
	}
	if len(px) != width*height {
		return nil, fmt.Errorf("picture: FromPixels(%d×%d, len=%d): %w", width, height, len(px), ErrBufferSize)
	}
	cp := make([]palette.Color, len(px))
	copy(cp, px)
	return &Picture{Width: width, Height: height, Pixels: cp}, nil
}

// From2D builds a picture from rows of colours (rows[y][x]).
// Returns ErrEmptyPicture if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(rows [][]palette.Color) (*Picture, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyPicture
	}
	h, w := len(rows), len(rows[0])
	px := make([]palette.Color, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		px = append(px, row...)
	}
	return &Picture{Width: w, Height: h, Pixels: px}, nil
}

// InBounds reports whether p lies within the picture.
// Complexity: O(1).
func (pic *Picture) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < pic.Width && p.Y >= 0 && p.Y < pic.Height
}

// Index maps p to its row-major offset: y*Width + x.
// The caller is responsible for bounds.
func (pic *Picture) Index(p geom.Point) int {
	return p.Y*pic.Width + p.X
}

// Coordinate converts a row-major offset back to a position.
func (pic *Picture) Coordinate(idx int) geom.Point {
	return geom.Point{X: idx % pic.Width, Y: idx / pic.Width}
}

// At returns the colour at p, or White when p is out of bounds.
func (pic *Picture) At(p geom.Point) palette.Color {
	if !pic.InBounds(p) {
		return palette.White
	}
	return pic.Pixels[pic.Index(p)]
}

// Set paints p with c. Out-of-bounds writes are ignored.
func (pic *Picture) Set(p geom.Point, c palette.Color) {
	if pic.InBounds(p) {
		pic.Pixels[pic.Index(p)] = c
	}
}

// Blank consumes p by painting it white.
func (pic *Picture) Blank(p geom.Point) {
	pic.Set(p, palette.White)
}

// IsBlank reports whether p is white or out of bounds.
func (pic *Picture) IsBlank(p geom.Point) bool {
	return pic.At(p).IsBlank()
}

// Bounds returns the inclusive box covering the whole picture.
func (pic *Picture) Bounds() geom.BoundingBox {
	return geom.BoundingBox{Max: geom.Point{X: pic.Width - 1, Y: pic.Height - 1}}
}

// Clone returns a deep copy; matching always works on one.
// Complexity: O(W×H).
func (pic *Picture) Clone() *Picture {
	cp := make([]palette.Color, len(pic.Pixels))
	copy(cp, pic.Pixels)
	return &Picture{Width: pic.Width, Height: pic.Height, Pixels: cp}
}

// Sub returns the inclusive region b as a new picture.
// Positions in the result are relative to b.Min.
// Returns ErrOutOfBounds if b is empty or leaves the picture.
// Complexity: O(b.Width()×b.Height()).
func (pic *Picture) Sub(b geom.BoundingBox) (*Picture, error) {
	if b.Empty() || !pic.InBounds(b.Min) || !pic.InBounds(b.Max) {
		return nil, fmt.Errorf("picture: Sub(%v) of %d×%d: %w", b, pic.Width, pic.Height, ErrOutOfBounds)
	}
	out := &Picture{Width: b.Width(), Height: b.Height(), Pixels: make([]palette.Color, 0, b.Width()*b.Height())}
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		start := pic.Index(geom.Point{X: b.Min.X, Y: y})
		out.Pixels = append(out.Pixels, pic.Pixels[start:start+b.Width()]...)
	}
	return out, nil
}

// Rotate returns the picture turned by 90°: the pixel at (x, y) moves to
// (y, Width-1-x) and the dimensions swap. Four rotations give back the
// original picture.
// Complexity: O(W×H).
func (pic *Picture) Rotate() *Picture {
	n, m := pic.Width, pic.Height
	out := &Picture{Width: m, Height: n, Pixels: make([]palette.Color, len(pic.Pixels))}
	for x := 0; x < n; x++ {
		for y := 0; y < m; y++ {
			out.Pixels[out.Index(geom.Point{X: y, Y: n - x - 1})] = pic.Pixels[pic.Index(geom.Point{X: x, Y: y})]
		}
	}
	return out
}

// RotateN applies Rotate k times (k mod 4).
func (pic *Picture) RotateN(k int) *Picture {
	k = ((k % 4) + 4) % 4
	out := pic.Clone()
	for i := 0; i < k; i++ {
		out = out.Rotate()
	}
	return out
}

// TopLeft returns the topmost-then-leftmost position for which keep returns
// true. ok is false if no position qualifies.
// Complexity: O(W×H) worst case; stops at the first hit.
func (pic *Picture) TopLeft(keep func(palette.Color) bool) (p geom.Point, ok bool) {
	for i, c := range pic.Pixels {
		if keep(c) {
			return pic.Coordinate(i), true
		}
	}
	return geom.Point{}, false
}

// String renders the picture with one rune per pixel: '.' for blank, '#'
// for anything else. Handy in test failure messages.
func (pic *Picture) String() string {
	var sb strings.Builder
	for y := 0; y < pic.Height; y++ {
		for x := 0; x < pic.Width; x++ {
			if pic.Pixels[pic.Index(geom.Point{X: x, Y: y})].IsBlank() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
