package geom

import "fmt"

// BoundingBox is an inclusive axis-aligned rectangle: both Min (top-left)
// and Max (bottom-right) lie inside it.
type BoundingBox struct {
	Min, Max Point
}

// BoxOf returns the smallest box holding every point in pts.
// The zero box is returned for an empty slice.
// Complexity: O(len(pts)).
func BoxOf(pts ...Point) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b
}

// Extend returns b grown to include p.
func (b BoundingBox) Extend(p Point) BoundingBox {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// Contains reports whether p lies inside b, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width is the number of columns covered by b.
func (b BoundingBox) Width() int { return b.Max.X - b.Min.X + 1 }

// Height is the number of rows covered by b.
func (b BoundingBox) Height() int { return b.Max.Y - b.Min.Y + 1 }

// Inset shrinks b by n pixels on every side. The result may be empty
// (Min past Max) when b is too small.
func (b BoundingBox) Inset(n int) BoundingBox {
	return BoundingBox{
		Min: b.Min.Add(Point{X: n, Y: n}),
		Max: b.Max.Sub(Point{X: n, Y: n}),
	}
}

// Empty reports whether b covers no pixel.
func (b BoundingBox) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%v-%v]", b.Min, b.Max)
}
