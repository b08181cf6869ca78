package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/glyphfsm/geom"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := geom.Pt(3, -2)
	q := geom.Pt(1, 5)
	assert.Equal(t, geom.Pt(4, 3), p.Add(q))
	assert.Equal(t, geom.Pt(2, -7), p.Sub(q))
	assert.Equal(t, p, p.Add(q).Sub(q))
	assert.True(t, geom.Pt(0, 0).IsZero())
	assert.False(t, q.IsZero())
	assert.Equal(t, "(3,-2)", p.String())
}

// TestPoint_Less checks the topmost-then-leftmost seed order.
func TestPoint_Less(t *testing.T) {
	assert.True(t, geom.Pt(5, 0).Less(geom.Pt(0, 1)), "row wins over column")
	assert.True(t, geom.Pt(1, 2).Less(geom.Pt(2, 2)))
	assert.False(t, geom.Pt(2, 2).Less(geom.Pt(2, 2)))
}

func TestSurrounding_Order(t *testing.T) {
	want := []geom.Point{
		{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1},
	}
	assert.Equal(t, want, geom.Surrounding[:])

	seen := map[geom.Point]bool{}
	for _, d := range geom.Surrounding {
		assert.False(t, d.IsZero())
		assert.False(t, seen[d], "duplicate offset %v", d)
		seen[d] = true
	}
}

func TestBoundingBox(t *testing.T) {
	b := geom.BoxOf(geom.Pt(2, 3), geom.Pt(0, 5), geom.Pt(4, 4))
	assert.Equal(t, geom.Pt(0, 3), b.Min)
	assert.Equal(t, geom.Pt(4, 5), b.Max)
	assert.Equal(t, 5, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.True(t, b.Contains(geom.Pt(4, 5)))
	assert.False(t, b.Contains(geom.Pt(5, 5)))

	in := b.Inset(1)
	assert.Equal(t, geom.Pt(1, 4), in.Min)
	assert.Equal(t, geom.Pt(3, 4), in.Max)
	assert.False(t, in.Empty())
	assert.True(t, b.Inset(2).Empty())

	assert.Equal(t, geom.BoundingBox{}, geom.BoxOf())
	single := geom.BoxOf(geom.Pt(7, 7))
	assert.Equal(t, 1, single.Width())
	assert.Equal(t, 1, single.Height())
}
