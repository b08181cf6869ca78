package definition

import (
	"fmt"

	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/picture"
)

// IsolateInnards returns the inside of a recognised picture frame: the
// bounding box of the frame glyph shrunk by one pixel on every side. The
// region is blanked in pic so later scans do not see it twice.
//
// Returns ErrNotFrame if id is not a Pic or its frame has no inside.
// Complexity: O(inner area).
func IsolateInnards(id *Identified, pic *picture.Picture) (*picture.Picture, error) {
	if id == nil || id.ID != Pic {
		return nil, fmt.Errorf("definition: IsolateInnards: %w", ErrNotFrame)
	}
	inner := id.Glyph.Bounds.Inset(1)
	if inner.Empty() {
		return nil, fmt.Errorf("definition: IsolateInnards %v: %w", id.Glyph.Bounds, ErrNotFrame)
	}
	sub, err := pic.Sub(inner)
	if err != nil {
		return nil, fmt.Errorf("definition: IsolateInnards: %w", err)
	}
	for y := inner.Min.Y; y <= inner.Max.Y; y++ {
		for x := inner.Min.X; x <= inner.Max.X; x++ {
			pic.Blank(geom.Pt(x, y))
		}
	}
	return sub, nil
}
