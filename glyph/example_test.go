package glyph_test

import (
	"fmt"

	"github.com/katalvlaran/glyphfsm/glyph"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// ExampleGather shows two function-marker glyphs separated by a blank
// column, and a pixel of an unregistered colour that is ignored.
//
//	F F . F
//	. F . F
//	x . . .
func ExampleGather() {
	pic := picture.MustText(picture.Legend{
		'F': palette.Pink,
		'x': palette.RGB(1, 2, 3),
	},
		"FF.F",
		".F.F",
		"x...",
	)
	ledger := palette.NewLedger(palette.Pink, nil, nil)

	for i, g := range glyph.Gather(pic, ledger) {
		fmt.Printf("glyph %d: %d pixels, box %v, seed %v\n", i, g.Len(), g.Bounds, g.TopLeft())
	}

	// Output:
	// glyph 0: 3 pixels, box [(0,0)-(1,1)], seed (0,0)
	// glyph 1: 2 pixels, box [(3,0)-(3,1)], seed (3,0)
}
