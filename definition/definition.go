package definition

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/glyphfsm/fsm"
	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// Orientations is the number of rotations a definition is built in.
const Orientations = 4

// Definition is a symbol in all four orientations. Machines[k] matches the
// reference drawing turned k times by picture.Rotate.
type Definition struct {
	ID       Identifier
	Machines [Orientations]*fsm.Machine
	Ledger   palette.Ledger
}

// Create builds the definition of the reference drawing pic with the given
// registered input and output colours. pic is not modified.
//
// Steps:
//  1. Copy pic. If its four corner pixels share one non-blank colour, that
//     colour is the function colour and the corners are blanked; otherwise
//     the default function colour applies.
//  2. Blank every pixel the resulting ledger does not classify.
//  3. For each of the four rotations build a machine seeded at the
//     topmost-then-leftmost relevant pixel, rotating the copy in between.
//
// Returns ErrEmptyPicture if pic is nil, empty, or has no relevant pixel
// after cleaning.
// Complexity: O(W×H + 4·Build).
func Create(pic *picture.Picture, inputs, outputs []palette.Color, opts ...Option) (*Definition, error) {
	cfg := newConfig(opts...)
	if pic == nil || pic.Width <= 0 || pic.Height <= 0 {
		return nil, fmt.Errorf("definition: Create: %w", ErrEmptyPicture)
	}

	// 1) Corner markers
	work := pic.Clone()
	fn, marked := cornerColour(work)
	if marked {
		for _, p := range corners(work) {
			work.Blank(p)
		}
	} else {
		fn = cfg.defaultFunction
	}
	ledger := palette.NewLedger(fn, inputs, outputs)

	// 2) Drop what the ledger does not care about
	for i, c := range work.Pixels {
		if !ledger.Relevant(c) {
			work.Pixels[i] = palette.White
		}
	}

	// 3) One machine per rotation
	def := &Definition{ID: cfg.id, Ledger: ledger}
	for k := 0; k < Orientations; k++ {
		seed, ok := work.TopLeft(ledger.Relevant)
		if !ok {
			return nil, fmt.Errorf("definition: Create %v: %w", cfg.id, ErrEmptyPicture)
		}
		m, err := fsm.Build(work, ledger, seed)
		if err != nil {
			return nil, fmt.Errorf("definition: Create %v orientation %d: %w", cfg.id, k, err)
		}
		def.Machines[k] = m
		work = work.Rotate()
	}

	cfg.logger.Debug("definition created",
		slog.String("id", cfg.id.String()),
		slog.String("function", fn.Hex()),
		slog.Bool("corner_marked", marked),
		slog.Int("states", def.Machines[0].Len()),
	)

	return def, nil
}

// corners lists top-left, top-right, bottom-left and bottom-right.
func corners(pic *picture.Picture) [4]geom.Point {
	w, h := pic.Width-1, pic.Height-1
	return [4]geom.Point{geom.Pt(0, 0), geom.Pt(w, 0), geom.Pt(0, h), geom.Pt(w, h)}
}

// cornerColour returns the colour shared by all four corners, if any and
// not blank.
func cornerColour(pic *picture.Picture) (palette.Color, bool) {
	cs := corners(pic)
	c := pic.At(cs[0])
	if c.IsBlank() {
		return c, false
	}
	for _, p := range cs[1:] {
		if pic.At(p) != c {
			return c, false
		}
	}
	return c, true
}
