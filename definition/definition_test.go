package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphfsm/definition"
	"github.com/katalvlaran/glyphfsm/fsm"
	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

var (
	in     = palette.RGB(0, 148, 255)
	legend = picture.Legend{
		'F': palette.Pink,
		'Y': palette.Yellow,
		'B': palette.Blue,
		'i': in,
		'x': palette.RGB(1, 2, 3),
		'c': palette.RGB(0, 200, 200),
		'5': palette.RGB(5, 0, 0),
	}
	pink = palette.NewLedger(palette.Pink, nil, nil)
)

// gamma is an asymmetric reference symbol with an input pixel in its elbow
// and corner markers well clear of the drawing.
//
//	F . . . . . F
//	. . . . . . .
//	. . F F F . .
//	. . F i . . .
//	. . F . . . .
//	. . . . . . .
//	F . . . . . F
func gamma() *picture.Picture {
	return picture.MustText(legend,
		"F.....F",
		".......",
		"..FFF..",
		"..Fi...",
		"..F....",
		".......",
		"F.....F",
	)
}

func TestCreate_CornerMarkers(t *testing.T) {
	ref := gamma()
	before := ref.Clone()

	def, err := definition.Create(ref, []palette.Color{in}, nil, definition.WithIdentifier(definition.Add))
	require.NoError(t, err)
	assert.Equal(t, before, ref, "reference is not modified")
	assert.Equal(t, definition.Add, def.ID)
	assert.Equal(t, palette.Pink, def.Ledger.Function)
	assert.Equal(t, []palette.Color{in}, def.Ledger.Inputs)

	for k, m := range def.Machines {
		require.NotNil(t, m, "orientation %d", k)
		assert.NoError(t, m.Validate())
		assert.Equal(t, palette.Function(), m.Seed, "orientation %d seeds on the drawing, not a corner", k)
	}
}

// TestCreate_DefaultFunction: corners disagree, so the drawing must use the
// default function colour; pink pixels are then irrelevant.
func TestCreate_DefaultFunction(t *testing.T) {
	blue := picture.MustText(legend,
		"F.....",
		"..BB..",
		"..B...",
	)
	def, err := definition.Create(blue, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, palette.Blue, def.Ledger.Function)
	assert.Equal(t, definition.Custom(0), def.ID)

	pinkOnly := picture.MustText(legend, "F.....", "..FF..")
	_, err = definition.Create(pinkOnly, nil, nil)
	assert.ErrorIs(t, err, definition.ErrEmptyPicture)

	def, err = definition.Create(pinkOnly, nil, nil, definition.WithDefaultFunction(palette.Pink))
	require.NoError(t, err)
	assert.Equal(t, palette.Pink, def.Ledger.Function)
}

func TestCreate_Errors(t *testing.T) {
	_, err := definition.Create(nil, nil, nil)
	assert.ErrorIs(t, err, definition.ErrEmptyPicture)

	_, err = definition.Create(&picture.Picture{}, nil, nil)
	assert.ErrorIs(t, err, definition.ErrEmptyPicture)

	// Only the corner markers: nothing left once they are blanked.
	_, err = definition.Create(picture.MustText(legend, "F.F", "...", "F.F"), nil, nil)
	assert.ErrorIs(t, err, definition.ErrEmptyPicture)

	assert.Panics(t, func() { definition.WithLogger(nil) })
	assert.Panics(t, func() { definition.WithDefaultFunction(palette.White) })
}

// TestCreate_Orientations: machine k is the machine of the reference turned
// k times, so each one matches its own rotation of the drawing.
func TestCreate_Orientations(t *testing.T) {
	ref := gamma()
	def, err := definition.Create(ref, []palette.Color{in}, nil)
	require.NoError(t, err)

	for k := 0; k < definition.Orientations; k++ {
		live := ref.RotateN(k)
		for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(6, 0), geom.Pt(0, 6), geom.Pt(6, 6)} {
			live.Blank(p)
		}
		seed, ok := live.TopLeft(func(c palette.Color) bool { return c == palette.Pink })
		require.True(t, ok)

		res, err := def.Machines[k].Match(live, seed)
		require.NoError(t, err, "orientation %d", k)
		assert.Len(t, res.Func, 5)
		assert.Len(t, res.Inputs, 1)
	}
}

func TestCreate_LoopRun(t *testing.T) {
	ref := picture.MustText(legend,
		"F.......F",
		".........",
		"..F555F..",
		".........",
		"F.......F",
	)
	def, err := definition.Create(ref, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, def.Machines[0].UnguardedCycles())

	res, err := def.Machines[0].Match(picture.MustText(legend, "F555555F"), geom.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []fsm.Capture{{ID: 5, Count: 6}}, res.Captures)
}
