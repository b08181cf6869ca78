package picture_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

var legend = picture.Legend{
	'F': palette.Pink,
	'r': palette.Red,
	'g': palette.Green,
	'b': palette.Blue,
}

// TestConstructors_Errors verifies that malformed inputs are rejected.
func TestConstructors_Errors(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
		err  error
	}{
		{"NewZeroWidth", func() error { _, err := picture.New(0, 3); return err }, picture.ErrEmptyPicture},
		{"NewNegative", func() error { _, err := picture.New(2, -1); return err }, picture.ErrEmptyPicture},
		{"FromPixelsSize", func() error { _, err := picture.FromPixels(2, 2, make([]palette.Color, 3)); return err }, picture.ErrBufferSize},
		{"From2DEmpty", func() error { _, err := picture.From2D(nil); return err }, picture.ErrEmptyPicture},
		{"From2DJagged", func() error {
			_, err := picture.From2D([][]palette.Color{{palette.Red}, {}})
			return err
		}, picture.ErrNonRectangular},
		{"TextJagged", func() error { _, err := picture.FromText(legend, "FF", "F"); return err }, picture.ErrNonRectangular},
		{"TextUnknown", func() error { _, err := picture.FromText(legend, "Fz"); return err }, picture.ErrUnknownSymbol},
		{"TextEmpty", func() error { _, err := picture.FromText(legend); return err }, picture.ErrEmptyPicture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			if !errors.Is(err, tc.err) {
				t.Errorf("error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestIndexCoordinate_RoundTrip(t *testing.T) {
	pic, err := picture.New(5, 3)
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		p := pic.Coordinate(i)
		assert.True(t, pic.InBounds(p))
		assert.Equal(t, i, pic.Index(p))
	}
	assert.Equal(t, geom.Pt(1, 2), pic.Coordinate(11))
	assert.False(t, pic.InBounds(geom.Pt(5, 0)))
	assert.False(t, pic.InBounds(geom.Pt(0, -1)))
}

func TestAtSetBlank(t *testing.T) {
	pic := picture.MustText(legend, "F.", ".r")
	assert.Equal(t, palette.Pink, pic.At(geom.Pt(0, 0)))
	assert.Equal(t, palette.White, pic.At(geom.Pt(9, 9)), "out of bounds reads blank")
	assert.True(t, pic.IsBlank(geom.Pt(1, 0)))

	pic.Set(geom.Pt(1, 0), palette.Green)
	assert.Equal(t, palette.Green, pic.At(geom.Pt(1, 0)))
	pic.Set(geom.Pt(-1, 0), palette.Green) // ignored

	pic.Blank(geom.Pt(0, 0))
	assert.True(t, pic.IsBlank(geom.Pt(0, 0)))
}

func TestClone_Independent(t *testing.T) {
	pic := picture.MustText(legend, "Fr")
	cp := pic.Clone()
	cp.Blank(geom.Pt(0, 0))
	assert.Equal(t, palette.Pink, pic.At(geom.Pt(0, 0)))
}

// TestSub extracts the inner 2×2 of a 4×3 picture:
//
//	F r g b
//	r [g b] F
//	g [b F] r
func TestSub(t *testing.T) {
	pic := picture.MustText(legend,
		"Frgb",
		"rgbF",
		"gbFr",
	)
	sub, err := pic.Sub(geom.BoundingBox{Min: geom.Pt(1, 1), Max: geom.Pt(2, 2)})
	require.NoError(t, err)
	want := picture.MustText(legend, "gb", "bF")
	assert.Equal(t, want, sub)

	_, err = pic.Sub(geom.BoundingBox{Min: geom.Pt(1, 1), Max: geom.Pt(4, 2)})
	assert.ErrorIs(t, err, picture.ErrOutOfBounds)
	_, err = pic.Sub(geom.BoundingBox{Min: geom.Pt(2, 2), Max: geom.Pt(1, 1)})
	assert.ErrorIs(t, err, picture.ErrOutOfBounds)
}

// TestRotate checks one quarter turn and that four turns are the identity.
//
//	F r g        g .
//	b . .   →    r .
//	             F b
func TestRotate(t *testing.T) {
	pic := picture.MustText(legend,
		"Frg",
		"b..",
	)
	rot := pic.Rotate()
	assert.Equal(t, 2, rot.Width)
	assert.Equal(t, 3, rot.Height)
	want := picture.MustText(legend,
		"g.",
		"r.",
		"Fb",
	)
	assert.Equal(t, want, rot)
	assert.Equal(t, pic, pic.RotateN(4))
	assert.Equal(t, rot, pic.RotateN(-3))
}

func TestTopLeft(t *testing.T) {
	pic := picture.MustText(legend,
		"...",
		"..r",
		"F..",
	)
	p, ok := pic.TopLeft(func(c palette.Color) bool { return !c.IsBlank() })
	require.True(t, ok)
	assert.Equal(t, geom.Pt(2, 1), p)

	_, ok = pic.TopLeft(func(c palette.Color) bool { return c == palette.Yellow })
	assert.False(t, ok)
}

func TestCodec_PNGRoundTrip(t *testing.T) {
	pic := picture.MustText(legend,
		"Frg",
		"b.F",
	)
	var buf bytes.Buffer
	require.NoError(t, picture.Encode(&buf, pic))
	back, err := picture.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, pic, back)

	path := filepath.Join(t.TempDir(), "p.png")
	require.NoError(t, picture.Save(path, pic))
	opened, err := picture.Open(path)
	require.NoError(t, err)
	assert.Equal(t, pic, opened)

	_, err = picture.Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	_, err = picture.Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

// TestFromImage_Normalises feeds a paletted, offset image with transparency.
func TestFromImage_Normalises(t *testing.T) {
	pal := color.Palette{color.Transparent, color.RGBA{R: 255, A: 255}}
	img := image.NewPaletted(image.Rect(10, 10, 12, 11), pal)
	img.SetColorIndex(10, 10, 1)
	img.SetColorIndex(11, 10, 0)

	pic, err := picture.FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 2, pic.Width)
	assert.Equal(t, 1, pic.Height)
	assert.Equal(t, palette.Red, pic.At(geom.Pt(0, 0)))
	assert.Equal(t, palette.White, pic.At(geom.Pt(1, 0)))

	_, err = picture.FromImage(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, picture.ErrEmptyPicture)
}

func TestString(t *testing.T) {
	pic := picture.MustText(legend, "F.", ".r")
	assert.Equal(t, "#.\n.#\n", pic.String())
}
