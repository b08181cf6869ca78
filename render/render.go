// Package render draws recognition results back onto the program picture:
// one outline per identified glyph and a text label naming it.
//
// The picture is first enlarged by an integer scale with nearest-neighbour
// sampling, so single pixels stay crisp and labels have room. Labels use the
// embedded Go Regular face.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/glyphfsm/definition"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// ErrNilPicture indicates Annotate was called without a picture.
var ErrNilPicture = errors.New("render: nil picture")

// Option customizes Annotate. Constructors panic on meaningless input.
type Option func(*config)

// Defaults: scale 1, 10pt labels, red outlines.
type config struct {
	scale    int
	fontSize float64
	box      palette.Color
}

func newConfig(opts ...Option) config {
	c := config{scale: 1, fontSize: 10, box: palette.Red}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithScale enlarges every picture pixel to n×n output pixels. Panics if n < 1.
func WithScale(n int) Option {
	if n < 1 {
		panic("render: WithScale(n < 1)")
	}
	return func(c *config) {
		c.scale = n
	}
}

// WithFontSize sets the label size in points. Panics if pt <= 0.
func WithFontSize(pt float64) Option {
	if pt <= 0 {
		panic("render: WithFontSize(pt <= 0)")
	}
	return func(c *config) {
		c.fontSize = pt
	}
}

// WithBoxColor sets the outline and label background colour. Label text is
// white on dark colours and black otherwise.
func WithBoxColor(col palette.Color) Option {
	return func(c *config) {
		c.box = col
	}
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Annotate writes pic as PNG to w with every glyph of found outlined and
// labelled. pic is not modified.
//
// Steps:
//  1. Enlarge pic by the configured scale.
//  2. Outline each glyph's bounds one output pixel outside the glyph.
//  3. Label it above the outline, or below when there is no room above.
func Annotate(pic *picture.Picture, found []definition.Identified, w io.Writer, opts ...Option) error {
	if pic == nil {
		return ErrNilPicture
	}
	cfg := newConfig(opts...)

	fnt, err := goRegular()
	if err != nil {
		return fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    cfg.fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("render: font face: %w", err)
	}
	defer face.Close()

	// 1) Enlarge
	src := pic.Image()
	dst := image.NewRGBA(image.Rect(0, 0, pic.Width*cfg.scale, pic.Height*cfg.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	box := image.NewUniform(cfg.box.RGBA())
	ink := image.NewUniform(palette.Black.RGBA())
	if cfg.box.IsDark() {
		ink = image.NewUniform(palette.White.RGBA())
	}

	for i := range found {
		b := found[i].Glyph.Bounds
		r := image.Rect(
			b.Min.X*cfg.scale-1, b.Min.Y*cfg.scale-1,
			(b.Max.X+1)*cfg.scale+1, (b.Max.Y+1)*cfg.scale+1,
		)

		// 2) Outline
		strokeRect(dst, r, box)

		// 3) Label
		text := label(&found[i])
		m := face.Metrics()
		tw := font.MeasureString(face, text).Ceil()
		th := (m.Ascent + m.Descent).Ceil()
		lr := image.Rect(r.Min.X, r.Min.Y-th, r.Min.X+tw+2, r.Min.Y)
		if lr.Min.Y < 0 {
			lr = image.Rect(r.Min.X, r.Max.Y, r.Min.X+tw+2, r.Max.Y+th)
		}
		draw.Draw(dst, lr, box, image.Point{}, draw.Src)
		d := &font.Drawer{
			Dst:  dst,
			Src:  ink,
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.I(lr.Min.X + 1), Y: fixed.I(lr.Min.Y) + m.Ascent},
		}
		d.DrawString(text)
	}

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	return nil
}

func label(id *definition.Identified) string {
	if id.Orientation == 0 {
		return id.ID.String()
	}
	return fmt.Sprintf("%v r%d", id.ID, id.Orientation)
}

// strokeRect draws the one pixel wide border of r.
func strokeRect(dst draw.Image, r image.Rectangle, src image.Image) {
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, edge, src, image.Point{}, draw.Src)
	}
}
