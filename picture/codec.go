package picture

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/katalvlaran/glyphfsm/palette"
)

// Open decodes the image file at path.
func Open(path string) (*Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("picture: open %s: %w", path, err)
	}
	defer f.Close()

	pic, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("picture: %s: %w", path, err)
	}
	return pic, nil
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (*Picture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("picture: decode: %w", err)
	}
	return FromImage(img)
}

// FromImage converts img to a Picture. The image is first normalised to
// non-premultiplied RGBA; alpha is dropped and fully transparent pixels
// become blank.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Picture, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyPicture
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	pic := &Picture{Width: b.Dx(), Height: b.Dy(), Pixels: make([]palette.Color, 0, b.Dx()*b.Dy())}
	for y := 0; y < pic.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+pic.Width*4]
		for x := 0; x < pic.Width; x++ {
			px := row[x*4 : x*4+4]
			if px[3] == 0 {
				pic.Pixels = append(pic.Pixels, palette.White)
				continue
			}
			pic.Pixels = append(pic.Pixels, palette.Color{R: px[0], G: px[1], B: px[2]})
		}
	}
	return pic, nil
}

// Image returns the picture as an opaque *image.NRGBA.
func (pic *Picture) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pic.Width, pic.Height))
	for i, c := range pic.Pixels {
		o := i * 4
		img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = c.R, c.G, c.B, 0xff
	}
	return img
}

// Encode writes pic to w as PNG.
func Encode(w io.Writer, pic *Picture) error {
	if err := png.Encode(w, pic.Image()); err != nil {
		return fmt.Errorf("picture: encode: %w", err)
	}
	return nil
}

// Save writes pic as a PNG file at path.
func Save(path string, pic *Picture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("picture: create %s: %w", path, err)
	}
	if err := Encode(f, pic); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
