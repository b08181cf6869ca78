package picture

import "errors"

var (
	// ErrEmptyPicture indicates a picture with no rows or no columns.
	ErrEmptyPicture = errors.New("picture: width and height must be positive")
	// ErrBufferSize indicates a pixel buffer whose length is not Width*Height.
	ErrBufferSize = errors.New("picture: pixel buffer length does not match dimensions")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("picture: all rows must have the same length")
	// ErrOutOfBounds indicates a region that does not fit inside the picture.
	ErrOutOfBounds = errors.New("picture: region out of bounds")
	// ErrUnknownSymbol indicates an ASCII fixture rune with no legend entry.
	ErrUnknownSymbol = errors.New("picture: rune not in legend")
)
