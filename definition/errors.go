package definition

import "errors"

var (
	// ErrEmptyPicture indicates a reference drawing with nothing to build from.
	ErrEmptyPicture = errors.New("definition: no relevant pixel in reference picture")
	// ErrNotFrame indicates an identified glyph without usable innards.
	ErrNotFrame = errors.New("definition: glyph is not a picture frame")
	// ErrUnknownIdentifier indicates an identifier name that cannot be parsed.
	ErrUnknownIdentifier = errors.New("definition: unknown identifier")
)
