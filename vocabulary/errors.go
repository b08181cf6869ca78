package vocabulary

import "errors"

var (
	// ErrManifest indicates an unreadable or invalid symbols manifest.
	ErrManifest = errors.New("vocabulary: invalid manifest")
	// ErrUnknownSymbol indicates a reference to a symbol that is not loaded.
	ErrUnknownSymbol = errors.New("vocabulary: unknown symbol")
	// ErrNoFrame indicates a framed symbol whose picture shows no frame.
	ErrNoFrame = errors.New("vocabulary: no frame found")
)
