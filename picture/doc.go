// Package picture provides the row-major RGB pixel grid every other glyphfsm
// package works on, plus conversion from and to the standard image types.
//
// What:
//
//   - Picture wraps Width, Height and a row-major []palette.Color buffer
//     (len == Width*Height, Index = y*Width + x).
//   - Index/Coordinate convert between positions and buffer offsets.
//   - Sub extracts an inclusive rectangular region; Rotate turns the grid by
//     90° (the pixel at (x,y) moves to (y, Width-1-x)).
//   - Consumption is logical: Blank paints a position white, which removes it
//     from any further matching.
//   - Open/Decode/FromImage normalise PNG, JPEG, GIF, BMP, TIFF and WebP input;
//     Encode writes PNG.
//   - FromText builds small pictures from ASCII art, for fixtures and examples.
//
// Complexity:
//
//   - Index, Coordinate, At, Set: O(1).
//   - Clone, Rotate, FromImage: O(W×H) time and memory.
//   - Sub: O(w×h) for the extracted region.
//
// Errors:
//
//   - ErrEmptyPicture: width or height is not positive.
//   - ErrBufferSize: pixel buffer length differs from Width×Height.
//   - ErrNonRectangular: ASCII or 2D input rows differ in length.
//   - ErrOutOfBounds: a requested region leaves the picture.
//   - ErrUnknownSymbol: an ASCII fixture uses a rune missing from its legend.
package picture
