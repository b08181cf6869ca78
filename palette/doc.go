// Package palette classifies RGB colours into the semantic roles a glyph
// drawing is made of.
//
// What:
//
//   - Color is an exact 8-bit RGB triple; equality is channel-exact.
//   - Role is a closed tagged value: Input(color), Output(color), Function,
//     Loop(id) or None (unclassified).
//   - Ledger holds the registered input and output colours plus the single
//     function-marker colour and classifies any colour with a fixed, total
//     precedence:
//
//     registered input → registered output → function marker → loop form → none
//
//     A colour matching an earlier rule never falls through to a later one.
//
// Loop markers:
//
//	Any colour of the form (N,0,0) that is not registered earlier is a loop
//	marker with id N: a straight run of such pixels encodes the integer literal
//	"run length" inside a glyph. Black (0,0,0) is therefore Loop(0).
//
// Errors:
//
//   - ErrBadHex: a colour string is not "#rrggbb" / "#rgb".
package palette
