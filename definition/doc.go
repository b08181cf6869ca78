// Package definition turns reference drawings into symbol definitions and
// recognises glyphs of live pictures against a registry of them.
//
// What:
//
//   - Create cleans a reference drawing (corner-marker detection, blanking of
//     irrelevant pixels) and builds one fsm.Machine per 90° rotation.
//   - Registry keeps definitions in registration order. Identify tries every
//     definition, and within it every orientation 0°, 90°, 180°, 270°; the
//     first successful match decides.
//   - IsolateInnards extracts the contents of a recognised picture frame, the
//     way user-defined symbols are declared.
//
// Corner markers:
//
//	F . . . F     When the four corner pixels share one non-blank colour,
//	. . F . .     that colour is the function colour of the drawing and the
//	. F F F .     corners are blanked. Otherwise the default function colour
//	. . F . .     (palette.Blue unless WithDefaultFunction) applies.
//	F . . . F
//
// Concurrency:
//
//	A Registry may be shared by goroutines: Register takes a write lock,
//	Identify a read lock, and every match works on its own picture copy.
//
// Errors:
//
//   - ErrEmptyPicture: the reference drawing has no relevant pixel left.
//   - ErrNotFrame: IsolateInnards on something that is not a picture frame.
package definition
