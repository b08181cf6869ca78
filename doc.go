// Package glyphfsm recognises hand-drawn symbols in pixel-art program
// pictures by compiling each reference drawing into a small state machine
// and running it over the program.
//
// What is in the box?
//
//	• Pixel grids: decode PNG/GIF/BMP/TIFF/WebP, rotate, cut, compare
//	• Colour roles: function marker, input and output slots, loop markers
//	• Glyphs: 8-connected same-colour components with bounding boxes
//	• Machines: build from a drawing, match against a picture, loop capture
//	• Definitions: corner-marked references in all four orientations
//	• Vocabularies: YAML manifests, framed symbols, cached picture loading
//	• Annotation: outline and label what was recognised
//
// Packages, bottom-up:
//
//	geom/       points, 8-neighbourhood, inclusive bounding boxes
//	palette/    colours, roles and the ledger that classifies them
//	picture/    the pixel grid, image codecs and ASCII fixtures
//	glyph/      connected-component gathering
//	fsm/        machine construction and matching
//	definition/ reference symbols, registry and identification
//	vocabulary/ symbol directories and manifests
//	render/     annotated PNG output
//	cmd/glyphscan the command-line scanner
//
// Quick start:
//
//	loader, _ := vocabulary.New("symbols")
//	vocab, _ := loader.LoadDir()
//	pic, _ := picture.Open("program.png")
//	found, unknown := vocab.Registry.IdentifyAll(pic, vocab.Ledger())
//
// Every package keeps its inputs untouched and is safe for concurrent
// readers once built.
package glyphfsm
