// Package geom provides the integer 2D vocabulary shared by every glyphfsm
// package: points (used both as positions and as relative offsets),
// inclusive axis-aligned bounding boxes, and the fixed 8-neighbour order.
//
// What:
//
//   - Point is an immutable (X, Y) value with Add/Sub for offset arithmetic.
//   - BoundingBox is an inclusive [Min, Max] rectangle grown point by point.
//   - Surrounding is the canonical neighbour order used by glyph gathering
//     and FSM construction: right, up, left, down, down-right, up-right,
//     up-left, down-left.
//
// Why:
//
//   - Glyph extraction and FSM construction must walk neighbours in the same
//     deterministic order, otherwise machines built from the same picture
//     would differ between runs.
//
// Complexity:
//
//   - All operations are O(1).
package geom
