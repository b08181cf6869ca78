// Package fsm builds two-dimensional finite-state machines from reference
// glyph drawings and runs them, with ordered backtracking, against live
// pictures.
//
// What:
//
//   - Machine is an ordered slice of States; state 0 is the entry point and a
//     state without edges accepts. Edge order is the search priority.
//   - Transition is a closed tagged value with five variants:
//     MoveTo(base, offset), MoveAndConsume(base, offset, role), Free,
//     BeginCapture(role, id) and EndCapture. Positions are always relative to
//     the position a base state was last entered at.
//   - Build walks a reference drawing depth-first, emitting states instead of
//     pixels and splicing sub-branches with index renumbering.
//   - Match / DoMachine consume pixels of a working copy of the picture,
//     undoing every consumption of a failed branch, and collect evidence into
//     a Result.
//
// Loop markers:
//
//	A straight run of N pixels coloured (k,0,0) is built into a four-state
//	capture scaffold:
//
//	  s0 ──BeginCapture(role,k)──▶ s1
//	  s1 ──MoveAndConsume(s1,dir,loop k)──▶ s2 | ──Free──▶ s2
//	  s2 ──Free──▶ s1 | ──EndCapture──▶ s3
//	  s3   continuation
//
//	so a run of any length is consumed greedily and reported as Capture{k, N}.
//
// Termination:
//
//	Every MoveAndConsume blanks a pixel, so consuming paths are finite. A Free
//	edge is refused when the previous step was a Free into the current state,
//	which breaks the scaffold's s1⇄s2 epsilon loop. EpsilonCycles reports any
//	non-consuming cycle the guard would not break.
//
// Complexity:
//
//   - Build: O(P) states for P relevant pixels, O(P·depth) renumbering work.
//   - Match: worst case exponential in branching × picture size (exhaustive
//     ordered search without memoisation); O(states + depth) extra memory.
//
// Errors:
//
//   - ErrNoMatch: no path from state 0 reached an accepting state.
//   - ErrNoSeed: the seed position is out of bounds, blank or irrelevant.
//   - ErrBadMachine: a machine is empty or references missing states.
package fsm
