package fsm

import (
	"fmt"
	"sort"
	"strings"
)

// Visitation colours of the cycle search.
const (
	white = iota // unvisited
	gray         // on the current path
	black        // fully explored
)

// EpsilonCycle is a closed cycle of non-consuming transitions.
//
// States is closed: [s0, s1, ..., s0], rotated so that the smallest index
// comes first. Ops[i] labels the edge States[i] → States[i+1].
// Guarded reports whether the cycle holds two cyclically consecutive Free
// edges, which the matcher's epsilon guard refuses to take back to back.
type EpsilonCycle struct {
	States  []int
	Ops     []Op
	Guarded bool
}

// EpsilonCycles enumerates the cycles of m that consume no pixel, using a
// three-colour depth-first search over MoveTo, Free and capture edges and
// back-edge detection. An unguarded cycle can make the matcher run forever;
// machines from Build only carry the guarded scaffold loop.
//
// The result is deduplicated and sorted by state sequence.
// Complexity: O(V + E + C·L) for C cycles of average length L.
func (m *Machine) EpsilonCycles() []EpsilonCycle {
	if m == nil {
		return nil
	}

	// 1) Visitation state, path stacks and dedup set
	state := make([]int, len(m.States))
	path := make([]int, 0, len(m.States))
	ops := make([]Op, 0, len(m.States))
	seen := make(map[string]struct{})
	var cycles []EpsilonCycle

	// 2) Launch from every unvisited state
	for v := range m.States {
		if state[v] == white {
			m.visit(v, state, &path, &ops, seen, &cycles)
		}
	}

	// 3) Deterministic order
	sort.Slice(cycles, func(i, j int) bool {
		return signature(cycles[i].States) < signature(cycles[j].States)
	})

	return cycles
}

// UnguardedCycles returns the epsilon cycles the matcher's guard does not break.
func (m *Machine) UnguardedCycles() []EpsilonCycle {
	var out []EpsilonCycle
	for _, c := range m.EpsilonCycles() {
		if !c.Guarded {
			out = append(out, c)
		}
	}
	return out
}

func (m *Machine) visit(
	v int,
	state []int,
	path *[]int,
	ops *[]Op,
	seen map[string]struct{},
	cycles *[]EpsilonCycle,
) {
	// 1) Gray and on the path
	state[v] = gray
	*path = append(*path, v)

	// 2) Non-consuming edges only
	for _, e := range m.States[v].Edges {
		if e.T.Op.consumes() || e.To < 0 || e.To >= len(m.States) {
			continue
		}
		switch state[e.To] {
		case white:
			*ops = append(*ops, e.T.Op)
			m.visit(e.To, state, path, ops, seen, cycles)
			*ops = (*ops)[:len(*ops)-1]
		case gray:
			// Back edge: path[idx:] + e.To closes a cycle.
			idx := indexOf(*path, e.To)
			segOps := append(append([]Op(nil), (*ops)[idx:]...), e.T.Op)
			recordCycle(append([]int(nil), (*path)[idx:]...), segOps, seen, cycles)
		}
	}

	// 3) Backtrack
	*path = (*path)[:len(*path)-1]
	state[v] = black
}

// recordCycle rotates an open cycle so its smallest state comes first,
// closes it, and appends it unless an identical one is already recorded.
func recordCycle(states []int, ops []Op, seen map[string]struct{}, cycles *[]EpsilonCycle) {
	// 1) Minimal rotation
	k := 0
	for i, s := range states {
		if s < states[k] {
			k = i
		}
	}
	rs := append(append([]int(nil), states[k:]...), states[:k]...)
	ro := append(append([]Op(nil), ops[k:]...), ops[:k]...)
	rs = append(rs, rs[0])

	// 2) Dedup
	sig := signature(rs)
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}

	*cycles = append(*cycles, EpsilonCycle{States: rs, Ops: ro, Guarded: guarded(ro)})
}

// guarded reports whether two cyclically consecutive ops are both OpFree.
func guarded(ops []Op) bool {
	for i, op := range ops {
		if op == OpFree && ops[(i+1)%len(ops)] == OpFree {
			return true
		}
	}
	return false
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func signature(states []int) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, ",")
}
