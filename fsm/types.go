package fsm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
)

// Op tags the variant held by a Transition.
type Op uint8

const (
	// OpMoveTo moves the head to pos[Base]+Offset without consuming.
	OpMoveTo Op = iota
	// OpMoveAndConsume moves like OpMoveTo, then consumes the pixel there,
	// which must be unconsumed and fit Role.
	OpMoveAndConsume
	// OpFree changes state without moving or consuming (epsilon).
	OpFree
	// OpBeginCapture opens a run-length capture group tagged Role and ID.
	OpBeginCapture
	// OpEndCapture closes the open capture group.
	OpEndCapture
)

func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "moveTo"
	case OpMoveAndConsume:
		return "consume"
	case OpFree:
		return "free"
	case OpBeginCapture:
		return "begin"
	case OpEndCapture:
		return "end"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// consumes reports whether op blanks a pixel.
func (op Op) consumes() bool { return op == OpMoveAndConsume }

// positional reports whether op carries a Base state index.
func (op Op) positional() bool { return op == OpMoveTo || op == OpMoveAndConsume }

// Transition is one edge label. Only the fields relevant to Op are set.
type Transition struct {
	Op     Op
	Base   int          // MoveTo, MoveAndConsume
	Offset geom.Point   // MoveTo, MoveAndConsume
	Role   palette.Role // MoveAndConsume (expected), BeginCapture (tag)
	ID     uint8        // BeginCapture
}

// MoveTo returns a non-consuming move to pos[base]+offset.
func MoveTo(base int, offset geom.Point) Transition {
	return Transition{Op: OpMoveTo, Base: base, Offset: offset}
}

// MoveAndConsume returns a move to pos[base]+offset that consumes a pixel
// of the expected role.
func MoveAndConsume(base int, offset geom.Point, role palette.Role) Transition {
	return Transition{Op: OpMoveAndConsume, Base: base, Offset: offset, Role: role}
}

// Free returns an epsilon transition.
func Free() Transition { return Transition{Op: OpFree} }

// BeginCapture opens capture group id, tagged with the role preceding it.
func BeginCapture(role palette.Role, id uint8) Transition {
	return Transition{Op: OpBeginCapture, Role: role, ID: id}
}

// EndCapture closes the open capture group.
func EndCapture() Transition { return Transition{Op: OpEndCapture} }

func (t Transition) String() string {
	switch t.Op {
	case OpMoveTo:
		return fmt.Sprintf("moveTo(s%d%+d%+d)", t.Base, t.Offset.X, t.Offset.Y)
	case OpMoveAndConsume:
		return fmt.Sprintf("consume(s%d%+d%+d, %s)", t.Base, t.Offset.X, t.Offset.Y, t.Role)
	case OpBeginCapture:
		return fmt.Sprintf("begin(%s, %d)", t.Role, t.ID)
	default:
		return t.Op.String()
	}
}

// Edge pairs a target state index with the transition leading to it.
type Edge struct {
	To int
	T  Transition
}

// State owns an ordered list of outgoing edges. No edges means accepting.
type State struct {
	Edges []Edge
}

// Terminal reports whether s is an accepting state.
func (s State) Terminal() bool { return len(s.Edges) == 0 }

// Machine is a 2D FSM. It is read-only once built and safe to share.
//
// Seed is the role of the pixel the machine was built from. The zero value
// (palette.None) is treated like palette.Function: the live seed pixel fixes
// the function colour of a match.
type Machine struct {
	States []State
	Seed   palette.Role
}

// Len returns the number of states.
func (m *Machine) Len() int { return len(m.States) }

// String dumps one line per state, e.g. "s0: ->s1 consume(s0+1+0, function)".
func (m *Machine) String() string {
	var sb strings.Builder
	for i, s := range m.States {
		fmt.Fprintf(&sb, "s%d:", i)
		if s.Terminal() {
			sb.WriteString(" accept")
		}
		for _, e := range s.Edges {
			fmt.Fprintf(&sb, " ->s%d %s", e.To, e.T)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Validate checks that the machine is non-empty and that every edge target
// and base index names an existing state.
// Complexity: O(states + edges).
func (m *Machine) Validate() error {
	if m == nil || len(m.States) == 0 {
		return fmt.Errorf("fsm: Validate: empty machine: %w", ErrBadMachine)
	}
	n := len(m.States)
	for i, s := range m.States {
		for j, e := range s.Edges {
			if e.To < 0 || e.To >= n {
				return fmt.Errorf("fsm: Validate: s%d edge %d targets s%d: %w", i, j, e.To, ErrBadMachine)
			}
			if e.T.Op.positional() && (e.T.Base < 0 || e.T.Base >= n) {
				return fmt.Errorf("fsm: Validate: s%d edge %d bases on s%d: %w", i, j, e.T.Base, ErrBadMachine)
			}
		}
	}
	return nil
}

// FuncPixel is a consumed function-marker pixel.
type FuncPixel struct {
	Pos   geom.Point
	Color palette.Color
}

// RolePixel is a consumed input or output pixel: the colour found in the
// picture and the role the machine expected there.
type RolePixel struct {
	Pos   geom.Point
	Color palette.Color
	Role  palette.Role
}

// Capture is a closed capture group: the loop id and the run length.
type Capture struct {
	ID    uint8
	Count int
}

// Result is the evidence accumulated by a successful match.
type Result struct {
	Func     []FuncPixel
	Inputs   []RolePixel
	Outputs  []RolePixel
	Captures []Capture
}

// Consumed lists every recorded consumed position: function pixels, then
// inputs, then outputs. Loop-marker pixels only count towards captures and
// are not listed.
func (r *Result) Consumed() []geom.Point {
	out := make([]geom.Point, 0, len(r.Func)+len(r.Inputs)+len(r.Outputs))
	for _, p := range r.Func {
		out = append(out, p.Pos)
	}
	for _, p := range r.Inputs {
		out = append(out, p.Pos)
	}
	for _, p := range r.Outputs {
		out = append(out, p.Pos)
	}
	return out
}

// Capture returns the first capture group with the given id.
func (r *Result) Capture(id uint8) (Capture, bool) {
	for _, c := range r.Captures {
		if c.ID == id {
			return c, true
		}
	}
	return Capture{}, false
}
