package fsm

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/glyph"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// noCapture marks that no capture group is open.
const noCapture = -1

// step is one taken transition, kept for the epsilon guard.
type step struct {
	from int
	t    Transition
	to   int
}

// runner holds the mutable search state of one Match call.
type runner struct {
	m       *Machine
	pic     *picture.Picture // working copy; consumed pixels are blanked
	fn      palette.Color    // function colour, once bound
	bound   bool             // fn is valid
	pos     []geom.Point     // position each state was last entered at
	history []step
}

// DoMachine runs m against pic seeded at the top-left pixel of g.
// See Match.
func (m *Machine) DoMachine(g *glyph.Glyph, pic *picture.Picture) (*Result, error) {
	if g == nil || g.Len() == 0 {
		return nil, fmt.Errorf("fsm: DoMachine: empty glyph: %w", ErrNoSeed)
	}
	return m.Match(pic, g.TopLeft())
}

// Match runs m against pic starting at seed.
//
// Function-role transitions accept exactly the function colour of the run;
// input and output transitions accept any other non-blank colour. The
// function colour is the seed pixel's colour when m was built from a
// function pixel, otherwise the colour of the first function pixel consumed.
//
// Steps:
//  1. Check the machine and the seed, then copy pic and blank the seed.
//  2. Search depth-first from state 0, trying edges in order and restoring
//     every consumed pixel of a failed alternative.
//  3. On success record the seed under its role and put captures in path
//     order.
//
// pic is never modified. Returns ErrNoMatch if no accepting state is
// reachable, ErrNoSeed for a blank or out-of-bounds seed, and ErrBadMachine
// for an empty machine.
func (m *Machine) Match(pic *picture.Picture, seed geom.Point) (*Result, error) {
	// 1) Preconditions
	if m == nil || len(m.States) == 0 {
		return nil, fmt.Errorf("fsm: Match: %w", ErrBadMachine)
	}
	if !pic.InBounds(seed) || pic.IsBlank(seed) {
		return nil, fmt.Errorf("fsm: Match at %v: %w", seed, ErrNoSeed)
	}
	work := pic.Clone()
	c := work.At(seed)
	if m.Seed.IsLoop() && c != palette.RGB(m.Seed.ID, 0, 0) {
		return nil, ErrNoMatch
	}
	work.Blank(seed)

	r := &runner{
		m:   m,
		pic: work,
		pos: make([]geom.Point, len(m.States)),
	}
	if seedIsFunction(m.Seed) {
		r.fn, r.bound = c, true
	}

	// 2) Search
	res, ok := r.follow(0, seed, noCapture)
	if !ok {
		return nil, ErrNoMatch
	}

	// 3) Finish
	switch {
	case seedIsFunction(m.Seed):
		res.Func = append(res.Func, FuncPixel{Pos: seed, Color: c})
	case m.Seed.Kind == palette.KindInput:
		res.Inputs = append(res.Inputs, RolePixel{Pos: seed, Color: c, Role: m.Seed})
	case m.Seed.Kind == palette.KindOutput:
		res.Outputs = append(res.Outputs, RolePixel{Pos: seed, Color: c, Role: m.Seed})
	}
	slices.Reverse(res.Captures)

	return res, nil
}

// follow enters state cur with the head at head. Results are assembled on
// the way back up, so evidence lists are in reverse path order.
func (r *runner) follow(cur int, head geom.Point, capture int) (*Result, bool) {
	st := r.m.States[cur]
	if st.Terminal() {
		return &Result{}, true
	}

	saved := r.pos[cur]
	r.pos[cur] = head
	defer func() { r.pos[cur] = saved }()

	for _, e := range st.Edges {
		var (
			res *Result
			ok  bool
		)
		switch e.T.Op {
		case OpMoveTo:
			res, ok = r.moveTo(cur, e, capture)
		case OpMoveAndConsume:
			res, ok = r.consume(cur, e, capture)
		case OpFree:
			res, ok = r.free(cur, e, head, capture)
		case OpBeginCapture:
			res, ok = r.beginCapture(cur, e, head)
		case OpEndCapture:
			res, ok = r.endCapture(cur, e, head)
		}
		if ok {
			return res, true
		}
	}

	return nil, false
}

// enter records the step, follows it, and forgets it again.
func (r *runner) enter(cur int, e Edge, head geom.Point, capture int) (*Result, bool) {
	r.history = append(r.history, step{from: cur, t: e.T, to: e.To})
	res, ok := r.follow(e.To, head, capture)
	r.history = r.history[:len(r.history)-1]
	return res, ok
}

func (r *runner) moveTo(cur int, e Edge, capture int) (*Result, bool) {
	return r.enter(cur, e, r.pos[e.T.Base].Add(e.T.Offset), capture)
}

func (r *runner) consume(cur int, e Edge, capture int) (*Result, bool) {
	target := r.pos[e.T.Base].Add(e.T.Offset)
	if !r.pic.InBounds(target) || r.pic.IsBlank(target) {
		return nil, false
	}
	c := r.pic.At(target)
	if !r.accepts(e.T.Role, c) {
		return nil, false
	}

	binds := e.T.Role.Kind == palette.KindFunction && !r.bound
	if binds {
		r.fn, r.bound = c, true
	}
	r.pic.Blank(target)
	res, ok := r.enter(cur, e, target, capture)
	if !ok {
		r.pic.Set(target, c)
		if binds {
			r.bound = false
		}
		return nil, false
	}

	switch e.T.Role.Kind {
	case palette.KindFunction:
		res.Func = append(res.Func, FuncPixel{Pos: target, Color: c})
	case palette.KindInput:
		res.Inputs = append(res.Inputs, RolePixel{Pos: target, Color: c, Role: e.T.Role})
	case palette.KindOutput:
		res.Outputs = append(res.Outputs, RolePixel{Pos: target, Color: c, Role: e.T.Role})
	}
	if capture != noCapture {
		if len(res.Captures) == 0 {
			res.Captures = append(res.Captures, Capture{ID: uint8(capture)})
		}
		res.Captures[len(res.Captures)-1].Count++
	}

	return res, true
}

// free refuses a second consecutive epsilon step into the same state.
func (r *runner) free(cur int, e Edge, head geom.Point, capture int) (*Result, bool) {
	if n := len(r.history); n > 0 {
		last := r.history[n-1]
		if last.t.Op == OpFree && last.to == cur {
			return nil, false
		}
	}
	return r.enter(cur, e, head, capture)
}

func (r *runner) beginCapture(cur int, e Edge, head geom.Point) (*Result, bool) {
	res, ok := r.enter(cur, e, head, int(e.T.ID))
	if !ok {
		return nil, false
	}
	if len(res.Captures) == 0 {
		res.Captures = append(res.Captures, Capture{})
	}
	res.Captures[len(res.Captures)-1].ID = e.T.ID
	return res, true
}

func (r *runner) endCapture(cur int, e Edge, head geom.Point) (*Result, bool) {
	res, ok := r.enter(cur, e, head, noCapture)
	if !ok {
		return nil, false
	}
	res.Captures = append(res.Captures, Capture{})
	return res, true
}

// accepts reports whether live colour c may be consumed for role.
func (r *runner) accepts(role palette.Role, c palette.Color) bool {
	switch role.Kind {
	case palette.KindFunction:
		return !r.bound || c == r.fn
	case palette.KindLoop:
		return c == palette.RGB(role.ID, 0, 0)
	case palette.KindInput, palette.KindOutput:
		return !r.bound || c != r.fn
	default:
		return false
	}
}

// seedIsFunction reports whether a machine seeded on role starts on a
// function pixel. Hand-built machines leave the role unset.
func seedIsFunction(role palette.Role) bool {
	return role.Kind == palette.KindFunction || role.Kind == palette.KindNone
}
