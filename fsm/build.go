package fsm

import (
	"fmt"

	"github.com/katalvlaran/glyphfsm/geom"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// frame is the shape of the state block emitted for one visited pixel.
type frame uint8

const (
	// plainFrame is a single state positioned on the pixel itself.
	plainFrame frame = iota
	// scaffoldFrame is the four-state capture block opening a loop run.
	scaffoldFrame
	// placeholderFrame is a single edgeless state for a pixel already
	// covered by the enclosing run's scaffold.
	placeholderFrame
)

// base is the index, inside the frame, of the state whose recorded position
// is the current head once the frame has been walked: the scaffold's exit
// state, or the single state of the other frames.
func (f frame) base() int {
	if f == scaffoldFrame {
		return 3
	}
	return 0
}

// loopRun describes the loop run a recursion is currently inside.
type loopRun struct {
	id     uint8
	dir    geom.Point
	active bool
}

// builder holds the read-only reference drawing and the visited bitmap of
// one Build call.
type builder struct {
	pic     *picture.Picture
	ledger  palette.Ledger
	visited []bool
}

// Build constructs the machine of the connected drawing that contains seed.
// Relevance and roles of pixels are decided by ledger; pic is not modified.
//
// Steps:
//  1. Validate the seed: in bounds and of a relevant colour.
//  2. Mark the seed visited and walk the drawing depth-first, neighbours in
//     geom.Surrounding order, emitting one frame per pixel.
//  3. Splice every sub-walk after the states built so far, renumbering its
//     targets and bases, and link it from the last state built so far.
//
// Returns ErrNoSeed wrapped with the position on a bad seed.
// Complexity: O(P·depth) for P pixels in the drawing.
func Build(pic *picture.Picture, ledger palette.Ledger, seed geom.Point) (*Machine, error) {
	// 1) Validate seed
	if !pic.InBounds(seed) || !ledger.Relevant(pic.At(seed)) {
		return nil, fmt.Errorf("fsm: Build at %v: %w", seed, ErrNoSeed)
	}

	// 2) Walk
	b := &builder{
		pic:     pic,
		ledger:  ledger,
		visited: make([]bool, pic.Width*pic.Height),
	}
	b.visited[pic.Index(seed)] = true

	return &Machine{
		States: b.follow(seed, seed, loopRun{}),
		Seed:   b.role(seed),
	}, nil
}

func (b *builder) role(p geom.Point) palette.Role {
	return b.ledger.Classify(b.pic.At(p))
}

// branches returns the in-bounds relevant neighbours of head, visited or not,
// as offsets in geom.Surrounding order.
func (b *builder) branches(head geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(geom.Surrounding))
	for _, d := range geom.Surrounding {
		n := head.Add(d)
		if b.pic.InBounds(n) && b.role(n).Relevant() {
			out = append(out, d)
		}
	}
	return out
}

// frameOf decides the frame for a pixel of role cur reached by step from
// its predecessor while inside run r.
func frameOf(cur palette.Role, step geom.Point, r loopRun, root bool) frame {
	switch {
	case root || !cur.IsLoop():
		return plainFrame
	case r.active && r.id == cur.ID && r.dir == step:
		return placeholderFrame
	default:
		return scaffoldFrame
	}
}

// follow builds the sub-machine rooted at head, entered from prev. Indices
// in the returned slice are local to it.
func (b *builder) follow(head, prev geom.Point, r loopRun) []State {
	root := head == prev
	step := head.Sub(prev)
	cur := b.role(head)
	f := frameOf(cur, step, r, root)

	// The run handed to children: opened by a scaffold, carried through a
	// placeholder, dropped by anything else.
	switch f {
	case scaffoldFrame:
		r = loopRun{id: cur.ID, dir: step, active: true}
	case plainFrame:
		r = loopRun{}
	}

	states := b.open(f, b.role(prev), cur.ID, step)

	branches := b.branches(head)
	if len(branches) == 1 && !root {
		// Only the predecessor is adjacent.
		return states
	}

	for _, d := range branches {
		next := head.Add(d)
		idx := b.pic.Index(next)
		if b.visited[idx] {
			continue
		}
		b.visited[idx] = true

		nextRole := b.role(next)
		sub := b.follow(next, head, r)

		var at int
		states, at = splice(states, sub)
		states[at-1].Edges = append(states[at-1].Edges, Edge{
			To: at,
			T:  link(f, frameOf(nextRole, d, r, false), d, nextRole),
		})
	}

	return states
}

// open emits the states of a frame. A scaffold tags its capture group with
// the role of the pixel the run was entered from.
func (b *builder) open(f frame, prevRole palette.Role, id uint8, dir geom.Point) []State {
	switch f {
	case scaffoldFrame:
		return []State{
			{Edges: []Edge{{To: 1, T: BeginCapture(prevRole, id)}}},
			{Edges: []Edge{
				{To: 2, T: MoveAndConsume(1, dir, palette.Loop(id))},
				{To: 2, T: Free()},
			}},
			{Edges: []Edge{
				{To: 1, T: Free()},
				{To: 3, T: EndCapture()},
			}},
			{},
		}
	default:
		return []State{{}}
	}
}

// link returns the transition from a frame of kind from into a child frame
// of kind to, the child pixel lying at offset d from the current head.
// Children that are loop pixels are consumed by their own scaffold, so the
// link only moves the head; every other child is consumed by the link.
func link(from, to frame, d geom.Point, role palette.Role) Transition {
	if to != plainFrame {
		return MoveTo(from.base(), geom.Point{})
	}
	return MoveAndConsume(from.base(), d, role)
}

// splice appends sub to states, shifting every target and base index of sub
// by the current length of states. It returns the grown slice and the index
// sub[0] landed at.
func splice(states, sub []State) ([]State, int) {
	offset := len(states)
	for _, s := range sub {
		if s.Terminal() {
			states = append(states, State{})
			continue
		}
		edges := make([]Edge, len(s.Edges))
		for i, e := range s.Edges {
			e.To += offset
			if e.T.Op.positional() {
				e.T.Base += offset
			}
			edges[i] = e
		}
		states = append(states, State{Edges: edges})
	}
	return states, offset
}
