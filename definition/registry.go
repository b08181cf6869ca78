package definition

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/glyphfsm/fsm"
	"github.com/katalvlaran/glyphfsm/glyph"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// Binding pairs a colour observed in the program with the role the symbol
// expected there.
type Binding struct {
	Color palette.Color
	Role  palette.Role
}

// Identified is a recognised glyph.
type Identified struct {
	Glyph       glyph.Glyph
	ID          Identifier
	Orientation int // quarter turns, 0..3
	Inputs      []Binding
	Outputs     []Binding
	Captures    []fsm.Capture
	Result      *fsm.Result
}

// Registry is an ordered collection of definitions.
type Registry struct {
	mu     sync.RWMutex
	defs   []*Definition
	logger *slog.Logger
}

// NewRegistry returns an empty registry. Only WithLogger is meaningful here.
func NewRegistry(opts ...Option) *Registry {
	cfg := newConfig(opts...)
	return &Registry{logger: cfg.logger}
}

// Register appends defs in order. Nil entries are skipped.
func (r *Registry) Register(defs ...*Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range defs {
		if d != nil {
			r.defs = append(r.defs, d)
		}
	}
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Definitions returns a copy of the registered definitions in order.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.defs)
}

// Identify matches g, seeded at its top-left pixel in pic, against every
// definition in registration order and every orientation in turn. The first
// success wins. pic is not modified.
//
// ok is false when nothing matched; that is an outcome, not an error.
// Complexity: sum of the attempted matches.
func (r *Registry) Identify(g *glyph.Glyph, pic *picture.Picture) (*Identified, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, def := range r.defs {
		for k, m := range def.Machines {
			if m == nil {
				continue
			}
			res, err := m.DoMachine(g, pic)
			if err != nil {
				r.logger.Debug("no match",
					slog.String("id", def.ID.String()),
					slog.Int("orientation", k),
					slog.String("seed", g.TopLeft().String()),
				)
				continue
			}
			r.logger.Debug("identified",
				slog.String("id", def.ID.String()),
				slog.Int("orientation", k),
				slog.String("seed", g.TopLeft().String()),
			)
			return &Identified{
				Glyph:       *g,
				ID:          def.ID,
				Orientation: k,
				Inputs:      distinct(res.Inputs),
				Outputs:     distinct(res.Outputs),
				Captures:    res.Captures,
				Result:      res,
			}, true
		}
	}

	return nil, false
}

// IdentifyAll gathers the glyphs of pic under ledger and identifies each one.
// Recognised glyphs come first in the returned pair, the rest second, both
// in gather order.
func (r *Registry) IdentifyAll(pic *picture.Picture, ledger palette.Ledger) ([]Identified, []glyph.Glyph) {
	var (
		found   []Identified
		unknown []glyph.Glyph
	)
	for _, g := range glyph.Gather(pic, ledger) {
		if id, ok := r.Identify(&g, pic); ok {
			found = append(found, *id)
			continue
		}
		unknown = append(unknown, g)
	}
	r.logger.Info("picture scanned",
		slog.Int("identified", len(found)),
		slog.Int("unknown", len(unknown)),
	)
	return found, unknown
}

// distinct returns each (colour, role) pair once, in path order. Match
// results list pixels in reverse path order.
func distinct(px []fsm.RolePixel) []Binding {
	var out []Binding
	for i := len(px) - 1; i >= 0; i-- {
		b := Binding{Color: px[i].Color, Role: px[i].Role}
		if !slices.Contains(out, b) {
			out = append(out, b)
		}
	}
	return out
}
