package vocabulary

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/glyphfsm/definition"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

// Loader reads reference pictures from one symbol directory.
type Loader struct {
	dir   string
	cfg   config
	cache *lru.Cache[string, *picture.Picture]
}

// Vocabulary is a loaded symbol set.
type Vocabulary struct {
	Registry *definition.Registry
	// Function is the function colour program pictures are drawn with.
	Function palette.Color
	symbols  map[string]*definition.Definition
}

// Ledger returns the ledger program pictures are gathered with.
func (v *Vocabulary) Ledger() palette.Ledger {
	return palette.NewLedger(v.Function, nil, nil)
}

// Lookup returns the definition loaded for a manifest symbol name.
func (v *Vocabulary) Lookup(name string) (*definition.Definition, error) {
	d, ok := v.symbols[name]
	if !ok {
		return nil, fmt.Errorf("vocabulary: Lookup(%q): %w", name, ErrUnknownSymbol)
	}
	return d, nil
}

// New returns a loader for dir.
func New(dir string, opts ...Option) (*Loader, error) {
	cfg := newConfig(opts...)
	cache, err := lru.New[string, *picture.Picture](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: New: %w", err)
	}
	return &Loader{dir: dir, cfg: cfg, cache: cache}, nil
}

// LoadPic decodes file, relative to the symbol directory unless absolute.
// The result is a private copy; the cache keeps the original.
func (l *Loader) LoadPic(file string) (*picture.Picture, error) {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, file)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: LoadPic(%q): %w", file, err)
	}
	if pic, ok := l.cache.Get(abs); ok {
		return pic.Clone(), nil
	}

	pic, err := picture.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: LoadPic(%q): %w", file, err)
	}
	l.cache.Add(abs, pic)
	l.cfg.logger.Debug("picture decoded",
		slog.String("path", abs),
		slog.Int("width", pic.Width),
		slog.Int("height", pic.Height),
	)
	return pic.Clone(), nil
}

// LoadManifest reads the directory's manifest, or returns Builtins if there
// is none.
func (l *Loader) LoadManifest() (*Manifest, error) {
	f, err := os.Open(filepath.Join(l.dir, ManifestName))
	if errors.Is(err, fs.ErrNotExist) {
		l.cfg.logger.Info("no manifest, using built-in symbols", slog.String("dir", l.dir))
		return Builtins(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("vocabulary: LoadManifest: %w", err)
	}
	defer f.Close()
	return ParseManifest(f)
}

// LoadDir loads the directory's vocabulary: its manifest if present,
// the built-in set otherwise.
func (l *Loader) LoadDir() (*Vocabulary, error) {
	m, err := l.LoadManifest()
	if err != nil {
		return nil, err
	}
	return l.Load(m)
}

// LoadBuiltins loads the built-in symbol set from the directory.
func (l *Loader) LoadBuiltins() (*Vocabulary, error) {
	return l.Load(Builtins())
}

// Load builds and registers every symbol of m in order.
//
// Steps:
//  1. Resolve the program function colour: WithFunction, then the manifest,
//     then DefaultFunction.
//  2. For each symbol decode its picture, cut out the frame's innards when
//     the symbol is framed, and create its definition.
func (l *Loader) Load(m *Manifest) (*Vocabulary, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// 1) Program function colour
	fnHex := m.Function
	if fnHex == "" {
		fnHex = DefaultFunction
	}
	fn, err := palette.ParseHex(fnHex)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: manifest function: %v: %w", err, ErrManifest)
	}
	if l.cfg.function != nil {
		fn = *l.cfg.function
	}

	// 2) Symbols
	v := &Vocabulary{
		Registry: definition.NewRegistry(definition.WithLogger(l.cfg.logger)),
		Function: fn,
		symbols:  make(map[string]*definition.Definition, len(m.Symbols)),
	}
	custom := 0
	for _, sym := range m.Symbols {
		def, err := l.symbol(sym, sym.identifier(&custom), v)
		if err != nil {
			return nil, err
		}
		v.Registry.Register(def)
		v.symbols[sym.Name] = def
		l.cfg.logger.Info("symbol loaded",
			slog.String("name", sym.Name),
			slog.String("id", def.ID.String()),
			slog.String("function", def.Ledger.Function.Hex()),
			slog.Int("states", def.Machines[0].Len()),
		)
	}

	l.cfg.logger.Info("vocabulary loaded",
		slog.String("dir", l.dir),
		slog.Int("symbols", v.Registry.Len()),
	)
	return v, nil
}

func (l *Loader) symbol(sym Symbol, id definition.Identifier, v *Vocabulary) (*definition.Definition, error) {
	inputs, err := palette.ParseHexList(sym.Inputs)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: symbol %q inputs: %v: %w", sym.Name, err, ErrManifest)
	}
	outputs, err := palette.ParseHexList(sym.Outputs)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: symbol %q outputs: %v: %w", sym.Name, err, ErrManifest)
	}

	var pic *picture.Picture
	if sym.Frame != "" {
		pic, err = l.innards(sym, v)
	} else {
		pic, err = l.LoadPic(sym.File)
	}
	if err != nil {
		return nil, err
	}

	def, err := definition.Create(pic, inputs, outputs,
		definition.WithIdentifier(id),
		definition.WithLogger(l.cfg.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: symbol %q: %w", sym.Name, err)
	}
	return def, nil
}

// innards finds the frame symbol inside sym's picture and returns what the
// frame encloses.
func (l *Loader) innards(sym Symbol, v *Vocabulary) (*picture.Picture, error) {
	frame, err := v.Lookup(sym.Frame)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: symbol %q: %w", sym.Name, err)
	}
	if frame.ID != definition.Pic {
		return nil, fmt.Errorf("vocabulary: symbol %q: frame %q is %v, not pic: %w", sym.Name, sym.Frame, frame.ID, ErrManifest)
	}
	pic, err := l.LoadPic(sym.File)
	if err != nil {
		return nil, err
	}

	reg := definition.NewRegistry(definition.WithLogger(l.cfg.logger))
	reg.Register(frame)
	found, _ := reg.IdentifyAll(pic, palette.NewLedger(frame.Ledger.Function, nil, nil))
	for i := range found {
		inner, err := definition.IsolateInnards(&found[i], pic)
		if err == nil {
			return inner, nil
		}
	}
	return nil, fmt.Errorf("vocabulary: symbol %q in %s: %w", sym.Name, sym.File, ErrNoFrame)
}
