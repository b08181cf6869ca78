// Command glyphscan recognises the symbols drawn in a program picture.
//
//	glyphscan -symbols ./symbols -annotate out.png program.png
//
// Symbols are loaded from the -symbols directory (its symbols.yaml, or the
// built-in set when there is none). Every glyph of the program's function
// colour is then matched against them and reported, one line each, or as a
// JSON document with -json.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/glyphfsm/definition"
	"github.com/katalvlaran/glyphfsm/fsm"
	"github.com/katalvlaran/glyphfsm/glyph"
	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
	"github.com/katalvlaran/glyphfsm/render"
	"github.com/katalvlaran/glyphfsm/vocabulary"
)

func main() {
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, cfg.Verbose)
	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("scan failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cfg *config, stdout io.Writer, logger *slog.Logger) error {
	// 1) Vocabulary
	opts := []vocabulary.Option{vocabulary.WithLogger(logger.With(slog.String("component", "vocabulary")))}
	if cfg.Function != "" {
		fn, err := palette.ParseHex(cfg.Function)
		if err != nil {
			return fmt.Errorf("glyphscan: -function: %w", err)
		}
		opts = append(opts, vocabulary.WithFunction(fn))
	}
	loader, err := vocabulary.New(cfg.Symbols, opts...)
	if err != nil {
		return err
	}
	vocab, err := loadVocabulary(loader, cfg.Manifest)
	if err != nil {
		return err
	}

	// 2) Scan
	pic, err := picture.Open(cfg.Picture)
	if err != nil {
		return err
	}
	found, unknown := vocab.Registry.IdentifyAll(pic, vocab.Ledger())

	// 3) Report
	rep := newReport(cfg.Picture, found, unknown)
	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("glyphscan: encode report: %w", err)
		}
	} else {
		rep.writeText(stdout)
	}

	if cfg.Annotate == "" {
		return nil
	}
	f, err := os.Create(cfg.Annotate)
	if err != nil {
		return fmt.Errorf("glyphscan: -annotate: %w", err)
	}
	if err := render.Annotate(pic, found, f, render.WithScale(cfg.Scale)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func loadVocabulary(l *vocabulary.Loader, manifest string) (*vocabulary.Vocabulary, error) {
	if manifest == "" {
		return l.LoadDir()
	}
	f, err := os.Open(manifest)
	if err != nil {
		return nil, fmt.Errorf("glyphscan: -manifest: %w", err)
	}
	defer f.Close()
	m, err := vocabulary.ParseManifest(f)
	if err != nil {
		return nil, err
	}
	return l.Load(m)
}

type report struct {
	Picture string         `json:"picture"`
	Found   []foundGlyph   `json:"found"`
	Unknown []unknownGlyph `json:"unknown"`
}

type foundGlyph struct {
	ID          definition.Identifier `json:"id"`
	Orientation int                   `json:"orientation"`
	Bounds      string                `json:"bounds"`
	Inputs      []string              `json:"inputs,omitempty"`
	Outputs     []string              `json:"outputs,omitempty"`
	Captures    []fsm.Capture         `json:"captures,omitempty"`
}

type unknownGlyph struct {
	Color  string `json:"color"`
	Bounds string `json:"bounds"`
	Pixels int    `json:"pixels"`
}

func newReport(path string, found []definition.Identified, unknown []glyph.Glyph) report {
	rep := report{
		Picture: path,
		Found:   make([]foundGlyph, 0, len(found)),
		Unknown: make([]unknownGlyph, 0, len(unknown)),
	}
	for _, f := range found {
		rep.Found = append(rep.Found, foundGlyph{
			ID:          f.ID,
			Orientation: f.Orientation,
			Bounds:      f.Glyph.Bounds.String(),
			Inputs:      hexes(f.Inputs),
			Outputs:     hexes(f.Outputs),
			Captures:    f.Captures,
		})
	}
	for _, g := range unknown {
		rep.Unknown = append(rep.Unknown, unknownGlyph{
			Color:  g.Color.Hex(),
			Bounds: g.Bounds.String(),
			Pixels: g.Len(),
		})
	}
	return rep
}

func hexes(bs []definition.Binding) []string {
	if len(bs) == 0 {
		return nil
	}
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Color.Hex()
	}
	return out
}

func (r report) writeText(w io.Writer) {
	for _, f := range r.Found {
		fmt.Fprintf(w, "%v at %s", f.ID, f.Bounds)
		if f.Orientation != 0 {
			fmt.Fprintf(w, " turned %d", f.Orientation)
		}
		if len(f.Inputs) > 0 {
			fmt.Fprintf(w, " in=%v", f.Inputs)
		}
		if len(f.Outputs) > 0 {
			fmt.Fprintf(w, " out=%v", f.Outputs)
		}
		for _, c := range f.Captures {
			fmt.Fprintf(w, " loop%d=%d", c.ID, c.Count)
		}
		fmt.Fprintln(w)
	}
	for _, u := range r.Unknown {
		fmt.Fprintf(w, "unknown %s glyph at %s (%d pixels)\n", u.Color, u.Bounds, u.Pixels)
	}
}
