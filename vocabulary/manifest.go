package vocabulary

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glyphfsm/definition"
)

// ManifestName is the manifest file looked up in a symbol directory.
const ManifestName = "symbols.yaml"

// DefaultFunction is the program function colour when a manifest names none.
const DefaultFunction = "#ff7ff8"

// Manifest lists the symbols of a vocabulary in registration order.
type Manifest struct {
	Function string   `yaml:"function,omitempty"`
	Symbols  []Symbol `yaml:"symbols"`
}

// Symbol describes one reference drawing.
//
// Kind is an identifier name as accepted by definition.ParseIdentifier; when
// empty, Name is tried, and anything unknown becomes the next custom(n).
// Frame names an earlier pic symbol: the drawing is then taken from the
// inside of that frame in File.
type Symbol struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file"`
	Kind    string   `yaml:"kind,omitempty"`
	Frame   string   `yaml:"frame,omitempty"`
	Inputs  []string `yaml:"inputs,omitempty"`
	Outputs []string `yaml:"outputs,omitempty"`
}

// Builtins returns the manifest of the built-in symbol set.
func Builtins() *Manifest {
	return &Manifest{
		Function: DefaultFunction,
		Symbols: []Symbol{
			{Name: "pic", File: "pic.png"},
			{Name: "add", File: "add.png"},
			{Name: "mul", File: "mul.png"},
			{Name: "sub", File: "sub.png"},
			{Name: "div", File: "div.png"},
			{
				Name:    "dir",
				File:    "dir.png",
				Frame:   "pic",
				Inputs:  []string{"#7fc9ff"},
				Outputs: []string{"#7fff8e"},
			},
		},
	}
}

// ParseManifest decodes and validates a YAML manifest. Unknown fields are
// rejected. Errors wrap ErrManifest.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("vocabulary: ParseManifest: %v: %w", err, ErrManifest)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that names are present and unique, files are present, and
// every frame names an earlier symbol.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Symbols))
	for i, s := range m.Symbols {
		switch {
		case s.Name == "":
			return fmt.Errorf("vocabulary: symbol %d: missing name: %w", i, ErrManifest)
		case s.File == "":
			return fmt.Errorf("vocabulary: symbol %q: missing file: %w", s.Name, ErrManifest)
		case seen[s.Name]:
			return fmt.Errorf("vocabulary: symbol %q: duplicate name: %w", s.Name, ErrManifest)
		case s.Frame != "" && !seen[s.Frame]:
			return fmt.Errorf("vocabulary: symbol %q: frame %q is not an earlier symbol: %w", s.Name, s.Frame, ErrManifest)
		}
		seen[s.Name] = true
	}
	return nil
}

// identifier resolves the identifier of s. custom counts the custom
// identifiers handed out so far and is advanced when s gets one.
func (s Symbol) identifier(custom *int) definition.Identifier {
	for _, name := range []string{s.Kind, s.Name} {
		if name == "" {
			continue
		}
		if id, err := definition.ParseIdentifier(name); err == nil {
			return id
		}
	}
	id := definition.Custom(*custom)
	*custom++
	return id
}
