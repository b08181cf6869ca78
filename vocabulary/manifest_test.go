package vocabulary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphfsm/vocabulary"
)

const manifestYAML = `
function: "#ff7ff8"
symbols:
  - name: pic
    file: pic.png
  - name: add
    file: add.png
    inputs: ["#0094ff"]
  - name: hook
    file: add.png
  - name: dir
    file: dir.png
    frame: pic
    inputs: ["#0094ff"]
`

func TestParseManifest(t *testing.T) {
	m, err := vocabulary.ParseManifest(strings.NewReader(manifestYAML))
	require.NoError(t, err)
	assert.Equal(t, "#ff7ff8", m.Function)
	require.Len(t, m.Symbols, 4)
	assert.Equal(t, vocabulary.Symbol{
		Name:   "dir",
		File:   "dir.png",
		Frame:  "pic",
		Inputs: []string{"#0094ff"},
	}, m.Symbols[3])

	m, err = vocabulary.ParseManifest(strings.NewReader(""))
	require.NoError(t, err, "an empty manifest is valid")
	assert.Empty(t, m.Symbols)
}

func TestParseManifest_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown field": "symbols:\n  - name: a\n    file: a.png\n    colour: red\n",
		"missing name":  "symbols:\n  - file: a.png\n",
		"missing file":  "symbols:\n  - name: a\n",
		"duplicate":     "symbols:\n  - name: a\n    file: a.png\n  - name: a\n    file: b.png\n",
		"forward frame": "symbols:\n  - name: dir\n    file: dir.png\n    frame: pic\n  - name: pic\n    file: pic.png\n",
		"not yaml":      "symbols: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := vocabulary.ParseManifest(strings.NewReader(doc))
			assert.ErrorIs(t, err, vocabulary.ErrManifest)
		})
	}
}

func TestBuiltins(t *testing.T) {
	m := vocabulary.Builtins()
	require.NoError(t, m.Validate())
	assert.Equal(t, vocabulary.DefaultFunction, m.Function)

	names := make([]string, 0, len(m.Symbols))
	for _, s := range m.Symbols {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"pic", "add", "mul", "sub", "div", "dir"}, names)
	assert.Equal(t, "pic", m.Symbols[5].Frame)
}
