package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphfsm/palette"
	"github.com/katalvlaran/glyphfsm/picture"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]string{"-json", "-v", "prog.png"}, env(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, &config{Symbols: "symbols", Scale: 8, JSON: true, Verbose: true, Picture: "prog.png"}, cfg)

	vars := env(map[string]string{envSymbols: "/srv/symbols", envFunction: " #00ff00 "})
	cfg, err = parseConfig([]string{"prog.png"}, vars, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "/srv/symbols", cfg.Symbols)
	assert.Equal(t, "#00ff00", cfg.Function)

	cfg, err = parseConfig([]string{"-symbols", "here", "-function", "#0000ff", "prog.png"}, vars, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "here", cfg.Symbols, "flags win over the environment")
	assert.Equal(t, "#0000ff", cfg.Function)
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := parseConfig(nil, env(nil), io.Discard)
	assert.ErrorIs(t, err, errUsage)

	_, err = parseConfig([]string{"a.png", "b.png"}, env(nil), io.Discard)
	assert.ErrorIs(t, err, errUsage)

	_, err = parseConfig([]string{"-scale", "0", "a.png"}, env(nil), io.Discard)
	assert.Error(t, err)

	_, err = parseConfig([]string{"-h"}, env(nil), io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

var legend = picture.Legend{'F': palette.Pink}

// scanDir writes a one-symbol vocabulary and a program using it.
func scanDir(t *testing.T) (dir, prog string) {
	t.Helper()
	dir = t.TempDir()
	ref := picture.MustText(legend,
		"F.....F",
		".......",
		"..FFF..",
		"..F....",
		"..F....",
		".......",
		"F.....F",
	)
	require.NoError(t, picture.Save(filepath.Join(dir, "add.png"), ref))
	manifest := "symbols:\n  - name: add\n    file: add.png\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "symbols.yaml"), []byte(manifest), 0o644))

	prog = filepath.Join(dir, "prog.png")
	require.NoError(t, picture.Save(prog, picture.MustText(legend,
		"FFF...",
		"F.....",
		"F...FF",
	)))
	return dir, prog
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Text(t *testing.T) {
	dir, prog := scanDir(t)
	out := filepath.Join(dir, "out.png")

	var buf bytes.Buffer
	cfg := &config{Symbols: dir, Picture: prog, Annotate: out, Scale: 2}
	require.NoError(t, run(cfg, &buf, quietLogger()))
	assert.Equal(t,
		"add at [(0,0)-(2,2)]\n"+
			"unknown #ff7ff8 glyph at [(4,2)-(5,2)] (2 pixels)\n",
		buf.String())

	annotated, err := picture.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 12, annotated.Width)
	assert.Equal(t, 6, annotated.Height)
}

func TestRun_JSON(t *testing.T) {
	dir, prog := scanDir(t)

	var buf bytes.Buffer
	cfg := &config{Symbols: dir, Picture: prog, JSON: true, Scale: 1}
	require.NoError(t, run(cfg, &buf, quietLogger()))

	var rep struct {
		Found []struct {
			ID          string `json:"id"`
			Orientation int    `json:"orientation"`
			Bounds      string `json:"bounds"`
		} `json:"found"`
		Unknown []struct {
			Pixels int `json:"pixels"`
		} `json:"unknown"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	require.Len(t, rep.Found, 1)
	assert.Equal(t, "add", rep.Found[0].ID)
	assert.Equal(t, "[(0,0)-(2,2)]", rep.Found[0].Bounds)
	require.Len(t, rep.Unknown, 1)
	assert.Equal(t, 2, rep.Unknown[0].Pixels)
}

func TestRun_Errors(t *testing.T) {
	dir, prog := scanDir(t)
	var buf bytes.Buffer

	err := run(&config{Symbols: dir, Picture: prog, Function: "nope", Scale: 1}, &buf, quietLogger())
	assert.ErrorIs(t, err, palette.ErrBadHex)

	err = run(&config{Symbols: dir, Picture: filepath.Join(dir, "missing.png"), Scale: 1}, &buf, quietLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run(&config{Symbols: dir, Manifest: filepath.Join(dir, "none.yaml"), Picture: prog, Scale: 1}, &buf, quietLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
