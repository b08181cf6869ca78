package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Environment fallbacks, read after .env is loaded.
const (
	envSymbols  = "GLYPHSCAN_SYMBOLS"
	envFunction = "GLYPHSCAN_FUNCTION"
)

var errUsage = errors.New("glyphscan: expected exactly one picture path")

type config struct {
	Symbols  string
	Manifest string
	Function string
	Annotate string
	Scale    int
	JSON     bool
	Verbose  bool
	Picture  string
}

// parseConfig reads flags from args. Flags win over the environment, the
// environment wins over defaults.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("glyphscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: glyphscan [flags] PICTURE")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Symbols, "symbols", firstNonEmpty(getenv(envSymbols), "symbols"), "directory of reference symbol pictures")
	fs.StringVar(&cfg.Manifest, "manifest", "", "symbols manifest (default: symbols.yaml in the symbols directory)")
	fs.StringVar(&cfg.Function, "function", strings.TrimSpace(getenv(envFunction)), "program function colour as hex, overrides the manifest")
	fs.StringVar(&cfg.Annotate, "annotate", "", "write an annotated PNG to this path")
	fs.IntVar(&cfg.Scale, "scale", 8, "annotation scale factor")
	fs.BoolVar(&cfg.JSON, "json", false, "print results as JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errUsage
	}
	if cfg.Scale < 1 {
		return nil, fmt.Errorf("glyphscan: -scale %d: must be at least 1", cfg.Scale)
	}
	cfg.Picture = fs.Arg(0)
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
