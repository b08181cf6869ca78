package vocabulary

import (
	"log/slog"

	"github.com/katalvlaran/glyphfsm/palette"
)

// Option customizes a Loader. Constructors panic on meaningless input.
type Option func(*config)

// Defaults: 64 cached pictures, slog.Default() tagged component=vocabulary,
// function colour from the manifest.
type config struct {
	cacheSize int
	logger    *slog.Logger
	function  *palette.Color
}

const defaultCacheSize = 64

func newConfig(opts ...Option) config {
	c := config{
		cacheSize: defaultCacheSize,
		logger:    slog.Default().With(slog.String("component", "vocabulary")),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithCacheSize bounds the number of decoded pictures kept. Panics if n < 1.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic("vocabulary: WithCacheSize(n < 1)")
	}
	return func(c *config) {
		c.cacheSize = n
	}
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("vocabulary: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithFunction overrides the manifest's program function colour.
// Panics on the blank colour.
func WithFunction(fn palette.Color) Option {
	if fn.IsBlank() {
		panic("vocabulary: WithFunction(blank)")
	}
	return func(c *config) {
		c.function = &fn
	}
}
