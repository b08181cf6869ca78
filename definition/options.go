package definition

import (
	"log/slog"

	"github.com/katalvlaran/glyphfsm/palette"
)

// Option customizes Create and NewRegistry.
// Option constructors panic on meaningless input; Create and Identify never do.
type Option func(*config)

// config carries every knob of the package. Later options override earlier ones.
//
// Defaults:
//   - logger          = slog.Default() tagged component=definition
//   - defaultFunction = palette.Blue
//   - id              = Custom(0)
type config struct {
	logger          *slog.Logger
	defaultFunction palette.Color
	id              Identifier
}

func newConfig(opts ...Option) config {
	c := config{
		logger:          slog.Default().With(slog.String("component", "definition")),
		defaultFunction: palette.Blue,
		id:              Custom(0),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("definition: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithDefaultFunction sets the function colour used when the corners of a
// reference drawing do not agree. Panics on the blank colour, which can
// never mark anything.
func WithDefaultFunction(fn palette.Color) Option {
	if fn.IsBlank() {
		panic("definition: WithDefaultFunction(blank)")
	}
	return func(c *config) {
		c.defaultFunction = fn
	}
}

// WithIdentifier sets the identifier of the definition built by Create.
func WithIdentifier(id Identifier) Option {
	return func(c *config) {
		c.id = id
	}
}
