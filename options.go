package livelists

import "log/slog"

// Option allows configuring the behavior of NewDiffer.
type Option interface {
	applyDiffer(*differConfig)
}

type optionFunc func(*differConfig)

func (f optionFunc) applyDiffer(c *differConfig) {
	f(c)
}

type differConfig struct {
	name   string
	logger *slog.Logger
}

// WithComponentName returns an option that overrides both the derived
// component name and any Namer implementation on the source.
func WithComponentName(name string) Option {
	return optionFunc(func(c *differConfig) {
		c.name = name
	})
}

// WithLogger returns an option that makes the differ log a Debug summary
// of every diff cycle. The differ is silent without it.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(c *differConfig) {
		c.logger = logger
	})
}
