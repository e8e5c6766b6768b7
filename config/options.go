package config

import "io"

type loadOptions struct {
	defaults Config
	reader   io.Reader
}

// Option configures Load.
type Option func(*loadOptions)

// WithDefaults seeds Load with defaults, overridden field-by-field by
// whatever WithReader later supplies.
func WithDefaults(defaults Config) Option {
	return func(o *loadOptions) {
		o.defaults = defaults
	}
}

// WithReader supplies a YAML document to overlay onto the defaults.
func WithReader(r io.Reader) Option {
	return func(o *loadOptions) {
		o.reader = r
	}
}
