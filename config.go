package parsea

import "fmt"

// Config is an opaque bag of options, handed to a parse run with WithConfig.
// Every callback of Map, FlatMap, Satisfy and ManyAccum, and every do-block,
// may read it. Parsers must not modify it.
type Config map[string]any

// Get returns the value for key and whether it is set.
func (c Config) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c[key]
	return v, ok
}

// IsSet returns true if key is present in the configuration.
func (c Config) IsSet(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// String returns the value for key as a string, or "" if unset.
// Non-string values are formatted with %v.
func (c Config) String(key string) string {
	v, ok := c.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Bool returns the value for key as a bool. Unset and non-bool values
// yield false.
func (c Config) Bool(key string) bool {
	v, _ := c.Get(key)
	b, _ := v.(bool)
	return b
}

// Int returns the value for key as an int. Unset and non-integer values
// yield 0.
func (c Config) Int(key string) int {
	v, _ := c.Get(key)
	switch i := v.(type) {
	case int:
		return i
	case int64:
		return int(i)
	case int32:
		return int(i)
	}
	return 0
}

// --- Parse options ---------------------------------------------------------

type parseOptions struct {
	config Config
}

// Option configures a single parse run.
type Option func(*parseOptions)

// WithConfig sets the configuration visible to callbacks during a parse run.
func WithConfig(c Config) Option {
	return func(opts *parseOptions) {
		opts.config = c
	}
}
