package tagtree

import "fmt"

// Option configures parsing and formatting.
type Option func(*options) error

type options struct {
	maxDepth    int
	strictClose bool
	indent      *int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that limits how deeply elements may nest.
// Parsing fails once the limit is exceeded. By default there is no limit
// beyond the available stack.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("tagtree: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// StrictCloseTags returns an Option that makes parsing fail when a closing
// tag does not name the element it closes. By default closing tag names are
// not checked.
func StrictCloseTags() Option {
	return func(o *options) error {
		o.strictClose = true
		return nil
	}
}

// Indent returns an Option that sets the number of spaces used per nesting
// level when formatting. Zero produces compact output; the default is 2.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("tagtree: indent must not be negative")
		}
		o.indent = &n
		return nil
	}
}
