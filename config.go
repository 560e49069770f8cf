package skk

import "github.com/atanigu/libskk/dict"

// Option configures a Context at construction time.
type Option func(*Context)

// WithInputMode sets the starting InputMode instead of the default
// Hiragana.
func WithInputMode(m InputMode) Option {
	return func(c *Context) {
		c.inputMode = m
		if m != Latin && m != WideLatin {
			c.prevKana = m
			c.mainConv.SetKanaMode(kanaModeFor(m))
		}
	}
}

// New builds a Context over d, applying any options in order. It is
// equivalent to NewContext(d) when no options are given.
func New(d dict.Dictionary, opts ...Option) *Context {
	c := NewContext(d)
	for _, opt := range opts {
		opt(c)
	}
	return c
}
