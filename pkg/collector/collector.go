// Package collector tracks the client toolkit modules the widgets used on a
// page require. A Collector is scoped to a single request/response cycle and
// travels through the call chain via context rather than package-level state;
// the hosting application owns one logical thread of control per cycle, so
// the type carries no locking.
package collector

import "context"

// Collector accumulates dojo module identifiers in first-seen order,
// suppressing duplicates. The zero value is not usable; call New.
type Collector struct {
	modules []string
	seen    map[string]struct{}
}

// New returns an empty collector.
func New() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Add records a module identifier. Empty identifiers and repeats are ignored.
// Add on a nil collector is a no-op so callers can run without one attached.
func (c *Collector) Add(module string) {
	if c == nil || module == "" {
		return
	}
	if _, ok := c.seen[module]; ok {
		return
	}
	c.seen[module] = struct{}{}
	c.modules = append(c.modules, module)
}

// Modules returns the collected identifiers in insertion order. The slice is
// a copy; mutating it does not affect the collector.
func (c *Collector) Modules() []string {
	if c == nil || len(c.modules) == 0 {
		return nil
	}
	out := make([]string, len(c.modules))
	copy(out, c.modules)
	return out
}

// Reset discards all collected modules. Call it at the start of each
// request/response cycle when reusing a collector.
func (c *Collector) Reset() {
	if c == nil {
		return
	}
	c.modules = c.modules[:0]
	c.seen = make(map[string]struct{})
}

type contextKey struct{}

// NewContext attaches the collector to ctx.
func NewContext(ctx context.Context, c *Collector) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext extracts the collector attached by NewContext. It returns nil
// when none is attached; Collector methods tolerate the nil receiver.
func FromContext(ctx context.Context) *Collector {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(contextKey{}).(*Collector)
	return c
}
