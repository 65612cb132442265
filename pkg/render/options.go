package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-dojoform/pkg/collector"
)

// Options carry per-request data renderers consume without mutating the form.
type Options struct {
	// Values pre-populates controls keyed by field name.
	Values map[string]any
	// Collector receives the modules the rendered widgets require. When nil,
	// renderers that emit require blocks allocate their own for the call.
	Collector *collector.Collector
	// Theme optionally overrides the toolkit theme resolved from the
	// configuration; renderers use its name and asset resolver when present.
	Theme *theme.RendererConfig
}
