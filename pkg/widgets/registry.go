package widgets

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry tracks widget descriptors keyed by name. Callers can register new
// widgets or override the defaults installed by DefaultRegistry.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]Descriptor)}
}

// Clone returns a deep copy of the registry so callers can mutate a private
// catalog without touching the shared defaults.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, desc := range r.widgets {
		cloned.widgets[name] = desc.clone()
	}
	return cloned
}

// Register associates a descriptor with the provided name. Existing entries
// are replaced.
func (r *Registry) Register(name string, desc Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("widgets: widget name is required")
	}
	if desc.DojoType == "" && desc.Element == "" {
		return fmt.Errorf("widgets: descriptor for %q has neither dojo type nor element", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	desc.Name = name
	r.widgets[name] = desc.clone()
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// catalog setup.
func (r *Registry) MustRegister(name string, desc Descriptor) {
	if err := r.Register(name, desc); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.widgets[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return desc.clone(), true
}

// Names returns the registered widget names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stylesheets aggregates the stylesheet dependencies of the named widgets,
// deduplicated in first-seen order.
func (r *Registry) Stylesheets(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	seen := make(map[string]struct{})
	for _, name := range names {
		desc, ok := r.widgets[normalize(name)]
		if !ok {
			continue
		}
		for _, href := range desc.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seen[href]; exists {
				continue
			}
			seen[href] = struct{}{}
			out = append(out, href)
		}
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
