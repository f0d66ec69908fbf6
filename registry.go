package carddex

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps preset names to configured renderers. It is owned by the
// caller and constructed at startup; there is no package-level instance.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]*Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]*Renderer)}
}

// Register adds a named preset.
func (r *Registry) Register(name string, rend *Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.presets[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePreset, name)
	}
	r.presets[name] = rend
	return nil
}

// Lookup returns the renderer registered under name.
func (r *Registry) Lookup(name string) (*Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rend, ok := r.presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return rend, nil
}

// Names returns the registered preset names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.presets))
	for name := range r.presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a registry with one default-config preset per
// built-in target, named after the target.
func DefaultRegistry(opts ...RendererOption) *Registry {
	reg := NewRegistry()
	for _, t := range Builtins() {
		cfg, err := NewConfig()
		if err != nil {
			// The default config is static; a failure here is a bug.
			panic(err)
		}
		if err := reg.Register(t.Name(), New(cfg, t, opts...)); err != nil {
			panic(err)
		}
	}
	return reg
}
