package shader

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps program names to programs and memoizes their compiled
// SPIR-V. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	programs map[string]*Program
	spirv    map[string][]uint32
}

// NewRegistry creates a registry preloaded with the built-in outline program.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	p := Outline()
	r.programs[p.Name] = p
	return r
}

// NewEmptyRegistry creates a registry with no programs.
func NewEmptyRegistry() *Registry {
	return &Registry{
		programs: make(map[string]*Program),
		spirv:    make(map[string][]uint32),
	}
}

// Register adds a program. Names must be unique within a registry.
func (r *Registry) Register(p *Program) error {
	if p == nil || p.Name == "" {
		return ErrEmptyName
	}
	if p.Source == "" {
		return fmt.Errorf("%w: %q", ErrEmptySource, p.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.programs[p.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProgram, p.Name)
	}
	r.programs[p.Name] = p
	return nil
}

// Find returns the program registered under name.
func (r *Registry) Find(name string) (*Program, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.programs[name]
	return p, ok
}

// Names returns the registered program names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SPIRV returns the compiled SPIR-V for the named program, compiling it on
// first use. Failed compilations are not cached.
func (r *Registry) SPIRV(name string) ([]uint32, error) {
	r.mu.RLock()
	words, ok := r.spirv[name]
	p, found := r.programs[name]
	r.mu.RUnlock()
	if ok {
		return words, nil
	}
	if !found {
		return nil, fmt.Errorf("shader: program %q not registered", name)
	}

	words, err := Compile(p.Source)
	if err != nil {
		return nil, fmt.Errorf("shader: %q: %w", name, err)
	}

	r.mu.Lock()
	// Another goroutine may have compiled it meanwhile; keep the first result.
	if cached, ok := r.spirv[name]; ok {
		words = cached
	} else {
		r.spirv[name] = words
	}
	r.mu.Unlock()

	return words, nil
}
