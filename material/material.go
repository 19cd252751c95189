package material

import (
	"sort"

	"github.com/gogpu/outline/shader"
)

// Material binds a shader program to a set of feature keywords.
//
// Keywords are material-wide: every renderer that references the material
// sees the same keyword state.
type Material struct {
	// Name is a human-readable label.
	Name string

	program  *shader.Program
	keywords map[string]struct{}
}

// New creates a material for program. A nil program yields a material with
// an empty key that never matches another material.
func New(name string, program *shader.Program) *Material {
	return &Material{
		Name:     name,
		program:  program,
		keywords: make(map[string]struct{}),
	}
}

// Program returns the shader program, or nil.
func (m *Material) Program() *shader.Program {
	return m.program
}

// Key returns the identity of the material's effect: its program name.
// Two materials with equal non-empty keys render the same effect.
func (m *Material) Key() string {
	if m == nil || m.program == nil {
		return ""
	}
	return m.program.Name
}

// SameProgram reports whether a and b reference programs with the same name.
// Nil materials and materials without a program never match.
func SameProgram(a, b *Material) bool {
	ka, kb := a.Key(), b.Key()
	return ka != "" && ka == kb
}

// EnableKeyword turns a feature keyword on.
func (m *Material) EnableKeyword(keyword string) {
	if m.keywords == nil {
		m.keywords = make(map[string]struct{})
	}
	m.keywords[keyword] = struct{}{}
}

// DisableKeyword turns a feature keyword off.
func (m *Material) DisableKeyword(keyword string) {
	delete(m.keywords, keyword)
}

// SetKeyword enables or disables keyword.
func (m *Material) SetKeyword(keyword string, enabled bool) {
	if enabled {
		m.EnableKeyword(keyword)
	} else {
		m.DisableKeyword(keyword)
	}
}

// IsKeywordEnabled reports whether keyword is on.
func (m *Material) IsKeywordEnabled(keyword string) bool {
	_, ok := m.keywords[keyword]
	return ok
}

// Keywords returns the enabled keywords in sorted order.
func (m *Material) Keywords() []string {
	out := make([]string, 0, len(m.keywords))
	for k := range m.keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
