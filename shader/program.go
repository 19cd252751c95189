package shader

import (
	_ "embed"
	"errors"
)

// OutlineProgramName is the name of the built-in per-object outline program.
const OutlineProgramName = "gogpu/effects/per_object_outline"

//go:embed outline.wgsl
var outlineSource string

// Sentinel errors for shader package.
var (
	// ErrEmptySource is returned when a program has no WGSL source.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrEmptyName is returned when a program is registered without a name.
	ErrEmptyName = errors.New("shader: empty program name")

	// ErrDuplicateProgram is returned when a program name is registered twice.
	ErrDuplicateProgram = errors.New("shader: program already registered")
)

// Program is a named WGSL shader program.
type Program struct {
	// Name is the stable identity of the program.
	Name string

	// Source is the WGSL source text.
	Source string
}

// Outline returns the built-in per-object outline program.
func Outline() *Program {
	return &Program{Name: OutlineProgramName, Source: outlineSource}
}
