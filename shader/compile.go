package shader

import (
	"fmt"

	"github.com/gogpu/naga"
)

// Compile compiles WGSL source to SPIR-V words.
func Compile(source string) ([]uint32, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return words, nil
}
