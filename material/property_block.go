package material

import "github.com/gogpu/gputypes"

// PropertyBlock carries per-renderer shader values for one material slot.
// The zero value is not usable; create blocks with NewPropertyBlock.
type PropertyBlock struct {
	colors map[string]gputypes.Color
	floats map[string]float32
}

// NewPropertyBlock creates an empty property block.
func NewPropertyBlock() *PropertyBlock {
	return &PropertyBlock{
		colors: make(map[string]gputypes.Color),
		floats: make(map[string]float32),
	}
}

// SetColor stores a color property.
func (b *PropertyBlock) SetColor(name string, c gputypes.Color) {
	b.colors[name] = c
}

// SetFloat stores a float property.
func (b *PropertyBlock) SetFloat(name string, v float32) {
	b.floats[name] = v
}

// Color returns a color property.
func (b *PropertyBlock) Color(name string) (gputypes.Color, bool) {
	c, ok := b.colors[name]
	return c, ok
}

// Float returns a float property.
func (b *PropertyBlock) Float(name string) (float32, bool) {
	v, ok := b.floats[name]
	return v, ok
}

// Len returns the number of stored properties.
func (b *PropertyBlock) Len() int {
	return len(b.colors) + len(b.floats)
}

// IsEmpty reports whether the block holds no properties.
func (b *PropertyBlock) IsEmpty() bool {
	return b.Len() == 0
}

// Clear removes all properties, keeping the allocated maps.
func (b *PropertyBlock) Clear() {
	clear(b.colors)
	clear(b.floats)
}

// CopyFrom replaces the contents of b with those of src.
func (b *PropertyBlock) CopyFrom(src *PropertyBlock) {
	b.Clear()
	for k, v := range src.colors {
		b.colors[k] = v
	}
	for k, v := range src.floats {
		b.floats[k] = v
	}
}

// Clone returns a deep copy of b.
func (b *PropertyBlock) Clone() *PropertyBlock {
	c := NewPropertyBlock()
	c.CopyFrom(b)
	return c
}
