package material

// Renderer is a renderable object: an ordered list of material slots, the
// property blocks bound to those slots, and a world-space bounding box.
type Renderer struct {
	name   string
	slots  []*Material
	blocks map[int]*PropertyBlock
	bounds Bounds
}

// NewRenderer creates a renderer with the given slots. The slice is copied.
func NewRenderer(name string, bounds Bounds, slots ...*Material) *Renderer {
	return &Renderer{
		name:   name,
		slots:  append([]*Material(nil), slots...),
		blocks: make(map[int]*PropertyBlock),
		bounds: bounds,
	}
}

// Name returns the renderer name, or "" for a nil renderer.
func (r *Renderer) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Bounds returns the world-space bounding box.
func (r *Renderer) Bounds() Bounds {
	if r == nil {
		return Bounds{}
	}
	return r.bounds
}

// SetBounds replaces the bounding box.
func (r *Renderer) SetBounds(b Bounds) { r.bounds = b }

// SharedMaterials returns a copy of the slot list. A nil renderer has no slots.
func (r *Renderer) SharedMaterials() []*Material {
	if r == nil {
		return nil
	}
	return append([]*Material(nil), r.slots...)
}

// SetSharedMaterials replaces the slot list with a copy of mats.
// Property blocks bound to indices past the new end are dropped.
func (r *Renderer) SetSharedMaterials(mats []*Material) {
	if r == nil {
		return
	}
	r.slots = append([]*Material(nil), mats...)
	for i := range r.blocks {
		if i >= len(r.slots) {
			delete(r.blocks, i)
		}
	}
}

// SetPropertyBlock binds a copy of block to slot index. A nil block clears
// the binding. Out-of-range indices are ignored.
func (r *Renderer) SetPropertyBlock(block *PropertyBlock, index int) {
	if r == nil || index < 0 || index >= len(r.slots) {
		return
	}
	if block == nil {
		delete(r.blocks, index)
		return
	}
	dst, ok := r.blocks[index]
	if !ok {
		dst = NewPropertyBlock()
		r.blocks[index] = dst
	}
	dst.CopyFrom(block)
}

// PropertyBlock returns a copy of the block bound to slot index.
func (r *Renderer) PropertyBlock(index int) (*PropertyBlock, bool) {
	if r == nil {
		return nil, false
	}
	b, ok := r.blocks[index]
	if !ok {
		return nil, false
	}
	return b.Clone(), true
}

// HasPropertyBlock reports whether any block is bound to slot index.
func (r *Renderer) HasPropertyBlock(index int) bool {
	if r == nil {
		return false
	}
	_, ok := r.blocks[index]
	return ok
}
