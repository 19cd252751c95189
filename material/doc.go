// Package material models the drawable-resource side of a renderable object:
// materials, per-slot property blocks and the renderers that hold them.
//
// A [Renderer] owns an ordered list of material slots. Slots may be nil.
// Materials are shared by reference between renderers; per-renderer values
// travel in a [PropertyBlock] bound to one slot index, so a shared material
// never needs to be cloned to vary its parameters.
//
// Nothing in this package is safe for concurrent mutation. Renderers and
// materials are expected to be driven from a single frame loop.
package material
