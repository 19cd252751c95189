package outline

import "github.com/gogpu/outline/material"

// Property names written to the outline slot's property block.
const (
	PropColor           = "outline_color"
	PropThicknessPixels = "outline_thickness"
	PropThicknessWorld  = "world_thickness"
	PropAlpha           = "alpha"
	PropDepthCompare    = "depth_compare"
	PropDepthWrite      = "depth_write"
	PropCullMode        = "cull_mode"
	PropFresnelPower    = "fresnel_power"
	PropFresnelBias     = "fresnel_bias"
	PropPulseAmplitude  = "pulse_amplitude"
	PropPulseSpeed      = "pulse_speed"
	PropEdgeSoftness    = "edge_softness"
)

// Feature keywords toggled on the shared template.
const (
	KeywordWorldSpace = "OUTLINE_WORLD_SPACE"
	KeywordFresnel    = "OUTLINE_FRESNEL"
	KeywordPulse      = "OUTLINE_PULSE"
)

// cacheEntry is the reusable parameter carrier for one target.
type cacheEntry struct {
	block    *material.PropertyBlock
	index    int
	settings Settings
}

// parameterCache keeps one cacheEntry per target so that per-frame updates
// reuse the same property block. Entries are created lazily and dropped only
// when an outline is removed.
type parameterCache struct {
	entries map[Target]*cacheEntry
}

func newParameterCache() parameterCache {
	return parameterCache{entries: make(map[Target]*cacheEntry)}
}

// entry returns the entry for t, creating it on first use.
func (c *parameterCache) entry(t Target) *cacheEntry {
	e, ok := c.entries[t]
	if !ok {
		e = &cacheEntry{block: material.NewPropertyBlock(), index: -1}
		c.entries[t] = e
	}
	return e
}

func (c *parameterCache) lookup(t Target) (*cacheEntry, bool) {
	e, ok := c.entries[t]
	return e, ok
}

func (c *parameterCache) drop(t Target) {
	delete(c.entries, t)
}

func (c *parameterCache) len() int {
	return len(c.entries)
}

// push writes s into the entry's block and records the slot index.
func (e *cacheEntry) push(s Settings, index int) {
	s = s.Clamp()
	e.settings = s
	e.index = index

	b := e.block
	b.SetColor(PropColor, s.Color)
	b.SetFloat(PropThicknessPixels, float32(s.ThicknessPixels))
	b.SetFloat(PropThicknessWorld, float32(s.ThicknessWorld))
	b.SetFloat(PropAlpha, float32(s.Alpha))
	b.SetFloat(PropDepthCompare, float32(s.DepthCompare))
	b.SetFloat(PropDepthWrite, boolFloat(s.DepthWrite))
	b.SetFloat(PropCullMode, float32(s.CullMode))
	b.SetFloat(PropFresnelPower, float32(s.FresnelPower))
	b.SetFloat(PropFresnelBias, float32(s.FresnelBias))
	b.SetFloat(PropPulseAmplitude, float32(s.PulseAmplitude))
	b.SetFloat(PropPulseSpeed, float32(s.PulseSpeed))
	b.SetFloat(PropEdgeSoftness, float32(s.EdgeSoftness))
}

// setKeywords mirrors the feature toggles of s onto the shared template.
func setKeywords(m *material.Material, s Settings) {
	if m == nil {
		return
	}
	m.SetKeyword(KeywordWorldSpace, s.UseWorldSpaceThickness)
	m.SetKeyword(KeywordFresnel, s.UseFresnel)
	m.SetKeyword(KeywordPulse, s.UsePulse)
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
