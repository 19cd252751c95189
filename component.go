package outline

import "github.com/gogpu/gputypes"

// Component is the per-object façade over a Service. It owns the outline
// settings of one target and remembers whether the outline is applied, so it
// never asks the service to update or remove an outline it did not apply.
type Component struct {
	// Settings are the raw per-instance values. They are clamped each time
	// they are pushed to the service.
	Settings Settings

	// ApplyOnStart makes Start apply the outline.
	ApplyOnStart bool

	target  Target
	service *Service
	applied bool
}

// ComponentOption configures a Component during creation.
type ComponentOption func(*Component)

// WithSettings sets the initial settings. The default is DefaultSettings.
func WithSettings(s Settings) ComponentOption {
	return func(c *Component) {
		c.Settings = s
	}
}

// WithApplyOnStart controls whether Start applies the outline. Default true.
func WithApplyOnStart(v bool) ComponentOption {
	return func(c *Component) {
		c.ApplyOnStart = v
	}
}

// NewComponent creates a component for target driven by svc.
func NewComponent(target Target, svc *Service, opts ...ComponentOption) (*Component, error) {
	if isNil(target) {
		return nil, ErrNilTarget
	}
	if svc == nil {
		return nil, ErrNilService
	}

	c := &Component{
		Settings:     DefaultSettings(),
		ApplyOnStart: true,
		target:       target,
		service:      svc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Target returns the component's target.
func (c *Component) Target() Target { return c.target }

// IsApplied reports whether the outline is currently applied.
func (c *Component) IsApplied() bool { return c.applied }

// Start applies the outline if ApplyOnStart is set.
func (c *Component) Start() {
	if c.ApplyOnStart {
		c.Apply()
	}
}

// BuildSettings returns a clamped snapshot of the current settings.
func (c *Component) BuildSettings() Settings {
	return c.Settings.Clamp()
}

// Apply applies the outline. It does nothing when already applied.
func (c *Component) Apply() {
	if c.applied {
		return
	}
	c.service.Apply(c.target, c.BuildSettings())
	c.applied = true
}

// Remove removes the outline. It does nothing when not applied.
func (c *Component) Remove() {
	if !c.applied {
		return
	}
	c.service.Remove(c.target)
	c.applied = false
}

// Refresh pushes the current settings without touching the slot list.
// It does nothing when not applied.
func (c *Component) Refresh() {
	if !c.applied {
		return
	}
	c.service.Update(c.target, c.BuildSettings())
}

// Toggle applies the outline if it is off and removes it if it is on.
func (c *Component) Toggle() {
	if c.applied {
		c.Remove()
	} else {
		c.Apply()
	}
}

// SetColor sets the outline color and refreshes.
func (c *Component) SetColor(col gputypes.Color) {
	c.Settings.Color = col
	c.Refresh()
}

// SetThickness sets the thickness of the active domain (world units or
// pixels) and refreshes. Negative values become 0.
func (c *Component) SetThickness(v float64) {
	c.Settings = c.Settings.WithThickness(v)
	c.Refresh()
}
