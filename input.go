package outline

import "math"

// moveDeadZone is the axis magnitude below which move input is ignored.
const moveDeadZone = 1e-6

// InputHandler maps input actions onto a Component: a toggle action and a
// vertical axis that grows or shrinks the outline thickness.
type InputHandler struct {
	// Target is the component being controlled. A nil target ignores input.
	Target *Component

	// ThicknessStep is the thickness change per unit of axis input, scaled
	// to a 60 Hz frame.
	ThicknessStep float64
}

// NewInputHandler creates a handler for c with a step of 1.
func NewInputHandler(c *Component) *InputHandler {
	return &InputHandler{Target: c, ThicknessStep: 1}
}

// OnToggle toggles the outline when the action was performed.
func (h *InputHandler) OnToggle(performed bool) {
	if !performed || h.Target == nil {
		return
	}
	h.Target.Toggle()
	Logger().Debug("outline: toggle", "target", h.Target.Target().Name(),
		"applied", h.Target.IsApplied())
}

// OnMove adjusts the thickness of the active domain by y * step * dt * 60.
// Positive y grows the outline. The result never drops below 0.
func (h *InputHandler) OnMove(y, dt float64) {
	if h.Target == nil || math.Abs(y) < moveDeadZone {
		return
	}

	delta := y * h.ThicknessStep * dt * 60
	updated := math.Max(0, h.Target.Settings.Thickness()+delta)
	h.Target.SetThickness(updated)
	Logger().Debug("outline: thickness", "target", h.Target.Target().Name(),
		"y", y, "thickness", updated)
}
