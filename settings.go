package outline

import "github.com/gogpu/gputypes"

// Settings describes the look of one outline instance.
//
// Settings is a value type; services copy it on every call. Use [Settings.Clamp]
// to normalize raw input, or start from [DefaultSettings].
type Settings struct {
	// Color is the outline color in linear space. Components above 1 are
	// allowed for HDR output.
	Color gputypes.Color

	// ThicknessPixels is the thickness in screen pixels, used when
	// UseWorldSpaceThickness is false.
	ThicknessPixels float64

	// ThicknessWorld is the thickness in world units, used when
	// UseWorldSpaceThickness is true.
	ThicknessWorld float64

	// UseWorldSpaceThickness selects ThicknessWorld over ThicknessPixels.
	UseWorldSpaceThickness bool

	// Alpha multiplies the outline opacity, in [0, 1].
	Alpha float64

	// DepthCompare is the depth test of the outline pass.
	DepthCompare gputypes.CompareFunction

	// DepthWrite enables depth writes from the outline pass.
	DepthWrite bool

	// CullMode selects culled faces. Front culling yields a silhouette.
	CullMode gputypes.CullMode

	// UseFresnel enables the fresnel rim term.
	UseFresnel bool

	// FresnelPower sharpens the rim; higher is sharper. Never negative.
	FresnelPower float64

	// FresnelBias is the baseline rim intensity.
	FresnelBias float64

	// UsePulse enables pulsating intensity.
	UsePulse bool

	// PulseAmplitude scales the pulse.
	PulseAmplitude float64

	// PulseSpeed is the pulse frequency factor.
	PulseSpeed float64

	// EdgeSoftness fades alpha by the rim factor, in [0, 1].
	EdgeSoftness float64
}

// DefaultColor is the default outline color (orange).
var DefaultColor = gputypes.Color{R: 1, G: 0.6, B: 0, A: 1}

// DefaultSettings returns settings suitable for most objects: a 2 px orange
// silhouette with LessEqual depth testing, no depth writes and front-face
// culling. Fresnel and pulse are off.
func DefaultSettings() Settings {
	return Settings{
		Color:           DefaultColor,
		ThicknessPixels: 2,
		ThicknessWorld:  0.01,
		Alpha:           1,
		DepthCompare:    gputypes.CompareFunctionLessEqual,
		DepthWrite:      false,
		CullMode:        gputypes.CullModeFront,
		FresnelPower:    3,
		FresnelBias:     0,
		PulseAmplitude:  0.2,
		PulseSpeed:      3,
		EdgeSoftness:    0,
	}
}

// Clamp returns a copy of s with every range-limited field forced into range:
// thicknesses and fresnel power are at least 0, alpha and edge softness lie
// in [0, 1]. NaN becomes 0. Color, bias, pulse and pipeline state pass
// through unchanged.
func (s Settings) Clamp() Settings {
	s.ThicknessPixels = nonNegative(s.ThicknessPixels)
	s.ThicknessWorld = nonNegative(s.ThicknessWorld)
	s.FresnelPower = nonNegative(s.FresnelPower)
	s.Alpha = unit(s.Alpha)
	s.EdgeSoftness = unit(s.EdgeSoftness)
	return s
}

// Thickness returns the thickness of the active domain.
func (s Settings) Thickness() float64 {
	if s.UseWorldSpaceThickness {
		return s.ThicknessWorld
	}
	return s.ThicknessPixels
}

// WithThickness returns a copy of s with the active domain's thickness set
// to v, clamped to at least 0.
func (s Settings) WithThickness(v float64) Settings {
	if s.UseWorldSpaceThickness {
		s.ThicknessWorld = nonNegative(v)
	} else {
		s.ThicknessPixels = nonNegative(v)
	}
	return s
}

func nonNegative(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	return v
}

func unit(v float64) float64 {
	switch {
	case !(v >= 0):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
