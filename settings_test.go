package outline

import (
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Color != (gputypes.Color{R: 1, G: 0.6, B: 0, A: 1}) {
		t.Errorf("Color = %v, want orange", s.Color)
	}
	if s.ThicknessPixels != 2 {
		t.Errorf("ThicknessPixels = %v, want 2", s.ThicknessPixels)
	}
	if s.UseWorldSpaceThickness {
		t.Error("default thickness domain should be screen space")
	}
	if s.DepthCompare != gputypes.CompareFunctionLessEqual {
		t.Errorf("DepthCompare = %v, want LessEqual", s.DepthCompare)
	}
	if s.DepthWrite {
		t.Error("DepthWrite should be off")
	}
	if s.CullMode != gputypes.CullModeFront {
		t.Errorf("CullMode = %v, want Front", s.CullMode)
	}
	if s.UseFresnel || s.UsePulse {
		t.Error("fresnel and pulse should be off")
	}
	if s.Clamp() != s {
		t.Error("defaults must already be in range")
	}
}

func TestSettingsClamp(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name  string
		in    float64
		field func(*Settings) *float64
		want  float64
	}{
		{"negative px", -1, func(s *Settings) *float64 { return &s.ThicknessPixels }, 0},
		{"large px", 40, func(s *Settings) *float64 { return &s.ThicknessPixels }, 40},
		{"negative world", -0.5, func(s *Settings) *float64 { return &s.ThicknessWorld }, 0},
		{"nan world", nan, func(s *Settings) *float64 { return &s.ThicknessWorld }, 0},
		{"negative power", -2, func(s *Settings) *float64 { return &s.FresnelPower }, 0},
		{"inf power", inf, func(s *Settings) *float64 { return &s.FresnelPower }, inf},
		{"alpha below", -0.1, func(s *Settings) *float64 { return &s.Alpha }, 0},
		{"alpha above", 1.5, func(s *Settings) *float64 { return &s.Alpha }, 1},
		{"alpha inside", 0.25, func(s *Settings) *float64 { return &s.Alpha }, 0.25},
		{"alpha nan", nan, func(s *Settings) *float64 { return &s.Alpha }, 0},
		{"softness above", 7, func(s *Settings) *float64 { return &s.EdgeSoftness }, 1},
		{"softness below", -7, func(s *Settings) *float64 { return &s.EdgeSoftness }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			*tt.field(&s) = tt.in
			got := s.Clamp()
			if v := *tt.field(&got); v != tt.want {
				t.Errorf("clamped = %v, want %v", v, tt.want)
			}
		})
	}
}

func TestSettingsClampPassThrough(t *testing.T) {
	s := Settings{
		Color:          gputypes.Color{R: 8, G: -1, B: 0.5, A: 2},
		FresnelBias:    -4,
		PulseAmplitude: -3,
		PulseSpeed:     100,
		DepthCompare:   gputypes.CompareFunctionAlways,
		CullMode:       gputypes.CullModeNone,
		Alpha:          1,
	}
	if got := s.Clamp(); got != s {
		t.Errorf("Clamp() changed pass-through fields: %+v", got)
	}
}

func TestSettingsClampLaw(t *testing.T) {
	inputs := []float64{math.Inf(-1), -1e9, -1, -1e-9, 0, 1e-9, 0.5, 1, 1 + 1e-9, 2, 1e9, math.Inf(1), math.NaN()}
	for _, v := range inputs {
		s := Settings{
			ThicknessPixels: v,
			ThicknessWorld:  v,
			Alpha:           v,
			FresnelPower:    v,
			EdgeSoftness:    v,
		}.Clamp()

		if !(s.ThicknessPixels >= 0) || !(s.ThicknessWorld >= 0) || !(s.FresnelPower >= 0) {
			t.Errorf("input %v: non-negative fields violated: %+v", v, s)
		}
		if !(s.Alpha >= 0 && s.Alpha <= 1) || !(s.EdgeSoftness >= 0 && s.EdgeSoftness <= 1) {
			t.Errorf("input %v: unit fields violated: %+v", v, s)
		}
	}
}

func TestSettingsThicknessDomain(t *testing.T) {
	s := DefaultSettings()
	if s.Thickness() != 2 {
		t.Errorf("Thickness() = %v, want 2 (pixels)", s.Thickness())
	}

	s = s.WithThickness(5)
	if s.ThicknessPixels != 5 || s.ThicknessWorld != 0.01 {
		t.Errorf("WithThickness in pixel domain: px=%v world=%v", s.ThicknessPixels, s.ThicknessWorld)
	}

	s.UseWorldSpaceThickness = true
	s = s.WithThickness(-1)
	if s.ThicknessWorld != 0 || s.ThicknessPixels != 5 {
		t.Errorf("WithThickness in world domain: px=%v world=%v", s.ThicknessPixels, s.ThicknessWorld)
	}
	if s.Thickness() != 0 {
		t.Errorf("Thickness() = %v, want 0 (world)", s.Thickness())
	}
}
