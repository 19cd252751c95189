package outline

import (
	"math"

	"github.com/gogpu/outline/material"
)

// Camera is the minimal perspective camera description needed to convert
// screen-space thickness to world units.
type Camera struct {
	Position material.Vec3
	Forward  material.Vec3

	// FovY is the vertical field of view in radians.
	FovY float64

	// PixelHeight is the viewport height in pixels.
	PixelHeight int
}

// WorldPerPixel approximates the world-space height of one pixel at the
// depth of point. It returns 0 for points on the camera plane.
func (c *Camera) WorldPerPixel(point material.Vec3) float64 {
	dist := math.Abs(point.Sub(c.Position).Dot(c.Forward.Normalize()))
	if dist < 1e-4 {
		return 0
	}
	return 2 * dist * math.Tan(c.FovY/2) / float64(max(1, c.PixelHeight))
}

// PixelToWorld converts a pixel thickness at point to world units. A nil
// camera yields 0.
func PixelToWorld(cam *Camera, point material.Vec3, pixels float64) float64 {
	if cam == nil {
		return 0
	}
	return pixels * cam.WorldPerPixel(point)
}

// InflatedBounds approximates the volume covered by the outline: b grown by
// the world-space thickness, or by the pixel thickness projected at the
// center of b.
func InflatedBounds(b material.Bounds, s Settings, cam *Camera) material.Bounds {
	var inflate float64
	if s.UseWorldSpaceThickness {
		inflate = s.ThicknessWorld
	} else {
		inflate = PixelToWorld(cam, b.Center, s.ThicknessPixels)
	}
	return b.Inflate(nonNegative(inflate))
}
