// Package preview draws a top-down debug view of outlined targets with gg.
//
// Each target is drawn as its bounding box projected onto the XY plane.
// Targets that carry an outline get a stroked rectangle around the box whose
// width and color follow their outline settings.
package preview

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/material"
)

// Default colors.
var (
	Background = gg.RGB(0.1, 0.1, 0.12)
	BoxColor   = gg.RGB(0.6, 0.6, 0.6)
)

// View maps world XY coordinates to image pixels.
type View struct {
	Width, Height int

	// Scale is the number of pixels per world unit.
	Scale float64

	// Origin is the world point drawn at the image center.
	Origin material.Vec3
}

// Project converts a world point to pixel coordinates. Y grows downward.
func (v View) Project(p material.Vec3) (x, y float64) {
	x = (p.X-v.Origin.X)*v.Scale + float64(v.Width)/2
	y = float64(v.Height)/2 - (p.Y-v.Origin.Y)*v.Scale
	return x, y
}

// Item is one target to draw.
type Item struct {
	Bounds   material.Bounds
	Settings outline.Settings
	Applied  bool
}

// ItemFor snapshots a component. The target must expose its bounds.
func ItemFor(c *outline.Component, b material.Bounds) Item {
	return Item{
		Bounds:   b,
		Settings: c.BuildSettings(),
		Applied:  c.IsApplied(),
	}
}

// Render draws items into a new context of the view's size.
func Render(v View, items []Item) (*gg.Context, error) {
	dc := gg.NewContext(v.Width, v.Height)
	if err := Draw(dc, v, items); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Draw clears dc and draws items in order.
func Draw(dc *gg.Context, v View, items []Item) error {
	dc.ClearWithColor(Background)

	for _, it := range items {
		x0, y0 := v.Project(material.Vec3{X: it.Bounds.Min().X, Y: it.Bounds.Max().Y})
		x1, y1 := v.Project(material.Vec3{X: it.Bounds.Max().X, Y: it.Bounds.Min().Y})

		dc.SetRGBA(BoxColor.R, BoxColor.G, BoxColor.B, BoxColor.A)
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		if err := dc.Fill(); err != nil {
			return err
		}

		if !it.Applied {
			continue
		}
		if err := drawOutline(dc, v, x0, y0, x1, y1, it.Settings.Clamp()); err != nil {
			return err
		}
	}
	return nil
}

// drawOutline strokes a rectangle around the box, centered on the outline
// band so that its inner edge touches the box.
func drawOutline(dc *gg.Context, v View, x0, y0, x1, y1 float64, s outline.Settings) error {
	px := s.ThicknessPixels
	if s.UseWorldSpaceThickness {
		px = s.ThicknessWorld * v.Scale
	}
	if px <= 0 {
		return nil
	}

	c := s.Color
	half := px / 2
	dc.SetRGBA(c.R, c.G, c.B, c.A*s.Alpha)
	dc.SetLineWidth(px)
	dc.DrawRectangle(x0-half, y0-half, x1-x0+px, y1-y0+px)
	return dc.Stroke()
}
