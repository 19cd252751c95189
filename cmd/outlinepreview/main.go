// Command outlinepreview builds a small scene of outlined objects, drives
// their outline components through a few interactions and writes a top-down
// PNG preview.
//
// Outline defaults can be overridden through OUTLINE_* environment variables:
//
//	OUTLINE_COLOR=#33ccff OUTLINE_THICKNESS=4 outlinepreview -output scene.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/material"
	"github.com/gogpu/outline/preview"
	"github.com/gogpu/outline/shader"
)

// envConfig holds environment overrides for the default outline settings.
type envConfig struct {
	Color          string  `env:"COLOR" envDefault:"#ff9900"`
	Thickness      float64 `env:"THICKNESS" envDefault:"2"`
	WorldThickness float64 `env:"WORLD_THICKNESS" envDefault:"0.01"`
	WorldSpace     bool    `env:"WORLD_SPACE" envDefault:"false"`
	Alpha          float64 `env:"ALPHA" envDefault:"1"`
	Fresnel        bool    `env:"FRESNEL" envDefault:"false"`
	Pulse          bool    `env:"PULSE" envDefault:"false"`
	Debug          bool    `env:"DEBUG" envDefault:"false"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "OUTLINE_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// settings applies the overrides on top of the default settings.
func (e envConfig) settings() outline.Settings {
	s := outline.DefaultSettings()
	c := gg.Hex(e.Color)
	s.Color = gputypes.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	s.ThicknessPixels = e.Thickness
	s.ThicknessWorld = e.WorldThickness
	s.UseWorldSpaceThickness = e.WorldSpace
	s.Alpha = e.Alpha
	s.UseFresnel = e.Fresnel
	s.UsePulse = e.Pulse
	return s.Clamp()
}

func main() {
	var (
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 400, "image height")
		scale  = flag.Float64("scale", 40, "pixels per world unit")
		output = flag.String("output", "outline.png", "output file")
	)
	flag.Parse()

	ec, err := loadEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level := slog.LevelInfo
	if ec.Debug {
		level = slog.LevelDebug
	}
	outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	reg := shader.NewRegistry()
	if _, err := reg.SPIRV(shader.OutlineProgramName); err != nil {
		// The preview does not need the compiled program; report and go on.
		outline.Logger().Warn("outline program failed to compile", "err", err)
	}

	cfg := outline.DefaultConfig()
	cfg.DefaultSettings = ec.settings()
	svc := cfg.NewService(reg)

	components, targets := buildScene(svc, cfg)
	interact(components)

	items := make([]preview.Item, 0, len(components))
	for i, c := range components {
		items = append(items, preview.ItemFor(c, targets[i].Bounds()))
	}

	view := preview.View{Width: *width, Height: *height, Scale: *scale}
	dc, err := preview.Render(view, items)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	defer func() { _ = dc.Close() }()

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	for i, c := range components {
		outline.Logger().Info("target", "name", targets[i].Name(),
			"applied", c.IsApplied(), "slots", len(targets[i].SharedMaterials()))
	}
	log.Printf("Preview saved to %s (%dx%d)\n", *output, *width, *height)
}

// buildScene creates a row of crates sharing one base material.
func buildScene(svc *outline.Service, cfg *outline.Config) ([]*outline.Component, []*material.Renderer) {
	lit := &shader.Program{Name: "preview/lit", Source: "// flat lit"}
	base := material.New("crate", lit)
	trim := material.New("crate trim", lit)

	var (
		components []*outline.Component
		targets    []*material.Renderer
	)
	for i := range 4 {
		b := material.Bounds{
			Center: material.Vec3{X: float64(i)*2.5 - 3.75},
			Size:   material.Vec3{X: 1.5, Y: 1.5 + 0.5*float64(i), Z: 1.5},
		}
		r := material.NewRenderer(fmt.Sprintf("crate-%d", i), b, base, trim)
		c, err := outline.NewComponent(r, svc, outline.WithSettings(cfg.DefaultSettings))
		if err != nil {
			log.Fatalf("Failed to create component: %v", err)
		}
		c.Start()
		components = append(components, c)
		targets = append(targets, r)
	}
	return components, targets
}

// interact exercises the outline lifecycle the way input events would.
func interact(components []*outline.Component) {
	toggle := outline.NewInputHandler(components[1])
	toggle.OnToggle(true)

	grow := outline.NewInputHandler(components[2])
	for range 10 {
		grow.OnMove(1, 1.0/60)
	}

	components[3].SetColor(gputypes.Color{R: 0.2, G: 0.8, B: 1, A: 1})
}
