package outline

import (
	"fmt"

	"github.com/gogpu/outline/material"
	"github.com/gogpu/outline/shader"
)

// RuntimeTemplateName names templates built by ResolveTemplate when the
// configuration does not provide one.
const RuntimeTemplateName = "Outline (Runtime Template)"

// Config holds project-wide outline defaults.
type Config struct {
	// DefaultSettings seeds components that do not override their settings.
	DefaultSettings Settings

	// Template is the shared outline material. When nil, the template is
	// built from the outline program found in a shader registry.
	Template *material.Material
}

// DefaultConfig returns a config with DefaultSettings and no template.
func DefaultConfig() *Config {
	return &Config{DefaultSettings: DefaultSettings()}
}

// ResolveTemplate returns the outline template for cfg.
//
// A template set on cfg wins. Otherwise the outline program is looked up by
// name in reg and wrapped in a new material named RuntimeTemplateName.
// ErrProgramNotFound is returned when neither source yields a template.
func ResolveTemplate(cfg *Config, reg *shader.Registry) (*material.Material, error) {
	if cfg != nil && cfg.Template != nil {
		return cfg.Template, nil
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: no shader registry", ErrProgramNotFound)
	}

	p, ok := reg.Find(shader.OutlineProgramName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProgramNotFound, shader.OutlineProgramName)
	}
	return material.New(RuntimeTemplateName, p), nil
}

// NewService resolves the template and creates a service around it.
// If no template can be resolved the error is logged and a degraded service
// is returned.
func (c *Config) NewService(reg *shader.Registry, opts ...ServiceOption) *Service {
	tmpl, err := ResolveTemplate(c, reg)
	svc := NewService(tmpl, opts...)
	if err != nil {
		svc.report("resolve template", nil, err)
	}
	return svc
}
