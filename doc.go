// Package outline attaches an outline overlay to renderable objects without
// cloning or permanently changing their materials.
//
// # Overview
//
// A [Service] owns one shared outline template material. Applying an outline
// to a [Target] appends the template as an extra material slot and binds a
// property block carrying the per-target [Settings] to that slot. Removing it
// restores the exact slot list the target had before the first Apply.
//
//	reg := shader.NewRegistry()
//	svc := outline.DefaultConfig().NewService(reg)
//
//	cube := material.NewRenderer("cube", bounds, baseMaterial)
//	svc.Apply(cube, outline.DefaultSettings())   // slots: [base, outline]
//	svc.Update(cube, highlighted)                // values only
//	svc.Remove(cube)                             // slots: [base]
//
// Most callers use a [Component], which tracks whether its target currently
// carries an outline and rebuilds settings from its own fields.
//
// # Shared template state
//
// Feature keywords (world-space thickness, fresnel, pulse) live on the
// template material and are therefore shared by every outlined target.
// The last Apply or Update wins. Per-target values such as color and
// thickness live in property blocks and are not shared.
//
// # Failure reporting
//
// Apply, Update and Remove never return errors and never panic on bad state.
// Problems are reported through the package logger (see [SetLogger]) with an
// "err" attribute holding one of the sentinel errors in this package; the
// target is left in a well-defined state described on each method.
//
// # Concurrency
//
// A Service is not safe for concurrent use. It is meant to be driven from a
// single frame loop, with one owner per target.
package outline
