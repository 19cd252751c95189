// Package shader holds the shader programs that outline materials reference.
//
// A [Program] is identified by its name. Materials compare programs by name
// rather than by pointer, so two materials built from different Program
// values with the same name are considered the same effect.
//
// The package ships one built-in program, the per-object outline pass, under
// [OutlineProgramName]. [NewRegistry] returns a registry preloaded with it;
// callers that cannot supply an outline template from configuration look it
// up there by name.
package shader
