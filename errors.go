package outline

import (
	"errors"
	"log/slog"
)

// Sentinel errors reported by Service, Component and template resolution.
var (
	// ErrNilTarget is reported when an operation receives a nil target.
	ErrNilTarget = errors.New("outline: nil target")

	// ErrNilService is returned when a Component is built without a service.
	ErrNilService = errors.New("outline: nil service")

	// ErrNoTemplate is reported when the service has no usable template.
	ErrNoTemplate = errors.New("outline: no outline template")

	// ErrProgramNotFound is returned when the outline program cannot be
	// found by name in the shader registry.
	ErrProgramNotFound = errors.New("outline: outline program not found")

	// ErrNoMaterials is reported when Update finds an empty slot list.
	ErrNoMaterials = errors.New("outline: target has no materials")

	// ErrNotApplied is reported when Update finds no outline slot.
	ErrNotApplied = errors.New("outline: outline material not found on target")

	// ErrNoBackup is reported when Remove falls back to stripping the
	// trailing outline slot because no original slot list was recorded.
	ErrNoBackup = errors.New("outline: no original materials recorded")
)

// Kind classifies a reported error.
type Kind int

const (
	// KindUnknown is any error not defined by this package.
	KindUnknown Kind = iota

	// KindArgument marks invalid arguments such as a nil target.
	KindArgument

	// KindConfiguration marks a missing or invalid template. The operation
	// is aborted and the target is left unmodified.
	KindConfiguration

	// KindPrecondition marks an operation attempted on a target that is not
	// in the required state. The operation is aborted without mutation.
	KindPrecondition

	// KindState marks an ambiguous state resolved by a best-effort path.
	// A deliberate partial mutation was performed.
	KindState
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindConfiguration:
		return "configuration"
	case KindPrecondition:
		return "precondition"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Level returns the log level used for errors of this kind.
func (k Kind) Level() slog.Level {
	switch k {
	case KindPrecondition, KindState:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNilTarget), errors.Is(err, ErrNilService):
		return KindArgument
	case errors.Is(err, ErrNoTemplate), errors.Is(err, ErrProgramNotFound):
		return KindConfiguration
	case errors.Is(err, ErrNoMaterials), errors.Is(err, ErrNotApplied):
		return KindPrecondition
	case errors.Is(err, ErrNoBackup):
		return KindState
	default:
		return KindUnknown
	}
}
