package outline

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/gogpu/outline/material"
)

// Target is a renderable object that can carry an outline.
//
// The service only reads and replaces the slot list and binds property
// blocks; it never creates or destroys targets. Targets are used as map keys,
// so implementations must be comparable (pointer receivers are typical).
// [material.Renderer] implements Target.
type Target interface {
	// Name identifies the target in log output.
	Name() string

	// SharedMaterials returns a copy of the ordered slot list.
	SharedMaterials() []*material.Material

	// SetSharedMaterials replaces the slot list.
	SetSharedMaterials(mats []*material.Material)

	// SetPropertyBlock binds a copy of block to slot index.
	SetPropertyBlock(block *material.PropertyBlock, index int)
}

// Service applies and removes outlines.
//
// The service records each target's original slot list on the first Apply
// and restores it verbatim on Remove. Repeated Apply calls never overwrite
// that record. The outline slot is always appended after every existing slot
// and is found again by program name, not by pointer.
//
// The template's feature keywords are shared by every target: the last Apply
// or Update decides them for all. Per-target values are kept in a
// per-target property block that is reused across calls.
//
// Service is not safe for concurrent use.
type Service struct {
	template  *material.Material
	originals map[Target][]*material.Material
	params    parameterCache
	logger    *slog.Logger
}

// ServiceOption configures a Service during creation.
type ServiceOption func(*Service)

// WithLogger sets the logger used for reports. By default the service uses
// the package logger returned by [Logger] at report time.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a service around the shared outline template.
//
// A nil template, or one without a program, yields a degraded service: every
// Apply and Update reports [ErrNoTemplate] and leaves the target untouched.
func NewService(template *material.Material, opts ...ServiceOption) *Service {
	s := &Service{
		template:  template,
		originals: make(map[Target][]*material.Material),
		params:    newParameterCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Template returns the shared outline template, or nil for a degraded service.
func (s *Service) Template() *material.Material {
	return s.template
}

// Degraded reports whether the service lacks a usable template.
func (s *Service) Degraded() bool {
	return s.template.Key() == ""
}

// Apply makes target carry an outline drawn with settings.
//
// The first Apply for a target records its slot list. If no slot already
// references the outline program, the template is appended as a new last
// slot; otherwise the slot list is left as is. The settings are then bound to
// the outline slot and the template keywords are updated.
//
// Apply on a degraded service reports [ErrNoTemplate] and changes nothing.
func (s *Service) Apply(target Target, settings Settings) {
	if isNil(target) {
		s.report("apply", nil, ErrNilTarget)
		return
	}
	if s.Degraded() {
		s.report("apply", target, ErrNoTemplate)
		return
	}

	if _, ok := s.originals[target]; !ok {
		s.originals[target] = target.SharedMaterials()
	}

	mats := target.SharedMaterials()
	index := s.indexOf(mats)
	if index < 0 {
		mats = append(mats, s.template)
		target.SetSharedMaterials(mats)
		index = len(mats) - 1
		s.log().Debug("outline: added outline material",
			"target", target.Name(), "slot", index)
	}

	s.push(target, index, settings)
}

// Update pushes new settings to a target that already carries an outline.
// The slot list is never changed.
//
// Update reports [ErrNoMaterials] when the target has no slots and
// [ErrNotApplied] when no slot references the outline program; in both cases
// nothing is changed. A nil target is ignored.
func (s *Service) Update(target Target, settings Settings) {
	if isNil(target) {
		return
	}
	if s.Degraded() {
		s.report("update", target, ErrNoTemplate)
		return
	}

	mats := target.SharedMaterials()
	if len(mats) == 0 {
		s.report("update", target, ErrNoMaterials)
		return
	}

	index := s.indexOf(mats)
	if index < 0 {
		s.report("update", target, ErrNotApplied)
		return
	}

	s.push(target, index, settings)
}

// Remove takes the outline off target.
//
// When the original slot list was recorded by Apply, it is restored verbatim
// and the record and cached parameters are discarded. If Apply reused an
// outline slot that sits inside the restored list, the property block bound
// to it is unbound as well; a block bound there before the first Apply is
// not brought back. Otherwise, if the last
// slot references the outline program, only that slot is stripped and
// [ErrNoBackup] is reported as a warning; any other slot list is left alone.
// A nil target is ignored.
func (s *Service) Remove(target Target) {
	if isNil(target) {
		return
	}

	if originals, ok := s.originals[target]; ok {
		target.SetSharedMaterials(originals)
		if e, ok := s.params.lookup(target); ok && e.index >= 0 && e.index < len(originals) {
			target.SetPropertyBlock(nil, e.index)
		}
		delete(s.originals, target)
		s.params.drop(target)
		s.log().Debug("outline: restored original materials",
			"target", target.Name(), "slots", len(originals))
		return
	}

	if s.Degraded() {
		return
	}

	mats := target.SharedMaterials()
	if len(mats) == 0 || !material.SameProgram(mats[len(mats)-1], s.template) {
		return
	}
	target.SetSharedMaterials(mats[:len(mats)-1])
	s.params.drop(target)
	s.report("remove", target, ErrNoBackup)
}

// HasBackup reports whether the original slot list of target is recorded.
func (s *Service) HasBackup(target Target) bool {
	_, ok := s.originals[target]
	return ok
}

// CachedSettings returns the settings last pushed to target and the slot
// index they were bound to.
func (s *Service) CachedSettings(target Target) (Settings, int, bool) {
	e, ok := s.params.lookup(target)
	if !ok {
		return Settings{}, -1, false
	}
	return e.settings, e.index, true
}

// indexOf returns the index of the first slot referencing the outline
// program, or -1.
func (s *Service) indexOf(mats []*material.Material) int {
	for i, m := range mats {
		if material.SameProgram(m, s.template) {
			return i
		}
	}
	return -1
}

func (s *Service) push(target Target, index int, settings Settings) {
	e := s.params.entry(target)
	e.push(settings, index)
	target.SetPropertyBlock(e.block, index)
	setKeywords(s.template, settings)
}

// isNil reports whether t is nil or an interface holding a nil pointer.
func isNil(t Target) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func (s *Service) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

func (s *Service) report(op string, target Target, err error) {
	name := ""
	if !isNil(target) {
		name = target.Name()
	}
	kind := KindOf(err)
	s.log().Log(context.Background(), kind.Level(), "outline: "+op,
		"target", name, "kind", kind.String(), "err", err)
}
