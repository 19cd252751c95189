package outline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/gogpu/outline/material"
	"github.com/gogpu/outline/shader"
)

// record is one captured log record.
type record struct {
	level slog.Level
	msg   string
	err   error
}

// recordingHandler captures records for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	rec := record{level: r.Level, msg: r.Message}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "err" {
			if err, ok := a.Value.Any().(error); ok {
				rec.err = err
			}
		}
		return true
	})
	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

// errs returns the errors reported so far, in order.
func (h *recordingHandler) errs() []error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []error
	for _, r := range h.records {
		if r.err != nil {
			out = append(out, r.err)
		}
	}
	return out
}

// levelOf returns the level of the first record carrying target.
func (h *recordingHandler) levelOf(target error) (slog.Level, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if errors.Is(r.err, target) {
			return r.level, true
		}
	}
	return 0, false
}

func expectReported(t *testing.T, h *recordingHandler, want error) {
	t.Helper()
	for _, err := range h.errs() {
		if errors.Is(err, want) {
			return
		}
	}
	t.Errorf("expected %v to be reported, got %v", want, h.errs())
}

func expectQuiet(t *testing.T, h *recordingHandler) {
	t.Helper()
	if errs := h.errs(); len(errs) != 0 {
		t.Errorf("expected no reports, got %v", errs)
	}
}

// newTestService returns a service with a fresh outline template and a
// recording logger.
func newTestService(t *testing.T) (*Service, *recordingHandler) {
	t.Helper()
	h := &recordingHandler{}
	tmpl := material.New("outline", shader.Outline())
	return NewService(tmpl, WithLogger(slog.New(h))), h
}

func litMaterial(name string) *material.Material {
	return material.New(name, &shader.Program{Name: "lit/" + name, Source: "x"})
}

func newCube(slots ...*material.Material) *material.Renderer {
	return material.NewRenderer("cube", material.Bounds{Size: material.Vec3{X: 1, Y: 1, Z: 1}}, slots...)
}

// keys returns the identity keys of the target's slots; nil slots map to "<nil>".
func keys(r *material.Renderer) []string {
	var out []string
	for _, m := range r.SharedMaterials() {
		if m == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, m.Key())
	}
	return out
}

func sameSlots(a, b []*material.Material) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
