package material

import (
	"testing"

	"github.com/gogpu/outline/shader"
)

func TestRendererSharedMaterialsCopies(t *testing.T) {
	base := New("base", &shader.Program{Name: "lit", Source: "x"})
	r := NewRenderer("cube", Bounds{}, base)

	got := r.SharedMaterials()
	got[0] = nil
	if r.SharedMaterials()[0] != base {
		t.Error("SharedMaterials() must return a copy")
	}

	in := []*Material{base, nil}
	r.SetSharedMaterials(in)
	in[0] = nil
	if r.SharedMaterials()[0] != base {
		t.Error("SetSharedMaterials() must copy its input")
	}
	if n := len(r.SharedMaterials()); n != 2 {
		t.Errorf("len = %d, want 2", n)
	}
}

func TestRendererPropertyBlocks(t *testing.T) {
	base := New("base", nil)
	r := NewRenderer("cube", Bounds{}, base, base)

	b := NewPropertyBlock()
	b.SetFloat("alpha", 0.25)
	r.SetPropertyBlock(b, 1)
	b.SetFloat("alpha", 1)

	got, ok := r.PropertyBlock(1)
	if !ok {
		t.Fatal("PropertyBlock(1) not bound")
	}
	if v, _ := got.Float("alpha"); v != 0.25 {
		t.Errorf("alpha = %v, want 0.25 (block must be copied on bind)", v)
	}

	r.SetPropertyBlock(b, 5)
	if r.HasPropertyBlock(5) {
		t.Error("out-of-range index must be ignored")
	}

	r.SetSharedMaterials([]*Material{base})
	if r.HasPropertyBlock(1) {
		t.Error("shrinking the slot list must drop trailing blocks")
	}

	r.SetPropertyBlock(b, 0)
	r.SetPropertyBlock(nil, 0)
	if r.HasPropertyBlock(0) {
		t.Error("nil block must clear the binding")
	}
}

func TestRendererNilReceiver(t *testing.T) {
	var r *Renderer

	if r.Name() != "" {
		t.Errorf("Name() = %q, want empty", r.Name())
	}
	if r.SharedMaterials() != nil {
		t.Error("SharedMaterials() should be nil")
	}
	if r.Bounds() != (Bounds{}) {
		t.Error("Bounds() should be zero")
	}

	// Mutators are no-ops.
	r.SetSharedMaterials([]*Material{New("m", nil)})
	r.SetPropertyBlock(NewPropertyBlock(), 0)

	if r.HasPropertyBlock(0) {
		t.Error("HasPropertyBlock() should be false")
	}
	if _, ok := r.PropertyBlock(0); ok {
		t.Error("PropertyBlock() should report false")
	}
}

func TestBoundsInflate(t *testing.T) {
	b := Bounds{Center: Vec3{1, 2, 3}, Size: Vec3{2, 2, 2}}
	got := b.Inflate(0.5)
	if got.Center != b.Center {
		t.Errorf("center moved: %v", got.Center)
	}
	if want := (Vec3{3, 3, 3}); got.Size != want {
		t.Errorf("size = %v, want %v", got.Size, want)
	}
	if want := (Vec3{-0.5, 0.5, 1.5}); got.Min() != want {
		t.Errorf("min = %v, want %v", got.Min(), want)
	}
	if want := (Vec3{2.5, 3.5, 4.5}); got.Max() != want {
		t.Errorf("max = %v, want %v", got.Max(), want)
	}
}

func TestVec3Normalize(t *testing.T) {
	if got := (Vec3{0, 0, 2}).Normalize(); got != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize() = %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v", got)
	}
}
