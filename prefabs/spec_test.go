package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

// useDiskDir points DiskDir at a temporary directory for the test.
func useDiskDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })
	return dir
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := useDiskDir(t)

	embedded, err := LoadPrimitiveSpec("crate")
	if err != nil {
		t.Fatalf("embedded crate: %v", err)
	}
	if embedded.Type != "square" {
		t.Fatalf("expected embedded crate to be a square, got %q", embedded.Type)
	}

	writeFile(t, filepath.Join(dir, "crate.yaml"), "name: crate\ntype: circle\n")
	disk, err := LoadPrimitiveSpec("prefabs/crate.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if disk.Type != "circle" {
		t.Fatalf("expected disk copy to win, got %q", disk.Type)
	}
	if _, ok := ModTime("crate"); !ok {
		t.Fatal("expected a mod time for the disk copy")
	}
}

func TestLoadPrimitiveSpecRequiresType(t *testing.T) {
	dir := useDiskDir(t)
	writeFile(t, filepath.Join(dir, "blank.yaml"), "name: blank\n")
	if _, err := LoadPrimitiveSpec("blank"); err == nil {
		t.Fatal("expected error for prefab without type")
	}
}

func TestPrimitiveSpecOptions(t *testing.T) {
	dir := useDiskDir(t)
	writeFile(t, filepath.Join(dir, "pillar.yaml"), `
name: pillar
type: rectangle
transform: {x: 1, y: 2, rotation: 0.5}
options:
  include_collider: false
  size: {x: 1, y: 4}
  render_group: 3
  physics:
    kind: static_body
    friction: 0.2
`)
	spec, err := LoadPrimitiveSpec("pillar")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Transform != (TransformSpec{X: 1, Y: 2, Rotation: 0.5}) {
		t.Fatalf("unexpected transform %+v", spec.Transform)
	}
	o := spec.Options
	if o.IncludeCollider == nil || *o.IncludeCollider {
		t.Fatalf("expected include_collider false, got %v", o.IncludeCollider)
	}
	if o.Depth != nil {
		t.Fatalf("absent depth should stay nil, got %v", *o.Depth)
	}
	if o.RenderGroup == nil || *o.RenderGroup != 3 {
		t.Fatalf("unexpected render group %v", o.RenderGroup)
	}
	if o.Physics == nil || o.Physics.Kind != "static_body" || o.Physics.Friction == nil || *o.Physics.Friction != 0.2 {
		t.Fatalf("unexpected physics %+v", o.Physics)
	}
	if o.Physics.Mass != nil {
		t.Fatal("absent mass should stay nil")
	}
}

func TestLoadWorldSpecDefaults(t *testing.T) {
	dir := useDiskDir(t)
	writeFile(t, filepath.Join(dir, "world.yaml"), "gravity: {x: 0, y: 5}\n")

	spec, err := LoadWorldSpec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Gravity.Y != 5 || spec.Iterations != 10 || spec.StepRate != 60 {
		t.Fatalf("unexpected world spec %+v", spec)
	}
	if spec.Camera.Zoom != 1 || spec.Camera.PixelsPerUnit != 48 {
		t.Fatalf("unexpected camera defaults %+v", spec.Camera)
	}
}

func TestDecodeSpec(t *testing.T) {
	raw := map[string]interface{}{
		"material":     "steel",
		"render_group": 2,
		"size":         map[string]interface{}{"x": 1.5, "y": 2},
		"physics":      map[string]interface{}{"kind": "rigid_body", "mass": 3},
	}
	spec, err := DecodeSpec[OptionsSpec](raw)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Material != "steel" || spec.RenderGroup == nil || *spec.RenderGroup != 2 {
		t.Fatalf("unexpected spec %+v", spec)
	}
	if spec.Size == nil || spec.Size.X != 1.5 || spec.Size.Y != 2 {
		t.Fatalf("unexpected size %+v", spec.Size)
	}
	if spec.Physics == nil || spec.Physics.Mass == nil || *spec.Physics.Mass != 3 {
		t.Fatalf("unexpected physics %+v", spec.Physics)
	}

	empty, err := DecodeSpec[OptionsSpec](nil)
	if err != nil || empty.Physics != nil {
		t.Fatalf("nil input should decode to the zero value, got %+v, %v", empty, err)
	}
}

func TestPrimitiveNames(t *testing.T) {
	dir := useDiskDir(t)
	writeFile(t, filepath.Join(dir, "pillar.yaml"), "type: rectangle\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	names, err := PrimitiveNames()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"backdrop": true, "ball": true, "crate": true, "ground": true, "hero": true, "pillar": true}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for _, n := range names {
		if !want[n] {
			t.Fatalf("unexpected prefab %q in %v", n, names)
		}
	}
}

func TestLoadScript(t *testing.T) {
	dir := useDiskDir(t)
	if _, err := LoadScript("demo"); err != nil {
		t.Fatalf("embedded demo script: %v", err)
	}
	writeFile(t, filepath.Join(dir, "scripts", "tiny.tengo"), "x := 1\n")
	data, err := LoadScript("scripts/tiny")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "x := 1\n" {
		t.Fatalf("unexpected script %q", data)
	}
}
