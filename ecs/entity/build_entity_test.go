package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/ecs/render"
	"github.com/milk9111/toolkit2d/prefabs"
)

func testLibrary() *render.MaterialLibrary {
	lib := render.NewMaterialLibrary()
	for _, name := range []string{"ground", "wood", "steel", "rubber", "hero", "accent", "ghost"} {
		lib.Register(&component.Material{Name: name})
	}
	return lib
}

func boolPtr(b bool) *bool          { return &b }
func intPtr(i int) *int             { return &i }
func float64Ptr(f float64) *float64 { return &f }

func TestBuildPrimitiveFromEmbeddedPrefabs(t *testing.T) {
	cases := []struct {
		prefab  string
		kind    component.Primitive2DModelType
		physics component.PhysicsKind
		y       float64
	}{
		{"crate", component.Primitive2DSquare, component.PhysicsRigidBody, 0},
		{"ground", component.Primitive2DRectangle, component.PhysicsStaticBody, 6},
		{"hero", component.Primitive2DCapsule, component.PhysicsCharacterController, 0},
		{"ball", component.Primitive2DCircle, component.PhysicsRigidBody, 0},
		{"backdrop", component.Primitive2DPolygon, "", 0},
	}

	lib := testLibrary()
	for _, tc := range cases {
		t.Run(tc.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildPrimitive(w, lib, tc.prefab)
			if err != nil {
				t.Fatalf("BuildPrimitive: %v", err)
			}
			p, ok := ecs.Get(w, e, component.Primitive2DComponent.Kind())
			if !ok || p.Type != tc.kind {
				t.Fatalf("expected %s, got %+v", tc.kind, p)
			}
			name, ok := ecs.Get(w, e, component.NameComponent.Kind())
			if !ok || name.Value != tc.prefab {
				t.Fatalf("expected name %q, got %+v", tc.prefab, name)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if tr.Y != tc.y {
				t.Fatalf("expected y %v, got %v", tc.y, tr.Y)
			}
			body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if tc.physics == "" {
				if ok {
					t.Fatalf("expected no physics, got %T", body.Variant)
				}
				return
			}
			if !ok || body.Variant.PhysicsKind() != tc.physics {
				t.Fatalf("expected %s physics, got %+v", tc.physics, body)
			}
		})
	}
}

func TestBuildPrimitiveMissingPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildPrimitive(w, testLibrary(), "does-not-exist"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
}

func TestBuildPrimitiveFromSpecUnknownType(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildPrimitiveFromSpec(w, testLibrary(), prefabs.PrimitiveSpec{Type: "hexahedron"})
	if !errors.Is(err, ErrUnknownPrimitive) {
		t.Fatalf("expected ErrUnknownPrimitive, got %v", err)
	}
}

func TestOptionsFromSpec(t *testing.T) {
	lib := testLibrary()

	t.Run("empty_keeps_defaults", func(t *testing.T) {
		opts, err := OptionsFromSpec(prefabs.OptionsSpec{}, lib)
		if err != nil {
			t.Fatal(err)
		}
		if !opts.IncludeCollider || opts.Depth != DefaultDepth || opts.Size != nil {
			t.Fatalf("unexpected options %+v", opts)
		}
		if _, ok := opts.PhysicsComponent.(*component.RigidBody); !ok {
			t.Fatalf("expected default rigid body, got %T", opts.PhysicsComponent)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		opts, err := OptionsFromSpec(prefabs.OptionsSpec{
			EntityName:      "pillar",
			Material:        "steel",
			IncludeCollider: boolPtr(false),
			Size:            &prefabs.Vec2Spec{X: 1, Y: 4},
			RenderGroup:     intPtr(7),
			Depth:           float64Ptr(0.5),
			Physics:         &prefabs.PhysicsSpec{Kind: "none"},
		}, lib)
		if err != nil {
			t.Fatal(err)
		}
		if opts.EntityName != "pillar" || opts.IncludeCollider || opts.RenderGroup != component.Group7 || opts.Depth != 0.5 {
			t.Fatalf("unexpected options %+v", opts)
		}
		if opts.Material == nil || opts.Material.Name != "steel" {
			t.Fatalf("expected steel material, got %+v", opts.Material)
		}
		if opts.Size == nil || opts.Size.X != 1 || opts.Size.Y != 4 {
			t.Fatalf("unexpected size %+v", opts.Size)
		}
		if opts.PhysicsComponent != nil {
			t.Fatalf("physics kind none should clear physics, got %T", opts.PhysicsComponent)
		}
	})

	t.Run("unknown_material", func(t *testing.T) {
		if _, err := OptionsFromSpec(prefabs.OptionsSpec{Material: "lava"}, lib); err == nil {
			t.Fatal("expected error for unknown material")
		}
	})

	t.Run("bad_render_group", func(t *testing.T) {
		for _, g := range []int{-1, 32, 256} {
			_, err := OptionsFromSpec(prefabs.OptionsSpec{RenderGroup: intPtr(g)}, lib)
			if !errors.Is(err, ErrInvalidRenderGroup) {
				t.Fatalf("group %d: expected ErrInvalidRenderGroup, got %v", g, err)
			}
		}
	})
}

func TestPhysicsFromSpec(t *testing.T) {
	rb, err := PhysicsFromSpec(prefabs.PhysicsSpec{Mass: float64Ptr(3), GravityScale: float64Ptr(0), FixedRotation: true})
	if err != nil {
		t.Fatal(err)
	}
	body := rb.(*component.RigidBody)
	if body.Mass != 3 || body.GravityScale != 0 || !body.FixedRotation || body.Friction != 0.7 {
		t.Fatalf("unexpected rigid body %+v", body)
	}

	sb, err := PhysicsFromSpec(prefabs.PhysicsSpec{Kind: "static_body", Elasticity: float64Ptr(0.3)})
	if err != nil {
		t.Fatal(err)
	}
	if s := sb.(*component.StaticBody); s.Elasticity != 0.3 || s.Friction != 1 {
		t.Fatalf("unexpected static body %+v", s)
	}

	cc, err := PhysicsFromSpec(prefabs.PhysicsSpec{Kind: "character_controller", Speed: float64Ptr(9)})
	if err != nil {
		t.Fatal(err)
	}
	if c := cc.(*component.CharacterController); c.Speed != 9 || c.JumpSpeed != 7 {
		t.Fatalf("unexpected character controller %+v", c)
	}

	if _, err := PhysicsFromSpec(prefabs.PhysicsSpec{Kind: "soft_body"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestNewCamera(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w, prefabs.CameraSpec{Groups: []int{0, 2}, Target: "hero", Smoothness: 0.2})
	if err != nil {
		t.Fatal(err)
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		t.Fatal("missing camera component")
	}
	if cam.Zoom != 1 || cam.PixelsPerUnit != 48 {
		t.Fatalf("expected defaults, got %+v", cam)
	}
	if !cam.Mask.Contains(component.Group0) || !cam.Mask.Contains(component.Group2) || cam.Mask.Contains(component.Group1) {
		t.Fatalf("unexpected mask %b", cam.Mask)
	}
	if cam.Target != "hero" || cam.Smoothness != 0.2 {
		t.Fatalf("unexpected follow settings %+v", cam)
	}

	all, err := NewCamera(w, prefabs.CameraSpec{})
	if err != nil {
		t.Fatal(err)
	}
	if cam, _ := ecs.Get(w, all, component.CameraComponent.Kind()); cam.Mask != component.MaskAll {
		t.Fatalf("empty group list should draw everything, got %b", cam.Mask)
	}

	if _, err := NewCamera(w, prefabs.CameraSpec{Groups: []int{40}}); !errors.Is(err, ErrInvalidRenderGroup) {
		t.Fatalf("expected ErrInvalidRenderGroup, got %v", err)
	}
}
