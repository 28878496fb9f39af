package system

import (
	"math"
	"testing"

	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/ecs/entity"
	"github.com/milk9111/toolkit2d/prefabs"
)

func TestCameraSystemFollowsTarget(t *testing.T) {
	cases := []struct {
		name       string
		smoothness float64
		wantX      float64
	}{
		{"snap", 0, 4},
		{"half", 0.5, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			cam, err := entity.NewCamera(w, prefabs.CameraSpec{Target: "hero", Smoothness: tc.smoothness})
			if err != nil {
				t.Fatal(err)
			}
			mustPrimitive(t, w, component.Primitive2DCapsule, 4, 0, func(o *entity.Primitive2DCreationOptions) {
				o.EntityName = "hero"
				o.PhysicsComponent = nil
			})

			NewCameraSystem().Update(w)

			tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
			if math.Abs(tr.X-tc.wantX) > 1e-9 {
				t.Fatalf("camera x = %v, want %v", tr.X, tc.wantX)
			}
		})
	}
}

func TestCameraSystemWithoutTarget(t *testing.T) {
	w := ecs.NewWorld()
	cam, err := entity.NewCamera(w, prefabs.CameraSpec{Transform: prefabs.TransformSpec{X: 1}, Target: "nobody"})
	if err != nil {
		t.Fatal(err)
	}
	NewCameraSystem().Update(w)
	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if tr.X != 1 {
		t.Fatalf("camera moved without a target: x=%v", tr.X)
	}
}

func TestFindByName(t *testing.T) {
	w := ecs.NewWorld()
	first := mustPrimitive(t, w, component.Primitive2DSquare, 0, 0, func(o *entity.Primitive2DCreationOptions) { o.EntityName = "box" })
	mustPrimitive(t, w, component.Primitive2DSquare, 0, 0, func(o *entity.Primitive2DCreationOptions) { o.EntityName = "box" })

	got, ok := FindByName(w, "box")
	if !ok || got != first {
		t.Fatalf("expected %v, got %v (%v)", first, got, ok)
	}
	if _, ok := FindByName(w, "missing"); ok {
		t.Fatal("unexpected match")
	}
}
