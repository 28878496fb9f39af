package system

import (
	"testing"

	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/ecs/entity"
)

func TestInputSystemDrivesCharacters(t *testing.T) {
	cases := []struct {
		name   string
		intent Intent
		wantX  float64
	}{
		{"left", Intent{MoveX: -1}, -1},
		{"clamped", Intent{MoveX: 3, Jump: true}, 1},
		{"idle", Intent{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newPhysicsWorld()
			cc := component.NewCharacterController()
			rb := component.NewRigidBody()
			mustPrimitive(t, w, component.Primitive2DCapsule, 0, 0, func(o *entity.Primitive2DCreationOptions) {
				o.PhysicsComponent = cc
			})
			mustPrimitive(t, w, component.Primitive2DSquare, 2, 0, func(o *entity.Primitive2DCreationOptions) {
				o.PhysicsComponent = rb
			})

			in := &InputSystem{Read: func() Intent { return tc.intent }}
			in.Update(w)

			if cc.MoveX != tc.wantX || cc.Jump != tc.intent.Jump {
				t.Fatalf("controller got MoveX=%v Jump=%v", cc.MoveX, cc.Jump)
			}
			if rb.Mass != 1 {
				t.Fatal("rigid bodies should be untouched")
			}
		})
	}
}
