package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs/component"
)

// DefaultDepth is the extrusion depth of a primitive when none is given.
const DefaultDepth = 0.04

// DefaultPhysicsComponent builds the physics variant a fresh
// Primitive2DCreationOptions starts with. It is called once per options
// value, so no two options share a component.
var DefaultPhysicsComponent = func() component.PhysicsComponent {
	return component.NewRigidBody()
}

// Primitive2DCreationOptions configures Create2DPrimitive. Only fields that
// differ from the defaults need setting. The options do no validation; the
// factory rejects values it cannot build.
type Primitive2DCreationOptions struct {
	// EntityName is attached as a Name component when non-empty.
	EntityName string

	// Material is referenced, not copied. Nil draws with the default colour.
	Material *component.Material

	// IncludeCollider adds a collider matching the primitive and attaches
	// PhysicsComponent. Defaults to true.
	IncludeCollider bool

	// Size overrides the primitive's default dimensions in world units.
	Size *cp.Vector

	// RenderGroup defaults to Group0.
	RenderGroup component.RenderGroup

	// PhysicsComponent moves to the created entity. Defaults to a new rigid
	// body; nil creates the entity without physics.
	PhysicsComponent component.PhysicsComponent

	// Depth is the extrusion thickness drawn behind the primitive face.
	Depth float64
}

// NewPrimitive2DCreationOptions returns options with the defaults applied.
func NewPrimitive2DCreationOptions() *Primitive2DCreationOptions {
	return &Primitive2DCreationOptions{
		IncludeCollider:  true,
		RenderGroup:      component.Group0,
		PhysicsComponent: DefaultPhysicsComponent(),
		Depth:            DefaultDepth,
	}
}
