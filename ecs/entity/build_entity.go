package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/ecs/render"
	"github.com/milk9111/toolkit2d/prefabs"
)

// BuildPrimitive loads a primitive prefab and creates it at the prefab's
// transform.
func BuildPrimitive(w *ecs.World, lib *render.MaterialLibrary, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build primitive: world is nil")
	}
	spec, err := prefabs.LoadPrimitiveSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build primitive: load %q: %w", prefabPath, err)
	}
	e, err := BuildPrimitiveFromSpec(w, lib, spec)
	if err != nil {
		return 0, fmt.Errorf("build primitive: %q: %w", prefabPath, err)
	}
	return e, nil
}

// BuildPrimitiveFromSpec creates a primitive described by an already decoded
// spec.
func BuildPrimitiveFromSpec(w *ecs.World, lib *render.MaterialLibrary, spec prefabs.PrimitiveSpec) (ecs.Entity, error) {
	kind, err := component.ParsePrimitive2DModelType(spec.Type)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnknownPrimitive, err)
	}
	opts, err := OptionsFromSpec(spec.Options, lib)
	if err != nil {
		return 0, err
	}
	if opts.EntityName == "" {
		opts.EntityName = spec.Name
	}
	e, err := Create2DPrimitive(w, kind, opts)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, spec.Transform.X, spec.Transform.Y, spec.Transform.Rotation); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("set transform: %w", err)
	}
	return e, nil
}

// OptionsFromSpec turns a decoded options spec into creation options. Unset
// spec fields keep the defaults of NewPrimitive2DCreationOptions.
func OptionsFromSpec(spec prefabs.OptionsSpec, lib *render.MaterialLibrary) (*Primitive2DCreationOptions, error) {
	opts := NewPrimitive2DCreationOptions()
	opts.EntityName = spec.EntityName

	if spec.Material != "" {
		m, ok := lib.Get(spec.Material)
		if !ok {
			return nil, fmt.Errorf("unknown material %q", spec.Material)
		}
		opts.Material = m
	}
	if spec.IncludeCollider != nil {
		opts.IncludeCollider = *spec.IncludeCollider
	}
	if spec.Size != nil {
		opts.Size = &cp.Vector{X: spec.Size.X, Y: spec.Size.Y}
	}
	if spec.RenderGroup != nil {
		g := *spec.RenderGroup
		if g < 0 || g > int(component.Group31) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRenderGroup, g)
		}
		opts.RenderGroup = component.RenderGroup(g)
	}
	if spec.Depth != nil {
		opts.Depth = *spec.Depth
	}
	if spec.Physics != nil {
		pc, err := PhysicsFromSpec(*spec.Physics)
		if err != nil {
			return nil, err
		}
		opts.PhysicsComponent = pc
	}
	return opts, nil
}

// PhysicsFromSpec builds a physics variant. An empty kind means rigid_body;
// "none" returns nil.
func PhysicsFromSpec(spec prefabs.PhysicsSpec) (component.PhysicsComponent, error) {
	switch component.PhysicsKind(spec.Kind) {
	case "", component.PhysicsRigidBody:
		rb := component.NewRigidBody()
		setIf(&rb.Mass, spec.Mass)
		setIf(&rb.Friction, spec.Friction)
		setIf(&rb.Elasticity, spec.Elasticity)
		setIf(&rb.GravityScale, spec.GravityScale)
		rb.FixedRotation = spec.FixedRotation
		rb.Sensor = spec.Sensor
		return rb, nil
	case component.PhysicsStaticBody:
		sb := component.NewStaticBody()
		setIf(&sb.Friction, spec.Friction)
		setIf(&sb.Elasticity, spec.Elasticity)
		sb.Sensor = spec.Sensor
		return sb, nil
	case component.PhysicsCharacterController:
		cc := component.NewCharacterController()
		setIf(&cc.Speed, spec.Speed)
		setIf(&cc.JumpSpeed, spec.JumpSpeed)
		setIf(&cc.Friction, spec.Friction)
		return cc, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown physics kind %q", spec.Kind)
	}
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
