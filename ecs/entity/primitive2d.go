package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownPrimitive   = errors.New("entity: unknown primitive type")
	ErrInvalidDepth       = errors.New("entity: depth must be positive")
	ErrInvalidSize        = errors.New("entity: size must be positive")
	ErrInvalidRenderGroup = errors.New("entity: render group out of range")
)

// Create2DPrimitive builds a primitive entity from opts; nil opts means the
// defaults. opts.PhysicsComponent is attached by reference and belongs to the
// entity from then on, so build fresh options for every entity.
func Create2DPrimitive(w *ecs.World, kind component.Primitive2DModelType, opts *Primitive2DCreationOptions) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("create primitive: world is nil")
	}
	if opts == nil {
		opts = NewPrimitive2DCreationOptions()
	}
	if err := validateOptions(kind, opts); err != nil {
		return 0, fmt.Errorf("create primitive %s: %w", kind, err)
	}

	width, height := primitiveSize(kind, opts.Size)
	outline := primitiveOutline(kind, width, height)

	e := ecs.CreateEntity(w)
	if err := attachPrimitive(w, e, kind, opts, width, height, outline); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("create primitive %s: %w", kind, err)
	}

	log.WithFields(log.Fields{
		"entity":   e,
		"type":     kind,
		"name":     opts.EntityName,
		"group":    opts.RenderGroup,
		"physics":  physicsKindOf(w, e),
		"collider": opts.IncludeCollider,
	}).Debug("Created primitive")
	return e, nil
}

func validateOptions(kind component.Primitive2DModelType, opts *Primitive2DCreationOptions) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPrimitive, int(kind))
	}
	if !opts.RenderGroup.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRenderGroup, opts.RenderGroup)
	}
	if !(opts.Depth > 0) || math.IsInf(opts.Depth, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDepth, opts.Depth)
	}
	if opts.Size != nil {
		if !positive(opts.Size.X) || (usesSizeY(kind) && !positive(opts.Size.Y)) {
			return fmt.Errorf("%w: %v", ErrInvalidSize, *opts.Size)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func attachPrimitive(w *ecs.World, e ecs.Entity, kind component.Primitive2DModelType, opts *Primitive2DCreationOptions, width, height float64, outline []cp.Vector) error {
	if opts.EntityName != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: opts.EntityName}); err != nil {
			return fmt.Errorf("add name: %w", err)
		}
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.Primitive2DComponent.Kind(), &component.Primitive2D{
		Type:    kind,
		Width:   width,
		Height:  height,
		Depth:   opts.Depth,
		Outline: outline,
	}); err != nil {
		return fmt.Errorf("add primitive: %w", err)
	}
	if opts.Material != nil {
		if err := ecs.Add(w, e, component.MaterialComponent.Kind(), &component.MaterialRef{Material: opts.Material}); err != nil {
			return fmt.Errorf("add material: %w", err)
		}
	}
	if err := ecs.Add(w, e, component.RenderGroupComponent.Kind(), &component.RenderGroupTag{Group: opts.RenderGroup}); err != nil {
		return fmt.Errorf("add render group: %w", err)
	}

	// physics without a collider has nothing to simulate against
	if !opts.IncludeCollider || opts.PhysicsComponent == nil {
		return nil
	}
	collider := primitiveCollider(kind, width, height, outline)
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &collider); err != nil {
		return fmt.Errorf("add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Variant: opts.PhysicsComponent}); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	return nil
}

func physicsKindOf(w *ecs.World, e ecs.Entity) component.PhysicsKind {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Variant == nil {
		return "none"
	}
	return body.Variant.PhysicsKind()
}

// SetEntityTransform moves e, keeping any existing scale. A body the physics
// system already simulates is teleported with it and loses its velocity.
// Static bodies are moved by the physics system on its next Update.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return err
	}

	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return nil
	}
	if _, static := pb.Variant.(*component.StaticBody); static {
		return nil
	}
	pb.Body.SetPosition(t.Position())
	pb.Body.SetAngle(rotation)
	pb.Body.SetVelocityVector(cp.Vector{})
	pb.Body.SetAngularVelocity(0)
	return nil
}
