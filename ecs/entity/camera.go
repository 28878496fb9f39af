package entity

import (
	"fmt"

	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/prefabs"
)

// NewCamera creates the scene camera from the world spec.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	mask := component.MaskAll
	if len(spec.Groups) > 0 {
		mask = 0
		for _, g := range spec.Groups {
			if g < 0 || g > int(component.Group31) {
				return 0, fmt.Errorf("camera: %w: %d", ErrInvalidRenderGroup, g)
			}
			mask = mask.With(component.RenderGroup(g))
		}
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	ppu := spec.PixelsPerUnit
	if ppu <= 0 {
		ppu = 48
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		ScaleX:   1,
		ScaleY:   1,
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:          zoom,
		PixelsPerUnit: ppu,
		Mask:          mask,
		Target:        spec.Target,
		Smoothness:    spec.Smoothness,
	}); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
