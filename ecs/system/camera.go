package system

import (
	"github.com/milk9111/toolkit2d/common"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
)

// CameraSystem moves the camera toward the entity named by Camera.Target.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.targetEntity = 0
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok || cam.Target == "" {
		return
	}
	if !w.IsAlive(cs.targetEntity) {
		target, ok := FindByName(w, cam.Target)
		if !ok {
			return
		}
		cs.targetEntity = target
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t := cam.Smoothness
	if t <= 0 {
		t = 1
	}
	t = common.Clamp01(t)
	camTransform.X = common.Lerp(camTransform.X, targetTransform.X, t)
	camTransform.Y = common.Lerp(camTransform.Y, targetTransform.Y, t)
}

// FindByName returns the lowest-slot entity whose Name matches.
func FindByName(w *ecs.World, name string) (ecs.Entity, bool) {
	var (
		found ecs.Entity
		ok    bool
	)
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if n.Value != name {
			return
		}
		if !ok || e.ID() < found.ID() {
			found, ok = e, true
		}
	})
	return found, ok
}
