package ecs

import (
	"fmt"

	"github.com/milk9111/toolkit2d/ecs/component"
)

// Add inserts or replaces the component of the given kind on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return fmt.Errorf("add %s: %w", kind, component.ErrNilComponent)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add %s to %v: %w", kind, e, component.ErrEntityNotAlive)
	}
	s, err := storeFor(w, kind, true)
	if err != nil {
		return err
	}
	s.set(e.id(), value)
	return nil
}

// Remove deletes the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s, err := storeFor(w, kind, false)
	if err != nil || s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Get returns the stored component pointer. Mutations through it are visible
// to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s, err := storeFor(w, kind, false)
	if err != nil || s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// ForEach calls fn for every live entity holding a component of kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	a, err := storeFor(w, kind, false)
	if err != nil || a == nil {
		return
	}
	for _, id := range snapshot(a.ids()) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, ok := a.get(id)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	a, errA := storeFor(w, ka, false)
	b, errB := storeFor(w, kb, false)
	if errA != nil || errB != nil || a == nil || b == nil {
		return
	}
	for _, id := range snapshot(a.ids()) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := a.get(id)
		vb, okB := b.get(id)
		if okA && okB {
			fn(e, va, vb)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	c, err := storeFor(w, kc, false)
	if err != nil || c == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, va *A, vb *B) {
		if vc, ok := c.get(e.id()); ok {
			fn(e, va, vb, vc)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	d, err := storeFor(w, kd, false)
	if err != nil || d == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, va *A, vb *B, vc *C) {
		if vd, ok := d.get(e.id()); ok {
			fn(e, va, vb, vc, vd)
		}
	})
}

// snapshot copies ids so callbacks may add or remove components while iterating.
func snapshot(ids []entityID) []entityID {
	return append([]entityID(nil), ids...)
}
