package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs/component"
)

const (
	circleSegments     = 32
	capsuleArcSegments = 12
	polygonSides       = 6
)

// usesSizeY reports whether the primitive reads Size.Y. Square, circle and
// polygon are driven by Size.X alone.
func usesSizeY(kind component.Primitive2DModelType) bool {
	switch kind {
	case component.Primitive2DRectangle, component.Primitive2DTriangle, component.Primitive2DCapsule:
		return true
	default:
		return false
	}
}

// primitiveSize resolves the bounding width and height of a primitive in
// world units.
func primitiveSize(kind component.Primitive2DModelType, size *cp.Vector) (float64, float64) {
	switch kind {
	case component.Primitive2DRectangle:
		if size == nil {
			return 2, 1
		}
		return size.X, size.Y
	case component.Primitive2DTriangle:
		if size == nil {
			return 1, 1
		}
		return size.X, size.Y
	case component.Primitive2DCapsule:
		w, h := 0.5, 1.0
		if size != nil {
			w, h = size.X, size.Y
		}
		// a capsule shorter than its width degenerates into a circle
		if h < w {
			h = w
		}
		return w, h
	default:
		d := 1.0
		if size != nil {
			d = size.X
		}
		return d, d
	}
}

// primitiveOutline returns the convex outline of a primitive centred on the
// origin. Y grows downward.
func primitiveOutline(kind component.Primitive2DModelType, w, h float64) []cp.Vector {
	switch kind {
	case component.Primitive2DSquare, component.Primitive2DRectangle:
		hw, hh := w/2, h/2
		return []cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	case component.Primitive2DTriangle:
		return []cp.Vector{{X: 0, Y: -h / 2}, {X: w / 2, Y: h / 2}, {X: -w / 2, Y: h / 2}}
	case component.Primitive2DCircle:
		return regularPolygon(circleSegments, w/2, 0)
	case component.Primitive2DPolygon:
		return regularPolygon(polygonSides, w/2, -math.Pi/2)
	case component.Primitive2DCapsule:
		r := w / 2
		offset := h/2 - r
		out := make([]cp.Vector, 0, 2*(capsuleArcSegments+1))
		for i := 0; i <= capsuleArcSegments; i++ {
			a := math.Pi + math.Pi*float64(i)/capsuleArcSegments
			out = append(out, cp.Vector{X: r * math.Cos(a), Y: -offset + r*math.Sin(a)})
		}
		for i := 0; i <= capsuleArcSegments; i++ {
			a := math.Pi * float64(i) / capsuleArcSegments
			out = append(out, cp.Vector{X: r * math.Cos(a), Y: offset + r*math.Sin(a)})
		}
		return out
	}
	return nil
}

func regularPolygon(sides int, radius, start float64) []cp.Vector {
	out := make([]cp.Vector, sides)
	for i := range out {
		a := start + 2*math.Pi*float64(i)/float64(sides)
		out[i] = cp.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return out
}

// primitiveCollider returns collision geometry matching the drawn outline.
func primitiveCollider(kind component.Primitive2DModelType, w, h float64, outline []cp.Vector) component.Collider {
	switch kind {
	case component.Primitive2DSquare, component.Primitive2DRectangle:
		return component.Collider{Shape: component.ColliderBox, Width: w, Height: h}
	case component.Primitive2DCircle:
		return component.Collider{Shape: component.ColliderCircle, Width: w, Height: h, Radius: w / 2}
	case component.Primitive2DCapsule:
		return component.Collider{Shape: component.ColliderCapsule, Width: w, Height: h, Radius: w / 2}
	default:
		verts := append([]cp.Vector(nil), outline...)
		return component.Collider{Shape: component.ColliderPolygon, Width: w, Height: h, Vertices: verts}
	}
}
