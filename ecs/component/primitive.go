package component

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Primitive2DModelType names a procedural 2D shape.
type Primitive2DModelType int

const (
	Primitive2DCapsule Primitive2DModelType = iota + 1
	Primitive2DCircle
	Primitive2DPolygon
	Primitive2DRectangle
	Primitive2DSquare
	Primitive2DTriangle
)

var primitive2DNames = map[Primitive2DModelType]string{
	Primitive2DCapsule:   "capsule",
	Primitive2DCircle:    "circle",
	Primitive2DPolygon:   "polygon",
	Primitive2DRectangle: "rectangle",
	Primitive2DSquare:    "square",
	Primitive2DTriangle:  "triangle",
}

func (t Primitive2DModelType) String() string {
	if name, ok := primitive2DNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Primitive2DModelType(%d)", int(t))
}

func (t Primitive2DModelType) Valid() bool {
	_, ok := primitive2DNames[t]
	return ok
}

// ParsePrimitive2DModelType accepts the lower-case names returned by String,
// ignoring case and surrounding space.
func ParsePrimitive2DModelType(s string) (Primitive2DModelType, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for t, name := range primitive2DNames {
		if name == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown primitive type %q", s)
}

// Primitive2D is the renderable geometry of a primitive entity. Outline holds
// the convex outline in local world units, centred on the entity transform.
type Primitive2D struct {
	Type    Primitive2DModelType
	Width   float64
	Height  float64
	Depth   float64
	Outline []cp.Vector
}

var Primitive2DComponent = NewComponent[Primitive2D]()
