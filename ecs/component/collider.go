package component

import "github.com/jakecoffman/cp"

type ColliderShape int

const (
	ColliderBox ColliderShape = iota + 1
	ColliderCircle
	ColliderCapsule
	ColliderPolygon
)

// Collider describes collision geometry in local world units around the
// entity centre. Box uses Width and Height, Circle uses Radius, Capsule is a
// vertical segment of length Height-2*Radius with rounded ends, Polygon uses
// Vertices (convex).
type Collider struct {
	Shape    ColliderShape
	Width    float64
	Height   float64
	Radius   float64
	Vertices []cp.Vector
}

var ColliderComponent = NewComponent[Collider]()
