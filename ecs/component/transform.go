package component

import "github.com/jakecoffman/cp"

// Transform places an entity in world units. X and Y are the centre of the
// entity, Y grows downward, Rotation is in radians. Scale only affects drawing;
// colliders keep the size they were built with.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

func (t *Transform) Position() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) SetPosition(p cp.Vector) {
	t.X, t.Y = p.X, p.Y
}

var TransformComponent = NewComponent[Transform]()
