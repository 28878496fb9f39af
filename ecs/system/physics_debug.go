package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/common"
	"github.com/milk9111/toolkit2d/ecs/component"
)

const debugDotSize = 4

var (
	debugOutline   = cp.FColor{R: 1, G: 1, B: 1, A: 0.9}
	debugContact   = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
	debugStatic    = cp.FColor{R: 0.4, G: 0.5, B: 0.9, A: 0.9}
	debugRigid     = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	debugCharacter = cp.FColor{R: 1, G: 0.8, B: 0.1, A: 0.9}
	debugSensor    = cp.FColor{R: 1, G: 0.3, B: 1, A: 0.6}
)

// DrawPhysicsDebug outlines every collider simulated by ps, coloured by
// physics variant, plus the current contact points.
func DrawPhysicsDebug(ps *PhysicsSystem, view View, screen *ebiten.Image) {
	if ps == nil || screen == nil {
		return
	}
	cp.DrawSpace(ps.space, &physicsDebugDrawer{screen: screen, view: view, ps: ps})
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   View
	ps     *PhysicsSystem
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.strokeCircle(pos, radius, fill)
	d.drawLine(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), fill)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

// DrawFatSegment draws capsules: both caps and the two flat sides.
func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		d.drawLine(a, b, fill)
		return
	}
	d.strokeCircle(a, radius, fill)
	d.strokeCircle(b, radius, fill)
	if a == b {
		return
	}
	n := b.Sub(a).Perp().Normalize().Mult(radius)
	d.drawLine(a.Add(n), b.Add(n), fill)
	d.drawLine(a.Sub(n), b.Sub(n), fill)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 1 {
		return
	}
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], fill)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.view.ToScreen(pos)
	vector.FillCircle(d.screen, float32(x), float32(y), float32(size/2), toNRGBA(fill), true)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return debugOutline
}

// ShapeColor picks the colour of the physics variant that owns shape.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return debugSensor
	}
	e, ok := d.ps.shapeOwner[shape]
	if !ok {
		return debugOutline
	}
	info, ok := d.ps.entities[e]
	if !ok {
		return debugOutline
	}
	switch info.variant.(type) {
	case *component.StaticBody:
		return debugStatic
	case *component.CharacterController:
		return debugCharacter
	default:
		return debugRigid
	}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return debugOutline
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return debugContact
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.ToScreen(a)
	x2, y2 := d.view.ToScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), true)
}

func (d *physicsDebugDrawer) strokeCircle(center cp.Vector, radius float64, c cp.FColor) {
	x, y := d.view.ToScreen(center)
	r := math.Max(1, radius*d.view.Scale)
	vector.StrokeCircle(d.screen, float32(x), float32(y), float32(r), 1, toNRGBA(c), true)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(common.Clamp01(float64(v)) * 255)
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
