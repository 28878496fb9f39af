package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	log "github.com/sirupsen/logrus"
)

const collisionTypePrimitive cp.CollisionType = 1

// groundNormalY is the minimum downward contact normal that counts as
// standing on something (Y grows downward).
const groundNormalY = 0.5

// PhysicsConfig tunes the Chipmunk space.
type PhysicsConfig struct {
	Gravity    cp.Vector
	Iterations int
	// StepRate is the number of fixed steps per second; one step runs per
	// Update.
	StepRate int
}

func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{Gravity: cp.Vector{X: 0, Y: 9.8}, Iterations: 10, StepRate: 60}
}

// PhysicsSystem mirrors entities that have a PhysicsBody, Collider and
// Transform into a Chipmunk space, steps it, and writes poses back.
type PhysicsSystem struct {
	space *cp.Space
	dt    float64

	entities   map[ecs.Entity]*bodyInfo
	shapeOwner map[*cp.Shape]ecs.Entity
	contacts   []ecs.ContactEvent
}

type bodyInfo struct {
	body    *cp.Body
	shapes  []*cp.Shape
	variant component.PhysicsComponent
}

func NewPhysicsSystem(cfg PhysicsConfig) *PhysicsSystem {
	if cfg.Iterations <= 0 {
		cfg.Iterations = 10
	}
	if cfg.StepRate <= 0 {
		cfg.StepRate = 60
	}
	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cfg.Gravity)

	ps := &PhysicsSystem{
		space:      space,
		dt:         1.0 / float64(cfg.StepRate),
		entities:   make(map[ecs.Entity]*bodyInfo),
		shapeOwner: make(map[*cp.Shape]ecs.Entity),
	}

	handler := space.NewCollisionHandler(collisionTypePrimitive, collisionTypePrimitive)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.shapeOwner[shapeA]
		b, okB := sys.shapeOwner[shapeB]
		if okA && okB {
			sys.contacts = append(sys.contacts, ecs.ContactEvent{A: a, B: b})
		}
		return true
	}
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.moveStaticBodies(w)
	ps.driveCharacters(w)

	ps.contacts = ps.contacts[:0]
	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.updateGrounded(w)
	for _, c := range ps.contacts {
		w.Events().Push(ecs.Event{Type: ecs.EventContactBegin, Data: c})
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach3(w, component.PhysicsBodyComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, body *component.PhysicsBody, col *component.Collider, t *component.Transform) {
			if _, ok := ps.entities[e]; ok || body.Variant == nil {
				return
			}
			info := ps.createBodyInfo(t, col, body.Variant)
			if info == nil {
				log.WithFields(log.Fields{"entity": e, "shape": col.Shape}).Warn("Skipping unsupported physics body")
				return
			}
			ps.entities[e] = info
			for _, s := range info.shapes {
				ps.shapeOwner[s] = e
			}
			body.Body = info.body
			body.Shapes = info.shapes
		})
}

func (ps *PhysicsSystem) createBodyInfo(t *component.Transform, col *component.Collider, variant component.PhysicsComponent) *bodyInfo {
	var (
		body   *cp.Body
		sensor bool
	)
	switch v := variant.(type) {
	case *component.RigidBody:
		mass := v.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := colliderMoment(col, mass)
		if v.FixedRotation {
			moment = math.Inf(1)
		}
		body = cp.NewBody(mass, moment)
		if scale := v.GravityScale; scale != 1 {
			body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				cp.BodyUpdateVelocity(body, gravity.Mult(scale), damping, dt)
			})
		}
		sensor = v.Sensor
	case *component.StaticBody:
		body = cp.NewStaticBody()
		sensor = v.Sensor
	case *component.CharacterController:
		body = cp.NewBody(1, math.Inf(1))
	default:
		return nil
	}

	body.SetPosition(t.Position())
	body.SetAngle(t.Rotation)

	shape := colliderShape(body, col)
	if shape == nil {
		return nil
	}
	friction, elasticity := variant.Surface()
	shape.SetFriction(friction)
	shape.SetElasticity(elasticity)
	shape.SetCollisionType(collisionTypePrimitive)
	shape.SetSensor(sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shapes: []*cp.Shape{shape}, variant: variant}
}

func colliderMoment(col *component.Collider, mass float64) float64 {
	switch col.Shape {
	case component.ColliderBox:
		return cp.MomentForBox(mass, col.Width, col.Height)
	case component.ColliderCircle:
		return cp.MomentForCircle(mass, 0, col.Radius, cp.Vector{})
	case component.ColliderCapsule:
		a, b := capsuleEnds(col)
		return cp.MomentForSegment(mass, a, b, col.Radius)
	case component.ColliderPolygon:
		if len(col.Vertices) < 3 {
			return math.Inf(1)
		}
		return cp.MomentForPoly(mass, len(col.Vertices), col.Vertices, cp.Vector{}, 0)
	}
	return math.Inf(1)
}

func colliderShape(body *cp.Body, col *component.Collider) *cp.Shape {
	switch col.Shape {
	case component.ColliderBox:
		if col.Width <= 0 || col.Height <= 0 {
			return nil
		}
		return cp.NewBox(body, col.Width, col.Height, 0)
	case component.ColliderCircle:
		if col.Radius <= 0 {
			return nil
		}
		return cp.NewCircle(body, col.Radius, cp.Vector{})
	case component.ColliderCapsule:
		if col.Radius <= 0 {
			return nil
		}
		a, b := capsuleEnds(col)
		if a == b {
			return cp.NewCircle(body, col.Radius, cp.Vector{})
		}
		return cp.NewSegment(body, a, b, col.Radius)
	case component.ColliderPolygon:
		if len(col.Vertices) < 3 {
			return nil
		}
		verts := append([]cp.Vector(nil), col.Vertices...)
		return cp.NewPolyShapeRaw(body, len(verts), verts, 0)
	}
	return nil
}

// capsuleEnds returns the centres of the two capsule caps.
func capsuleEnds(col *component.Collider) (cp.Vector, cp.Vector) {
	half := math.Max(0, col.Height/2-col.Radius)
	return cp.Vector{X: 0, Y: -half}, cp.Vector{X: 0, Y: half}
}

func (ps *PhysicsSystem) driveCharacters(w *ecs.World) {
	for e, info := range ps.entities {
		cc, ok := info.variant.(*component.CharacterController)
		if !ok || !w.IsAlive(e) {
			continue
		}
		vel := info.body.Velocity()
		vel.X = cc.MoveX * cc.Speed
		if cc.Jump && cc.Grounded {
			vel.Y = -cc.JumpSpeed
			cc.Grounded = false
		}
		cc.Jump = false
		info.body.SetVelocityVector(vel)
	}
}

func (ps *PhysicsSystem) updateGrounded(w *ecs.World) {
	for e, info := range ps.entities {
		cc, ok := info.variant.(*component.CharacterController)
		if !ok || !w.IsAlive(e) {
			continue
		}
		grounded := false
		info.body.EachArbiter(func(arb *cp.Arbiter) {
			if arb.Normal().Y > groundNormalY {
				grounded = true
			}
		})
		cc.Grounded = grounded
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if _, static := info.variant.(*component.StaticBody); static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		t.SetPosition(info.body.Position())
		t.Rotation = info.body.Angle()
	}
}

// moveStaticBodies follows transforms that were moved from outside the
// simulation. Static shapes live in a separate spatial index, so they are
// reindexed after the move.
func (ps *PhysicsSystem) moveStaticBodies(w *ecs.World) {
	for e, info := range ps.entities {
		if _, static := info.variant.(*component.StaticBody); !static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if info.body.Position() == t.Position() && info.body.Angle() == t.Rotation {
			continue
		}
		info.body.SetPosition(t.Position())
		info.body.SetAngle(t.Rotation)
		ps.space.ReindexShapesForBody(info.body)
	}
}

// cleanupEntities removes bodies whose entity died, lost its physics body,
// or had its physics variant replaced. Replaced variants are rebuilt by the
// next syncEntities.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) {
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Variant == info.variant {
				continue
			}
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
			delete(ps.shapeOwner, shape)
		}
		ps.space.RemoveBody(info.body)
		delete(ps.entities, e)
	}
}

// BodyCount reports how many entities currently have a simulated body.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}
