package component

import "github.com/jakecoffman/cp"

// PhysicsKind names a physics variant. The values double as the kind names
// used in prefab files.
type PhysicsKind string

const (
	PhysicsRigidBody           PhysicsKind = "rigid_body"
	PhysicsStaticBody          PhysicsKind = "static_body"
	PhysicsCharacterController PhysicsKind = "character_controller"
)

// PhysicsComponent is one of *RigidBody, *StaticBody or *CharacterController.
// The set is closed; the physics system switches over it.
type PhysicsComponent interface {
	PhysicsKind() PhysicsKind
	Surface() (friction, elasticity float64)
	physicsComponent()
}

// RigidBody is simulated under gravity and contact forces.
type RigidBody struct {
	Mass       float64
	Friction   float64
	Elasticity float64
	// GravityScale multiplies world gravity for this body; 0 floats.
	GravityScale  float64
	FixedRotation bool
	Sensor        bool
}

// NewRigidBody returns a unit-mass body that falls at full gravity.
func NewRigidBody() *RigidBody {
	return &RigidBody{Mass: 1, Friction: 0.7, GravityScale: 1}
}

func (*RigidBody) PhysicsKind() PhysicsKind { return PhysicsRigidBody }
func (b *RigidBody) Surface() (float64, float64) {
	return b.Friction, b.Elasticity
}
func (*RigidBody) physicsComponent() {}

// StaticBody never moves; other bodies collide against it.
type StaticBody struct {
	Friction   float64
	Elasticity float64
	Sensor     bool
}

// NewStaticBody returns a solid, fully frictional body with no bounce.
func NewStaticBody() *StaticBody {
	return &StaticBody{Friction: 1}
}

func (*StaticBody) PhysicsKind() PhysicsKind { return PhysicsStaticBody }
func (b *StaticBody) Surface() (float64, float64) {
	return b.Friction, b.Elasticity
}
func (*StaticBody) physicsComponent() {}

// CharacterController is a non-rotating dynamic body steered by intent
// rather than forces. MoveX in [-1, 1] and Jump are written by input; the
// physics system writes Grounded back after each step.
type CharacterController struct {
	Speed     float64
	JumpSpeed float64
	Friction  float64

	MoveX    float64
	Jump     bool
	Grounded bool
}

// NewCharacterController returns a frictionless controller that walks at 4
// units per second and jumps at 7.
func NewCharacterController() *CharacterController {
	return &CharacterController{Speed: 4, JumpSpeed: 7, Friction: 0}
}

func (*CharacterController) PhysicsKind() PhysicsKind { return PhysicsCharacterController }
func (c *CharacterController) Surface() (float64, float64) {
	return c.Friction, 0
}
func (*CharacterController) physicsComponent() {}

// PhysicsBody stores Chipmunk2D runtime data for an entity's physics variant.
// Body and Shapes are owned by the physics system and nil until it first
// syncs the entity.
type PhysicsBody struct {
	Variant PhysicsComponent
	Body    *cp.Body
	Shapes  []*cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
