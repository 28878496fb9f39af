package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and decodes a YAML prefab file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeSpec converts a loosely typed value, such as a map coming from a
// script, into T by round-tripping it through YAML.
func DecodeSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

// PrimitiveSpec is a primitive prefab: what to build and where.
type PrimitiveSpec struct {
	Name      string        `yaml:"name"`
	Type      string        `yaml:"type"`
	Transform TransformSpec `yaml:"transform"`
	Options   OptionsSpec   `yaml:"options"`
}

// OptionsSpec mirrors the primitive creation options. Pointer fields are
// optional; nil keeps the option default.
type OptionsSpec struct {
	EntityName      string       `yaml:"entity_name"`
	Material        string       `yaml:"material"`
	IncludeCollider *bool        `yaml:"include_collider"`
	Size            *Vec2Spec    `yaml:"size"`
	RenderGroup     *int         `yaml:"render_group"`
	Depth           *float64     `yaml:"depth"`
	Physics         *PhysicsSpec `yaml:"physics"`
}

// PhysicsSpec selects a physics variant. Kind is one of rigid_body,
// static_body, character_controller or none. Unset tuning fields keep the
// variant's defaults.
type PhysicsSpec struct {
	Kind          string   `yaml:"kind"`
	Mass          *float64 `yaml:"mass"`
	Friction      *float64 `yaml:"friction"`
	Elasticity    *float64 `yaml:"elasticity"`
	GravityScale  *float64 `yaml:"gravity_scale"`
	FixedRotation bool     `yaml:"fixed_rotation"`
	Sensor        bool     `yaml:"sensor"`
	Speed         *float64 `yaml:"speed"`
	JumpSpeed     *float64 `yaml:"jump_speed"`
}

func LoadPrimitiveSpec(name string) (PrimitiveSpec, error) {
	spec, err := LoadSpec[PrimitiveSpec](name)
	if err != nil {
		return spec, err
	}
	if spec.Type == "" {
		return spec, fmt.Errorf("prefabs: %s: missing primitive type", name)
	}
	return spec, nil
}

type MaterialSpec struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Image string `yaml:"image"`
}

type MaterialsSpec struct {
	Materials []MaterialSpec `yaml:"materials"`
}

func LoadMaterialsSpec() (MaterialsSpec, error) {
	return LoadSpec[MaterialsSpec]("materials.yaml")
}

type CameraSpec struct {
	Transform     TransformSpec `yaml:"transform"`
	Zoom          float64       `yaml:"zoom"`
	PixelsPerUnit float64       `yaml:"pixels_per_unit"`
	// Groups lists the render groups the camera draws; empty means all.
	Groups     []int   `yaml:"groups"`
	Target     string  `yaml:"target"`
	Smoothness float64 `yaml:"smoothness"`
}

// WorldSpec holds simulation and presentation settings for a scene.
type WorldSpec struct {
	Gravity    Vec2Spec   `yaml:"gravity"`
	Iterations int        `yaml:"iterations"`
	StepRate   int        `yaml:"step_rate"`
	Background string     `yaml:"background"`
	Camera     CameraSpec `yaml:"camera"`
}

func LoadWorldSpec() (WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return spec, err
	}
	if spec.Iterations <= 0 {
		spec.Iterations = 10
	}
	if spec.StepRate <= 0 {
		spec.StepRate = 60
	}
	if spec.Camera.Zoom <= 0 {
		spec.Camera.Zoom = 1
	}
	if spec.Camera.PixelsPerUnit <= 0 {
		spec.Camera.PixelsPerUnit = 48
	}
	return spec, nil
}
