package system

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/entity"
	"github.com/milk9111/toolkit2d/ecs/render"
	"github.com/milk9111/toolkit2d/prefabs"
	log "github.com/sirupsen/logrus"
)

// RunSceneScript loads a scene script and runs it once against w. Scripts
// get two host functions, both returning the new entity handle as an int:
//
//	spawn(prefab, x, y)
//	primitive(type, x, y, options)
//
// options uses the same keys as the options block of a primitive prefab. If
// the script fails, every entity it created is destroyed again.
func RunSceneScript(ctx context.Context, w *ecs.World, lib *render.MaterialLibrary, name string) ([]ecs.Entity, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scene %q: load script: %w", name, err)
	}
	return RunSceneSource(ctx, w, lib, name, src)
}

// RunSceneSource is RunSceneScript for an already loaded script body.
func RunSceneSource(ctx context.Context, w *ecs.World, lib *render.MaterialLibrary, name string, src []byte) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("scene %q: world is nil", name)
	}
	host := &sceneHost{world: w, lib: lib, scene: name}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("spawn", &tengo.UserFunction{Name: "spawn", Value: host.spawn}); err != nil {
		return nil, err
	}
	if err := script.Add("primitive", &tengo.UserFunction{Name: "primitive", Value: host.primitive}); err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scene %q: compile: %w", name, err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		host.rollback()
		return nil, fmt.Errorf("scene %q: run: %w", name, err)
	}

	log.WithFields(log.Fields{"scene": name, "entities": len(host.spawned)}).Info("Scene loaded")
	return host.spawned, nil
}

type sceneHost struct {
	world   *ecs.World
	lib     *render.MaterialLibrary
	scene   string
	spawned []ecs.Entity
}

func (h *sceneHost) spawn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	prefab, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "prefab", Expected: "string", Found: args[0].TypeName()}
	}
	x, y, err := positionArgs(args[1], args[2])
	if err != nil {
		return nil, err
	}

	spec, err := prefabs.LoadPrimitiveSpec(prefab)
	if err != nil {
		return nil, err
	}
	spec.Transform.X = x
	spec.Transform.Y = y
	return h.build(spec)
}

func (h *sceneHost) primitive(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 && len(args) != 4 {
		return nil, tengo.ErrWrongNumArguments
	}
	kind, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "type", Expected: "string", Found: args[0].TypeName()}
	}
	x, y, err := positionArgs(args[1], args[2])
	if err != nil {
		return nil, err
	}

	spec := prefabs.PrimitiveSpec{
		Type:      kind,
		Transform: prefabs.TransformSpec{X: x, Y: y},
	}
	if len(args) == 4 {
		raw := tengo.ToInterface(args[3])
		if _, isMap := raw.(map[string]interface{}); !isMap && raw != nil {
			return nil, tengo.ErrInvalidArgumentType{Name: "options", Expected: "map", Found: args[3].TypeName()}
		}
		opts, err := prefabs.DecodeSpec[prefabs.OptionsSpec](raw)
		if err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
		spec.Options = opts
	}
	return h.build(spec)
}

func (h *sceneHost) build(spec prefabs.PrimitiveSpec) (tengo.Object, error) {
	e, err := entity.BuildPrimitiveFromSpec(h.world, h.lib, spec)
	if err != nil {
		return nil, err
	}
	h.spawned = append(h.spawned, e)
	return &tengo.Int{Value: int64(e)}, nil
}

func (h *sceneHost) rollback() {
	for _, e := range h.spawned {
		ecs.DestroyEntity(h.world, e)
	}
	h.spawned = nil
}

func positionArgs(xo, yo tengo.Object) (float64, float64, error) {
	x, ok := tengo.ToFloat64(xo)
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: xo.TypeName()}
	}
	y, ok := tengo.ToFloat64(yo)
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: yo.TypeName()}
	}
	return x, y, nil
}
