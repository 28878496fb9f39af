package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/ecs/entity"
	"github.com/milk9111/toolkit2d/ecs/render"
	"github.com/milk9111/toolkit2d/ecs/system"
	"github.com/milk9111/toolkit2d/prefabs"
	log "github.com/sirupsen/logrus"
)

var errPrefabsFailed = errors.New("prefabcheck: one or more prefabs failed")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type result struct {
	name string
	kind string
	body bool
	pos  cp.Vector
	err  error
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("prefabcheck", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", prefabs.DiskDir, "prefab directory checked before the embedded prefabs")
	steps := fs.Int("steps", 120, "physics steps to run per prefab")
	verbose := fs.Bool("v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	prefabs.DiskDir = *dir

	materialsSpec, err := prefabs.LoadMaterialsSpec()
	if err != nil {
		return err
	}
	lib, err := render.LoadMaterialLibrary(materialsSpec)
	if err != nil {
		return fmt.Errorf("prefabcheck: materials: %w", err)
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return err
	}
	cfg := system.PhysicsConfig{
		Gravity:    cp.Vector{X: worldSpec.Gravity.X, Y: worldSpec.Gravity.Y},
		Iterations: worldSpec.Iterations,
		StepRate:   worldSpec.StepRate,
	}

	names := fs.Args()
	if len(names) == 0 {
		names, err = prefabs.PrimitiveNames()
		if err != nil {
			return err
		}
	}

	results := make([]result, 0, len(names))
	failed := false
	for _, name := range names {
		res := checkPrefab(name, lib, cfg, *steps)
		if res.err != nil {
			failed = true
			log.WithFields(log.Fields{"prefab": name, "err": res.err}).Warn("Prefab failed")
		}
		results = append(results, res)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PREFAB\tTYPE\tBODY\tREST\tSTATUS")
	for _, res := range results {
		status := "ok"
		if res.err != nil {
			status = res.err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%.2f,%.2f\t%s\n", res.name, res.kind, res.body, res.pos.X, res.pos.Y, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed {
		return errPrefabsFailed
	}
	return nil
}

// checkPrefab builds one prefab into a scratch world and lets it settle.
func checkPrefab(name string, lib *render.MaterialLibrary, cfg system.PhysicsConfig, steps int) result {
	res := result{name: name}
	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(cfg)
	w.AddSystem(physics)

	e, err := entity.BuildPrimitive(w, lib, name)
	if err != nil {
		res.err = err
		return res
	}
	if p, ok := ecs.Get(w, e, component.Primitive2DComponent.Kind()); ok {
		res.kind = p.Type.String()
	}
	for i := 0; i < steps; i++ {
		w.Update()
	}
	res.body = physics.BodyCount() > 0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		res.pos = t.Position()
	}
	return res
}
