package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/entity"
	"github.com/milk9111/toolkit2d/ecs/render"
	"github.com/milk9111/toolkit2d/ecs/system"
	"github.com/milk9111/toolkit2d/prefabs"
	log "github.com/sirupsen/logrus"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	sceneTimeout = 2 * time.Second
)

type Game struct {
	scene string
	debug bool

	world   *ecs.World
	physics *system.PhysicsSystem
	render  *system.RenderSystem
	watcher *prefabs.Watcher
}

func NewGame(scene string, debug, watch bool) (*Game, error) {
	g := &Game{scene: scene, debug: debug}
	if err := g.load(); err != nil {
		return nil, err
	}
	if watch {
		w, err := prefabs.NewWatcher(prefabs.DefaultDebounce, prefabs.DiskDir, prefabs.DiskDir+"/scripts")
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("Prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load builds a fresh world from the world spec, material library and scene
// script. The current world is only replaced when every step succeeds.
func (g *Game) load() error {
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return err
	}
	materialsSpec, err := prefabs.LoadMaterialsSpec()
	if err != nil {
		return err
	}
	render.ForgetImages()
	lib, err := render.LoadMaterialLibrary(materialsSpec)
	if err != nil {
		return fmt.Errorf("load materials: %w", err)
	}
	background, err := render.ParseColor(worldSpec.Background)
	if err != nil {
		return fmt.Errorf("world background: %w", err)
	}

	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(system.PhysicsConfig{
		Gravity:    cp.Vector{X: worldSpec.Gravity.X, Y: worldSpec.Gravity.Y},
		Iterations: worldSpec.Iterations,
		StepRate:   worldSpec.StepRate,
	})
	renderer := system.NewRenderSystem(background, physics)
	renderer.Debug = g.debug

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(physics)
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(renderer)

	if _, err := entity.NewCamera(w, worldSpec.Camera); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), sceneTimeout)
	defer cancel()
	if _, err := system.RunSceneScript(ctx, w, lib, g.scene); err != nil {
		return err
	}

	g.world = w
	g.physics = physics
	g.render = renderer
	return nil
}

func (g *Game) reload(reason string) {
	if err := g.load(); err != nil {
		log.WithFields(log.Fields{"scene": g.scene, "reason": reason, "err": err}).Error("Reloading scene")
		return
	}
	log.WithFields(log.Fields{"scene": g.scene, "reason": reason}).Info("Scene reloaded")
}

func (g *Game) Update() error {
	g.pollWatcher()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload("key")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.render.Debug = !g.render.Debug
	}

	g.world.Update()

	if log.IsLevelEnabled(log.DebugLevel) {
		for _, c := range g.world.Events().Contacts() {
			log.WithFields(log.Fields{"a": c.A, "b": c.B}).Debug("Contact")
		}
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change.Path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.WithFields(log.Fields{"err": err}).Warn("Prefab watcher")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  bodies: %d  [R] reload  [F1] colliders", ebiten.ActualFPS(), g.physics.BodyCount()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
