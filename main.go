package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("debug", false, "draw collider outlines and log at debug level")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", "demo", "scene script in prefabs/scripts (basename, .tengo optional)")
	watch := flag.Bool("watch", true, "reload the scene when prefabs or scripts change on disk")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("toolkit2d")

	game, err := NewGame(*sceneName, *debug, *watch)
	if err != nil {
		log.WithFields(log.Fields{"scene": *sceneName, "err": err}).Fatal("Loading scene")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
