package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/config"
)

func main() {
	flag.Parse()

	settings, err := config.Load(*configPathFlag)
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}
	if *mapPathFlag != "" {
		settings.Map.Path = *mapPathFlag
	}

	g, err := newGame(settings)
	if err != nil {
		log.Fatalf("World setup failed: %v", err)
	}

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(defaultPGOPath)
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		defer stop()
		g.enableAutoWalk(pgoRecordDuration, stop)
	}

	scale := *windowScaleFlag
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(settings.Screen.Width*scale, settings.Screen.Height*scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}
