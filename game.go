package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/config"
	"gridcaster/internal/raycast"
)

// Game adapts the frame controller to ebiten's Update/Draw loop. Update
// polls input and integrates movement; Draw runs the column sweep.
type Game struct {
	frame *raycast.FrameController

	width  int
	height int

	events  *ebitenEvents
	clock   *frameClock
	surface *ebitenSurface

	autoWalk *autoWalker

	lastElapsed   time.Duration
	lastStatusLog time.Time
}

// newGame builds the world described by settings.
func newGame(settings *config.Settings) (*Game, error) {
	frame, grid, err := settings.NewFrameController()
	if err != nil {
		return nil, err
	}
	log.Printf("Map loaded: %dx%d, %d walls; view %dx%d, FOV %.0f deg, DOF %.1f",
		grid.Size(), grid.Size(), grid.WallCount(),
		settings.Screen.Width, settings.Screen.Height, settings.View.FOVDegrees, settings.View.DOF)
	return &Game{
		frame:   frame,
		width:   settings.Screen.Width,
		height:  settings.Screen.Height,
		events:  &ebitenEvents{},
		clock:   newFrameClock(),
		surface: &ebitenSurface{},
	}, nil
}

// enableAutoWalk hands movement to a scripted walker for duration.
func (g *Game) enableAutoWalk(duration time.Duration, onDone func()) {
	g.autoWalk = newAutoWalker(time.Now(), duration, onDone)
}

// Update handles this tick's input events and integrates player movement.
func (g *Game) Update() error {
	elapsed := g.clock.Tick()
	g.lastElapsed = elapsed

	if g.frame.HandleEvents(g.events.PollEvents()) {
		return ebiten.Termination
	}
	if g.autoWalk != nil {
		if !g.autoWalk.steer(&g.frame.Input, g.frame.CenterDistance(), time.Now()) {
			log.Printf("Scripted walk finished")
			return ebiten.Termination
		}
	}
	g.frame.Integrate(elapsed)

	if *debugFlag {
		g.logStatus()
	}
	return nil
}

// logStatus prints the player state at most once per statusLogInterval.
func (g *Game) logStatus() {
	now := time.Now()
	if now.Sub(g.lastStatusLog) < statusLogInterval {
		return
	}
	p := g.frame.Player
	log.Printf("x:%.3f y:%.3f | angle:%.3f | ahead:%.3f | frame (micros): %d",
		p.Pos.X, p.Pos.Y, p.Angle, g.frame.CenterDistance(), g.lastElapsed.Microseconds())
	g.lastStatusLog = now
}
