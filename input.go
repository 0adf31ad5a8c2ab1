package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcaster/internal/raycast"
)

var _ raycast.EventSource = (*ebitenEvents)(nil)

// keyBindings maps physical keys to the keys the frame loop understands.
var keyBindings = map[ebiten.Key]raycast.Key{
	ebiten.KeyW:      raycast.KeyForward,
	ebiten.KeyS:      raycast.KeyBack,
	ebiten.KeyA:      raycast.KeyTurnLeft,
	ebiten.KeyD:      raycast.KeyTurnRight,
	ebiten.KeyEscape: raycast.KeyEscape,
}

// ebitenEvents turns ebiten's per-tick key edges and the window close
// request into frame loop events. Buffers are reused between polls.
type ebitenEvents struct {
	keys   []ebiten.Key
	events []raycast.Event
}

func (e *ebitenEvents) PollEvents() []raycast.Event {
	e.events = e.events[:0]
	if ebiten.IsWindowBeingClosed() {
		e.events = append(e.events, raycast.Quit())
	}
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		if key, ok := keyBindings[k]; ok {
			e.events = append(e.events, raycast.KeyDown(key))
		}
	}
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	for _, k := range e.keys {
		if key, ok := keyBindings[k]; ok {
			e.events = append(e.events, raycast.KeyUp(key))
		}
	}
	return e.events
}
