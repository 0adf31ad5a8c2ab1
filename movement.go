package main

import (
	"math/rand"
	"time"

	"gridcaster/internal/raycast"
)

// autoWalker drives the held-key state with random bursts of walking and
// turning for a limited duration. It steers the same InputState the
// keyboard does, so the scripted walk exercises the real frame path.
type autoWalker struct {
	deadline time.Time
	rand     *rand.Rand
	frames   int
	forward  bool
	turn     raycast.Key
	onDone   func()
}

// newAutoWalker schedules scripted movement until now+duration. onDone runs
// once when the walk ends.
func newAutoWalker(now time.Time, duration time.Duration, onDone func()) *autoWalker {
	return &autoWalker{
		deadline: now.Add(duration),
		rand:     rand.New(rand.NewSource(now.UnixNano() + 3)),
		onDone:   onDone,
	}
}

// steer overwrites in with this tick's scripted keys and reports whether the
// walk is still running. ahead is the distance to the wall straight ahead;
// the walker turns in place instead of walking into close walls.
func (a *autoWalker) steer(in *raycast.InputState, ahead float64, now time.Time) bool {
	if now.After(a.deadline) {
		*in = raycast.InputState{}
		if a.onDone != nil {
			a.onDone()
			a.onDone = nil
		}
		return false
	}
	if a.frames <= 0 {
		a.randomizeDirection()
	}
	a.frames--

	forward, turn := a.forward, a.turn
	if ahead < autoWalkMinClearance {
		forward = false
		if turn == raycast.KeyNone {
			turn = raycast.KeyTurnLeft
		}
	}
	*in = raycast.InputState{
		Forward:   forward,
		TurnLeft:  turn == raycast.KeyTurnLeft,
		TurnRight: turn == raycast.KeyTurnRight,
	}
	return true
}

// randomizeDirection picks the next burst of movement.
func (a *autoWalker) randomizeDirection() {
	a.forward = a.rand.Intn(4) != 0
	switch a.rand.Intn(3) {
	case 0:
		a.turn = raycast.KeyTurnLeft
	case 1:
		a.turn = raycast.KeyTurnRight
	default:
		a.turn = raycast.KeyNone
	}
	a.frames = autoWalkMinFrames + a.rand.Intn(autoWalkFrameSpread)
}
