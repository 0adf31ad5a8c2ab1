package main

import (
	"time"

	"gridcaster/internal/raycast"
)

var _ raycast.Clock = (*frameClock)(nil)

// frameClock measures the wall time between successive ticks.
type frameClock struct {
	last time.Time
	now  func() time.Time
}

func newFrameClock() *frameClock {
	return &frameClock{now: time.Now}
}

// Tick returns the time since the previous tick at microsecond resolution.
// The first tick reports firstFrameDuration, and long stalls (window drags,
// debugger pauses) are capped at maxFrameDuration so the player does not
// jump across the map.
func (c *frameClock) Tick() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return firstFrameDuration
	}
	d := t.Sub(c.last).Truncate(time.Microsecond)
	c.last = t
	if d > maxFrameDuration {
		d = maxFrameDuration
	}
	if d < 0 {
		d = 0
	}
	return d
}
