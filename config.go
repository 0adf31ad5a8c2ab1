package main

import "time"

// Window, pacing and scripted-walk constants for the windowed renderer. View
// geometry, movement rates and the map come from internal/config instead.
const (
	windowTitle          = "gridcaster"
	defaultTPS           = 60
	defaultWindowScale   = 1
	firstFrameDuration   = 10 * time.Millisecond
	maxFrameDuration     = 250 * time.Millisecond
	statusLogInterval    = time.Second
	pgoRecordDuration    = 15 * time.Second
	defaultPGOPath       = "default.pgo"
	autoWalkMinFrames    = 20
	autoWalkFrameSpread  = 50
	autoWalkMinClearance = 1.5
)
