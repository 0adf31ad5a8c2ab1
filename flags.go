package main

import "flag"

// Command-line flags for the windowed renderer. Everything that shapes the
// view itself lives in the YAML config so it can also be set from the
// environment.
var (
	// configPathFlag points at an optional YAML settings file.
	configPathFlag = flag.String("config", "", "path to a YAML settings file (defaults are used when empty)")

	// mapPathFlag overrides map.path from the settings file.
	mapPathFlag = flag.String("map", "", "path to a YAML map file")

	// debugFlag enables the FPS and player overlay plus a periodic status log.
	debugFlag = flag.Bool("debug", false, "show FPS and player overlay and log player state once per second")

	// windowScaleFlag multiplies the logical resolution for the window size.
	windowScaleFlag = flag.Int("window-scale", defaultWindowScale, "window size as a multiple of the logical resolution")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")
)
