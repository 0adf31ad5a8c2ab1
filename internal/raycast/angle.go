// Package raycast casts rays through a square wall grid and turns the hit
// distances into a column-per-ray first-person view.
package raycast

import "math"

const twoPi = 2 * math.Pi

// axisSnap is how far a normalized angle may drift from a quarter turn and
// still be treated as exactly on it.
const axisSnap = 1e-12

var quarterTurns = [...]float64{0, math.Pi * 0.5, math.Pi, math.Pi * 1.5, twoPi}

// NormalizeAngle maps a into [0, 2π). Non-finite input maps to 0. Results
// within rounding noise of 0, π/2, π or 3π/2 come back as that exact value,
// so a+2πk always lands in the same quadrant as a.
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	if a >= 4*twoPi || a <= -4*twoPi {
		a = math.Mod(a, twoPi)
	}
	for a >= twoPi {
		a -= twoPi
	}
	for a < 0 {
		a += twoPi
	}
	for _, q := range quarterTurns {
		if math.Abs(a-q) <= axisSnap {
			a = q
			break
		}
	}
	// a tiny negative value plus 2π can round up to exactly 2π
	if a >= twoPi {
		a = 0
	}
	return a
}

// QuadrantSigns returns the per-axis stepping direction for a normalized
// angle. dirX is -1 on the open interval (π/2, 3π/2) and dirY is -1 on the
// open interval (0, π); every other angle, including the boundaries 0, π/2,
// π and 3π/2, steps +1 on that axis.
func QuadrantSigns(angle float64) (dirX, dirY int) {
	dirX, dirY = 1, 1
	if angle > math.Pi*0.5 && angle < math.Pi*1.5 {
		dirX = -1
	}
	if angle > 0 && angle < math.Pi {
		dirY = -1
	}
	return dirX, dirY
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
