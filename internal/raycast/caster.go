package raycast

import "math"

// DefaultDOF is the depth of field used when none is configured.
const DefaultDOF = 20.0

// unreachableStep replaces the per-axis step when the ray runs parallel to
// that axis, so the axis is never selected for stepping.
const unreachableStep = 1e30

// Ray is a cast request: an origin and a direction in radians.
type Ray struct {
	Origin Point
	Angle  float64
}

// Caster binds a grid and depth of field for repeated casts.
type Caster struct {
	Grid *Grid
	DOF  float64
}

// NewCaster returns a Caster over g. A non-positive dof selects DefaultDOF.
func NewCaster(g *Grid, dof float64) Caster {
	if dof <= 0 || math.IsNaN(dof) || math.IsInf(dof, 0) {
		dof = DefaultDOF
	}
	return Caster{Grid: g, DOF: dof}
}

// Cast returns the distance along r to the first wall, capped at c.DOF.
func (c Caster) Cast(r Ray) float64 {
	return Cast(r.Origin, r.Angle, c.Grid, c.DOF)
}

// Cast walks g from origin along angle one grid line at a time and returns
// the distance to the first wall cell, or dof when nothing is hit within
// range. The result is always in [0, dof].
func Cast(origin Point, angle float64, g *Grid, dof float64) float64 {
	d, _ := cast(origin, angle, g, dof)
	return d
}

// maxCastSteps bounds the number of grid-line crossings a ray may take
// before it must have travelled past dof.
func maxCastSteps(dof float64) int {
	return 2*int(math.Ceil(dof)) + 4
}

// axisStep is the ray length needed to cross one whole cell along an axis
// whose direction component is comp.
func axisStep(comp float64) float64 {
	if comp == 0 {
		return unreachableStep
	}
	step := math.Abs(1 / comp)
	if math.IsInf(step, 0) || math.IsNaN(step) || step > unreachableStep {
		return unreachableStep
	}
	return step
}

func cast(origin Point, angle float64, g *Grid, dof float64) (float64, int) {
	if dof < 0 || math.IsNaN(dof) {
		dof = 0
	}
	if g == nil || !finite(origin.X) || !finite(origin.Y) {
		return dof, 0
	}
	angle = NormalizeAngle(angle)

	stepX := axisStep(math.Cos(angle))
	stepY := axisStep(math.Sin(angle))
	dirX, dirY := QuadrantSigns(angle)
	fdx, fdy := float64(dirX), float64(dirY)

	tileX, tileY := math.Floor(origin.X), math.Floor(origin.Y)
	fracX, fracY := origin.X-tileX, origin.Y-tileY

	remX := (0.5 + 0.5*fdx - fracX*fdx) * stepX
	remY := (0.5 + 0.5*fdy - fracY*fdy) * stepY

	col, row := int(tileX), int(tileY)
	travelled := 0.0
	limit := maxCastSteps(dof)
	for steps := 1; steps <= limit; steps++ {
		if remX < remY {
			remY -= remX
			travelled += math.Abs(remX)
			remX = stepX
			col += dirX
		} else {
			remX -= remY
			travelled += math.Abs(remY)
			remY = stepY
			row += dirY
		}

		if travelled > dof {
			return dof, steps
		}
		if g.InBounds(col, row) && g.At(col, row) == Wall {
			return travelled, steps
		}
	}
	return dof, limit
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) < 1<<30
}
