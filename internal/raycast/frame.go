package raycast

import (
	"image/color"
	"math"
	"time"
)

// Surface is the presentation target for one frame.
type Surface interface {
	Clear(c color.Gray)
	DrawVerticalLine(column, yTop, yBottom int, c color.Gray)
	Present()
}

// Clock reports the wall time taken by the previous frame.
type Clock interface {
	Tick() time.Duration
}

// Player is the viewer's position and facing angle in radians.
type Player struct {
	Pos   Point
	Angle float64
}

// Projection describes the screen the sweep is rendered to.
type Projection struct {
	Columns     int
	Rows        int
	FOV         float64 // radians, in (0, π)
	MinDistance float64
}

// Kinematics holds the per-10ms movement and turn rates.
type Kinematics struct {
	BaseMove float64
	BaseTurn float64
}

// Reference rates and projection values.
const (
	DefaultBaseMove    = 0.03
	DefaultBaseTurn    = 0.05
	DefaultFOVDegrees  = 100.0
	DefaultMinDistance = 1.0
)

// Column is the result of one column of the last rendered frame.
type Column struct {
	Angle      float64
	Raw        float64
	Distance   float64
	Height     int
	Brightness uint8
}

// FrameController owns the player and drives input integration, the column
// sweep and presentation. The player does not collide with walls and can
// walk into occupied cells.
type FrameController struct {
	Player Player
	Input  InputState

	caster  Caster
	proj    Projection
	kin     Kinematics
	columns []Column
}

// NewFrameController wires a caster, projection and kinematics to a player
// starting at start.
func NewFrameController(c Caster, proj Projection, kin Kinematics, start Player) *FrameController {
	if proj.Columns < 1 {
		proj.Columns = 1
	}
	if proj.Rows < 1 {
		proj.Rows = 1
	}
	if proj.FOV <= 0 || proj.FOV >= math.Pi {
		proj.FOV = Radians(DefaultFOVDegrees)
	}
	if proj.MinDistance <= 0 {
		proj.MinDistance = DefaultMinDistance
	}
	start.Angle = NormalizeAngle(start.Angle)
	return &FrameController{
		Player:  start,
		caster:  c,
		proj:    proj,
		kin:     kin,
		columns: make([]Column, proj.Columns),
	}
}

// Projection returns the effective projection after defaults were applied.
func (f *FrameController) Projection() Projection { return f.proj }

// HandleEvents applies this frame's events to the held-key state and
// reports whether a quit was requested.
func (f *FrameController) HandleEvents(events []Event) (quit bool) {
	for _, e := range events {
		if f.Input.Apply(e) {
			quit = true
		}
	}
	return quit
}

// Integrate moves and turns the player for elapsed time using the held keys.
func (f *FrameController) Integrate(elapsed time.Duration) {
	if elapsed <= 0 || f.Input.Idle() {
		return
	}
	micros := float64(elapsed.Microseconds())
	moveSpeed := f.kin.BaseMove * micros / 10000
	turnSpeed := f.kin.BaseTurn * micros / 10000

	dx := math.Cos(f.Player.Angle) * moveSpeed
	dy := -math.Sin(f.Player.Angle) * moveSpeed
	if f.Input.Forward {
		f.Player.Pos.X += dx
		f.Player.Pos.Y += dy
	}
	if f.Input.Back {
		f.Player.Pos.X -= dx
		f.Player.Pos.Y -= dy
	}
	if f.Input.TurnLeft {
		f.Player.Angle += turnSpeed
	}
	if f.Input.TurnRight {
		f.Player.Angle -= turnSpeed
	}
	f.Player.Angle = NormalizeAngle(f.Player.Angle)
}

// Render sweeps the field of view from left to right, one cast per column,
// and draws each wall slice centred on the horizon. Distances are clamped
// to MinDistance and corrected for fisheye before projection.
func (f *FrameController) Render(s Surface) {
	s.Clear(color.Gray{})

	cols, rows := f.proj.Columns, f.proj.Rows
	mid := rows / 2
	step := f.proj.FOV / float64(cols)
	ray := Ray{Origin: f.Player.Pos, Angle: NormalizeAngle(f.Player.Angle + f.proj.FOV/2)}

	for col := 0; col < cols; col++ {
		raw := f.caster.Cast(ray)
		d := math.Max(raw, f.proj.MinDistance)
		d *= math.Cos(f.Player.Angle - ray.Angle)
		if d < f.proj.MinDistance {
			d = f.proj.MinDistance
		}
		h := SliceHeight(rows, d)
		b := Brightness(d)

		top := clampInt(mid-h/2, 0, rows-1)
		bottom := clampInt(mid+h/2, 0, rows-1)
		s.DrawVerticalLine(col, top, bottom, color.Gray{Y: b})

		f.columns[col] = Column{Angle: ray.Angle, Raw: raw, Distance: d, Height: h, Brightness: b}
		ray.Angle = NormalizeAngle(ray.Angle - step)
	}

	s.Present()
}

// Frame runs one full frame: events, kinematics, sweep and present. Nothing
// is integrated or drawn once a quit is seen.
func (f *FrameController) Frame(events []Event, elapsed time.Duration, s Surface) (quit bool) {
	if f.HandleEvents(events) {
		return true
	}
	f.Integrate(elapsed)
	f.Render(s)
	return false
}

// Columns returns the column results of the last Render. The slice is
// reused by the next frame.
func (f *FrameController) Columns() []Column { return f.columns }

// CenterDistance casts straight ahead from the player.
func (f *FrameController) CenterDistance() float64 {
	return f.caster.Cast(Ray{Origin: f.Player.Pos, Angle: f.Player.Angle})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
