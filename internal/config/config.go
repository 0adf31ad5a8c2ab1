// Package config loads gridcaster settings from an optional YAML file,
// GRIDCASTER_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"gridcaster/internal/raycast"
)

// EnvPrefix is prepended to upper-cased, underscore-joined keys when reading
// overrides from the environment, e.g. GRIDCASTER_VIEW_DOF.
const EnvPrefix = "GRIDCASTER"

var ErrInvalid = errors.New("invalid config")

// Settings is the full runtime configuration.
type Settings struct {
	Screen   ScreenConfig   `mapstructure:"screen"`
	View     ViewConfig     `mapstructure:"view"`
	Movement MovementConfig `mapstructure:"movement"`
	Player   PlayerConfig   `mapstructure:"player"`
	Map      MapConfig      `mapstructure:"map"`
}

// ScreenConfig is the logical resolution; Width is also the ray count.
type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type ViewConfig struct {
	FOVDegrees  float64 `mapstructure:"fovDegrees"`
	DOF         float64 `mapstructure:"dof"`
	MinDistance float64 `mapstructure:"minDistance"`
}

// MovementConfig rates are per 10ms of frame time.
type MovementConfig struct {
	BaseMove float64 `mapstructure:"baseMove"`
	BaseTurn float64 `mapstructure:"baseTurn"`
}

type PlayerConfig struct {
	X            float64 `mapstructure:"x"`
	Y            float64 `mapstructure:"y"`
	AngleDegrees float64 `mapstructure:"angleDegrees"`
}

// MapConfig selects the map: a map file when Path is set, otherwise Rows.
type MapConfig struct {
	Path string   `mapstructure:"path"`
	Rows []string `mapstructure:"rows"`
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault("screen.width", 960)
	vp.SetDefault("screen.height", 540)
	vp.SetDefault("view.fovDegrees", raycast.DefaultFOVDegrees)
	vp.SetDefault("view.dof", raycast.DefaultDOF)
	vp.SetDefault("view.minDistance", raycast.DefaultMinDistance)
	vp.SetDefault("movement.baseMove", raycast.DefaultBaseMove)
	vp.SetDefault("movement.baseTurn", raycast.DefaultBaseTurn)
	vp.SetDefault("player.x", 5.0)
	vp.SetDefault("player.y", 5.0)
	vp.SetDefault("player.angleDegrees", 0.0)
	vp.SetDefault("map.path", "")
	vp.SetDefault("map.rows", DefaultRows)
}

// Load reads settings from path (skipped when empty), applies environment
// overrides and validates the result.
func Load(path string) (*Settings, error) {
	vp := viper.New()
	setDefaults(vp)
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
	}

	s := &Settings{}
	if err := vp.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// minDistanceFloor keeps rows/minDistance a sane slice height.
const minDistanceFloor = 1e-3

// Validate checks ranges that would otherwise produce a degenerate view.
func (s *Settings) Validate() error {
	switch {
	case s.Screen.Width < 1 || s.Screen.Height < 1:
		return fmt.Errorf("screen %dx%d: %w", s.Screen.Width, s.Screen.Height, ErrInvalid)
	case !(s.View.FOVDegrees > 0 && s.View.FOVDegrees < 180):
		return fmt.Errorf("fovDegrees %v must be in (0, 180): %w", s.View.FOVDegrees, ErrInvalid)
	case !(s.View.DOF > 0) || math.IsInf(s.View.DOF, 0):
		return fmt.Errorf("dof %v must be positive: %w", s.View.DOF, ErrInvalid)
	case !(s.View.MinDistance >= minDistanceFloor) || math.IsInf(s.View.MinDistance, 0):
		return fmt.Errorf("minDistance %v must be at least %v: %w", s.View.MinDistance, minDistanceFloor, ErrInvalid)
	case s.Movement.BaseMove < 0 || s.Movement.BaseTurn < 0:
		return fmt.Errorf("movement rates must not be negative: %w", ErrInvalid)
	}
	return nil
}

// Grid resolves the configured map.
func (s *Settings) Grid() (*raycast.Grid, error) {
	if s.Map.Path != "" {
		m, err := LoadMap(s.Map.Path)
		if err != nil {
			return nil, err
		}
		return m.Grid, nil
	}
	g, err := raycast.GridFromRows(s.Map.Rows)
	if err != nil {
		return nil, fmt.Errorf("map rows: %w", err)
	}
	return g, nil
}

// NewFrameController builds the grid, caster and player described by s.
func (s *Settings) NewFrameController() (*raycast.FrameController, *raycast.Grid, error) {
	g, err := s.Grid()
	if err != nil {
		return nil, nil, err
	}
	n := float64(g.Size())
	if !(s.Player.X > 0 && s.Player.X < n && s.Player.Y > 0 && s.Player.Y < n) {
		return nil, nil, fmt.Errorf("player start (%v, %v) outside %dx%d map: %w",
			s.Player.X, s.Player.Y, g.Size(), g.Size(), ErrInvalid)
	}
	f := raycast.NewFrameController(
		raycast.NewCaster(g, s.View.DOF),
		raycast.Projection{
			Columns:     s.Screen.Width,
			Rows:        s.Screen.Height,
			FOV:         raycast.Radians(s.View.FOVDegrees),
			MinDistance: s.View.MinDistance,
		},
		raycast.Kinematics{BaseMove: s.Movement.BaseMove, BaseTurn: s.Movement.BaseTurn},
		raycast.Player{
			Pos:   raycast.Point{X: s.Player.X, Y: s.Player.Y},
			Angle: raycast.Radians(s.Player.AngleDegrees),
		},
	)
	return f, g, nil
}
