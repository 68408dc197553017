// Package lighting drives the scene's single light: an orbiting point
// light, or a spotlight carried by the camera.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/blockyworld/internal/engine/camera"
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// DefaultSpotDirection is used when the spotlight has no usable aim.
var DefaultSpotDirection = math.V3(0, -1, 0)

// Light is the scene light. On and Spot are exclusive when set through
// SetOn and SetSpot.
type Light struct {
	Position math.Vec3
	Color    math.Vec3 // RGB, each 0-1
	On       bool
	Spot     bool
	// Orbit swings the point light along X with cos(t).
	Orbit bool

	SpotCutoffCos  float32 // cosine of the outer cone angle
	SpotFeatherCos float32 // cosine of the inner cone angle
}

// NewLight returns a white orbiting point light above and behind the
// origin, with a 30 degree spot cone feathered from 22.5 degrees.
func NewLight() *Light {
	cutoff, feather := SpotCone(30, 22.5)
	return &Light{
		Position:       math.V3(0, 1, -2),
		Color:          math.V3(1, 1, 1),
		On:             true,
		Orbit:          true,
		SpotCutoffCos:  cutoff,
		SpotFeatherCos: feather,
	}
}

// SetOn switches the point light. Turning it on turns the spotlight off.
func (l *Light) SetOn(on bool) {
	l.On = on
	if on {
		l.Spot = false
	}
}

// SetSpot switches the spotlight. Turning it on turns the point light off.
func (l *Light) SetSpot(on bool) {
	l.Spot = on
	if on {
		l.On = false
	}
}

// SetColor sets the light color, clamping each channel to 0-1.
func (l *Light) SetColor(r, g, b float32) {
	l.Color = math.V3(
		math.Clamp(r, 0, 1),
		math.Clamp(g, 0, 1),
		math.Clamp(b, 0, 1),
	)
}

// Update advances the light to time t seconds and returns its uniforms.
// The spotlight sits at the camera eye and points where it looks.
func (l *Light) Update(t float64, cam *camera.FirstPerson) render.LightUniforms {
	if !l.Spot && l.Orbit {
		l.Position.X = math32.Cos(float32(t))
	}

	u := render.LightUniforms{
		Position:       l.Position,
		Color:          l.Color,
		On:             l.On,
		Spot:           l.Spot,
		SpotDirection:  DefaultSpotDirection,
		SpotCutoffCos:  l.SpotCutoffCos,
		SpotFeatherCos: l.SpotFeatherCos,
	}
	if l.Spot && cam != nil {
		u.Position = cam.Eye
		if d, ok := cam.At.Sub(cam.Eye).NormalizeOK(); ok {
			u.SpotDirection = d
		}
	}
	return u
}

// MarkerVisible reports whether the light's marker cube is drawn.
func (l *Light) MarkerVisible() bool {
	return l.On && !l.Spot
}

// Marker returns the transform and color of the small cube drawn at the
// point light. The cube is inside out so it stays lit from within.
func (l *Light) Marker() (math.Mat4, render.Color) {
	m := math.Translate(l.Position.X, l.Position.Y, l.Position.Z).Scaled(-0.1, -0.1, -0.1)
	c := render.Color{l.Color.X * 2, l.Color.Y * 2, l.Color.Z * 2, 1}
	return m, c
}
