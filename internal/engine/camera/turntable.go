package camera

import (
	"github.com/charmbracelet/harmonica"

	"github.com/Faultbox/blockyworld/pkg/math"
)

// MaxTurntablePitch limits how far the scene tips toward or away from
// the viewer, in degrees.
const MaxTurntablePitch = 90

// spinAxis is one turntable axis. Drags add velocity which a critically
// damped spring brings back to rest.
type spinAxis struct {
	pos    float64
	vel    float64
	accel  float64
	spring harmonica.Spring
}

func newSpinAxis(fps int) spinAxis {
	return spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *spinAxis) update() {
	a.pos += a.vel
	a.vel, a.accel = a.spring.Update(a.vel, a.accel, 0)
}

// Turntable rotates the whole scene about the origin: yaw about Y plus a
// pitch about X, the result feeding the global rotation uniform.
type Turntable struct {
	// BaseYaw is a fixed yaw offset in degrees, set from the UI.
	BaseYaw float32
	// DragSpeed converts drag pixels to degrees per frame of spin.
	DragSpeed float32

	yaw, pitch spinAxis
	fps        int
}

// NewTurntable creates a turntable stepped fps times a second.
func NewTurntable(fps int, dragSpeed float32) *Turntable {
	if fps <= 0 {
		fps = 60
	}
	return &Turntable{
		DragSpeed: dragSpeed,
		yaw:       newSpinAxis(fps),
		pitch:     newSpinAxis(fps),
		fps:       fps,
	}
}

// Drag adds spin from a mouse drag delta in pixels.
func (t *Turntable) Drag(dx, dy float32) {
	t.yaw.vel += float64(dx * t.DragSpeed)
	t.pitch.vel += float64(dy * t.DragSpeed)
}

// Update advances one frame. Pitch stops dead at the clamp.
func (t *Turntable) Update() {
	t.yaw.update()
	t.pitch.update()

	if t.pitch.pos > MaxTurntablePitch {
		t.pitch.pos, t.pitch.vel, t.pitch.accel = MaxTurntablePitch, 0, 0
	}
	if t.pitch.pos < -MaxTurntablePitch {
		t.pitch.pos, t.pitch.vel, t.pitch.accel = -MaxTurntablePitch, 0, 0
	}
}

// Yaw returns the drag yaw in degrees, excluding BaseYaw.
func (t *Turntable) Yaw() float32 { return float32(t.yaw.pos) }

// Pitch returns the pitch in degrees.
func (t *Turntable) Pitch() float32 { return float32(t.pitch.pos) }

// Spinning reports whether either axis still has velocity.
func (t *Turntable) Spinning() bool {
	const rest = 1e-4
	return t.yaw.vel > rest || t.yaw.vel < -rest || t.pitch.vel > rest || t.pitch.vel < -rest
}

// Matrix returns the global rotation: pitch about X, then yaw about Y.
func (t *Turntable) Matrix() math.Mat4 {
	return math.RotateDeg(t.Pitch(), 1, 0, 0).Rotated(t.BaseYaw+t.Yaw(), 0, 1, 0)
}

// Reset stops all spin and returns to the rest orientation.
func (t *Turntable) Reset() {
	t.yaw = newSpinAxis(t.fps)
	t.pitch = newSpinAxis(t.fps)
}
