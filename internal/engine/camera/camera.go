// Package camera provides the first-person walk camera and the drag
// turntable that spins the whole scene.
package camera

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/logger"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// FirstPerson is an eye/look-at/up camera moved in discrete steps.
type FirstPerson struct {
	Eye math.Vec3
	At  math.Vec3
	Up  math.Vec3

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	// Movement
	Step        float32 // world units per move
	TurnDeg     float32 // degrees per rotate or tilt
	MaxPitchDeg float32 // tilt never goes past this elevation
}

// NewFirstPerson creates a camera at the default spawn, looking into the
// map slightly up and to the right.
func NewFirstPerson() *FirstPerson {
	return &FirstPerson{
		Eye:         math.V3(0, 0, 3),
		At:          math.V3(10, 10, -100),
		Up:          math.V3(0, 1, 0),
		FOV:         60,
		Near:        0.1,
		Far:         1000,
		Step:        1,
		TurnDeg:     5,
		MaxPitchDeg: 85,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FirstPerson) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.At, c.Up)
}

// ProjectionMatrix returns the perspective projection for the given
// viewport aspect ratio. A non-positive aspect is treated as square.
func (c *FirstPerson) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.PerspectiveDeg(c.FOV, aspect, c.Near, c.Far)
}

// Direction returns the unit look direction.
func (c *FirstPerson) Direction() math.Vec3 {
	return c.At.Sub(c.Eye).Normalize()
}

// Forward moves eye and target one step along the look direction.
func (c *FirstPerson) Forward() {
	f, ok := c.At.Sub(c.Eye).NormalizeOK()
	if !ok {
		c.degenerate("forward")
		return
	}
	c.translate(f.Scale(c.Step))
}

// Back moves eye and target one step away from the look direction.
func (c *FirstPerson) Back() {
	f, ok := c.At.Sub(c.Eye).NormalizeOK()
	if !ok {
		c.degenerate("back")
		return
	}
	c.translate(f.Scale(-c.Step))
}

// Left strafes one step to the left.
func (c *FirstPerson) Left() {
	s, ok := c.right()
	if !ok {
		c.degenerate("left")
		return
	}
	c.translate(s.Scale(-c.Step))
}

// Right strafes one step to the right.
func (c *FirstPerson) Right() {
	s, ok := c.right()
	if !ok {
		c.degenerate("right")
		return
	}
	c.translate(s.Scale(c.Step))
}

// RotateLeft turns the view left about the up axis.
func (c *FirstPerson) RotateLeft() { c.yaw(c.TurnDeg, "rotate-left") }

// RotateRight turns the view right about the up axis.
func (c *FirstPerson) RotateRight() { c.yaw(-c.TurnDeg, "rotate-right") }

// TiltUp pitches the view up, stopping at MaxPitchDeg.
func (c *FirstPerson) TiltUp() { c.pitch(c.TurnDeg, "tilt-up") }

// TiltDown pitches the view down, stopping at -MaxPitchDeg.
func (c *FirstPerson) TiltDown() { c.pitch(-c.TurnDeg, "tilt-down") }

// Pitch returns the elevation of the look direction above the horizon
// plane, in degrees.
func (c *FirstPerson) Pitch() float32 {
	d, ok := c.At.Sub(c.Eye).NormalizeOK()
	if !ok {
		return 0
	}
	up, ok := c.Up.NormalizeOK()
	if !ok {
		return 0
	}
	return 90 - d.AngleBetween(up)
}

func (c *FirstPerson) translate(d math.Vec3) {
	c.Eye = c.Eye.Add(d)
	c.At = c.At.Add(d)
}

// right returns the unit strafe direction forward x up.
func (c *FirstPerson) right() (math.Vec3, bool) {
	f, ok := c.At.Sub(c.Eye).NormalizeOK()
	if !ok {
		return math.Vec3{}, false
	}
	return f.Cross(c.Up).NormalizeOK()
}

func (c *FirstPerson) yaw(deg float32, op string) {
	dir := c.At.Sub(c.Eye)
	up, ok := c.Up.NormalizeOK()
	if !ok || dir.Length() < math.Epsilon {
		c.degenerate(op)
		return
	}
	c.At = c.Eye.Add(dir.RotateAround(up, deg))
}

func (c *FirstPerson) pitch(deg float32, op string) {
	dir := c.At.Sub(c.Eye)
	d, ok := dir.NormalizeOK()
	if !ok {
		c.degenerate(op)
		return
	}
	up, ok := c.Up.NormalizeOK()
	if !ok {
		c.degenerate(op)
		return
	}
	axis, ok := d.Cross(up).NormalizeOK()
	if !ok {
		c.degenerate(op)
		return
	}

	// Only the side the step moves toward is limited, so a view that
	// starts past the limit can still tilt back.
	current := 90 - d.AngleBetween(up)
	target := current + deg
	if deg > 0 {
		target = min(target, max(current, c.MaxPitchDeg))
	} else {
		target = max(target, min(current, -c.MaxPitchDeg))
	}
	step := target - current
	if step == 0 {
		return
	}
	c.At = c.Eye.Add(dir.RotateAround(axis, step))
	c.Up = up
}

// degenerate reports an operation that could not run because the camera
// vectors collapsed. Debug builds panic.
func (c *FirstPerson) degenerate(op string) {
	if debugAssertions {
		panic(fmt.Sprintf("camera: degenerate state in %s: eye=%v at=%v up=%v", op, c.Eye, c.At, c.Up))
	}
	logger.Sampled("camera").Warn("degenerate camera state, operation ignored",
		zap.String("op", op),
		zap.Any("eye", c.Eye),
		zap.Any("at", c.At),
		zap.Any("up", c.Up),
	)
}
