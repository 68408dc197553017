package scene

import (
	"github.com/Faultbox/blockyworld/internal/engine/animation"
	"github.com/Faultbox/blockyworld/internal/engine/camera"
	"github.com/Faultbox/blockyworld/internal/engine/lighting"
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/internal/engine/world"
)

// Elapsed returns the scene clock in seconds.
func (s *State) Elapsed() float64 { return s.clock.Seconds() }

// SetJointManualAngle sets a slider-driven joint group angle, used while
// the matching animation is off.
func (s *State) SetJointManualAngle(g animation.JointGroup, deg float32) error {
	return s.anim.SetManual(g, deg)
}

// ToggleAnimation switches running or tail sway.
func (s *State) ToggleAnimation(k animation.Kind, on bool) {
	s.anim.Toggle(k, on)
}

// Animating reports whether an animation is enabled.
func (s *State) Animating(k animation.Kind) bool {
	st := s.anim.State()
	if k == animation.TailSway {
		return st.TailSway
	}
	return st.Running
}

// TriggerPoke starts the poke reaction now.
func (s *State) TriggerPoke() {
	s.anim.TriggerPoke(s.clock.Seconds())
}

// TriggerPokeAt starts the poke reaction at t seconds.
func (s *State) TriggerPokeAt(t float64) {
	s.anim.TriggerPoke(t)
}

// Camera movement.
func (s *State) MoveForward() { s.cam.Forward() }
func (s *State) MoveBack()    { s.cam.Back() }
func (s *State) MoveLeft()    { s.cam.Left() }
func (s *State) MoveRight()   { s.cam.Right() }
func (s *State) RotateLeft()  { s.cam.RotateLeft() }
func (s *State) RotateRight() { s.cam.RotateRight() }
func (s *State) TiltUp()      { s.cam.TiltUp() }
func (s *State) TiltDown()    { s.cam.TiltDown() }

// Drag spins the whole scene on the turntable.
func (s *State) Drag(dx, dy float32) { s.table.Drag(dx, dy) }

// SetGlobalYaw sets the turntable's base yaw in degrees.
func (s *State) SetGlobalYaw(deg float32) { s.table.BaseYaw = deg }

// ResetView stops the turntable and returns it to rest.
func (s *State) ResetView() { s.table.Reset() }

// SetNormalDebug draws every surface with its normal as color.
func (s *State) SetNormalDebug(on bool) { s.normalDebug = on }

// NormalDebug reports whether normal debug mode is on.
func (s *State) NormalDebug() bool { return s.normalDebug }

// SetLightOn switches the point light; on turns the spotlight off.
func (s *State) SetLightOn(on bool) { s.light.SetOn(on) }

// SetSpotlight switches the camera spotlight; on turns the point light off.
func (s *State) SetSpotlight(on bool) { s.light.SetSpot(on) }

// LightOn reports whether the point light is lit.
func (s *State) LightOn() bool { return s.light.On }

// Spotlight reports whether the light follows the camera as a spot.
func (s *State) Spotlight() bool { return s.light.Spot }

// SetLightColor sets the light color, each channel 0-1.
func (s *State) SetLightColor(r, g, b float32) { s.light.SetColor(r, g, b) }

// SetLightPosition moves the point light. X is overridden while the
// light orbits.
func (s *State) SetLightPosition(x, y, z float32) {
	s.light.Position.X, s.light.Position.Y, s.light.Position.Z = x, y, z
}

// SetViewport updates the projection aspect ratio.
func (s *State) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.aspect = float32(width) / float32(height)
	s.viewW, s.viewH = width, height
}

// Camera returns the first-person camera.
func (s *State) Camera() *camera.FirstPerson { return s.cam }

// Turntable returns the scene turntable.
func (s *State) Turntable() *camera.Turntable { return s.table }

// Animation returns the pose controller.
func (s *State) Animation() *animation.Controller { return s.anim }

// Light returns the scene light.
func (s *State) Light() *lighting.Light { return s.light }

// Grid returns the block map.
func (s *State) Grid() *world.Grid { return s.grid }

// Bindings returns the program bindings resolved by Init.
func (s *State) Bindings() render.Bindings { return s.bindings }

// DrawsPerFrame returns how many draws a frame attempts in the current
// light mode.
func (s *State) DrawsPerFrame() int {
	n := s.grid.BlockCount() + len(s.structures) + 1 + s.dog.Len() + 2
	if s.light.MarkerVisible() {
		n++
	}
	return n
}
