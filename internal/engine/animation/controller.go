package animation

import (
	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/engine/rig"
	"github.com/Faultbox/blockyworld/internal/logger"
)

// Phase is the poke reaction state.
type Phase uint8

const (
	Idle Phase = iota
	Poking
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Poking {
		return "poking"
	}
	return "idle"
}

// Controller owns the animation state between frames.
type Controller struct {
	state  State
	manual ManualPose
	log    *zap.Logger
}

// NewController creates a controller starting from s. Any poke in s is
// kept.
func NewController(s State) *Controller {
	return &Controller{state: s, log: logger.Named("animation")}
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Manual returns the manual slider angles.
func (c *Controller) Manual() ManualPose { return c.manual }

// Phase returns the poke phase.
func (c *Controller) Phase() Phase {
	if c.state.Poking {
		return Poking
	}
	return Idle
}

// Toggle switches an automatic animation on or off.
func (c *Controller) Toggle(k Kind, on bool) {
	switch k {
	case Running:
		c.state.Running = on
	case TailSway:
		c.state.TailSway = on
	default:
		c.log.Warn("toggle of unknown animation ignored", zap.Stringer("kind", k))
		return
	}
	c.log.Debug("animation toggled", zap.Stringer("kind", k), zap.Bool("on", on))
}

// TriggerPoke starts the head shake at time t seconds. A poke during a
// poke restarts it.
func (c *Controller) TriggerPoke(t float64) {
	c.state.Poking = true
	c.state.PokeStart = t
	c.log.Debug("poke", zap.Float64("t", t))
}

// SetManual sets the manual angle of a joint group.
func (c *Controller) SetManual(g JointGroup, deg float32) error {
	return c.manual.Set(g, deg)
}

// Update ends a poke whose duration has elapsed by time t.
func (c *Controller) Update(t float64) {
	if c.state.Poking && t-c.state.PokeStart >= c.state.pokeDuration() {
		c.state.Poking = false
		c.log.Debug("poke finished", zap.Float64("t", t))
	}
}

// Pose updates the state for time t and returns the joint angles.
func (c *Controller) Pose(t float64) rig.Pose {
	c.Update(t)
	return ComputePose(t, c.state, c.manual)
}
