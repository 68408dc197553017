// Package animation turns elapsed time and toggle flags into quadruped
// joint angles.
package animation

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blockyworld/internal/engine/rig"
)

// DefaultPokeDuration is how long the head shakes after a poke, in seconds.
const DefaultPokeDuration = 1.0

// Gait amplitudes in degrees.
const (
	LegSwing   = 30
	KneeBend   = 20
	PawWobble  = 10
	TailSwing  = 20
	HeadShake  = 30
	gaitSpeed  = 2
	wobbleRate = 4
	tailRate   = 5
	shakeRate  = 10
)

// Kind names a toggleable automatic animation.
type Kind uint8

const (
	Running Kind = iota
	TailSway
)

// String returns the animation name.
func (k Kind) String() string {
	switch k {
	case Running:
		return "running"
	case TailSway:
		return "tail-sway"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// State is the animation toggles plus the poke reaction.
type State struct {
	Running  bool
	TailSway bool

	Poking    bool
	PokeStart float64 // seconds
	// PokeDuration overrides DefaultPokeDuration when positive.
	PokeDuration float64
}

func (s State) pokeDuration() float64 {
	if s.PokeDuration > 0 {
		return s.PokeDuration
	}
	return DefaultPokeDuration
}

// pokeActive reports whether the head is shaking at time t.
func (s State) pokeActive(t float64) bool {
	if !s.Poking {
		return false
	}
	dt := t - s.PokeStart
	return dt >= 0 && dt < s.pokeDuration()
}

// JointGroup is a set of joints driven by one manual control.
type JointGroup uint8

const (
	GroupFrontLeg JointGroup = iota
	GroupPaw
	GroupPawRotate
	GroupTail
)

// ErrUnknownGroup is returned for joint groups without a manual control.
var ErrUnknownGroup = errors.New("unknown joint group")

// String returns the group name.
func (g JointGroup) String() string {
	switch g {
	case GroupFrontLeg:
		return "front-leg"
	case GroupPaw:
		return "paw"
	case GroupPawRotate:
		return "paw-rotate"
	case GroupTail:
		return "tail"
	default:
		return fmt.Sprintf("group(%d)", uint8(g))
	}
}

// ManualPose holds the slider angles, in degrees, used when the matching
// automatic animation is off.
type ManualPose struct {
	FrontLeg  float32
	Paw       float32
	PawRotate float32
	Tail      float32
}

// Set stores the angle for a joint group.
func (m *ManualPose) Set(g JointGroup, deg float32) error {
	switch g {
	case GroupFrontLeg:
		m.FrontLeg = deg
	case GroupPaw:
		m.Paw = deg
	case GroupPawRotate:
		m.PawRotate = deg
	case GroupTail:
		m.Tail = deg
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGroup, g)
	}
	return nil
}

// ComputePose returns the joint angles at time t seconds. It has no side
// effects: equal arguments always give equal poses.
func ComputePose(t float64, s State, m ManualPose) rig.Pose {
	p := make(rig.Pose, 16)
	ft := float32(t)

	if s.Running {
		lead := math32.Sin(ft * gaitSpeed)
		trail := math32.Sin(ft*gaitSpeed + math32.Pi)

		p[rig.FrontLeftUpper] = LegSwing * lead
		p[rig.BackRightUpper] = LegSwing * lead
		p[rig.FrontRightUpper] = LegSwing * trail
		p[rig.BackLeftUpper] = LegSwing * trail

		p[rig.FrontLeftLower] = KneeBend * math32.Abs(lead)
		p[rig.BackRightLower] = KneeBend * math32.Abs(lead)
		p[rig.FrontRightLower] = KneeBend * math32.Abs(trail)
		p[rig.BackLeftLower] = KneeBend * math32.Abs(trail)

		wobble := PawWobble * math32.Sin(ft*wobbleRate)
		for _, leg := range rig.Legs {
			p[leg.Paw] = wobble
		}
	} else {
		p[rig.FrontLeftUpper] = m.FrontLeg
		p[rig.FrontRightUpper] = m.FrontLeg
		p[rig.FrontLeftLower] = m.Paw
		p[rig.FrontRightLower] = m.Paw
		for _, leg := range rig.Legs {
			p[leg.Paw] = m.PawRotate
		}
	}

	if s.TailSway {
		p[rig.Tail] = TailSwing * math32.Sin(ft*tailRate)
	} else {
		p[rig.Tail] = m.Tail
	}

	if s.pokeActive(t) {
		p[rig.Head] = HeadShake * math32.Sin(float32(t-s.PokeStart)*shakeRate)
	}
	return p
}
