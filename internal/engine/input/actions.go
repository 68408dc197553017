package input

import "github.com/Faultbox/blockyworld/internal/engine/animation"

// Action is a discrete command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionRotateLeft
	ActionRotateRight
	ActionTiltUp
	ActionTiltDown
	ActionPoke
	ActionToggleRun
	ActionToggleTail
	ActionToggleNormals
	ActionToggleLight
	ActionToggleSpot
	ActionResetView
	ActionQuit
)

var actionNames = [...]string{
	"none", "move-forward", "move-back", "move-left", "move-right",
	"rotate-left", "rotate-right", "tilt-up", "tilt-down", "poke",
	"toggle-run", "toggle-tail", "toggle-normals", "toggle-light",
	"toggle-spot", "reset-view", "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Keymap binds scancode names to actions.
type Keymap map[string]Action

// DefaultKeymap returns the demo bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"W":      ActionMoveForward,
		"S":      ActionMoveBack,
		"A":      ActionMoveLeft,
		"D":      ActionMoveRight,
		"Q":      ActionRotateLeft,
		"E":      ActionRotateRight,
		"Left":   ActionRotateLeft,
		"Right":  ActionRotateRight,
		"Up":     ActionTiltUp,
		"Down":   ActionTiltDown,
		"Space":  ActionPoke,
		"R":      ActionToggleRun,
		"T":      ActionToggleTail,
		"N":      ActionToggleNormals,
		"L":      ActionToggleLight,
		"F":      ActionToggleSpot,
		"Home":   ActionResetView,
		"Escape": ActionQuit,
	}
}

// Repeats reports whether holding the key should fire the action again.
// Toggles and one-shots fire once per press.
func (a Action) Repeats() bool {
	return a >= ActionMoveForward && a <= ActionTiltDown
}

// Controls is the slice of the scene API that input drives.
type Controls interface {
	MoveForward()
	MoveBack()
	MoveLeft()
	MoveRight()
	RotateLeft()
	RotateRight()
	TiltUp()
	TiltDown()
	Drag(dx, dy float32)
	TriggerPoke()
	PokeAtScreen(x, y float32) bool
	ResetView()

	ToggleAnimation(k animation.Kind, on bool)
	Animating(k animation.Kind) bool
	SetNormalDebug(on bool)
	NormalDebug() bool
	SetLightOn(on bool)
	LightOn() bool
	SetSpotlight(on bool)
	Spotlight() bool

	SetViewport(width, height int)
}

// Apply runs a to c. It returns false for ActionQuit.
func Apply(c Controls, a Action) bool {
	switch a {
	case ActionMoveForward:
		c.MoveForward()
	case ActionMoveBack:
		c.MoveBack()
	case ActionMoveLeft:
		c.MoveLeft()
	case ActionMoveRight:
		c.MoveRight()
	case ActionRotateLeft:
		c.RotateLeft()
	case ActionRotateRight:
		c.RotateRight()
	case ActionTiltUp:
		c.TiltUp()
	case ActionTiltDown:
		c.TiltDown()
	case ActionPoke:
		c.TriggerPoke()
	case ActionToggleRun:
		c.ToggleAnimation(animation.Running, !c.Animating(animation.Running))
	case ActionToggleTail:
		c.ToggleAnimation(animation.TailSway, !c.Animating(animation.TailSway))
	case ActionToggleNormals:
		c.SetNormalDebug(!c.NormalDebug())
	case ActionToggleLight:
		c.SetLightOn(!c.LightOn())
	case ActionToggleSpot:
		c.SetSpotlight(!c.Spotlight())
	case ActionResetView:
		c.ResetView()
	case ActionQuit:
		return false
	}
	return true
}
