package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/blockyworld/internal/engine/animation"
)

// fakeControls records calls by name and keeps toggle state.
type fakeControls struct {
	calls   []string
	drags   [][2]float32
	running bool
	tail    bool
	normals bool
	light   bool
	spot    bool
	w, h    int
	clicks  [][2]float32
}

func (f *fakeControls) MoveForward() { f.calls = append(f.calls, "forward") }
func (f *fakeControls) MoveBack()    { f.calls = append(f.calls, "back") }
func (f *fakeControls) MoveLeft()    { f.calls = append(f.calls, "left") }
func (f *fakeControls) MoveRight()   { f.calls = append(f.calls, "right") }
func (f *fakeControls) RotateLeft()  { f.calls = append(f.calls, "rotate-left") }
func (f *fakeControls) RotateRight() { f.calls = append(f.calls, "rotate-right") }
func (f *fakeControls) TiltUp()      { f.calls = append(f.calls, "tilt-up") }
func (f *fakeControls) TiltDown()    { f.calls = append(f.calls, "tilt-down") }
func (f *fakeControls) TriggerPoke() { f.calls = append(f.calls, "poke") }
func (f *fakeControls) ResetView()   { f.calls = append(f.calls, "reset") }

func (f *fakeControls) PokeAtScreen(x, y float32) bool {
	f.clicks = append(f.clicks, [2]float32{x, y})
	return true
}

func (f *fakeControls) Drag(dx, dy float32) { f.drags = append(f.drags, [2]float32{dx, dy}) }

func (f *fakeControls) ToggleAnimation(k animation.Kind, on bool) {
	if k == animation.TailSway {
		f.tail = on
		return
	}
	f.running = on
}

func (f *fakeControls) Animating(k animation.Kind) bool {
	if k == animation.TailSway {
		return f.tail
	}
	return f.running
}

func (f *fakeControls) SetNormalDebug(on bool) { f.normals = on }
func (f *fakeControls) NormalDebug() bool      { return f.normals }

func (f *fakeControls) SetLightOn(on bool) {
	f.light = on
	if on {
		f.spot = false
	}
}
func (f *fakeControls) LightOn() bool { return f.light }

func (f *fakeControls) SetSpotlight(on bool) {
	f.spot = on
	if on {
		f.light = false
	}
}
func (f *fakeControls) Spotlight() bool { return f.spot }

func (f *fakeControls) SetViewport(w, h int) { f.w, f.h = w, h }

func key(name string) Event { return Event{Type: EventKeyDown, Key: name} }

func TestQueue(t *testing.T) {
	q := NewQueue()
	q.Push(key("W"))
	assert.True(t, q.IsKeyPressed("W"))
	assert.False(t, q.IsKeyPressed("S"))
	assert.False(t, q.Quit())

	q.Push(Event{Type: EventQuit})
	assert.True(t, q.Quit())

	q.Reset()
	assert.Empty(t, q.Events())
}

func TestPixelScale(t *testing.T) {
	// 1280x720 window backed by a 2560x1440 drawable.
	s := NewPixelScale(2560, 1440, 1280, 720)
	x, y := s.Point(640, 360)
	assert.Equal(t, 1280, x)
	assert.Equal(t, 720, y)

	x, y = NewPixelScale(800, 600, 800, 600).Point(17, 33)
	assert.Equal(t, 17, x)
	assert.Equal(t, 33, y)

	assert.Equal(t, PixelScale{X: 1, Y: 1}, NewPixelScale(100, 100, 0, 0))
}

func TestMovementKeys(t *testing.T) {
	f := &fakeControls{}
	d := NewDispatcher()
	ok := d.Dispatch(f, []Event{key("W"), key("S"), key("A"), key("D"), key("Q"), key("E"), key("Up"), key("Down")})
	assert.True(t, ok)
	assert.Equal(t, []string{"forward", "back", "left", "right", "rotate-left", "rotate-right", "tilt-up", "tilt-down"}, f.calls)
}

func TestUnboundKeyIgnored(t *testing.T) {
	f := &fakeControls{}
	assert.True(t, NewDispatcher().Dispatch(f, []Event{key("Z")}))
	assert.Empty(t, f.calls)
}

func TestToggles(t *testing.T) {
	f := &fakeControls{running: true}
	d := NewDispatcher()

	d.Dispatch(f, []Event{key("R"), key("T"), key("N")})
	assert.False(t, f.running)
	assert.True(t, f.tail)
	assert.True(t, f.normals)

	d.Dispatch(f, []Event{key("L")})
	assert.True(t, f.light)
	d.Dispatch(f, []Event{key("F")})
	assert.True(t, f.spot)
	assert.False(t, f.light, "spotlight turns the point light off")
}

func TestRepeatSuppressedForToggles(t *testing.T) {
	f := &fakeControls{}
	d := NewDispatcher()
	d.Dispatch(f, []Event{key("N"), {Type: EventKeyDown, Key: "N", Repeat: true}})
	assert.True(t, f.normals)

	d.Dispatch(f, []Event{{Type: EventKeyDown, Key: "W", Repeat: true}})
	assert.Equal(t, []string{"forward"}, f.calls)
}

func TestQuit(t *testing.T) {
	f := &fakeControls{}
	d := NewDispatcher()
	assert.False(t, d.Dispatch(f, []Event{key("Escape"), key("W")}))
	assert.Empty(t, f.calls, "events after quit are not applied")
	assert.False(t, d.Dispatch(f, []Event{{Type: EventQuit}}))
}

func TestResize(t *testing.T) {
	f := &fakeControls{}
	NewDispatcher().Dispatch(f, []Event{{Type: EventWindowResize, Width: 800, Height: 600}})
	assert.Equal(t, 800, f.w)
	assert.Equal(t, 600, f.h)
}

func TestShiftClickPokes(t *testing.T) {
	f := &fakeControls{}
	NewDispatcher().Dispatch(f, []Event{{Type: EventMouseDown, Button: ButtonLeft, Shift: true}})
	assert.Equal(t, []string{"poke"}, f.calls)
}

func TestLeftDragLooks(t *testing.T) {
	f := &fakeControls{}
	d := NewDispatcher()
	d.Dispatch(f, []Event{
		{Type: EventMouseDown, Button: ButtonLeft, MouseX: 100, MouseY: 100},
		{Type: EventMouseMove, MouseX: 105, MouseY: 100}, // below one step
		{Type: EventMouseMove, MouseX: 120, MouseY: 100}, // 20px total: two steps
		{Type: EventMouseMove, MouseX: 120, MouseY: 90},  // up 10px: one tilt
	})
	assert.Equal(t, []string{"rotate-right", "rotate-right", "tilt-up"}, f.calls)

	f.calls = nil
	d.Dispatch(f, []Event{
		{Type: EventMouseUp, Button: ButtonLeft, MouseX: 120, MouseY: 90},
		{Type: EventMouseMove, MouseX: 200, MouseY: 200},
	})
	assert.Empty(t, f.calls, "no look after release")
	assert.Empty(t, f.clicks, "a drag is not a click")
}

func TestLeftClickPicks(t *testing.T) {
	f := &fakeControls{}
	NewDispatcher().Dispatch(f, []Event{
		{Type: EventMouseDown, Button: ButtonLeft, MouseX: 40, MouseY: 50},
		{Type: EventMouseMove, MouseX: 43, MouseY: 51},
		{Type: EventMouseUp, Button: ButtonLeft, MouseX: 43, MouseY: 51},
	})
	assert.Equal(t, [][2]float32{{43, 51}}, f.clicks)
	assert.Empty(t, f.calls)
}

func TestRightDragSpins(t *testing.T) {
	f := &fakeControls{}
	NewDispatcher().Dispatch(f, []Event{
		{Type: EventMouseDown, Button: ButtonRight, MouseX: 10, MouseY: 10},
		{Type: EventMouseMove, MouseX: 13, MouseY: 6},
	})
	assert.Equal(t, [][2]float32{{3, -4}}, f.drags)
	assert.Empty(t, f.calls)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "toggle-spot", ActionToggleSpot.String())
	assert.Equal(t, "quit", ActionQuit.String())
	assert.Equal(t, "unknown", Action(99).String())
	assert.True(t, ActionTiltDown.Repeats())
	assert.False(t, ActionPoke.Repeats())
}
