package input

// DefaultLookStepPx is how far a left-drag travels per camera turn step.
const DefaultLookStepPx = 8

// Dispatcher routes a frame's events to Controls.
//
// Left-drag turns and tilts the first-person camera one step per
// LookStepPx of travel; a left click that never turned is a click on the
// scene and pokes the dog if it lands on it. Right-drag spins the
// turntable. Shift-click pokes wherever it lands.
type Dispatcher struct {
	Keymap     Keymap
	LookStepPx int

	button       uint8
	lastX, lastY int
	accX, accY   int
	looked       bool
}

// NewDispatcher creates a dispatcher with the default keymap.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{Keymap: DefaultKeymap(), LookStepPx: DefaultLookStepPx}
}

// Dispatch applies events in order. It returns false once a quit event or
// quit action is seen; later events are not applied.
func (d *Dispatcher) Dispatch(c Controls, events []Event) bool {
	for _, e := range events {
		if !d.handle(c, e) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) handle(c Controls, e Event) bool {
	switch e.Type {
	case EventQuit:
		return false

	case EventWindowResize:
		c.SetViewport(e.Width, e.Height)

	case EventKeyDown:
		a := d.Keymap[e.Key]
		if e.Repeat && !a.Repeats() {
			return true
		}
		return Apply(c, a)

	case EventMouseDown:
		if e.Button == ButtonLeft && e.Shift {
			c.TriggerPoke()
			return true
		}
		d.button = e.Button
		d.lastX, d.lastY = e.MouseX, e.MouseY
		d.accX, d.accY = 0, 0
		d.looked = false

	case EventMouseUp:
		if e.Button != d.button {
			return true
		}
		if d.button == ButtonLeft && !d.looked {
			c.PokeAtScreen(float32(e.MouseX), float32(e.MouseY))
		}
		d.button = 0

	case EventMouseMove:
		dx, dy := e.MouseX-d.lastX, e.MouseY-d.lastY
		d.lastX, d.lastY = e.MouseX, e.MouseY
		switch d.button {
		case ButtonLeft:
			d.look(c, dx, dy)
		case ButtonRight:
			c.Drag(float32(dx), float32(dy))
		}
	}
	return true
}

// look accumulates drag travel and turns one step per LookStepPx.
func (d *Dispatcher) look(c Controls, dx, dy int) {
	step := d.LookStepPx
	if step <= 0 {
		step = DefaultLookStepPx
	}
	d.accX += dx
	d.accY += dy
	if abs(d.accX) >= step || abs(d.accY) >= step {
		d.looked = true
	}
	for ; d.accX >= step; d.accX -= step {
		c.RotateRight()
	}
	for ; d.accX <= -step; d.accX += step {
		c.RotateLeft()
	}
	// Screen y grows downward; dragging up tilts up.
	for ; d.accY >= step; d.accY -= step {
		c.TiltDown()
	}
	for ; d.accY <= -step; d.accY += step {
		c.TiltUp()
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
