package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/blockyworld/internal/engine/input"
)

// PollEvents drains the SDL queue into q, resetting it first. Sizes and
// mouse positions are reported in drawable pixels, the space the viewport
// and picking work in.
func (w *Window) PollEvents(q *input.Queue) {
	q.Reset()
	scale := w.pixelScale()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			q.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height := w.Size()
				q.Push(input.Event{
					Type:   input.EventWindowResize,
					Width:  width,
					Height: height,
				})
				scale = w.pixelScale()
			}

		case *sdl.KeyboardEvent:
			ev := input.Event{
				Key:    sdl.GetScancodeName(e.Keysym.Scancode),
				Repeat: e.Repeat != 0,
				Shift:  uint32(e.Keysym.Mod)&uint32(sdl.KMOD_SHIFT) != 0,
			}
			if e.Type == sdl.KEYDOWN {
				ev.Type = input.EventKeyDown
			} else {
				ev.Type = input.EventKeyUp
			}
			q.Push(ev)

		case *sdl.MouseMotionEvent:
			x, y := scale.Point(e.X, e.Y)
			q.Push(input.Event{
				Type:   input.EventMouseMove,
				MouseX: x,
				MouseY: y,
			})

		case *sdl.MouseButtonEvent:
			x, y := scale.Point(e.X, e.Y)
			ev := input.Event{
				MouseX: x,
				MouseY: y,
				Button: e.Button,
				Shift:  uint32(sdl.GetModState())&uint32(sdl.KMOD_SHIFT) != 0,
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = input.EventMouseDown
			} else {
				ev.Type = input.EventMouseUp
			}
			q.Push(ev)
		}
	}
}
