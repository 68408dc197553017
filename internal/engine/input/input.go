// Package input turns window events into scene commands.
//
// Events carry SDL scancode names ("W", "Up", "Escape") rather than SDL
// types, so the mapping here is independent of the window backend.
package input

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Mouse buttons, numbered as SDL numbers them.
const (
	ButtonLeft  uint8 = 1
	ButtonRight uint8 = 3
)

// Event is a processed window event.
type Event struct {
	Type   EventType
	Key    string
	Repeat bool
	Shift  bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// PixelScale converts window points to drawable pixels. On HiDPI displays
// the drawable is larger than the window it sits in.
type PixelScale struct {
	X, Y float32
}

// NewPixelScale returns the ratio of a drawable size to its window size.
// A zero window dimension yields a ratio of 1 on that axis.
func NewPixelScale(drawW, drawH, winW, winH int) PixelScale {
	s := PixelScale{X: 1, Y: 1}
	if winW > 0 {
		s.X = float32(drawW) / float32(winW)
	}
	if winH > 0 {
		s.Y = float32(drawH) / float32(winH)
	}
	return s
}

// Point converts a window-space position to pixels.
func (s PixelScale) Point(x, y int32) (int, int) {
	return int(float32(x) * s.X), int(float32(y) * s.Y)
}

// Queue is the per-frame event buffer filled by the window.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Reset clears the previous frame's events.
func (q *Queue) Reset() { q.events = q.events[:0] }

// Push appends an event.
func (q *Queue) Push(e Event) { q.events = append(q.events, e) }

// Events returns the events since the last Reset.
func (q *Queue) Events() []Event { return q.events }

// Quit reports whether a quit event was queued.
func (q *Queue) Quit() bool {
	for _, e := range q.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// IsKeyPressed checks if a key went down this frame.
func (q *Queue) IsKeyPressed(key string) bool {
	for _, e := range q.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
