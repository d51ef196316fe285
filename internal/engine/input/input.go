// Package input normalizes SDL2 mouse and touch events into a single
// pointer stream in normalized device coordinates.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventWindowHidden
	EventWindowShown
	EventKeyDown
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventPointerCancel
)

// Event represents a processed input event. Pointer coordinates are NDC:
// -1..1 on both axes, y up.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	X      float32
	Y      float32
}

// Input polls SDL events and converts them to normalized game events.
type Input struct {
	events []Event

	width  int
	height int

	// First touch wins; further fingers are ignored until it lifts.
	touchActive bool
	touchFinger sdl.FingerID
}

// New creates a new input handler for the given viewport size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// SetViewport updates the pixel size used for NDC conversion.
func (i *Input) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		i.width = width
		i.height = height
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.SetViewport(int(e.Data1), int(e.Data2))
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_MINIMIZED, sdl.WINDOWEVENT_HIDDEN:
				i.events = append(i.events, Event{Type: EventWindowHidden})
			case sdl.WINDOWEVENT_RESTORED, sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_EXPOSED:
				i.events = append(i.events, Event{Type: EventWindowShown})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseButtonEvent:
			if e.Which == sdl.TOUCH_MOUSEID {
				continue // synthesized from touch, already handled
			}
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			x, y := i.toNDC(float32(e.X), float32(e.Y))
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{Type: EventPointerDown, X: x, Y: y})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.events = append(i.events, Event{Type: EventPointerUp, X: x, Y: y})
			}

		case *sdl.MouseMotionEvent:
			if e.Which == sdl.TOUCH_MOUSEID {
				continue
			}
			x, y := i.toNDC(float32(e.X), float32(e.Y))
			i.events = append(i.events, Event{Type: EventPointerMove, X: x, Y: y})

		case *sdl.TouchFingerEvent:
			i.handleFinger(e)
		}
	}

	return false
}

func (i *Input) handleFinger(e *sdl.TouchFingerEvent) {
	// Finger coordinates arrive already normalized to 0..1.
	x := e.X*2 - 1
	y := 1 - e.Y*2

	switch e.Type {
	case sdl.FINGERDOWN:
		if i.touchActive {
			return
		}
		i.touchActive = true
		i.touchFinger = e.FingerID
		i.events = append(i.events, Event{Type: EventPointerDown, X: x, Y: y})

	case sdl.FINGERMOTION:
		if !i.touchActive || e.FingerID != i.touchFinger {
			return
		}
		i.events = append(i.events, Event{Type: EventPointerMove, X: x, Y: y})

	case sdl.FINGERUP:
		if !i.touchActive || e.FingerID != i.touchFinger {
			return
		}
		i.touchActive = false
		i.events = append(i.events, Event{Type: EventPointerUp, X: x, Y: y})
	}
}

// toNDC converts device pixels to normalized device coordinates.
func (i *Input) toNDC(px, py float32) (float32, float32) {
	if i.width <= 0 || i.height <= 0 {
		return 0, 0
	}
	return 2*px/float32(i.width) - 1, 1 - 2*py/float32(i.height)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
