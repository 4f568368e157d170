// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

// Event types for menu use
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
	EventButtonDown
	EventButtonUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	// Button is the mouse button for mouse events and the controller
	// button for EventButtonDown/Up.
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events      []Event
	controllers map[sdl.JoystickID]*sdl.GameController
	log         *zap.Logger
}

// New creates a new input handler.
func New(log *zap.Logger) *Input {
	if log == nil {
		log = zap.NewNop()
	}
	return &Input{
		events:      make([]Event, 0, 16),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		log:         log,
	}
}

// Update polls SDL events and converts them to menu events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type:   EventKeyDown,
					Key:    e.Keysym.Scancode,
					Repeat: e.Repeat != 0,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.events = append(i.events, Event{
					Type:   EventMouseUp,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}

		case *sdl.ControllerDeviceEvent:
			i.handleDevice(e)

		case *sdl.ControllerButtonEvent:
			if e.Type == sdl.CONTROLLERBUTTONDOWN {
				i.events = append(i.events, Event{Type: EventButtonDown, Button: e.Button})
			} else if e.Type == sdl.CONTROLLERBUTTONUP {
				i.events = append(i.events, Event{Type: EventButtonUp, Button: e.Button})
			}
		}
	}

	return false
}

// handleDevice opens controllers as they are plugged in and closes them on
// removal.
func (i *Input) handleDevice(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		gc := sdl.GameControllerOpen(int(e.Which))
		if gc == nil {
			i.log.Warn("failed to open controller", zap.Int32("index", int32(e.Which)))
			return
		}
		id := gc.Joystick().InstanceID()
		i.controllers[id] = gc
		i.log.Info("controller connected", zap.String("name", gc.Name()))
	case sdl.CONTROLLERDEVICEREMOVED:
		if gc, ok := i.controllers[e.Which]; ok {
			gc.Close()
			delete(i.controllers, e.Which)
			i.log.Info("controller disconnected")
		}
	}
}

// Close releases opened controllers.
func (i *Input) Close() {
	for id, gc := range i.controllers {
		gc.Close()
		delete(i.controllers, id)
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
