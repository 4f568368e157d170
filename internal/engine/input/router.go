package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// Navigation receives resolved commands. *nav.Navigator implements it.
type Navigation interface {
	OnDirection(d nav.Direction)
	OnAction(a nav.Action, pressed bool)
}

// Pointer receives mouse input. *viewport.Viewport implements it.
type Pointer interface {
	PointerMove(p math.Vec2)
	PointerDown(p math.Vec2)
	PointerUp(p math.Vec2)
}

// DeviceTracker is told which device produced each event.
// *navpc.Controller implements it.
type DeviceTracker interface {
	SetInputType(t nav.InputType)
}

// Router turns menu events into navigation input.
type Router struct {
	Bindings *Bindings
	Nav      Navigation
	Pointer  Pointer
	Devices  DeviceTracker
}

// Dispatch routes one event. Directions fire on key down, including
// repeats; actions fire on the first press and on release.
func (r *Router) Dispatch(ev Event) {
	switch ev.Type {
	case EventKeyDown, EventKeyUp:
		r.device(nav.InputKeyboard)
		r.command(r.Bindings.Key(ev.Key), ev.Type == EventKeyDown, ev.Repeat)

	case EventButtonDown, EventButtonUp:
		r.device(nav.InputGamepad)
		r.command(r.Bindings.Button(ev.Button), ev.Type == EventButtonDown, false)

	case EventMouseMove:
		r.device(nav.InputMouse)
		if r.Pointer != nil {
			r.Pointer.PointerMove(mousePos(ev))
		}

	case EventMouseDown, EventMouseUp:
		r.device(nav.InputMouse)
		if r.Pointer == nil || ev.Button != sdl.BUTTON_LEFT {
			return
		}
		if ev.Type == EventMouseDown {
			r.Pointer.PointerDown(mousePos(ev))
		} else {
			r.Pointer.PointerUp(mousePos(ev))
		}
	}
}

func (r *Router) command(cmd Command, down, repeat bool) {
	if cmd.IsZero() || r.Nav == nil {
		return
	}
	switch {
	case cmd.Direction != nav.DirectionInvalid:
		if down {
			r.Nav.OnDirection(cmd.Direction)
		}
	case cmd.Action != nav.ActionInvalid:
		if !repeat {
			r.Nav.OnAction(cmd.Action, down)
		}
	}
}

func (r *Router) device(t nav.InputType) {
	if r.Devices != nil {
		r.Devices.SetInputType(t)
	}
}

func mousePos(ev Event) math.Vec2 {
	return math.Vec2{X: float32(ev.MouseX), Y: float32(ev.MouseY)}
}
