package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-nav/internal/config"
	"github.com/Faultbox/midgard-nav/internal/nav"
)

// Command is what a bound key or button resolves to. At most one of
// Direction and Action is set.
type Command struct {
	Direction nav.Direction
	Action    nav.Action
}

// IsZero reports whether the command does nothing.
func (c Command) IsZero() bool {
	return c.Direction == nav.DirectionInvalid && c.Action == nav.ActionInvalid
}

// Bindings maps keys and controller buttons to navigation commands.
type Bindings struct {
	keys    map[sdl.Scancode]Command
	buttons map[sdl.GameControllerButton]Command
}

// NewBindings resolves the key names in cfg. Controller buttons use the
// fixed layout: d-pad to move, A to accept, B to go back and the shoulders
// to switch sections.
func NewBindings(cfg config.InputConfig) (*Bindings, error) {
	b := &Bindings{
		keys: make(map[sdl.Scancode]Command),
		buttons: map[sdl.GameControllerButton]Command{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       {Direction: nav.DirectionUp},
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     {Direction: nav.DirectionDown},
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     {Direction: nav.DirectionLeft},
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    {Direction: nav.DirectionRight},
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: {Direction: nav.DirectionNext},
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  {Direction: nav.DirectionPrevious},
			sdl.CONTROLLER_BUTTON_A:             {Action: nav.ActionAccept},
			sdl.CONTROLLER_BUTTON_B:             {Action: nav.ActionBack},
		},
	}

	groups := []struct {
		names []string
		cmd   Command
	}{
		{cfg.Up, Command{Direction: nav.DirectionUp}},
		{cfg.Down, Command{Direction: nav.DirectionDown}},
		{cfg.Left, Command{Direction: nav.DirectionLeft}},
		{cfg.Right, Command{Direction: nav.DirectionRight}},
		{cfg.Next, Command{Direction: nav.DirectionNext}},
		{cfg.Previous, Command{Direction: nav.DirectionPrevious}},
		{cfg.Accept, Command{Action: nav.ActionAccept}},
		{cfg.Back, Command{Action: nav.ActionBack}},
	}
	for _, g := range groups {
		for _, name := range g.names {
			sc := sdl.GetScancodeFromName(name)
			if sc == sdl.SCANCODE_UNKNOWN {
				return nil, fmt.Errorf("unknown key %q", name)
			}
			if prev, ok := b.keys[sc]; ok && prev != g.cmd {
				return nil, fmt.Errorf("key %q bound twice", name)
			}
			b.keys[sc] = g.cmd
		}
	}
	return b, nil
}

// Key returns the command bound to a scancode.
func (b *Bindings) Key(sc sdl.Scancode) Command {
	return b.keys[sc]
}

// Button returns the command bound to a controller button.
func (b *Bindings) Button(button uint8) Command {
	return b.buttons[sdl.GameControllerButton(button)]
}
