package nav

import "go.uber.org/zap"

// OnElementFocused is called by the host when an element receives focus.
func (n *Navigator) OnElementFocused(id ElementID) {
	e := n.Element(id)
	if e == nil {
		return
	}
	if d := n.dispatcher; d != nil && d.IgnoreFocusByNavigation() {
		d.SetIgnoreFocusByNavigation(false)
		return
	}
	if c := n.Container(e.owner); c != nil && !c.destroying {
		c.navigatedTo(id)
	}
}

// OnElementHovered is called by the host when the pointer enters an
// element.
func (n *Navigator) OnElementHovered(id ElementID) {
	e, c := n.resolve(id)
	if e == nil {
		return
	}
	e.hovered = true
	if c != nil {
		c.onHovered(e)
	}
}

// OnElementUnhovered is called by the host when the pointer leaves an
// element.
func (n *Navigator) OnElementUnhovered(id ElementID) {
	e, c := n.resolve(id)
	if e == nil {
		return
	}
	e.hovered = false
	if c != nil {
		c.onUnhovered(e)
	}
}

// OnElementPressed is called by the host when an element's button goes
// down.
func (n *Navigator) OnElementPressed(id ElementID) {
	e, _ := n.resolve(id)
	if e == nil {
		return
	}
	e.pressed = true
	e.ExecuteActions(TriggerPressed)
	if e, c := n.resolve(id); e != nil && c != nil {
		c.onPressed(e)
	}
}

// OnElementReleased is called by the host when an element's button comes
// back up.
func (n *Navigator) OnElementReleased(id ElementID) {
	e, _ := n.resolve(id)
	if e == nil {
		return
	}
	e.pressed = false
	e.ExecuteActions(TriggerReleased)
	if e, c := n.resolve(id); e != nil && c != nil {
		c.onReleased(e)
	}
}

// OnElementClicked is called by the host when a press and release land on
// the same element.
func (n *Navigator) OnElementClicked(id ElementID) {
	if e := n.Element(id); e != nil {
		e.ExecuteActions(TriggerClicked)
	}
}

func (n *Navigator) resolve(id ElementID) (*Element, *Container) {
	e := n.Element(id)
	if e == nil {
		return nil, nil
	}
	c := n.Container(e.owner)
	if c != nil && c.destroying {
		c = nil
	}
	return e, c
}

// active returns the dispatcher's active sub-widget.
func (n *Navigator) active() *Container {
	if n.dispatcher == nil {
		return nil
	}
	c := n.Container(n.dispatcher.ActiveSubWidget())
	if c == nil || c.destroying {
		return nil
	}
	return c
}

// OnDirection handles a resolved navigation direction.
func (n *Navigator) OnDirection(dir Direction) {
	d := n.dispatcher
	if dir == DirectionInvalid || d == nil || d.IsListeningForRebind() || !d.AllowsDirection(dir) {
		return
	}
	c := n.active()
	if c == nil {
		return
	}

	switch dir {
	case DirectionNext, DirectionPrevious:
		if !d.AllowsSectionInput() {
			return
		}
		c.propagateSection(dir == DirectionNext)
	default:
		if c.TryConsumeNavigation() {
			return
		}
		if !d.TryNavigateInDirection(dir, c.id) {
			n.log.Debug("no element in direction",
				zap.Stringer("direction", dir),
				zap.Stringer("container", c.id))
		}
	}
}

// propagateSection runs OnNext or OnPrevious up the shared outer chain.
func (c *Container) propagateSection(next bool) {
	stop := c.nav.settings.StopNextPreviousPropagation
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		var handled bool
		if next {
			handled = cur.hooks.OnNext()
		} else {
			handled = cur.hooks.OnPrevious()
		}
		if handled && stop {
			return
		}
	}
}

// OnAction handles a resolved accept or back action.
func (n *Navigator) OnAction(action Action, pressed bool) {
	d := n.dispatcher
	if action == ActionInvalid || d == nil || d.IsListeningForRebind() {
		return
	}
	c := n.active()
	if c == nil {
		return
	}

	switch action {
	case ActionAccept:
		cur := c.element(c.current)
		if cur == nil {
			if c.TryConsumeNavigation() {
				return
			}
			if pressed {
				c.StartedSelect()
			} else {
				c.StoppedSelect()
			}
			return
		}
		if pressed {
			if !n.settings.ForceNavigation && !c.forcingNavigation {
				c.ForceNavigation()
				return
			}
			c.acceptHolds++
			n.OnElementPressed(cur.id)
			return
		}
		if c.acceptHolds == 0 && !cur.pressed {
			return
		}
		// Another accept input is still down: drop one press level only.
		if c.acceptHolds > 1 {
			c.acceptHolds--
			c.onReleased(cur)
			return
		}
		c.acceptHolds = 0
		n.OnElementReleased(cur.id)
		n.OnElementClicked(cur.id)

	case ActionBack:
		if pressed || c.TryConsumeNavigation() {
			return
		}
		c.StoppedReturn()
	}
}

// StartedSelect fires the start-select hooks for the current element.
func (c *Container) StartedSelect() {
	c.propagateOnStartSelect(c.current)
}

// StoppedSelect fires the select hooks for the current element when it was
// the one pressed, then the stop-select hooks.
func (c *Container) StoppedSelect() {
	if c.selected == c.current {
		c.propagateOnSelect(c.current)
	}
	c.propagateOnStopSelect(c.current)
}

// StoppedReturn offers the return to the hooks up the shared outer chain
// and falls back to ReturnToParent.
func (c *Container) StoppedReturn() {
	if c.nav.dispatcher == nil {
		return
	}
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		if cur.hooks.OnReturn() {
			return
		}
	}
	if c.nav.settings.RemoveWidgetOnReturn && c.alive() {
		c.ReturnToParent(false, 0)
	}
}

// NotifyInputTypeChanged tells the active container chain the input device
// changed.
func (n *Navigator) NotifyInputTypeChanged(from, to InputType) {
	c := n.active()
	if c == nil {
		return
	}
	for cur := c; cur != nil; cur = cur.outerContainer() {
		cur.hooks.OnInputTypeChanged(from, to)
	}
	c.AttemptUnforceNavigation(to)
}
