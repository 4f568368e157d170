package nav

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/pkg/math"
)

// propagateGainNavigation walks from the new active container up to the
// common outer, then grants navigation outermost first. The walk stops
// short of the previous active container.
func (c *Container) propagateGainNavigation(prevID, newID, commonID ContainerID) {
	var chain []*Container
	for cur := c; cur != nil; cur = cur.outerContainer() {
		if cur.id == prevID {
			break
		}
		chain = append(chain, cur)
		if cur.id == commonID {
			break
		}
	}
	prev := c.nav.Container(prevID)
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		if cur.id != commonID || cur.id == newID {
			cur.gainNavigation(prev)
		}
	}
}

func (c *Container) gainNavigation(prev *Container) {
	if c.hasNavigation {
		return
	}
	c.acceptHolds = 0

	if c.element(c.first) != nil {
		c.hasNavigation = true
		if c.selectorValid() {
			c.selector.visible = true
		}
	}

	fromChild := prev != nil &&
		c.isPathPrefixOf(prev) &&
		prev.Outermost() == c.Outermost()

	c.nav.log.Debug("gained navigation",
		zap.Stringer("container", c.id),
		zap.Bool("has_navigation", c.hasNavigation),
		zap.Bool("from_child", fromChild))
	c.hooks.OnGainedNavigation(prev, fromChild)
}

// propagateLoseNavigation walks from the previous active container up to
// the common outer, taking navigation away on the way.
func (c *Container) propagateLoseNavigation(newID, prevID, commonID ContainerID) {
	next := c.nav.Container(newID)
	for cur := c; cur != nil; cur = cur.outerContainer() {
		if cur.id == newID {
			return
		}
		if cur.id != commonID || cur.id == prevID {
			cur.loseNavigation(next)
		}
		if cur.id == commonID {
			return
		}
	}
}

func (c *Container) loseNavigation(next *Container) {
	if !c.hasNavigation {
		return
	}

	sameOuter := next != nil && next.Outermost() == c.Outermost()
	toChild := next != nil && len(next.path) > 0 && c.isPathPrefixOf(next) && sameOuter

	if toChild && !c.opts.MaintainNavigationForChild {
		return
	}

	if next == nil || (!toChild && next.opts.MaintainNavigationForChild) {
		c.updateNavigationVisuals(ElementID{}, true)
	}

	c.callOnNavigate(c.current, ElementID{})

	c.hasNavigation = false

	if !toChild && sameOuter {
		c.current = ElementID{}
	}

	c.nav.log.Debug("lost navigation",
		zap.Stringer("container", c.id),
		zap.Bool("to_child", toChild))
	c.hooks.OnLostNavigation(next, toChild)
}

// navigatedTo makes target the current element. Nested containers whose
// outer shares navigation hand the visual update to that outer.
func (c *Container) navigatedTo(target ElementID) {
	d := c.nav.dispatcher
	if d == nil {
		return
	}

	notify := true
	for cur := c; cur != nil; {
		if cur.current == target && d.ActiveSubWidget() == cur.id {
			return
		}

		hadNavigation := cur.hasNavigation

		if notify {
			d.NotifyNavigatedTo(cur.id)
			notify = false
			if !cur.alive() {
				return
			}
		}

		if outer := cur.sharingOuter(); outer != nil {
			cur.hooks.OnNavigate(cur.element(cur.current), cur.element(target))
			cur.current = target
			cur = outer
			continue
		}

		if cur.current != target && (!cur.current.IsZero() || cur.forcingNavigation) {
			cur.updateNavigationVisuals(target, !cur.hoverRestoredNavigation)
		}

		from := ElementID{}
		if hadNavigation == cur.hasNavigation {
			from = cur.current
		}
		cur.callOnNavigate(from, target)

		cur.setCurrent(target)

		cur.hoverRestoredNavigation = false
		return
	}
}

func (c *Container) callOnNavigate(fromID, toID ElementID) {
	from, to := c.element(fromID), c.element(toID)
	c.hooks.OnNavigate(from, to)

	if from != nil {
		from.ExecuteActions(TriggerNavigatedFrom)
	}
	if to != nil {
		to.ExecuteActions(TriggerNavigatedTo)
	}
}

// updateNavigationVisuals moves focus visuals from the current element to
// target. A null target clears them.
func (c *Container) updateNavigationVisuals(target ElementID, hadNavigation bool) {
	if c.element(target) != nil && c.selectorValid() {
		c.selectorPrev = c.current
		c.selectorNext = target
		c.selectorWaitForTick = 0
	}

	c.updateTextColor(target)
	c.updateButtonStates(target)
	c.executeAnimations(c.current, target, hadNavigation)
}

func (c *Container) updateTextColor(target ElementID) {
	if cur := c.element(c.current); cur != nil {
		cur.SwitchTextColorToDefault()
	}
	if t := c.element(target); t != nil {
		t.SwitchTextColorToNavigated()
	}
}

func (c *Container) updateButtonStates(target ElementID) {
	if cur := c.element(c.current); cur != nil {
		cur.SwitchStyle(StyleNormal, true)
	}
	if t := c.element(target); t != nil {
		t.SwitchStyle(StyleHovered, true)
	}
}

// executeAnimations plays the leaving element's animation backwards and the
// entering element's forwards. An animation already mid-play is reversed
// in place.
func (c *Container) executeAnimations(fromID, toID ElementID, hadNavigation bool) {
	from, to := c.element(fromID), c.element(toID)

	if from != nil && fromID != toID && from.animated() && hadNavigation &&
		(c.forcingNavigation || to == nil) {
		if from.animation.IsPlaying() {
			from.animation.Reverse()
		} else {
			from.animation.PlayReverse()
		}
	}

	if to != nil && to.animated() {
		if to.animation.IsPlaying() {
			to.animation.Reverse()
		} else {
			to.animation.PlayForward()
		}
	}
}

func (c *Container) beginSelectorMovement(fromID, toID ElementID) {
	s := c.selector
	if s == nil || s.opts.MoveCurve == nil {
		return
	}
	origin := s.translation
	if !s.moving && c.element(fromID) != nil {
		origin = c.buttonLocation(fromID)
	}
	s.begin(origin, c.buttonLocation(toID))
}

func (c *Container) updateSelectorLocation(id ElementID) {
	if c.selector == nil || c.element(c.first) == nil {
		return
	}
	c.selector.translation = c.buttonLocation(id)
}

// buttonLocation returns where the selector sits for an element.
func (c *Container) buttonLocation(id ElementID) math.Vec2 {
	if c.element(id) == nil || c.selector == nil {
		return math.Vec2{}
	}
	r, ok := c.nav.host.Geometry(id)
	if !ok {
		return math.Vec2{}
	}
	return c.selector.opts.Position.anchor(r).Add(c.selector.opts.Offset)
}

// ForceNavigation shows navigation visuals on the current element.
func (c *Container) ForceNavigation() {
	c.forcingNavigation = true
	c.updateNavigationVisuals(c.current, true)
	if cur := c.element(c.current); cur != nil {
		cur.SwitchStyle(StyleHovered, true)
	}
}

// UnforceNavigation hides navigation visuals while the pointer is in
// control.
func (c *Container) UnforceNavigation() {
	c.forcingNavigation = false
	c.updateNavigationVisuals(ElementID{}, true)
	if cur := c.element(c.current); cur != nil {
		cur.RevertStyle()
	}
}

// AttemptUnforceNavigation drops forced visuals when the pointer takes over
// and ForceNavigation is off. A hovered element takes focus instead.
func (c *Container) AttemptUnforceNavigation(input InputType) {
	if c.nav.settings.ForceNavigation || input != InputMouse {
		return
	}
	if h := c.element(c.hovered); h != nil {
		if c.hovered != c.current {
			h.SetFocus()
		}
		return
	}
	c.UnforceNavigation()
}

// TryConsumeNavigation re-forces hidden visuals on the first key press and
// reports the press as consumed. While an element is held, key input is
// consumed as well.
func (c *Container) TryConsumeNavigation() bool {
	if !c.nav.settings.ForceNavigation && !c.forcingNavigation {
		c.ForceNavigation()
		return true
	}
	return c.element(c.selected) != nil
}

func (c *Container) onHovered(e *Element) {
	d := c.nav.dispatcher
	if d == nil {
		return
	}

	d.CancelRebind()

	c.setHovered(e.id)

	if e.id == c.current && d.ActiveSubWidget() == c.id {
		e.RevertStyle()
	}

	if !c.forcingNavigation {
		c.forcingNavigation = true
		c.hoverRestoredNavigation = true
		if e.id == c.current {
			c.updateNavigationVisuals(c.current, false)
		}
	}

	if e.id != c.current || d.ActiveSubWidget() != c.id {
		e.SetFocus()
	}
}

func (c *Container) onUnhovered(e *Element) {
	d := c.nav.dispatcher
	if d == nil {
		return
	}

	d.CancelRebind()

	ignored := e.id == c.ignoreHover
	if !ignored {
		c.setHovered(ElementID{})
	}

	if !c.nav.settings.ForceNavigation {
		c.UnforceNavigation()
		return
	}

	if c.selected != e.id {
		style := StyleNormal
		if e.id == c.current {
			style = StyleHovered
		}
		e.SwitchStyle(style, true)
	}

	if c.current == e.id && !ignored {
		e.SetFocus()
	} else {
		e.RevertStyle()
	}
}

func (c *Container) onPressed(e *Element) {
	d := c.nav.dispatcher
	if d == nil || !d.AllowsSelectInput() {
		return
	}

	c.setSelected(e.id)
	c.selectCount++

	c.propagateOnStartSelect(c.current)
}

func (c *Container) onReleased(e *Element) {
	if c.nav.dispatcher == nil || (!c.hasNavigation && c.selectCount == 0) {
		return
	}

	if !e.hovered {
		e.RevertStyle()
	}

	if c.current.IsZero() || c.selected.IsZero() {
		return
	}

	isSelected := c.selected == e.id

	style := StyleNormal
	switch {
	case e.pressed || c.selectCount > 1:
		style = StylePressed
	case e.id == c.current:
		style = StyleHovered
	}
	e.SwitchStyle(style, true)

	if c.selectCount > 0 {
		c.selectCount--
	}
	if c.selectCount == 0 {
		c.setSelected(ElementID{})
		if isSelected {
			c.propagateOnSelect(e.id)
		}
		c.propagateOnStopSelect(e.id)
	}

	if e.id != c.current && c.alive() {
		e.SetFocus()
	}
}

// The propagate helpers run a hook on c and on every outer that shares its
// navigation.

func (c *Container) propagateOnSelect(id ElementID) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		cur.hooks.OnSelect(cur.element(id))
	}
}

func (c *Container) propagateOnStartSelect(id ElementID) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		cur.hooks.OnStartSelect(cur.element(id))
	}
}

func (c *Container) propagateOnStopSelect(id ElementID) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		cur.hooks.OnStopSelect(cur.element(id))
	}
}

// NotifyHorizontalStep reports a left (-1) or right (+1) step on a
// horizontal element.
func (c *Container) NotifyHorizontalStep(id ElementID, step int) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		e := cur.element(id)
		if step < 0 {
			cur.hooks.OnHorizontalStepLeft(e)
		} else {
			cur.hooks.OnHorizontalStepRight(e)
		}
	}
}

// NotifyHorizontalUpdated reports a value change on a horizontal element.
func (c *Container) NotifyHorizontalUpdated(id ElementID) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		cur.hooks.OnHorizontalStepUpdated(cur.element(id))
	}
}
