// Package navpc provides the player-level navigation controller: the
// default nav.Dispatcher. It tracks the active container, gates input while
// a rebind is listening and moves focus between elements by screen
// position.
package navpc

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// Controller implements nav.Dispatcher for one player.
type Controller struct {
	nav *nav.Navigator
	log *zap.Logger

	active      nav.ContainerID
	rebinding   bool
	ignoreFocus bool
	inputType   nav.InputType

	denySelect  bool
	denySection bool
	denied      map[nav.Direction]bool
}

// New returns a controller logging to log. A nil log discards output.
func New(log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		log:    log,
		denied: make(map[nav.Direction]bool),
	}
}

// Bind attaches the controller to n as its dispatcher.
func (c *Controller) Bind(n *nav.Navigator) {
	c.nav = n
	n.SetDispatcher(c)
}

// Active returns the active container, or nil.
func (c *Controller) Active() *nav.Container {
	if c.nav == nil {
		return nil
	}
	return c.nav.Container(c.active)
}

func (c *Controller) ActiveSubWidget() nav.ContainerID { return c.active }

func (c *Controller) NotifyNavigatedTo(id nav.ContainerID) {
	if id == c.active {
		return
	}
	prev := c.active
	c.active = id
	if c.nav != nil {
		c.nav.TransferNavigation(prev, id)
	}
}

func (c *Controller) ClearActiveWidget() {
	c.log.Debug("active widget cleared", zap.Stringer("container", c.active))
	c.active = nav.ContainerID{}
}

// StartRebind blocks navigation input until the rebind finishes or is
// cancelled.
func (c *Controller) StartRebind() {
	c.rebinding = true
	c.log.Debug("listening for rebind")
}

// FinishRebind ends a rebind started with StartRebind.
func (c *Controller) FinishRebind() {
	c.rebinding = false
}

func (c *Controller) IsListeningForRebind() bool { return c.rebinding }

func (c *Controller) CancelRebind() {
	if c.rebinding {
		c.log.Debug("rebind cancelled")
	}
	c.rebinding = false
}

// SetSelectInput enables or disables accept input.
func (c *Controller) SetSelectInput(allowed bool) { c.denySelect = !allowed }

// SetSectionInput enables or disables next/previous input.
func (c *Controller) SetSectionInput(allowed bool) { c.denySection = !allowed }

// SetDirectionAllowed enables or disables one direction.
func (c *Controller) SetDirectionAllowed(d nav.Direction, allowed bool) {
	if allowed {
		delete(c.denied, d)
		return
	}
	c.denied[d] = true
}

func (c *Controller) AllowsSelectInput() bool { return !c.denySelect }
func (c *Controller) AllowsSectionInput() bool { return !c.denySection }
func (c *Controller) AllowsDirection(d nav.Direction) bool { return !c.denied[d] }

func (c *Controller) SetIgnoreFocusByNavigation(ignore bool) { c.ignoreFocus = ignore }
func (c *Controller) IgnoreFocusByNavigation() bool { return c.ignoreFocus }

// InputType returns the last input device used.
func (c *Controller) InputType() nav.InputType { return c.inputType }

// SetInputType records the device that produced the latest input and tells
// the navigator when it changed.
func (c *Controller) SetInputType(t nav.InputType) {
	if t == c.inputType {
		return
	}
	prev := c.inputType
	c.inputType = t
	c.log.Debug("input type changed", zap.Stringer("from", prev), zap.Stringer("to", t))
	if c.nav != nil {
		c.nav.NotifyInputTypeChanged(prev, t)
	}
}

// TryNavigateInDirection focuses the nearest navigable element in d within
// the source's outermost container. Elements without geometry are walked in
// tree order instead.
func (c *Controller) TryNavigateInDirection(d nav.Direction, source nav.ContainerID) bool {
	if c.nav == nil {
		return false
	}
	src := c.nav.Container(source)
	if src == nil {
		return false
	}
	cur := c.nav.Element(src.Current())

	candidates := c.navigable(src.Outermost())
	if cur == nil {
		if len(candidates) == 0 {
			return false
		}
		candidates[0].SetFocus()
		return true
	}

	var next *nav.Element
	if _, ok := c.nav.Host().Geometry(cur.ID()); ok {
		next = c.nearest(cur, candidates, d)
	} else {
		next = adjacent(cur, candidates, d)
	}
	if next == nil {
		return false
	}

	c.log.Debug("navigate",
		zap.Stringer("direction", d),
		zap.String("from", cur.Name()),
		zap.String("to", next.Name()))
	next.SetFocus()
	return true
}

// navigable lists the elements under root that can take navigation, in
// tree order.
func (c *Controller) navigable(root *nav.Container) []*nav.Element {
	var out []*nav.Element
	queue := []*nav.Container{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, id := range cur.Elements() {
			if e := c.nav.Element(id); e != nil && e.CanBeNavigated() {
				out = append(out, e)
			}
		}
		for _, id := range cur.Children() {
			if child := c.nav.Container(id); child != nil {
				queue = append(queue, child)
			}
		}
	}
	return out
}

// nearest scores candidates lying in d from cur by distance along d plus
// twice the cross-axis distance.
func (c *Controller) nearest(cur *nav.Element, candidates []*nav.Element, d nav.Direction) *nav.Element {
	host := c.nav.Host()
	from, _ := host.Geometry(cur.ID())
	origin := from.Center()

	var best *nav.Element
	bestScore := float32(1e9)
	for _, e := range candidates {
		if e == cur {
			continue
		}
		r, ok := host.Geometry(e.ID())
		if !ok {
			continue
		}
		delta := r.Center().Sub(origin)
		along, across, ok := project(delta, d)
		if !ok {
			continue
		}
		if score := along + across*2; score < bestScore {
			bestScore = score
			best = e
		}
	}
	return best
}

// project splits delta into its distance along d and across it. ok is
// false when delta does not point in d.
func project(delta math.Vec2, d nav.Direction) (along, across float32, ok bool) {
	switch d {
	case nav.DirectionUp:
		along, across = -delta.Y, delta.X
	case nav.DirectionDown:
		along, across = delta.Y, delta.X
	case nav.DirectionLeft:
		along, across = -delta.X, delta.Y
	case nav.DirectionRight:
		along, across = delta.X, delta.Y
	default:
		return 0, 0, false
	}
	if along <= 0 {
		return 0, 0, false
	}
	if across < 0 {
		across = -across
	}
	return along, across, true
}

// adjacent steps through candidates in tree order: up and left go back,
// down and right go forward.
func adjacent(cur *nav.Element, candidates []*nav.Element, d nav.Direction) *nav.Element {
	idx := -1
	for i, e := range candidates {
		if e == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	switch d {
	case nav.DirectionUp, nav.DirectionLeft:
		if idx > 0 {
			return candidates[idx-1]
		}
	case nav.DirectionDown, nav.DirectionRight:
		if idx+1 < len(candidates) {
			return candidates[idx+1]
		}
	}
	return nil
}
