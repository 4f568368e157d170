package nav

import "go.uber.org/zap"

// Construct runs when the host displays a container. Hosts call it from
// AddToDisplay.
func (n *Navigator) Construct(id ContainerID) {
	c := n.Container(id)
	if c == nil || c.destroying {
		return
	}
	c.construct()
}

func (c *Container) construct() {
	n := c.nav
	c.beingRemoved = false

	if outer := c.outerContainer(); outer != nil {
		c.parent = outer.id
		c.hooks.PreSetup(!c.completedSetup)
		return
	}

	c.usingSplitScreen = n.host.SplitScreen()

	// A push that asked to remove the parent takes it off the display now.
	if parent := n.Container(c.parent); parent != nil && c.parentRemoved && n.host.IsDisplayed(parent.Outermost().id) {
		op := parent.Outermost()
		op.returningToParent = true
		op.detach()
		if c.destroyParent {
			n.Destroy(op.id)
		}
	}

	if rf := n.Container(c.returnedFrom); rf != nil && n.host.HasFocus(FocusTarget{Container: rf.id}) {
		n.host.RequestFocus(FocusTarget{Container: c.id})
	}

	for _, child := range c.descendants() {
		child.construct()
	}

	c.hooks.PreSetup(!c.completedSetup)
	if err := c.initialSetup(); err != nil {
		n.log.Error("container setup failed",
			zap.Stringer("container", c.id),
			zap.String("class", c.Name()),
			zap.Error(err))
	}
}

// descendants returns every nested container below c, parents first.
func (c *Container) descendants() []*Container {
	var out []*Container
	queue := []*Container{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, id := range cur.children {
			if child := c.nav.Container(id); child != nil {
				out = append(out, child)
				queue = append(queue, child)
			}
		}
	}
	return out
}

func (c *Container) initialSetup() error {
	if c.nav.dispatcher == nil {
		return &ConfigError{Op: "setup", Reason: "no dispatcher bound"}
	}

	if c.completedSetup {
		c.reconfigureSetup()
		return nil
	}

	c.setupStarted = true
	c.beginSetup()
	return nil
}

// beginSetup runs setup now, or once the selector has had two ticks to
// read settled layout.
func (c *Container) beginSetup() {
	if !c.selectorValid() {
		c.uiNavSetup()
		return
	}
	c.setupSelector()
	c.setupWaitForTick = 0
}

// reconfigureSetup resumes a container that was hidden rather than
// destroyed. Hierarchy discovery is skipped.
func (c *Container) reconfigureSetup() {
	c.setupStarted = true
	c.beginSetup()

	for _, id := range c.children {
		if child := c.nav.Container(id); child != nil {
			child.reconfigureSetup()
		}
	}
}

// cleanSetup marks c and its children as needing setup again.
func (c *Container) cleanSetup() {
	for _, child := range c.descendants() {
		child.setupStarted = false
	}
	c.setupStarted = false
}

func (c *Container) setupSelector() {
	if c.selector != nil {
		c.selector.reset()
	}
}

func (c *Container) uiNavSetup() {
	d := c.nav.dispatcher
	if d == nil {
		return
	}

	c.completedSetup = true

	// Nested containers share focus with their outer, which resolves it.
	if c.nav.Container(c.outer) == nil {
		if cur := c.element(c.current); !c.returnedFrom.IsZero() && cur != nil {
			cur.SetFocus()
			if !c.nav.settings.ForceNavigation && c.element(c.hovered) == nil {
				c.UnforceNavigation()
			}
		} else if !c.tryFocusOnInitial() {
			d.NotifyNavigatedTo(c.id)
		}
	}

	c.returnedFrom = ContainerID{}
	c.ignoreHover = ElementID{}

	c.nav.log.Debug("setup completed", zap.Stringer("container", c.id), zap.String("class", c.Name()))
	c.hooks.OnSetupCompleted()
}

// initialFocusElement resolves the element focused on first setup: the
// hook's choice, the first element, or failing those the first element in
// the tree that can take navigation.
func (c *Container) initialFocusElement() *Element {
	if id, ok := c.hooks.InitialFocusElement(); ok {
		if e := c.element(id); e != nil {
			return e
		}
	}
	if e := c.element(c.first); e != nil && e.CanBeNavigated() {
		return e
	}
	for _, cur := range append([]*Container{c}, c.descendants()...) {
		for _, id := range cur.elements {
			if e := c.element(id); e != nil && e.CanBeNavigated() {
				return e
			}
		}
	}
	return nil
}

func (c *Container) tryFocusOnInitial() bool {
	e := c.initialFocusElement()
	if e == nil {
		return false
	}
	e.SetFocus()
	if !c.nav.settings.ForceNavigation && c.element(c.hovered) == nil {
		c.UnforceNavigation()
	}
	return true
}

// OnContainerFocused is called by the host when a container receives
// focus. Focus moves on to the current or initial element.
func (n *Navigator) OnContainerFocused(id ContainerID) {
	c := n.Container(id)
	if c == nil || c.destroying {
		return
	}
	if cur := c.element(c.current); cur != nil {
		cur.SetFocus()
		return
	}
	c.tryFocusOnInitial()
}

// detach takes c off the display without rerouting through
// ReturnToParent.
func (c *Container) detach() {
	c.beingRemoved = true
	c.returningToParent = false
	if c.nav.host.IsDisplayed(c.id) {
		c.nav.host.RemoveFromDisplay(c.id)
	}
}

// RemoveFromDisplay removes the container. An outermost container with
// somewhere to return to goes through ReturnToParent instead.
func (c *Container) RemoveFromDisplay() {
	if !c.alive() {
		return
	}
	c.beingRemoved = true
	if c.outer.IsZero() && !c.returningToParent &&
		(c.nav.Container(c.parent) != nil || (!c.opts.DisallowRemoveIfRoot && c.nav.dispatcher != nil)) {
		c.ReturnToParent(false, 0)
		return
	}
	c.detach()
}

// IsBeingRemoved reports whether the container was taken off the display.
func (c *Container) IsBeingRemoved() bool {
	return c.beingRemoved
}
