package nav

import "go.uber.org/zap"

// Open creates a root container from class and displays it.
func (n *Navigator) Open(class *Class, zOrder int) (*Container, error) {
	c, err := n.Create(class)
	if err != nil {
		return nil, err
	}
	n.host.AddToDisplay(c.id, zOrder, class.Options.ForcePlayerScreen)
	n.host.RequestFocus(FocusTarget{Container: c.id})
	return c, nil
}

// PushWidget creates a container from class and pushes it over this one.
func (c *Container) PushWidget(class *Class, removeParent, destroyParent bool, zOrder int) (*Container, error) {
	if class == nil {
		err := &ConfigError{Op: "push widget", Reason: "no widget class"}
		c.nav.log.Error("push failed", zap.Stringer("from", c.id), zap.Error(err))
		return nil, err
	}
	next := c.nav.create(class, ContainerID{})
	return c.PushBuiltWidget(next, removeParent, destroyParent, zOrder), nil
}

// PushPromptWidget pushes a prompt carrying title and message. decided
// receives the choice once the prompt is answered with Decide.
func (c *Container) PushPromptWidget(class *Class, decided PromptCallback, title, message string, removeParent bool, zOrder int) (*Container, error) {
	if class == nil {
		err := &ConfigError{Op: "push prompt", Reason: "no widget class"}
		c.nav.log.Error("push failed", zap.Stringer("from", c.id), zap.Error(err))
		return nil, err
	}
	if decided == nil {
		err := &ConfigError{Op: "push prompt", Reason: "decision callback isn't bound"}
		c.nav.log.Error("push failed", zap.Stringer("from", c.id), zap.Error(err))
		return nil, err
	}

	prompt := c.nav.create(class, ContainerID{})
	prompt.title = title
	prompt.message = message
	prompt.decided = decided
	return c.PushBuiltWidget(prompt, removeParent, false, zOrder), nil
}

// PushBuiltWidget pushes an existing container over this one. Pushing a
// container that lives under the same outermost container is a no-op.
func (c *Container) PushBuiltWidget(next *Container, removeParent, destroyParent bool, zOrder int) *Container {
	if next == nil || !next.alive() || !c.alive() {
		return nil
	}
	n := c.nav

	oldOuter := c.Outermost()
	newOuter := next.Outermost()

	if c.element(c.hovered) != nil {
		c.ignoreHover = c.hovered
	}

	if newOuter == oldOuter {
		return next
	}

	next.parent = oldOuter.id
	next.parentRemoved = removeParent
	next.destroyParent = destroyParent

	playerScreen := c.opts.ForcePlayerScreen ||
		(n.host.SplitScreen() && !next.opts.FullscreenWhenSplitScreen)
	n.host.AddToDisplay(next.id, zOrder, playerScreen)
	n.host.RequestFocus(FocusTarget{Container: next.id})

	oldOuter.cleanSetup()

	n.log.Info("widget pushed",
		zap.String("class", next.Name()),
		zap.String("parent", oldOuter.Name()),
		zap.Bool("remove_parent", removeParent),
		zap.Bool("destroy_parent", destroyParent))
	return next
}

// ReturnToParent pops this container and restores the container it was
// pushed from. With removeAllParents the whole push chain is torn down.
func (c *Container) ReturnToParent(removeAllParents bool, zOrder int) {
	if !c.alive() {
		return
	}
	n := c.nav
	d := n.dispatcher

	if c.parent.IsZero() {
		if !c.opts.DisallowRemoveIfRoot && d != nil {
			d.ClearActiveWidget()
			c.selectCount = 0
			c.acceptHolds = 0
			c.setSelected(ElementID{})
			c.returningToParent = true
			c.detach()
			n.log.Info("root widget removed", zap.String("class", c.Name()))
		}
		return
	}

	c.selectCount = 0
	c.acceptHolds = 0
	c.setSelected(ElementID{})

	if outer := c.outerContainer(); outer != nil {
		outer.ReturnToParent(removeAllParents, zOrder)
		return
	}

	if removeAllParents {
		if d != nil {
			d.ClearActiveWidget()
		}
		c.RemoveAllParents()
		return
	}

	parent := n.Container(c.parent)
	switch {
	case parent == nil:
		// Destroyed with the push; nothing to restore.
	case c.parentRemoved:
		parent.returnedFrom = c.id
		playerScreen := c.opts.ForcePlayerScreen ||
			(n.host.SplitScreen() && !parent.opts.FullscreenWhenSplitScreen)
		n.host.AddToDisplay(parent.id, zOrder, playerScreen)
	default:
		parent.returnedFrom = c.id
		parent.reconfigureSetup()
	}

	n.log.Info("returned to parent",
		zap.String("class", c.Name()),
		zap.Stringer("parent", c.parent),
		zap.Bool("parent_restored", parent != nil))

	c.returningToParent = true
	c.detach()
	n.Destroy(c.id)
}

// RemoveAllParents removes and destroys this container and every container
// up its push chain, oldest first.
func (c *Container) RemoveAllParents() {
	var chain []*Container
	seen := make(map[ContainerID]bool)
	for cur := c; cur != nil && !seen[cur.id]; cur = c.nav.Container(cur.parent) {
		seen[cur.id] = true
		if cur.outer.IsZero() {
			chain = append(chain, cur)
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		cur.returningToParent = true
		cur.detach()
		c.nav.Destroy(cur.id)
	}
}

// Decide answers a prompt: the prompt returns to its parent, then the
// decision callback runs.
func (c *Container) Decide(accepted bool) {
	if !c.alive() || c.decided == nil {
		return
	}
	cb := c.decided
	c.decided = nil
	c.ReturnToParent(false, 0)
	cb(accepted)
}

// IsPrompt reports whether the container was pushed as a prompt and is
// still awaiting a decision.
func (c *Container) IsPrompt() bool {
	return c.decided != nil
}
