// Package nav implements focus-based UI navigation: elements wrapping
// interactive buttons, containers coordinating them, propagation of
// navigation along nested containers, and a push/pop widget stack.
//
// All state lives in a Navigator and is addressed through weak handles.
// Every entry point runs on the UI goroutine; nothing here is safe for
// concurrent use.
package nav

import "go.uber.org/zap"

// Config holds the collaborators of a Navigator.
type Config struct {
	Settings   Settings
	Host       Host
	Dispatcher Dispatcher // may be bound later with SetDispatcher
	Logger     *zap.Logger
}

// Navigator owns every element and container and routes host events to
// them.
type Navigator struct {
	settings   Settings
	host       Host
	dispatcher Dispatcher
	log        *zap.Logger

	elements   arena[Element]
	containers arena[Container]
}

// New creates a Navigator.
func New(cfg Config) (*Navigator, error) {
	if cfg.Host == nil {
		return nil, &ConfigError{Op: "new", Reason: "no host"}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Navigator{
		settings:   cfg.Settings,
		host:       cfg.Host,
		dispatcher: cfg.Dispatcher,
		log:        log,
	}, nil
}

// SetDispatcher binds the player-level dispatcher.
func (n *Navigator) SetDispatcher(d Dispatcher) {
	n.dispatcher = d
}

func (n *Navigator) Settings() Settings { return n.settings }
func (n *Navigator) Host() Host { return n.host }
func (n *Navigator) Dispatcher() Dispatcher { return n.dispatcher }
func (n *Navigator) Logger() *zap.Logger { return n.log }

// Element resolves a handle. It returns nil for null or stale handles.
func (n *Navigator) Element(id ElementID) *Element {
	return n.elements.get(id.index, id.gen)
}

// Container resolves a handle. It returns nil for null or stale handles.
func (n *Navigator) Container(id ContainerID) *Container {
	return n.containers.get(id.index, id.gen)
}

// Containers returns every live container.
func (n *Navigator) Containers() []*Container {
	return n.containers.live()
}

// Len returns the number of live containers and elements.
func (n *Navigator) Len() (containers, elements int) {
	return n.containers.len(), n.elements.len()
}

// Create builds a container tree from class. The result is not displayed;
// push it or hand it to the host.
func (n *Navigator) Create(class *Class) (*Container, error) {
	if class == nil {
		err := &ConfigError{Op: "create", Reason: "no container class"}
		n.log.Error("create failed", zap.Error(err))
		return nil, err
	}
	return n.create(class, ContainerID{}), nil
}

func (n *Navigator) create(class *Class, outer ContainerID) *Container {
	c := &Container{
		nav:                 n,
		class:               class,
		opts:                class.Options,
		outer:               outer,
		forcingNavigation:   true,
		setupWaitForTick:    -1,
		selectorWaitForTick: -1,
	}
	index, gen := n.containers.insert(c)
	c.id = ContainerID{index: index, gen: gen}

	c.hooks = NopHooks{}
	if class.Hooks != nil {
		if h := class.Hooks(c); h != nil {
			c.hooks = h
		}
	}
	if class.Build != nil {
		class.Build(&Builder{nav: n, c: c})
	}

	n.log.Debug("container created",
		zap.Stringer("container", c.id),
		zap.String("class", class.Name),
		zap.Stringer("outer", outer),
		zap.Int("elements", len(c.elements)),
		zap.Int("children", len(c.children)))
	return c
}

// Destroy removes a container from display and releases it with its nested
// children and their elements. Handles to them go stale.
func (n *Navigator) Destroy(id ContainerID) {
	root := n.Container(id)
	if root == nil || root.destroying {
		return
	}
	root.destroying = true
	if outer := n.Container(root.outer); outer != nil {
		for i, cid := range outer.children {
			if cid == root.id {
				outer.children = append(outer.children[:i], outer.children[i+1:]...)
				break
			}
		}
	} else if n.host.IsDisplayed(root.id) {
		n.host.RemoveFromDisplay(root.id)
	}

	stack := []*Container{root}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c.destroying = true
		for _, childID := range c.children {
			if child := n.Container(childID); child != nil {
				stack = append(stack, child)
			}
		}
		for _, eid := range c.elements {
			n.elements.remove(eid.index, eid.gen)
		}
		c.elements = nil
		c.first, c.current, c.hovered, c.selected = ElementID{}, ElementID{}, ElementID{}, ElementID{}
		n.containers.remove(c.id.index, c.id.gen)
	}
	n.log.Debug("container destroyed", zap.Stringer("container", id), zap.String("class", root.Name()))
}

// Tick advances deferred setup, selector movement and element animations.
func (n *Navigator) Tick(dt float32) {
	for _, c := range n.containers.live() {
		if c.alive() {
			c.tick(dt)
		}
	}
	for _, e := range n.elements.live() {
		if e.animation != nil {
			e.animation.Advance(dt)
		}
	}
}

func (c *Container) tick(dt float32) {
	if !c.selectorValid() {
		return
	}

	if c.setupWaitForTick >= 0 {
		if c.setupWaitForTick >= 1 {
			c.setupWaitForTick = -1
			c.uiNavSetup()
			if !c.alive() {
				return
			}
		} else {
			c.setupWaitForTick++
		}
	}

	if c.selectorWaitForTick >= 0 {
		if c.selectorWaitForTick >= 1 {
			c.selectorWaitForTick = -1
			if c.selector.opts.MoveCurve != nil {
				c.beginSelectorMovement(c.selectorPrev, c.selectorNext)
			} else {
				c.updateSelectorLocation(c.selectorNext)
			}
		} else {
			c.selectorWaitForTick++
		}
	}

	if c.selector.moving {
		c.selector.advance(dt)
	}
}

// FindCommonOuter returns the closest container both a and b are nested in
// (either may be the answer itself), or the null handle.
func (n *Navigator) FindCommonOuter(a, b ContainerID) ContainerID {
	ca, cb := n.Container(a), n.Container(b)
	if ca == nil || cb == nil {
		return ContainerID{}
	}
	seen := make(map[ContainerID]struct{})
	for cur := ca; cur != nil; cur = cur.outerContainer() {
		seen[cur.id] = struct{}{}
	}
	for cur := cb; cur != nil; cur = cur.outerContainer() {
		if _, ok := seen[cur.id]; ok {
			return cur.id
		}
	}
	return ContainerID{}
}

// TransferNavigation moves navigation from prev to next: prev's chain loses
// it, then next's chain gains it. Dispatchers call this when the active
// sub-widget changes.
func (n *Navigator) TransferNavigation(prev, next ContainerID) {
	if prev == next {
		return
	}
	common := n.FindCommonOuter(prev, next)
	if p := n.Container(prev); p != nil {
		p.propagateLoseNavigation(next, prev, common)
	}
	if c := n.Container(next); c != nil {
		c.propagateGainNavigation(prev, next, common)
	}
	n.log.Debug("navigation transferred",
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
		zap.Stringer("common", common))
}
