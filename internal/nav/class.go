package nav

import "go.uber.org/zap"

// ContainerOptions are the per-class container flags.
type ContainerOptions struct {
	// MaintainNavigationForChild keeps focus visuals local to this container
	// instead of sharing them with nested children.
	MaintainNavigationForChild bool
	// DisallowRemoveIfRoot stops a root container from removing itself on
	// return.
	DisallowRemoveIfRoot bool
	// FullscreenWhenSplitScreen shows the container over the whole viewport
	// even in split screen.
	FullscreenWhenSplitScreen bool
	// ForcePlayerScreen always shows the container on the player's screen.
	ForcePlayerScreen bool
}

// Class describes how to build a container: its flags, hooks and the
// elements and nested children it holds.
type Class struct {
	Name    string
	Options ContainerOptions
	// Hooks builds the hook set for a new instance. Nil uses NopHooks.
	Hooks func(c *Container) Hooks
	// Build registers elements, nested children and the selector.
	Build func(b *Builder)
}

// Builder registers the contents of a container being created.
type Builder struct {
	nav *Navigator
	c   *Container
}

// Container returns the container being built.
func (b *Builder) Container() *Container {
	return b.c
}

// Element registers an element owned by the container. The first element
// registered becomes the container's first element.
func (b *Builder) Element(opts ElementOptions) ElementID {
	e := newElement(b.nav, b.c.id, opts)
	index, gen := b.nav.elements.insert(e)
	e.id = ElementID{index: index, gen: gen}
	b.c.elements = append(b.c.elements, e.id)
	b.c.setFirstElement(e.id)
	return e.id
}

// Child creates a nested container inside this one.
func (b *Builder) Child(class *Class) ContainerID {
	if class == nil {
		b.nav.log.Error("nested container has no class", zap.Stringer("outer", b.c.id))
		return ContainerID{}
	}
	child := b.nav.create(class, b.c.id)
	index := len(b.c.children)
	b.c.children = append(b.c.children, child.id)
	child.addParentToPath(index)
	return child.id
}

// Selector gives the container a selector cursor.
func (b *Builder) Selector(opts SelectorOptions) {
	b.c.selector = newSelector(opts)
}
