package nav

import "github.com/Faultbox/midgard-nav/pkg/math"

// PromptCallback receives the decision of a prompt container.
type PromptCallback func(accepted bool)

// Container coordinates navigation for one widget instance: the elements it
// owns, its nested children and its place in the push/pop stack.
type Container struct {
	nav   *Navigator
	id    ContainerID
	class *Class
	hooks Hooks
	opts  ContainerOptions

	outer    ContainerID
	children []ContainerID
	elements []ElementID
	path     []int

	// Push/pop links.
	parent       ContainerID
	returnedFrom ContainerID

	first       ElementID
	current     ElementID
	hovered     ElementID
	selected    ElementID
	ignoreHover ElementID

	hasNavigation           bool
	forcingNavigation       bool
	hoverRestoredNavigation bool
	selectCount             int
	acceptHolds             int

	selector            *Selector
	selectorPrev        ElementID
	selectorNext        ElementID
	setupWaitForTick    int
	selectorWaitForTick int

	usingSplitScreen  bool
	parentRemoved     bool
	destroyParent     bool
	setupStarted      bool
	completedSetup    bool
	returningToParent bool
	beingRemoved      bool
	destroying        bool

	title   string
	message string
	decided PromptCallback
}

func (c *Container) ID() ContainerID { return c.id }
func (c *Container) Outer() ContainerID { return c.outer }
func (c *Container) Parent() ContainerID { return c.parent }
func (c *Container) First() ElementID { return c.first }
func (c *Container) Current() ElementID { return c.current }
func (c *Container) Hovered() ElementID { return c.hovered }
func (c *Container) Selected() ElementID { return c.selected }
func (c *Container) HasNavigation() bool { return c.hasNavigation }
func (c *Container) IsForcingNavigation() bool { return c.forcingNavigation }
func (c *Container) SelectCount() int { return c.selectCount }
func (c *Container) CompletedSetup() bool { return c.completedSetup }
func (c *Container) Selector() *Selector { return c.selector }
func (c *Container) Options() ContainerOptions { return c.opts }
func (c *Container) Title() string { return c.title }
func (c *Container) Message() string { return c.message }
func (c *Container) Navigator() *Navigator { return c.nav }

// Name returns the class name.
func (c *Container) Name() string {
	if c.class == nil {
		return ""
	}
	return c.class.Name
}

// Children returns the nested containers in registration order.
func (c *Container) Children() []ContainerID {
	return append([]ContainerID(nil), c.children...)
}

// Child returns the nested container at index, or the null handle.
func (c *Container) Child(index int) ContainerID {
	if index < 0 || index >= len(c.children) {
		return ContainerID{}
	}
	return c.children[index]
}

// Elements returns the live elements owned directly by this container.
func (c *Container) Elements() []ElementID {
	out := make([]ElementID, 0, len(c.elements))
	for _, id := range c.elements {
		if c.nav.Element(id) != nil {
			out = append(out, id)
		}
	}
	return out
}

// Path returns the nesting index path of this container.
func (c *Container) Path() []int {
	return append([]int(nil), c.path...)
}

func (c *Container) alive() bool {
	return c != nil && !c.destroying && c.nav.Container(c.id) == c
}

func (c *Container) outerContainer() *Container {
	return c.nav.Container(c.outer)
}

// Outermost returns the root of this container's outer chain.
func (c *Container) Outermost() *Container {
	root := c
	for {
		o := root.outerContainer()
		if o == nil {
			return root
		}
		root = o
	}
}

// sharingOuter returns the outer of c when it is live and does not keep
// navigation for itself, so state flows up to it.
func (c *Container) sharingOuter() *Container {
	o := c.outerContainer()
	if o == nil || o.opts.MaintainNavigationForChild {
		return nil
	}
	return o
}

// isPathPrefixOf reports whether c's path is a prefix of other's path.
func (c *Container) isPathPrefixOf(other *Container) bool {
	if len(c.path) > len(other.path) {
		return false
	}
	for i, v := range c.path {
		if other.path[i] != v {
			return false
		}
	}
	return true
}

// addParentToPath prepends index to the path of c and all its descendants.
func (c *Container) addParentToPath(index int) {
	stack := []*Container{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.path = append([]int{index}, cur.path...)
		for _, id := range cur.children {
			if child := c.nav.Container(id); child != nil {
				stack = append(stack, child)
			}
		}
	}
}

// setFirstElement records the first element unless one is already set, and
// offers it to outers that have none.
func (c *Container) setFirstElement(id ElementID) {
	for cur := c; cur != nil; cur = cur.outerContainer() {
		if cur.nav.Element(cur.first) != nil {
			return
		}
		cur.first = id
	}
}

// The setters below mirror the value up every outer that does not maintain
// navigation for its child.

func (c *Container) setCurrent(id ElementID) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		cur.current = id
	}
}

func (c *Container) setHovered(id ElementID) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		cur.hovered = id
	}
}

func (c *Container) setSelected(id ElementID) {
	for cur := c; cur != nil; cur = cur.sharingOuter() {
		cur.selected = id
	}
}

func (c *Container) element(id ElementID) *Element {
	return c.nav.Element(id)
}

func (c *Container) removedElement(e *Element) {
	if e.id == c.current {
		c.setCurrent(ElementID{})
	}
	if e.id == c.first {
		c.first = ElementID{}
	}
	for i, id := range c.elements {
		if id == e.id {
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			break
		}
	}
}

// SetSelectorVisibility shows or hides the selector.
func (c *Container) SetSelectorVisibility(visible bool) {
	if c.selector == nil {
		return
	}
	c.selector.visible = visible
}

// IsSelectorVisible reports whether the selector is shown.
func (c *Container) IsSelectorVisible() bool {
	return c.selector != nil && c.selector.visible
}

// SetSelectorScale scales the selector.
func (c *Container) SetSelectorScale(scale math.Vec2) {
	if c.selector == nil {
		return
	}
	c.selector.scale = scale
}

func (c *Container) selectorValid() bool {
	return c.selector != nil && c.selector.enabled
}
