package viewport

import (
	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// HitTest returns the element under p on the topmost layer that has one.
func (v *Viewport) HitTest(p math.Vec2) nav.ElementID {
	if v.nav == nil {
		return nav.ElementID{}
	}
	for i := len(v.layers) - 1; i >= 0; i-- {
		root := v.nav.Container(v.layers[i].Container)
		if root == nil {
			continue
		}
		if id := v.hitContainer(root, p); !id.IsZero() {
			return id
		}
	}
	return nav.ElementID{}
}

func (v *Viewport) hitContainer(root *nav.Container, p math.Vec2) nav.ElementID {
	queue := []*nav.Container{root}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, id := range c.Elements() {
			e := v.nav.Element(id)
			if e == nil || !e.IsVisible() {
				continue
			}
			if r, ok := v.geometry[id]; ok && r.Contains(p) {
				return id
			}
		}
		for _, id := range c.Children() {
			if child := v.nav.Container(id); child != nil {
				queue = append(queue, child)
			}
		}
	}
	return nav.ElementID{}
}

// PointerMove moves the pointer to p, sending hover exit and enter events.
func (v *Viewport) PointerMove(p math.Vec2) {
	hit := v.HitTest(p)
	if hit == v.hovered {
		return
	}
	prev := v.hovered
	v.hovered = hit
	if !prev.IsZero() {
		v.nav.OnElementUnhovered(prev)
	}
	if !hit.IsZero() {
		v.nav.OnElementHovered(hit)
	}
}

// PointerDown presses the element under p.
func (v *Viewport) PointerDown(p math.Vec2) {
	v.PointerMove(p)
	if v.hovered.IsZero() {
		return
	}
	v.pressed = v.hovered
	v.nav.OnElementPressed(v.pressed)
}

// PointerUp releases the pressed element. Releasing over it clicks.
func (v *Viewport) PointerUp(p math.Vec2) {
	v.PointerMove(p)
	if v.pressed.IsZero() {
		return
	}
	id := v.pressed
	v.pressed = nav.ElementID{}
	v.nav.OnElementReleased(id)
	if v.hovered == id {
		v.nav.OnElementClicked(id)
	}
}

// Hovered returns the element under the pointer.
func (v *Viewport) Hovered() nav.ElementID { return v.hovered }
