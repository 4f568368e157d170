// Package viewport is the display host for navigation containers. It keeps
// the z-ordered display list, delivers focus requests on the next update
// and turns pointer input into element hover and press events.
package viewport

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// maxFocusHops bounds focus deliveries per update; focus handlers may queue
// further requests.
const maxFocusHops = 64

// Layer is one displayed container.
type Layer struct {
	Container    nav.ContainerID
	ZOrder       int
	PlayerScreen bool
}

// Viewport implements nav.Host.
type Viewport struct {
	nav *nav.Navigator
	log *zap.Logger

	split    bool
	layers   []Layer
	geometry map[nav.ElementID]math.Rect

	focus   nav.FocusTarget
	pending []nav.FocusTarget

	hovered nav.ElementID
	pressed nav.ElementID
}

// New returns an empty viewport. A nil log discards output.
func New(log *zap.Logger, splitScreen bool) *Viewport {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewport{
		log:      log,
		split:    splitScreen,
		geometry: make(map[nav.ElementID]math.Rect),
	}
}

// Bind attaches the navigator whose containers this viewport displays.
func (v *Viewport) Bind(n *nav.Navigator) {
	v.nav = n
}

// AddToDisplay inserts c by z-order, above layers with the same order, and
// constructs it.
func (v *Viewport) AddToDisplay(c nav.ContainerID, zOrder int, playerScreen bool) {
	v.remove(c)
	i := sort.Search(len(v.layers), func(i int) bool { return v.layers[i].ZOrder > zOrder })
	v.layers = append(v.layers, Layer{})
	copy(v.layers[i+1:], v.layers[i:])
	v.layers[i] = Layer{Container: c, ZOrder: zOrder, PlayerScreen: playerScreen}

	v.log.Debug("container displayed",
		zap.Stringer("container", c),
		zap.Int("z", zOrder),
		zap.Bool("player_screen", playerScreen))

	if v.nav != nil {
		v.nav.Construct(c)
	}
}

func (v *Viewport) RemoveFromDisplay(c nav.ContainerID) {
	if v.HasFocus(nav.FocusTarget{Container: c}) {
		v.focus = nav.FocusTarget{}
	}
	if v.remove(c) {
		v.log.Debug("container hidden", zap.Stringer("container", c))
	}
}

func (v *Viewport) remove(c nav.ContainerID) bool {
	for i, l := range v.layers {
		if l.Container == c {
			v.layers = append(v.layers[:i], v.layers[i+1:]...)
			return true
		}
	}
	return false
}

func (v *Viewport) IsDisplayed(c nav.ContainerID) bool {
	for _, l := range v.layers {
		if l.Container == c {
			return true
		}
	}
	return false
}

// Layers returns the display list, bottom first.
func (v *Viewport) Layers() []Layer {
	return append([]Layer(nil), v.layers...)
}

// Top returns the topmost displayed container, or the null handle.
func (v *Viewport) Top() nav.ContainerID {
	if len(v.layers) == 0 {
		return nav.ContainerID{}
	}
	return v.layers[len(v.layers)-1].Container
}

// RequestFocus queues target; it receives focus on the next Update.
func (v *Viewport) RequestFocus(target nav.FocusTarget) {
	v.pending = append(v.pending, target)
}

// Focus returns the last delivered focus target.
func (v *Viewport) Focus() nav.FocusTarget { return v.focus }

func (v *Viewport) HasFocus(target nav.FocusTarget) bool {
	if !target.Element.IsZero() {
		return v.focus.Element == target.Element
	}
	if v.nav == nil {
		return v.focus.Container == target.Container
	}
	for cur := v.nav.Container(v.focus.Container); cur != nil; cur = v.nav.Container(cur.Outer()) {
		if cur.ID() == target.Container {
			return true
		}
	}
	return false
}

// SetGeometry records the on-screen rectangle of an element's button.
func (v *Viewport) SetGeometry(e nav.ElementID, r math.Rect) {
	v.geometry[e] = r
}

func (v *Viewport) Geometry(e nav.ElementID) (math.Rect, bool) {
	r, ok := v.geometry[e]
	return r, ok
}

func (v *Viewport) SplitScreen() bool { return v.split }

// SetSplitScreen switches split-screen mode for containers displayed
// afterwards.
func (v *Viewport) SetSplitScreen(split bool) { v.split = split }

// Update delivers queued focus, then ticks the navigator.
func (v *Viewport) Update(dt float32) {
	v.FlushFocus()
	if v.nav != nil {
		v.nav.Tick(dt)
		v.pruneGeometry()
	}
}

// FlushFocus delivers queued focus requests, including requests queued
// while delivering.
func (v *Viewport) FlushFocus() {
	if v.nav == nil {
		v.pending = v.pending[:0]
		return
	}
	for hops := 0; len(v.pending) > 0; hops++ {
		if hops == maxFocusHops {
			v.log.Warn("focus requests did not settle", zap.Int("dropped", len(v.pending)))
			v.pending = v.pending[:0]
			return
		}
		t := v.pending[0]
		v.pending = v.pending[1:]
		if !t.Element.IsZero() {
			if v.nav.Element(t.Element) == nil {
				continue
			}
			v.focus = t
			v.nav.OnElementFocused(t.Element)
			continue
		}
		if v.nav.Container(t.Container) == nil {
			continue
		}
		v.focus = t
		v.nav.OnContainerFocused(t.Container)
	}
}

// pruneGeometry drops rectangles of destroyed elements.
func (v *Viewport) pruneGeometry() {
	for id := range v.geometry {
		if v.nav.Element(id) == nil {
			delete(v.geometry, id)
		}
	}
}
