package nav

import (
	"fmt"
	"testing"

	"github.com/Faultbox/midgard-nav/pkg/math"
)

// testHost displays containers immediately and queues focus requests until
// flush delivers them.
type testHost struct {
	n         *Navigator
	displayed map[ContainerID]bool
	focus     FocusTarget
	pending   []FocusTarget
	geometry  map[ElementID]math.Rect
	split     bool

	added   []ContainerID
	removed []ContainerID
	screens map[ContainerID]bool
}

func newTestHost() *testHost {
	return &testHost{
		displayed: make(map[ContainerID]bool),
		geometry:  make(map[ElementID]math.Rect),
		screens:   make(map[ContainerID]bool),
	}
}

func (h *testHost) AddToDisplay(c ContainerID, zOrder int, playerScreen bool) {
	h.displayed[c] = true
	h.screens[c] = playerScreen
	h.added = append(h.added, c)
	h.n.Construct(c)
}

func (h *testHost) RemoveFromDisplay(c ContainerID) {
	delete(h.displayed, c)
	h.removed = append(h.removed, c)
}

func (h *testHost) IsDisplayed(c ContainerID) bool { return h.displayed[c] }

func (h *testHost) RequestFocus(t FocusTarget) {
	h.pending = append(h.pending, t)
}

func (h *testHost) HasFocus(t FocusTarget) bool {
	if !t.Element.IsZero() {
		return h.focus.Element == t.Element
	}
	for cur := h.n.Container(h.focus.Container); cur != nil; cur = cur.outerContainer() {
		if cur.id == t.Container {
			return true
		}
	}
	return false
}

func (h *testHost) Geometry(e ElementID) (math.Rect, bool) {
	r, ok := h.geometry[e]
	return r, ok
}

func (h *testHost) SplitScreen() bool { return h.split }

// flush delivers queued focus requests, including ones queued while
// delivering.
func (h *testHost) flush() {
	for i := 0; len(h.pending) > 0 && i < 64; i++ {
		t := h.pending[0]
		h.pending = h.pending[1:]
		h.focus = t
		if !t.Element.IsZero() {
			h.n.OnElementFocused(t.Element)
		} else {
			h.n.OnContainerFocused(t.Container)
		}
	}
}

// testDispatcher transfers navigation whenever the active container changes.
type testDispatcher struct {
	n      *Navigator
	active ContainerID

	denySelect    bool
	denySection   bool
	rebinding     bool
	cancelRebinds int
	ignoreFocus   bool
	cleared       int
	moves         []Direction
	target        ElementID
}

func (d *testDispatcher) IsListeningForRebind() bool { return d.rebinding }
func (d *testDispatcher) CancelRebind() { d.cancelRebinds++ }
func (d *testDispatcher) ActiveSubWidget() ContainerID {
	return d.active
}
func (d *testDispatcher) ClearActiveWidget() {
	d.active = ContainerID{}
	d.cleared++
}
func (d *testDispatcher) AllowsSelectInput() bool { return !d.denySelect }
func (d *testDispatcher) AllowsSectionInput() bool { return !d.denySection }
func (d *testDispatcher) AllowsDirection(Direction) bool { return true }
func (d *testDispatcher) SetIgnoreFocusByNavigation(v bool) { d.ignoreFocus = v }
func (d *testDispatcher) IgnoreFocusByNavigation() bool { return d.ignoreFocus }

func (d *testDispatcher) NotifyNavigatedTo(c ContainerID) {
	if d.active == c {
		return
	}
	prev := d.active
	d.active = c
	d.n.TransferNavigation(prev, c)
}

func (d *testDispatcher) TryNavigateInDirection(dir Direction, source ContainerID) bool {
	d.moves = append(d.moves, dir)
	if e := d.n.Element(d.target); e != nil {
		e.SetFocus()
		return true
	}
	return false
}

// recHooks records hook calls as strings.
type recHooks struct {
	NopHooks
	name   string
	events []string

	handleReturn bool
	handleNext   bool
	initial      ElementID
}

func elemName(e *Element) string {
	if e == nil {
		return "-"
	}
	return e.Name()
}

func (h *recHooks) record(format string, args ...any) {
	h.events = append(h.events, fmt.Sprintf(format, args...))
}

func (h *recHooks) OnNavigate(from, to *Element) {
	h.record("navigate %s>%s", elemName(from), elemName(to))
}
func (h *recHooks) OnSelect(e *Element) { h.record("select %s", elemName(e)) }
func (h *recHooks) OnStartSelect(e *Element) { h.record("start %s", elemName(e)) }
func (h *recHooks) OnStopSelect(e *Element) { h.record("stop %s", elemName(e)) }
func (h *recHooks) OnGainedNavigation(prev *Container, fromChild bool) {
	h.record("gained child=%v", fromChild)
}
func (h *recHooks) OnLostNavigation(next *Container, toChild bool) {
	h.record("lost child=%v", toChild)
}
func (h *recHooks) OnReturn() bool {
	h.record("return")
	return h.handleReturn
}
func (h *recHooks) OnNext() bool {
	h.record("next")
	return h.handleNext
}
func (h *recHooks) OnPrevious() bool {
	h.record("previous")
	return h.handleNext
}
func (h *recHooks) OnHorizontalStepLeft(e *Element) { h.record("left %s", elemName(e)) }
func (h *recHooks) OnHorizontalStepRight(e *Element) { h.record("right %s", elemName(e)) }
func (h *recHooks) OnHorizontalStepUpdated(e *Element) { h.record("updated %s", elemName(e)) }
func (h *recHooks) OnInputTypeChanged(from, to InputType) { h.record("input %s>%s", from, to) }
func (h *recHooks) PreSetup(first bool) { h.record("presetup first=%v", first) }
func (h *recHooks) OnSetupCompleted() { h.record("setup") }
func (h *recHooks) InitialFocusElement() (ElementID, bool) {
	return h.initial, !h.initial.IsZero()
}

func (h *recHooks) count(event string) int {
	n := 0
	for _, e := range h.events {
		if e == event {
			n++
		}
	}
	return n
}

func (h *recHooks) reset() { h.events = nil }

// fixture wires a Navigator to the test host and dispatcher.
type fixture struct {
	t     *testing.T
	n     *Navigator
	host  *testHost
	disp  *testDispatcher
	hooks map[ContainerID]*recHooks
}

func newFixture(t *testing.T, settings Settings) *fixture {
	t.Helper()
	host := newTestHost()
	n, err := New(Config{Settings: settings, Host: host})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	host.n = n
	disp := &testDispatcher{n: n}
	n.SetDispatcher(disp)
	return &fixture{t: t, n: n, host: host, disp: disp, hooks: make(map[ContainerID]*recHooks)}
}

// class returns a recording class with the named elements.
func (f *fixture) class(name string, opts ContainerOptions, build func(b *Builder), elems ...string) *Class {
	return &Class{
		Name:    name,
		Options: opts,
		Hooks: func(c *Container) Hooks {
			h := &recHooks{name: name}
			f.hooks[c.ID()] = h
			return h
		},
		Build: func(b *Builder) {
			for _, e := range elems {
				b.Element(ElementOptions{
					Name:   e,
					Styles: [3]Color{{R: 0.1}, {R: 0.5}, {R: 0.9}},
				})
			}
			if build != nil {
				build(b)
			}
		},
	}
}

func (f *fixture) open(class *Class) *Container {
	f.t.Helper()
	c, err := f.n.Open(class, 0)
	if err != nil {
		f.t.Fatalf("Open: %v", err)
	}
	f.host.flush()
	return c
}

// elem finds an element by name among a container tree.
func (f *fixture) elem(c *Container, name string) *Element {
	f.t.Helper()
	for _, cur := range append([]*Container{c}, c.descendants()...) {
		for _, id := range cur.elements {
			if e := f.n.Element(id); e != nil && e.Name() == name {
				return e
			}
		}
	}
	f.t.Fatalf("element %q not found in %s", name, c.Name())
	return nil
}

func (f *fixture) focus(e *Element) {
	e.SetFocus()
	f.host.flush()
}
