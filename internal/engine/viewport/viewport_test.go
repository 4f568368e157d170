package viewport

import (
	"testing"

	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/internal/navpc"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

func newTestViewport(t *testing.T) (*Viewport, *nav.Navigator) {
	t.Helper()
	v := New(nil, false)
	n, err := nav.New(nav.Config{Settings: nav.DefaultSettings(), Host: v})
	if err != nil {
		t.Fatalf("nav.New: %v", err)
	}
	v.Bind(n)
	navpc.New(nil).Bind(n)
	return v, n
}

func buttons(name string, elems ...string) *nav.Class {
	return &nav.Class{
		Name: name,
		Build: func(b *nav.Builder) {
			for _, e := range elems {
				b.Element(nav.ElementOptions{Name: e})
			}
		},
	}
}

func open(t *testing.T, n *nav.Navigator, class *nav.Class, z int) *nav.Container {
	t.Helper()
	c, err := n.Open(class, z)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return c
}

func element(n *nav.Navigator, c *nav.Container, name string) *nav.Element {
	for _, id := range c.Elements() {
		if e := n.Element(id); e != nil && e.Name() == name {
			return e
		}
	}
	return nil
}

func TestAddToDisplayOrdersByZ(t *testing.T) {
	v, n := newTestViewport(t)
	high := open(t, n, buttons("high", "x"), 5)
	low := open(t, n, buttons("low", "x"), 0)
	later := open(t, n, buttons("later", "x"), 5)

	layers := v.Layers()
	want := []nav.ContainerID{low.ID(), high.ID(), later.ID()}
	if len(layers) != len(want) {
		t.Fatalf("layers = %d, want %d", len(layers), len(want))
	}
	for i, id := range want {
		if layers[i].Container != id {
			t.Errorf("layer %d = %v, want %v", i, layers[i].Container, id)
		}
	}
	if v.Top() != later.ID() {
		t.Errorf("top = %v, want later", v.Top())
	}
}

func TestAddToDisplayTwiceMoves(t *testing.T) {
	v, n := newTestViewport(t)
	a := open(t, n, buttons("a", "x"), 0)
	b := open(t, n, buttons("b", "x"), 1)

	v.AddToDisplay(a.ID(), 2, false)
	if got := len(v.Layers()); got != 2 {
		t.Fatalf("layers = %d, want 2", got)
	}
	if v.Top() != a.ID() {
		t.Errorf("top = %v, want a", v.Top())
	}
	if !v.IsDisplayed(b.ID()) {
		t.Error("b no longer displayed")
	}
}

func TestRemoveFromDisplay(t *testing.T) {
	v, n := newTestViewport(t)
	c := open(t, n, buttons("menu", "a"), 0)
	v.Update(0)

	if !v.HasFocus(nav.FocusTarget{Container: c.ID()}) {
		t.Fatal("menu has no focus after update")
	}

	v.RemoveFromDisplay(c.ID())
	if v.IsDisplayed(c.ID()) {
		t.Error("menu still displayed")
	}
	if !v.Top().IsZero() {
		t.Errorf("top = %v, want none", v.Top())
	}
	if v.HasFocus(nav.FocusTarget{Container: c.ID()}) {
		t.Error("removed menu kept focus")
	}
}

func TestFocusDeliveredOnUpdate(t *testing.T) {
	v, n := newTestViewport(t)
	c := open(t, n, buttons("menu", "a", "b"), 0)
	v.Update(0)
	b := element(n, c, "b")

	v.RequestFocus(nav.FocusTarget{Element: b.ID(), Container: c.ID()})
	if v.Focus().Element == b.ID() {
		t.Fatal("focus delivered before update")
	}

	v.Update(0)
	if v.Focus().Element != b.ID() {
		t.Errorf("focus = %v, want b", v.Focus().Element)
	}
	if c.Current() != b.ID() {
		t.Errorf("current = %v, want b", c.Current())
	}
	if !v.HasFocus(nav.FocusTarget{Container: c.ID()}) {
		t.Error("HasFocus(menu) = false with focus on its element")
	}
}

func TestHasFocusNested(t *testing.T) {
	v, n := newTestViewport(t)
	var tabs nav.ContainerID
	outer := open(t, n, &nav.Class{
		Name: "options",
		Build: func(b *nav.Builder) {
			tabs = b.Child(buttons("tabs", "video"))
		},
	}, 0)
	v.Update(0)

	v.RequestFocus(nav.FocusTarget{Container: tabs})
	v.FlushFocus()

	tests := []struct {
		name   string
		target nav.ContainerID
		want   bool
	}{
		{"focused container", tabs, true},
		{"outer of focused", outer.ID(), true},
		{"null container", nav.ContainerID{}, false},
	}
	for _, tt := range tests {
		if got := v.HasFocus(nav.FocusTarget{Container: tt.target}); got != tt.want {
			t.Errorf("%s: HasFocus = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFlushFocusSkipsStale(t *testing.T) {
	v, n := newTestViewport(t)
	c := open(t, n, buttons("menu", "a"), 0)
	a := element(n, c, "a")

	n.Destroy(c.ID())
	v.Update(0)

	if v.Focus().Element == a.ID() || v.Focus().Container == c.ID() {
		t.Errorf("focus = %+v, delivered to a destroyed container", v.Focus())
	}
}

func TestFlushFocusBounded(t *testing.T) {
	v, n := newTestViewport(t)
	c := open(t, n, buttons("menu", "a", "b"), 0)
	v.Update(0)
	a, b := element(n, c, "a"), element(n, c, "b")

	// Each element hands focus to the other as soon as it is navigated to.
	a.BindAction(nav.TriggerNavigatedTo, func() nav.ElementAction {
		return nav.ActionFunc(func(*nav.Element) { b.SetFocus() })
	})
	b.BindAction(nav.TriggerNavigatedTo, func() nav.ElementAction {
		return nav.ActionFunc(func(*nav.Element) { a.SetFocus() })
	})

	b.SetFocus()
	v.Update(0)

	if len(v.pending) != 0 {
		t.Errorf("pending = %d after bounded flush, want 0", len(v.pending))
	}
}

func TestGeometryPrunedOnDestroy(t *testing.T) {
	v, n := newTestViewport(t)
	c := open(t, n, buttons("menu", "a"), 0)
	a := element(n, c, "a")
	v.SetGeometry(a.ID(), math.Rect{W: 10, H: 10})

	if _, ok := v.Geometry(a.ID()); !ok {
		t.Fatal("geometry not recorded")
	}

	n.Destroy(c.ID())
	v.Update(0)
	if _, ok := v.Geometry(a.ID()); ok {
		t.Error("geometry kept for a destroyed element")
	}
}

func TestSplitScreen(t *testing.T) {
	v := New(nil, true)
	if !v.SplitScreen() {
		t.Fatal("SplitScreen = false, want true")
	}
	v.SetSplitScreen(false)
	if v.SplitScreen() {
		t.Error("SplitScreen = true after SetSplitScreen(false)")
	}
}

func TestUpdateWithoutNavigator(t *testing.T) {
	v := New(nil, false)
	v.RequestFocus(nav.FocusTarget{})
	v.Update(0)
	if len(v.pending) != 0 {
		t.Errorf("pending = %d, want 0", len(v.pending))
	}
	if !v.HitTest(math.Vec2{}).IsZero() {
		t.Error("HitTest found an element without a navigator")
	}
}
