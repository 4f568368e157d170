package nav

import "testing"

// stackFixture opens a "main" menu and focuses m2 so restores can be
// checked against a non-initial element.
func stackFixture(t *testing.T) (*fixture, *Container) {
	t.Helper()
	f := newFixture(t, DefaultSettings())
	main := f.open(f.class("main", ContainerOptions{}, nil, "m1", "m2"))
	f.focus(f.elem(main, "m2"))
	return f, main
}

func TestPushAndReturnKeepsParent(t *testing.T) {
	f, main := stackFixture(t)
	m2 := f.elem(main, "m2")

	sub, err := main.PushWidget(f.class("sub", ContainerOptions{}, nil, "s1"), false, false, 1)
	if err != nil {
		t.Fatalf("PushWidget: %v", err)
	}
	f.host.flush()

	if !f.host.displayed[main.ID()] || !f.host.displayed[sub.ID()] {
		t.Fatalf("displayed = %v, want both containers", f.host.displayed)
	}
	if sub.Parent() != main.ID() {
		t.Errorf("sub parent = %v, want %v", sub.Parent(), main.ID())
	}
	if f.disp.active != sub.ID() {
		t.Errorf("active = %v, want sub", f.disp.active)
	}
	if main.HasNavigation() {
		t.Error("parent kept navigation after push")
	}
	if main.Current() != m2.ID() {
		t.Errorf("parent current = %v, want m2", main.Current())
	}
	if sub.Current() != f.elem(sub, "s1").ID() {
		t.Errorf("sub current = %v, want s1", sub.Current())
	}

	subID := sub.ID()
	sub.ReturnToParent(false, 0)
	f.host.flush()

	if f.n.Container(subID) != nil {
		t.Error("popped container still alive")
	}
	if f.host.displayed[subID] {
		t.Error("popped container still displayed")
	}
	if f.disp.active != main.ID() {
		t.Errorf("active = %v, want main", f.disp.active)
	}
	if !main.HasNavigation() {
		t.Error("parent did not regain navigation")
	}
	if main.Current() != m2.ID() {
		t.Errorf("parent current = %v, want m2 restored", main.Current())
	}
	if !main.CompletedSetup() {
		t.Error("parent setup not rerun")
	}
}

func TestUnhoverDuringPushKeepsChildActive(t *testing.T) {
	f, main := stackFixture(t)
	m2 := f.elem(main, "m2")

	f.n.OnElementHovered(m2.ID())
	f.host.flush()
	if main.Hovered() != m2.ID() {
		t.Fatalf("hovered = %v, want m2", main.Hovered())
	}

	sub, err := main.PushWidget(f.class("sub", ContainerOptions{}, nil, "s1"), false, false, 1)
	if err != nil {
		t.Fatalf("PushWidget: %v", err)
	}
	f.host.flush()
	if f.disp.active != sub.ID() {
		t.Fatalf("active = %v, want sub", f.disp.active)
	}

	// The pointer leaves m2 as the pushed container covers it.
	f.n.OnElementUnhovered(m2.ID())
	f.host.flush()

	if f.disp.active != sub.ID() {
		t.Errorf("active = %v, want sub kept", f.disp.active)
	}
	if sub.Current() != f.elem(sub, "s1").ID() {
		t.Errorf("sub current = %v, want s1", sub.Current())
	}
	if main.HasNavigation() {
		t.Error("parent regained navigation from the unhover")
	}
}

func TestPushRemovingParent(t *testing.T) {
	f, main := stackFixture(t)

	sub, err := main.PushWidget(f.class("sub", ContainerOptions{}, nil, "s1"), true, false, 1)
	if err != nil {
		t.Fatalf("PushWidget: %v", err)
	}
	f.host.flush()

	if f.host.displayed[main.ID()] {
		t.Error("parent still displayed after removing push")
	}
	if f.n.Container(main.ID()) == nil {
		t.Fatal("parent destroyed without destroyParent")
	}
	if !main.IsBeingRemoved() {
		t.Error("parent not marked as removed")
	}

	h := f.hooks[main.ID()]
	h.reset()
	sub.ReturnToParent(false, 0)
	f.host.flush()

	if !f.host.displayed[main.ID()] {
		t.Fatal("parent not displayed again")
	}
	if main.IsBeingRemoved() {
		t.Error("restored parent still marked as removed")
	}
	if got := h.count("presetup first=false"); got != 1 {
		t.Errorf("parent presetup = %v, want one non-first construct", h.events)
	}
	if f.disp.active != main.ID() {
		t.Errorf("active = %v, want main", f.disp.active)
	}
	if main.Current() != f.elem(main, "m2").ID() {
		t.Errorf("parent current = %v, want m2", main.Current())
	}
}

func TestPushDestroyingParent(t *testing.T) {
	f, main := stackFixture(t)
	mainID := main.ID()

	sub, err := main.PushWidget(f.class("sub", ContainerOptions{}, nil, "s1"), true, true, 1)
	if err != nil {
		t.Fatalf("PushWidget: %v", err)
	}
	f.host.flush()

	if f.n.Container(mainID) != nil {
		t.Fatal("parent survived destroying push")
	}

	sub.ReturnToParent(false, 0)
	f.host.flush()

	if containers, elements := f.n.Len(); containers != 0 || elements != 0 {
		t.Errorf("Len = %d, %d after popping the last container", containers, elements)
	}
	if len(f.host.displayed) != 0 {
		t.Errorf("displayed = %v, want none", f.host.displayed)
	}
}

func TestPushRejectsMissingClass(t *testing.T) {
	f, main := stackFixture(t)
	before, _ := f.n.Len()

	tests := []struct {
		name string
		push func() (*Container, error)
	}{
		{"widget", func() (*Container, error) {
			return main.PushWidget(nil, false, false, 0)
		}},
		{"prompt class", func() (*Container, error) {
			return main.PushPromptWidget(nil, func(bool) {}, "t", "m", false, 0)
		}},
		{"prompt callback", func() (*Container, error) {
			return main.PushPromptWidget(f.class("prompt", ContainerOptions{}, nil, "yes"), nil, "t", "m", false, 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.push()
			if !IsConfigError(err) {
				t.Errorf("err = %v, want a config error", err)
			}
			if c != nil {
				t.Errorf("container = %v, want nil", c.ID())
			}
			if got, _ := f.n.Len(); got != before {
				t.Errorf("containers = %d, want %d", got, before)
			}
		})
	}
}

func TestPromptDecide(t *testing.T) {
	f, main := stackFixture(t)

	var calls int
	var answer bool
	prompt, err := main.PushPromptWidget(f.class("quit", ContainerOptions{}, nil, "yes", "no"),
		func(accepted bool) {
			calls++
			answer = accepted
		}, "Quit?", "Unsaved changes will be lost.", false, 5)
	if err != nil {
		t.Fatalf("PushPromptWidget: %v", err)
	}
	f.host.flush()

	if !prompt.IsPrompt() {
		t.Error("IsPrompt = false")
	}
	if prompt.Title() != "Quit?" || prompt.Message() != "Unsaved changes will be lost." {
		t.Errorf("title, message = %q, %q", prompt.Title(), prompt.Message())
	}
	if f.disp.active != prompt.ID() {
		t.Errorf("active = %v, want prompt", f.disp.active)
	}

	prompt.Decide(true)
	f.host.flush()

	if calls != 1 || !answer {
		t.Errorf("callback calls = %d, answer = %v", calls, answer)
	}
	if f.n.Container(prompt.ID()) != nil {
		t.Error("prompt alive after decision")
	}
	if f.disp.active != main.ID() {
		t.Errorf("active = %v, want main", f.disp.active)
	}

	prompt.Decide(false)
	if calls != 1 {
		t.Errorf("decided twice: calls = %d", calls)
	}
}

func TestPushSameOutermostIsNoop(t *testing.T) {
	f := newFixture(t, DefaultSettings())
	var childID ContainerID
	root := f.open(f.class("root", ContainerOptions{}, func(b *Builder) {
		childID = b.Child(f.class("tab", ContainerOptions{}, nil, "t1"))
	}, "r1"))
	child := f.n.Container(childID)

	got := root.PushBuiltWidget(child, true, true, 0)

	if got != child {
		t.Errorf("PushBuiltWidget returned %v, want the nested container", got)
	}
	if len(f.host.added) != 1 {
		t.Errorf("added = %v, want only the root", f.host.added)
	}
	if !f.host.displayed[root.ID()] {
		t.Error("root removed by a no-op push")
	}
	if child.Parent() != root.ID() {
		t.Errorf("nested parent = %v, want its outer", child.Parent())
	}
}

func TestReturnFromRoot(t *testing.T) {
	tests := []struct {
		name     string
		opts     ContainerOptions
		removed  bool
		clearing int
	}{
		{"removable", ContainerOptions{}, true, 1},
		{"disallowed", ContainerOptions{DisallowRemoveIfRoot: true}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, DefaultSettings())
			root := f.open(f.class("root", tt.opts, nil, "r1"))

			root.ReturnToParent(false, 0)

			if got := !f.host.displayed[root.ID()]; got != tt.removed {
				t.Errorf("removed = %v, want %v", got, tt.removed)
			}
			if f.disp.cleared != tt.clearing {
				t.Errorf("ClearActiveWidget calls = %d, want %d", f.disp.cleared, tt.clearing)
			}
			if f.n.Container(root.ID()) == nil {
				t.Error("root destroyed by removal")
			}
		})
	}
}

func TestReturnRemovingAllParents(t *testing.T) {
	f, main := stackFixture(t)

	a, err := main.PushWidget(f.class("a", ContainerOptions{}, nil, "a1"), false, false, 1)
	if err != nil {
		t.Fatalf("push a: %v", err)
	}
	f.host.flush()
	b, err := a.PushWidget(f.class("b", ContainerOptions{}, nil, "b1"), false, false, 2)
	if err != nil {
		t.Fatalf("push b: %v", err)
	}
	f.host.flush()

	if b.Parent() != a.ID() || a.Parent() != main.ID() {
		t.Fatalf("parents = %v, %v", b.Parent(), a.Parent())
	}

	b.ReturnToParent(true, 0)
	f.host.flush()

	if containers, _ := f.n.Len(); containers != 0 {
		t.Errorf("containers = %d, want the whole chain destroyed", containers)
	}
	if len(f.host.displayed) != 0 {
		t.Errorf("displayed = %v, want none", f.host.displayed)
	}
	if f.disp.cleared != 1 {
		t.Errorf("ClearActiveWidget calls = %d, want 1", f.disp.cleared)
	}
}

func TestRemoveFromDisplayReturnsToParent(t *testing.T) {
	f, main := stackFixture(t)
	sub, err := main.PushWidget(f.class("sub", ContainerOptions{}, nil, "s1"), false, false, 1)
	if err != nil {
		t.Fatalf("PushWidget: %v", err)
	}
	f.host.flush()

	subID := sub.ID()
	sub.RemoveFromDisplay()
	f.host.flush()

	if f.n.Container(subID) != nil {
		t.Error("removed container not popped")
	}
	if f.disp.active != main.ID() {
		t.Errorf("active = %v, want main", f.disp.active)
	}
	if !main.HasNavigation() {
		t.Error("parent did not regain navigation")
	}
}

func TestRemoveFromDisplayPinnedRoot(t *testing.T) {
	f := newFixture(t, DefaultSettings())
	root := f.open(f.class("root", ContainerOptions{DisallowRemoveIfRoot: true}, nil, "r1"))

	root.RemoveFromDisplay()

	if f.host.displayed[root.ID()] {
		t.Error("root still displayed")
	}
	if !root.IsBeingRemoved() {
		t.Error("IsBeingRemoved = false")
	}
	if f.disp.cleared != 0 {
		t.Errorf("ClearActiveWidget calls = %d, want 0", f.disp.cleared)
	}
}

func TestPushPlayerScreen(t *testing.T) {
	tests := []struct {
		name       string
		split      bool
		parentOpts ContainerOptions
		nextOpts   ContainerOptions
		want       bool
	}{
		{"single screen", false, ContainerOptions{}, ContainerOptions{}, false},
		{"split screen", true, ContainerOptions{}, ContainerOptions{}, true},
		{"fullscreen when split", true, ContainerOptions{}, ContainerOptions{FullscreenWhenSplitScreen: true}, false},
		{"forced by parent", false, ContainerOptions{ForcePlayerScreen: true}, ContainerOptions{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, DefaultSettings())
			f.host.split = tt.split
			main := f.open(f.class("main", tt.parentOpts, nil, "m1"))

			next, err := main.PushWidget(f.class("next", tt.nextOpts, nil, "n1"), false, false, 1)
			if err != nil {
				t.Fatalf("PushWidget: %v", err)
			}
			if got := f.host.screens[next.ID()]; got != tt.want {
				t.Errorf("player screen = %v, want %v", got, tt.want)
			}
		})
	}
}
