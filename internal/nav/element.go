package nav

import "go.uber.org/zap"

// ElementOptions describes an element registered through Builder.Element.
type ElementOptions struct {
	Name string
	Text string

	DefaultTextColor   Color
	NavigatedTextColor Color
	UseTextColor       bool

	// Styles holds the Normal, Hovered and Pressed brushes.
	Styles [3]Color

	Disabled         bool
	Visibility       Visibility
	ButtonVisibility Visibility

	Animation *Animation
	Actions   map[Trigger][]ActionFactory
}

// Element wraps one interactive button and its optional label.
type Element struct {
	nav   *Navigator
	id    ElementID
	owner ContainerID
	name  string

	text               string
	defaultTextColor   Color
	navigatedTextColor Color
	textColor          Color
	useTextColor       bool

	visibility       Visibility
	buttonVisibility Visibility
	enabled          bool
	buttonEnabled    bool

	// Live pointer state reported by the host.
	hovered bool
	pressed bool

	slots       [3]Color
	forced      Style
	swappedFrom Style

	animation    *Animation
	useAnimation bool

	actions map[Trigger][]ActionFactory
}

func newElement(n *Navigator, owner ContainerID, opts ElementOptions) *Element {
	e := &Element{
		nav:                n,
		owner:              owner,
		name:               opts.Name,
		text:               opts.Text,
		defaultTextColor:   opts.DefaultTextColor,
		navigatedTextColor: opts.NavigatedTextColor,
		textColor:          opts.DefaultTextColor,
		useTextColor:       opts.UseTextColor,
		visibility:         opts.Visibility,
		buttonVisibility:   opts.ButtonVisibility,
		enabled:            !opts.Disabled,
		buttonEnabled:      !opts.Disabled,
		slots:              opts.Styles,
		forced:             styleNone,
		swappedFrom:        styleNone,
		animation:          opts.Animation,
		useAnimation:       opts.Animation != nil,
		actions:            make(map[Trigger][]ActionFactory, len(opts.Actions)),
	}
	for trigger, factories := range opts.Actions {
		e.actions[trigger] = append([]ActionFactory(nil), factories...)
	}
	return e
}

func (e *Element) ID() ElementID { return e.id }
func (e *Element) Owner() ContainerID { return e.owner }
func (e *Element) Name() string { return e.name }
func (e *Element) Text() string { return e.text }
func (e *Element) TextColor() Color { return e.textColor }
func (e *Element) IsHovered() bool { return e.hovered }
func (e *Element) IsPressed() bool { return e.pressed }
func (e *Element) Animation() *Animation { return e.animation }

// SetText replaces the label text.
func (e *Element) SetText(text string) {
	e.text = text
}

// SetEnabled enables or disables both the element and its button.
func (e *Element) SetEnabled(enabled bool) {
	e.enabled = enabled
	e.buttonEnabled = enabled
}

// IsEnabled reports whether both the element and its button are enabled.
func (e *Element) IsEnabled() bool {
	return e.enabled && e.buttonEnabled
}

// SetVisibility sets the element visibility.
func (e *Element) SetVisibility(v Visibility) {
	e.visibility = v
}

// SetButtonVisibility sets the visibility of the underlying button.
func (e *Element) SetButtonVisibility(v Visibility) {
	e.buttonVisibility = v
}

// IsVisible reports whether the element is drawn at all.
func (e *Element) IsVisible() bool {
	return e.visibility.navigable() && e.buttonVisibility.navigable()
}

// SetUseAnimation toggles the navigation animation.
func (e *Element) SetUseAnimation(use bool) {
	e.useAnimation = use
}

func (e *Element) animated() bool {
	return e.animation != nil && e.useAnimation
}

// CanBeNavigated reports whether the element may hold navigation.
func (e *Element) CanBeNavigated() bool {
	if !e.IsVisible() {
		return false
	}
	return e.IsEnabled() || e.nav.settings.IgnoreDisabled
}

// SetFocus asks the host to focus this element. The owning container
// updates once the host reports the focus change.
func (e *Element) SetFocus() {
	if !e.CanBeNavigated() {
		return
	}
	e.nav.host.RequestFocus(FocusTarget{Element: e.id, Container: e.owner})
}

// organicStyle is the style the button would show from pointer state alone.
func (e *Element) organicStyle() Style {
	switch {
	case e.pressed:
		return StylePressed
	case e.hovered:
		return StyleHovered
	default:
		return StyleNormal
	}
}

// SwitchStyle swaps style into the slot the button currently shows. The
// swap is recorded as forced until RevertStyle undoes it. Only one swap is
// held at a time: without revertExisting, a switch over an existing swap is
// ignored.
func (e *Element) SwitchStyle(style Style, revertExisting bool) {
	if style < StyleNormal || style > StylePressed {
		return
	}
	if e.forced != styleNone && (style == e.forced || !revertExisting) {
		return
	}

	organic := e.organicStyle()

	if revertExisting {
		e.RevertStyle()
	}

	if organic == style {
		return
	}

	e.slots[organic], e.slots[style] = e.slots[style], e.slots[organic]
	e.forced = style
	e.swappedFrom = organic
}

// RevertStyle undoes the last forced swap.
func (e *Element) RevertStyle() {
	if e.forced == styleNone {
		return
	}
	e.slots[e.swappedFrom], e.slots[e.forced] = e.slots[e.forced], e.slots[e.swappedFrom]
	e.forced = styleNone
	e.swappedFrom = styleNone
}

// ForcedStyle returns the forced style, if any.
func (e *Element) ForcedStyle() (Style, bool) {
	return e.forced, e.forced != styleNone
}

// VisualStyle returns the style the element appears to be in.
func (e *Element) VisualStyle() Style {
	if e.forced != styleNone {
		return e.forced
	}
	return e.organicStyle()
}

// Brush returns the brush currently held in a style slot.
func (e *Element) Brush(style Style) Color {
	if style < StyleNormal || style > StylePressed {
		return Color{}
	}
	return e.slots[style]
}

// DisplayColor returns the brush the button draws right now.
func (e *Element) DisplayColor() Color {
	return e.slots[e.organicStyle()]
}

// SwitchTextColorToDefault restores the default text color.
func (e *Element) SwitchTextColorToDefault() {
	if !e.useTextColor {
		return
	}
	e.textColor = e.defaultTextColor
}

// SwitchTextColorToNavigated applies the navigated text color.
func (e *Element) SwitchTextColorToNavigated() {
	if !e.useTextColor {
		return
	}
	e.textColor = e.navigatedTextColor
}

// BindAction appends an action factory for trigger.
func (e *Element) BindAction(trigger Trigger, factory ActionFactory) {
	if factory == nil {
		return
	}
	e.actions[trigger] = append(e.actions[trigger], factory)
}

// ExecuteActions runs a fresh instance of every action bound to trigger.
func (e *Element) ExecuteActions(trigger Trigger) {
	for _, factory := range e.actions[trigger] {
		action := factory()
		if action == nil {
			continue
		}
		action.Execute(e)
	}
}

// Remove releases the element. The owning container drops it as current
// and first element.
func (e *Element) Remove() {
	n := e.nav
	if n.Element(e.id) == nil {
		return
	}
	if c := n.Container(e.owner); c != nil {
		c.removedElement(e)
	}
	n.log.Debug("element removed", zap.Stringer("element", e.id))
	n.elements.remove(e.id.index, e.id.gen)
}
