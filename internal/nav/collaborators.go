package nav

import "github.com/Faultbox/midgard-nav/pkg/math"

// Dispatcher is the player-level navigation input component. It tracks the
// active sub-widget, gates input and resolves directional moves.
type Dispatcher interface {
	IsListeningForRebind() bool
	CancelRebind()

	// NotifyNavigatedTo marks c as the active sub-widget. Implementations
	// transfer navigation with Navigator.TransferNavigation when the active
	// container changes.
	NotifyNavigatedTo(c ContainerID)
	ActiveSubWidget() ContainerID
	// ClearActiveWidget forgets the active container, e.g. when the root
	// widget removes itself.
	ClearActiveWidget()

	AllowsSelectInput() bool
	AllowsSectionInput() bool
	AllowsDirection(d Direction) bool
	// TryNavigateInDirection moves navigation away from the source
	// container's current element. It reports whether a move happened.
	TryNavigateInDirection(d Direction, source ContainerID) bool

	SetIgnoreFocusByNavigation(ignore bool)
	IgnoreFocusByNavigation() bool
}

// FocusTarget names what should receive host input focus: an element, or
// a container when Element is null.
type FocusTarget struct {
	Element   ElementID
	Container ContainerID
}

// Host is the widget runtime the navigation layer sits on. Focus requests
// are delivered back asynchronously through Navigator.OnElementFocused and
// Navigator.OnContainerFocused.
type Host interface {
	// AddToDisplay shows c. Hosts call Navigator.Construct for c once it is
	// displayed.
	AddToDisplay(c ContainerID, zOrder int, playerScreen bool)
	RemoveFromDisplay(c ContainerID)
	IsDisplayed(c ContainerID) bool

	RequestFocus(target FocusTarget)
	// HasFocus reports whether focus is on target or inside it.
	HasFocus(target FocusTarget) bool

	// Geometry returns the on-screen rectangle of the element's button.
	Geometry(e ElementID) (math.Rect, bool)
	SplitScreen() bool
}
