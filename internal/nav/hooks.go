package nav

// Hooks are the per-container override points. Embed NopHooks to implement
// only the ones you need.
type Hooks interface {
	OnNavigate(from, to *Element)
	OnSelect(e *Element)
	OnStartSelect(e *Element)
	OnStopSelect(e *Element)

	OnGainedNavigation(prev *Container, fromChild bool)
	OnLostNavigation(next *Container, toChild bool)

	// OnReturn, OnNext and OnPrevious report whether they handled the input.
	// An unhandled return falls back to ReturnToParent when
	// Settings.RemoveWidgetOnReturn is set.
	OnReturn() bool
	OnNext() bool
	OnPrevious() bool

	OnInputTypeChanged(from, to InputType)
	PreSetup(firstSetup bool)
	OnSetupCompleted()

	OnHorizontalStepLeft(e *Element)
	OnHorizontalStepRight(e *Element)
	OnHorizontalStepUpdated(e *Element)

	// InitialFocusElement overrides the element focused on first setup.
	// Returning false falls back to the container's first element.
	InitialFocusElement() (ElementID, bool)
}

// NopHooks implements Hooks with no-op defaults.
type NopHooks struct{}

func (NopHooks) OnNavigate(from, to *Element) {}
func (NopHooks) OnSelect(e *Element) {}
func (NopHooks) OnStartSelect(e *Element) {}
func (NopHooks) OnStopSelect(e *Element) {}
func (NopHooks) OnGainedNavigation(prev *Container, fromChild bool) {}
func (NopHooks) OnLostNavigation(next *Container, toChild bool) {}
func (NopHooks) OnReturn() bool { return false }
func (NopHooks) OnNext() bool { return false }
func (NopHooks) OnPrevious() bool { return false }
func (NopHooks) OnInputTypeChanged(from, to InputType) {}
func (NopHooks) PreSetup(firstSetup bool) {}
func (NopHooks) OnSetupCompleted() {}
func (NopHooks) OnHorizontalStepLeft(e *Element) {}
func (NopHooks) OnHorizontalStepRight(e *Element) {}
func (NopHooks) OnHorizontalStepUpdated(e *Element) {}
func (NopHooks) InitialFocusElement() (ElementID, bool) { return ElementID{}, false }
