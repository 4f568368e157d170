package nav

// Trigger is the element event an action is bound to.
type Trigger int

const (
	TriggerClicked Trigger = iota
	TriggerPressed
	TriggerReleased
	TriggerNavigatedTo
	TriggerNavigatedFrom
)

func (t Trigger) String() string {
	switch t {
	case TriggerClicked:
		return "clicked"
	case TriggerPressed:
		return "pressed"
	case TriggerReleased:
		return "released"
	case TriggerNavigatedTo:
		return "navigated_to"
	case TriggerNavigatedFrom:
		return "navigated_from"
	default:
		return "unknown"
	}
}

// ElementAction runs against an element when its trigger fires.
type ElementAction interface {
	Execute(e *Element)
}

// ActionFunc adapts a function to ElementAction.
type ActionFunc func(e *Element)

// Execute calls f(e).
func (f ActionFunc) Execute(e *Element) { f(e) }

// ActionFactory builds a fresh action for every execution so actions can
// keep per-invocation state.
type ActionFactory func() ElementAction
