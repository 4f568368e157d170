package nav

// Direction is a resolved navigation direction.
type Direction int

const (
	DirectionInvalid Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionNext
	DirectionPrevious
)

var directionNames = [...]string{"invalid", "up", "down", "left", "right", "next", "previous"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Action is a resolved accept/back action.
type Action int

const (
	ActionInvalid Action = iota
	ActionAccept
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionBack:
		return "back"
	default:
		return "invalid"
	}
}

// InputType is the kind of device currently driving the UI.
type InputType int

const (
	InputKeyboard InputType = iota
	InputMouse
	InputGamepad
)

func (t InputType) String() string {
	switch t {
	case InputMouse:
		return "mouse"
	case InputGamepad:
		return "gamepad"
	default:
		return "keyboard"
	}
}

// Style is a button visual style slot.
type Style int8

const (
	StyleNormal Style = iota
	StyleHovered
	StylePressed

	styleNone Style = -1
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleHovered:
		return "hovered"
	case StylePressed:
		return "pressed"
	default:
		return "none"
	}
}

// Visibility mirrors the host widget visibility states.
type Visibility int

const (
	Visible Visibility = iota
	Collapsed
	Hidden
	HitTestInvisible
	SelfHitTestInvisible
)

// navigable reports whether the visibility state can hold navigation.
func (v Visibility) navigable() bool {
	return v == Visible || v == HitTestInvisible || v == SelfHitTestInvisible
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)
