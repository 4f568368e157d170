package nav

import (
	"strings"

	"github.com/Faultbox/midgard-nav/pkg/math"
)

// SelectorPosition anchors the selector on the navigated button.
type SelectorPosition int

const (
	SelectorCenter SelectorPosition = iota
	SelectorTop
	SelectorBottom
	SelectorLeft
	SelectorRight
	SelectorTopLeft
	SelectorTopRight
	SelectorBottomLeft
	SelectorBottomRight
)

var selectorPositionNames = [...]string{
	"center", "top", "bottom", "left", "right",
	"top_left", "top_right", "bottom_left", "bottom_right",
}

func (p SelectorPosition) String() string {
	if p < 0 || int(p) >= len(selectorPositionNames) {
		return "center"
	}
	return selectorPositionNames[p]
}

// ParseSelectorPosition parses a position name such as "top_left".
func ParseSelectorPosition(s string) (SelectorPosition, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	for i, name := range selectorPositionNames {
		if name == s {
			return SelectorPosition(i), true
		}
	}
	return SelectorCenter, false
}

// anchor returns the point of r the selector sits on.
func (p SelectorPosition) anchor(r math.Rect) math.Vec2 {
	local := math.Vec2{}
	switch p {
	case SelectorCenter:
		local = math.Vec2{X: r.W / 2, Y: r.H / 2}
	case SelectorTop:
		local = math.Vec2{X: r.W / 2}
	case SelectorBottom:
		local = math.Vec2{X: r.W / 2, Y: r.H}
	case SelectorLeft:
		local = math.Vec2{Y: r.H / 2}
	case SelectorRight:
		local = math.Vec2{X: r.W, Y: r.H / 2}
	case SelectorTopLeft:
	case SelectorTopRight:
		local = math.Vec2{X: r.W}
	case SelectorBottomLeft:
		local = math.Vec2{Y: r.H}
	case SelectorBottomRight:
		local = math.Vec2{X: r.W, Y: r.H}
	}
	return r.Min().Add(local)
}

// SelectorOptions configures a container's selector cursor.
type SelectorOptions struct {
	Position SelectorPosition
	Offset   math.Vec2
	// MoveCurve animates the selector between elements. Nil snaps.
	MoveCurve Curve
	Disabled  bool
}

// Selector is the cursor drawn over the navigated element.
type Selector struct {
	opts SelectorOptions

	enabled     bool
	visible     bool
	translation math.Vec2
	scale       math.Vec2

	moving      bool
	origin      math.Vec2
	destination math.Vec2
	distance    math.Vec2
	counter     float32
	moveTime    float32
}

func newSelector(opts SelectorOptions) *Selector {
	return &Selector{
		opts:    opts,
		enabled: !opts.Disabled,
		scale:   math.Vec2{X: 1, Y: 1},
	}
}

func (s *Selector) Visible() bool { return s.visible }
func (s *Selector) Enabled() bool { return s.enabled }
func (s *Selector) Moving() bool { return s.moving }
func (s *Selector) Translation() math.Vec2 { return s.translation }
func (s *Selector) Scale() math.Vec2 { return s.scale }
func (s *Selector) Options() SelectorOptions { return s.opts }

// SetEnabled turns the selector on or off. A disabled selector skips the
// deferred setup and never moves.
func (s *Selector) SetEnabled(enabled bool) {
	s.enabled = enabled
}

func (s *Selector) reset() {
	s.visible = false
	s.translation = math.Vec2{}
	s.moving = false
}

func (s *Selector) begin(origin, destination math.Vec2) {
	s.origin = origin
	s.destination = destination
	s.distance = destination.Sub(origin)

	lo, hi := s.opts.MoveCurve.TimeRange()
	s.moveTime = hi - lo
	s.counter = 0
	s.moving = true
}

// advance steps an in-flight move and snaps once the curve has elapsed.
func (s *Selector) advance(dt float32) {
	if !s.moving || s.opts.MoveCurve == nil {
		return
	}
	s.counter += dt
	if s.counter >= s.moveTime {
		s.counter = 0
		s.moving = false
		s.translation = s.destination
		return
	}
	s.translation = s.origin.Add(s.distance.Scale(s.opts.MoveCurve.Value(s.counter)))
}
