package menus

import "github.com/Faultbox/midgard-nav/pkg/math"

// Button metrics in pixels.
const (
	buttonWidth  float32 = 240
	buttonHeight float32 = 36
	buttonGap    float32 = 10
	sectionGap   float32 = 30
)

// column stacks n buttons downwards from the top-left corner x, y.
func column(x, y float32, n int) []math.Rect {
	rects := make([]math.Rect, n)
	for i := range rects {
		rects[i] = math.Rect{X: x, Y: y + float32(i)*(buttonHeight+buttonGap), W: buttonWidth, H: buttonHeight}
	}
	return rects
}

// row lines n buttons up rightwards from the top-left corner x, y.
func row(x, y float32, n int) []math.Rect {
	rects := make([]math.Rect, n)
	for i := range rects {
		rects[i] = math.Rect{X: x + float32(i)*(buttonWidth+buttonGap), Y: y, W: buttonWidth, H: buttonHeight}
	}
	return rects
}

func columnHeight(n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*buttonHeight + float32(n-1)*buttonGap
}

func rowWidth(n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*buttonWidth + float32(n-1)*buttonGap
}
