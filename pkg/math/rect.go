package math

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the middle point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{r.W, r.H}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}
