package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Lerp(t *testing.T) {
	tests := []struct {
		name string
		t    float32
		want Vec2
	}{
		{"start", 0, Vec2{10, 20}},
		{"half", 0.5, Vec2{20, 40}},
		{"end", 1, Vec2{30, 60}},
		{"overshoot", 1.5, Vec2{40, 80}},
	}

	from := Vec2{10, 20}
	to := Vec2{30, 60}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := from.Lerp(to, tt.t)
			if got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}

	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{10, 10}, true},
		{Vec2{109, 59}, true},
		{Vec2{110, 30}, false},
		{Vec2{50, 60}, false},
		{Vec2{9, 30}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 0, Y: 100, W: 40, H: 20}
	if got, want := r.Center(), (Vec2{20, 110}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}
