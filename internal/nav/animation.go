package nav

// Animation is a normalized timeline played forward or in reverse when an
// element gains or loses navigation.
type Animation struct {
	Duration float32 // seconds

	progress  float32
	direction int8 // +1 forward, -1 reverse, 0 stopped
}

// NewAnimation returns a stopped animation of the given length.
func NewAnimation(duration float32) *Animation {
	return &Animation{Duration: duration}
}

// PlayForward plays from the start.
func (a *Animation) PlayForward() {
	a.progress = 0
	a.direction = 1
	a.finishIfInstant()
}

// PlayReverse plays from the end back to the start.
func (a *Animation) PlayReverse() {
	a.progress = 1
	a.direction = -1
	a.finishIfInstant()
}

// Reverse flips the direction of a playing animation in place.
func (a *Animation) Reverse() {
	a.direction = -a.direction
}

// IsPlaying reports whether the animation is mid-play.
func (a *Animation) IsPlaying() bool {
	return a.direction != 0
}

// Forward reports whether the animation is playing forward.
func (a *Animation) Forward() bool {
	return a.direction > 0
}

// Progress returns the normalized position in [0, 1].
func (a *Animation) Progress() float32 {
	return a.progress
}

// Advance moves the animation by dt seconds.
func (a *Animation) Advance(dt float32) {
	if a.direction == 0 {
		return
	}
	if a.Duration <= 0 {
		a.finishIfInstant()
		return
	}
	a.progress += float32(a.direction) * dt / a.Duration
	switch {
	case a.progress >= 1:
		a.progress = 1
		a.direction = 0
	case a.progress <= 0:
		a.progress = 0
		a.direction = 0
	}
}

func (a *Animation) finishIfInstant() {
	if a.Duration > 0 {
		return
	}
	if a.direction > 0 {
		a.progress = 1
	} else {
		a.progress = 0
	}
	a.direction = 0
}
