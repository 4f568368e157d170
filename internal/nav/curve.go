package nav

import "sort"

// Curve maps elapsed time to a movement fraction.
type Curve interface {
	Value(t float32) float32
	TimeRange() (min, max float32)
}

// CurveKey is one keyframe of a KeyCurve.
type CurveKey struct {
	Time  float32
	Value float32
}

// KeyCurve interpolates linearly between keys. Times outside the key range
// clamp to the first or last value.
type KeyCurve struct {
	Keys []CurveKey
}

// NewKeyCurve returns a curve over the given keys sorted by time.
func NewKeyCurve(keys ...CurveKey) KeyCurve {
	sorted := append([]CurveKey(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return KeyCurve{Keys: sorted}
}

// LinearCurve goes from 0 to 1 over duration seconds.
func LinearCurve(duration float32) KeyCurve {
	return KeyCurve{Keys: []CurveKey{{0, 0}, {duration, 1}}}
}

// Value evaluates the curve at t.
func (c KeyCurve) Value(t float32) float32 {
	n := len(c.Keys)
	switch {
	case n == 0:
		return 0
	case t <= c.Keys[0].Time:
		return c.Keys[0].Value
	case t >= c.Keys[n-1].Time:
		return c.Keys[n-1].Value
	}

	i := sort.Search(n, func(i int) bool { return c.Keys[i].Time > t })
	a, b := c.Keys[i-1], c.Keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return a.Value + (b.Value-a.Value)*(t-a.Time)/span
}

// TimeRange returns the first and last key times.
func (c KeyCurve) TimeRange() (min, max float32) {
	if len(c.Keys) == 0 {
		return 0, 0
	}
	return c.Keys[0].Time, c.Keys[len(c.Keys)-1].Time
}
