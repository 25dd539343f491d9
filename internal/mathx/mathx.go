// Package mathx holds small generic numeric helpers shared by geom,
// colorspace and the animation engine.
package mathx

import "golang.org/x/exp/constraints"

// Lerp blends a toward b. The (1-t)a + tb form returns b exactly at t == 1.
func Lerp[T constraints.Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval.
func Clamp01[T constraints.Float](v T) T {
	return Clamp(v, 0, 1)
}

// InRange reports whether v lies in [lo, hi].
func InRange[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
