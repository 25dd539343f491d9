package kinema

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/kinema/internal/mathx"
)

// RateFunc maps linear progress to eased progress. Animations pass raw
// sub-progress values that can fall outside [0, 1] while a member is waiting
// for its turn or has already finished; the built-in rate functions clamp
// their input first, so they saturate at 0 and 1.
type RateFunc func(t float64) float64

// Smooth is smoothstep, 3t² - 2t³. It is the default rate function.
func Smooth(t float64) float64 {
	t = mathx.Clamp01(t)
	return t * t * (3 - 2*t)
}

// Linear returns t clamped to [0, 1].
func Linear(t float64) float64 {
	return mathx.Clamp01(t)
}

// RushInto accelerates from rest and arrives at full speed.
func RushInto(t float64) float64 {
	return 2 * Smooth(mathx.Clamp01(t)/2)
}

// RushFrom leaves at full speed and decelerates to rest.
func RushFrom(t float64) float64 {
	return 2*Smooth(mathx.Clamp01(t)/2+0.5) - 1
}

// ThereAndBack runs Smooth forward over the first half and backward over
// the second, ending where it started.
func ThereAndBack(t float64) float64 {
	t = mathx.Clamp01(t)
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 * (1 - t))
}

// Reversed returns a rate function running fn backwards in time.
func Reversed(fn RateFunc) RateFunc {
	return func(t float64) float64 { return fn(1 - t) }
}

// FromEase adapts a gween easing function (for example ease.OutBounce) to a
// RateFunc over the unit interval.
func FromEase(fn ease.TweenFunc) RateFunc {
	return func(t float64) float64 {
		t = mathx.Clamp01(t)
		if t == 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// rateNames are the names accepted in configuration and scripts.
var rateNames = map[string]RateFunc{
	"smooth":         Smooth,
	"linear":         Linear,
	"rush_into":      RushInto,
	"rush_from":      RushFrom,
	"there_and_back": ThereAndBack,
	"in_quad":        FromEase(ease.InQuad),
	"out_quad":       FromEase(ease.OutQuad),
	"in_out_quad":    FromEase(ease.InOutQuad),
	"in_out_cubic":   FromEase(ease.InOutCubic),
	"out_bounce":     FromEase(ease.OutBounce),
	"out_elastic":    FromEase(ease.OutElastic),
	"in_out_sine":    FromEase(ease.InOutSine),
}

// ParseRate looks up a rate function by name, e.g. "smooth" or
// "out_bounce".
func ParseRate(name string) (RateFunc, error) {
	fn, ok := rateNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown rate function %q", ErrValue, name)
	}
	return fn, nil
}
