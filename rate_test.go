package kinema

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestRateEndpoints(t *testing.T) {
	for name, fn := range rateNames {
		if name == "there_and_back" {
			continue
		}
		if got := fn(0); math.Abs(got) > 1e-6 {
			t.Errorf("%s(0) = %f, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-6 {
			t.Errorf("%s(1) = %f, want 1", name, got)
		}
	}
}

func TestRatesSaturate(t *testing.T) {
	for _, fn := range []RateFunc{Smooth, Linear, RushInto, RushFrom} {
		if got := fn(-0.5); got != fn(0) {
			t.Errorf("fn(-0.5) = %f, want %f", got, fn(0))
		}
		if got := fn(1.5); got != fn(1) {
			t.Errorf("fn(1.5) = %f, want %f", got, fn(1))
		}
	}
}

func TestSmoothMidpoint(t *testing.T) {
	assertNear(t, "Smooth(0.5)", Smooth(0.5), 0.5)
	assertNear(t, "Smooth(0.25)", Smooth(0.25), 0.15625)
}

func TestRushIntoAndFrom(t *testing.T) {
	if RushInto(0.25) >= 0.25 {
		t.Errorf("RushInto(0.25) = %f, want below linear", RushInto(0.25))
	}
	if RushFrom(0.25) <= 0.25 {
		t.Errorf("RushFrom(0.25) = %f, want above linear", RushFrom(0.25))
	}
	assertNear(t, "RushInto(0.5)+RushFrom(0.5)", RushInto(0.5)+RushFrom(0.5), 1)
}

func TestThereAndBack(t *testing.T) {
	assertNear(t, "ThereAndBack(0)", ThereAndBack(0), 0)
	assertNear(t, "ThereAndBack(0.5)", ThereAndBack(0.5), 1)
	assertNear(t, "ThereAndBack(1)", ThereAndBack(1), 0)
}

func TestReversed(t *testing.T) {
	r := Reversed(Linear)
	assertNear(t, "Reversed(0)", r(0), 1)
	assertNear(t, "Reversed(0.25)", r(0.25), 0.75)
}

func TestFromEase(t *testing.T) {
	fn := FromEase(ease.InQuad)
	if got := fn(0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("InQuad(0.5) = %f, want 0.25", got)
	}
	if fn(1) != 1 {
		t.Errorf("InQuad(1) = %f, want exactly 1", fn(1))
	}
}

func TestParseRate(t *testing.T) {
	fn, err := ParseRate(" Linear ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, "linear(0.4)", fn(0.4), 0.4)

	if _, err := ParseRate("wobble"); !errors.Is(err, ErrValue) {
		t.Errorf("err = %v, want ErrValue", err)
	}
}
