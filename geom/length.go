package geom

import (
	"fmt"

	"github.com/phanxgames/kinema/internal/diag"
	"github.com/phanxgames/kinema/internal/mathx"
)

// DefaultArcSamples is the polyline resolution used for proportional lookups
// when no Sampler is configured.
const DefaultArcSamples = 16

// Sampler performs the arc-length based operations of a Path with a fixed
// polyline resolution. The zero value uses DefaultArcSamples.
type Sampler struct {
	Samples int
}

func (s Sampler) samples() int {
	if s.Samples < 2 {
		return DefaultArcSamples
	}
	return s.Samples
}

// ArcLength approximates the length of the i-th curve by summing the
// distances between samples evenly spaced parameter values, endpoints
// included. More samples never produce a shorter result.
func (p *Path) ArcLength(i, samples int) (float64, error) {
	if samples < 2 {
		return 0, fmt.Errorf("%w: arc length needs at least 2 samples, got %d", ErrRange, samples)
	}
	c, err := p.Curve(i)
	if err != nil {
		return 0, err
	}
	return c.PolylineLength(samples), nil
}

// CurveLengths returns the approximate length of every curve.
func (s Sampler) CurveLengths(p *Path) []float64 {
	curves := p.curveList()
	out := make([]float64, len(curves))
	n := s.samples()
	for i, c := range curves {
		out[i] = c.PolylineLength(n)
	}
	return out
}

// Length returns the summed approximate length of all curves.
func (s Sampler) Length(p *Path) float64 {
	total := 0.0
	for _, l := range s.CurveLengths(p) {
		total += l
	}
	return total
}

// locate maps a global proportion to a curve index and a local parameter.
// It returns ok=false for a path without curves.
func (s Sampler) locate(p *Path, alpha float64) (idx int, t float64, ok bool) {
	curves := p.curveList()
	n := len(curves)
	if n == 0 {
		return 0, 0, false
	}
	if alpha >= 1 {
		return n - 1, 1, true
	}
	if alpha <= 0 {
		return 0, 0, true
	}
	lengths := s.CurveLengths(p)
	total := 0.0
	for _, l := range lengths {
		total += l
	}
	if total == 0 {
		// Every curve is degenerate: spread the proportion by curve count.
		scaled := alpha * float64(n)
		idx = min(int(scaled), n-1)
		return idx, scaled - float64(idx), true
	}
	target := alpha * total
	acc := 0.0
	for i, l := range lengths {
		if acc+l >= target {
			if l == 0 {
				return i, 0, true
			}
			return i, mathx.Clamp01((target - acc) / l), true
		}
		acc += l
	}
	return n - 1, 1, true
}

// PointAtProportion returns the point a fraction alpha of the way along the
// path, measured by approximate arc length. alpha == 1 returns the final
// point of the buffer exactly.
func (s Sampler) PointAtProportion(p *Path, alpha float64) Point {
	if alpha < 0 || alpha > 1 {
		diag.Clamped("geom.PointAtProportion", alpha, 0, 1, false)
		alpha = mathx.Clamp01(alpha)
	}
	if len(p.points) == 0 {
		return Point{}
	}
	if alpha == 1 {
		return p.points[len(p.points)-1]
	}
	idx, t, ok := s.locate(p, alpha)
	if !ok {
		return p.points[len(p.points)-1]
	}
	return p.curveList()[idx].Eval(t)
}

// ArcLengthTotal returns the approximate length of the whole path using
// DefaultArcSamples per curve.
func (p *Path) ArcLengthTotal() float64 {
	return Sampler{}.Length(p)
}

// PointAtProportion is Sampler{}.PointAtProportion(p, alpha).
func (p *Path) PointAtProportion(alpha float64) Point {
	return Sampler{}.PointAtProportion(p, alpha)
}
