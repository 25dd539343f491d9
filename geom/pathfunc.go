package geom

import "math"

// PathFunc computes intermediate points between two equally long point
// buffers at progress alpha. Implementations must return start at 0 and end
// at 1 and must tolerate alpha outside [0, 1].
type PathFunc func(start, end []Point, alpha float64) []Point

// straightPathThreshold is the arc angle below which ArcPath degenerates to
// StraightPath.
const straightPathThreshold = 0.01

// StraightPath blends each point pair componentwise.
func StraightPath(start, end []Point, alpha float64) []Point {
	out := make([]Point, len(start))
	for i := range start {
		out[i] = start[i].Lerp(end[i], alpha)
	}
	return out
}

// ArcPath returns a PathFunc moving every point along a circular arc of the
// given angle (radians) in the XY plane. Positive angles turn
// counterclockwise. The arc center for each pair is the point from which
// start and end subtend the angle.
func ArcPath(angle float64) PathFunc {
	if math.Abs(angle) < straightPathThreshold {
		return StraightPath
	}
	axis := Point{Z: 1}
	return func(start, end []Point, alpha float64) []Point {
		rot := RotationMatrix(alpha*angle, axis)
		out := make([]Point, len(start))
		for i := range start {
			half := end[i].Sub(start[i]).Mul(0.5)
			center := start[i].Add(half)
			if angle != math.Pi {
				center = center.Add(axis.Cross(half).Mul(1 / math.Tan(angle/2)))
			}
			out[i] = center.Add(ApplyMat3(rot, start[i].Sub(center)))
		}
		if alpha == 1 {
			copy(out, end)
		}
		return out
	}
}

// Clockwise is ArcPath(-π).
func Clockwise() PathFunc {
	return ArcPath(-math.Pi)
}

// Counterclockwise is ArcPath(π).
func Counterclockwise() PathFunc {
	return ArcPath(math.Pi)
}
