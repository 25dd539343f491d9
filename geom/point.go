package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema/internal/mathx"
)

// Point is a 3-D point or vector. Drawing happens in the XY plane; Z is
// carried through every operation so depth survives transforms.
type Point struct {
	X, Y, Z float64
}

// Origin is the zero point.
var Origin = Point{}

// Pt returns a point in the XY plane.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 returns a point with all three coordinates set.
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// FromVec converts an f64.Vec3.
func FromVec(v f64.Vec3) Point {
	return Point{X: v[0], Y: v[1], Z: v[2]}
}

// Vec returns p as an f64.Vec3.
func (p Point) Vec() f64.Vec3 {
	return f64.Vec3{p.X, p.Y, p.Z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p × q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the Euclidean norm.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp blends componentwise toward q. Lerp(q, 1) == q exactly.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: mathx.Lerp(p.X, q.X, t),
		Y: mathx.Lerp(p.Y, q.Y, t),
		Z: mathx.Lerp(p.Z, q.Z, t),
	}
}

// ApproxEqual reports whether every coordinate differs by at most tol.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
