package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Identity3 is the 3x3 identity matrix.
var Identity3 = f64.Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// IdentityAffine is the identity 2-D affine matrix.
//
//	| a  b  c |     x' = a*x + b*y + c
//	| d  e  f |     y' = d*x + e*y + f
var IdentityAffine = f64.Aff3{1, 0, 0, 0, 1, 0}

// RotationMatrix returns the matrix rotating by angle radians about axis
// (Rodrigues' formula). A zero axis yields the identity.
func RotationMatrix(angle float64, axis Point) f64.Mat3 {
	l := axis.Length()
	if l == 0 {
		return Identity3
	}
	x, y, z := axis.X/l, axis.Y/l, axis.Z/l
	sin, cos := math.Sincos(angle)
	omc := 1 - cos
	return f64.Mat3{
		cos + x*x*omc, x*y*omc - z*sin, x*z*omc + y*sin,
		y*x*omc + z*sin, cos + y*y*omc, y*z*omc - x*sin,
		z*x*omc - y*sin, z*y*omc + x*sin, cos + z*z*omc,
	}
}

// ScaleMatrix returns a diagonal scaling matrix.
func ScaleMatrix(sx, sy, sz float64) f64.Mat3 {
	return f64.Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	}
}

// MulMat3 returns a * b.
func MulMat3(a, b f64.Mat3) f64.Mat3 {
	var out f64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = a[r*3]*b[c] + a[r*3+1]*b[3+c] + a[r*3+2]*b[6+c]
		}
	}
	return out
}

// ApplyMat3 returns m * p.
func ApplyMat3(m f64.Mat3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z,
		Y: m[3]*p.X + m[4]*p.Y + m[5]*p.Z,
		Z: m[6]*p.X + m[7]*p.Y + m[8]*p.Z,
	}
}

// ApplyAffine transforms the XY coordinates of p; Z is left untouched.
func ApplyAffine(m f64.Aff3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
		Z: p.Z,
	}
}

// MultiplyAffine returns parent * child.
func MultiplyAffine(p, c f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		p[0]*c[0] + p[1]*c[3],
		p[0]*c[1] + p[1]*c[4],
		p[0]*c[2] + p[1]*c[5] + p[2],
		p[3]*c[0] + p[4]*c[3],
		p[3]*c[1] + p[4]*c[4],
		p[3]*c[2] + p[4]*c[5] + p[5],
	}
}

// InvertAffine returns the inverse of m, or the identity when m is singular.
func InvertAffine(m f64.Aff3) f64.Aff3 {
	det := m[0]*m[4] - m[1]*m[3]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine
	}
	inv := 1.0 / det
	a := m[4] * inv
	b := -m[1] * inv
	d := -m[3] * inv
	e := m[0] * inv
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}
}

// TranslateAffine returns a translation matrix.
func TranslateAffine(tx, ty float64) f64.Aff3 {
	return f64.Aff3{1, 0, tx, 0, 1, ty}
}

// ScaleAffine returns a scaling matrix about the origin.
func ScaleAffine(sx, sy float64) f64.Aff3 {
	return f64.Aff3{sx, 0, 0, 0, sy, 0}
}

// RotateAffine returns a rotation matrix about the origin (radians).
func RotateAffine(angle float64) f64.Aff3 {
	sin, cos := math.Sincos(angle)
	return f64.Aff3{cos, -sin, 0, sin, cos, 0}
}
