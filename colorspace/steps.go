package colorspace

import (
	"math"

	"golang.org/x/image/math/f64"
)

// sRGB transfer function constants.
const (
	decodeThreshold = 0.04045
	encodeThreshold = 0.0031308
	gammaExponent   = 2.4
)

// Rec.709 primaries, D65 white point.
var (
	linearToXYZMatrix = f64.Mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	xyzToLinearMatrix = f64.Mat3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
)

// Oklab matrices: M1 maps XYZ to cone response, M2 maps the cube-rooted
// response to Lab.
var (
	oklabM1 = f64.Mat3{
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	}
	oklabM2 = f64.Mat3{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}
	oklabM1Inv = f64.Mat3{
		1.2270138511, -0.5577999807, 0.2812561490,
		-0.0405801784, 1.1122568696, -0.0716766787,
		-0.0763812845, -0.4214819784, 1.5861632204,
	}
	oklabM2Inv = f64.Mat3{
		1.0, 0.3963377774, 0.2158037573,
		1.0, -0.1055613458, -0.0638541728,
		1.0, -0.0894841775, -1.2914855480,
	}
)

func mulVec(m f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func mapVec(v f64.Vec3, fn func(float64) float64) f64.Vec3 {
	return f64.Vec3{fn(v[0]), fn(v[1]), fn(v[2])}
}

func decodeGamma(s float64) float64 {
	if s <= decodeThreshold {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, gammaExponent)
}

func encodeGamma(l float64) float64 {
	if l <= encodeThreshold {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/gammaExponent) - 0.055
}

func srgbToLinear(v f64.Vec3) f64.Vec3 { return mapVec(v, decodeGamma) }
func linearToSRGB(v f64.Vec3) f64.Vec3 { return mapVec(v, encodeGamma) }
func linearToXYZ(v f64.Vec3) f64.Vec3  { return mulVec(linearToXYZMatrix, v) }
func xyzToLinear(v f64.Vec3) f64.Vec3  { return mulVec(xyzToLinearMatrix, v) }

func xyzToOklab(v f64.Vec3) f64.Vec3 {
	lms := mapVec(mulVec(oklabM1, v), math.Cbrt)
	return mulVec(oklabM2, lms)
}

func oklabToXYZ(v f64.Vec3) f64.Vec3 {
	lms := mapVec(mulVec(oklabM2Inv, v), func(x float64) float64 { return x * x * x })
	return mulVec(oklabM1Inv, lms)
}

// normalizeHue wraps degrees into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func oklabToOklch(v f64.Vec3) f64.Vec3 {
	c := math.Hypot(v[1], v[2])
	h := normalizeHue(math.Atan2(v[2], v[1]) * 180 / math.Pi)
	return f64.Vec3{v[0], c, h}
}

func oklchToOklab(v f64.Vec3) f64.Vec3 {
	rad := v[2] * math.Pi / 180
	return f64.Vec3{v[0], v[1] * math.Cos(rad), v[1] * math.Sin(rad)}
}

// hueChroma returns the hue in degrees plus max, min and chroma of an sRGB
// triple. Hue is 0 when chroma is 0.
func hueChroma(v f64.Vec3) (h, hi, lo, c float64) {
	r, g, b := v[0], v[1], v[2]
	hi = max(r, g, b)
	lo = min(r, g, b)
	c = hi - lo
	switch {
	case c == 0:
		h = 0
	case hi == r:
		h = 60 * math.Mod((g-b)/c, 6)
	case hi == g:
		h = 60 * ((b-r)/c + 2)
	default:
		h = 60 * ((r-g)/c + 4)
	}
	return normalizeHue(h), hi, lo, c
}

// fromHue rebuilds an sRGB triple from hue, chroma and the offset m added
// to every channel.
func fromHue(h, c, m float64) f64.Vec3 {
	hp := normalizeHue(h) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return f64.Vec3{r + m, g + m, b + m}
}

func srgbToHSL(v f64.Vec3) f64.Vec3 {
	h, hi, lo, c := hueChroma(v)
	l := (hi + lo) / 2
	var s float64
	if d := 1 - math.Abs(2*l-1); c != 0 && d != 0 {
		s = c / d
	}
	return f64.Vec3{h, s, l}
}

func hslToSRGB(v f64.Vec3) f64.Vec3 {
	h, s, l := v[0], v[1], v[2]
	c := (1 - math.Abs(2*l-1)) * s
	return fromHue(h, c, l-c/2)
}

func srgbToHSV(v f64.Vec3) f64.Vec3 {
	h, hi, _, c := hueChroma(v)
	var s float64
	if hi != 0 {
		s = c / hi
	}
	return f64.Vec3{h, s, hi}
}

func hsvToSRGB(v f64.Vec3) f64.Vec3 {
	h, s, val := v[0], v[1], v[2]
	c := val * s
	return fromHue(h, c, val-c)
}
