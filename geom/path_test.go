package geom

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"
)

func square() *Path {
	return NewPath().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		LineTo(Pt(1, 1)).
		LineTo(Pt(0, 1)).
		Close()
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498307936

func circle(r float64) *Path {
	k := r * kappa
	return NewPath().
		MoveTo(Pt(r, 0)).
		CubicTo(Pt(r, k), Pt(k, r), Pt(0, r)).
		CubicTo(Pt(-k, r), Pt(-r, k), Pt(-r, 0)).
		CubicTo(Pt(-r, -k), Pt(-k, -r), Pt(0, -r)).
		CubicTo(Pt(k, -r), Pt(r, -k), Pt(r, 0)).
		Close()
}

func TestAppendSegmentPointCount(t *testing.T) {
	p := NewPath()
	require.NoError(t, p.AppendSegment(MoveTo, Pt(0, 0)))

	err := p.AppendSegment(Cubic, Pt(1, 1), Pt(2, 2))
	assert.ErrorIs(t, err, ErrValidation)

	err = p.AppendSegment(ClosePath, Pt(1, 1))
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, p.AppendSegment(Quadratic, Pt(1, 1), Pt(2, 0)))
	assert.Equal(t, 3, p.NumPoints())
	assert.Equal(t, []Tag{MoveTo, Quadratic}, p.Tags())
}

func TestAppendSegmentNeedsCurrentPoint(t *testing.T) {
	err := NewPath().AppendSegment(LineTo, Pt(1, 1))
	assert.ErrorIs(t, err, ErrValidation)

	err = NewPath().AppendSegment(Tag(42))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewPathFromDataInvariant(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	p, err := NewPathFromData(pts, []Tag{MoveTo, LineTo, LineTo, ClosePath})
	require.NoError(t, err)
	assert.Equal(t, 2, p.CurveCount())

	_, err = NewPathFromData(pts, []Tag{MoveTo, LineTo})
	assert.ErrorIs(t, err, ErrValidation, "leftover points must be rejected")

	_, err = NewPathFromData(pts, []Tag{MoveTo, Cubic})
	assert.ErrorIs(t, err, ErrValidation, "missing points must be rejected")
}

func TestConvenienceBuildersStartSubpath(t *testing.T) {
	p := NewPath().LineTo(Pt(3, 4))
	assert.Equal(t, []Tag{MoveTo}, p.Tags())
	p.LineTo(Pt(5, 5))
	assert.Equal(t, 1, p.CurveCount())
}

func TestCurveCountExcludesMarkers(t *testing.T) {
	assert.Equal(t, 3, square().CurveCount())
	assert.Equal(t, 4, circle(1).CurveCount())
	assert.Equal(t, 0, NewPath().CurveCount())
}

func TestCurveAtIndexErrors(t *testing.T) {
	p := square()
	_, err := p.CurveAt(-1)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = p.CurveAt(3)
	assert.ErrorIs(t, err, ErrIndex)
	fn, err := p.CurveAt(2)
	require.NoError(t, err)
	assert.Equal(t, Pt(1, 1), fn(0))
	assert.Equal(t, Pt(0, 1), fn(1))
}

func TestCubicEndpointExactness(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	rp := func() Point {
		return Pt3(rng.Float64()*200-100, rng.Float64()*200-100, rng.Float64()*10)
	}
	for range 100 {
		p0, p1, p2, p3 := rp(), rp(), rp(), rp()
		path := NewPath().MoveTo(p0).CubicTo(p1, p2, p3)
		fn, err := path.CurveAt(0)
		require.NoError(t, err)
		assert.True(t, fn(0).ApproxEqual(p0, 1e-9), "curveAt(0) = %v, want %v", fn(0), p0)
		assert.True(t, fn(1).ApproxEqual(p3, 1e-9), "curveAt(1) = %v, want %v", fn(1), p3)
	}
}

func TestQuadraticMidpoint(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).QuadTo(Pt(1, 2), Pt(2, 0))
	fn, err := p.CurveAt(0)
	require.NoError(t, err)
	assert.True(t, fn(0.5).ApproxEqual(Pt(1, 1), 1e-12))
}

func TestArcLengthSamplesValidation(t *testing.T) {
	p := square()
	_, err := p.ArcLength(0, 1)
	assert.ErrorIs(t, err, ErrRange)
	_, err = p.ArcLength(9, 10)
	assert.ErrorIs(t, err, ErrIndex)

	l, err := p.ArcLength(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l, 1e-12)
}

func TestArcLengthNonDecreasing(t *testing.T) {
	p := circle(3)
	prev := 0.0
	for _, samples := range []int{2, 3, 5, 9, 17, 33, 65, 129} {
		l, err := p.ArcLength(1, samples)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, l, prev, "samples=%d", samples)
		prev = l
	}
}

func TestArcLengthConvergesOnCircle(t *testing.T) {
	const r = 2.0
	p := circle(r)
	for _, samples := range []int{50, 100, 500} {
		total := 0.0
		for i := 0; i < p.CurveCount(); i++ {
			l, err := p.ArcLength(i, samples)
			require.NoError(t, err)
			total += l
		}
		want := 2 * math.Pi * r
		assert.InEpsilon(t, want, total, 0.01, "samples=%d", samples)
	}
}

func TestPointAtProportion(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0)).LineTo(Pt(10, 10))
	assert.True(t, p.PointAtProportion(0).ApproxEqual(Pt(0, 0), 1e-12))
	assert.True(t, p.PointAtProportion(0.25).ApproxEqual(Pt(5, 0), 1e-12))
	assert.True(t, p.PointAtProportion(0.5).ApproxEqual(Pt(10, 0), 1e-12))
	assert.True(t, p.PointAtProportion(0.75).ApproxEqual(Pt(10, 5), 1e-12))
	assert.Equal(t, Pt(10, 10), p.PointAtProportion(1))
	assert.Equal(t, Pt(10, 10), p.PointAtProportion(7), "values above 1 clamp")
	assert.Equal(t, Point{}, NewPath().PointAtProportion(0.5))
}

func TestExtractPartialIdentity(t *testing.T) {
	for _, p := range []*Path{square(), circle(1.5)} {
		out := p.ExtractPartial(0, 1)
		assert.True(t, out.Equal(p))
		assert.NotSame(t, p, out)
	}
}

func TestExtractPartialBoundaries(t *testing.T) {
	p := circle(1)
	for _, alpha := range []float64{0, 1} {
		out := p.ExtractPartial(alpha, alpha)
		want := p.PointAtProportion(alpha)
		assert.Equal(t, p.Tags(), out.Tags())
		require.Equal(t, p.NumPoints(), out.NumPoints())
		for _, pt := range out.Points() {
			assert.True(t, pt.ApproxEqual(want, 1e-12), "alpha=%v point %v, want %v", alpha, pt, want)
		}
		assert.InDelta(t, 0, out.ArcLengthTotal(), 1e-12)
	}
}

func TestExtractPartialMiddle(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(4, 0)).LineTo(Pt(4, 4)).LineTo(Pt(0, 4))
	out := p.ExtractPartial(0.25, 0.75)

	assert.Equal(t, p.Tags(), out.Tags())
	pts := out.Points()
	// The MoveTo jumps to the start point; the boundary curves are cut.
	assert.True(t, pts[0].ApproxEqual(Pt(3, 0), 1e-12), "got %v", pts[0])
	assert.True(t, pts[1].ApproxEqual(Pt(4, 0), 1e-12), "got %v", pts[1])
	assert.True(t, pts[2].ApproxEqual(Pt(4, 4), 1e-12), "got %v", pts[2])
	assert.True(t, pts[3].ApproxEqual(Pt(3, 4), 1e-12), "got %v", pts[3])
	assert.InDelta(t, 6, out.ArcLengthTotal(), 1e-9)
}

func TestExtractPartialClampsAndOrders(t *testing.T) {
	p := square()
	assert.True(t, p.ExtractPartial(-1, 2).Equal(p))
	assert.True(t, p.ExtractPartial(0.6, 0.2).ApproxEqual(p.ExtractPartial(0.2, 0.6), 0))
}

func TestExtractPartialOfClosedPathStaysOpen(t *testing.T) {
	p := square()
	last := len(p.Tags()) - 1
	require.True(t, p.Closed())

	for _, r := range [][2]float64{{0, 0.5}, {0.25, 0.75}, {0.5, 1}, {0.3, 0.3}} {
		out := p.ExtractPartial(r[0], r[1])
		assert.Equal(t, p.Tags(), out.Tags(), "range %v", r)
		assert.False(t, out.Closed(), "range %v draws a closing edge", r)
		assert.False(t, out.ClosesSubpath(last), "range %v", r)
		for _, sp := range out.Subpaths() {
			assert.False(t, sp.Closed, "range %v", r)
		}
	}
	assert.True(t, p.ExtractPartial(0, 1).Closed())
	assert.True(t, p.Closed(), "source keeps its close")
}

func TestExtractPartialKeepsWholeSubpathsClosed(t *testing.T) {
	p := NewPath().
		MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1)).Close().
		MoveTo(Pt(5, 0)).LineTo(Pt(6, 0)).LineTo(Pt(6, 1)).Close()
	out := p.ExtractPartial(0, 0.75)

	var closes []int
	for ti, tag := range out.Tags() {
		if tag == ClosePath {
			closes = append(closes, ti)
		}
	}
	require.Len(t, closes, 2)
	assert.True(t, out.ClosesSubpath(closes[0]), "first triangle is whole")
	assert.False(t, out.ClosesSubpath(closes[1]), "second triangle is cut")
}

func TestCurveSplitMatchesEval(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(1, 3), Pt(3, 3), Pt(4, 0))
	left, right := c.Split(0.3)
	assert.True(t, left.End().ApproxEqual(c.Eval(0.3), 1e-12))
	assert.True(t, right.Start().ApproxEqual(c.Eval(0.3), 1e-12))
	assert.True(t, left.Eval(0.5).ApproxEqual(c.Eval(0.15), 1e-12))
	assert.True(t, right.Eval(0.5).ApproxEqual(c.Eval(0.65), 1e-12))

	sub := c.Subsegment(0.2, 0.6)
	assert.True(t, sub.Start().ApproxEqual(c.Eval(0.2), 1e-12))
	assert.True(t, sub.End().ApproxEqual(c.Eval(0.6), 1e-12))
	assert.True(t, sub.Eval(0.5).ApproxEqual(c.Eval(0.4), 1e-12))
}

func TestElevatePreservesShape(t *testing.T) {
	for _, c := range []Curve{
		NewLine(Pt(0, 0), Pt(2, 1)),
		NewQuad(Pt(0, 0), Pt(1, 2), Pt(2, 0)),
	} {
		e := c.Elevate()
		assert.Equal(t, 3, e.Degree)
		for _, tt := range []float64{0, 0.25, 0.5, 0.9, 1} {
			assert.True(t, e.Eval(tt).ApproxEqual(c.Eval(tt), 1e-12))
		}
	}
}

func TestAlignProducesMatchingStructure(t *testing.T) {
	a, b := Align(square(), circle(1))
	assert.Equal(t, a.Tags(), b.Tags())
	assert.Equal(t, a.NumPoints(), b.NumPoints())
	assert.Equal(t, 4, a.CurveCount())
	// Shapes are preserved through alignment.
	assert.True(t, a.PointAtProportion(1).ApproxEqual(square().PointAtProportion(1), 1e-12))

	two := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).MoveTo(Pt(5, 5)).LineTo(Pt(6, 5))
	c, d := Align(two, NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(2, 2)))
	assert.Equal(t, c.Tags(), d.Tags())
	assert.Len(t, d.Subpaths(), 2)
}

func TestAlignSameTagsClones(t *testing.T) {
	p := square()
	q := square()
	q.Translate(Pt(2, 0))
	a, b := Align(p, q)
	assert.True(t, a.Equal(p))
	assert.True(t, b.Equal(q))
}

func TestArcPathEndpoints(t *testing.T) {
	start := []Point{Pt(0, 0), Pt(1, 1)}
	end := []Point{Pt(2, 0), Pt(-1, 3)}
	fn := ArcPath(math.Pi / 2)

	got0 := fn(start, end, 0)
	got1 := fn(start, end, 1)
	for i := range start {
		assert.True(t, got0[i].ApproxEqual(start[i], 1e-12))
		assert.Equal(t, end[i], got1[i])
	}
	mid := fn(start, end, 0.5)
	// Quarter turn from (0,0) to (2,0) swings below the chord around (1,1).
	assert.InDelta(t, math.Sqrt2, mid[0].Distance(Pt(1, 1)), 1e-9)
	assert.Less(t, mid[0].Y, 0.0)

	straight := StraightPath(start, end, 0.5)
	assert.Equal(t, Pt(1, 0), straight[0])
}

func TestReversed(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).QuadTo(Pt(2, 1), Pt(2, 2))
	r := p.Reversed()
	assert.Equal(t, []Tag{MoveTo, Quadratic, LineTo}, r.Tags())
	assert.Equal(t, Pt(2, 2), r.Points()[0])
	assert.Equal(t, Pt(0, 0), r.Points()[r.NumPoints()-1])
}

func TestTransforms(t *testing.T) {
	p := square()
	p.Translate(Pt(1, 2))
	assert.Equal(t, Pt(1, 2), p.Points()[0])

	p.Scale(2, Pt(1, 2))
	assert.Equal(t, Pt(3, 2), p.Points()[1])

	q := NewPath().MoveTo(Pt(1, 0)).LineTo(Pt(2, 0))
	q.ApplyMatrix(RotationMatrix(math.Pi/2, Pt3(0, 0, 1)), Origin)
	assert.True(t, q.Points()[0].ApproxEqual(Pt(0, 1), 1e-12))

	q.ApplyAffine(TranslateAffine(5, 0))
	assert.True(t, q.Points()[1].ApproxEqual(Pt(5, 2), 1e-12))

	lo, hi, ok := square().Bounds()
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), lo)
	assert.Equal(t, Pt(1, 1), hi)
	assert.Equal(t, Pt(0.5, 0.5), square().Center())
}

func TestAffineInverse(t *testing.T) {
	m := MultiplyAffine(TranslateAffine(3, -2), MultiplyAffine(RotateAffine(0.7), ScaleAffine(2, 3)))
	pt := Pt(1.5, -4)
	back := ApplyAffine(InvertAffine(m), ApplyAffine(m, pt))
	assert.True(t, back.ApproxEqual(pt, 1e-9))
	assert.Equal(t, IdentityAffine, InvertAffine(ScaleAffine(0, 0)))
}

func TestAlignKeepsEachSideCloses(t *testing.T) {
	line := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1))
	a, b := Align(line, square())
	require.Equal(t, a.Tags(), b.Tags())
	assert.False(t, a.Closed(), "open side stays open")
	assert.True(t, b.Closed(), "closed side keeps its close")

	// The live path ends up closed like its target.
	a.MatchCloses(b)
	assert.True(t, a.Closed())

	other := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 0))
	other.MatchCloses(b)
	assert.False(t, other.Closed(), "different tags are left alone")
}

func TestAddToRasterizer(t *testing.T) {
	p := square()
	p.Scale(8, Origin)
	r := vector.NewRasterizer(16, 16)
	p.AddTo(r, TranslateAffine(4, 4))
	dst := image.NewAlpha(image.Rect(0, 0, 16, 16))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	assert.Equal(t, uint8(0xff), dst.AlphaAt(8, 8).A)
	assert.Equal(t, uint8(0), dst.AlphaAt(1, 1).A)
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag("Cubic")
	require.NoError(t, err)
	assert.Equal(t, Cubic, tag)
	_, err = ParseTag("arc")
	assert.ErrorIs(t, err, ErrValue)
	assert.Equal(t, "ClosePath", ClosePath.String())
}
