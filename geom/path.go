package geom

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/image/math/f64"
)

// Path is an ordered point buffer plus a parallel sequence of segment tags.
//
// Each tag consumes Tag.PointCount() points from the buffer (MoveTo 1,
// LineTo 1, Quadratic 2, Cubic 3, ClosePath 0); a drawing segment starts at
// the last point of the previous segment. The total consumption always
// equals len(points).
type Path struct {
	points []Point
	tags   []Tag

	// curves is derived from points/tags and rebuilt lazily after mutation.
	curves []Curve

	// open holds the indices of ClosePath tags that draw no closing edge.
	// ExtractPartial sets it for subpaths it cuts short, so the tag
	// sequence stays blendable while the partial outline stays open.
	open []int
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{
		points: make([]Point, 0, 16),
		tags:   make([]Tag, 0, 8),
	}
}

// NewPathFromData builds a path from an existing buffer and tag list,
// validating the point-consumption invariant. The slices are copied.
func NewPathFromData(points []Point, tags []Tag) (*Path, error) {
	p := &Path{
		points: make([]Point, 0, len(points)),
		tags:   make([]Tag, 0, len(tags)),
	}
	used := 0
	for i, tag := range tags {
		n := tag.PointCount()
		if used+n > len(points) {
			return nil, fmt.Errorf("%w: tag %d (%s) needs %d points, %d left",
				ErrValidation, i, tag, n, len(points)-used)
		}
		if err := p.AppendSegment(tag, points[used:used+n]...); err != nil {
			return nil, fmt.Errorf("tag %d: %w", i, err)
		}
		used += n
	}
	if used != len(points) {
		return nil, fmt.Errorf("%w: tags consume %d points, buffer has %d",
			ErrValidation, used, len(points))
	}
	return p, nil
}

// AppendSegment appends one segment. It fails with ErrValidation when the
// number of points does not match the tag, when the tag is unknown, or when
// a drawing segment has no current point to start from.
func (p *Path) AppendSegment(tag Tag, pts ...Point) error {
	if !tag.Valid() {
		return fmt.Errorf("%w: unknown segment tag %d", ErrValidation, uint8(tag))
	}
	if len(pts) != tag.PointCount() {
		return fmt.Errorf("%w: %s takes %d points, got %d",
			ErrValidation, tag, tag.PointCount(), len(pts))
	}
	if tag != MoveTo && len(p.points) == 0 {
		return fmt.Errorf("%w: %s without a current point", ErrValidation, tag)
	}
	p.tags = append(p.tags, tag)
	p.points = append(p.points, pts...)
	p.curves = nil
	return nil
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) *Path {
	p.mustAppend(MoveTo, pt)
	return p
}

// LineTo adds a straight segment. Without a current point it starts a
// subpath at pt instead.
func (p *Path) LineTo(pt Point) *Path {
	if len(p.points) == 0 {
		return p.MoveTo(pt)
	}
	p.mustAppend(LineTo, pt)
	return p
}

// QuadTo adds a quadratic segment. Without a current point the subpath
// starts at the control point.
func (p *Path) QuadTo(ctrl, end Point) *Path {
	if len(p.points) == 0 {
		p.MoveTo(ctrl)
	}
	p.mustAppend(Quadratic, ctrl, end)
	return p
}

// CubicTo adds a cubic segment. Without a current point the subpath starts
// at the first control point.
func (p *Path) CubicTo(c1, c2, end Point) *Path {
	if len(p.points) == 0 {
		p.MoveTo(c1)
	}
	p.mustAppend(Cubic, c1, c2, end)
	return p
}

// Close closes the current subpath. No-op on an empty path.
func (p *Path) Close() *Path {
	if len(p.points) == 0 {
		return p
	}
	p.mustAppend(ClosePath)
	return p
}

func (p *Path) mustAppend(tag Tag, pts ...Point) {
	if err := p.AppendSegment(tag, pts...); err != nil {
		panic("geom: " + err.Error())
	}
}

// Points returns the point buffer. The returned slice MUST NOT be mutated
// by the caller; use SetPoints.
func (p *Path) Points() []Point {
	return p.points
}

// Tags returns the segment tags. The returned slice MUST NOT be mutated.
func (p *Path) Tags() []Tag {
	return p.tags
}

// NumPoints returns the point buffer length.
func (p *Path) NumPoints() int {
	return len(p.points)
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	return len(p.points) == 0
}

// CurrentPoint returns the last point of the buffer.
func (p *Path) CurrentPoint() (Point, bool) {
	if len(p.points) == 0 {
		return Point{}, false
	}
	return p.points[len(p.points)-1], true
}

// SetPoints replaces the point buffer, keeping the tags. The new buffer must
// have the same length as the old one.
func (p *Path) SetPoints(pts []Point) error {
	if len(pts) != len(p.points) {
		return fmt.Errorf("%w: SetPoints got %d points, path has %d",
			ErrValidation, len(pts), len(p.points))
	}
	copy(p.points, pts)
	p.curves = nil
	return nil
}

// Become makes p a copy of other (points and tags).
func (p *Path) Become(other *Path) {
	p.points = append(p.points[:0], other.points...)
	p.tags = append(p.tags[:0], other.tags...)
	p.open = append(p.open[:0], other.open...)
	p.curves = nil
}

// Clear removes every segment.
func (p *Path) Clear() {
	p.points = p.points[:0]
	p.tags = p.tags[:0]
	p.open = p.open[:0]
	p.curves = nil
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	return &Path{
		points: append([]Point(nil), p.points...),
		tags:   append([]Tag(nil), p.tags...),
		open:   append([]int(nil), p.open...),
	}
}

// Equal reports whether both paths hold identical tags and points.
func (p *Path) Equal(other *Path) bool {
	return p.ApproxEqual(other, 0)
}

// ApproxEqual reports whether both paths hold identical tags and points
// within tol.
func (p *Path) ApproxEqual(other *Path, tol float64) bool {
	if len(p.points) != len(other.points) || len(p.tags) != len(other.tags) {
		return false
	}
	for i, t := range p.tags {
		if other.tags[i] != t {
			return false
		}
	}
	for i, pt := range p.points {
		if !pt.ApproxEqual(other.points[i], tol) {
			return false
		}
	}
	return true
}

// Translate shifts every point by v.
func (p *Path) Translate(v Point) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(v)
	}
	p.curves = nil
}

// Scale scales every point by factor about the given point.
func (p *Path) Scale(factor float64, about Point) {
	for i := range p.points {
		p.points[i] = about.Add(p.points[i].Sub(about).Mul(factor))
	}
	p.curves = nil
}

// ApplyMatrix applies the linear map m to every point, relative to about.
func (p *Path) ApplyMatrix(m f64.Mat3, about Point) {
	for i := range p.points {
		p.points[i] = about.Add(ApplyMat3(m, p.points[i].Sub(about)))
	}
	p.curves = nil
}

// ApplyAffine applies a 2-D affine matrix to the XY coordinates of every
// point.
func (p *Path) ApplyAffine(m f64.Aff3) {
	for i := range p.points {
		p.points[i] = ApplyAffine(m, p.points[i])
	}
	p.curves = nil
}

// ApplyFunc replaces each point with fn(point).
func (p *Path) ApplyFunc(fn func(Point) Point) {
	for i := range p.points {
		p.points[i] = fn(p.points[i])
	}
	p.curves = nil
}

// Bounds returns the axis-aligned bounding box of the point buffer
// (control points included). ok is false for an empty path.
func (p *Path) Bounds() (lo, hi Point, ok bool) {
	if len(p.points) == 0 {
		return Point{}, Point{}, false
	}
	lo = Point{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, pt := range p.points {
		lo = Point{X: math.Min(lo.X, pt.X), Y: math.Min(lo.Y, pt.Y), Z: math.Min(lo.Z, pt.Z)}
		hi = Point{X: math.Max(hi.X, pt.X), Y: math.Max(hi.Y, pt.Y), Z: math.Max(hi.Z, pt.Z)}
	}
	return lo, hi, true
}

// Center returns the center of the bounding box, or the origin for an empty
// path.
func (p *Path) Center() Point {
	lo, hi, ok := p.Bounds()
	if !ok {
		return Point{}
	}
	return lo.Lerp(hi, 0.5)
}

// Closed reports whether the last segment is a ClosePath that draws its
// closing edge.
func (p *Path) Closed() bool {
	return len(p.tags) > 0 && p.ClosesSubpath(len(p.tags)-1)
}

// ClosesSubpath reports whether the tag at index ti is a ClosePath that
// draws an edge back to the subpath start. It is false for every other tag
// and for the ClosePath of a subpath cut short by ExtractPartial.
func (p *Path) ClosesSubpath(ti int) bool {
	if ti < 0 || ti >= len(p.tags) || p.tags[ti] != ClosePath {
		return false
	}
	return !slices.Contains(p.open, ti)
}

func (p *Path) String() string {
	return fmt.Sprintf("Path{%d points, %d tags, %d curves}",
		len(p.points), len(p.tags), p.CurveCount())
}
