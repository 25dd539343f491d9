package kinema

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/geom"
)

func TestApplyOps(t *testing.T) {
	sq := NewSquare("sq", 2)
	err := sq.Apply(
		Op{Name: OpShift, Args: []any{geom.Pt(1, 2)}},
		Op{Name: OpScale, Args: []any{2.0}},
		Op{Name: OpSetFill, Args: []any{"#FF0000"}},
		Op{Name: OpSetStrokeWidth, Args: []any{3}},
		Op{Name: OpSetOpacity, Args: []any{float32(0.5)}},
	)
	require.NoError(t, err)
	assert.True(t, sq.Center().ApproxEqual(geom.Pt(1, 2), 1e-9))
	assert.InDelta(t, 4.0, sq.Width(), 1e-9)
	assert.InDelta(t, 1.0, sq.Style.Fill.R(), 1e-9)
	assert.InDelta(t, 0.5, sq.Style.Fill.A(), 1e-9)
	assert.InDelta(t, 3.0, sq.Style.StrokeWidth, 1e-9)
}

func TestApplyRotateAbout(t *testing.T) {
	l := NewLine("l", geom.Pt(1, 0), geom.Pt(2, 0))
	require.NoError(t, l.Apply(Op{Name: OpRotate, Args: []any{math.Pi, geom.Origin}}))
	assert.True(t, l.Path().Points()[1].ApproxEqual(geom.Pt(-2, 0), 1e-9))
}

func TestApplyMatrixOp(t *testing.T) {
	l := NewLine("l", geom.Pt(1, 1), geom.Pt(2, 2))
	require.NoError(t, l.Apply(Op{Name: OpApplyMatrix, Args: []any{f64.Mat3{2, 0, 0, 0, 3, 0, 0, 0, 1}}}))
	assert.True(t, l.Path().Points()[1].ApproxEqual(geom.Pt(4, 6), 1e-12))

	// Swap X and Y.
	nums := []any{0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0}
	require.NoError(t, l.Apply(Op{Name: OpApplyMatrix, Args: nums}))
	assert.True(t, l.Path().Points()[0].ApproxEqual(geom.Pt(3, 2), 1e-12))
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		want error
	}{
		{"unknown op", Op{Name: "explode"}, ErrValue},
		{"shift wants numbers", Op{Name: OpShift, Args: []any{"left"}}, ErrType},
		{"shift arity", Op{Name: OpShift, Args: []any{1.0}}, ErrType},
		{"scale wants number", Op{Name: OpScale, Args: []any{"big"}}, ErrType},
		{"scale arity", Op{Name: OpScale}, ErrType},
		{"matrix arity", Op{Name: OpApplyMatrix, Args: []any{1.0, 2.0}}, ErrType},
		{"fill wants color", Op{Name: OpSetFill, Args: []any{42.0}}, ErrType},
		{"fill bad hex", Op{Name: OpSetFill, Args: []any{"#12"}}, ErrValidation},
		{"opacity arity", Op{Name: OpSetOpacity, Args: []any{1.0, 2.0}}, ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSquare("s", 1).Apply(tt.op)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "err = %v, want %v", err, tt.want)
		})
	}
}

func TestApplyIsAllOrNothing(t *testing.T) {
	sq := NewSquare("s", 2)
	before := sq.Path().Clone()
	err := sq.Apply(
		Op{Name: OpShift, Args: []any{1.0, 0.0}},
		Op{Name: "bogus"},
	)
	require.Error(t, err)
	assert.True(t, sq.Path().Equal(before), "no op should run when one is invalid")
}

func TestParseOps(t *testing.T) {
	ops, err := ParseOps([]byte(`{
		"ops": [
			{"op": "shift", "args": [1, 0]},
			{"op": "rotate", "args": [1.5707963267948966]},
			{"op": "set_stroke", "args": ["#58C4DD"]}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, OpShift, ops[0].Name)
	assert.Equal(t, []any{1.0, 0.0}, ops[0].Args)

	sq := NewSquare("s", 2)
	require.NoError(t, sq.Apply(ops...))
	assert.True(t, sq.Center().ApproxEqual(geom.Pt(1, 0), 1e-9))
	assert.Equal(t, colorspace.MustHex("#58C4DD"), sq.Style.Stroke)
}

func TestParseOpsErrors(t *testing.T) {
	_, err := ParseOps([]byte(`not json`))
	assert.True(t, errors.Is(err, ErrValidation), "err = %v", err)

	_, err = ParseOps([]byte(`{"ops": [{"op": "teleport"}]}`))
	assert.True(t, errors.Is(err, ErrValue), "err = %v", err)

	_, err = ParseOps([]byte(`{"ops": [{"op": "scale", "args": [true]}]}`))
	assert.True(t, errors.Is(err, ErrType), "err = %v", err)
}

func TestAnimateBuilder(t *testing.T) {
	sq := NewSquare("sq", 2)
	red := colorspace.MustHex("#FF0000")

	b := Animate(sq).Shift(geom.Pt(3, 0)).Scale(0.5).SetStroke(red)
	require.Len(t, b.Ops(), 3)

	cfg := DefaultAnimConfig()
	cfg.Rate = Linear
	a, err := b.Build(cfg)
	require.NoError(t, err)
	assert.True(t, sq.Center().ApproxEqual(geom.Origin, 1e-9), "Build should not move the node")

	a.Begin()
	a.Step(0.5)
	assert.True(t, sq.Center().ApproxEqual(geom.Pt(1.5, 0), 1e-9), "center = %v", sq.Center())
	a.Step(0.5)
	assert.True(t, sq.Center().ApproxEqual(geom.Pt(3, 0), 1e-9))
	assert.InDelta(t, 1.0, sq.Width(), 1e-9)
	assert.True(t, sq.Style.Stroke.ApproxEqual(red, 1e-9))
}

func TestAnimateBuilderError(t *testing.T) {
	_, err := Animate(NewSquare("s", 1)).Op(Op{Name: OpRotate, Args: []any{"left"}}).Build(DefaultAnimConfig())
	assert.True(t, errors.Is(err, ErrType), "err = %v", err)
}
