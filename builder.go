package kinema

import (
	"encoding/json"
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/geom"
)

// Operation names accepted by Node.Apply.
const (
	OpShift          = "shift"
	OpScale          = "scale"
	OpRotate         = "rotate"
	OpApplyMatrix    = "apply_matrix"
	OpSetFill        = "set_fill"
	OpSetStroke      = "set_stroke"
	OpSetOpacity     = "set_opacity"
	OpSetStrokeWidth = "set_stroke_width"
)

// Op is one named operation with its arguments. Arguments are either typed
// values (geom.Point, f64.Mat3, colorspace.Color) or the plain numbers and
// strings that come out of JSON:
//
//	shift            Point | x, y [, z]
//	scale            factor [, about Point]
//	rotate           radians [, about Point]
//	apply_matrix     Mat3 | 9 numbers, row-major
//	set_fill         Color | "#RRGGBB[AA]"
//	set_stroke       Color | "#RRGGBB[AA]"
//	set_opacity      alpha
//	set_stroke_width width
type Op struct {
	Name string `json:"op"`
	Args []any  `json:"args,omitempty"`
}

// Apply runs ops on the subtree in order. Every op is checked before any is
// applied: an unknown name fails with ErrValue, arguments of the wrong kind
// or count with ErrType, and malformed colors with ErrValidation.
func (n *Node) Apply(ops ...Op) error {
	fns := make([]func(*Node), len(ops))
	for i, op := range ops {
		fn, err := compileOp(op)
		if err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
		fns[i] = fn
	}
	for _, fn := range fns {
		fn(n)
	}
	return nil
}

func compileOp(op Op) (func(*Node), error) {
	args := op.Args
	switch op.Name {
	case OpShift:
		v, err := pointArg(op.Name, args)
		if err != nil {
			return nil, err
		}
		return func(n *Node) { n.Shift(v) }, nil

	case OpScale, OpRotate:
		if len(args) != 1 && len(args) != 2 {
			return nil, argCountError(op.Name, "1 or 2", len(args))
		}
		x, err := numberArg(op.Name, args[0])
		if err != nil {
			return nil, err
		}
		var about *geom.Point
		if len(args) == 2 {
			p, err := pointArg(op.Name, args[1:])
			if err != nil {
				return nil, err
			}
			about = &p
		}
		return func(n *Node) {
			c := n.Center()
			if about != nil {
				c = *about
			}
			if op.Name == OpScale {
				n.ScaleAbout(x, c)
			} else {
				n.RotateAbout(x, c)
			}
		}, nil

	case OpApplyMatrix:
		m, err := matrixArg(op.Name, args)
		if err != nil {
			return nil, err
		}
		return func(n *Node) { n.ApplyMatrix(m, geom.Origin) }, nil

	case OpSetFill, OpSetStroke:
		if len(args) != 1 {
			return nil, argCountError(op.Name, "1", len(args))
		}
		c, err := colorArg(op.Name, args[0])
		if err != nil {
			return nil, err
		}
		if op.Name == OpSetFill {
			return func(n *Node) { n.SetFill(c) }, nil
		}
		return func(n *Node) { n.SetStroke(c) }, nil

	case OpSetOpacity, OpSetStrokeWidth:
		if len(args) != 1 {
			return nil, argCountError(op.Name, "1", len(args))
		}
		x, err := numberArg(op.Name, args[0])
		if err != nil {
			return nil, err
		}
		if op.Name == OpSetOpacity {
			return func(n *Node) { n.SetOpacity(x) }, nil
		}
		return func(n *Node) { n.SetStrokeWidth(x) }, nil
	}
	return nil, fmt.Errorf("%w: unknown operation %q", ErrValue, op.Name)
}

func argCountError(name, want string, got int) error {
	return fmt.Errorf("%w: %s takes %s arguments, got %d", ErrType, name, want, got)
}

func numberArg(name string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrType, name, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %s wants a number, got %T", ErrType, name, v)
}

// pointArg accepts a single geom.Point or 2-3 numbers.
func pointArg(name string, args []any) (geom.Point, error) {
	if len(args) == 1 {
		if p, ok := args[0].(geom.Point); ok {
			return p, nil
		}
		if nums, ok := args[0].([]any); ok {
			return pointArg(name, nums)
		}
	}
	if len(args) != 2 && len(args) != 3 {
		return geom.Point{}, fmt.Errorf("%w: %s wants a point or 2-3 numbers, got %d arguments", ErrType, name, len(args))
	}
	var xyz [3]float64
	for i, a := range args {
		f, err := numberArg(name, a)
		if err != nil {
			return geom.Point{}, err
		}
		xyz[i] = f
	}
	return geom.Pt3(xyz[0], xyz[1], xyz[2]), nil
}

func matrixArg(name string, args []any) (f64.Mat3, error) {
	if len(args) == 1 {
		if m, ok := args[0].(f64.Mat3); ok {
			return m, nil
		}
	}
	if len(args) != 9 {
		return f64.Mat3{}, fmt.Errorf("%w: %s wants a Mat3 or 9 numbers, got %d arguments", ErrType, name, len(args))
	}
	var m f64.Mat3
	for i, a := range args {
		f, err := numberArg(name, a)
		if err != nil {
			return f64.Mat3{}, err
		}
		m[i] = f
	}
	return m, nil
}

func colorArg(name string, v any) (colorspace.Color, error) {
	switch c := v.(type) {
	case colorspace.Color:
		return c, nil
	case string:
		return colorspace.ParseHex(c)
	}
	return colorspace.Color{}, fmt.Errorf("%w: %s wants a color, got %T", ErrType, name, v)
}

// opScript is the JSON layout read by ParseOps.
type opScript struct {
	Ops []Op `json:"ops"`
}

// ParseOps decodes and checks an operation script:
//
//	{"ops": [
//	  {"op": "shift", "args": [1, 0]},
//	  {"op": "set_fill", "args": ["#FC6255"]}
//	]}
func ParseOps(jsonData []byte) ([]Op, error) {
	var script opScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("%w: parse ops: %w", ErrValidation, err)
	}
	for i, op := range script.Ops {
		if _, err := compileOp(op); err != nil {
			return nil, fmt.Errorf("parse ops: op %d: %w", i, err)
		}
	}
	return script.Ops, nil
}

// AnimationBuilder records operations and turns them into a Transform
// from a node's current state to the state those operations produce.
//
//	anim, err := kinema.Animate(square).Shift(geom.Pt(2, 0)).SetFill(red).Build(cfg)
type AnimationBuilder struct {
	node *Node
	ops  []Op
}

// Animate starts a builder for node.
func Animate(node *Node) *AnimationBuilder {
	return &AnimationBuilder{node: node}
}

// Op appends an arbitrary operation.
func (b *AnimationBuilder) Op(op Op) *AnimationBuilder {
	b.ops = append(b.ops, op)
	return b
}

func (b *AnimationBuilder) Shift(v geom.Point) *AnimationBuilder {
	return b.Op(Op{Name: OpShift, Args: []any{v}})
}

func (b *AnimationBuilder) Scale(factor float64) *AnimationBuilder {
	return b.Op(Op{Name: OpScale, Args: []any{factor}})
}

func (b *AnimationBuilder) Rotate(angle float64) *AnimationBuilder {
	return b.Op(Op{Name: OpRotate, Args: []any{angle}})
}

func (b *AnimationBuilder) ApplyMatrix(m f64.Mat3) *AnimationBuilder {
	return b.Op(Op{Name: OpApplyMatrix, Args: []any{m}})
}

func (b *AnimationBuilder) SetFill(c colorspace.Color) *AnimationBuilder {
	return b.Op(Op{Name: OpSetFill, Args: []any{c}})
}

func (b *AnimationBuilder) SetStroke(c colorspace.Color) *AnimationBuilder {
	return b.Op(Op{Name: OpSetStroke, Args: []any{c}})
}

func (b *AnimationBuilder) SetOpacity(a float64) *AnimationBuilder {
	return b.Op(Op{Name: OpSetOpacity, Args: []any{a}})
}

func (b *AnimationBuilder) SetStrokeWidth(w float64) *AnimationBuilder {
	return b.Op(Op{Name: OpSetStrokeWidth, Args: []any{w}})
}

// Ops returns the recorded operations.
func (b *AnimationBuilder) Ops() []Op { return b.ops }

// Build applies the recorded operations to a copy of the node and returns a
// Transform toward that copy. The node itself is not changed until the
// animation runs.
func (b *AnimationBuilder) Build(cfg AnimConfig) (*Animation, error) {
	target := b.node.Copy()
	if err := target.Apply(b.ops...); err != nil {
		return nil, err
	}
	return Transform(b.node, target, cfg), nil
}
