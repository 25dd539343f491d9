package kinema

import (
	"github.com/jinzhu/copier"

	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/geom"
	"github.com/phanxgames/kinema/internal/diag"
)

// nodeIDCounter is a plain counter (no atomic, kinema is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Tip decorates a path node with a filled arrowhead. The tip path moves
// with the node under every transform and is animated alongside the node's
// own path.
type Tip struct {
	Path    *geom.Path
	Length  float64
	AtStart bool
}

func (t *Tip) clone() *Tip {
	c := *t
	if t.Path != nil {
		c.Path = t.Path.Clone()
	}
	return &c
}

// Node is the scene tree element. A node may own a Path, which together with
// Style is everything a rasterizer needs to draw it. Children are drawn in
// insertion order, back to front.
type Node struct {
	// Identity
	ID   uint32 `copier:"-"`
	Name string

	// Hierarchy
	Parent   *Node `copier:"-"`
	children []*Node

	// Geometry and paint
	path    *geom.Path
	Style   Style
	Tip     *Tip `copier:"-"`
	Visible bool

	// OnUpdate runs once per Scene.Update while the node is on stage and
	// updating is not suspended.
	OnUpdate func(n *Node, dt float64)

	UserData any

	suspended bool
	disposed  bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Style = DefaultStyle()
	n.Visible = true
}

// NewNode creates a node without geometry. Use it to group other nodes.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewGroup creates a node holding children in order.
func NewGroup(name string, children ...*Node) *Node {
	n := NewNode(name)
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// NewPathNode creates a node owning p. The node takes ownership of p.
func NewPathNode(name string, p *geom.Path) *Node {
	n := NewNode(name)
	n.path = p
	return n
}

// Path returns the node's path, or nil when it has none.
func (n *Node) Path() *geom.Path {
	return n.path
}

// SetPath replaces the node's path. nil removes it.
func (n *Node) SetPath(p *geom.Path) {
	n.path = p
}

// HasPath reports whether the node owns a path.
func (n *Node) HasPath() bool {
	return n.path != nil
}

// paths returns the node's own path followed by its tip path, skipping nil
// ones.
func (n *Node) paths() []*geom.Path {
	var out []*geom.Path
	if n.path != nil {
		out = append(out, n.path)
	}
	if n.Tip != nil && n.Tip.Path != nil {
		out = append(out, n.Tip.Path)
	}
	return out
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("kinema: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("kinema: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("kinema: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("kinema: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("kinema: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("kinema: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("kinema: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Family returns n and all of its descendants in pre-order.
func (n *Node) Family() []*Node {
	var out []*Node
	n.walk(func(m *Node) { out = append(out, m) })
	return out
}

// FamilyWithPaths is Family restricted to nodes that own a path or a tip.
// Animations pair members in this order.
func (n *Node) FamilyWithPaths() []*Node {
	var out []*Node
	n.walk(func(m *Node) {
		if len(m.paths()) > 0 {
			out = append(out, m)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

// --- Copying ---

// Copy returns a deep copy of the subtree rooted at n. The copy has fresh
// IDs, no parent, and shares no paths with n.
func (n *Node) Copy() *Node {
	c := &Node{}
	if err := copier.CopyWithOption(c, n, copier.Option{CaseSensitive: true}); err != nil {
		diag.Logger().Error("kinema: copy node", "node", n.Name, "err", err)
	}
	c.ID = nextNodeID()
	if n.path != nil {
		c.path = n.path.Clone()
	}
	if n.Tip != nil {
		c.Tip = n.Tip.clone()
	}
	c.suspended = n.suspended
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, ch := range n.children {
			cc := ch.Copy()
			cc.Parent = c
			c.children[i] = cc
		}
	}
	return c
}

// --- Style ---

// SetFill sets the fill color of every node in the subtree.
func (n *Node) SetFill(c colorspace.Color) {
	n.walk(func(m *Node) { m.Style.Fill = c })
}

// SetStroke sets the stroke color of every node in the subtree.
func (n *Node) SetStroke(c colorspace.Color) {
	n.walk(func(m *Node) { m.Style.Stroke = c })
}

// SetStrokeWidth sets the stroke width of every node in the subtree.
func (n *Node) SetStrokeWidth(w float64) {
	n.walk(func(m *Node) { m.Style.StrokeWidth = w })
}

// SetOpacity sets fill and stroke alpha of every node in the subtree.
func (n *Node) SetOpacity(a float64) {
	n.walk(func(m *Node) { m.Style = m.Style.WithOpacity(a) })
}

// Opacity returns the node's own opacity (see Style.Opacity).
func (n *Node) Opacity() float64 {
	return n.Style.Opacity()
}

// --- Updaters ---

// SuspendUpdating stops OnUpdate callbacks for the whole subtree.
func (n *Node) SuspendUpdating() {
	n.walk(func(m *Node) { m.suspended = true })
}

// ResumeUpdating re-enables OnUpdate callbacks for the whole subtree.
func (n *Node) ResumeUpdating() {
	n.walk(func(m *Node) { m.suspended = false })
}

// UpdatingSuspended reports whether this node's OnUpdate is suspended.
func (n *Node) UpdatingSuspended() bool {
	return n.suspended
}

// update runs OnUpdate callbacks in pre-order.
func (n *Node) update(dt float64) {
	n.walk(func(m *Node) {
		if m.OnUpdate != nil && !m.suspended {
			m.OnUpdate(m, dt)
		}
	})
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.path = nil
	n.Tip = nil
	n.OnUpdate = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
