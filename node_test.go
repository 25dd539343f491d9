package kinema

import (
	"testing"

	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/geom"
)

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.HasPath() {
		t.Error("plain node should have no path")
	}
	if n.Style != DefaultStyle() {
		t.Errorf("Style = %+v, want default", n.Style)
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewSquare("c", 1)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildAgainMovesToEnd(t *testing.T) {
	p := NewNode("p")
	a, b := NewNode("a"), NewNode("b")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(a)

	if p.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", p.NumChildren())
	}
	if p.ChildAt(0) != b || p.ChildAt(1) != a {
		t.Error("re-added child should move to the end")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	a.AddChild(b)
	b.AddChild(c)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on cycle")
		}
	}()
	c.AddChild(a)
}

func TestAddChildSelfPanics(t *testing.T) {
	a := NewNode("a")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding node to itself")
		}
	}()
	a.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewNode("p").AddChild(nil)
}

func TestAddChildAt(t *testing.T) {
	p := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)

	for i, want := range []*Node{a, b, c} {
		if p.ChildAt(i) != want {
			t.Errorf("ChildAt(%d) = %q, want %q", i, p.ChildAt(i).Name, want.Name)
		}
	}
}

func TestAddChildAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on bad index")
		}
	}()
	NewNode("p").AddChildAt(NewNode("c"), 3)
}

// --- Remove ---

func TestRemoveChild(t *testing.T) {
	p := NewNode("p")
	c := NewNode("c")
	p.AddChild(c)
	p.RemoveChild(c)

	if c.Parent != nil {
		t.Error("Parent should be nil after RemoveChild")
	}
	if p.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", p.NumChildren())
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	p := NewNode("p")
	other := NewNode("other")
	c := NewNode("c")
	other.AddChild(c)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic removing another node's child")
		}
	}()
	p.RemoveChild(c)
}

func TestRemoveChildAt(t *testing.T) {
	p := NewNode("p")
	a, b := NewNode("a"), NewNode("b")
	p.AddChild(a)
	p.AddChild(b)

	got := p.RemoveChildAt(0)
	if got != a {
		t.Error("RemoveChildAt(0) should return a")
	}
	if p.NumChildren() != 1 || p.ChildAt(0) != b {
		t.Error("b should remain as the only child")
	}
}

func TestRemoveFromParentNoParent(t *testing.T) {
	NewNode("orphan").RemoveFromParent() // should not panic
}

func TestRemoveChildren(t *testing.T) {
	p := NewNode("p")
	a, b := NewNode("a"), NewNode("b")
	p.AddChild(a)
	p.AddChild(b)
	p.RemoveChildren()

	if p.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", p.NumChildren())
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("children should have nil Parent")
	}
}

// --- Family ---

func TestFamilyPreOrder(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	d := NewNode("d")
	a.AddChild(b)
	b.AddChild(c)
	a.AddChild(d)

	fam := a.Family()
	want := []string{"a", "b", "c", "d"}
	if len(fam) != len(want) {
		t.Fatalf("len(Family) = %d, want %d", len(fam), len(want))
	}
	for i, n := range fam {
		if n.Name != want[i] {
			t.Errorf("Family[%d] = %q, want %q", i, n.Name, want[i])
		}
	}
}

func TestFamilyWithPathsSkipsEmptyNodes(t *testing.T) {
	g := NewGroup("g", NewSquare("s", 1), NewNode("empty"), NewCircle("c", 1))
	fam := g.FamilyWithPaths()
	if len(fam) != 2 {
		t.Fatalf("len = %d, want 2", len(fam))
	}
	if fam[0].Name != "s" || fam[1].Name != "c" {
		t.Errorf("got %q, %q", fam[0].Name, fam[1].Name)
	}
}

// --- Copy ---

func TestCopyIsIndependent(t *testing.T) {
	sq := NewSquare("sq", 2)
	sq.SetFill(colorspace.MustHex("#FF0000"))
	g := NewGroup("g", sq)

	c := g.Copy()
	if c.ID == g.ID {
		t.Error("copy should get a fresh ID")
	}
	if c.Parent != nil {
		t.Error("copy should have no parent")
	}
	if c.NumChildren() != 1 {
		t.Fatalf("copy NumChildren = %d, want 1", c.NumChildren())
	}
	csq := c.ChildAt(0)
	if csq == sq || csq.Parent != c {
		t.Error("child should be copied and parented to the copy")
	}
	if !csq.Path().Equal(sq.Path()) {
		t.Error("copied path should equal the original")
	}
	if csq.Style != sq.Style {
		t.Errorf("Style = %+v, want %+v", csq.Style, sq.Style)
	}

	csq.Shift(geom.Pt(5, 0))
	if sq.Path().Points()[0].X != 1 {
		t.Errorf("original moved with copy: X = %f", sq.Path().Points()[0].X)
	}
}

func TestCopyClonesTip(t *testing.T) {
	a := NewArrow("a", geom.Pt(0, 0), geom.Pt(4, 0))
	c := a.Copy()
	if c.Tip == nil || c.Tip == a.Tip || c.Tip.Path == a.Tip.Path {
		t.Fatal("tip should be deep copied")
	}
	c.Shift(geom.Pt(0, 1))
	if a.Tip.Path.Points()[0].Y != 0 {
		t.Error("original tip moved with copy")
	}
}

// --- Style setters ---

func TestSetOpacityWholeSubtree(t *testing.T) {
	g := NewGroup("g", NewSquare("a", 1), NewSquare("b", 1))
	g.SetOpacity(0.25)
	for _, n := range g.Family() {
		if n.Style.Stroke.A() != 0.25 {
			t.Errorf("%s stroke alpha = %f, want 0.25", n.Name, n.Style.Stroke.A())
		}
	}
	if g.Opacity() != 0.25 {
		t.Errorf("Opacity = %f, want 0.25", g.Opacity())
	}
}

func TestSetStrokeWidth(t *testing.T) {
	g := NewGroup("g", NewSquare("a", 1))
	g.SetStrokeWidth(7)
	if g.ChildAt(0).Style.StrokeWidth != 7 {
		t.Errorf("StrokeWidth = %f, want 7", g.ChildAt(0).Style.StrokeWidth)
	}
}

// --- Updaters ---

func TestSuspendResumeUpdating(t *testing.T) {
	calls := 0
	child := NewNode("child")
	child.OnUpdate = func(*Node, float64) { calls++ }
	parent := NewGroup("parent", child)

	parent.update(0.1)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	parent.SuspendUpdating()
	if !child.UpdatingSuspended() {
		t.Error("child should be suspended")
	}
	parent.update(0.1)
	if calls != 1 {
		t.Errorf("calls = %d while suspended, want 1", calls)
	}

	parent.ResumeUpdating()
	parent.update(0.1)
	if calls != 2 {
		t.Errorf("calls = %d after resume, want 2", calls)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	p := NewNode("p")
	c := NewSquare("c", 1)
	gc := NewNode("gc")
	p.AddChild(c)
	c.AddChild(gc)

	c.Dispose()
	if !c.IsDisposed() || !gc.IsDisposed() {
		t.Error("node and descendants should be disposed")
	}
	if p.NumChildren() != 0 {
		t.Error("disposed node should be removed from parent")
	}
	if c.HasPath() {
		t.Error("disposed node should drop its path")
	}
	c.Dispose() // second call is a no-op
}
