package kinema

import "github.com/phanxgames/kinema/geom"

// alignNodes makes a and b structurally identical so their families can be
// blended member by member: child lists are padded to equal length, every
// node gets a path (and tip) when its counterpart has one, and paired paths
// are aligned with geom.Align. Both trees are modified.
func alignNodes(a, b *Node) {
	for len(a.children) < len(b.children) {
		a.AddChild(padNode(b.children[len(a.children)]))
	}
	for len(b.children) < len(a.children) {
		b.AddChild(padNode(a.children[len(b.children)]))
	}

	a.path, b.path = alignPaths(a.path, b.path)

	switch {
	case a.Tip == nil && b.Tip != nil:
		a.Tip = &Tip{Length: b.Tip.Length, AtStart: b.Tip.AtStart}
	case b.Tip == nil && a.Tip != nil:
		b.Tip = &Tip{Length: a.Tip.Length, AtStart: a.Tip.AtStart}
	}
	if a.Tip != nil {
		a.Tip.Path, b.Tip.Path = alignPaths(a.Tip.Path, b.Tip.Path)
	}

	for i := range a.children {
		alignNodes(a.children[i], b.children[i])
	}
}

// alignPaths gives a missing side an empty path, which geom.Align then
// collapses onto the other side's center.
func alignPaths(p, q *geom.Path) (*geom.Path, *geom.Path) {
	if p == nil && q == nil {
		return nil, nil
	}
	if p == nil {
		p = geom.NewPath()
	}
	if q == nil {
		q = geom.NewPath()
	}
	return geom.Align(p, q)
}

// padNode is an empty stand-in for like, painted the same way.
func padNode(like *Node) *Node {
	n := NewNode(like.Name)
	n.Style = like.Style
	return n
}
