package kinema

import (
	"fmt"

	"github.com/phanxgames/kinema/internal/diag"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("kinema debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		diag.Logger().Warn("kinema: tree too deep",
			"node", n.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns if a node has more than 1000 children.
func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		diag.Logger().Warn("kinema: too many children",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
