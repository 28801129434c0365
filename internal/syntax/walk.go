package syntax

import sitter "github.com/smacker/go-tree-sitter"

// WalkAction is the control value a visitor returns to steer traversal.
//
// Design decision: We use an explicit control value rather than error
// sentinels (the filepath.WalkDir style) because skipping a subtree is a
// normal outcome here, not a failure, and traversal itself cannot fail.
type WalkAction int

const (
	// Continue proceeds into the node's children.
	Continue WalkAction = iota

	// SkipSubtree skips the node's children but continues with its
	// siblings.
	SkipSubtree

	// Stop ends the traversal immediately.
	Stop
)

// Walk performs a pre-order depth-first traversal of the subtree rooted at
// n, visiting named nodes only. The visitor's return value controls
// descent. Traversal is read-only and has no failure mode.
func Walk(n *sitter.Node, visit func(*sitter.Node) WalkAction) {
	walk(n, visit)
}

func walk(n *sitter.Node, visit func(*sitter.Node) WalkAction) WalkAction {
	switch visit(n) {
	case Stop:
		return Stop
	case SkipSubtree:
		return Continue
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if walk(n.NamedChild(i), visit) == Stop {
			return Stop
		}
	}
	return Continue
}
