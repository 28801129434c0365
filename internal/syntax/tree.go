package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Tree is the parsed syntax tree of one source file.
// It is read-only for the analyzer: traversal never mutates it, and no node
// is shared across trees.
type Tree struct {
	path string
	src  []byte
	tree *sitter.Tree
}

// Path returns the source file path this tree was parsed from.
func (t *Tree) Path() string {
	return t.path
}

// Root returns the root node of the tree.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Text returns the source text covered by the given node.
func (t *Tree) Text(n *sitter.Node) string {
	return n.Content(t.src)
}

// HasSyntaxError reports whether the tree contains parse errors.
// tree-sitter recovers from malformed input, so a tree with errors is still
// traversable; callers decide whether to warn or abort.
func (t *Tree) HasSyntaxError() bool {
	return t.tree.RootNode().HasError()
}

// Close releases the tree-sitter resources owned by this tree.
func (t *Tree) Close() {
	t.tree.Close()
}
