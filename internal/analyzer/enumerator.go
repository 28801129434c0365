package analyzer

import (
	"iter"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
	"github.com/SnowSquire/function-type-analyzer/internal/syntax"
)

// Function couples a function-like node with its resolved kind and name.
// The node pointer gives each function a distinct identity, so nested and
// enclosing functions are distinguishable even when they share a name.
type Function struct {
	// Node is the underlying syntax node.
	Node *sitter.Node

	// Kind is the syntactic shape of the function.
	Kind model.FunctionKind

	// Name is the resolved symbolic name, or model.AnonymousName.
	Name string
}

// Functions returns a lazy pre-order sequence of every function-like node
// in the tree: declarations, function expressions, and arrow functions,
// at any nesting depth. Enclosing functions are yielded before the
// functions nested inside them, in source order.
//
// Every function-like construct is its own unit of classification. The
// enumerator therefore keeps descending into function bodies rather than
// skipping them: a callback inside a callback inside an object literal is
// still counted.
//
// The sequence is restartable; ranging over it again re-walks the tree.
func Functions(tree *syntax.Tree) iter.Seq[Function] {
	return func(yield func(Function) bool) {
		syntax.Walk(tree.Root(), func(n *sitter.Node) syntax.WalkAction {
			kind, ok := syntax.FunctionKindOf(n)
			if !ok {
				return syntax.Continue
			}
			if !yield(Function{Node: n, Kind: kind, Name: functionName(tree, n)}) {
				return syntax.Stop
			}
			return syntax.Continue
		})
	}
}

// functionName resolves the best available name for a function-like node:
// the declared name, the name of the variable declarator it is assigned
// to, or the anonymous placeholder.
func functionName(tree *syntax.Tree, n *sitter.Node) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return tree.Text(name)
	}
	if name := syntax.DeclaratorName(n); name != nil {
		return tree.Text(name)
	}
	return model.AnonymousName
}
