package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
)

// Node type names from the tree-sitter-typescript grammar.
// The grammar renamed "function" to "function_expression" in later
// releases; both spellings are accepted so the analyzer works with either
// vintage of the grammar.
const (
	nodeFunctionDeclaration = "function_declaration"
	nodeFunction            = "function"
	nodeFunctionExpression  = "function_expression"
	nodeArrowFunction       = "arrow_function"
	nodeStatementBlock      = "statement_block"
	nodeReturnStatement     = "return_statement"
	nodeVariableDeclarator  = "variable_declarator"

	nodeJSXElement            = "jsx_element"
	nodeJSXSelfClosingElement = "jsx_self_closing_element"
	nodeJSXFragment           = "jsx_fragment"
)

// markupNodeTypes lists the node types treated as markup: ordinary
// elements, self-closing elements, and fragments.
var markupNodeTypes = map[string]bool{
	nodeJSXElement:            true,
	nodeJSXSelfClosingElement: true,
	nodeJSXFragment:           true,
}

// FunctionKindOf resolves a node to one of the four function shapes.
// The second return value is false for every non-function node. Arrow
// functions are split by body shape: a statement_block body yields
// KindArrowBlock, anything else is a single-expression body.
func FunctionKindOf(n *sitter.Node) (model.FunctionKind, bool) {
	switch n.Type() {
	case nodeFunctionDeclaration:
		return model.KindDeclaration, true
	case nodeFunction, nodeFunctionExpression:
		return model.KindExpression, true
	case nodeArrowFunction:
		body := n.ChildByFieldName("body")
		if body != nil && body.Type() == nodeStatementBlock {
			return model.KindArrowBlock, true
		}
		return model.KindArrowExpression, true
	default:
		return 0, false
	}
}

// IsFunctionLike reports whether the node is one of the recognized
// function shapes.
func IsFunctionLike(n *sitter.Node) bool {
	_, ok := FunctionKindOf(n)
	return ok
}

// IsMarkup reports whether the node is a markup node.
func IsMarkup(n *sitter.Node) bool {
	return markupNodeTypes[n.Type()]
}

// IsReturn reports whether the node is a return statement.
func IsReturn(n *sitter.Node) bool {
	return n.Type() == nodeReturnStatement
}

// Body returns the body of a function-like node: the statement block, or
// for arrow functions with an expression body, the expression itself.
// Returns nil if the node has no body field.
func Body(n *sitter.Node) *sitter.Node {
	return n.ChildByFieldName("body")
}

// ReturnExpression returns the expression of a return statement, or nil
// for a bare `return;`.
func ReturnExpression(n *sitter.Node) *sitter.Node {
	if n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}

// DeclaratorName returns the name of the variable declarator the node is
// bound to, or nil when the node's parent is not a declarator. Used to
// name arrow functions and function expressions assigned to variables.
func DeclaratorName(n *sitter.Node) *sitter.Node {
	parent := n.Parent()
	if parent == nil || parent.Type() != nodeVariableDeclarator {
		return nil
	}
	return parent.ChildByFieldName("name")
}
