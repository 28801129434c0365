package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
	"github.com/SnowSquire/function-type-analyzer/internal/syntax"
)

// Classify returns the classification for one function-like node.
// It is a total, deterministic function of the node's subtree: no I/O, no
// retries, no recoverable errors.
//
// Two independent structural checks are combined with a logical OR:
//
//  1. containsMarkup: any markup node anywhere in the body subtree.
//  2. returnsMarkupDirectly: a top-level return statement whose expression
//     is directly a markup node (or, for an expression-bodied arrow, the
//     sole expression being markup).
//
// Check 2 is strictly narrower than check 1 and never changes the verdict
// today. It is kept on purpose: it is the explicit, auditable statement of
// the intended signal ("this function returns markup"), and a stricter
// future classifier can key off it alone once check 1 is tightened.
func Classify(fn Function) model.Classification {
	if containsMarkup(fn) || returnsMarkupDirectly(fn) {
		return model.MarkupProducing
	}
	return model.Plain
}

// containsMarkup reports whether any markup node appears anywhere in the
// function's body subtree, at any depth: nested expressions, callback
// arguments, conditional branches. Presence is enough; the markup does not
// have to sit on a return path, so markup passed as a plain argument to an
// unrelated call still counts.
//
// The traversal treats the whole subtree uniformly and does not stop at
// nested function definitions, so markup inside an inner function's body
// also flags the outer function. That imprecision is a known property of
// the heuristic, kept for compatibility; it trades precision for recall.
//
// A function with an empty body has nothing to find and stays plain.
func containsMarkup(fn Function) bool {
	body := syntax.Body(fn.Node)
	if body == nil {
		return false
	}

	found := false
	syntax.Walk(body, func(n *sitter.Node) syntax.WalkAction {
		if syntax.IsMarkup(n) {
			found = true
			return syntax.Stop
		}
		return syntax.Continue
	})
	return found
}

// returnsMarkupDirectly reports whether the function returns markup in the
// narrowest structural sense: a return statement among the body's immediate
// statements (nested blocks are not examined) whose expression is directly
// a markup node. For an arrow function with an expression body, the sole
// expression is tested instead. A parenthesized markup expression does not
// satisfy "directly"; containsMarkup still catches it.
func returnsMarkupDirectly(fn Function) bool {
	body := syntax.Body(fn.Node)
	if body == nil {
		return false
	}

	if fn.Kind == model.KindArrowExpression {
		return syntax.IsMarkup(body)
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if !syntax.IsReturn(stmt) {
			continue
		}
		if expr := syntax.ReturnExpression(stmt); expr != nil && syntax.IsMarkup(expr) {
			return true
		}
	}
	return false
}
