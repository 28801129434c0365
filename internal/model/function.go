package model

import "fmt"

// FunctionKind identifies the syntactic shape of a function-like node.
// The set is closed: every function-like construct the analyzer recognizes
// falls into exactly one of these four shapes, and the shape determines how
// the body is read (statement block vs single expression).
//
// Design decision: We use iota-based constants rather than string constants
// so switches over the kind can be checked for exhaustiveness and so records
// are cheap to compare. The String() method provides human-readable output.
type FunctionKind int

const (
	// KindDeclaration is a named function declaration
	// (e.g. `function render() { ... }`).
	KindDeclaration FunctionKind = iota

	// KindExpression is an anonymous or named function expression
	// (e.g. `const f = function() { ... }`).
	KindExpression

	// KindArrowBlock is an arrow function whose body is a statement block
	// (e.g. `() => { return x; }`).
	KindArrowBlock

	// KindArrowExpression is an arrow function whose body is a single
	// expression (e.g. `() => x`). There is no statement block; the sole
	// expression is the implicit return value.
	KindArrowExpression
)

// String returns the human-readable name of the function kind.
func (k FunctionKind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindExpression:
		return "expression"
	case KindArrowBlock:
		return "arrow_block"
	case KindArrowExpression:
		return "arrow_expression"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MarshalJSON encodes the kind as its string name so JSON reports stay
// readable without a lookup table.
func (k FunctionKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// AnonymousName is the placeholder name recorded for function-like nodes
// that carry no symbolic name and are not bound to a variable declarator.
const AnonymousName = "(anonymous)"

// FunctionRecord is the classification entry for one function-like node.
// Nested functions produce their own records in addition to the record of
// the enclosing function.
type FunctionRecord struct {
	// Name is the function's symbolic name, the name of the variable it is
	// assigned to, or AnonymousName.
	Name string `json:"name"`

	// Kind is the syntactic shape of the function.
	Kind FunctionKind `json:"kind"`

	// File is the path of the source file the function was found in.
	File string `json:"file"`

	// Line is the 1-based line number of the function's first token.
	Line int `json:"line"`

	// Classification is the verdict assigned by the classifier.
	Classification Classification `json:"classification"`
}
