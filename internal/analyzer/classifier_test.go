package analyzer

import (
	"context"
	"slices"
	"testing"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
	"github.com/SnowSquire/function-type-analyzer/internal/syntax"
)

// parseTSX parses TSX source for tests and closes the tree on cleanup.
func parseTSX(t *testing.T, src string) *syntax.Tree {
	t.Helper()

	tree, err := syntax.NewParser().Parse(context.Background(), "test.tsx", []byte(src))
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}
	t.Cleanup(tree.Close)

	return tree
}

// classifyAll parses the source and returns the classification of every
// enumerated function, in source order.
func classifyAll(t *testing.T, src string) []model.Classification {
	t.Helper()

	tree := parseTSX(t, src)
	var got []model.Classification
	for fn := range Functions(tree) {
		got = append(got, Classify(fn))
	}
	return got
}

// TestClassifyArrowExpressionMarkup tests an arrow function whose
// expression body is a markup element.
func TestClassifyArrowExpressionMarkup(t *testing.T) {
	t.Parallel()

	got := classifyAll(t, `const f = () => <div/>;`)

	if len(got) != 1 {
		t.Fatalf("expected 1 function, got %d", len(got))
	}
	if got[0] != model.MarkupProducing {
		t.Errorf("expected markup_producing, got %s", got[0])
	}
}

// TestClassifyPlainFunction tests a function with no markup anywhere.
func TestClassifyPlainFunction(t *testing.T) {
	t.Parallel()

	got := classifyAll(t, `function f(){ return 1 + 1; }`)

	if len(got) != 1 {
		t.Fatalf("expected 1 function, got %d", len(got))
	}
	if got[0] != model.Plain {
		t.Errorf("expected plain, got %s", got[0])
	}
}

// TestClassifyMarkupOffReturnPath tests that markup assigned to a local
// variable and never returned still flags the function. Presence in the
// subtree is enough; the classifier does not track return paths.
func TestClassifyMarkupOffReturnPath(t *testing.T) {
	t.Parallel()

	got := classifyAll(t, `function f(){ const x = <span/>; console.log(x); return null; }`)

	if len(got) != 1 {
		t.Fatalf("expected 1 function, got %d", len(got))
	}
	if got[0] != model.MarkupProducing {
		t.Errorf("expected markup_producing, got %s", got[0])
	}
}

// TestClassifyNestedFunctionMarkupFlagsOuter tests that markup inside a
// nested function's body flags the outer function too, even though the
// outer function returns a number. Both functions are enumerated and both
// are classified markup-producing.
func TestClassifyNestedFunctionMarkupFlagsOuter(t *testing.T) {
	t.Parallel()

	src := `function outer(){ function inner(){ return <p/>; } return 0; }`
	tree := parseTSX(t, src)

	var names []string
	var classes []model.Classification
	for fn := range Functions(tree) {
		names = append(names, fn.Name)
		classes = append(classes, Classify(fn))
	}

	if len(names) != 2 {
		t.Fatalf("expected 2 functions, got %d (%v)", len(names), names)
	}
	if names[0] != "outer" || names[1] != "inner" {
		t.Errorf("expected [outer inner], got %v", names)
	}
	if classes[0] != model.MarkupProducing {
		t.Errorf("outer: expected markup_producing, got %s", classes[0])
	}
	if classes[1] != model.MarkupProducing {
		t.Errorf("inner: expected markup_producing, got %s", classes[1])
	}
}

// TestClassifyEmptyBody tests that a function with an empty body is plain.
func TestClassifyEmptyBody(t *testing.T) {
	t.Parallel()

	t.Run("declaration", func(t *testing.T) {
		t.Parallel()

		got := classifyAll(t, `function f(){}`)
		if len(got) != 1 || got[0] != model.Plain {
			t.Errorf("expected [plain], got %v", got)
		}
	})

	t.Run("arrow with block body", func(t *testing.T) {
		t.Parallel()

		got := classifyAll(t, `const f = () => {};`)
		if len(got) != 1 || got[0] != model.Plain {
			t.Errorf("expected [plain], got %v", got)
		}
	})
}

// TestClassifyConditionalMarkup tests that markup returned in only some
// branches still classifies the function as markup-producing.
func TestClassifyConditionalMarkup(t *testing.T) {
	t.Parallel()

	src := `function f(c: boolean){ if (c) { return <div/>; } return null; }`
	got := classifyAll(t, src)

	if len(got) != 1 {
		t.Fatalf("expected 1 function, got %d", len(got))
	}
	if got[0] != model.MarkupProducing {
		t.Errorf("expected markup_producing, got %s", got[0])
	}
}

// TestClassifyMarkupAsArgument tests the over-approximation: markup passed
// as an argument to an unrelated call, never returned, still flags the
// function.
func TestClassifyMarkupAsArgument(t *testing.T) {
	t.Parallel()

	got := classifyAll(t, `function f(){ render(<div/>); }`)

	if len(got) != 1 {
		t.Fatalf("expected 1 function, got %d", len(got))
	}
	if got[0] != model.MarkupProducing {
		t.Errorf("expected markup_producing, got %s", got[0])
	}
}

// TestClassifyMarkupShapes tests that all three markup shapes are
// detected: elements, self-closing elements, and fragments.
func TestClassifyMarkupShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"element", `const f = () => { return <div>hello</div>; };`},
		{"self-closing element", `const f = () => { return <br/>; };`},
		{"fragment", `const f = () => { return <>text</>; };`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyAll(t, tt.src)
			if len(got) != 1 || got[0] != model.MarkupProducing {
				t.Errorf("expected [markup_producing], got %v", got)
			}
		})
	}
}

// TestClassifyFunctionExpression tests a markup-returning function
// expression assigned to a variable.
func TestClassifyFunctionExpression(t *testing.T) {
	t.Parallel()

	got := classifyAll(t, `const render = function(){ return <section/>; };`)

	if len(got) != 1 {
		t.Fatalf("expected 1 function, got %d", len(got))
	}
	if got[0] != model.MarkupProducing {
		t.Errorf("expected markup_producing, got %s", got[0])
	}
}

// TestClassifyIsDeterministic tests that classifying the same node twice
// yields the same result.
func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	src := `
function a(){ return <div/>; }
function b(){ return 42; }
const c = () => <span/>;
`
	tree := parseTSX(t, src)
	fns := slices.Collect(Functions(tree))

	for i, fn := range fns {
		first := Classify(fn)
		second := Classify(fn)
		if first != second {
			t.Errorf("function %d: classification changed between runs: %s then %s", i, first, second)
		}
	}
}

// TestClassifyCountsSumToTotal tests that every enumerated function gets
// exactly one of the two classifications.
func TestClassifyCountsSumToTotal(t *testing.T) {
	t.Parallel()

	src := `
function page(){ return <main><h1>hi</h1></main>; }
function helper(n: number){ return n * 2; }
const widget = () => <aside/>;
const noop = () => {};
const id = (x: string) => x;
export function list(items: string[]){
	return items.map((item) => <li key={item}>{item}</li>);
}
`
	tree := parseTSX(t, src)

	var markup, plain, total int
	for fn := range Functions(tree) {
		total++
		switch Classify(fn) {
		case model.MarkupProducing:
			markup++
		case model.Plain:
			plain++
		}
	}

	if total == 0 {
		t.Fatal("expected functions to be enumerated")
	}
	if markup+plain != total {
		t.Errorf("markup (%d) + plain (%d) != total (%d)", markup, plain, total)
	}
}
