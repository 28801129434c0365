package model

import "fmt"

// Classification is the binary verdict assigned to one function-like node.
// It is derived from the node's subtree, never stored on the tree itself.
type Classification int

const (
	// Plain marks a function that shows no sign of producing markup.
	Plain Classification = iota

	// MarkupProducing marks a function whose subtree contains markup or
	// that directly returns a markup node. The subtree check is a
	// deliberate over-approximation: markup appearing anywhere in the
	// body, even as an argument to an unrelated call or inside a nested
	// function definition, triggers this verdict.
	MarkupProducing
)

// String returns the human-readable name of the classification.
func (c Classification) String() string {
	switch c {
	case Plain:
		return "plain"
	case MarkupProducing:
		return "markup_producing"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// MarshalJSON encodes the classification as its string name.
func (c Classification) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}
