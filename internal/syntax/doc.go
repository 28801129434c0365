// Package syntax wraps tree-sitter parsing of TypeScript and TSX source
// files and exposes the node-kind predicates and traversal primitives the
// analyzer is built on. The analyzer never inspects grammar node type
// strings directly; everything it needs is behind this package's API.
package syntax
