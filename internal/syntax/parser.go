package syntax

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// DefaultMaxFileSize limits the size of a single source file.
// 5MB is generous for hand-written TypeScript while preventing memory
// exhaustion from generated bundles that slipped past the exclude list.
const DefaultMaxFileSize = 5 * 1024 * 1024

// Parsing errors returned by Parser.Parse. Callers can match them with
// errors.Is; all of them abort the run at the top level.
var (
	// ErrFileTooLarge is returned when a source file exceeds the
	// configured maximum file size.
	ErrFileTooLarge = errors.New("source file exceeds maximum size")

	// ErrInvalidContent is returned when a source file is not valid UTF-8.
	ErrInvalidContent = errors.New("source file is not valid UTF-8")
)

// Parser parses TypeScript and TSX sources into syntax trees.
//
// Parser instances are safe for concurrent use: each Parse call creates its
// own tree-sitter parser internally, so multiple goroutines may parse
// different files through the same Parser.
type Parser struct {
	// maxFileSize is the largest source file Parse will accept, in bytes.
	maxFileSize int64
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxFileSize sets the maximum file size the parser will accept.
// Non-positive values are ignored.
func WithMaxFileSize(bytes int64) Option {
	return func(p *Parser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses the given source into a Tree. The grammar is selected by the
// file extension: .tsx files use the TSX grammar (JSX enabled), everything
// else uses the plain TypeScript grammar.
//
// The returned Tree owns tree-sitter resources; callers must Close it.
func (p *Parser) Parse(ctx context.Context, path string, src []byte) (*Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}

	if int64(len(src)) > p.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrFileTooLarge, path, len(src), p.maxFileSize)
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContent, path)
	}

	// New tree-sitter parser per call for thread safety.
	parser := sitter.NewParser()
	if strings.HasSuffix(path, ".tsx") {
		parser.SetLanguage(tsx.GetLanguage())
	} else {
		parser.SetLanguage(typescript.GetLanguage())
	}

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed for %s: %w", path, err)
	}

	if tree.RootNode() == nil {
		tree.Close()
		return nil, fmt.Errorf("tree-sitter returned no root node for %s", path)
	}

	return &Tree{
		path: path,
		src:  src,
		tree: tree,
	}, nil
}
