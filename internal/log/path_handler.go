package log

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// PathHandler wraps an slog.Handler and rewrites absolute file paths under
// the scan root to root-relative form. Log output then stays stable across
// machines and checkouts, which keeps diagnostics readable and makes log
// assertions in tests independent of the temp directory layout.
//
// Design decision: We use a handler wrapper rather than shortening paths
// at every call site because it integrates with standard slog APIs and
// works with any underlying handler (text, JSON, etc.).
type PathHandler struct {
	// handler is the underlying slog handler that receives rewritten
	// records.
	handler slog.Handler

	// root is the absolute scan root paths are made relative to.
	root string
}

// NewPathHandler creates a PathHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. If root is empty,
// records pass through unchanged.
func NewPathHandler(handler slog.Handler, root string) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PathHandler{handler: handler, root: root}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying
// handler.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are rewritten before being added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), root: h.root}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), root: h.root}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *PathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}

	if h.root == "" || a.Value.Kind() != slog.KindString {
		return a
	}

	val := a.Value.String()
	if val == h.root {
		return slog.String(a.Key, ".")
	}
	if strings.HasPrefix(val, h.root+string(filepath.Separator)) {
		if rel, err := filepath.Rel(h.root, val); err == nil {
			return slog.String(a.Key, rel)
		}
	}

	return a
}
