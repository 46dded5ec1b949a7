// Package document implements the incremental document model of spec.md
// §4.5: a text buffer, its statement positions, and the diffing algorithm
// that keeps the positions in sync with a stream of range-scoped edits
// without a full re-split of the whole file on every keystroke.
package document

import (
	"strings"
	"unicode"

	"github.com/pgsql-ls/core/diag"
	"github.com/pgsql-ls/core/lexer"
	"github.com/pgsql-ls/core/splitter"
	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

// ID is a per-document, monotonically increasing statement identifier.
// Clients track statement identity across unrelated edits by this value.
type ID uint64

// Position pairs a statement id with the byte range the splitter currently
// assigns it.
type Position struct {
	ID    ID
	Kind  stmtkind.Kind
	Range token.Span
}

// StatementRef identifies a statement by (id, path) for change events.
type StatementRef struct {
	ID   ID
	Path string
}

// ChangeKind tags which StatementChange variant is populated.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeDeleted
	ChangeModified
)

// StatementChange is one of Added/Deleted/Modified, discriminated by Kind.
type StatementChange struct {
	Kind ChangeKind

	// Added
	AddedStmt StatementRef
	AddedText string

	// Deleted
	DeletedStmt StatementRef

	// Modified
	OldStmt     StatementRef
	OldText     string
	NewStmt     StatementRef
	NewText     string
	ChangeRange token.Span
	ChangeText  string
}

// Edit is a range-scoped text change. Range == nil replaces the entire
// document.
type Edit struct {
	Range *token.Span
	Text  string
}

func (e Edit) rangeLen() int {
	if e.Range == nil {
		return 0
	}
	return e.Range.Len()
}

// DiffSize is |len(text) - len(range)|.
func (e Edit) DiffSize() int {
	d := len(e.Text) - e.rangeLen()
	if d < 0 {
		return -d
	}
	return d
}

// diffSizeSigned is positive for an addition, negative for a deletion; used
// to translate positions after the edit.
func (e Edit) diffSizeSigned() int {
	return len(e.Text) - e.rangeLen()
}

func (e Edit) IsAddition() bool { return len(e.Text) > e.rangeLen() }
func (e Edit) IsDeletion() bool { return len(e.Text) < e.rangeLen() }

// IsWhitespace reports whether Text is non-empty and every codepoint in it
// is whitespace.
func (e Edit) IsWhitespace() bool {
	if e.Text == "" {
		return false
	}
	for _, r := range e.Text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ApplyToText returns the text that results from applying e to text.
func (e Edit) ApplyToText(text string) string {
	if e.Range == nil {
		return e.Text
	}
	var b strings.Builder
	b.WriteString(text[:e.Range.Start])
	b.WriteString(e.Text)
	b.WriteString(text[e.Range.End:])
	return b.String()
}

// ChangeFileParams is one apply() call's input: a version and an ordered
// batch of edits, applied in order.
type ChangeFileParams struct {
	Path    string
	Version int
	Changes []Edit
}

// Document holds text, statement positions, an id generator, and
// diagnostics, and applies edits against the splitter.
type Document struct {
	Path        string
	Version     int
	Text        string
	Positions   []Position
	Diagnostics []diag.Diagnostic

	opts   splitter.Options
	nextID ID
	lines  *LineIndex
}

// Open constructs a Document and runs an initial split.
func Open(path, text string, version int, opts splitter.Options) *Document {
	d := &Document{Path: path, opts: opts}
	d.applyFullChange(Edit{Text: text})
	d.Path = path
	d.Version = version
	return d
}

// Close is a no-op hook mirroring spec.md §6's document lifecycle; present
// so embeddings have a symmetric open/close pair to call even though this
// Document holds no external resources.
func (d *Document) Close() {}

func (d *Document) allocID() ID {
	d.nextID++
	return d.nextID
}

// LineIndex translates byte offsets to 0-based {line, column} pairs, the
// column counted in UTF-16 code units per LSP convention. It is built lazily
// and invalidated on every Apply.
func (d *Document) LineIndex() *LineIndex {
	if d.lines == nil {
		d.lines = buildLineIndex(d.Text)
	}
	return d.lines
}

func (d *Document) invalidateLineIndex() { d.lines = nil }

// Apply applies each edit in params.Changes in order, accumulating change
// events, and advances the version counter.
func (d *Document) Apply(params ChangeFileParams) []StatementChange {
	var events []StatementChange
	for _, e := range params.Changes {
		events = append(events, d.applyOne(e)...)
	}
	d.Path = params.Path
	d.Version = params.Version
	return events
}

func (d *Document) applyOne(e Edit) []StatementChange {
	d.invalidateLineIndex()
	if e.Range == nil {
		return d.applyFullChange(e)
	}
	return d.applyRangedEdit(e)
}

// applyFullChange implements spec.md §4.5's "Full replacement": emit Deleted
// for every existing position, replace the text, re-split; if the lexer
// reports a Fatal diagnostic, do not repopulate positions.
func (d *Document) applyFullChange(e Edit) []StatementChange {
	var events []StatementChange
	for _, p := range d.Positions {
		events = append(events, StatementChange{
			Kind:        ChangeDeleted,
			DeletedStmt: StatementRef{ID: p.ID, Path: d.Path},
		})
	}
	d.Positions = nil

	d.Text = e.ApplyToText(d.Text)

	tokens, diags := lexer.Lex(d.Text)
	d.Diagnostics = diags
	if diag.HasFatal(diags) {
		return events
	}

	ranges := splitter.SplitTokens(tokens, d.opts)
	for _, r := range ranges {
		id := d.allocID()
		pos := Position{ID: id, Kind: r.Kind, Range: r.Range}
		d.Positions = append(d.Positions, pos)
		events = append(events, StatementChange{
			Kind:      ChangeAdded,
			AddedStmt: StatementRef{ID: id, Path: d.Path},
			AddedText: d.Text[r.Range.Start:r.Range.End],
		})
	}
	return events
}
