package document

import (
	"github.com/pgsql-ls/core/diag"
	"github.com/pgsql-ls/core/lexer"
	"github.com/pgsql-ls/core/splitter"
	"github.com/pgsql-ls/core/token"
)

// affected computes the window spec.md §4.5 calls the "affected window":
// the union of every existing range intersecting the edit's range, plus the
// indices of those positions and their immediate neighbors.
type affected struct {
	indices  []int // indices into d.Positions intersecting editRange
	prevIdx  int   // index of the statement immediately before the window, or -1
	nextIdx  int   // index of the statement immediately after the window, or -1
	fullSpan token.Span
}

func intersects(r token.Span, e token.Span) bool {
	if e.Start == e.End {
		// Pure insertion point: counts as touching a statement if it falls
		// strictly inside it, or exactly at either boundary.
		return r.Start <= e.Start && e.Start <= r.End
	}
	return r.Start < e.End && e.Start < r.End
}

func (d *Document) getAffected(editRange token.Span) affected {
	a := affected{prevIdx: -1, nextIdx: -1}
	for i, p := range d.Positions {
		if intersects(p.Range, editRange) {
			a.indices = append(a.indices, i)
		}
	}
	if len(a.indices) == 0 {
		// No-statement window: the edit lies strictly between statements.
		// Expand to include the previous and next statements.
		for i, p := range d.Positions {
			if p.Range.End <= editRange.Start {
				a.prevIdx = i
			}
			if p.Range.Start >= editRange.End && a.nextIdx == -1 {
				a.nextIdx = i
			}
		}
		start, end := editRange.Start, editRange.End
		if a.prevIdx != -1 {
			start = d.Positions[a.prevIdx].Range.Start
		}
		if a.nextIdx != -1 {
			end = d.Positions[a.nextIdx].Range.End
		}
		a.fullSpan = token.Span{Start: start, End: end}
		return a
	}

	first := a.indices[0]
	last := a.indices[len(a.indices)-1]
	if first > 0 {
		a.prevIdx = first - 1
	}
	if last+1 < len(d.Positions) {
		a.nextIdx = last + 1
	}

	start := d.Positions[first].Range.Start
	end := d.Positions[last].Range.End
	// The affected end may need to extend further when the edit is an
	// addition/deletion reaching past the last affected statement's
	// original end.
	if editRange.End > end {
		end = editRange.End
	}
	a.fullSpan = token.Span{Start: start, End: end}
	return a
}

// applyRangedEdit implements spec.md §4.5's ranged-edit algorithm.
func (d *Document) applyRangedEdit(e Edit) []StatementChange {
	editRange := *e.Range
	a := d.getAffected(editRange)
	newText := e.ApplyToText(d.Text)
	diffSigned := e.diffSizeSigned()

	if len(a.indices) == 1 {
		if events, ok := d.trySingleStatementResplit(e, a, newText, diffSigned); ok {
			return events
		}
	}

	return d.resplitWindow(e, a, newText, diffSigned)
}

// trySingleStatementResplit handles the common, cheap case: the edit's
// affected window is exactly one existing statement. If the whitespace-only
// shortcut applies or the re-split of the statement's new content is still
// exactly one statement, handle it without touching the rest of the
// document. ok is false when the caller must fall back to the general
// multi-statement re-split (the affected content no longer splits into
// exactly one statement).
func (d *Document) trySingleStatementResplit(e Edit, a affected, newText string, diffSigned int) ([]StatementChange, bool) {
	idx := a.indices[0]
	old := d.Positions[idx]

	if e.IsWhitespace() {
		d.Text = newText
		d.translatePositionsAfter(e.Range.End, diffSigned)
		return nil, true
	}

	newEnd := old.Range.End + diffSigned
	if newEnd < old.Range.Start {
		return nil, false
	}
	affectedText := newText[old.Range.Start:newEnd]

	tokens, diags := lexer.Lex(affectedText)
	if diag.HasFatal(diags) {
		return nil, false
	}
	sub := splitter.SplitTokens(tokens, d.opts)
	if len(sub) != 1 {
		return nil, false
	}

	oldText := d.textAt(old.Range, true)

	r := sub[0]
	absRange := token.Span{Start: old.Range.Start + r.Range.Start, End: old.Range.Start + r.Range.End}
	newID := d.allocID()
	newPos := Position{ID: newID, Kind: r.Kind, Range: absRange}
	d.Positions[idx] = newPos
	d.Text = newText
	d.translatePositionsAfter(old.Range.End, diffSigned)

	changeRange := token.Span{Start: e.Range.Start - old.Range.Start, End: e.Range.End - old.Range.Start}
	return []StatementChange{{
		Kind:        ChangeModified,
		OldStmt:     StatementRef{ID: old.ID, Path: d.Path},
		OldText:     oldText,
		NewStmt:     StatementRef{ID: newID, Path: d.Path},
		NewText:     d.Text[absRange.Start:absRange.End],
		ChangeRange: changeRange,
		ChangeText:  e.Text,
	}}, true
}

// textAt recovers the pre-edit text of a range; its unnamed bool parameter
// is ignored and only documents intent at call sites (old text must be sliced
// before d.Text is overwritten by the caller in the general path, so callers
// capture it ahead of time where needed).
func (d *Document) textAt(r token.Span, _ bool) string {
	return d.Text[r.Start:r.End]
}

// resplitWindow handles the no-statement and multi-statement window cases
// (and a single-statement edit whose re-split is not exactly one statement):
// emit Deleted for every position inside a.fullSpan, re-split that span's
// post-edit text, emit Added for each resulting range, and translate
// positions after the span. For a no-statement window getAffected has
// already widened a.fullSpan to the neighboring statements; for a window
// that intersects statements, a.fullSpan covers only those statements and
// the neighbors keep their ids. Positions are classified
// by where their original range falls relative to the (pre-edit) window
// span, not by index bookkeeping, so it degenerates correctly when the
// window has no neighbors on one or both sides (e.g. editing into an empty
// document).
func (d *Document) resplitWindow(e Edit, a affected, newText string, diffSigned int) []StatementChange {
	var events []StatementChange
	windowStart, windowEnd := a.fullSpan.Start, a.fullSpan.End

	var before, removed []Position
	for _, p := range d.Positions {
		switch {
		case p.Range.End <= windowStart:
			before = append(before, p)
		case p.Range.Start >= windowEnd:
			// handled in the after-pass below
		default:
			removed = append(removed, p)
		}
	}
	for _, p := range removed {
		events = append(events, StatementChange{
			Kind:        ChangeDeleted,
			DeletedStmt: StatementRef{ID: p.ID, Path: d.Path},
		})
	}

	newWindowEnd := windowEnd + diffSigned
	if newWindowEnd < windowStart {
		newWindowEnd = windowStart
	}
	windowText := newText[windowStart:newWindowEnd]

	tokens, diags := lexer.Lex(windowText)
	d.Diagnostics = append(d.Diagnostics, diags...)

	var newPositions []Position
	if !diag.HasFatal(diags) {
		ranges := splitter.SplitTokens(tokens, d.opts)
		for _, r := range ranges {
			id := d.allocID()
			absRange := token.Span{Start: windowStart + r.Range.Start, End: windowStart + r.Range.End}
			pos := Position{ID: id, Kind: r.Kind, Range: absRange}
			newPositions = append(newPositions, pos)
			events = append(events, StatementChange{
				Kind:      ChangeAdded,
				AddedStmt: StatementRef{ID: id, Path: d.Path},
				AddedText: newText[absRange.Start:absRange.End],
			})
		}
	}

	rebuilt := make([]Position, 0, len(before)+len(newPositions)+len(d.Positions))
	rebuilt = append(rebuilt, before...)
	rebuilt = append(rebuilt, newPositions...)
	for _, p := range d.Positions {
		if p.Range.Start >= windowEnd {
			shifted := p
			shifted.Range.Start += diffSigned
			shifted.Range.End += diffSigned
			rebuilt = append(rebuilt, shifted)
		}
	}

	d.Text = newText
	if diag.HasFatal(diags) {
		d.Positions = d.drainRemaining(rebuilt, &events)
		return events
	}
	d.Positions = rebuilt
	return events
}

// drainRemaining handles spec.md §4.5's "If the post-edit lexer produces a
// Fatal diagnostic, drain all positions (emitting Deleted) and do not
// repopulate": emits Deleted for the positions outside the re-split window
// that resplitWindow kept (those before and after it), so that a fatal
// error anywhere leaves the document with no positions at all.
func (d *Document) drainRemaining(positions []Position, events *[]StatementChange) []Position {
	for _, p := range positions {
		*events = append(*events, StatementChange{
			Kind:        ChangeDeleted,
			DeletedStmt: StatementRef{ID: p.ID, Path: d.Path},
		})
	}
	return nil
}

// translatePositionsAfter shifts every position whose start lies strictly
// after cutoff by diffSigned, per spec.md §4.5's range translation rule.
func (d *Document) translatePositionsAfter(cutoff int, diffSigned int) {
	for i := range d.Positions {
		if d.Positions[i].Range.Start > cutoff {
			d.Positions[i].Range.Start += diffSigned
			d.Positions[i].Range.End += diffSigned
		}
	}
}
