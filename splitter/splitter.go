// Package splitter drives statement definition trackers across a token
// stream and emits tagged statement ranges, per spec.md §4.4.
package splitter

import (
	"fmt"

	"github.com/pgsql-ls/core/diag"
	"github.com/pgsql-ls/core/lexer"
	"github.com/pgsql-ls/core/splitdef"
	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
	"github.com/pgsql-ls/core/tracker"
	"github.com/sirupsen/logrus"
)

// StatementPosition is one splitter output: a statement kind tagged onto a
// byte range.
type StatementPosition struct {
	Kind  stmtkind.Kind
	Range token.Span
}

// Result is the full output of Split: ranges sorted by start, pairwise
// disjoint, plus any diagnostics accumulated along the way.
type Result struct {
	Ranges      []StatementPosition
	Diagnostics []diag.Diagnostic
}

// Options configures a splitter run.
type Options struct {
	// Debug, when true, turns an ambiguous-match precondition violation
	// into a panic instead of a logged, first-tracker-wins recovery. See
	// spec.md §7.
	Debug  bool
	Logger logrus.FieldLogger
}

// Split tokenizes and splits text in one call using default (release-mode)
// options.
func Split(text string) Result {
	return SplitWithOptions(text, Options{})
}

// SplitWithOptions tokenizes text and splits it per the given Options.
func SplitWithOptions(text string, opts Options) Result {
	tokens, diags := lexer.Lex(text)
	if diag.HasFatal(diags) {
		return Result{Diagnostics: diags}
	}
	ranges := SplitTokens(tokens, opts)
	return Result{Ranges: ranges, Diagnostics: diags}
}

// SplitTokens runs the splitter over an already-lexed token vector. Exposed
// separately so the document layer can re-split an affected window without
// re-lexing the whole document, and so tests can build tokens directly.
func SplitTokens(tokens []token.Token, opts Options) []StatementPosition {
	s := &splitterState{
		view:  NewView(tokens),
		tbl:   splitdef.Get(),
		opts:  opts,
		log:   opts.Logger,
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	s.run()
	return s.ranges
}

type splitterState struct {
	view *View
	tbl  *splitdef.Table
	opts Options
	log  logrus.FieldLogger

	tracked []*tracker.Tracker
	bridges []*tracker.Tracker
	ranges  []StatementPosition

	parenDepth  int
	caseDepth   int
	subTrxDepth int // reserved for nested subtransaction bookkeeping
	inAtomic    bool
}

func (s *splitterState) nestingAllZero() bool {
	return s.parenDepth == 0 && s.caseDepth == 0 && s.subTrxDepth == 0
}

func (s *splitterState) run() {
	for !s.view.Eof() {
		cur := s.view.Current()
		if token.IsWhitespace(cur.Kind) {
			s.view.Advance()
			continue
		}
		s.step(cur)
		s.view.Advance()
	}
	s.atEOF()
}

func (s *splitterState) step(cur token.Token) {
	kind := cur.Kind
	pos := s.view.Pos()

	s.spawnNewStatements(kind, pos)
	s.advanceBridges(kind)
	s.spawnNewBridges(kind, pos)
	s.advanceTrackers(kind, pos)
	s.nestingBookkeeping(kind)
	closed := s.semicolonClose(cur)
	if !closed {
		s.midStreamClose()
	}
}

func (s *splitterState) spawnNewStatements(kind token.Kind, pos int) {
	defs := s.tbl.ByAnchor[kind]
	if len(defs) == 0 {
		return
	}
	if !s.nestingAllZero() || s.inAtomic {
		return
	}
	// BEGIN ATOMIC opens a routine body, not a transaction.
	if kind == token.Begin && s.view.Peek(1, true).Kind == token.Atomic {
		return
	}
	generalOK := len(s.tracked) == 0
	for _, t := range s.tracked {
		if t.CouldBeComplete() {
			generalOK = true
			break
		}
	}
	if !generalOK {
		return
	}
	for _, def := range defs {
		if s.bridgeSharesKind(def.Stmt) {
			continue
		}
		if s.anyTrackerForbids(def.Stmt, pos) {
			continue
		}
		s.tracked = append(s.tracked, tracker.New(def, pos))
	}
}

func (s *splitterState) bridgeSharesKind(k stmtkind.Kind) bool {
	for _, b := range s.bridges {
		if b.Stmt() == k {
			return true
		}
	}
	return false
}

func (s *splitterState) anyTrackerForbids(candidate stmtkind.Kind, pos int) bool {
	for _, t := range s.tracked {
		if !t.CanStartStmtAfter(candidate, pos) {
			return true
		}
	}
	return false
}

func (s *splitterState) advanceBridges(kind token.Kind) {
	var survivors []*tracker.Tracker
	for _, b := range s.bridges {
		b.Advance(kind)
		if b.Alive() {
			survivors = append(survivors, b)
		}
	}
	s.bridges = survivors
}

func (s *splitterState) spawnNewBridges(kind token.Kind, pos int) {
	for _, def := range s.tbl.Bridges[kind] {
		s.bridges = append(s.bridges, tracker.New(def, pos))
	}
}

func (s *splitterState) advanceTrackers(kind token.Kind, pos int) {
	var survivors []*tracker.Tracker
	minDead := -1
	anyDied := false
	for _, t := range s.tracked {
		if t.StartedAt == pos {
			survivors = append(survivors, t)
			continue
		}
		t.Advance(kind)
		if t.Alive() {
			survivors = append(survivors, t)
		} else {
			anyDied = true
			if minDead == -1 || t.StartedAt < minDead {
				minDead = t.StartedAt
			}
		}
	}
	s.tracked = survivors

	if anyDied && len(s.tracked) == 0 {
		end := s.view.Lookbehind(0, true, 0)
		s.emit(stmtkind.Unknown, minDead, end.Span.End)
	}
}

func (s *splitterState) nestingBookkeeping(kind token.Kind) {
	switch kind {
	case token.Ascii40:
		s.parenDepth++
	case token.Ascii41:
		if s.parenDepth > 0 {
			s.parenDepth--
		}
	case token.Case:
		s.caseDepth++
	case token.End:
		if s.caseDepth > 0 {
			s.caseDepth--
		}
		// BEGIN ATOMIC blocks don't nest, so the first END seen while inside
		// one always closes it, regardless of what came before it.
		s.inAtomic = false
	case token.Atomic:
		prev := s.view.Lookbehind(0, true, 0)
		if prev.Kind == token.Begin {
			s.inAtomic = true
		}
	}
}

// semicolonClose implements spec.md §4.4 step 8. It returns true if this
// token closed a statement (whether or not a tracker happened to be
// complete), so the caller knows not to also run the mid-stream-close logic.
func (s *splitterState) semicolonClose(cur token.Token) bool {
	if cur.Kind != token.Ascii59 {
		return false
	}
	if !s.nestingAllZero() || s.inAtomic {
		return false
	}
	if winner := s.pickWinner(s.tracked); winner != nil {
		s.emit(winner.Stmt(), winner.StartedAt, cur.Span.End)
	}
	s.tracked = nil
	s.bridges = nil
	return true
}

// midStreamClose implements spec.md §4.4 step 9: consecutive statements
// without an intervening semicolon (e.g. "select 1 select 2").
func (s *splitterState) midStreamClose() {
	var completes []*tracker.Tracker
	for _, t := range s.tracked {
		if t.CouldBeComplete() {
			completes = append(completes, t)
		}
	}
	if len(completes) <= 1 {
		return
	}
	l := latestStarted(completes)
	p := latestStartedBefore(completes, l.StartedAt)
	if p == nil {
		return
	}
	end := lastSignificantBefore(s.view.tokens, l.StartedAt)
	s.emit(p.Stmt(), p.StartedAt, end.Span.End)

	var remaining []*tracker.Tracker
	for _, t := range s.tracked {
		if t.StartedAt > p.StartedAt {
			remaining = append(remaining, t)
		}
	}
	s.tracked = remaining
}

func (s *splitterState) atEOF() {
	if winner := s.pickWinner(s.tracked); winner != nil {
		end := lastSignificantBefore(s.view.tokens, len(s.view.tokens))
		s.emit(winner.Stmt(), winner.StartedAt, end.Span.End)
		s.dropUpTo(winner.StartedAt)
	}
	if len(s.tracked) > 0 {
		earliest := s.tracked[0]
		for _, t := range s.tracked[1:] {
			if t.StartedAt < earliest.StartedAt {
				earliest = t
			}
		}
		end := lastSignificantBefore(s.view.tokens, len(s.view.tokens))
		s.emit(stmtkind.Unknown, earliest.StartedAt, end.Span.End)
	}
}

func (s *splitterState) dropUpTo(startedAt int) {
	var remaining []*tracker.Tracker
	for _, t := range s.tracked {
		if t.StartedAt > startedAt {
			remaining = append(remaining, t)
		}
	}
	s.tracked = remaining
}

// pickWinner selects the earliest-started tracker that could_be_complete,
// breaking ties by greatest MaxPos. It asserts that at most one tracker
// shares the winning StartedAt/MaxPos pair; an ambiguous match is a
// precondition violation of the definition table (spec.md §7).
func (s *splitterState) pickWinner(trackers []*tracker.Tracker) *tracker.Tracker {
	var complete []*tracker.Tracker
	for _, t := range trackers {
		if t.CouldBeComplete() {
			complete = append(complete, t)
		}
	}
	if len(complete) == 0 {
		return nil
	}
	winner := complete[0]
	for _, t := range complete[1:] {
		if t.StartedAt < winner.StartedAt ||
			(t.StartedAt == winner.StartedAt && t.MaxPos() > winner.MaxPos()) {
			winner = t
		}
	}
	s.assertUnambiguous(complete, winner)
	return winner
}

func (s *splitterState) assertUnambiguous(complete []*tracker.Tracker, winner *tracker.Tracker) {
	for _, t := range complete {
		if t != winner && t.StartedAt == winner.StartedAt && t.MaxPos() == winner.MaxPos() {
			msg := fmt.Sprintf("ambiguous statement match at position %d: %v and %v both complete", winner.StartedAt, winner.Stmt(), t.Stmt())
			if s.opts.Debug {
				panic(msg)
			}
			s.log.Warn(msg)
		}
	}
}

func (s *splitterState) emit(kind stmtkind.Kind, startTokenIdx int, end int) {
	start := s.view.TokenAt(startTokenIdx).Span.Start
	s.ranges = append(s.ranges, StatementPosition{Kind: kind, Range: token.Span{Start: start, End: end}})
}

func latestStarted(ts []*tracker.Tracker) *tracker.Tracker {
	best := ts[0]
	for _, t := range ts[1:] {
		if t.StartedAt > best.StartedAt {
			best = t
		}
	}
	return best
}

func latestStartedBefore(ts []*tracker.Tracker, before int) *tracker.Tracker {
	var best *tracker.Tracker
	for _, t := range ts {
		if t.StartedAt >= before {
			continue
		}
		if best == nil || t.StartedAt > best.StartedAt {
			best = t
		}
	}
	return best
}

func lastSignificantBefore(tokens []token.Token, idx int) token.Token {
	for i := idx - 1; i >= 0; i-- {
		if k := tokens[i].Kind; !token.IsWhitespace(k) && k != token.Eof {
			return tokens[i]
		}
	}
	return token.Token{}
}
