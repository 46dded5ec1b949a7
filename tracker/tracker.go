// Package tracker implements the NFA-style position-set definition tracker
// described in spec.md §4.3 and §9: a deliberate replacement for a
// single-scalar "current step" representation, which cannot express the
// branching admitted by Optional, OptionalGroup, and AnyTokens steps.
package tracker

import (
	"github.com/pgsql-ls/core/splitdef"
	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

// position is one element of a tracker's current-positions set. Step is the
// index into StatementDefinition.Steps; Group is nonzero only while mid-way
// through an OptionalGroup step, recording how many of the group's tokens
// have been consumed so far.
type position struct {
	Step  int
	Group int
}

// Tracker is the live state of one StatementDefinition in progress.
type Tracker struct {
	Def       splitdef.StatementDefinition
	StartedAt int
	positions map[position]bool
	vetoed    map[stmtkind.Kind]bool
}

// New creates a tracker for def anchored at startedAt. The anchor token
// itself has already been consumed (step 0 is satisfied by construction, so
// the tracker starts at position 1, per spec.md's "tracked when their anchor
// token is encountered").
func New(def splitdef.StatementDefinition, startedAt int) *Tracker {
	return &Tracker{
		Def:       def,
		StartedAt: startedAt,
		positions: map[position]bool{{Step: 1}: true},
	}
}

// Stmt is a convenience accessor for the tracked statement kind.
func (t *Tracker) Stmt() stmtkind.Kind { return t.Def.Stmt }

// Alive reports whether at least one position survived the most recent
// Advance (or initial construction).
func (t *Tracker) Alive() bool { return len(t.positions) > 0 }

// CouldBeComplete reports whether some held position can reach the end of
// the definition by skipping zero or more trailing optional steps with no
// further input: every position at or past the last step that actually
// requires a token. Required/OneOf/AnyToken steps can't be skipped this way;
// Optional/OptionalGroup/AnyTokens can, since each is satisfied by zero
// tokens.
func (t *Tracker) CouldBeComplete() bool {
	for p := range t.positions {
		if p.Group == 0 && canSkipToEnd(t.Def.Steps, p.Step) {
			return true
		}
	}
	return false
}

func canSkipToEnd(steps []splitdef.Step, from int) bool {
	for i := from; i < len(steps); i++ {
		switch steps[i].Kind {
		case splitdef.StepOptional, splitdef.StepOptionalGroup, splitdef.StepAnyTokens:
			continue
		default:
			return false
		}
	}
	return true
}

// MaxPos returns the greatest step index currently occupied, used to
// tie-break between trackers that share StartedAt.
func (t *Tracker) MaxPos() int {
	max := -1
	for p := range t.positions {
		if p.Step > max {
			max = p.Step
		}
	}
	return max
}

// CanStartStmtAfter reports whether a new tracker for candidate may be
// spawned while t is alive and the candidate's anchor is seen at pos: false
// iff candidate is a prohibited followup, pos is strictly after t's anchor,
// and t hasn't already vetoed this candidate kind once before.
//
// The veto is spent, not standing: a definition like EXPLAIN prohibits its
// own embedded SELECT so that statement isn't wrongly closed the moment that
// SELECT becomes syntactically complete (the select it owns), but once that
// first candidate has been turned away, a later, genuinely separate SELECT
// anchor must still be free to start its own tracker. Without releasing the
// veto, a tracker with no further steps of its own (EXPLAIN has none) would
// block every later statement of the prohibited kind for the rest of the
// document instead of just the one it owns.
func (t *Tracker) CanStartStmtAfter(candidate stmtkind.Kind, pos int) bool {
	if pos <= t.StartedAt {
		return true
	}
	if !t.Def.Prohibits(candidate) {
		return true
	}
	if t.vetoed[candidate] {
		return true
	}
	if t.vetoed == nil {
		t.vetoed = make(map[stmtkind.Kind]bool)
	}
	t.vetoed[candidate] = true
	return false
}

// Advance consumes one significant token and replaces the position set with
// the set reachable from it, per the semantics in spec.md §4.3.
func (t *Tracker) Advance(kind token.Kind) {
	next := make(map[position]bool)
	for p := range t.positions {
		t.reachable(p, kind, next)
	}
	t.positions = next
}

func (t *Tracker) reachable(p position, kind token.Kind, out map[position]bool) {
	steps := t.Def.Steps
	if p.Step >= len(steps) {
		// Already satisfied every step: park here, absorbing any further
		// token, until a boundary (semicolon, EOF, or a higher-priority
		// statement start) closes the tracker explicitly.
		out[p] = true
		return
	}
	step := steps[p.Step]

	if p.Group > 0 {
		// Mid-OptionalGroup: must continue the sequence from where we left
		// off. Failing to match here simply drops this branch.
		if kind == step.Kinds[p.Group] {
			if p.Group+1 == len(step.Kinds) {
				out[position{Step: p.Step + 1}] = true
			} else {
				out[position{Step: p.Step, Group: p.Group + 1}] = true
			}
		}
		return
	}

	switch step.Kind {
	case splitdef.StepRequired, splitdef.StepAnyToken:
		if step.Kind == splitdef.StepAnyToken || kind == step.Token {
			out[position{Step: p.Step + 1}] = true
		}
	case splitdef.StepOneOf:
		if containsKind(step.Kinds, kind) {
			out[position{Step: p.Step + 1}] = true
		}
	case splitdef.StepOptional:
		if kind == step.Token {
			out[position{Step: p.Step + 1}] = true
		}
		// The option may also be skipped: re-evaluate the next step against
		// the same token.
		t.reachable(position{Step: p.Step + 1}, kind, out)
	case splitdef.StepOptionalGroup:
		// Try skipping the whole group.
		t.reachable(position{Step: p.Step + 1}, kind, out)
		// Try entering it.
		if len(step.Kinds) > 0 && kind == step.Kinds[0] {
			if len(step.Kinds) == 1 {
				out[position{Step: p.Step + 1}] = true
			} else {
				out[position{Step: p.Step, Group: 1}] = true
			}
		}
	case splitdef.StepAnyTokens:
		if len(step.Kinds) == 0 || containsKind(step.Kinds, kind) {
			out[position{Step: p.Step}] = true
		}
		// Always also try the step after AnyTokens, so the group ends as
		// soon as the following step could match.
		t.reachable(position{Step: p.Step + 1}, kind, out)
	}
}

func containsKind(kinds []token.Kind, k token.Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}
