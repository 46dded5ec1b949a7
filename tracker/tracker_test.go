package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgsql-ls/core/splitdef"
	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

func TestRequiredStepsMustMatchInOrder(t *testing.T) {
	def := splitdef.New(stmtkind.DropStmt, token.Drop).Required(token.Table).Required(token.Ident).Build()
	tr := New(def, 0)

	assert.False(t, tr.CouldBeComplete())
	tr.Advance(token.Table)
	assert.True(t, tr.Alive())
	assert.False(t, tr.CouldBeComplete())
	tr.Advance(token.Ident)
	assert.True(t, tr.CouldBeComplete())
}

func TestRequiredStepMismatchKillsTracker(t *testing.T) {
	def := splitdef.New(stmtkind.DropStmt, token.Drop).Required(token.Table).Build()
	tr := New(def, 0)
	tr.Advance(token.Select)
	assert.False(t, tr.Alive())
}

func TestOptionalStepMayBeSkipped(t *testing.T) {
	def := splitdef.New(stmtkind.CreateStmt, token.Create).
		OptionalOrReplaceGroup().
		Required(token.Table).
		Build()
	tr := New(def, 0)
	tr.Advance(token.Table)
	assert.True(t, tr.CouldBeComplete())
}

func TestOptionalGroupMustMatchInSequenceOnceEntered(t *testing.T) {
	def := splitdef.New(stmtkind.CreateStmt, token.Create).
		OptionalOrReplaceGroup().
		Required(token.Table).
		Build()
	tr := New(def, 0)
	tr.Advance(token.Or)
	assert.True(t, tr.Alive())
	assert.False(t, tr.CouldBeComplete())
	tr.Advance(token.Replace)
	assert.True(t, tr.Alive())
	tr.Advance(token.Table)
	assert.True(t, tr.CouldBeComplete())
}

func TestOptionalGroupDeadEndDoesNotResurrectSkipBranch(t *testing.T) {
	def := splitdef.New(stmtkind.CreateStmt, token.Create).
		OptionalOrReplaceGroup().
		Required(token.Table).
		Build()
	tr := New(def, 0)
	tr.Advance(token.Or)
	// "Or" not followed by "Replace": the only surviving branch was inside
	// the group, and it now dies outright.
	tr.Advance(token.Table)
	assert.False(t, tr.Alive())
}

func TestAnyTokensConsumesUntilFollowingStepMatches(t *testing.T) {
	def := splitdef.New(stmtkind.DeclareCursorStmt, token.Declare).
		AnyTokens(token.Ident, token.Binary).
		Required(token.Cursor).
		Build()
	tr := New(def, 0)
	tr.Advance(token.Ident)
	assert.True(t, tr.Alive())
	assert.False(t, tr.CouldBeComplete())
	tr.Advance(token.Binary)
	assert.True(t, tr.Alive())
	tr.Advance(token.Cursor)
	assert.True(t, tr.CouldBeComplete())
}

func TestCanStartStmtAfterAllowsAnchorPosition(t *testing.T) {
	def := splitdef.New(stmtkind.DeclareCursorStmt, token.Declare).
		Required(token.Cursor).
		Prohibit(stmtkind.SelectStmt).
		Build()
	tr := New(def, 5)
	assert.True(t, tr.CanStartStmtAfter(stmtkind.SelectStmt, 5))
	assert.False(t, tr.CanStartStmtAfter(stmtkind.SelectStmt, 6))
	assert.True(t, tr.CanStartStmtAfter(stmtkind.InsertStmt, 6))
}

func TestCanStartStmtAfterVetoIsSpentNotStanding(t *testing.T) {
	// Mirrors EXPLAIN: a bare, instantly-complete definition that prohibits
	// the statement kind it owns. The first prohibited candidate after the
	// anchor must be turned away (that's the one EXPLAIN owns); every later
	// attempt at the same kind must be let through, or a tracker with no
	// further steps of its own would block that kind for the rest of the
	// document.
	def := splitdef.New(stmtkind.ExplainStmt, token.Explain).
		Prohibit(stmtkind.SelectStmt).
		Build()
	tr := New(def, 0)
	assert.False(t, tr.CanStartStmtAfter(stmtkind.SelectStmt, 1))
	assert.True(t, tr.CanStartStmtAfter(stmtkind.SelectStmt, 5))
	assert.True(t, tr.CanStartStmtAfter(stmtkind.SelectStmt, 7))
}

func TestMaxPosTracksFurthestReachedStep(t *testing.T) {
	def := splitdef.New(stmtkind.DropStmt, token.Drop).
		OptionalGroup(token.If, token.Exists).
		Required(token.Table).
		Build()
	tr := New(def, 0)
	assert.Equal(t, 1, tr.MaxPos())
	tr.Advance(token.If)
	assert.Equal(t, 1, tr.MaxPos())
	tr.Advance(token.Exists)
	assert.Equal(t, 2, tr.MaxPos())
	tr.Advance(token.Table)
	assert.Equal(t, 3, tr.MaxPos())
}
