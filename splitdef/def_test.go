package splitdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

func TestAnchorReturnsFirstStepToken(t *testing.T) {
	def := New(stmtkind.SelectStmt, token.Select).Build()
	assert.Equal(t, token.Select, def.Anchor())
}

func TestAnchorPanicsWhenFirstStepIsNotRequired(t *testing.T) {
	def := StatementDefinition{Steps: []Step{{Kind: StepOptional, Token: token.Select}}}
	assert.Panics(t, func() { def.Anchor() })
}

func TestProhibitsOnlyListedKinds(t *testing.T) {
	def := New(stmtkind.DeclareCursorStmt, token.Declare).
		Required(token.Cursor).
		Prohibit(stmtkind.SelectStmt).
		Build()
	assert.True(t, def.Prohibits(stmtkind.SelectStmt))
	assert.False(t, def.Prohibits(stmtkind.InsertStmt))
}

func TestBuilderChainsStepsInOrder(t *testing.T) {
	def := New(stmtkind.CreateStmt, token.Create).
		OptionalOrReplaceGroup().
		Required(token.Table).
		OptionalIfNotExistsGroup().
		OptionalSchemaNameGroup().
		Required(token.Ident).
		AnyTokens().
		Build()
	require.Len(t, def.Steps, 7)
	assert.Equal(t, StepRequired, def.Steps[0].Kind)
	assert.Equal(t, StepOptionalGroup, def.Steps[1].Kind)
	assert.Equal(t, []token.Kind{token.Or, token.Replace}, def.Steps[1].Kinds)
	assert.Equal(t, StepRequired, def.Steps[2].Kind)
	assert.Equal(t, StepOptionalGroup, def.Steps[3].Kind)
	assert.Equal(t, []token.Kind{token.If, token.Not, token.Exists}, def.Steps[3].Kinds)
	assert.Equal(t, StepOptionalGroup, def.Steps[4].Kind)
	assert.Equal(t, StepRequired, def.Steps[5].Kind)
	assert.Equal(t, StepAnyTokens, def.Steps[6].Kind)
}
