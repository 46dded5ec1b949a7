package splitdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

func TestGetIsASingleton(t *testing.T) {
	a := Get()
	b := Get()
	assert.Same(t, a, b)
}

func TestByAnchorIndexesOnFirstStepToken(t *testing.T) {
	tbl := Get()
	defs := tbl.ByAnchor[token.Select]
	require.NotEmpty(t, defs)
	for _, d := range defs {
		assert.Equal(t, token.Select, d.Anchor())
	}
}

func TestBridgesReExtendSelect(t *testing.T) {
	tbl := Get()
	for _, anchor := range []token.Kind{token.Union, token.Intersect, token.Except} {
		defs := tbl.Bridges[anchor]
		require.Len(t, defs, 1)
		assert.Equal(t, stmtkind.SelectStmt, defs[0].Stmt)
	}
}
