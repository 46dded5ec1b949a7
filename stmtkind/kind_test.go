package stmtkind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringKnownKinds(t *testing.T) {
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "SelectStmt", SelectStmt.String())
	assert.Equal(t, "CreateSeqStmt", CreateSeqStmt.String())
}

func TestStringUnknownValue(t *testing.T) {
	assert.Equal(t, "Kind(?)", Kind(-1).String())
}
