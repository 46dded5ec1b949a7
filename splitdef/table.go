package splitdef

import (
	"sync"

	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

// Table is the process-wide, anchor-indexed statement definition table, plus
// the smaller bridge table for UNION/INTERSECT/EXCEPT.
type Table struct {
	ByAnchor map[token.Kind][]StatementDefinition
	Bridges  map[token.Kind][]StatementDefinition
}

var (
	once      sync.Once
	singleton *Table
)

// Get returns the process-wide definition table, building it on first call.
// Construction is guarded so exactly one initializer runs even under
// concurrent first access; subsequent reads are lock-free, per spec.md §5.
func Get() *Table {
	once.Do(func() {
		singleton = build()
	})
	return singleton
}

func build() *Table {
	t := &Table{
		ByAnchor: make(map[token.Kind][]StatementDefinition),
		Bridges:  make(map[token.Kind][]StatementDefinition),
	}
	for _, def := range statementDefinitions() {
		anchor := def.Anchor()
		t.ByAnchor[anchor] = append(t.ByAnchor[anchor], def)
	}
	for _, def := range bridgeDefinitions() {
		anchor := def.Anchor()
		t.Bridges[anchor] = append(t.Bridges[anchor], def)
	}
	return t
}

// bridgeDefinitions re-extend a preceding SelectStmt across a joining
// operator, per spec.md §4.2's bridge table.
func bridgeDefinitions() []StatementDefinition {
	return []StatementDefinition{
		New(stmtkind.SelectStmt, token.Union).Optional(token.All).Build(),
		New(stmtkind.SelectStmt, token.Intersect).Optional(token.All).Build(),
		New(stmtkind.SelectStmt, token.Except).Optional(token.All).Build(),
	}
}
