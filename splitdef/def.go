// Package splitdef holds the declarative statement-definition table: the
// grammar sketches the splitter's trackers advance against. It is built
// once, lazily, and frozen (see Get()).
package splitdef

import (
	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

// StepKind distinguishes the variants of SyntaxDefinition.
type StepKind int

const (
	StepRequired StepKind = iota
	StepOptional
	StepOneOf
	StepOptionalGroup
	StepAnyToken
	StepAnyTokens
)

// Step is one step of a statement-definition pattern. Which fields are
// meaningful depends on Kind:
//   - StepRequired, StepOptional: Token
//   - StepOneOf: Kinds
//   - StepOptionalGroup: Kinds (matched as an in-order sequence)
//   - StepAnyToken: no fields
//   - StepAnyTokens: Kinds, if non-nil, restricts which tokens may be
//     consumed; nil means any token is allowed.
type Step struct {
	Kind  StepKind
	Token token.Kind
	Kinds []token.Kind
}

// StatementDefinition is one candidate grammar sketch for a statement kind.
// The first Step must be StepRequired; its Token is the definition's anchor,
// the key DefinitionTable files it under.
type StatementDefinition struct {
	Stmt                stmtkind.Kind
	Steps               []Step
	ProhibitedFollowups map[stmtkind.Kind]bool
}

// Anchor returns the definition's anchor token kind.
func (d StatementDefinition) Anchor() token.Kind {
	if len(d.Steps) == 0 || d.Steps[0].Kind != StepRequired {
		panic("splitdef: definition's first step must be Required")
	}
	return d.Steps[0].Token
}

// Prohibits reports whether candidate is listed among this definition's
// prohibited followups. How a live tracker applies that veto is up to
// tracker.CanStartStmtAfter.
func (d StatementDefinition) Prohibits(candidate stmtkind.Kind) bool {
	return d.ProhibitedFollowups[candidate]
}

// Builder assembles a StatementDefinition via chained calls, mirroring the
// donor project's SyntaxBuilder.
type Builder struct {
	stmt       stmtkind.Kind
	steps      []Step
	prohibited []stmtkind.Kind
}

func New(stmt stmtkind.Kind, anchor token.Kind) *Builder {
	return &Builder{
		stmt:  stmt,
		steps: []Step{{Kind: StepRequired, Token: anchor}},
	}
}

func (b *Builder) Required(k token.Kind) *Builder {
	b.steps = append(b.steps, Step{Kind: StepRequired, Token: k})
	return b
}

func (b *Builder) Optional(k token.Kind) *Builder {
	b.steps = append(b.steps, Step{Kind: StepOptional, Token: k})
	return b
}

func (b *Builder) OneOf(ks ...token.Kind) *Builder {
	b.steps = append(b.steps, Step{Kind: StepOneOf, Kinds: ks})
	return b
}

func (b *Builder) OptionalGroup(ks ...token.Kind) *Builder {
	b.steps = append(b.steps, Step{Kind: StepOptionalGroup, Kinds: ks})
	return b
}

func (b *Builder) AnyToken() *Builder {
	b.steps = append(b.steps, Step{Kind: StepAnyToken})
	return b
}

func (b *Builder) AnyTokens(allowed ...token.Kind) *Builder {
	b.steps = append(b.steps, Step{Kind: StepAnyTokens, Kinds: allowed})
	return b
}

// OptionalSchemaNameGroup matches an optional "ident ." schema prefix.
func (b *Builder) OptionalSchemaNameGroup() *Builder {
	return b.OptionalGroup(token.Ident, token.Ascii46)
}

// OptionalIfExistsGroup matches an optional "IF EXISTS".
func (b *Builder) OptionalIfExistsGroup() *Builder {
	return b.OptionalGroup(token.If, token.Exists)
}

// OptionalIfNotExistsGroup matches an optional "IF NOT EXISTS".
func (b *Builder) OptionalIfNotExistsGroup() *Builder {
	return b.OptionalGroup(token.If, token.Not, token.Exists)
}

// OptionalOrReplaceGroup matches an optional "OR REPLACE".
func (b *Builder) OptionalOrReplaceGroup() *Builder {
	return b.OptionalGroup(token.Or, token.Replace)
}

func (b *Builder) Prohibit(kinds ...stmtkind.Kind) *Builder {
	b.prohibited = append(b.prohibited, kinds...)
	return b
}

func (b *Builder) Build() StatementDefinition {
	m := make(map[stmtkind.Kind]bool, len(b.prohibited))
	for _, k := range b.prohibited {
		m[k] = true
	}
	return StatementDefinition{Stmt: b.stmt, Steps: b.steps, ProhibitedFollowups: m}
}
