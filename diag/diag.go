// Package diag carries diagnostics produced by the lexer up to the splitter
// and document layers, and renders aggregates the way the teacher's error.go
// renders many positioned sub-errors into one error string.
package diag

import (
	"fmt"
	"strings"

	"github.com/pgsql-ls/core/token"
)

// Severity classifies a Diagnostic. Fatal diagnostics (malformed tokens: an
// unterminated string literal, an unterminated dollar-quote, ...) cause the
// document to drain all statement positions; Warning diagnostics do not.
// The splitter reports an ambiguous tracker match through its logger, not
// as a Diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	default:
		return "warning"
	}
}

// Diagnostic is a single positioned problem report.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    token.Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Range.Start, d.Range.End, d.Severity, d.Message)
}

// HasFatal reports whether any diagnostic in ds is Fatal.
func HasFatal(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// Errors aggregates many Diagnostics into a single error, one line per
// diagnostic, mirroring SQLCodeParseErrors in the donor project's error.go.
type Errors []Diagnostic

func (e Errors) Error() string {
	var b strings.Builder
	for i, d := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	return b.String()
}
