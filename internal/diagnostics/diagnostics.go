// Package diagnostics implements the diagnostic taxonomy of spec §7: a
// Diag carries severity, a stable code, a message, a source span, and
// optional suggestion/minimum-dialect hints; a Bag accumulates Diags per
// command the way the teacher's pipeline.PipelineContext.Errors
// accumulates parser/processor errors (internal/pipeline/pipeline.go).
// The diagnostics package itself was not present in the retrieved
// teacher pack even though the teacher's own source imports it
// throughout (lexer.go, processor.go); this rebuilds it in the shape
// those call sites imply.
package diagnostics

import (
	"fmt"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/dialect"
)

// Severity classifies a Diag. Only Error and Internal abort a command;
// Warning and Info are reported but never stop processing (spec §7).
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Internal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Internal:
		return "internal error"
	default:
		return "?"
	}
}

// Code is a stable diagnostic identifier, grouped by the category table
// in spec §7.
type Code string

const (
	CodeLexUnterminatedString  Code = "L001"
	CodeSyntaxUnexpectedToken  Code = "S001"
	CodeTypeCombination        Code = "T001"
	CodeDialectUnavailable     Code = "T002"
	CodeDeclaratorShape        Code = "D001"
	CodeNameScope              Code = "N001"
	CodeRegistryConflict       Code = "R001"
	CodeInternal               Code = "I000"
)

// Diag is one reported diagnostic (spec §7).
type Diag struct {
	Severity   Severity
	Code       Code
	Message    string
	Span       ast.Span
	Suggestion string           // the suggested word alone, e.g. "unsigned"; Error adds "did you mean"
	MinDialect dialect.Dialect  // set when the fix is "use a later dialect"
	HasMinDialect bool
}

// Error satisfies the error interface so a Diag can be returned/wrapped
// anywhere ordinary Go error-handling expects one.
func (d *Diag) Error() string {
	msg := fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
	if d.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", d.Suggestion)
	}
	if d.HasMinDialect {
		msg += fmt.Sprintf(" (requires %s or later)", d.MinDialect)
	}
	return msg
}

// Bag accumulates Diags for one command (spec §7 "per-command buffer"),
// mirroring the teacher's PipelineContext.Errors accumulator.
type Bag struct {
	diags []*Diag
}

func (b *Bag) Add(d *Diag) { b.diags = append(b.diags, d) }

func (b *Bag) Addf(sev Severity, code Code, span ast.Span, format string, args ...any) *Diag {
	d := &Diag{Severity: sev, Code: code, Message: fmt.Sprintf(format, args...), Span: span}
	b.Add(d)
	return d
}

// HasErrors reports whether any accumulated Diag is Error or Internal
// severity — the condition under which a command aborts (spec §7).
func (b *Bag) HasErrors() bool {
	for _, d := range b.diags {
		if d.Severity == Error || d.Severity == Internal {
			return true
		}
	}
	return false
}

func (b *Bag) All() []*Diag { return b.diags }

func (b *Bag) Len() int { return len(b.diags) }

// Reset empties the bag for reuse across commands.
func (b *Bag) Reset() { b.diags = b.diags[:0] }
