package cli

import (
	"fmt"
	"strings"

	"github.com/cdeclish/cdeclish/internal/diagnostics"
	"github.com/cdeclish/cdeclish/internal/engine"
)

// dispatchResult is one command line's outcome: rendered output lines
// (empty on failure), the diagnostics collected along the way, and
// whether the line was `exit`/`quit`/`q`.
type dispatchResult struct {
	Output []string
	Diags  *diagnostics.Bag
	Quit   bool
}

// dispatch routes one command line to its Engine entry point, per spec
// §6's command-line surface (`declare, cast, explain, define, typedef,
// show, set, help, ?, exit, quit, q`). Unrecognized verbs fall back to
// `explain`, mirroring real cdecl's bare-declaration invocation — a line
// that doesn't start with a known verb is itself a C/C++ declaration to
// paraphrase.
func dispatch(e *engine.Engine, line string) dispatchResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return dispatchResult{}
	}
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "exit", "quit", "q":
		return dispatchResult{Quit: true}
	case "help", "?":
		return dispatchResult{Output: []string{e.Help(arg)}}
	case "declare":
		r := e.Declare(arg)
		return result(r)
	case "cast":
		r := e.Cast(arg)
		return result(r)
	case "explain":
		r := e.Explain(arg)
		return result(r)
	case "define":
		r := e.Define(arg)
		return result(r)
	case "typedef":
		r := e.Typedef(arg)
		return result(r)
	case "set":
		r := e.Set(arg)
		return result(r)
	case "show":
		return dispatchResult{Output: e.Show(showArgs(arg))}
	default:
		r := e.Explain(line)
		return result(r)
	}
}

func result(r engine.Result) dispatchResult {
	if !r.Ok() {
		return dispatchResult{Diags: r.Diags}
	}
	out := []string{r.Output}
	if r.Diags != nil && r.Diags.Len() > 0 {
		return dispatchResult{Output: out, Diags: r.Diags}
	}
	return dispatchResult{Output: out}
}

// showArgs splits `show`'s argument into its glob (default "*", every
// visible typedef) and its optional trailing style word
// (decl/english/both, default decl).
func showArgs(arg string) (string, engine.ShowStyle) {
	glob, styleWord, _ := strings.Cut(arg, " ")
	glob = strings.TrimSpace(glob)
	if glob == "" {
		glob = "*"
	}
	switch strings.TrimSpace(styleWord) {
	case "english":
		return glob, engine.ShowEnglish
	case "both":
		return glob, engine.ShowBoth
	default:
		return glob, engine.ShowDecl
	}
}

// formatDiags renders a Bag the way spec §7 asks: one line per
// diagnostic, a caret line under the offending column when the span is
// known, and a "did you mean" suggestion when present.
func formatDiags(bag *diagnostics.Bag, source string) []string {
	if bag == nil {
		return nil
	}
	var lines []string
	for _, d := range bag.All() {
		lines = append(lines, fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message))
		if d.Span.Start.Column > 0 && source != "" {
			lines = append(lines, source)
			lines = append(lines, strings.Repeat(" ", d.Span.Start.Column-1)+"^")
		}
		if d.Suggestion != "" {
			lines = append(lines, fmt.Sprintf("  did you mean %q?", d.Suggestion))
		}
		if d.HasMinDialect {
			lines = append(lines, fmt.Sprintf("  requires %s or later", d.MinDialect))
		}
	}
	return lines
}
