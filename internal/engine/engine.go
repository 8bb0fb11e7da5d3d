// Package engine implements spec §6's downstream command-dispatcher
// interface and §5's resource/ownership discipline: an explicit Engine
// value bundling Options, the typedef Registry, and the arena stack,
// threaded into every call rather than read from process-wide globals
// (spec §9, "Global state" design note). Each entry point runs the same
// lex -> parse -> check -> render pipeline, grounded on
// internal/pipeline's continue-on-error stage discipline.
package engine

import (
	"fmt"
	"strings"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/checker"
	"github.com/cdeclish/cdeclish/internal/diagnostics"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/options"
	"github.com/cdeclish/cdeclish/internal/parser"
	"github.com/cdeclish/cdeclish/internal/pipeline"
	declrender "github.com/cdeclish/cdeclish/internal/render/decl"
	englishrender "github.com/cdeclish/cdeclish/internal/render/english"
	"github.com/cdeclish/cdeclish/internal/sname"
	"github.com/cdeclish/cdeclish/internal/typedef"
)

// Engine is the core value spec §9 asks for in place of the source's
// process-wide options/registry/arena-stack globals.
type Engine struct {
	Opts   options.Options
	Reg    *typedef.Registry
	arenas ast.ArenaStack
}

// New starts an Engine with the default option set (internal/options'
// Default) and a typedef registry seeded with the predefined alias
// table (internal/typedef's loadPredefined).
func New() *Engine {
	return &Engine{Opts: options.Default(), Reg: typedef.New()}
}

// Result is one command's outcome: the rendered text (empty on
// failure) plus every diagnostic collected along the way — warnings are
// reported even when the command otherwise succeeds (spec §7).
type Result struct {
	Output string
	Diags  *diagnostics.Bag
}

// Ok reports whether the command produced usable output (no Error or
// Internal diagnostic aborted it).
func (r Result) Ok() bool { return r.Diags == nil || !r.Diags.HasErrors() }

func (e *Engine) declCtx() parser.DeclContext {
	return parser.DeclContext{Reg: e.Reg, Active: e.Opts.Dialect}
}

// checkAndRender runs the check -> render stages of spec §9's
// lex -> parse -> check -> render pipeline over a command's already-
// parsed AST, using internal/pipeline's Context/Processor/Pipeline
// shape so each stage can see whether an earlier one aborted (spec §7:
// "Warnings never abort; only errors and internals do") without the
// caller re-implementing that check itself.
func (e *Engine) checkAndRender(arena *ast.Arena, root *ast.Node, bag *diagnostics.Bag, render func(*ast.Node) string) Result {
	ctx := &pipeline.Context{Opts: e.Opts, Arena: arena, Root: root, Diags: *bag}

	checkStage := pipeline.ProcessorFunc(func(c *pipeline.Context) *pipeline.Context {
		if c.Aborted() {
			return c
		}
		mergeInto(&c.Diags, checker.Check(c.Root, c.Opts, e.Reg))
		return c
	})
	renderStage := pipeline.ProcessorFunc(func(c *pipeline.Context) *pipeline.Context {
		if c.Aborted() {
			return c
		}
		c.Output = render(c.Root)
		return c
	})

	ctx = pipeline.New(checkStage, renderStage).Run(ctx)
	return Result{Output: ctx.Output, Diags: &ctx.Diags}
}

func mergeInto(dst, src *diagnostics.Bag) {
	for _, d := range src.All() {
		dst.Add(d)
	}
}

// Explain implements `explain(decl_string)` (spec §6): parse a C/C++
// declaration string, check it, and paraphrase it in English
// ("declare f as pointer to function (char, double) returning int").
func (e *Engine) Explain(declString string) Result {
	arena := e.arenas.Push()
	defer e.arenas.Pop()
	bag := &diagnostics.Bag{}
	root := parser.ParseDeclString(declString, arena, bag, e.declCtx())
	return e.checkAndRender(arena, root, bag, func(n *ast.Node) string {
		ident := parser.DeclaredIdent(n)
		prose := englishrender.Render(n, e.Opts)
		if ident == "" {
			return prose
		}
		return "declare " + ident + " as " + prose
	})
}

// Declare implements `declare(english_string)` (spec §6): argument is
// the full command tail, "IDENT as ENGLISH" (the leading `declare` verb
// itself is the dispatcher's concern, not the engine's). Renders the
// equivalent C/C++ declaration.
func (e *Engine) Declare(arg string) Result {
	arena := e.arenas.Push()
	defer e.arenas.Pop()
	bag := &diagnostics.Bag{}
	ident, root := parser.ParseEnglishDeclare(arg, arena, bag, e.declCtx())
	return e.checkAndRender(arena, root, bag, func(n *ast.Node) string {
		return declrender.Render(n, ident, e.Opts)
	})
}

// Cast implements `cast(kind, english)` (spec §6): argument is the full
// command tail, "IDENT into ENGLISH", rendering cdecl's own cast-command
// shape — a parenthesized C-style cast expression applied to IDENT,
// built from the same declaration renderer `declare` uses for the type
// itself (the spec's §6 text only names the two-argument signature, not
// an output shape; this mirrors real cdecl's own `cast` output, which is
// a cast expression rather than a second declaration).
func (e *Engine) Cast(arg string) Result {
	arena := e.arenas.Push()
	defer e.arenas.Pop()
	bag := &diagnostics.Bag{}
	ident, root := parser.ParseEnglishCast(arg, arena, bag, e.declCtx())
	return e.checkAndRender(arena, root, bag, func(n *ast.Node) string {
		typeStr := strings.TrimSuffix(declrender.Render(n, "", e.Opts), ";")
		return fmt.Sprintf("(%s)%s", typeStr, ident)
	})
}

// Typedef implements `typedef(decl_string) -> Ok | Conflict` (spec §6):
// parse a full C typedef statement (its trailing identifier is the
// alias name, per spec §8 scenario 6) and register it.
func (e *Engine) Typedef(declString string) Result {
	arena := e.arenas.Push()
	defer e.arenas.Pop()
	bag := &diagnostics.Bag{}
	root := parser.ParseDeclString(declString, arena, bag, e.declCtx())
	if bag.HasErrors() {
		return Result{Diags: bag}
	}
	checkBag := checker.Check(root, e.Opts, e.Reg)
	mergeInto(bag, checkBag)
	if bag.HasErrors() {
		return Result{Diags: bag}
	}
	ident := parser.DeclaredIdent(root)
	if ident == "" {
		bag.Addf(diagnostics.Error, diagnostics.CodeSyntaxUnexpectedToken, root.Span,
			"typedef requires a named declarator")
		return Result{Diags: bag}
	}
	return e.register(ident, root, bag)
}

// Define implements real cdecl's `define` command: "define NAME as
// ENGLISH" registers NAME as a typedef alias the same way `typedef`
// does from C syntax, but from an English type phrase — spec §6 lists
// `define` alongside `declare`/`cast`/`explain`/`typedef` in the
// command-line surface without describing its semantics separately, so
// this follows cdecl's own behavior for the one command name the
// distilled §6 text names but never defines.
func (e *Engine) Define(arg string) Result {
	arena := e.arenas.Push()
	defer e.arenas.Pop()
	bag := &diagnostics.Bag{}
	ident, root := parser.ParseEnglishDeclare(arg, arena, bag, e.declCtx())
	if bag.HasErrors() {
		return Result{Diags: bag}
	}
	checkBag := checker.Check(root, e.Opts, e.Reg)
	mergeInto(bag, checkBag)
	if bag.HasErrors() {
		return Result{Diags: bag}
	}
	return e.register(ident, root, bag)
}

func (e *Engine) register(ident string, root *ast.Node, bag *diagnostics.Bag) Result {
	name := sname.New(ident)
	// A user-registered alias stays visible across a later `set
	// language=` switch — only the predefined table's entries are gated
	// to the dialect(s) that actually declare them (spec §4.7).
	result, existing := e.Reg.Add(name, root, dialect.Any)
	if result == typedef.AddConflict {
		bag.Addf(diagnostics.Error, diagnostics.CodeRegistryConflict, root.Span,
			"%q is already defined as %s", ident, englishrender.Render(existing.Ref, e.Opts))
		return Result{Diags: bag}
	}
	return Result{Output: declrender.Render(root, ident, e.Opts), Diags: bag}
}

// ShowStyle selects how `show` renders each matched typedef entry
// (SPEC_FULL.md's filled-in `{english, decl, both}` enum, mirroring real
// cdecl's own `show` styles).
type ShowStyle int

const (
	ShowDecl ShowStyle = iota
	ShowEnglish
	ShowBoth
)

// Show implements `show(glob, style) -> stream of strings` (spec §6):
// one rendered line per matching, currently-visible typedef entry, in
// registration order (C7's Iter).
func (e *Engine) Show(glob string, style ShowStyle) []string {
	entries := e.Reg.Iter(glob, e.Opts.Dialect)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		ident := entry.Name.GlobalName()
		switch style {
		case ShowEnglish:
			lines = append(lines, "declare "+ident+" as "+englishrender.Render(entry.Ref, e.Opts))
		case ShowBoth:
			lines = append(lines, declrender.RenderTypedef(entry.Ref, ident, e.Opts)+"  // "+englishrender.Render(entry.Ref, e.Opts))
		default:
			lines = append(lines, declrender.RenderTypedef(entry.Ref, ident, e.Opts))
		}
	}
	return lines
}

// Help implements `help(topic) -> string` (spec §6). Recognized topics
// are the command verbs themselves; an empty or unrecognized topic
// returns the general command summary.
func (e *Engine) Help(topic string) string {
	if text, ok := helpTopics[topic]; ok {
		return text
	}
	return helpTopics[""]
}

var helpTopics = map[string]string{
	"": "commands: declare, cast, explain, define, typedef, show, set, help, ?, exit, quit, q",
	"declare": "declare NAME as ENGLISH -- render NAME's C/C++ declaration",
	"cast":    "cast NAME into ENGLISH -- render a cast expression",
	"explain": "explain DECL -- paraphrase a C/C++ declaration in English",
	"define":  "define NAME as ENGLISH -- register a typedef alias from an English phrase",
	"typedef": "typedef DECL -- register a typedef alias from C/C++ syntax",
	"show":    "show GLOB [decl|english|both] -- list registered typedefs",
	"set":     "set OPTION[=VALUE] -- view or change an option",
}

// dialectNames lists the canonical dialect names, used to drive
// Damerau-Levenshtein suggestions when a `set language=...` value does
// not resolve (resolution itself goes through dialect.Parse).
func dialectNames() []string {
	names := make([]string, 0, 16)
	for _, d := range []dialect.Dialect{
		dialect.KNRC, dialect.C89, dialect.C95, dialect.C99, dialect.C11, dialect.C17, dialect.C23,
		dialect.CPP98, dialect.CPP03, dialect.CPP11, dialect.CPP14, dialect.CPP17, dialect.CPP20, dialect.CPP23, dialect.CPP26,
	} {
		names = append(names, d.String())
	}
	return names
}
