// Package pipeline implements the command-processing pipeline each of
// internal/engine's command kinds (explain/declare/cast/...) runs through: lex/parse
// -> check -> render, each stage appending to a shared diagnostics.Bag
// and continuing even after an error so later stages can still surface
// what they can (spec §7, "the renderers and the checker collect
// diagnostics into a per-command buffer"). Grounded on funvibe-funxy's
// internal/pipeline/pipeline.go Pipeline/Processor/Run shape, adapted
// from a source-file compile pipeline to a single-command translate
// pipeline.
package pipeline

import (
	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/diagnostics"
	"github.com/cdeclish/cdeclish/internal/options"
)

// Context carries one command's state between stages, the way the
// teacher's PipelineContext carries source text/AST/symbols between
// ParserProcessor and EvaluatorProcessor.
type Context struct {
	Input   string
	Opts    options.Options
	Arena   *ast.Arena
	Root    *ast.Node
	Diags   diagnostics.Bag
	Output  string
}

// NewContext starts a Context for one command's input under opts.
func NewContext(input string, opts options.Options) *Context {
	return &Context{Input: input, Opts: opts, Arena: ast.NewArena()}
}

// Aborted reports whether an earlier stage recorded an Error or
// Internal diagnostic (spec §7: "Warnings never abort; only errors and
// internals do").
func (c *Context) Aborted() bool { return c.Diags.HasErrors() }

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *Context) *Context

func (f ProcessorFunc) Process(ctx *Context) *Context { return f(ctx) }

// Pipeline runs a fixed sequence of stages over one Context.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from stages, run in order by Run.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order, always passing ctx through to the
// next stage even if Aborted — later stages are expected to check
// Aborted themselves and skip their own work rather than the Pipeline
// short-circuiting, since a checker stage still wants to report
// everything it can about the same command.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
