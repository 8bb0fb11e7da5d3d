// Package options implements the option-state component of spec §4.8
// (C8): a plain value threaded explicitly into every render/validate
// call, never hidden global state, mirroring the teacher's practice of
// passing pipeline.PipelineContext around rather than reaching for
// package-level mutable state.
package options

import "github.com/cdeclish/cdeclish/internal/dialect"

// GraphMode selects digraph/trigraph rewriting in C6 (spec §4.8).
type GraphMode int

const (
	GraphNone GraphMode = iota
	GraphDigraphs
	GraphTrigraphs
)

func (g GraphMode) String() string {
	switch g {
	case GraphDigraphs:
		return "di"
	case GraphTrigraphs:
		return "tri"
	default:
		return "none"
	}
}

// ExplicitIntBit names one bit of the ExplicitInt bitmask: a
// width/signedness pair for which C5/C6 must emit a redundant `int`
// (spec §4.8, `{s,i,l,ll} x {signed,unsigned}`).
type ExplicitIntBit uint16

const (
	ExplicitSignedShort ExplicitIntBit = 1 << iota
	ExplicitUnsignedShort
	ExplicitSignedInt
	ExplicitUnsignedInt
	ExplicitSignedLong
	ExplicitUnsignedLong
	ExplicitSignedLongLong
	ExplicitUnsignedLongLong
)

// ExplicitECSUBit names one bit of the ExplicitECSU bitmask: tag
// keywords C6 must always spell out even when unambiguous (spec §4.8,
// `{e,c,s,u}`).
type ExplicitECSUBit uint8

const (
	ExplicitEnum ExplicitECSUBit = 1 << iota
	ExplicitClass
	ExplicitStruct
	ExplicitUnion
)

// Options is the full enumerated configuration of spec §4.8, passed by
// value or pointer into every operation that needs it — never read from
// a global.
type Options struct {
	Dialect       dialect.Dialect
	Graph         GraphMode
	EastConst     bool
	ExplicitInt   ExplicitIntBit
	ExplicitECSU  ExplicitECSUBit
	AltTokens     bool
	Semicolon     bool

	// Carried over from SPEC_FULL's persisted-configuration surface
	// (§6 "Persisted state"), ambient rather than named in spec.md's C8
	// table but part of the same threaded value.
	Prompt        string
	EchoCommands  bool
	EnglishTypes  bool
	Debug         bool
	Color         ColorMode
	Using         []string

	// Strict gates C4's std:: extension check (spec §4.4 item 6): when
	// set, only a permitted set of names may extend the std namespace.
	Strict bool
}

// ColorMode mirrors a `--color=WHEN` resolution (auto/always/never),
// grounded on funvibe-funxy's detectColorLevel in
// internal/evaluator/builtins_term.go.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Default returns the baseline option set a freshly started engine uses
// before any `set` command or persisted config is applied. Real cdecl
// ships explicit-ecsu=su by default: struct and union always spell
// their keyword even where C++ would let the bare tag name stand.
func Default() Options {
	return Options{
		Dialect:      dialect.CPP17,
		Graph:        GraphNone,
		EastConst:    false,
		ExplicitECSU: ExplicitStruct | ExplicitUnion,
		AltTokens:    false,
		Semicolon:    true,
		Prompt:       "cdeclish> ",
		EnglishTypes: false,
		Color:        ColorAuto,
	}
}

// HasExplicitInt reports whether bit is set in o.ExplicitInt.
func (o Options) HasExplicitInt(bit ExplicitIntBit) bool { return o.ExplicitInt&bit != 0 }

// HasExplicitECSU reports whether bit is set in o.ExplicitECSU.
func (o Options) HasExplicitECSU(bit ExplicitECSUBit) bool { return o.ExplicitECSU&bit != 0 }
