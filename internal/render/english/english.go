// Package english implements the English renderer of spec §4.5 (C5): a
// fixed recursive grammar turning a checked declarator AST into its
// English paraphrase. It assumes the AST has already passed C4 and does
// not itself consult the dialect, per the spec's explicit note.
package english

import (
	"fmt"
	"strings"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/options"
)

// explicitIntMask translates the option-layer bitmask (internal/options,
// which is what `set explicit-int` writes) into ctype's rendering-layer
// mask, since the two are independently enumerated bit orders (C8's
// configuration surface vs C1's token-emission machinery).
func explicitIntMask(o options.ExplicitIntBit) ctype.ExplicitIntMask {
	var m ctype.ExplicitIntMask
	if o&options.ExplicitSignedShort != 0 {
		m |= ctype.ExplicitSignedShort
	}
	if o&options.ExplicitUnsignedShort != 0 {
		m |= ctype.ExplicitUnsignedShort
	}
	if o&options.ExplicitSignedInt != 0 {
		m |= ctype.ExplicitSignedInt
	}
	if o&options.ExplicitUnsignedInt != 0 {
		m |= ctype.ExplicitUnsignedInt
	}
	if o&options.ExplicitSignedLong != 0 {
		m |= ctype.ExplicitSignedLong
	}
	if o&options.ExplicitUnsignedLong != 0 {
		m |= ctype.ExplicitUnsignedLong
	}
	if o&options.ExplicitSignedLongLong != 0 {
		m |= ctype.ExplicitSignedLongLong
	}
	if o&options.ExplicitUnsignedLongLong != 0 {
		m |= ctype.ExplicitUnsignedLongLong
	}
	return m
}

// Render paraphrases n in English under opts.
//
// Spec §4.5 rule (b), "returning is omitted when the return type is
// void only for constructors/destructors," is structurally already
// true here: Constructor and Destructor nodes carry no Ret field at
// all (spec §4.4 item 5, "constructors/destructors have no return
// type"), so there is never a void Ret to omit in the first place.
func Render(n *ast.Node, opts options.Options) string {
	return render(n, opts)
}

func render(n *ast.Node, opts options.Options) string {
	if n == nil {
		return ""
	}
	mask := explicitIntMask(opts.ExplicitInt)

	switch n.Kind {
	case ast.KindBuiltin:
		return ctype.English(n.Type, mask)

	case ast.KindTypedef:
		return n.SName.GlobalName()

	case ast.KindEnum, ast.KindClass, ast.KindStruct, ast.KindUnion:
		return tagWord(n.Kind) + " " + n.SName.GlobalName()

	case ast.KindName:
		return n.SName.GlobalName()

	case ast.KindPointer:
		inner := render(n.To, opts)
		return "pointer to " + inner

	case ast.KindPointerToMember:
		of := ""
		if n.OfClass != nil {
			of = "to member of " + n.OfClass.SName.GlobalName() + " "
		}
		return "pointer " + of + "to " + render(n.To, opts)

	case ast.KindReference:
		return "reference to " + render(n.To, opts)

	case ast.KindRvalueReference:
		return "rvalue reference to " + render(n.To, opts)

	case ast.KindArray:
		size := ""
		switch n.ArraySize.Kind {
		case ast.ArraySizeN:
			size = fmt.Sprintf(" %d", n.ArraySize.N)
		case ast.ArraySizeStar:
			size = " variable-length"
		case ast.ArraySizeVariable:
			size = " variable-length"
		}
		return "array" + size + " of " + render(n.Of, opts)

	case ast.KindFunction, ast.KindOperator:
		args := renderArgs(n.Params, n.Variadic, opts)
		ret := ""
		retWord := render(n.Ret, opts)
		if retWord != "" {
			ret = " returning " + retWord
		}
		prefix := "function"
		if n.Kind == ast.KindOperator {
			prefix = "operator " + n.OpID
		}
		if args != "" {
			return prefix + " (" + args + ")" + ret
		}
		return prefix + ret

	case ast.KindApplBlock:
		args := renderArgs(n.Params, n.Variadic, opts)
		ret := render(n.Ret, opts)
		if ret != "" {
			ret = " returning " + ret
		}
		if args != "" {
			return "block (" + args + ")" + ret
		}
		return "block" + ret

	case ast.KindConstructor:
		args := renderArgs(n.Params, false, opts)
		if args != "" {
			return "constructor (" + args + ")"
		}
		return "constructor"

	case ast.KindDestructor:
		return "destructor"

	case ast.KindUserDefinedConversion:
		return "user-defined conversion to " + render(n.To, opts)

	case ast.KindUserDefinedLiteral:
		args := renderArgs(n.Params, false, opts)
		ret := render(n.Ret, opts)
		if ret != "" {
			ret = " returning " + ret
		}
		return "user-defined literal (" + args + ")" + ret

	default:
		return ""
	}
}

func tagWord(k ast.Kind) string {
	switch k {
	case ast.KindEnum:
		return "enumeration"
	case ast.KindClass:
		return "class"
	case ast.KindStruct:
		return "structure"
	case ast.KindUnion:
		return "union"
	default:
		return ""
	}
}

func renderArgs(params []*ast.Node, variadic bool, opts options.Options) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, render(p, opts))
	}
	if variadic {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}
