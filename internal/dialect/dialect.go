// Package dialect models the C/C++ "language version" bitset (spec §3,
// "Dialect id") that gates which declaration features are legal.
package dialect

import "strings"

// Dialect is a bitset of language versions. A single variable almost
// always holds exactly one bit (the "active" dialect); literals and
// legality tables use multi-bit masks to mean "legal in any of these".
type Dialect uint32

const (
	KNRC Dialect = 1 << iota
	C89
	C95
	C99
	C11
	C17
	C23
	CPP98
	CPP03
	CPP11
	CPP14
	CPP17
	CPP20
	CPP23
	CPP26
)

// AllC and AllCPP group the two language families; Any is everything.
const (
	AllC   = KNRC | C89 | C95 | C99 | C11 | C17 | C23
	AllCPP = CPP98 | CPP03 | CPP11 | CPP14 | CPP17 | CPP20 | CPP23 | CPP26
	Any    = AllC | AllCPP
)

// cOrder and cppOrder are the monotonic orderings used for "minimum dialect that allows
// X" diagnostics (§7, "Dialect-availability"): each family is ordered
// independently since C and C++ are not comparable to one another.
var cOrder = []Dialect{KNRC, C89, C95, C99, C11, C17, C23}
var cppOrder = []Dialect{CPP98, CPP03, CPP11, CPP14, CPP17, CPP20, CPP23, CPP26}

var names = map[Dialect]string{
	KNRC: "K&R C", C89: "C89", C95: "C95", C99: "C99", C11: "C11", C17: "C17", C23: "C23",
	CPP98: "C++98", CPP03: "C++03", CPP11: "C++11", CPP14: "C++14", CPP17: "C++17",
	CPP20: "C++20", CPP23: "C++23", CPP26: "C++26",
}

// String renders a single dialect bit, or a '|'-joined list for a mask.
func (d Dialect) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	var parts []string
	for _, bit := range append(append([]Dialect{}, cOrder...), cppOrder...) {
		if d&bit != 0 {
			parts = append(parts, names[bit])
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// IsCPP reports whether d names (or is a subset of) the C++ family.
func (d Dialect) IsCPP() bool { return d&AllCPP != 0 && d&AllC == 0 }

// IsC reports whether d names (or is a subset of) the C family.
func (d Dialect) IsC() bool { return d&AllC != 0 && d&AllCPP == 0 }

// Contains reports whether every bit of other is set in d (P3's "L ⊂ L'"
// direction uses this with the arguments swapped).
func (d Dialect) Contains(other Dialect) bool { return other&^d == 0 }

// AtLeast returns the mask of lang and every later dialect in its
// family's monotonic order; used to phrase "available since" messages.
func AtLeast(lang Dialect) Dialect {
	order := cOrder
	if lang.IsCPP() {
		order = cppOrder
	}
	var mask Dialect
	found := false
	for _, bit := range order {
		if bit == lang {
			found = true
		}
		if found {
			mask |= bit
		}
	}
	return mask
}

// aliases maps the spellings accepted for `--language=LANG`/`set language`
// (spec §6) onto the canonical names table, beyond names' own exact
// "K&R C"/"C17"/"C++17" forms.
var aliases = map[string]Dialect{
	"knr": KNRC, "kandr": KNRC, "k&r": KNRC, "k&rc": KNRC,
	"c89": C89, "ansi-c": C89, "c90": C89,
	"c95": C95,
	"c99": C99,
	"c11": C11,
	"c17": C17, "c18": C17,
	"c23": C23,
	"c++98": CPP98, "cpp98": CPP98,
	"c++03": CPP03, "cpp03": CPP03,
	"c++11": CPP11, "cpp11": CPP11, "c++0x": CPP11,
	"c++14": CPP14, "cpp14": CPP14,
	"c++17": CPP17, "cpp17": CPP17,
	"c++20": CPP20, "cpp20": CPP20,
	"c++23": CPP23, "cpp23": CPP23,
	"c++26": CPP26, "cpp26": CPP26,
}

// Parse resolves a `--language=LANG` style spelling to its Dialect,
// case-insensitively and tolerant of the "cpp17"/"c++17" spelling split.
func Parse(name string) (Dialect, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if d, ok := aliases[lower]; ok {
		return d, true
	}
	for d, n := range names {
		if strings.ToLower(n) == lower {
			return d, true
		}
	}
	return 0, false
}

// Earliest returns the lowest single bit set in mask according to its
// family's order, used to phrase "not supported until X" diagnostics.
func Earliest(mask Dialect) (Dialect, bool) {
	for _, bit := range cOrder {
		if mask&bit != 0 {
			return bit, true
		}
	}
	for _, bit := range cppOrder {
		if mask&bit != 0 {
			return bit, true
		}
	}
	return 0, false
}
