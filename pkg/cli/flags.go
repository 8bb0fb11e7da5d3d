package cli

import "strings"

// flags is the parsed spec §6 command-line flag surface. Parsing is
// manual os.Args scanning in the teacher's own idiom
// (funvibe-funxy/pkg/cli/entry.go's handleBuild/handleCompile argument
// loops) rather than a flag/pflag/cobra library — the teacher never
// reaches for one, so neither does cdeclish.
type flags struct {
	Language     string
	Color        string
	EastConst    bool
	Explain      bool
	ExplicitInt  string
	ExplicitECSU string
	Digraphs     bool
	Trigraphs    bool
	AltTokens    bool
	NoPrompt     bool
	NoSemicolon  bool
	NoTypedefs   bool
	NoConfig     bool
	File         string
	Output       string
	Help         bool
	Version      bool

	// Rest is whatever wasn't consumed as a flag: a one-shot command
	// line, e.g. `cdeclish declare x as pointer to int`.
	Rest []string
}

// parseFlags walks args (os.Args[1:]) the way the teacher's build/embed
// loops do: a manual switch over each argument, `--flag=value` cut on
// "=" for valued flags, bare boolean flags needing no lookahead.
// Anything not recognized as a flag is collected into Rest in order,
// mirroring the teacher's practice of leaving the positional arguments
// untouched once its own flags are stripped out.
func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			f.Rest = append(f.Rest, arg)
			continue
		}
		key, value, hasValue := strings.Cut(arg, "=")
		switch key {
		case "--language":
			if !hasValue {
				return nil, usageErrorf("--language requires a value")
			}
			f.Language = value
		case "--color":
			if !hasValue {
				return nil, usageErrorf("--color requires a value")
			}
			f.Color = value
		case "--east-const":
			f.EastConst = true
		case "--explain":
			f.Explain = true
		case "--explicit-int":
			if !hasValue {
				return nil, usageErrorf("--explicit-int requires a value")
			}
			f.ExplicitInt = value
		case "--explicit-ecsu":
			if !hasValue {
				return nil, usageErrorf("--explicit-ecsu requires a value")
			}
			f.ExplicitECSU = value
		case "--digraphs":
			f.Digraphs = true
		case "--trigraphs":
			f.Trigraphs = true
		case "--alt-tokens":
			f.AltTokens = true
		case "--no-prompt":
			f.NoPrompt = true
		case "--no-semicolon":
			f.NoSemicolon = true
		case "--no-typedefs":
			f.NoTypedefs = true
		case "--no-config":
			f.NoConfig = true
		case "--file":
			if !hasValue {
				return nil, usageErrorf("--file requires a value")
			}
			f.File = value
		case "--output":
			if !hasValue {
				return nil, usageErrorf("--output requires a value")
			}
			f.Output = value
		case "--help", "-h":
			f.Help = true
		case "--version", "-v":
			f.Version = true
		default:
			return nil, usageErrorf("unrecognized flag %q", arg)
		}
	}
	return f, nil
}
