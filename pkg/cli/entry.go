// Package cli implements spec §6's downstream command-dispatcher
// collaborator: CLI flag parsing, the persisted-config load, and the
// REPL/batch command loop wired onto internal/engine.Engine, in the
// teacher's own entry-point shape (funvibe-funxy/pkg/cli/entry.go's
// Run — manual os.Args scanning, a panic-recovery wrapper translating
// an internal failure into a clean exit code, the
// os.Stdin.Stat/ModeCharDevice piped-input check).
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cdeclish/cdeclish/internal/config"
	"github.com/cdeclish/cdeclish/internal/engine"
	"github.com/cdeclish/cdeclish/internal/typedef"
)

const usage = `usage: cdeclish [flags] [command ...]

commands: declare, cast, explain, define, typedef, show, set, help, ?, exit, quit, q

flags:
  --language=LANG           C/C++ dialect (default c++17)
  --color=WHEN               always, auto, isatty, never, not_file, not_isreg, tty
  --east-const               east-const style ("int const" over "const int")
  --explain                   treat the command line itself as a declaration to explain
  --explicit-int=FMT          comma-separated width/signedness tokens (s,us,i,ui,l,ul,ll,ull)
  --explicit-ecsu=FMT         comma-separated tag tokens (e,c,s,u)
  --digraphs                  emit digraphs instead of the named punctuators
  --trigraphs                 emit trigraphs instead of the named punctuators
  --alt-tokens                emit alternative tokens (and/or/not/...)
  --no-prompt                 suppress the interactive prompt
  --no-semicolon              omit the trailing semicolon from declarations
  --no-typedefs               start with no predefined typedef aliases
  --no-config                 skip loading .cdeclishrc
  --file=PATH                 read commands from PATH instead of stdin
  --output=PATH               write output to PATH instead of stdout
  --help                      print this message
  --version                   print the version
`

// Run is cdeclish's process entry point: parse flags, load persisted
// config, then dispatch either a one-shot command line, a batch file/
// piped stream, or an interactive REPL.
func Run() int {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
		}
	}()

	f, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return exitCode(err)
	}
	if f.Help {
		fmt.Print(usage)
		return 0
	}
	if f.Version {
		fmt.Println("cdeclish " + config.Version)
		return 0
	}

	e := engine.New()
	if f.NoTypedefs {
		e.Reg = typedef.NewEmpty()
	}

	if !f.NoConfig {
		if path, ok := config.FindConfigFile("."); ok {
			cfg, err := config.LoadFileConfig(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %s\n", err)
			} else {
				for _, line := range formatDiags(e.ApplyFileConfig(cfg), "") {
					fmt.Fprintln(os.Stderr, line)
				}
			}
		}
	}
	if err := applyFlags(e, f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}

	out := io.Writer(os.Stdout)
	if f.Output != "" {
		file, err := os.Create(f.Output)
		if err != nil {
			oerr := outputErrorf("cannot create output %s: %s", f.Output, err)
			fmt.Fprintln(os.Stderr, oerr)
			return exitCode(oerr)
		}
		defer file.Close()
		out = file
	}

	if len(f.Rest) > 0 {
		line := strings.Join(f.Rest, " ")
		if f.Explain {
			r := result(e.Explain(line))
			writeResult(out, r, line)
		} else {
			r := dispatch(e, line)
			writeResult(out, r, line)
		}
		return 0
	}

	if f.File != "" {
		in, err := os.Open(f.File)
		if err != nil {
			merr := missingInputErrorf("cannot read %s: %s", f.File, err)
			fmt.Fprintln(os.Stderr, merr)
			return exitCode(merr)
		}
		defer in.Close()
		runBatch(e, in, out)
		return 0
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		runBatch(e, os.Stdin, out)
		return 0
	}

	prompt := e.Opts.Prompt
	if f.NoPrompt || e.Opts.Prompt == "" {
		prompt = ""
	}
	runREPL(e, os.Stdin, out, prompt, e.Opts.EchoCommands)
	return 0
}

// applyFlags layers the CLI flags onto e, one Set call per present
// flag, the same validation path ApplyFileConfig uses for .cdeclishrc —
// a bad flag value is still just a warning by spec §6's "unknown keys
// are warnings" stance, except here it also means the flag was typed
// wrong on a one-shot invocation, so Run treats it as a usage error
// instead of a silently-ignored warning.
func applyFlags(e *engine.Engine, f *flags) error {
	sets := map[string]string{}
	if f.Language != "" {
		sets["language"] = f.Language
	}
	if f.Color != "" {
		sets["color"] = f.Color
	}
	if f.EastConst {
		sets["east-const"] = "true"
	}
	if f.ExplicitInt != "" {
		sets["explicit-int"] = f.ExplicitInt
	}
	if f.ExplicitECSU != "" {
		sets["explicit-ecsu"] = f.ExplicitECSU
	}
	if f.Digraphs {
		sets["digraphs"] = "true"
	}
	if f.Trigraphs {
		sets["trigraphs"] = "true"
	}
	if f.AltTokens {
		sets["alt-tokens"] = "true"
	}
	if f.NoSemicolon {
		sets["semicolon"] = "false"
	}

	// Set only ever reports a flag-shaped problem as a Warning (spec
	// §6's "unknown keys are warnings" stance for the persisted config);
	// a flag typed wrong on the command line is a usage error instead,
	// so any diagnostic at all here means Run should refuse to start
	// rather than quietly proceed with the default value.
	for key, value := range sets {
		r := e.Set(key + "=" + value)
		if r.Diags != nil && r.Diags.Len() > 0 {
			return usageErrorf("--%s: %s", key, r.Diags.All()[0].Message)
		}
	}
	return nil
}
