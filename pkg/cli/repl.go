package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cdeclish/cdeclish/internal/engine"
)

// runBatch feeds each line of src through dispatch in order, writing
// rendered output and diagnostics to out, until EOF or an `exit`/
// `quit`/`q` line. There is no teacher precedent for a line-oriented
// interactive loop (funvibe-funxy's pkg/cli only ever does a single
// io.ReadAll(os.Stdin) read, never per-line dispatch) — this is built
// directly on stdlib bufio.Scanner idiom, the plainest Go way to read a
// stream one line at a time, with the teacher's own stdin-detection
// style (os.Stdin.Stat / ModeCharDevice, see entry.go) still governing
// which input source Run hands to it.
func runBatch(e *engine.Engine, src io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		r := dispatch(e, scanner.Text())
		writeResult(out, r, scanner.Text())
		if r.Quit {
			return
		}
	}
}

// runREPL is runBatch's interactive sibling: it prints a prompt before
// each read (unless prompt is empty, as Run makes it for --no-prompt),
// echoes each line read when echo is set, the way a line editor would, but uses the same
// bufio.Scanner read loop since cdeclish has no line-editing/history
// requirement of its own (spec §1 scopes the line editor out as
// "external collaborator glue").
func runREPL(e *engine.Engine, in io.Reader, out io.Writer, prompt string, echo bool) {
	scanner := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := scanner.Text()
		if echo {
			fmt.Fprintln(out, line)
		}
		r := dispatch(e, line)
		writeResult(out, r, line)
		if r.Quit {
			return
		}
	}
}

func writeResult(out io.Writer, r dispatchResult, source string) {
	for _, line := range r.Output {
		fmt.Fprintln(out, line)
	}
	for _, line := range formatDiags(r.Diags, source) {
		fmt.Fprintln(out, line)
	}
}
