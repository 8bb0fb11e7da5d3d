// Command cdeclish is the cdeclish collaborator binary: it wires
// os.Args and the standard streams into pkg/cli.Run, following the
// teacher's cmd/funxy/main.go shape of a near-empty main that delegates
// immediately to the cli package.
package main

import (
	"os"

	"github.com/cdeclish/cdeclish/pkg/cli"
)

func main() {
	os.Exit(cli.Run())
}
