// Command qlam is the entry point for the interpreter's CLI
// ([MODULE K]), grounded on the teacher's cli/lambdarun/main.go (a
// flag-parse-then-dispatch main) but built on spf13/cobra per
// SPEC_FULL.md's domain stack, the way aledsdavies/devcmd's harness
// wires its generated commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wmcram/qlam/internal/cli"
)

// Exit codes per spec §6.3: 0 on clean exit, 1 on CLI misuse, nonzero
// on I/O failure.
const (
	exitOK        = 0
	exitCLIMisuse = 1
	exitIOFailure = 2
)

func main() {
	h := cli.NewHarness()
	if err := h.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return exitIOFailure
	}
	return exitCLIMisuse
}
