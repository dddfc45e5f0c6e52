// Package replloop implements the interactive prompt of spec §6.3 mode
// 2. Grounded on original_source/src/repl.rs's repl/repl_line/
// print_prompt, generalized from "parse and print" (the original never
// evaluates — it just echoes the parsed term back) to the full command
// set spec §6.3 names: env, reset, help, quit/EOF, and
// assignment-or-evaluate for everything else. No readline library is
// used, matching original_source's plain stdin.read_line loop — spec
// explicitly scopes history/readline ergonomics out as a collaborator.
package replloop

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/wmcram/qlam"
)

// helpText is the reserved-identifier cheatsheet printed by "help",
// per spec §6.1's reserved character/symbol list.
const helpText = `reserved characters: \ or λ (linear lambda), # (nonlinear lambda), ! (nonlinear suspension), ( ) | > = (qubits, grouping, assignment)
reserved symbols: H, C, T (gates), M (measurement)
qubit literals: |0>, |1>
commands: env, reset, help, quit (or EOF)
anything else: NAME = EXPR to bind, or a bare EXPR to evaluate and print`

// REPL holds the state of one interactive session: its binding
// environment (spec §3), RNG (spec §4.6's measurement source), and
// step budget (spec §9's open question).
type REPL struct {
	Env      *qlam.Environment
	RNG      *rand.Rand
	MaxSteps int
	Logger   *slog.Logger
	Out      io.Writer
}

// New builds a REPL over env. A nil logger is replaced with one that
// discards output.
func New(env *qlam.Environment, rng *rand.Rand, maxSteps int, logger *slog.Logger, out io.Writer) *REPL {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &REPL{Env: env, RNG: rng, MaxSteps: maxSteps, Logger: logger, Out: out}
}

// Run drives the read-process-print loop over in until EOF or "quit",
// mirroring original_source's repl(): print a prompt, read a line,
// process it, repeat. Every line's error is printed and the loop
// continues — spec §7's "fatal to the current REPL line, not the
// process" policy.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	r.printPrompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		quit, err := r.processLine(line)
		if err != nil {
			fmt.Fprintln(r.Out, err)
		}
		if quit {
			return nil
		}
		r.printPrompt()
	}
	return scanner.Err()
}

func (r *REPL) printPrompt() {
	fmt.Fprint(r.Out, "qlam> ")
}

// processLine handles one line of input, returning true if the REPL
// should exit.
func (r *REPL) processLine(line string) (quit bool, err error) {
	switch line {
	case "":
		return false, nil
	case "quit":
		return true, nil
	case "help":
		fmt.Fprintln(r.Out, helpText)
		return false, nil
	case "reset":
		r.Env.Reset()
		return false, nil
	case "env":
		names := r.Env.Names()
		if len(names) == 0 {
			fmt.Fprintln(r.Out, "(empty)")
			return false, nil
		}
		for _, name := range names {
			t, _ := r.Env.Lookup(name)
			fmt.Fprintf(r.Out, "%s = %s\n", name, t.String())
		}
		return false, nil
	}

	if name, expr, ok := splitAssignment(line); ok {
		t, perr := qlam.Parse(expr)
		if perr != nil {
			return false, perr
		}
		r.Env.Define(name, r.Env.Expand(t))
		return false, nil
	}

	t, perr := qlam.Parse(line)
	if perr != nil {
		return false, perr
	}
	t = r.Env.Expand(t)
	val, everr := qlam.Eval(t, r.RNG, r.MaxSteps)
	if everr != nil {
		return false, everr
	}
	r.Logger.Debug("evaluated line", "input", line)
	fmt.Fprintln(r.Out, val.String())
	return false, nil
}

// splitAssignment recognizes a top-level "NAME = EXPR" line, per spec
// §6.1. It splits on the first '=' only, since '=' is reserved and
// does not otherwise appear in surface syntax.
func splitAssignment(line string) (name, expr string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:idx])
	expr = strings.TrimSpace(line[idx+1:])
	if name == "" {
		return "", "", false
	}
	return name, expr, true
}
