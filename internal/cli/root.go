// Package cli wires up the qlam command-line tool on top of
// spf13/cobra, grounded on aledsdavies/devcmd's
// runtime/cli/harness.go: a CLIHarness holding one root *cobra.Command
// with persistent flags, and an addCommand-style registration step.
// devcmd's harness registers a dynamic slice of generated commands;
// here the command set is the two static subcommands spec §6.3 names,
// plus diagram ([MODULE I]).
package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wmcram/qlam"
	"github.com/wmcram/qlam/circuit"
	"github.com/wmcram/qlam/internal/config"
	"github.com/wmcram/qlam/internal/replloop"
	"github.com/wmcram/qlam/prelude"
)

// Harness is the static Cobra CLI framework for qlam, the same role
// devcmd's CLIHarness plays for its generated commands.
type Harness struct {
	rootCmd *cobra.Command

	configPath string
	maxSteps   int
	seed       int64
	noPrelude  bool
	log        *slog.Logger
}

// NewHarness builds the root command and its persistent flags
// (--config, --max-steps, --seed, --no-prelude), the generalized form of devcmd's
// --dry-run/--no-color persistent flags.
func NewHarness() *Harness {
	h := &Harness{}

	h.rootCmd = &cobra.Command{
		Use:           "qlam",
		Short:         "A quantum lambda calculus interpreter",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.runRepl(cmd)
		},
	}

	flags := h.rootCmd.PersistentFlags()
	flags.StringVar(&h.configPath, "config", "", "path to a YAML config file (max_steps, seed)")
	flags.IntVar(&h.maxSteps, "max-steps", 0, "reduction step budget (0 = use config file or default)")
	flags.Int64Var(&h.seed, "seed", 0, "measurement RNG seed (0 = use config file or non-deterministic)")
	flags.BoolVar(&h.noPrelude, "no-prelude", false, "start the REPL with an empty environment, skipping the built-in combinator library")

	h.addCommands()
	return h
}

// Execute runs the CLI, returning the error of whichever command ran.
func (h *Harness) Execute() error {
	return h.rootCmd.Execute()
}

// addCommands registers compile, repl, and diagram onto the root
// command, the static counterpart of devcmd's RegisterCommands.
func (h *Harness) addCommands() {
	h.rootCmd.AddCommand(&cobra.Command{
		Use:   "compile <path>",
		Short: "compile a circuit file to a term and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.runCompile(cmd, args[0])
		},
	})

	h.rootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "enter the interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.runRepl(cmd)
		},
	})

	h.rootCmd.AddCommand(&cobra.Command{
		Use:   "diagram <expr>",
		Short: "render a term as a Tromp-style diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.runDiagram(cmd, args[0])
		},
	})
}

// resolve merges the config file (if any) with flag overrides,
// flags winning per SPEC_FULL.md's ambient stack section.
func (h *Harness) resolve() (maxSteps int, rng *rand.Rand, err error) {
	cfg, err := config.Load(h.configPath)
	if err != nil {
		return 0, nil, err
	}

	maxSteps = cfg.MaxSteps
	if h.rootCmd.PersistentFlags().Changed("max-steps") && h.maxSteps != 0 {
		maxSteps = h.maxSteps
	}
	if maxSteps == 0 {
		maxSteps = config.DefaultMaxSteps
	}

	seed := cfg.Seed
	hasSeed := cfg.HasSeed
	if h.rootCmd.PersistentFlags().Changed("seed") && h.seed != 0 {
		seed, hasSeed = h.seed, true
	}
	if hasSeed {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return maxSteps, rng, nil
}

func (h *Harness) logger() *slog.Logger {
	if h.log == nil {
		h.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return h.log
}

// runCompile implements spec §6.3 mode 1: parse the circuit at path,
// compile to a term, print it, exit 0; a file or parse error surfaces
// as a non-zero exit through the returned error.
func (h *Harness) runCompile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := circuit.ParseCircuit(string(data))
	if err != nil {
		return err
	}
	h.logger().Debug("parsed circuit", "path", path, "qubits", len(c.Input), "layers", len(c.Layers))

	term, err := circuit.Compile(c)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), term.String())
	return nil
}

// runRepl implements spec §6.3 mode 2.
func (h *Harness) runRepl(cmd *cobra.Command) error {
	maxSteps, rng, err := h.resolve()
	if err != nil {
		return err
	}

	env := qlam.NewEnvironment()
	if !h.noPrelude {
		prelude.Load(env)
	}
	r := replloop.New(env, rng, maxSteps, h.logger(), cmd.OutOrStdout())
	return r.Run(cmd.InOrStdin())
}

// runDiagram implements [MODULE I]: parse expr and render it as a
// Tromp-style diagram, printing the unicode rendering.
func (h *Harness) runDiagram(cmd *cobra.Command, expr string) error {
	t, err := qlam.Parse(expr)
	if err != nil {
		return err
	}
	d := qlam.ToDiagram(t)
	fmt.Fprintln(cmd.OutOrStdout(), d.ToUnicode())
	return nil
}
