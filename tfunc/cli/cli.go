// Package cli implements the tfunc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/tfunc/ui/termui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tfunc [expression]",
	Short: "Evaluate and tabulate functions of t",
	Long: `Welcome to tfunc V0.1

tfunc reads a function of a single variable t, e.g.

    sin^2 t + 2|t-1| + log_2 8

and prints its canonical form and its value at a given t, or a table of
values over an interval.

tfunc is able to run in interactive mode, prompting for expressions in a
terminal REPL.

`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runTfuncCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		tfunc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.Flags().Float64P("at", "t", 0, "Value of t to evaluate the expression at")
	rootCmd.Flags().Float64("from", 0, "Start of interval to tabulate")
	rootCmd.Flags().Float64("to", 1, "End of interval to tabulate")
	rootCmd.Flags().Int("steps", 0, "Number of steps to tabulate (default from config sample.steps)")
}

func runTfuncCmd(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive || len(args) == 0 {
		runTfuncREPL()
		return nil
	}
	input := normalize(strings.Join(args, " "))
	tracing.Infof("tfunc called for %q", input)
	calc := newCalculator(os.Stdout)
	calc.at, _ = cmd.Flags().GetFloat64("at")
	expr, err := calc.parse(input)
	if err != nil {
		reportError(os.Stderr, input, err)
		return err
	}
	if !cmd.Flags().Changed("from") && !cmd.Flags().Changed("to") {
		calc.show(expr)
		return nil
	}
	from, _ := cmd.Flags().GetFloat64("from")
	to, _ := cmd.Flags().GetFloat64("to")
	steps, _ := cmd.Flags().GetInt("steps")
	if steps == 0 {
		steps = tfunc.ConfigInt("sample.steps", 10)
	}
	if err := calc.tabulate(tfunc.SignalContext, expr, from, to, steps); err != nil {
		tracing.Errorf("tabulating %s: %v", expr, err)
		return err
	}
	return nil
}

// --- REPL ------------------------------------------------------------------

func runTfuncREPL() {
	tracing.Infof("tfunc REPL called")
	paths := tfuncAppPaths()
	intp := &tfuncIntpr{}
	intp.BaseREPL = termui.NewBaseREPL("tfunc", "0.1", paths.HistoryFile(), "at", "table")
	intp.Interpreter = intp
	stdout, _ := intp.Outputs()
	intp.calc = newCalculator(stdout)
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, `
tfunc will interpret the following statements:

  <expression>                 : parse an expression and evaluate it at t
  at <value>                   : set t and evaluate the current expression
  table <from> <to> [<steps>]  : tabulate the current expression

`)
	}
	intp.Prompt(true)
}

type tfuncIntpr struct {
	*termui.BaseREPL
	calc *calculator
}

// InterpretCommand is called by the REPL for every line which is not a
// REPL command.
func (intp *tfuncIntpr) InterpretCommand(command string) {
	command = normalize(strings.Trim(command, "\x00"))
	tracer().Debugf("tfunc interpreter: %q", command)
	_, stderr := intp.Outputs()
	words := strings.Fields(command)
	if len(words) == 0 {
		return
	}
	switch words[0] {
	case "at":
		if len(words) != 2 {
			fmt.Fprintln(stderr, "usage: at <value>")
			return
		}
		at, err := strconv.ParseFloat(words[1], 64)
		if err != nil {
			fmt.Fprintf(stderr, "not a number: %s\n", words[1])
			return
		}
		intp.calc.at = at
		if intp.calc.current != nil {
			intp.calc.show(intp.calc.current)
		}
	case "table":
		if err := intp.table(words[1:]); err != nil {
			fmt.Fprintf(stderr, "table: %v\n", err)
		}
	default:
		expr, err := intp.calc.parse(command)
		if err != nil {
			reportError(stderr, command, err)
			return
		}
		intp.calc.show(expr)
	}
}

func (intp *tfuncIntpr) table(args []string) error {
	if intp.calc.current == nil {
		return fmt.Errorf("no expression to tabulate")
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: table <from> <to> [<steps>]")
	}
	var bounds [2]float64
	for i := range bounds {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("not a number: %s", args[i])
		}
		bounds[i] = v
	}
	steps := tfunc.ConfigInt("sample.steps", 10)
	if len(args) == 3 {
		s, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("not an integer: %s", args[2])
		}
		steps = s
	}
	return intp.calc.tabulate(tfunc.SignalContext, intp.calc.current, bounds[0], bounds[1], steps)
}
