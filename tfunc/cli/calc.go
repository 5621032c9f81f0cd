package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/evaluator"
	"github.com/npillmayer/tfunc/grammar"
	"github.com/npillmayer/tfunc/tfunc/ui/termui"
	"github.com/npillmayer/tfunc/vm"
	"golang.org/x/text/width"
)

// calculator holds the state of an evaluation session: the current
// expression and the current value of t.
type calculator struct {
	current *evaluator.Expr
	at      float64
	out     io.Writer
	format  termui.Formatter
}

func newCalculator(out io.Writer) *calculator {
	return &calculator{
		out:    out,
		format: termui.DefaultFormatter{Precision: tfunc.ConfigInt("display.precision", 6)},
	}
}

// parse reads an expression and makes it the current one.
func (calc *calculator) parse(input string) (*evaluator.Expr, error) {
	expr, err := grammar.Parse(input)
	if err != nil {
		return nil, err
	}
	calc.current = expr
	return expr, nil
}

// show prints the canonical form of expr and its value at the current t.
func (calc *calculator) show(expr *evaluator.Expr) {
	calc.format.Format(expr, calc.out)
	if expr.IsConstant() {
		calc.format.Format(expr.Evaluate(0), calc.out)
		return
	}
	calc.format.Format(termui.Evaluation{At: calc.at, Value: expr.Evaluate(calc.at)}, calc.out)
}

// tabulate prints a table of values of expr over an interval.
func (calc *calculator) tabulate(ctx context.Context, expr *evaluator.Expr, from, to float64, steps int) error {
	prog := vm.Compile(expr)
	workers := tfunc.ConfigInt("sample.workers", 4)
	points, err := vm.Sample(ctx, prog, from, to, steps, workers)
	if err != nil {
		return err
	}
	tw := termui.PointsTable(points, tfunc.ConfigInt("display.precision", 6))
	tw.SetTitle("f(t) = %s", expr)
	tw.SetStyle(table.StyleLight)
	_, err = calc.format.Format(tw, calc.out)
	return err
}

// normalize folds full-width and half-width characters to their canonical
// width, so "ｓｉｎ（ｔ）" is read as "sin(t)".
func normalize(input string) string {
	return width.Fold.String(input)
}

// reportError prints err. Input errors are printed with a caret below the
// position of the error.
func reportError(w io.Writer, input string, err error) {
	var ierr tfunc.InputError
	if !errors.As(err, &ierr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	pos := ierr.Pos()
	if pos > len(input) {
		pos = len(input)
	}
	fmt.Fprintf(w, "  %s\n", input)
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", utf8.RuneCountInString(input[:pos])))
	fmt.Fprintf(w, "error: %v\n", err)
}
