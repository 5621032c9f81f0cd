// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tfunc/evaluator"
	"github.com/shopspring/decimal"
)

// trace traces with key 'tfunc.cli'.
func trace() tracing.Trace {
	return tracing.Select("tfunc.cli")
}

// Formatter writes items to a terminal.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// Evaluation is the value of an expression at a given t.
type Evaluation struct {
	At    float64
	Value float64
}

// DefaultFormatter formats expressions, numbers and tables. Numbers are
// rounded to Precision decimal places.
type DefaultFormatter struct {
	Precision int
}

// Format writes item to w. It returns false for items it does not know how
// to format.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var s string
	switch t := item.(type) {
	case string:
		s = "▶ " + t + "\n"
	case *evaluator.Expr:
		s = "▶ f(t) = " + prtxt.Bold.Sprint(t.String()) + "\n"
	case float64:
		s = "▶ " + Round(t, df.Precision) + "\n"
	case Evaluation:
		s = fmt.Sprintf("▶ f(%s) = %s\n", Round(t.At, df.Precision), Round(t.Value, df.Precision))
	case []arithm.Pair:
		s = PointsTable(t, df.Precision).Render() + "\n"
	case table.Writer:
		if t == nil {
			s = "▶ (empty table)\n"
		} else {
			s = t.Render() + "\n"
		}
	default:
		trace().Debugf("no format for item of type %T", t)
		return false, nil
	}
	_, err := io.WriteString(w, s)
	return err == nil, err
}

// Round formats x with at most prec decimal places, dropping trailing zeros.
func Round(x float64, prec int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}
	return decimal.NewFromFloat(x).Round(int32(prec)).String()
}

// PointsTable creates a table of sampled points with columns t and f(t).
func PointsTable(points []arithm.Pair, prec int) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"t", "f(t)"})
	for _, p := range points {
		tw.AppendRow(table.Row{Round(p.X(), prec), Round(p.Y(), prec)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: prtxt.AlignRight},
		{Number: 2, Align: prtxt.AlignRight},
	})
	return tw
}
