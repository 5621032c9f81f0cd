package termui

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tfunc/grammar"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.cli")
	defer teardown()
	//
	for _, x := range []struct {
		v    float64
		prec int
		out  string
	}{
		{2, 6, "2"},
		{0.1234567, 6, "0.123457"},
		{-1.25, 1, "-1.3"},
		{math.NaN(), 6, "NaN"},
		{math.Inf(1), 6, "∞"},
		{math.Inf(-1), 6, "-∞"},
	} {
		assert.Equal(t, x.out, Round(x.v, x.prec), "round(%g, %d)", x.v, x.prec)
	}
}

func TestFormatValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.cli")
	defer teardown()
	//
	df := DefaultFormatter{Precision: 3}
	var buf bytes.Buffer
	ok, err := df.Format(Evaluation{At: 0.5, Value: 1.0 / 3}, &buf)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, "▶ f(0.5) = 0.333\n", buf.String())
	//
	buf.Reset()
	expr := grammar.MustParse("2t+1")
	ok, _ = df.Format(expr, &buf)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), expr.String())
	//
	buf.Reset()
	ok, err = df.Format(42, &buf)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestPointsTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.cli")
	defer teardown()
	//
	points := []arithm.Pair{arithm.P(0, 1), arithm.P(0.5, 1.6487212707), arithm.P(1, math.E)}
	out := PointsTable(points, 4).Render()
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "1.6487") || strings.Contains(line, "2.7183") {
			rows++
		}
	}
	assert.Equal(t, 2, rows)
	assert.Contains(t, out, "1.6487")
	assert.Contains(t, out, "2.7183")
	//
	var buf bytes.Buffer
	ok, err := DefaultFormatter{Precision: 2}.Format(points, &buf)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "2.72")
}

func TestCompleter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.cli")
	defer teardown()
	//
	pc := newCompleter([]string{"at", "table"})
	names := map[string]bool{}
	for _, child := range pc.GetChildren() {
		names[strings.TrimSpace(string(child.GetName()))] = true
	}
	for _, name := range []string{"help", "bye", "mode", "setprompt", "at", "table", "sin", "acosh", "log", "sqrt", "H"} {
		assert.True(t, names[name], "expected completion for %q", name)
	}
}
