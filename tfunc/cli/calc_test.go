package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.cli")
	defer teardown()
	//
	assert.Equal(t, "sin(t)", normalize("ｓｉｎ（ｔ）"))
	assert.Equal(t, "2*t+1", normalize("２*ｔ＋１"))
}

func TestReportError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.cli")
	defer teardown()
	//
	var out, errs bytes.Buffer
	calc := newCalculator(&out)
	input := "2 + )"
	_, err := calc.parse(input)
	assert.Error(t, err)
	reportError(&errs, input, err)
	lines := strings.Split(errs.String(), "\n")
	assert.Equal(t, "  "+input, lines[0])
	assert.Equal(t, "      ^", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "error: "))
	assert.Nil(t, calc.current, "failed parse must not replace current expression")
}

func TestCalculatorShowAndTabulate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.cli")
	defer teardown()
	//
	var out bytes.Buffer
	calc := newCalculator(&out)
	expr, err := calc.parse("t^2")
	assert.NoError(t, err)
	calc.at = 3
	calc.show(expr)
	assert.Contains(t, out.String(), "f(3) = 9")
	//
	out.Reset()
	err = calc.tabulate(context.Background(), expr, 0, 2, 4)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "2.25")
	assert.Contains(t, out.String(), "f(t) = ")
	//
	err = calc.tabulate(context.Background(), expr, 0, 2, 0)
	assert.Error(t, err)
}
