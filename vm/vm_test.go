package vm_test

import (
	"context"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tfunc/grammar"
	"github.com/npillmayer/tfunc/vm"
	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.vm")
	defer teardown()
	//
	prog := vm.Compile(grammar.MustParse("t^2+1"))
	assert.Equal(t, "VAR\nCONST 2\nCALL2 exp\nCONST 1\nCALL2 add", prog.Listing())
	assert.Equal(t, 2, prog.Depth())
	assert.Equal(t, "((t^2)+1)", prog.Source())
	//
	prog = vm.Compile(grammar.MustParse("log_2 8"))
	assert.Equal(t, 1, prog.Len())
	assert.InDelta(t, 3.0, prog.Run(0), 1e-12)
}

func TestRunEqualsEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.vm")
	defer teardown()
	//
	for _, input := range []string{
		"t",
		"-t",
		"t^2+1",
		"sin^2 t + cos^2 t",
		"||t|+1| - 2^-t",
		"log_2 |t| * H(t-1)",
		"sqrt(t^2 + 1) / (1 + e^t)",
		"arctanh(t/10) sign t",
	} {
		e := grammar.MustParse(input)
		prog := vm.Compile(e)
		for _, at := range []float64{-5, -1, -0.1, 0, 0.5, 3, 7.25} {
			a, b := e.Evaluate(at), prog.Run(at)
			if math.IsNaN(a) {
				assert.True(t, math.IsNaN(b), "%q at t=%g", input, at)
				continue
			}
			assert.Equal(t, a, b, "%q at t=%g", input, at)
		}
	}
}

func TestSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.vm")
	defer teardown()
	//
	prog := vm.Compile(grammar.MustParse("2t+1"))
	for _, workers := range []int{1, 3, 100} {
		points, err := vm.Sample(context.Background(), prog, -1, 1, 8, workers)
		if err != nil {
			t.Fatal(err)
		}
		if len(points) != 9 {
			t.Fatalf("expected 9 points, have %d", len(points))
		}
		assert.Equal(t, -1.0, points[0].X())
		assert.Equal(t, 1.0, points[8].X())
		for i, p := range points {
			assert.InDelta(t, -1+float64(i)*0.25, p.X(), 1e-12)
			assert.InDelta(t, 2*p.X()+1, p.Y(), 1e-12)
		}
	}
}

func TestSampleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.vm")
	defer teardown()
	//
	prog := vm.Compile(grammar.MustParse("t"))
	_, err := vm.Sample(context.Background(), prog, 0, 1, 0, 1)
	assert.Error(t, err, "zero steps")
	_, err = vm.Sample(context.Background(), prog, 0, 1, 10, 0)
	assert.Error(t, err, "zero workers")
	_, err = vm.Sample(context.Background(), nil, 0, 1, 10, 1)
	assert.Equal(t, vm.ErrNoProgramToExecute, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = vm.Sample(ctx, prog, 0, 1, 10, 2)
	assert.Equal(t, context.Canceled, err)
}
