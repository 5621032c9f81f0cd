package evaluator_test

import (
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tfunc/corelang"
	"github.com/npillmayer/tfunc/evaluator"
	"github.com/stretchr/testify/assert"
)

func TestConstantFolding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.evaluator")
	defer teardown()
	//
	n := op(t, corelang.Add, evaluator.NewConstant(3), evaluator.NewConstant(4))
	if !n.IsConstant() || n.Value() != 7 {
		t.Errorf("expected 3+4 to be folded to 7, is %s", n)
	}
	n = op(t, corelang.Sqrt, evaluator.NewConstant(16), nil)
	if !n.IsConstant() || n.Value() != 4 {
		t.Errorf("expected sqrt(16) to be folded to 4, is %s", n)
	}
	n = op(t, corelang.Mul, evaluator.NewConstant(2), evaluator.NewVariable())
	if n.IsConstant() || n.Kind() != evaluator.KindOperation {
		t.Errorf("expected 2*t not to be folded")
	}
	if n.Size() != 3 {
		t.Errorf("expected tree of 2*t to have 3 nodes, has %d", n.Size())
	}
}

func TestOperationArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.evaluator")
	defer teardown()
	//
	_, err := evaluator.NewOperation(corelang.Add, evaluator.NewVariable(), nil)
	assert.Error(t, err, "binary operator with one operand")
	_, err = evaluator.NewOperation(corelang.Ln, evaluator.NewVariable(), evaluator.NewVariable())
	assert.Error(t, err, "unary function with two operands")
	_, err = evaluator.NewOperation(nil, evaluator.NewVariable(), nil)
	assert.Error(t, err, "operation without operator")
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.evaluator")
	defer teardown()
	//
	v := evaluator.NewVariable
	c := evaluator.NewConstant
	// t^2 + 1
	square := op(t, corelang.Add, op(t, corelang.Exp, v(), c(2)), c(1))
	assert.Equal(t, 10.0, evaluator.Evaluate(square, 3))
	// |t|
	abs := op(t, corelang.Abs, v(), nil)
	for _, x := range []float64{-2.5, 0, 7} {
		assert.Equal(t, math.Abs(x), evaluator.Evaluate(abs, x))
	}
	// log_2 t
	lg := op(t, corelang.Log, c(2), v())
	assert.InDelta(t, 3.0, evaluator.Evaluate(lg, 8), 1e-12)
	// 1/t at 0 is not an error
	inv := op(t, corelang.Div, c(1), v())
	assert.True(t, math.IsInf(evaluator.Evaluate(inv, 0), 1))
}

func TestConcurrentEvaluation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.evaluator")
	defer teardown()
	//
	sin, _ := corelang.Lookup("sin")
	e := evaluator.NewExpr(op(t, sin, evaluator.NewVariable(), nil), "sin t")
	var wg sync.WaitGroup
	results := make([]float64, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Evaluate(float64(i))
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		assert.Equal(t, math.Sin(float64(i)), r)
	}
}

func TestCanonicalForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.evaluator")
	defer teardown()
	//
	v := evaluator.NewVariable
	c := evaluator.NewConstant
	sin, _ := corelang.Lookup("arcsin")
	for i, x := range []struct {
		n *evaluator.Node
		s string
	}{
		{c(2.5), "2.5"},
		{c(-3), "(-3)"},
		{c(math.Copysign(0, -1)), "(0*(-1))"},
		{c(math.NaN()), "(0/0)"},
		{c(math.Inf(-1)), "(-1/0)"},
		{v(), "t"},
		{op(t, corelang.Add, op(t, corelang.Exp, v(), c(2)), c(1)), "((t^2)+1)"},
		{op(t, sin, v(), nil), "asin(t)"},
		{op(t, corelang.Abs, v(), nil), "|(t)|"},
		{op(t, corelang.Log, c(2), v()), "log_2(t)"},
		{op(t, corelang.Log, v(), c(8)), "(ln(8)/ln(t))"},
	} {
		if s := x.n.String(); s != x.s {
			t.Errorf("test %d: expected canonical form %q, have %q", i, x.s, s)
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func op(t *testing.T, d *corelang.Descriptor, l, r *evaluator.Node) *evaluator.Node {
	n, err := evaluator.NewOperation(d, l, r)
	if err != nil {
		t.Fatal(err)
	}
	return n
}
