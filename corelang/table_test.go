package corelang

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTierOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.core")
	defer teardown()
	//
	order := []Tier{FunctionTier, TrigTier, ExponentTier, SignTier, ProductTier, SumTier}
	for i := 1; i < len(order); i++ {
		if !order[i-1].BindsTighter(order[i]) {
			t.Errorf("expected %s to bind tighter than %s", order[i-1], order[i])
		}
	}
	if !ExponentTier.RightAssociative() || SumTier.RightAssociative() || SignTier.RightAssociative() {
		t.Errorf("only exponents should be right-associative")
	}
}

func TestLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.core")
	defer teardown()
	//
	for i, x := range []struct {
		name  string
		canon string
		arity int
		tier  Tier
	}{
		{"sin", "sin", 1, TrigTier},
		{"arcsin", "asin", 1, TrigTier},
		{"arccoth", "acoth", 1, TrigTier},
		{"sech", "sech", 1, TrigTier},
		{"log", "log", 2, FunctionTier},
		{"ln", "ln", 1, FunctionTier},
		{"H", "H", 1, FunctionTier},
		{"sqrt", "sqrt", 1, FunctionTier},
	} {
		d, ok := Lookup(x.name)
		if !ok {
			t.Errorf("test %d: function %q not found", i, x.name)
			continue
		}
		if d.Name != x.canon || d.Arity != x.arity || d.Tier != x.tier {
			t.Errorf("test %d: unexpected descriptor for %q: %s/%d/%s", i, x.name, d.Name, d.Arity, d.Tier)
		}
	}
	if _, ok := Lookup("exp"); ok {
		t.Errorf("did not expect a function named 'exp'")
	}
	if d, ok := Operator("^"); !ok || d != Exp || d.Arity != 2 {
		t.Errorf("expected ^ to denote the exponent operator")
	}
}

func TestFunctionValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.core")
	defer teardown()
	//
	const eps = 1e-12
	for i, x := range []struct {
		d    *Descriptor
		a, b float64
		r    float64
	}{
		{Heaviside, 2, 0, 1},
		{Heaviside, -2, 0, 0},
		{Heaviside, 0, 0, 0.5},
		{Sign, -3, 0, -1},
		{Sign, 0, 0, 0},
		{Log, 2, 8, 3},
		{Log, 10, 100, 2},
		{Exp, 2, 10, 1024},
		{Sub, 3, 5, -2},
		{Negate, 0, 5, -5},
		{Affirm, 0, 5, 5},
		{Abs, -4.5, 0, 4.5},
	} {
		if r := x.d.Call(x.a, x.b); math.Abs(r-x.r) > eps {
			t.Errorf("test %d: %s(%g,%g) = %g, expected %g", i, x.d, x.a, x.b, r, x.r)
		}
	}
	acot, _ := Lookup("acot")
	if r := acot.Call(1, 0); math.Abs(r-math.Pi/4) > eps {
		t.Errorf("acot(1) = %g, expected pi/4", r)
	}
	sec, _ := Lookup("sec")
	if r := sec.Call(0, 0); r != 1 {
		t.Errorf("sec(0) = %g, expected 1", r)
	}
}

func TestSigns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.core")
	defer teardown()
	//
	if SignOf(Sub) != Negate || SignOf(Add) != Affirm || SignOf(Mul) != nil {
		t.Errorf("unexpected sign for additive operators")
	}
	if !SignTier.BindsTighter(Mul.Tier) || !Exp.Tier.BindsTighter(SignTier) {
		t.Errorf("expected signs to bind between exponents and products")
	}
	if d, _ := Operator("-"); d != Sub {
		t.Errorf("expected infix - to remain subtraction")
	}
	names := FunctionNames()
	if len(names) == 0 || names[0] > names[len(names)-1] {
		t.Fatalf("expected sorted function names, have %v", names)
	}
	for _, name := range names {
		if name == "abs" {
			t.Errorf("abs is not written as a function")
		}
		if _, ok := Lookup(name); !ok {
			t.Errorf("listed function %q cannot be looked up", name)
		}
	}
}
