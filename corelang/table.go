package corelang

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Tier is the precedence class of an operator or function.
// Lower values bind tighter.
type Tier int8

// Precedence tiers, tightest first.
const (
	FunctionTier Tier = iota
	TrigTier
	ExponentTier
	SignTier
	ProductTier
	SumTier
)

func (t Tier) String() string {
	switch t {
	case FunctionTier:
		return "function"
	case TrigTier:
		return "trig"
	case ExponentTier:
		return "exponent"
	case SignTier:
		return "sign"
	case ProductTier:
		return "product"
	case SumTier:
		return "sum"
	}
	return fmt.Sprintf("<illegal tier: %d>", t)
}

// BindsTighter is a predicate: does t bind strictly tighter than other?
func (t Tier) BindsTighter(other Tier) bool {
	return t < other
}

// RightAssociative is true for the exponent tier only.
func (t Tier) RightAssociative() bool {
	return t == ExponentTier
}

// Descriptor describes an operator or a function.
type Descriptor struct {
	Name   string // canonical name, e.g. "add" or "asin"
	Symbol string // operator symbol or function name as written, e.g. "+" or "asin"
	Arity  int    // 1 or 2
	Tier   Tier
	fn     func(a, b float64) float64
}

func (d *Descriptor) String() string {
	return d.Symbol
}

// Call applies the evaluation function. For unary descriptors b is ignored.
func (d *Descriptor) Call(a, b float64) float64 {
	return d.fn(a, b)
}

// IsFunction is a predicate: is d a named function (including trig functions)
// rather than an infix operator?
func (d *Descriptor) IsFunction() bool {
	return d.Tier == FunctionTier || d.Tier == TrigTier
}

// IsTrig is a predicate: is d a member of the trigonometric family?
func (d *Descriptor) IsTrig() bool {
	return d.Tier == TrigTier
}

func binary(name, sym string, tier Tier, f func(a, b float64) float64) *Descriptor {
	return &Descriptor{Name: name, Symbol: sym, Arity: 2, Tier: tier, fn: f}
}

func unary(name string, tier Tier, f func(float64) float64) *Descriptor {
	return &Descriptor{Name: name, Symbol: name, Arity: 1, Tier: tier,
		fn: func(a, _ float64) float64 { return f(a) }}
}

// Infix operators.
var (
	Add = binary("add", "+", SumTier, func(a, b float64) float64 { return a + b })
	Sub = binary("sub", "-", SumTier, func(a, b float64) float64 { return a - b })
	Mul = binary("mul", "*", ProductTier, func(a, b float64) float64 { return a * b })
	Div = binary("div", "/", ProductTier, func(a, b float64) float64 { return a / b })
	Exp = binary("exp", "^", ExponentTier, math.Pow)
)

// Unary signs. They are applied to an injected zero and bind tighter than
// products, but looser than exponents: -t^2 is -(t^2), 6/-2/3 is (6/(-2))/3.
var (
	Negate = binary("neg", "-", SignTier, func(a, b float64) float64 { return a - b })
	Affirm = binary("pos", "+", SignTier, func(a, b float64) float64 { return a + b })
)

// Functions which are not trigonometric.
var (
	// Log is the logarithm of its second operand to the base of its first.
	Log       = binary("log", "log", FunctionTier, func(base, x float64) float64 { return math.Log(x) / math.Log(base) })
	Ln        = unary("ln", FunctionTier, math.Log)
	Sqrt      = unary("sqrt", FunctionTier, math.Sqrt)
	Sign      = unary("sign", FunctionTier, sign)
	Heaviside = unary("H", FunctionTier, heaviside)
	Abs       = unary("abs", FunctionTier, math.Abs)
)

var operators = map[string]*Descriptor{
	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,
	"^": Exp,
}

var functions = map[string]*Descriptor{
	"log":  Log,
	"ln":   Ln,
	"sqrt": Sqrt,
	"sign": Sign,
	"H":    Heaviside,
	"abs":  Abs,
}

func init() {
	for _, d := range trigonometric() {
		functions[d.Name] = d
	}
}

// SignOf returns the unary sign for an additive operator, or nil.
func SignOf(op *Descriptor) *Descriptor {
	switch op {
	case Sub:
		return Negate
	case Add:
		return Affirm
	}
	return nil
}

// FunctionNames returns the names of all functions which may be written
// in input, in alphabetical order. Inverse trig functions are listed with
// prefix "a" only. abs is missing, it is written with bars.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name, d := range functions {
		if d != Abs {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Operator looks up an infix operator by its symbol.
func Operator(symbol string) (*Descriptor, bool) {
	d, ok := operators[symbol]
	return d, ok
}

// Lookup finds a function by name. Inverse trig functions may be spelled with
// prefix "a" or "arc", e.g. "asinh" and "arcsinh" denote the same function.
func Lookup(name string) (*Descriptor, bool) {
	if strings.HasPrefix(name, "arc") {
		name = "a" + name[3:]
	}
	d, ok := functions[name]
	if !ok {
		tracer().Debugf("no function named %q", name)
	}
	return d, ok
}

// --- Evaluation functions --------------------------------------------------

func sign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// heaviside is the unit step function with H(0) = 1/2.
func heaviside(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return 0
	case x == 0:
		return 0.5
	}
	return x // NaN
}
