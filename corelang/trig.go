package corelang

import "math"

// trigonometric creates the descriptors of the trig family: the six circular
// functions, their hyperbolic counterparts and the inverses of both.
func trigonometric() []*Descriptor {
	fns := []struct {
		name string
		f    func(float64) float64
	}{
		{"sin", math.Sin}, {"asin", math.Asin},
		{"cos", math.Cos}, {"acos", math.Acos},
		{"tan", math.Tan}, {"atan", math.Atan},
		{"sec", func(x float64) float64 { return 1 / math.Cos(x) }},
		{"asec", func(x float64) float64 { return math.Acos(1 / x) }},
		{"csc", func(x float64) float64 { return 1 / math.Sin(x) }},
		{"acsc", func(x float64) float64 { return math.Asin(1 / x) }},
		{"cot", func(x float64) float64 { return 1 / math.Tan(x) }},
		{"acot", func(x float64) float64 { return math.Atan(1 / x) }},
		//
		{"sinh", math.Sinh}, {"asinh", math.Asinh},
		{"cosh", math.Cosh}, {"acosh", math.Acosh},
		{"tanh", math.Tanh}, {"atanh", math.Atanh},
		{"sech", func(x float64) float64 { return 1 / math.Cosh(x) }},
		{"asech", func(x float64) float64 { return math.Acosh(1 / x) }},
		{"csch", func(x float64) float64 { return 1 / math.Sinh(x) }},
		{"acsch", func(x float64) float64 { return math.Asinh(1 / x) }},
		{"coth", func(x float64) float64 { return 1 / math.Tanh(x) }},
		{"acoth", func(x float64) float64 { return math.Atanh(1 / x) }},
	}
	ds := make([]*Descriptor, len(fns))
	for i, fn := range fns {
		ds[i] = unary(fn.name, TrigTier, fn.f)
	}
	return ds
}
