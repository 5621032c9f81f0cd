/*
Package corelang holds the static operator and function table for
expressions of a single variable t.

Operators and Functions

Every operator and every function is described by a Descriptor: its
canonical name, its arity (1 or 2), its precedence tier and its evaluation
function. Descriptors are looked up by operator symbol or by function name
at scanning time and are shared read-only between all parses.

Tiers, tightest first:

    Function   log, ln, sqrt, sign, H, abs
    Trig       sin, cos, tan, sec, csc, cot, their hyperbolic and inverse forms
    Exponent   ^           (right-associative)
    Product    *  /
    Sum        +  -

Trig functions have a tier of their own, so that the parser is able to
recognize "sin^2 t" and apply the exponent to the result of the call.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tfunc.core'.
func tracer() tracing.Trace {
	return tracing.Select("tfunc.core")
}
