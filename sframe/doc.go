/*
Package sframe implements the stack of parsing frames the expression parser
works on.

A frame is one level of nesting: the outermost expression, a group in
parentheses, an absolute value between bars, or the argument of a function.
Each frame owns a stack of operands (expression trees) and a stack of
pending operators. Operators are reduced into operations as soon as
precedence allows, frames are reduced completely when they close, and the
single resulting value is handed to the enclosing frame.

Function frames need no closing token. A function frame closes itself as
soon as it has received the operands its function requires, and closing
may cascade into enclosing function frames.

Trigonometric functions followed by `^` are treated specially: in

    sin^2 t

the exponent applies to the result of sin, not to its argument. A
PendingSwap connects the trig frame and its enclosing frame until both the
exponent and the function value have been delivered to the enclosing frame.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sframe

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tfunc.frames'
func tracer() tracing.Trace {
	return tracing.Select("tfunc.frames")
}
