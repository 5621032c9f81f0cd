/*
Package grammar reads textual functions of t and creates expression trees
from them.

Input is split into tokens by a lexmachine DFA. The parser does not use a
formal grammar. Rather, it reads tokens from left to right and operates on
a stack of frames (see package sframe), reducing operators as soon as their
precedence allows. The following input is accepted:

    numbers        42  3.14
    constants      e  pi  phi
    variable       t
    operators      ^  *  /  +  -
    groups         ( … )  | … |
    functions      sin cos tan sec csc cot, their inverses (prefix a or arc)
                   and hyperbolic variants (suffix h), ln, sqrt, sign, H
                   (Heaviside), log (base 10) and log_B with B a number or
                   a constant

Whitespace separates tokens and is ignored otherwise. Operands following
each other are multiplied, thus "2t" and "2(t+1)" denote products.
Functions bind tighter than any operator and take a single operand, which
may be a group:

    sin 2t      is  (sin 2)*t
    sin(2t)     is  sin(2*t)

For trigonometric functions an exponent may be written in front of the
argument, as in "sin^2 t", which denotes (sin t)^2.

Bars delimit absolute values. A bar closes the innermost open absolute
value if the value is complete, and opens a new one otherwise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tfunc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("tfunc.grammar")
}
