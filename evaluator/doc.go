/*
Package evaluator implements expression trees for functions of t and their
evaluation.

A tree consists of three kinds of nodes: constants, the variable t, and
operations applying an operator or function (see package corelang) to one
or two operand sub-trees. Nodes are immutable once constructed. Operations
with constant operands only are folded into a constant at construction
time, so a tree never contains a literal sub-expression which could be
computed in advance.

Evaluation is a pure function of the tree and t. A tree may therefore be
evaluated concurrently by any number of goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tfunc.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("tfunc.evaluator")
}
