/*
Package vm compiles expression trees into flat programs for a small stack
machine and runs them.

Plotting a function evaluates it at many points. A Program is the postfix
form of an expression tree: constants and the variable are pushed onto a
stack, functions and operators replace their operands on the stack by the
result. Running a program never allocates more than a single stack, the
size of which is computed at compile time.

Programs are immutable and may be run concurrently. Sample evaluates a
program at equidistant points of an interval using a group of workers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tfunc.vm'
func tracer() tracing.Trace {
	return tracing.Select("tfunc.vm")
}
