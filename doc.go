/*
Package hwadd builds and evaluates wide binary adders composed out of a single
one-bit full adder.

Two composition strategies are provided. A Ripple network is a flat chain of
full adders where the carry out of cell i feeds the carry in of cell i+1. A
Hierarchical network splits an N-bit adder into a low and a high half, each
built recursively, with the carry out of the low half feeding the carry in of
the high half. Both produce the same sum and carry out for the same operands:

	n, err := hwadd.Build(8, hwadd.Hierarchical)
	if err != nil {
		// handle error
	}
	r, err := hwadd.Evaluate(n, hwadd.FromUint64(255, 8), hwadd.FromUint64(1, 8), false)
	// r.Sum == 0, r.Cout == true

Networks are immutable once built and can be evaluated concurrently. There is
no timing model: evaluation is a plain traversal with the carry threaded
through function arguments.
*/
package hwadd

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer. It never replaces the tracer, so
// networks can be built from several goroutines.
//
func T() tracing.Trace {
	return gtrace.CoreTracer
}
