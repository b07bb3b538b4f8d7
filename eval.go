// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import (
	"math/big"

	"github.com/pkg/errors"
)

// Result is the output of an adder.
//
type Result struct {
	Sum  Bits
	Cout bool
}

// Big returns {Cout, Sum} as a single unsigned integer.
//
func (r Result) Big() *big.Int {
	v := r.Sum.Big()
	if r.Cout {
		v.SetBit(v, len(r.Sum), 1)
	}
	return v
}

// Uint64 returns {Cout, Sum} as an unsigned integer. Bits above bit 63 are
// ignored.
//
func (r Result) Uint64() uint64 {
	v := r.Sum.Uint64()
	if r.Cout && len(r.Sum) < 64 {
		v |= 1 << uint(len(r.Sum))
	}
	return v
}

// Equal returns true if r and o have the same sum and carry out.
//
func (r Result) Equal(o Result) bool {
	return r.Cout == o.Cout && r.Sum.Equal(o.Sum)
}

func (r Result) String() string {
	c := "0"
	if r.Cout {
		c = "1"
	}
	return "sum=" + r.Sum.String() + " cout=" + c
}

// Evaluate computes a + b + cin with the adder network n.
//
// The operands must have the same width as n, otherwise Evaluate fails with
// ErrWidthMismatch before any computation takes place. A nil network, typed
// nil pointers included, fails with ErrNilNetwork.
//
func Evaluate(n Network, a, b Bits, cin bool) (Result, error) {
	if err := checkOperands(n, a, b); err != nil {
		return Result{}, err
	}
	sum := make(Bits, len(a))
	cout := eval(n, a, b, cin, sum)
	return Result{Sum: sum, Cout: cout}, nil
}

func checkOperands(n Network, a, b Bits) error {
	if isNil(n) {
		return errors.WithStack(ErrNilNetwork)
	}
	if w := n.Width(); len(a) != w || len(b) != w {
		return errors.Wrapf(ErrWidthMismatch, "network width %d, operand widths %d and %d", w, len(a), len(b))
	}
	return nil
}

// isNil returns true if n is nil or a nil pointer to one of the node types.
//
func isNil(n Network) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Leaf:
		return n == nil
	case *Composite:
		return n == nil
	case *Chain:
		return n == nil
	}
	return false
}

// eval writes the sum of a and b into sum and returns the carry out.
// a, b and sum all have the width of n.
//
func eval(n Network, a, b Bits, cin bool, sum Bits) bool {
	switch n := n.(type) {
	case *Leaf:
		sum[0], cin = FullAdder(a[0], b[0], cin)
		return cin
	case *Chain:
		c := cin
		for i := range n.cells {
			sum[i], c = FullAdder(a[i], b[i], c)
		}
		return c
	case *Composite:
		// the high half depends on the carry out of the low half.
		w := n.low.Width()
		c := eval(n.low, a[:w], b[:w], cin, sum[:w])
		return eval(n.high, a[w:], b[w:], c, sum[w:])
	}
	panic("unknown network type")
}

// An Adder adds two operands of a fixed width.
//
// Implementations other than the one returned by NewAdder are used for
// testing, see packages hwtest and mutant.
//
type Adder interface {
	Width() int
	Add(a, b Bits, cin bool) (Result, error)
}

type networkAdder struct {
	n Network
}

func (a networkAdder) Width() int { return a.n.Width() }

func (a networkAdder) Add(x, y Bits, cin bool) (Result, error) {
	return Evaluate(a.n, x, y, cin)
}

// NewAdder returns an Adder that evaluates n.
//
func NewAdder(n Network) Adder {
	return networkAdder{n}
}
