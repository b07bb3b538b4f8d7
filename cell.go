// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

// gate functions
type gate func(a, b bool) bool

var (
	and gate = func(a, b bool) bool { return a && b }
	or  gate = func(a, b bool) bool { return a || b }
	xor gate = func(a, b bool) bool { return a && !b || !a && b }
)

// FullAdder is the one-bit adder every network reduces to.
//
//	Inputs: a, b, cin
//	Outputs: sum, cout
//	Function: sum = a xor b xor cin
//	          cout = (a and b) or (cin and (a xor b))
//
func FullAdder(a, b, cin bool) (sum, cout bool) {
	p := xor(a, b)
	return xor(p, cin), or(and(a, b), and(cin, p))
}

// HalfAdder returns the sum and carry of two bits.
//
//	Inputs: a, b
//	Outputs: sum, carry
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdder(a, b bool) (sum, carry bool) {
	return FullAdder(a, b, false)
}
