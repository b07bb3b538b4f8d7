// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import (
	"github.com/db47h/hwadd/internal/expr"
	"github.com/pkg/errors"
)

// ParseOperands parses an operand assignment list of the form
//
//	a=0b1001, b=7, cin=1
//
// and returns the corresponding width bits operands. a and b are required,
// cin defaults to 0. Values are Go integer literals; a and b must fit in
// width bits and cin must be 0 or 1.
//
func ParseOperands(s string, width int) (Operands, error) {
	var o Operands
	if width < 1 {
		return o, errors.Wrapf(ErrInvalidWidth, "parse operands for width %d", width)
	}
	as, err := expr.Parse(s)
	if err != nil {
		return o, err
	}
	for _, a := range as {
		switch a.Name {
		case "a", "b":
			if a.Value.BitLen() > width {
				return o, errors.Errorf("in %q at pos %d: value of %s does not fit in %d bits", s, a.Pos+1, a.Name, width)
			}
			if a.Name == "a" {
				o.A = FromBig(a.Value, width)
			} else {
				o.B = FromBig(a.Value, width)
			}
		case "cin":
			if a.Value.BitLen() > 1 {
				return o, errors.Errorf("in %q at pos %d: cin must be 0 or 1", s, a.Pos+1)
			}
			o.Cin = a.Value.Bit(0) != 0
		default:
			return o, errors.Errorf("in %q at pos %d: unknown operand %q", s, a.Pos+1, a.Name)
		}
	}
	if o.A == nil || o.B == nil {
		return o, errors.Errorf("in %q: both a and b must be set", s)
	}
	return o, nil
}
